package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cloud-vault/internal/config"
	"github.com/MKhiriev/go-cloud-vault/internal/logger"
	"github.com/MKhiriev/go-cloud-vault/internal/mock"
)

func TestNewHandlers(t *testing.T) {
	repo := mock.NewMockBlobRepository(gomock.NewController(t))
	log := logger.Nop()

	t.Run("http only", func(t *testing.T) {
		cfg := &config.StructuredConfig{}
		cfg.Server.HTTPAddress = "localhost:8080"

		handlers, err := NewHandlers(repo, cfg, log)
		require.NoError(t, err)
		assert.NotNil(t, handlers.HTTP)
		assert.Nil(t, handlers.GRPC)
	})

	t.Run("both transports", func(t *testing.T) {
		cfg := &config.StructuredConfig{}
		cfg.Server.HTTPAddress = "localhost:8080"
		cfg.Server.GRPCAddress = "localhost:3200"

		handlers, err := NewHandlers(repo, cfg, log)
		require.NoError(t, err)
		assert.NotNil(t, handlers.HTTP)
		assert.NotNil(t, handlers.GRPC)
	})

	t.Run("no addresses configured", func(t *testing.T) {
		handlers, err := NewHandlers(repo, &config.StructuredConfig{}, log)
		require.ErrorIs(t, err, errNoHandlersAreCreated)
		assert.Nil(t, handlers)
	})
}
