package handler

import (
	"github.com/MKhiriev/go-cloud-vault/internal/config"
	"github.com/MKhiriev/go-cloud-vault/internal/handler/grpc"
	"github.com/MKhiriev/go-cloud-vault/internal/handler/http"
	"github.com/MKhiriev/go-cloud-vault/internal/logger"
	"github.com/MKhiriev/go-cloud-vault/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(repo store.BlobRepository, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(repo, cfg.App, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(repo, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
