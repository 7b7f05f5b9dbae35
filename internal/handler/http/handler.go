package http

import (
	"github.com/MKhiriev/go-cloud-vault/internal/config"
	"github.com/MKhiriev/go-cloud-vault/internal/logger"
	"github.com/MKhiriev/go-cloud-vault/internal/store"
)

type Handler struct {
	repo    store.BlobRepository
	signKey string
	issuer  string

	logger *logger.Logger
}

func NewHandler(repo store.BlobRepository, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		repo:    repo,
		signKey: cfg.TokenSignKey,
		issuer:  cfg.TokenIssuer,
		logger:  logger,
	}
}
