package http

import (
	"github.com/adushkin/userdir/internal/config"
	"github.com/adushkin/userdir/internal/logger"
	"github.com/adushkin/userdir/internal/metrics"
	"github.com/adushkin/userdir/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Registry

	// authToken is the static token the authentication middleware compares
	// the Authorization header against.
	authToken string

	// version is reported by the /api/version/ endpoint.
	version string

	logger *logger.Logger
}

func NewHandler(services *service.Services, registry *metrics.Registry, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		metrics:   registry,
		authToken: cfg.AuthToken,
		version:   cfg.Version,
		logger:    logger,
	}
}
