package http

import (
	"github.com/MKhiriev/courses-api/internal/config"
	"github.com/MKhiriev/courses-api/internal/logger"
	"github.com/MKhiriev/courses-api/internal/service"
)

type Handler struct {
	services *service.Services

	// logErrors enables logging of the details behind 500 responses.
	logErrors bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Bool("global_error_logging", cfg.EnableGlobalErrorLogging).Msg("http handler created")
	return &Handler{
		services:  services,
		logErrors: cfg.EnableGlobalErrorLogging,
		logger:    logger,
	}
}
