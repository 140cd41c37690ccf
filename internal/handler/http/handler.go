package http

import (
	"time"

	"github.com/MKhiriev/course-api/internal/config"
	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	metrics        *metrics

	logger *logger.Logger
}

// NewHandler builds a Handler with its own metrics registry, so several
// handlers can live in one process without duplicate registration.
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		metrics:        newMetrics(prometheus.NewRegistry()),
		logger:         logger,
	}
}
