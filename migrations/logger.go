package migrations

import (
	"strings"

	"github.com/MKhiriev/course-api/internal/logger"
)

// gooseLogger routes goose output through the application logger.
type gooseLogger struct {
	logger *logger.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.logger.Info().Str("component", "goose").Msgf(strings.TrimSpace(format), v...)
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Fatal().Str("component", "goose").Msgf(strings.TrimSpace(format), v...)
}
