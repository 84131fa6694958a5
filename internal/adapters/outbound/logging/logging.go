// Package logging builds the logrus logger shared by the CLI and MCP server.
package logging

import (
	"io"
	"strings"

	"github.com/rtighilt/MARS/internal/domain"
	"github.com/sirupsen/logrus"
)

// New returns a logger writing to out at the configured level and format.
// An unparsable level falls back to info with a warning.
func New(cfg domain.LoggingConfig, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	switch strings.ToLower(cfg.Format) {
	case domain.LogFormatJSON:
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
	}

	level := logrus.InfoLevel
	if cfg.Level != "" {
		parsed, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			log.Warnf("Invalid log level '%s', using 'info' instead. Error: %v", cfg.Level, err)
		} else {
			level = parsed
		}
	}
	log.SetLevel(level)

	return log
}

// Discard returns a logger that drops everything, for tests and library use.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
