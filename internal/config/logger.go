package config

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger returns a timestamped logger writing to w with the given prefix.
// The level comes from SNAKE_LOG_LEVEL (default "info"). An unknown level
// keeps the default and is returned as an error.
func NewLogger(w io.Writer, prefix string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix,
		Level:           log.InfoLevel,
	})

	name := GetEnv("SNAKE_LOG_LEVEL", "")
	if name == "" {
		return logger, nil
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return logger, fmt.Errorf("SNAKE_LOG_LEVEL: %w", err)
	}
	logger.SetLevel(level)
	return logger, nil
}
