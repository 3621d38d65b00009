package utils

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

const loggerPrefix = "toroid-life"

// NewLogger builds a leveled logger writing to w. An empty level means info.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, errors.Wrapf(err, "[NewLogger] unknown log level: %q", level)
		}
		lvl = parsed
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          loggerPrefix,
		Level:           lvl,
	}), nil
}
