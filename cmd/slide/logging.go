package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// openLogger returns a debug logger writing to flagLogPath.
// The terminal belongs to Bubble Tea, so without --log output is discarded.
// The returned close function is always safe to call.
func openLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "slide",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
