// Package util provides small helpers shared across packages: logging
// shortcuts, data directories and generic pointer utilities.
package util

import (
	"os"

	"github.com/akyairhashvil/taskboard/internal/logger"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		logger.Error(context, err)
	}
}

// MustSucceed logs and exits on error. Use sparingly.
func MustSucceed(context string, err error) {
	if err != nil {
		logger.Error(context, err)
		logger.Sync()
		os.Exit(1)
	}
}
