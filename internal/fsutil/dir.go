package fsutil

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// EnsureDir creates dir and any missing parents. Calling it on an existing
// directory is a no-op; the creation is only logged when it actually happened.
func EnsureDir(logger *zap.Logger, dir string) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	if info, err := os.Stat(dir); err == nil {
		if info.IsDir() {
			return nil
		}
		return fmt.Errorf("%s exists and is not a directory", dir)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	logger.Info("created directory", zap.String("path", dir))
	return nil
}

// LogFailure runs fn and, if it fails, logs the operation name and the file
// it touched before handing the error back unchanged. It is the propagate
// half of the two failure policies; LogAndZero is the other.
func LogFailure(logger *zap.Logger, op, path string, fn func() error) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	err := fn()
	if err != nil {
		logger.Error(op+" failed", zap.String("path", path), zap.Error(err))
	}
	return err
}

// LogAndZero runs fn and degrades any failure to the zero sentinel after
// logging it. Callers must treat 0 as "unknown", never as a measured value.
func LogAndZero(logger *zap.Logger, op, path string, fn func() (float64, error)) float64 {
	if logger == nil {
		logger = zap.NewNop()
	}

	v, err := fn()
	if err != nil {
		logger.Error(op+" failed", zap.String("path", path), zap.Error(err))
		return 0
	}
	return v
}
