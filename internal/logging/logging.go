package logging

import "go.uber.org/zap"

// New builds the process-wide structured logger. Falls back to a no-op
// logger only if zap itself cannot initialize.
func New() *zap.Logger {
	log, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
