// Package logging builds the zap loggers used by the generator binaries.
package logging

import "go.uber.org/zap"

// New returns a console logger at info level, or debug when verbose is set.
// Scaffolding warnings flow through it; user-facing summaries stay on stdout.
func New(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
