// Package logging builds the process logger. Logging happens at the
// CLI boundary only; the scoring packages stay silent and pure.
package logging

import "go.uber.org/zap"

// New returns a console logger. Verbose enables debug-level
// development output.
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}
