// Where: internal/infra/logging/logger.go
// What: Diagnostic logger construction.
// Why: Keep step tracing off the user-facing console unless --verbose is set.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls logger construction.
type Options struct {
	Verbose bool
	// Out receives log lines; defaults to stderr.
	Out io.Writer
}

// New returns a debug-level console logger when Verbose is set and a no-op
// logger otherwise.
func New(opts Options) *zap.Logger {
	if !opts.Verbose {
		return zap.NewNop()
	}
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(out)),
		zap.NewAtomicLevelAt(zapcore.DebugLevel),
	)
	return zap.New(core)
}
