package logger

import (
	"fmt"

	"github.com/phambaophuc/image-datestamp/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. Logs go to stderr so they never interleave
// with the prompts and progress lines on stdout.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var zc zap.Config
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}

// ForRun returns a child logger tagged with the batch run ID.
func ForRun(base *zap.Logger, runID, inputPath string) *zap.Logger {
	return base.With(
		zap.String("run_id", runID),
		zap.String("input", inputPath),
	)
}
