package logger

import (
	"testing"

	"github.com/phambaophuc/image-datestamp/internal/config"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.LogConfig
		level zapcore.Level
	}{
		{"production warn", config.LogConfig{Level: "warn"}, zapcore.WarnLevel},
		{"development debug", config.LogConfig{Level: "debug", Development: true}, zapcore.DebugLevel},
		{"uppercase", config.LogConfig{Level: "ERROR"}, zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !l.Core().Enabled(tt.level) {
				t.Fatalf("level %v should be enabled", tt.level)
			}
			if tt.level > zapcore.DebugLevel && l.Core().Enabled(tt.level-1) {
				t.Fatalf("level %v should be disabled", tt.level-1)
			}
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(config.LogConfig{Level: "loud"}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
