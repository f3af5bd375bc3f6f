package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewColoredLoggerAt_RespectsLevel(t *testing.T) {
	tests := []struct {
		name       string
		level      zapcore.Level
		enabled    []zapcore.Level
		suppressed []zapcore.Level
	}{
		{
			name:       "debug lets everything through",
			level:      zapcore.DebugLevel,
			enabled:    []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel},
			suppressed: nil,
		},
		{
			name:       "warn suppresses debug and info",
			level:      zapcore.WarnLevel,
			enabled:    []zapcore.Level{zapcore.WarnLevel, zapcore.ErrorLevel},
			suppressed: []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewColoredLoggerAt(ComponentGeneral, false, tt.level)
			if err != nil {
				t.Fatalf("NewColoredLoggerAt failed: %v", err)
			}

			for _, lvl := range tt.enabled {
				if !logger.Core().Enabled(lvl) {
					t.Errorf("expected level %v to be enabled", lvl)
				}
			}
			for _, lvl := range tt.suppressed {
				if logger.Core().Enabled(lvl) {
					t.Errorf("expected level %v to be suppressed", lvl)
				}
			}
		})
	}
}

func TestNewColoredLogger_DefaultsToDebug(t *testing.T) {
	logger, err := NewColoredLogger(ComponentGeneral, false)
	if err != nil {
		t.Fatalf("NewColoredLogger failed: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug level to be enabled by default")
	}
}
