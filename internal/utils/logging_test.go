package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithComponent(t *testing.T) {
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	originalLogger := Logger
	Logger = zap.New(observedZapCore)
	defer func() { Logger = originalLogger }()

	componentLogger := WithComponent("batch_create")
	assert.NotNil(t, componentLogger)

	componentLogger.Info("rows submitted")

	logs := observedLogs.All()
	assert.Equal(t, 1, len(logs))
	assert.Equal(t, "rows submitted", logs[0].Message)
	assert.Equal(t, "batch_create", logs[0].ContextMap()[FieldComponent])
}

func TestWithComponent_NilLogger(t *testing.T) {
	originalLogger := Logger
	Logger = nil
	defer func() { Logger = originalLogger }()

	componentLogger := WithComponent("batch_create")
	assert.NotNil(t, componentLogger)
	assert.NotPanics(t, func() { componentLogger.Info("dropped") })
}

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, levelFromEnv(tt.in))
		})
	}
}
