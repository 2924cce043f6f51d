package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	for _, tc := range []struct {
		name          string
		expectedLevel zapcore.Level
		log           func(l *ZapLogger, msg string)
	}{
		{
			name:          "Debug",
			expectedLevel: zapcore.DebugLevel,
			log:           func(l *ZapLogger, msg string) { l.Debug(msg) },
		},
		{
			name:          "Info",
			expectedLevel: zapcore.InfoLevel,
			log:           func(l *ZapLogger, msg string) { l.Info(msg) },
		},
		{
			name:          "Warn",
			expectedLevel: zapcore.WarnLevel,
			log:           func(l *ZapLogger, msg string) { l.Warn(msg) },
		},
		{
			name:          "Error",
			expectedLevel: zapcore.ErrorLevel,
			log:           func(l *ZapLogger, msg string) { l.Error(msg) },
		},
		{
			name:          "InfoWithContext",
			expectedLevel: zapcore.InfoLevel,
			log: func(l *ZapLogger, msg string) {
				l.InfoWithContext(context.Background(), msg)
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)
			dut := &ZapLogger{zap.New(core)}

			const testMessage = "ABC"
			tc.log(dut, testMessage)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			require.Equal(t, testMessage, entry.Message)
			require.Equal(t, tc.expectedLevel, entry.Level)
			require.Empty(t, entry.ContextMap())
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("none_level_returns_noop", func(t *testing.T) {
		l, err := NewLogger("json", "none")
		require.NoError(t, err)
		require.NotNil(t, l)
	})

	t.Run("unknown_level_is_rejected", func(t *testing.T) {
		_, err := NewLogger("json", "verbose")
		require.Error(t, err)
	})

	t.Run("text_format_builds", func(t *testing.T) {
		l, err := NewLogger("text", "info")
		require.NoError(t, err)
		require.NotNil(t, l)
	})
}
