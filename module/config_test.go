package module

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		want    Config
		wantErr bool
	}{
		{"defaults", "", "", Config{Level: zapcore.InfoLevel, Format: FormatConsole}, false},
		{"debug json", "debug", "JSON", Config{Level: zapcore.DebugLevel, Format: FormatJSON}, false},
		{"warn", " warn ", "console", Config{Level: zapcore.WarnLevel, Format: FormatConsole}, false},
		{"bad level", "loud", "", Config{}, true},
		{"bad format", "", "xml", Config{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvLogLevel, tc.level)
			t.Setenv(EnvLogFormat, tc.format)

			got, err := LoadConfig()
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConfigNewLogger(t *testing.T) {
	for _, format := range []string{FormatConsole, FormatJSON} {
		t.Run(format, func(t *testing.T) {
			l, err := Config{Level: zapcore.WarnLevel, Format: format}.NewLogger("demo")
			require.NoError(t, err)
			assert.False(t, l.Core().Enabled(zapcore.InfoLevel), "info should be disabled at warn level")
			assert.True(t, l.Core().Enabled(zapcore.ErrorLevel))
		})
	}
}
