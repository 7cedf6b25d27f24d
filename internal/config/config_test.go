package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogging(t *testing.T) {
	tests := []struct {
		name          string
		level         string
		format        string
		expectedLevel logrus.Level
		expectJSON    bool
	}{
		{
			name:          "defaults to info text",
			level:         "",
			format:        "",
			expectedLevel: logrus.InfoLevel,
		},
		{
			name:          "debug json",
			level:         "debug",
			format:        "json",
			expectedLevel: logrus.DebugLevel,
			expectJSON:    true,
		},
		{
			name:          "level is case-insensitive",
			level:         "WARN",
			format:        "text",
			expectedLevel: logrus.WarnLevel,
		},
		{
			name:          "invalid level falls back to info",
			level:         "noisy",
			format:        "",
			expectedLevel: logrus.InfoLevel,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tc.level)
			t.Setenv("LOG_FORMAT", tc.format)

			logger := ConfigureLogging()
			require.NotNil(t, logger)
			assert.Equal(t, tc.expectedLevel, logger.GetLevel())

			_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tc.expectJSON, isJSON)
		})
	}
}
