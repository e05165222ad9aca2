package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		environ  map[string]string
		expected Config
	}{
		{
			name:     "defaults",
			args:     nil,
			environ:  map[string]string{},
			expected: Config{RunAddr: ":8080", LogLevel: "info"},
		},
		{
			name:     "flags",
			args:     []string{"-a", ":9090", "-l", "debug"},
			environ:  map[string]string{},
			expected: Config{RunAddr: ":9090", LogLevel: "debug"},
		},
		{
			name:     "env overrides flags",
			args:     []string{"-a", ":9090", "-l", "debug"},
			environ:  map[string]string{"RUN_ADDRESS": "localhost:7000", "LOG_LEVEL": "error"},
			expected: Config{RunAddr: "localhost:7000", LogLevel: "error"},
		},
		{
			name:     "partial env",
			args:     []string{"-l", "debug"},
			environ:  map[string]string{"RUN_ADDRESS": ":7000"},
			expected: Config{RunAddr: ":7000", LogLevel: "debug"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse("cardapi", tt.args, Default(), tt.environ)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *cfg)
		})
	}
}

func TestParseCustomBase(t *testing.T) {
	base := Default()
	base.LogLevel = "debug"

	cfg, err := Parse("cardapi", nil, base, map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseCLI(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		environ  map[string]string
		expected string
	}{
		{
			name:     "default",
			environ:  map[string]string{},
			expected: "warn",
		},
		{
			name:     "flag",
			args:     []string{"-l", "debug"},
			environ:  map[string]string{},
			expected: "debug",
		},
		{
			name:     "env overrides flag",
			args:     []string{"-l", "debug"},
			environ:  map[string]string{"LOG_LEVEL": "error", "RUN_ADDRESS": ":9999"},
			expected: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseCLI("cardcheck", tt.args, tt.environ)
			require.NoError(t, err)
			assert.Equal(t, CLIConfig{LogLevel: tt.expected}, *cfg)
		})
	}
}

func TestParseCLIRejectsServerFlag(t *testing.T) {
	_, err := ParseCLI("cardcheck", []string{"-a", ":9090"}, map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse flags")
}

func TestParseUnknownFlag(t *testing.T) {
	_, err := Parse("cardapi", []string{"-x"}, Default(), map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse flags")
}
