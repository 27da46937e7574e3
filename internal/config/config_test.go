package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of a test, restoring
// the original directory on cleanup (stand-in for t.Chdir, added in go1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("failed to restore working directory: %v", err)
		}
	})
}

// clearEnv blanks the environment variables the loader consults so a test
// starts from the documented defaults.
func clearEnv(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("LOG_LEVEL", "")
}

type testFlags struct {
	port        string
	environment string
	logLevel    string
}

func (f testFlags) GetPort() string        { return f.port }
func (f testFlags) GetEnvironment() string { return f.environment }
func (f testFlags) GetLogLevel() string    { return f.logLevel }

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg := Load()

	assert.Equal(t, DefaultPort, cfg.Port, "Expected default port")
	assert.Equal(t, DefaultEnvironment, cfg.Environment, "Expected default environment")
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel, "Expected default log level")
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "warn")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port, "Expected env var to override default port")
	assert.Equal(t, "production", cfg.Environment, "Expected env var to override default environment")
	assert.Equal(t, "warn", cfg.LogLevel, "Expected env var to override default log level")
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "configs"), 0o755))
	yamlContent := []byte("server:\n  port: \"4000\"\n  environment: production\n  log_level: debug\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), yamlContent, 0o644))
	chdir(t, dir)

	cfg := Load()

	assert.Equal(t, "4000", cfg.Port, "Expected YAML port")
	assert.Equal(t, "production", cfg.Environment, "Expected YAML environment")
	assert.Equal(t, "debug", cfg.LogLevel, "Expected YAML log level")
}

func TestLoadWithFlags_Precedence(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		flags       Flags
		expectPort  string
		expectEnv   string
		expectLevel string
	}{
		{
			name:        "nil flags fall back to defaults",
			env:         nil,
			flags:       nil,
			expectPort:  DefaultPort,
			expectEnv:   DefaultEnvironment,
			expectLevel: DefaultLogLevel,
		},
		{
			name:        "flags override environment variables",
			env:         map[string]string{"PORT": "9090", "LOG_LEVEL": "error"},
			flags:       testFlags{port: "7070", logLevel: "debug"},
			expectPort:  "7070",
			expectEnv:   DefaultEnvironment,
			expectLevel: "debug",
		},
		{
			name:        "empty flag values defer to environment",
			env:         map[string]string{"ENVIRONMENT": "production"},
			flags:       testFlags{},
			expectPort:  DefaultPort,
			expectEnv:   "production",
			expectLevel: DefaultLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			chdir(t, t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := LoadWithFlags(tt.flags)

			assert.Equal(t, tt.expectPort, cfg.Port, "Expected correct port precedence")
			assert.Equal(t, tt.expectEnv, cfg.Environment, "Expected correct environment precedence")
			assert.Equal(t, tt.expectLevel, cfg.LogLevel, "Expected correct log level precedence")
		})
	}
}

func TestLoadCached_ReturnsSameInstance(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	first := LoadCached()
	second := LoadCached()

	assert.Same(t, first, second, "Expected cached config to be reused")
}
