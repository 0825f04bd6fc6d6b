package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MOTIVATION_CONFIG", "HOST", "PORT", "ROUTE_PREFIX", "DATA_DIR", "LOG_DIR", "LOG_LEVEL",
		"LLM_PROVIDER", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENAI_BASE_URL", "LLM_MODEL",
		"LLM_TEMPERATURE", "LLM_MAX_TOKENS", "LLM_TIMEOUT", "LLM_STARTUP_CHECK",
		"RATE_INTERVAL", "IP_RATE_PER_SECOND", "IP_RATE_BURST",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 60*time.Second, cfg.RateLimit.Interval)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9000
  route_prefix: /api
llm:
  provider: gemini
  model: gemini-2.5-flash
  timeout: 15s
rate_limit:
  interval: 30s
`), 0644))

	t.Setenv("LLM_MODEL", "gemini-2.5-pro")
	t.Setenv("LLM_STARTUP_CHECK", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "/api", cfg.Server.RoutePrefix)
	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.Model, "env wins over file")
	assert.Equal(t, 15*time.Second, cfg.LLM.Timeout)
	assert.True(t, cfg.LLM.StartupCheck)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Interval)
	assert.Equal(t, "Inputs_Outputs", cfg.Storage.DataDir, "untouched keys keep defaults")
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  data_dir: /srv/data\n"), 0644))
	t.Setenv("MOTIVATION_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/srv/data", cfg.Storage.DataDir)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("PORT", "eighty")
	t.Setenv("LLM_TIMEOUT", "soon")
	_, err = Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
	assert.Contains(t, err.Error(), "LLM_TIMEOUT")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")

	cfg.LLM.APIKey = "sk-test"
	assert.NoError(t, cfg.Validate())

	cfg.LLM.Provider = ProviderMock
	cfg.LLM.APIKey = ""
	assert.NoError(t, cfg.Validate())

	cfg.LLM.Provider = "claude"
	cfg.Server.Port = 0
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown LLM provider")
	assert.Contains(t, err.Error(), "port 0")
}
