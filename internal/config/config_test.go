package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krw-converter/internal/config"
)

func env(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := config.FromEnv(env(nil))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, config.DefaultFetchTimeout, cfg.FetchTimeout)
	assert.Equal(t, config.DefaultAssetsDir, cfg.AssetsDir)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.False(t, cfg.JSONLogs)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := config.FromEnv(env(map[string]string{
		"KRWCONV_API_URL":       "http://localhost:8080/latest/KRW",
		"KRWCONV_FETCH_TIMEOUT": "3s",
		"KRWCONV_ASSETS_DIR":    " /opt/flags ",
		"KRWCONV_LOG_LEVEL":     "DEBUG",
		"KRWCONV_JSON_LOGS":     "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/latest/KRW", cfg.APIURL)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "/opt/flags", cfg.AssetsDir)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.JSONLogs)
}

func TestFromEnv_BlankValuesKeepDefaults(t *testing.T) {
	cfg, err := config.FromEnv(env(map[string]string{
		"KRWCONV_API_URL":       "  ",
		"KRWCONV_FETCH_TIMEOUT": "",
	}))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, config.DefaultFetchTimeout, cfg.FetchTimeout)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"url scheme":       {"KRWCONV_API_URL": "ftp://example.com"},
		"url host":         {"KRWCONV_API_URL": "https://"},
		"timeout syntax":   {"KRWCONV_FETCH_TIMEOUT": "ten"},
		"timeout negative": {"KRWCONV_FETCH_TIMEOUT": "-1s"},
		"log level":        {"KRWCONV_LOG_LEVEL": "loud"},
		"json flag":        {"KRWCONV_JSON_LOGS": "maybe"},
	}

	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.FromEnv(env(values))
			assert.Error(t, err)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("KRWCONV_FETCH_TIMEOUT=7s\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("KRWCONV_FETCH_TIMEOUT", "")
	require.NoError(t, os.Unsetenv("KRWCONV_FETCH_TIMEOUT"))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, cfg.FetchTimeout)
}

func TestLoad_NoDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := config.Load()
	assert.NoError(t, err)
}
