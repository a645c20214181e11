package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"krw-converter/internal/logger"
)

const (
	DefaultAPIURL       = "https://api.exchangerate-api.com/v4/latest/KRW"
	DefaultFetchTimeout = 10 * time.Second
	DefaultAssetsDir    = "assets/flags"
)

type Config struct {
	APIURL       string
	FetchTimeout time.Duration
	AssetsDir    string
	LogLevel     zerolog.Level
	JSONLogs     bool
}

// Load reads an optional .env file from the working directory and then the
// KRWCONV_* environment variables on top of the defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, which is os.LookupEnv outside tests
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{
		APIURL:       DefaultAPIURL,
		FetchTimeout: DefaultFetchTimeout,
		AssetsDir:    DefaultAssetsDir,
		LogLevel:     zerolog.InfoLevel,
	}

	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("KRWCONV_API_URL"); ok {
		u, err := url.Parse(v)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return Config{}, fmt.Errorf("KRWCONV_API_URL %q is not an http(s) URL", v)
		}
		cfg.APIURL = v
	}

	if v, ok := get("KRWCONV_FETCH_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("KRWCONV_FETCH_TIMEOUT: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("KRWCONV_FETCH_TIMEOUT must be positive, got %s", d)
		}
		cfg.FetchTimeout = d
	}

	if v, ok := get("KRWCONV_ASSETS_DIR"); ok {
		cfg.AssetsDir = v
	}

	if v, ok := get("KRWCONV_LOG_LEVEL"); ok {
		level, err := logger.ParseLevel(strings.ToLower(v))
		if err != nil {
			return Config{}, fmt.Errorf("KRWCONV_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}

	if v, ok := get("KRWCONV_JSON_LOGS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("KRWCONV_JSON_LOGS: %w", err)
		}
		cfg.JSONLogs = b
	}

	return cfg, nil
}
