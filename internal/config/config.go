package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

type Config struct {
	BaseURL           string   `json:"base_url"`
	APIKey            string   `json:"api_key"`
	RequestTimeoutSec int      `json:"request_timeout_sec"`
	VsCurrencies      []string `json:"vs_currencies"`
	Debug             bool     `json:"debug"`
}

func Default() Config {
	return Config{
		BaseURL:           "https://api.coingecko.com/api/v3",
		RequestTimeoutSec: 10,
		VsCurrencies:      []string{"usd", "jpy"},
	}
}

// Load reads JSON config from path. If path is empty or the file does not
// exist, it returns defaults. Environment variables override select fields.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	if len(cfg.VsCurrencies) == 0 {
		cfg.VsCurrencies = Default().VsCurrencies
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("COINGECKO_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("COINGECKO_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.RequestTimeoutSec = x
		}
	}
	if v := os.Getenv("COINQUERY_DEBUG"); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "y":
			cfg.Debug = true
		case "0", "false", "no", "n":
			cfg.Debug = false
		}
	}
}
