package config

import (
	"os"
	"strconv"

	"global-translator/internal/domain"
)

// DefaultSettings returns baseline configuration for first launch. The
// default country/language mirror the catalog's first entries.
func DefaultSettings() domain.Settings {
	return domain.Settings{
		APIBaseURL:          "http://localhost:8080/api/v1",
		CountryCode:         "IN",
		TargetLanguage:      "hi",
		PollIntervalSeconds: 2,
		MaxPollMinutes:      0,
	}
}

// ApplyEnv overrides settings from GT_* environment variables. Entry
// points load a .env file first, so both real env and .env files work.
func ApplyEnv(cfg domain.Settings) domain.Settings {
	if v := os.Getenv("GT_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("GT_POLL_INTERVAL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PollIntervalSeconds = n
		}
	}
	if v := os.Getenv("GT_MAX_POLL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxPollMinutes = n
		}
	}
	return cfg
}
