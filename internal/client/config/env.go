package config

import (
	env "github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. Variables are
// parsed into a scratch struct first so unset ones do not clobber earlier
// sources.
func parseEnv(cfg *Config) error {
	// A .env file is optional; a missing one is the normal case.
	_ = godotenv.Load()

	var fromEnv Config
	if err := env.Parse(&fromEnv); err != nil {
		return err
	}

	if fromEnv.BaseURL != "" {
		cfg.BaseURL = fromEnv.BaseURL
	}
	if fromEnv.SessionFile != "" {
		cfg.SessionFile = fromEnv.SessionFile
	}
	if fromEnv.RequestTimeout != 0 {
		cfg.RequestTimeout = fromEnv.RequestTimeout
	}
	if fromEnv.DebounceInterval != 0 {
		cfg.DebounceInterval = fromEnv.DebounceInterval
	}
	if fromEnv.NotificationTTL != 0 {
		cfg.NotificationTTL = fromEnv.NotificationTTL
	}
	if fromEnv.LogLevel != "" {
		cfg.LogLevel = fromEnv.LogLevel
	}
	return nil
}
