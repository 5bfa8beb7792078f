// Package config assembles the runtime settings of the client from four
// sources. Later sources take precedence: defaults, JSON file (-c/-config),
// environment (after loading .env), command-line flags.
package config

import (
	"time"

	validator "github.com/go-playground/validator/v10"
)

// Config holds every tunable of the client.
type Config struct {
	// BaseURL is the fixed address of the remote user directory service.
	BaseURL string `env:"USERDECK_BASE_URL" validate:"required,url"`

	// SessionFile is where the session token is persisted. Empty selects
	// the default location under the user config directory.
	SessionFile string `env:"USERDECK_SESSION_FILE"`

	// RequestTimeout bounds every API call.
	RequestTimeout time.Duration `env:"USERDECK_REQUEST_TIMEOUT"`

	// DebounceInterval is the quiet period before a search term applies.
	DebounceInterval time.Duration `env:"USERDECK_DEBOUNCE_INTERVAL"`

	// NotificationTTL is how long a notification stays visible.
	NotificationTTL time.Duration `env:"USERDECK_NOTIFICATION_TTL"`

	LogLevel string `env:"USERDECK_LOG_LEVEL" validate:"loglevel"`
}

// LoadDefaults populates c with the stock settings.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://reqres.in/api"
	c.SessionFile = ""
	c.RequestTimeout = 10 * time.Second
	c.DebounceInterval = 500 * time.Millisecond
	c.NotificationTTL = 3 * time.Second
	c.LogLevel = "info"
}

func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

func (c *Config) validate() error {
	v := validator.New()
	if err := v.RegisterValidation("loglevel", validateLogLevel); err != nil {
		return err
	}
	return v.Struct(c)
}

// LoadConfig builds the effective configuration and validates it.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
