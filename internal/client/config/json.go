package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/avolosin/userdeck/internal/flagx"
	"github.com/avolosin/userdeck/internal/timex"
)

// jsonConfig is a DTO for JSON unmarshalling only. timex.Duration lets the
// file spell intervals as "500ms" or as integer nanoseconds.
type jsonConfig struct {
	BaseURL          string         `json:"base_url"`
	SessionFile      string         `json:"session_file"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	DebounceInterval timex.Duration `json:"debounce_interval"`
	NotificationTTL  timex.Duration `json:"notification_ttl"`
	LogLevel         string         `json:"log_level"`
}

// parseJSON overlays Config with values from the file named by -c/-config.
// No flag, no file, no overlay. Fields absent from the file keep their
// earlier values.
func parseJSON(cfg *Config) error {
	path := flagx.JSONConfigFlag()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DebounceInterval.Duration != 0 {
		cfg.DebounceInterval = jc.DebounceInterval.Duration
	}
	if jc.NotificationTTL.Duration != 0 {
		cfg.NotificationTTL = jc.NotificationTTL.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	return nil
}
