package config

import (
	"flag"
	"os"
	"time"

	"github.com/avolosin/userdeck/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the user directory service
//	-s string   session token file path
//	-t int      request timeout (in seconds)
//	-d int      search debounce interval (in milliseconds)
//	-n int      notification auto-dismiss (in seconds)
//	-l string   log level
//
// os.Args is filtered to the flags handled here so this parser never chokes
// on flags owned elsewhere (-c/-config, test flags).
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-d", "-n", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the user directory service")
	fs.StringVar(&cfg.SessionFile, "s", cfg.SessionFile, "session token file path")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	debounce := fs.Int("d", int(cfg.DebounceInterval.Milliseconds()), "search debounce interval (in milliseconds)")
	note := fs.Int("n", int(cfg.NotificationTTL.Seconds()), "notification auto-dismiss (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.DebounceInterval = time.Duration(*debounce) * time.Millisecond
	cfg.NotificationTTL = time.Duration(*note) * time.Second
}
