package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	appName       = "ideaboard"
	envPrefix     = "IDEABOARD"
	defaultAPIURL = "http://localhost:8000"
)

// Config holds application-level configuration.
type Config struct {
	APIURL   string        // Board API base URL, e.g. "https://ideas.example.com"
	Timeout  time.Duration // Per-request timeout; 0 keeps the transport default
	LogFile  string        // Where the file logger writes
	LogLevel string        // zap level name
}

// Load resolves configuration from, in increasing priority: defaults, an
// optional config.yaml, IDEABOARD_* environment variables and changed flags.
//
//	IDEABOARD_API_URL    board API base URL (default: http://localhost:8000)
//	IDEABOARD_TIMEOUT    request timeout, e.g. "10s" (default: none)
//	IDEABOARD_LOG_FILE   log path (default: ~/.local/state/ideaboard/ideaboard.log)
//	IDEABOARD_LOG_LEVEL  debug, info, warn, error (default: info)
//
// The config file is looked up in $XDG_CONFIG_HOME/ideaboard and the working directory.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	if err := setDefaults(v); err != nil {
		return Config{}, err
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, appName))
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	apiURL, err := normalizeAPIURL(v.GetString("api_url"))
	if err != nil {
		return Config{}, err
	}

	timeout := v.GetDuration("timeout")
	if timeout < 0 {
		return Config{}, fmt.Errorf("invalid timeout %s: must not be negative", timeout)
	}

	return Config{
		APIURL:   apiURL,
		Timeout:  timeout,
		LogFile:  v.GetString("log_file"),
		LogLevel: v.GetString("log_level"),
	}, nil
}

// flagKeys maps config keys to the CLI flags that may override them.
var flagKeys = map[string]string{
	"api_url":   "api-url",
	"timeout":   "timeout",
	"log_file":  "log-file",
	"log_level": "log-level",
}

func setDefaults(v *viper.Viper) error {
	logFile, err := defaultLogFile()
	if err != nil {
		return err
	}
	v.SetDefault("api_url", defaultAPIURL)
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("log_file", logFile)
	v.SetDefault("log_level", "info")
	return nil
}

func defaultLogFile() (string, error) {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, appName, appName+".log"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".local", "state", appName, appName+".log"), nil
}

func normalizeAPIURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = defaultAPIURL
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid api_url %q: must be an absolute URL", raw)
	}
	switch parsed.Scheme {
	case "http", "https":
	default:
		return "", fmt.Errorf("invalid api_url %q: only http and https are allowed", raw)
	}
	return strings.TrimRight(parsed.String(), "/"), nil
}
