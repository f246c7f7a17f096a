// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ServerURL   string
	ListenAddr  string
	DBPath      string
	OpenBrowser bool
	LogLevel    slog.Level
}

// PageURL returns the absolute address of the web calendar page served on
// ListenAddr. A bind-all host is replaced with loopback so the address can be
// opened from the same machine.
func (c *Config) PageURL() string {
	host, port, err := net.SplitHostPort(c.ListenAddr)
	if err != nil {
		return ""
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port) + "/calendar"
}

// Load reads configuration from environment variables and returns a validated Config.
// Optional variables with defaults: CANVASCAL_SERVER_URL (http://127.0.0.1:8080),
// CANVASCAL_LISTEN_ADDR (127.0.0.1:8090), CANVASCAL_DB_PATH (canvascal.db),
// CANVASCAL_OPEN_BROWSER (false), CANVASCAL_LOG_LEVEL (info).
func Load() (*Config, error) {
	serverURL := "http://127.0.0.1:8080"
	if v, ok := os.LookupEnv("CANVASCAL_SERVER_URL"); ok && v != "" {
		u, err := url.Parse(v)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("CANVASCAL_SERVER_URL must be an absolute http(s) URL, got %q", v)
		}
		serverURL = strings.TrimRight(v, "/")
	}

	listenAddr := "127.0.0.1:8090"
	if v, ok := os.LookupEnv("CANVASCAL_LISTEN_ADDR"); ok && v != "" {
		if _, _, err := net.SplitHostPort(v); err != nil {
			return nil, fmt.Errorf("CANVASCAL_LISTEN_ADDR has invalid address %q: %w", v, err)
		}
		listenAddr = v
	}

	dbPath := "canvascal.db"
	if v, ok := os.LookupEnv("CANVASCAL_DB_PATH"); ok && v != "" {
		dbPath = v
	}

	openBrowser := false
	if v, ok := os.LookupEnv("CANVASCAL_OPEN_BROWSER"); ok && v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("CANVASCAL_OPEN_BROWSER has invalid boolean %q: %w", v, err)
		}
		openBrowser = parsed
	}

	logLevel := slog.LevelInfo
	if v, ok := os.LookupEnv("CANVASCAL_LOG_LEVEL"); ok && v != "" {
		if err := logLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("CANVASCAL_LOG_LEVEL has invalid level %q: %w", v, err)
		}
	}

	return &Config{
		ServerURL:   serverURL,
		ListenAddr:  listenAddr,
		DBPath:      dbPath,
		OpenBrowser: openBrowser,
		LogLevel:    logLevel,
	}, nil
}
