package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrijs2005/railticket/internal/common"
)

// Config holds runtime settings for the railticket CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - DatabasePath: SQLite file holding the encrypted local records.
//   - Secret: key material for the local record codec. Never persisted.
//   - RequestTimeout: deadline applied to each backend call made by the CLI.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerEndpointAddr  string        `env:"SERVER_ENDPOINT_ADDR"`
	DatabasePath        string        `env:"DATABASE_PATH"`
	Secret              string        `env:"SECRET"`
	RequestTimeout      time.Duration `env:"REQUEST_TIMEOUT"`
	OnlineCheckInterval time.Duration `env:"ONLINE_CHECK_INTERVAL"`
	LogLevel            string        `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabasePath = "railticket.db"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.LogLevel = "warn"
}

// Validate reports settings the client cannot start without.
func (c *Config) Validate() error {
	if c.Secret == "" {
		return common.ErrMissingSecret
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("%w: database path is empty", common.ErrorValidation)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", common.ErrorValidation)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level; unknown names mean info.
func (c *Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return l
}

// String renders the config for logs with the secret masked.
func (c Config) String() string {
	secret := ""
	if c.Secret != "" {
		secret = "***"
	}
	return fmt.Sprintf("{server:%s db:%s secret:%s timeout:%s check:%s log:%s}",
		c.ServerEndpointAddr, c.DatabasePath, secret, c.RequestTimeout, c.OnlineCheckInterval, c.LogLevel)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (optionally seeded from a .env file), JSON (if present) and
// command-line flags (if present). Later sources take precedence over earlier
// ones. Malformed input panics.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
