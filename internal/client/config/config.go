package config

import "time"

// Config holds runtime settings for the mymoney CLI.
//
// Fields:
//   - StoreAddr: base URL of the remote data store.
//   - RequestTimeout: per-request deadline for store calls.
//   - LocalDBPath: path of the local SQLite file holding the session.
type Config struct {
	StoreAddr      string
	LocalDBPath    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoreAddr = "http://127.0.0.1:3000"
	c.LocalDBPath = "mymoney.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
