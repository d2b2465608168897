// Package config handles configuration for the passvault CLI, including
// defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the vault.
//
// Fields:
//   - DatabaseDSN: SQLite DSN of the local vault store.
//   - LogLevel: minimum log level (debug, info, warn, error).
type Config struct {
	DatabaseDSN string
	LogLevel    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "file:passvault.db?_pragma=foreign_keys(1)"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
