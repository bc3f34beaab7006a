package config

import "time"

// Config holds runtime settings for the CampusLink client.
type Config struct {
	// ServerURL is the base URL of the backend REST endpoint.
	ServerURL string
	// RequestTimeout bounds every backend request end to end.
	RequestTimeout time.Duration
	// DatabasePath is the sqlite file holding the encrypted credential store.
	DatabasePath string
	// KeyPath is the file holding the credential encryption key material.
	KeyPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "campuslink.db"
	c.KeyPath = "campuslink.key"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
