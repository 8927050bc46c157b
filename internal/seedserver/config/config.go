// Package config handles configuration for the seed server, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the seed server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - TodosFile: optional JSON file replacing the built-in todo list.
//   - ShutdownTimeout: how long in-flight requests get on shutdown.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddr    string
	TodosFile       string
	ShutdownTimeout time.Duration
	LogLevel        string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.TodosFile = ""
	c.ShutdownTimeout = 5 * time.Second
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
