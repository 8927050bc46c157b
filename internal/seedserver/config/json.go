package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophtodo/internal/flagx"
	"github.com/dmitrijs2005/gophtodo/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept "5s" or
// integer nanoseconds.
type JsonConfig struct {
	EndpointAddr    *string         `json:"endpoint_addr"`
	TodosFile       *string         `json:"todos_file"`
	ShutdownTimeout *timex.Duration `json:"shutdown_timeout"`
	LogLevel        *string         `json:"log_level"`
}

// parseJson overlays config with the file named by -c/-config, if any.
// Panics if the file cannot be read or decoded.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != nil {
		config.EndpointAddr = *c.EndpointAddr
	}
	if c.TodosFile != nil {
		config.TodosFile = *c.TodosFile
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
}
