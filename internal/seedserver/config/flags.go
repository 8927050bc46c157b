package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophtodo/internal/flagx"
)

// parseFlags populates Config from command-line flags:
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-f string   JSON file with the todo list to serve
//	-w int      shutdown timeout, seconds
//	-l string   log level
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-w", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.TodosFile, "f", config.TodosFile, "todo list file")
	shutdownTimeout := fs.Int("w", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
}
