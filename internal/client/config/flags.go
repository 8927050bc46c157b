package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophtodo/internal/flagx"
)

var knownFlags = []string{"-b", "-f", "-d", "-k", "-g", "-e", "-u", "-p", "-s", "-n", "-t", "-l"}

// parseFlags populates Config fields from command-line flags (see the
// package documentation for the list). Only the flags it knows are taken
// from os.Args, so -c/-config can coexist. Panics on malformed values.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageBackend, "b", cfg.StorageBackend, "storage backend (sqlite, postgres, s3, memory)")
	fs.StringVar(&cfg.SQLitePath, "f", cfg.SQLitePath, "sqlite database file")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.S3Bucket, "k", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&cfg.S3RootUser, "u", cfg.S3RootUser, "S3 root user")
	fs.StringVar(&cfg.S3RootPassword, "p", cfg.S3RootPassword, "S3 root password")
	fs.StringVar(&cfg.SeedURL, "s", cfg.SeedURL, "seed source URL")
	fs.IntVar(&cfg.SeedLimit, "n", cfg.SeedLimit, "number of seed tasks")
	seedTimeout := fs.Int("t", int(cfg.SeedTimeout.Seconds()), "seed request timeout (in seconds, 0 = none)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SeedTimeout = time.Duration(*seedTimeout) * time.Second
}
