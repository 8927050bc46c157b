// Package config loads runtime configuration for the gophtodo CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-b string   storage backend: sqlite, postgres, s3 or memory
//	-f string   sqlite database file
//	-d string   PostgreSQL DSN
//	-k string   S3 bucket
//	-g string   S3 region
//	-e string   S3 base endpoint
//	-u string   S3 root user
//	-p string   S3 root password
//	-s string   seed source URL
//	-n int      number of seed tasks to request
//	-t int      seed request timeout (seconds, 0 = none)
//	-l string   log level
//
// # JSON schema
//
// Only keys present in the file are applied. Durations use timex.Duration,
// so they can be strings like "3s" or integer nanoseconds:
//
//	{
//	  "storage_backend": "sqlite",
//	  "sqlite_path": "todo.db",
//	  "seed_url": "http://127.0.0.1:8080/todos",
//	  "seed_limit": 5,
//	  "seed_timeout": "10s",
//	  "log_level": "debug"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
