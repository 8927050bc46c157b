// Package kv provides the persistent key/value backends the account and task
// stores are written against.
//
// # Overview
//
// Repository is the whole contract: Get and Set over string keys and string
// values. Values are opaque to the backend; the stores keep a JSON document
// per key and always rewrite it in full.
//
// # Implementations
//
//   - SQLiteRepository   - embedded database, the default on a single device
//   - PostgresRepository - shared database reachable through pgx
//   - S3Repository       - one object per key in an S3-compatible bucket
//   - MemoryRepository   - process-local map, for tests and throwaway runs
//
// The SQL implementations expect the kv_store table created by the embedded
// goose migrations (see internal/client/storage).
//
// # Concurrency
//
// Backends are safe to call from several goroutines, but the stores built on
// top of them do unguarded read-modify-write cycles and assume one caller.
package kv
