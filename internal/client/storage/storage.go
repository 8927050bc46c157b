// Package storage opens the key/value backend selected in the client
// configuration: it creates the database or S3 client, applies the embedded
// goose migrations where needed and hands back a kv.Repository.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/gophtodo/internal/client/config"
	"github.com/dmitrijs2005/gophtodo/internal/client/migrations"
	"github.com/dmitrijs2005/gophtodo/internal/client/repositories/kv"
	"github.com/dmitrijs2005/gophtodo/internal/filex"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

var (
	// gooseUpContext is a seam for testing goose.UpContext.
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return goose.UpContext(ctx, db, dir, opts...)
	}

	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig
)

// Backend is an opened key/value store plus whatever must be released
// when the application stops.
type Backend struct {
	Repo  kv.Repository
	close func() error
}

// Close releases the underlying connection, if any.
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// Open builds the backend named by cfg.StorageBackend.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		if _, err := filex.EnsureParentDir(cfg.SQLitePath); err != nil {
			return nil, err
		}
		db, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Backend{Repo: kv.NewSQLiteRepository(db), close: db.Close}, nil

	case config.BackendPostgres:
		db, err := OpenPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return &Backend{Repo: kv.NewPostgresRepository(db), close: db.Close}, nil

	case config.BackendS3:
		client, err := NewS3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &Backend{Repo: kv.NewS3Repository(client, cfg.S3Bucket, cfg.S3Prefix)}, nil

	case config.BackendMemory:
		return &Backend{Repo: kv.NewMemoryRepository()}, nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

// RunMigrations applies the embedded migrations in dir using the given
// goose dialect.
func RunMigrations(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return gooseUpContext(ctx, db, dir)
}

// OpenSQLite opens (creating if needed) the SQLite database at dsn and
// migrates it.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := RunMigrations(ctx, db, "sqlite3", migrations.SQLiteDir); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return db, nil
}

// OpenPostgres connects through the pgx stdlib driver and migrates.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := RunMigrations(ctx, db, "postgres", migrations.PostgresDir); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return db, nil
}

// NewS3Client builds an S3 client for an S3-compatible endpoint such as
// MinIO. Static credentials are used when a root user is configured,
// otherwise the default AWS credential chain applies.
func NewS3Client(ctx context.Context, cfg *config.Config) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3RootUser != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3RootUser, cfg.S3RootPassword, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("aws config error: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		}
		o.UsePathStyle = true
	}), nil
}
