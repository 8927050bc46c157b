package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophtodo/internal/flagx"
	"github.com/dmitrijs2005/gophtodo/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "absent" apart from zero values, so a partial file only
// overrides what it names.
type JsonConfig struct {
	StorageBackend *string         `json:"storage_backend"`
	SQLitePath     *string         `json:"sqlite_path"`
	DatabaseDSN    *string         `json:"database_dsn"`
	S3Bucket       *string         `json:"s3_bucket"`
	S3Region       *string         `json:"s3_region"`
	S3BaseEndpoint *string         `json:"s3_base_endpoint"`
	S3RootUser     *string         `json:"s3_root_user"`
	S3RootPassword *string         `json:"s3_root_password"`
	S3Prefix       *string         `json:"s3_prefix"`
	SeedURL        *string         `json:"seed_url"`
	SeedLimit      *int            `json:"seed_limit"`
	SeedTimeout    *timex.Duration `json:"seed_timeout"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c/-config. It does nothing when no file is given and panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.StorageBackend, jc.StorageBackend)
	setString(&cfg.SQLitePath, jc.SQLitePath)
	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setString(&cfg.S3RootUser, jc.S3RootUser)
	setString(&cfg.S3RootPassword, jc.S3RootPassword)
	setString(&cfg.S3Prefix, jc.S3Prefix)
	setString(&cfg.SeedURL, jc.SeedURL)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.SeedLimit != nil {
		cfg.SeedLimit = *jc.SeedLimit
	}
	if jc.SeedTimeout != nil {
		cfg.SeedTimeout = jc.SeedTimeout.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
