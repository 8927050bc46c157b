package kv

import (
	"context"
)

// Repository is a durable string-to-string mapping. Get reports found=false
// (and a nil error) when the key has never been set.
type Repository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
}
