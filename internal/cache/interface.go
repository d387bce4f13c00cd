package cache

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by Get when the key does not exist.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache defines the key-value store used to memoize transcripts and
// summaries. Entries never expire; Flush is the only way to clear them.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Flush(ctx context.Context) error
	Close() error
}
