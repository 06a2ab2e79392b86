package ports

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by RenderCache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("render cache miss")

// RenderCache stores rendered output so identical requests are not re-rendered.
type RenderCache interface {
	// Get returns the cached value for key.
	// Returns ErrCacheMiss if nothing is stored under key.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
