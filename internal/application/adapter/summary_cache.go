// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// SummaryCache defines the interface for caching dashboard summaries.
// A cache miss is reported as (false, nil); errors are reserved for the
// backing store misbehaving.
type SummaryCache interface {
	// Get retrieves a cached summary payload by key.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a summary payload under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Invalidate removes all cached summaries.
	Invalidate(ctx context.Context) error
}
