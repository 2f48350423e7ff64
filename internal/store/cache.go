package store

import "context"

// ListingCache defines the interface for the single-entry cache holding the
// serialized task listing. There is exactly one cache key in the whole
// system; any mutation invalidates it unconditionally, which is what makes
// the whole-listing cache correct without dependency tracking.
type ListingCache interface {
	// Get returns the cached serialized listing and true on a hit.
	// A missing or expired entry returns (nil, false, nil). A transport
	// failure returns a non-nil error; callers are expected to treat it
	// like a miss and fall through to the store.
	Get(ctx context.Context) ([]byte, bool, error)

	// Set stores the serialized listing, overwriting any previous value.
	// The entry expires after the cache's configured TTL.
	Set(ctx context.Context, payload []byte) error

	// Invalidate removes the listing entry. Invalidating when nothing is
	// cached is a no-op, not an error.
	Invalidate(ctx context.Context) error
}
