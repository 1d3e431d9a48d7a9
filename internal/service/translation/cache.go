package translation

import "context"

// Cache stores finished translations. Entries are write-once: Add never
// replaces an existing value.
type Cache interface {
	// Get returns the cached translation for key.
	Get(ctx context.Context, key string) (string, bool)
	// Add stores value under key unless the key already exists and reports whether it was stored.
	Add(ctx context.Context, key, value string) bool
}

// Sizer is implemented by caches that can report their entry count cheaply.
type Sizer interface {
	Len() int
}
