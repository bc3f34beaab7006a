// Package credentials provides the durable, single-slot persistence used by
// the session manager. Values are opaque serialized records keyed by a
// well-known name; the slot is overwritten, never versioned.
package credentials

import "context"

// Repository is scoped key-value persistence for credential records.
//
// Get returns (nil, nil) when no record exists under the key: absence is a
// normal state, not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
