// Package drafts persists in-progress form snapshots in the local database,
// keyed by editing context. The store is a convenience layer: callers are
// expected to treat its failures as non-events.
package drafts

import "context"

type Repository interface {
	// Get returns the stored draft bytes for key, or nil when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or replaces the draft stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the draft stored under key. Absent keys are fine.
	Delete(ctx context.Context, key string) error

	// Keys lists all keys that currently hold a draft.
	Keys(ctx context.Context) ([]string, error)
}
