// Package state implements the durable client-side key-value store backing
// the session cache and the cross-navigation message slots. Values live in
// a single sqlite table so that writes survive process restarts.
package state

import "context"

// Repository is the durable key-value contract used by the session store
// and the mailbox.
//
// Get returns (nil, nil) when the key is absent; absence is a normal state
// for every key this client keeps.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	DeleteMany(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
