// Package kv is the string key-value store that accounts, sessions and
// action plans persist into.
package kv

import "context"

// Store is a flat string-to-string map. Get reports ok=false for a
// missing key; that is not an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

// Transactor runs fn against a Store whose writes become visible only if
// fn returns nil. Concurrent transactions on the same backend serialize.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}
