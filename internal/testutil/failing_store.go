package testutil

import (
	"context"

	"github.com/alexanderramin/ozpath/internal/kv"
)

// FailSetTransactor wraps a Transactor so that writing Key inside a
// transaction returns Err. Use it to break a multi-key use case halfway
// and check that nothing was committed.
type FailSetTransactor struct {
	Inner kv.Transactor
	Key   string
	Err   error
}

func (f *FailSetTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context, s kv.Store) error) error {
	return f.Inner.WithinTx(ctx, func(ctx context.Context, s kv.Store) error {
		return fn(ctx, &failSetStore{Store: s, key: f.Key, err: f.Err})
	})
}

type failSetStore struct {
	kv.Store
	key string
	err error
}

func (s *failSetStore) Set(ctx context.Context, key, value string) error {
	if key == s.key {
		return s.err
	}
	return s.Store.Set(ctx, key, value)
}
