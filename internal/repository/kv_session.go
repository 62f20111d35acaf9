package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/ozpath/internal/domain"
	"github.com/alexanderramin/ozpath/internal/kv"
)

// KVSessionRepo keeps the signed-in account under KeyCurrentUser. The
// password hash is never copied into the session.
type KVSessionRepo struct {
	store kv.Store
	obs   DecodeObserver
}

func NewKVSessionRepo(store kv.Store, obs DecodeObserver) *KVSessionRepo {
	return &KVSessionRepo{store: store, obs: orNoop(obs)}
}

func (r *KVSessionRepo) Current(ctx context.Context) (*domain.UserProfile, error) {
	var u domain.UserProfile
	found, err := readJSON(ctx, r.store, r.obs, KeyCurrentUser, &u)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if !found || u.Email == "" {
		return nil, fmt.Errorf("session: %w", ErrNotFound)
	}
	return &u, nil
}

func (r *KVSessionRepo) Set(ctx context.Context, u domain.UserProfile) error {
	u.PasswordHash = ""
	if err := writeJSON(ctx, r.store, KeyCurrentUser, u); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (r *KVSessionRepo) Clear(ctx context.Context) error {
	if err := r.store.Remove(ctx, KeyCurrentUser); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
