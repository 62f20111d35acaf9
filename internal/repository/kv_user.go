package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/ozpath/internal/domain"
	"github.com/alexanderramin/ozpath/internal/kv"
)

// KVUserRepo stores every account as one JSON array under KeyUsers.
type KVUserRepo struct {
	store kv.Store
	obs   DecodeObserver
}

func NewKVUserRepo(store kv.Store, obs DecodeObserver) *KVUserRepo {
	return &KVUserRepo{store: store, obs: orNoop(obs)}
}

func (r *KVUserRepo) List(ctx context.Context) ([]domain.UserProfile, error) {
	var users []domain.UserProfile
	found, err := readJSON(ctx, r.store, r.obs, KeyUsers, &users)
	if err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}
	if !found {
		return nil, nil
	}
	return users, nil
}

// FindByEmail matches the address exactly.
func (r *KVUserRepo) FindByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
}

func (r *KVUserRepo) Add(ctx context.Context, u domain.UserProfile) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	users = append(users, u)
	if err := writeJSON(ctx, r.store, KeyUsers, users); err != nil {
		return fmt.Errorf("saving users: %w", err)
	}
	return nil
}
