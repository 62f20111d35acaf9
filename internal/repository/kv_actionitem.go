package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/ozpath/internal/domain"
	"github.com/alexanderramin/ozpath/internal/kv"
)

type KVActionItemRepo struct {
	store kv.Store
	obs   DecodeObserver
}

func NewKVActionItemRepo(store kv.Store, obs DecodeObserver) *KVActionItemRepo {
	return &KVActionItemRepo{store: store, obs: orNoop(obs)}
}

// ListByEmail returns ErrNotFound when no checklist has been saved yet.
func (r *KVActionItemRepo) ListByEmail(ctx context.Context, email string) ([]domain.ActionItem, error) {
	var items []domain.ActionItem
	key := ActionItemsKey(email)
	found, err := readJSON(ctx, r.store, r.obs, key, &items)
	if err != nil {
		return nil, fmt.Errorf("loading action items: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("action items for %s: %w", email, ErrNotFound)
	}
	return items, nil
}

func (r *KVActionItemRepo) SaveForEmail(ctx context.Context, email string, items []domain.ActionItem) error {
	if err := writeJSON(ctx, r.store, ActionItemsKey(email), items); err != nil {
		return fmt.Errorf("saving action items: %w", err)
	}
	return nil
}
