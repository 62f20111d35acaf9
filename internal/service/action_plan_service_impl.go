package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/alexanderramin/ozpath/internal/domain"
	"github.com/alexanderramin/ozpath/internal/kv"
	"github.com/alexanderramin/ozpath/internal/repository"
)

type actionPlanService struct {
	tx       kv.Transactor
	decode   repository.DecodeObserver
	observer UseCaseObserver
}

func NewActionPlanService(tx kv.Transactor, decode repository.DecodeObserver, observers ...UseCaseObserver) ActionPlanService {
	return &actionPlanService{
		tx:       tx,
		decode:   decode,
		observer: useCaseObserverOrNoop(observers),
	}
}

// load returns the saved checklist, writing the defaults first if none exists.
func (s *actionPlanService) load(ctx context.Context, repo repository.ActionItemRepo, email string) ([]domain.ActionItem, error) {
	items, err := repo.ListByEmail(ctx, email)
	if err == nil {
		return items, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	items = DefaultActionItems()
	if err := repo.SaveForEmail(ctx, email, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *actionPlanService) List(ctx context.Context, email string, category domain.ActionCategory) (items []domain.ActionItem, err error) {
	if email == "" {
		return nil, ErrNotLoggedIn
	}
	if category != "" && !domain.ValidActionCategories[string(category)] {
		v := &ValidationError{}
		v.add("category", fmt.Sprintf("unknown category %q", category))
		return nil, v
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context, st kv.Store) error {
		items, err = s.load(ctx, repository.NewKVActionItemRepo(st, s.decode), email)
		return err
	})
	if err != nil {
		return nil, err
	}
	if category == "" {
		return items, nil
	}
	filtered := make([]domain.ActionItem, 0, len(items))
	for _, it := range items {
		if it.Category == category {
			filtered = append(filtered, it)
		}
	}
	return filtered, nil
}

func (s *actionPlanService) Toggle(ctx context.Context, email, id string) (toggled *domain.ActionItem, err error) {
	defer observe(ctx, s.observer, "toggle-action-item", map[string]any{"item_id": id})(&err)

	if email == "" {
		return nil, ErrNotLoggedIn
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context, st kv.Store) error {
		repo := repository.NewKVActionItemRepo(st, s.decode)
		items, err := s.load(ctx, repo, email)
		if err != nil {
			return err
		}
		for i := range items {
			if items[i].ID != id {
				continue
			}
			items[i].Completed = !items[i].Completed
			item := items[i]
			toggled = &item
			return repo.SaveForEmail(ctx, email, items)
		}
		return fmt.Errorf("item %s: %w", id, ErrActionItemNotFound)
	})
	if err != nil {
		return nil, err
	}
	return toggled, nil
}

// Progress is the rounded percentage of completed items, 0 for an empty list.
func Progress(items []domain.ActionItem) int {
	if len(items) == 0 {
		return 0
	}
	done := 0
	for _, it := range items {
		if it.Completed {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(items)) * 100))
}
