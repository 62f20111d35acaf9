package repository

import (
	"context"

	"github.com/alexanderramin/ozpath/internal/domain"
)

type UserRepo interface {
	List(ctx context.Context) ([]domain.UserProfile, error)
	FindByEmail(ctx context.Context, email string) (*domain.UserProfile, error)
	Add(ctx context.Context, u domain.UserProfile) error
}

type SessionRepo interface {
	Current(ctx context.Context) (*domain.UserProfile, error)
	Set(ctx context.Context, u domain.UserProfile) error
	Clear(ctx context.Context) error
}

type ActionItemRepo interface {
	ListByEmail(ctx context.Context, email string) ([]domain.ActionItem, error)
	SaveForEmail(ctx context.Context, email string, items []domain.ActionItem) error
}
