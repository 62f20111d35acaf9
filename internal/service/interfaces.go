package service

import (
	"context"

	"github.com/alexanderramin/ozpath/internal/domain"
)

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.UserProfile, error)
	Login(ctx context.Context, email, password string) (*domain.UserProfile, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*domain.UserProfile, error)
}

type ActionPlanService interface {
	// List returns the checklist for email, seeding the defaults on first
	// use. An empty category returns every item.
	List(ctx context.Context, email string, category domain.ActionCategory) ([]domain.ActionItem, error)
	Toggle(ctx context.Context, email, id string) (*domain.ActionItem, error)
}
