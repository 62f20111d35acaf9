package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/alexanderramin/ozpath/internal/domain"
	"github.com/alexanderramin/ozpath/internal/kv"
	"github.com/alexanderramin/ozpath/internal/repository"
)

const minPasswordLen = 6

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// AuthConfig tunes the account store. Zero values pick the defaults.
type AuthConfig struct {
	BcryptCost int
	Decode     repository.DecodeObserver
	Now        func() time.Time
}

type authService struct {
	store    kv.Store
	tx       kv.Transactor
	cost     int
	decode   repository.DecodeObserver
	now      func() time.Time
	observer UseCaseObserver
}

func NewAuthService(store kv.Store, tx kv.Transactor, cfg AuthConfig, observers ...UseCaseObserver) AuthService {
	s := &authService{
		store:    store,
		tx:       tx,
		cost:     cfg.BcryptCost,
		decode:   cfg.Decode,
		now:      cfg.Now,
		observer: useCaseObserverOrNoop(observers),
	}
	if s.cost == 0 {
		s.cost = bcrypt.DefaultCost
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func validateRegistration(in RegisterInput) error {
	v := &ValidationError{}
	if strings.TrimSpace(in.Name) == "" {
		v.add("name", "Name is required")
	}
	switch {
	case in.Email == "":
		v.add("email", "Email is required")
	case !emailPattern.MatchString(in.Email):
		v.add("email", "Email is invalid")
	}
	switch {
	case in.Password == "":
		v.add("password", "Password is required")
	case len(in.Password) < minPasswordLen:
		v.add("password", "Password must be at least 6 characters")
	}
	if in.Password != in.ConfirmPassword {
		v.add("confirmPassword", "Passwords do not match")
	}
	if v.empty() {
		return nil
	}
	return v
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (user *domain.UserProfile, err error) {
	defer observe(ctx, s.observer, "register", nil)(&err)

	in.Email = strings.TrimSpace(in.Email)
	if err = validateRegistration(in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	profile := domain.UserProfile{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context, st kv.Store) error {
		users := repository.NewKVUserRepo(st, s.decode)
		if _, err := users.FindByEmail(ctx, profile.Email); err == nil {
			return ErrEmailInUse
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if err := users.Add(ctx, profile); err != nil {
			return err
		}
		return repository.NewKVSessionRepo(st, s.decode).Set(ctx, profile)
	})
	if err != nil {
		return nil, err
	}
	profile.PasswordHash = ""
	return &profile, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (user *domain.UserProfile, err error) {
	defer observe(ctx, s.observer, "login", nil)(&err)

	email = strings.TrimSpace(email)
	v := &ValidationError{}
	if email == "" {
		v.add("email", "Email is required")
	}
	if password == "" {
		v.add("password", "Password is required")
	}
	if !v.empty() {
		return nil, v
	}

	found, err := repository.NewKVUserRepo(s.store, s.decode).FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	if err = repository.NewKVSessionRepo(s.store, s.decode).Set(ctx, *found); err != nil {
		return nil, err
	}
	found.PasswordHash = ""
	return found, nil
}

func (s *authService) Logout(ctx context.Context) error {
	return repository.NewKVSessionRepo(s.store, s.decode).Clear(ctx)
}

func (s *authService) Current(ctx context.Context) (*domain.UserProfile, error) {
	u, err := repository.NewKVSessionRepo(s.store, s.decode).Current(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotLoggedIn
	}
	return u, err
}
