package testutil

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/alexanderramin/ozpath/internal/domain"
)

// TestPassword is the password behind every NewTestUser hash.
const TestPassword = "secret1"

// User options
type UserOption func(*domain.UserProfile)

func WithCreatedAt(t time.Time) UserOption {
	return func(u *domain.UserProfile) {
		u.CreatedAt = t
	}
}

func WithPassword(password string) UserOption {
	return func(u *domain.UserProfile) {
		u.PasswordHash = mustHash(password)
	}
}

func mustHash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}

func NewTestUser(name, email string, opts ...UserOption) domain.UserProfile {
	u := domain.UserProfile{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: mustHash(TestPassword),
		CreatedAt:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

// Eligibility answer options
type EligibilityOption func(*domain.EligibilityAnswers)

func WithAge(age int) EligibilityOption {
	return func(a *domain.EligibilityAnswers) {
		a.Age = age
	}
}

func WithPartner(english domain.ProficiencyLevel) EligibilityOption {
	return func(a *domain.EligibilityAnswers) {
		a.MaritalStatus = domain.MaritalMarried
		a.PartnerEnglishLevel = english
	}
}

func WithExperience(years int) EligibilityOption {
	return func(a *domain.EligibilityAnswers) {
		a.YearsExperience = years
	}
}

// NewTestEligibility returns a completed questionnaire for a 28 year old
// single software engineer. It scores 80.
func NewTestEligibility(opts ...EligibilityOption) domain.EligibilityAnswers {
	a := domain.EligibilityAnswers{
		Age:             28,
		EnglishLevel:    domain.ProficiencyProficient,
		Occupation:      "Software Engineer",
		YearsExperience: 6,
		Qualification:   domain.QualBachelors,
		MaritalStatus:   domain.MaritalSingle,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}
