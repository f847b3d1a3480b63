package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("unknown role")

// Service contains business logic for users.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Get returns a user by ID.
func (s *Service) Get(ctx context.Context, userID string) (User, error) {
	if userID == "" {
		return User{}, errors.New("userID is required")
	}
	return s.Repo.GetByID(ctx, userID)
}

// ListByRole returns all users holding the given role.
func (s *Service) ListByRole(ctx context.Context, role string) ([]User, error) {
	if !ValidRole(role) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}
	return s.Repo.ListByRole(ctx, role)
}

// EnsureByEmail finds the user for an email or provisions a new one.
// New users default to the candidate role; staff roles are assigned out of band.
func (s *Service) EnsureByEmail(ctx context.Context, email, firstName, lastName string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return User{}, errors.New("email is required")
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	user := User{
		ID:        uuid.NewString(),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Role:      RoleCandidate,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Upsert(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}
