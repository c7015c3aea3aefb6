package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/gadulu-gruhalu/archive/internal/domain"
	"github.com/gadulu-gruhalu/archive/internal/repo"
)

// AccountService handles signup and login.
// Passwords are stored as bcrypt hashes, never in plain text.
type AccountService struct {
	contributors repo.ContributorRepo
	cost         int
}

// NewAccountService constructs an AccountService hashing with the given
// bcrypt cost. Pass bcrypt.DefaultCost in production.
func NewAccountService(contributors repo.ContributorRepo, cost int) *AccountService {
	return &AccountService{contributors: contributors, cost: cost}
}

// Register creates a contributor with a password.
// Returns domain.ErrValidation for a blank username or password and
// domain.ErrConflict if the username is taken, including by a contributor
// that was created implicitly through a submission.
func (s *AccountService) Register(ctx context.Context, username, password string) (domain.Contributor, error) {
	key := NormalizeUsername(username)
	if key == "" || password == "" {
		return domain.Contributor{}, fmt.Errorf("service.AccountService.Register: %w: username and password are required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return domain.Contributor{}, fmt.Errorf("service.AccountService.Register: %w: password must be at most 72 bytes", domain.ErrValidation)
	}
	if err != nil {
		return domain.Contributor{}, fmt.Errorf("service.AccountService.Register: hash password: %w", err)
	}

	created, err := s.contributors.Create(ctx, domain.Contributor{
		Username:     key,
		DisplayName:  strings.TrimSpace(username),
		PasswordHash: string(hash),
		Badge:        domain.DefaultBadge,
	})
	if err != nil {
		return domain.Contributor{}, fmt.Errorf("service.AccountService.Register: %w", err)
	}
	return created, nil
}

// Login checks a username/password pair.
// Every failure (unknown user, contributor without a password, wrong
// password) is reported as domain.ErrUnauthorized.
func (s *AccountService) Login(ctx context.Context, username, password string) (domain.Contributor, error) {
	c, err := s.contributors.GetByUsername(ctx, NormalizeUsername(username))
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Contributor{}, fmt.Errorf("service.AccountService.Login: %w: invalid username or password", domain.ErrUnauthorized)
	}
	if err != nil {
		return domain.Contributor{}, fmt.Errorf("service.AccountService.Login: %w", err)
	}
	if c.PasswordHash == "" || bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
		return domain.Contributor{}, fmt.Errorf("service.AccountService.Login: %w: invalid username or password", domain.ErrUnauthorized)
	}
	return c, nil
}
