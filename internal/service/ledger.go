package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gadulu-gruhalu/archive/internal/domain"
	"github.com/gadulu-gruhalu/archive/internal/repo"
)

// LedgerService tracks contributors and how many records each has submitted.
// Usernames are matched case-insensitively; the display name keeps the
// casing of the first appearance.
type LedgerService struct {
	contributors repo.ContributorRepo
}

// NewLedgerService constructs a LedgerService backed by the provided ContributorRepo.
func NewLedgerService(contributors repo.ContributorRepo) *LedgerService {
	return &LedgerService{contributors: contributors}
}

// Ensure returns the contributor for username, creating it with zero
// contributions and domain.DefaultBadge if it does not exist yet.
// Calling it again for the same username changes nothing.
func (s *LedgerService) Ensure(ctx context.Context, username string) (domain.Contributor, error) {
	key := NormalizeUsername(username)
	if key == "" {
		return domain.Contributor{}, fmt.Errorf("service.LedgerService.Ensure: %w: username is required", domain.ErrValidation)
	}

	existing, err := s.contributors.GetByUsername(ctx, key)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Contributor{}, fmt.Errorf("service.LedgerService.Ensure: %w", err)
	}

	created, err := s.contributors.Create(ctx, domain.Contributor{
		Username:    key,
		DisplayName: strings.TrimSpace(username),
		Badge:       domain.DefaultBadge,
	})
	if errors.Is(err, domain.ErrConflict) {
		// Created concurrently between the lookup and the insert.
		created, err = s.contributors.GetByUsername(ctx, key)
	}
	if err != nil {
		return domain.Contributor{}, fmt.Errorf("service.LedgerService.Ensure: %w", err)
	}
	return created, nil
}

// RecordContribution increments the contributor's count by exactly one.
// Returns domain.ErrNotFound if the contributor was never ensured.
func (s *LedgerService) RecordContribution(ctx context.Context, username string) (domain.Contributor, error) {
	updated, err := s.contributors.IncrementContributions(ctx, NormalizeUsername(username))
	if err != nil {
		return domain.Contributor{}, fmt.Errorf("service.LedgerService.RecordContribution: %w", err)
	}
	return updated, nil
}

// Get returns a contributor by username.
// Returns domain.ErrNotFound if there is none.
func (s *LedgerService) Get(ctx context.Context, username string) (domain.Contributor, error) {
	c, err := s.contributors.GetByUsername(ctx, NormalizeUsername(username))
	if err != nil {
		return domain.Contributor{}, fmt.Errorf("service.LedgerService.Get: %w", err)
	}
	return c, nil
}
