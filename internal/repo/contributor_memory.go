package repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gadulu-gruhalu/archive/internal/domain"
)

// MemoryContributorRepo keeps contributors in process memory. It backs the
// file-store deployment, where contributors live for the process lifetime.
type MemoryContributorRepo struct {
	mu         sync.Mutex
	now        func() time.Time
	byUsername map[string]domain.Contributor
}

// Ensure MemoryContributorRepo satisfies ContributorRepo.
var _ ContributorRepo = (*MemoryContributorRepo)(nil)

// NewMemoryContributorRepo returns a repo preloaded with seed contributors.
// Seeds without an ID or CreatedAt get one assigned.
func NewMemoryContributorRepo(seed ...domain.Contributor) *MemoryContributorRepo {
	r := &MemoryContributorRepo{now: time.Now, byUsername: map[string]domain.Contributor{}}
	for _, c := range seed {
		r.byUsername[c.Username] = r.stamp(c)
	}
	return r
}

// Create stores c under its username.
func (r *MemoryContributorRepo) Create(_ context.Context, c domain.Contributor) (domain.Contributor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[c.Username]; ok {
		return domain.Contributor{}, fmt.Errorf("repo.MemoryContributorRepo.Create: %w", domain.ErrConflict)
	}
	stored := r.stamp(c)
	r.byUsername[c.Username] = stored
	return stored, nil
}

// GetByUsername returns the contributor stored under username.
func (r *MemoryContributorRepo) GetByUsername(_ context.Context, username string) (domain.Contributor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byUsername[username]
	if !ok {
		return domain.Contributor{}, fmt.Errorf("repo.MemoryContributorRepo.GetByUsername: %w", domain.ErrNotFound)
	}
	return c, nil
}

// IncrementContributions adds one to the stored counter.
func (r *MemoryContributorRepo) IncrementContributions(_ context.Context, username string) (domain.Contributor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byUsername[username]
	if !ok {
		return domain.Contributor{}, fmt.Errorf("repo.MemoryContributorRepo.IncrementContributions: %w", domain.ErrNotFound)
	}
	c.Contributions++
	r.byUsername[username] = c
	return c, nil
}

func (r *MemoryContributorRepo) stamp(c domain.Contributor) domain.Contributor {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.now().UTC()
	}
	return c
}
