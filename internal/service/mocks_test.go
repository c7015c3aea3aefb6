package service_test

import (
	"context"

	"github.com/gadulu-gruhalu/archive/internal/domain"
	"github.com/gadulu-gruhalu/archive/internal/repo"
)

// mockPlaceRepo is a hand-written test double for repo.PlaceRepo.
// Each method is a function field — set only the ones your test needs.
type mockPlaceRepo struct {
	upsert  func(ctx context.Context, place domain.Place) (domain.Place, error)
	getByID func(ctx context.Context, id string) (domain.Place, error)
	list    func(ctx context.Context) ([]domain.Place, error)
}

func (m *mockPlaceRepo) Upsert(ctx context.Context, place domain.Place) (domain.Place, error) {
	return m.upsert(ctx, place)
}
func (m *mockPlaceRepo) GetByID(ctx context.Context, id string) (domain.Place, error) {
	return m.getByID(ctx, id)
}
func (m *mockPlaceRepo) List(ctx context.Context) ([]domain.Place, error) {
	return m.list(ctx)
}

// compile-time check: mockPlaceRepo must satisfy repo.PlaceRepo.
var _ repo.PlaceRepo = (*mockPlaceRepo)(nil)

// mockContributorRepo is a hand-written test double for repo.ContributorRepo.
type mockContributorRepo struct {
	create                 func(ctx context.Context, c domain.Contributor) (domain.Contributor, error)
	getByUsername          func(ctx context.Context, username string) (domain.Contributor, error)
	incrementContributions func(ctx context.Context, username string) (domain.Contributor, error)
}

func (m *mockContributorRepo) Create(ctx context.Context, c domain.Contributor) (domain.Contributor, error) {
	return m.create(ctx, c)
}
func (m *mockContributorRepo) GetByUsername(ctx context.Context, username string) (domain.Contributor, error) {
	return m.getByUsername(ctx, username)
}
func (m *mockContributorRepo) IncrementContributions(ctx context.Context, username string) (domain.Contributor, error) {
	return m.incrementContributions(ctx, username)
}

var _ repo.ContributorRepo = (*mockContributorRepo)(nil)

// memoryPlaceRepo is an order-preserving in-memory PlaceRepo for flow tests.
type memoryPlaceRepo struct {
	places []domain.Place
}

func (m *memoryPlaceRepo) Upsert(_ context.Context, place domain.Place) (domain.Place, error) {
	for i := range m.places {
		if m.places[i].ID == place.ID {
			m.places[i] = place
			return place, nil
		}
	}
	m.places = append(m.places, place)
	return place, nil
}
func (m *memoryPlaceRepo) GetByID(_ context.Context, id string) (domain.Place, error) {
	for _, p := range m.places {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Place{}, domain.ErrNotFound
}
func (m *memoryPlaceRepo) List(_ context.Context) ([]domain.Place, error) {
	return append([]domain.Place(nil), m.places...), nil
}

var _ repo.PlaceRepo = (*memoryPlaceRepo)(nil)
