package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gadulu-gruhalu/archive/internal/domain"
	"github.com/gadulu-gruhalu/archive/internal/repo"
	"github.com/gadulu-gruhalu/archive/internal/service"
)

func TestLedgerService_Ensure_CreatesWithDefaults(t *testing.T) {
	svc := service.NewLedgerService(repo.NewMemoryContributorRepo())

	got, err := svc.Ensure(context.Background(), "  Ravi ")

	require.NoError(t, err)
	assert.Equal(t, "ravi", got.Username)
	assert.Equal(t, "Ravi", got.DisplayName)
	assert.Equal(t, 0, got.Contributions)
	assert.Equal(t, domain.DefaultBadge, got.Badge)
}

func TestLedgerService_Ensure_Idempotent(t *testing.T) {
	svc := service.NewLedgerService(repo.NewMemoryContributorRepo(domain.SeedContributors()...))
	ctx := context.Background()

	first, err := svc.Ensure(ctx, "s_rao")
	require.NoError(t, err)
	second, err := svc.Ensure(ctx, "S_RAO")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, second.Contributions, "existing counter untouched")
	assert.Equal(t, "Heritage Keeper 🏅", second.Badge, "existing badge untouched")
}

func TestLedgerService_Ensure_BlankUsername(t *testing.T) {
	svc := service.NewLedgerService(repo.NewMemoryContributorRepo())

	_, err := svc.Ensure(context.Background(), "   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLedgerService_Ensure_ConcurrentCreate_ReadsWinner(t *testing.T) {
	winner := domain.Contributor{Username: "ravi", DisplayName: "Ravi", Contributions: 1}
	lookups := 0
	r := &mockContributorRepo{
		getByUsername: func(_ context.Context, _ string) (domain.Contributor, error) {
			lookups++
			if lookups == 1 {
				return domain.Contributor{}, domain.ErrNotFound
			}
			return winner, nil
		},
		create: func(_ context.Context, _ domain.Contributor) (domain.Contributor, error) {
			return domain.Contributor{}, domain.ErrConflict
		},
	}
	svc := service.NewLedgerService(r)

	got, err := svc.Ensure(context.Background(), "ravi")

	require.NoError(t, err)
	assert.Equal(t, winner, got)
}

func TestLedgerService_Ensure_RepoError(t *testing.T) {
	boom := errors.New("connection refused")
	r := &mockContributorRepo{
		getByUsername: func(_ context.Context, _ string) (domain.Contributor, error) { return domain.Contributor{}, boom },
	}
	svc := service.NewLedgerService(r)

	_, err := svc.Ensure(context.Background(), "ravi")

	assert.ErrorIs(t, err, boom)
}

func TestLedgerService_RecordContribution_IncrementsByOne(t *testing.T) {
	svc := service.NewLedgerService(repo.NewMemoryContributorRepo())
	ctx := context.Background()
	_, err := svc.Ensure(ctx, "ravi")
	require.NoError(t, err)

	got, err := svc.RecordContribution(ctx, "Ravi")

	require.NoError(t, err)
	assert.Equal(t, 1, got.Contributions)
}

func TestLedgerService_RecordContribution_Unknown(t *testing.T) {
	svc := service.NewLedgerService(repo.NewMemoryContributorRepo())

	_, err := svc.RecordContribution(context.Background(), "nobody")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLedgerService_Get_NotFound(t *testing.T) {
	svc := service.NewLedgerService(repo.NewMemoryContributorRepo())

	_, err := svc.Get(context.Background(), "nobody")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
