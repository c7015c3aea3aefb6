package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gadulu-gruhalu/archive/internal/domain"
	"github.com/gadulu-gruhalu/archive/internal/repo"
	"github.com/gadulu-gruhalu/archive/internal/service"
)

func newAccountService(seed ...domain.Contributor) *service.AccountService {
	return service.NewAccountService(repo.NewMemoryContributorRepo(seed...), bcrypt.MinCost)
}

func TestAccountService_Register(t *testing.T) {
	svc := newAccountService()

	got, err := svc.Register(context.Background(), "Ravi", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "ravi", got.Username)
	assert.Equal(t, "Ravi", got.DisplayName)
	assert.Equal(t, domain.DefaultBadge, got.Badge)
	assert.NotEqual(t, "s3cret", got.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("s3cret")))
}

func TestAccountService_Register_Taken(t *testing.T) {
	svc := newAccountService(domain.SeedContributors()...)

	_, err := svc.Register(context.Background(), "S_Rao", "pw")

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAccountService_Register_Blank(t *testing.T) {
	svc := newAccountService()

	_, err := svc.Register(context.Background(), " ", "pw")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Register(context.Background(), "ravi", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAccountService_Register_PasswordTooLong(t *testing.T) {
	svc := newAccountService()

	_, err := svc.Register(context.Background(), "ravi", strings.Repeat("x", 73))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAccountService_Login(t *testing.T) {
	svc := newAccountService()
	ctx := context.Background()
	_, err := svc.Register(ctx, "ravi", "s3cret")
	require.NoError(t, err)

	got, err := svc.Login(ctx, " RAVI ", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "ravi", got.Username)
}

func TestAccountService_Login_Failures(t *testing.T) {
	svc := newAccountService(domain.SeedContributors()...)
	ctx := context.Background()
	_, err := svc.Register(ctx, "ravi", "s3cret")
	require.NoError(t, err)

	for name, creds := range map[string][2]string{
		"wrong password":       {"ravi", "nope"},
		"unknown user":         {"nobody", "s3cret"},
		"contributor, no hash": {"s_rao", ""},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Login(ctx, creds[0], creds[1])
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}
