package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gadulu-gruhalu/archive/internal/domain"
	"github.com/gadulu-gruhalu/archive/internal/handler"
	"github.com/gadulu-gruhalu/archive/internal/handler/gen"
)

// mockPlaceServicer is a test double for handler.PlaceServicer.
// Set only the method fields your test needs.
type mockPlaceServicer struct {
	submit func(ctx context.Context, sub domain.Submission) (domain.Place, error)
	list   func(ctx context.Context, filter domain.PlaceFilter, page domain.PaginationParams, lang string) ([]domain.Place, int, error)
	get    func(ctx context.Context, id, lang string) (domain.Place, error)
	facets func(ctx context.Context) (domain.PlaceFacets, error)
}

func (m *mockPlaceServicer) Submit(ctx context.Context, sub domain.Submission) (domain.Place, error) {
	return m.submit(ctx, sub)
}
func (m *mockPlaceServicer) List(ctx context.Context, filter domain.PlaceFilter, page domain.PaginationParams, lang string) ([]domain.Place, int, error) {
	return m.list(ctx, filter, page, lang)
}
func (m *mockPlaceServicer) Get(ctx context.Context, id, lang string) (domain.Place, error) {
	return m.get(ctx, id, lang)
}
func (m *mockPlaceServicer) Facets(ctx context.Context) (domain.PlaceFacets, error) {
	return m.facets(ctx)
}

// compile-time check: mockPlaceServicer must satisfy handler.PlaceServicer.
var _ handler.PlaceServicer = (*mockPlaceServicer)(nil)

type mockContributorServicer struct {
	get func(ctx context.Context, username string) (domain.Contributor, error)
}

func (m *mockContributorServicer) Get(ctx context.Context, username string) (domain.Contributor, error) {
	return m.get(ctx, username)
}

var _ handler.ContributorServicer = (*mockContributorServicer)(nil)

type mockAccountServicer struct {
	register func(ctx context.Context, username, password string) (domain.Contributor, error)
	login    func(ctx context.Context, username, password string) (domain.Contributor, error)
}

func (m *mockAccountServicer) Register(ctx context.Context, username, password string) (domain.Contributor, error) {
	return m.register(ctx, username, password)
}
func (m *mockAccountServicer) Login(ctx context.Context, username, password string) (domain.Contributor, error) {
	return m.login(ctx, username, password)
}

var _ handler.AccountServicer = (*mockAccountServicer)(nil)

type mockStoryteller struct {
	generate func(ctx context.Context, placeName string, points []string) (string, error)
}

func (m *mockStoryteller) Generate(ctx context.Context, placeName string, points []string) (string, error) {
	return m.generate(ctx, placeName, points)
}

var _ handler.Storyteller = (*mockStoryteller)(nil)

// ---- helpers ---------------------------------------------------------------

// newRouter wires a Server into the generated chi router with the same
// error handlers main.go installs.
func newRouter(srv *handler.Server) http.Handler {
	log := slog.New(slog.DiscardHandler)
	return gen.HandlerWithOptions(
		gen.NewStrictHandlerWithOptions(srv, nil, handler.StrictOptions(log)),
		gen.ChiServerOptions{ErrorHandlerFunc: handler.ParamErrorHandler},
	)
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, body *bytes.Buffer) gen.ErrorResponse {
	t.Helper()
	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}
