package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gadulu-gruhalu/archive/internal/domain"
	"github.com/gadulu-gruhalu/archive/internal/handler"
	"github.com/gadulu-gruhalu/archive/internal/handler/gen"
)

func newPlaceRouter(svc handler.PlaceServicer) http.Handler {
	return newRouter(handler.NewServer(svc, nil, nil, nil))
}

func placeFixture() domain.Place {
	return domain.Place{
		ID:            "gadwal_fort",
		Name:          "Gadwal Fort",
		Type:          "Fortress",
		Region:        "Jogulamba Gadwal",
		Area:          "Gadwal",
		Era:           "17th Century",
		Story:         "Built by Raja Pedda Soma Bhupaludu.",
		Tags:          []string{"Courtyard"},
		Image:         domain.PlaceholderImage,
		ContributorID: "ravi",
		Comments:      []domain.Comment{{User: "u", Text: "t"}},
		CreatedAt:     time.Date(2025, 8, 15, 9, 30, 0, 0, time.UTC),
		Contributor: &domain.Contributor{
			ID:            uuid.New(),
			Username:      "ravi",
			DisplayName:   "Ravi",
			Contributions: 1,
			Badge:         domain.DefaultBadge,
		},
	}
}

// ---- POST /places ----------------------------------------------------------

func TestCreatePlace_201(t *testing.T) {
	fixture := placeFixture()
	var got domain.Submission
	svc := &mockPlaceServicer{
		submit: func(_ context.Context, sub domain.Submission) (domain.Place, error) {
			got = sub
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"name":                 "Gadwal Fort",
		"region":               "Jogulamba Gadwal",
		"area":                 "Gadwal",
		"story_points":         []string{"Built in 1662"},
		"tags":                 "Courtyard",
		"contributor_username": "Ravi",
	})
	req := httptest.NewRequest(http.MethodPost, "/places", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newPlaceRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []string{"Built in 1662"}, got.StoryPoints)
	assert.Equal(t, "Courtyard", got.Tags)
	assert.Equal(t, "Ravi", got.ContributorUsername)
	assert.Empty(t, got.Story)

	var resp gen.Place
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "gadwal_fort", resp.Id)
	assert.Equal(t, fixture.CreatedAt, resp.CreatedAt)
	require.NotNil(t, resp.Contributor)
	assert.Equal(t, 1, resp.Contributor.Contributions)
}

func TestCreatePlace_422_ValidationError(t *testing.T) {
	svc := &mockPlaceServicer{
		submit: func(_ context.Context, _ domain.Submission) (domain.Place, error) {
			return domain.Place{}, fmt.Errorf("service.PlaceService.Submit: %w: missing required fields: name", domain.ErrValidation)
		},
	}
	req := httptest.NewRequest(http.MethodPost, "/places", jsonBody(t, map[string]any{"contributor_username": "ravi"}))
	rec := httptest.NewRecorder()

	newPlaceRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeError(t, rec.Body)
	assert.Equal(t, "validation_error", resp.Error.Code)
	assert.Equal(t, "missing required fields: name", resp.Error.Message)
}

func TestCreatePlace_400_MalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/places", strings.NewReader(`{"name":`))
	rec := httptest.NewRecorder()

	newPlaceRouter(&mockPlaceServicer{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decodeError(t, rec.Body).Error.Code)
}

func TestCreatePlace_500_PersistenceError(t *testing.T) {
	svc := &mockPlaceServicer{
		submit: func(_ context.Context, _ domain.Submission) (domain.Place, error) {
			return domain.Place{}, fmt.Errorf("repo.FileStore.Upsert: %w: rename: disk full", domain.ErrPersistence)
		},
	}
	req := httptest.NewRequest(http.MethodPost, "/places", jsonBody(t, map[string]any{"name": "x", "contributor_username": "ravi"}))
	rec := httptest.NewRecorder()

	newPlaceRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeError(t, rec.Body)
	assert.Equal(t, "persistence_error", resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, "disk full", "internal causes are not leaked")
}

// ---- GET /places -----------------------------------------------------------

func TestListPlaces_200_DefaultsAndFilters(t *testing.T) {
	var gotFilter domain.PlaceFilter
	var gotPage domain.PaginationParams
	var gotLang string
	svc := &mockPlaceServicer{
		list: func(_ context.Context, f domain.PlaceFilter, p domain.PaginationParams, lang string) ([]domain.Place, int, error) {
			gotFilter, gotPage, gotLang = f, p, lang
			return []domain.Place{placeFixture()}, 7, nil
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/places?region=Warangal&type=All&q=fort&lang=te", nil)
	rec := httptest.NewRecorder()

	newPlaceRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PlaceFilter{Region: "Warangal", Type: "All", Query: "fort"}, gotFilter)
	assert.Equal(t, domain.PaginationParams{Skip: 0, Limit: 100}, gotPage)
	assert.Equal(t, "te", gotLang)

	var resp gen.PlaceList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, gen.Pagination{Skip: 0, Limit: 100, Total: 7}, resp.Pagination)
}

func TestListPlaces_LimitCapped(t *testing.T) {
	var gotPage domain.PaginationParams
	svc := &mockPlaceServicer{
		list: func(_ context.Context, _ domain.PlaceFilter, p domain.PaginationParams, _ string) ([]domain.Place, int, error) {
			gotPage = p
			return []domain.Place{}, 0, nil
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/places?skip=5&limit=500", nil)
	rec := httptest.NewRecorder()

	newPlaceRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaginationParams{Skip: 5, Limit: domain.MaxLimit}, gotPage)
}

func TestListPlaces_EmptyIsArray(t *testing.T) {
	svc := &mockPlaceServicer{
		list: func(context.Context, domain.PlaceFilter, domain.PaginationParams, string) ([]domain.Place, int, error) {
			return []domain.Place{}, 0, nil
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/places", nil)
	rec := httptest.NewRecorder()

	newPlaceRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestListPlaces_400_BadLimit(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/places?limit=abc", nil)
	rec := httptest.NewRecorder()

	newPlaceRouter(&mockPlaceServicer{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decodeError(t, rec.Body).Error.Code)
}

func TestListPlaces_500(t *testing.T) {
	svc := &mockPlaceServicer{
		list: func(context.Context, domain.PlaceFilter, domain.PaginationParams, string) ([]domain.Place, int, error) {
			return nil, 0, errors.New("boom")
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/places", nil)
	rec := httptest.NewRecorder()

	newPlaceRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", decodeError(t, rec.Body).Error.Code)
}

// ---- GET /places/facets ----------------------------------------------------

func TestGetPlaceFacets_200(t *testing.T) {
	svc := &mockPlaceServicer{
		facets: func(context.Context) (domain.PlaceFacets, error) {
			return domain.PlaceFacets{Regions: []string{"Warangal", "Hyderabad"}, Types: []string{"Fortress"}}, nil
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/places/facets", nil)
	rec := httptest.NewRecorder()

	newPlaceRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.PlaceFacets
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []string{"Warangal", "Hyderabad"}, resp.Regions)
	assert.Equal(t, []string{"Fortress"}, resp.Types)
}

// ---- GET /places/{id} ------------------------------------------------------

func TestGetPlace_200(t *testing.T) {
	var gotID, gotLang string
	svc := &mockPlaceServicer{
		get: func(_ context.Context, id, lang string) (domain.Place, error) {
			gotID, gotLang = id, lang
			return placeFixture(), nil
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/places/gadwal_fort?lang=hi", nil)
	rec := httptest.NewRecorder()

	newPlaceRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gadwal_fort", gotID)
	assert.Equal(t, "hi", gotLang)
	var resp gen.Place
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []gen.Comment{{User: "u", Text: "t"}}, resp.Comments)
}

func TestGetPlace_404(t *testing.T) {
	svc := &mockPlaceServicer{
		get: func(context.Context, string, string) (domain.Place, error) {
			return domain.Place{}, fmt.Errorf("repo.FileStore.GetByID: %w", domain.ErrNotFound)
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/places/nowhere", nil)
	rec := httptest.NewRecorder()

	newPlaceRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeError(t, rec.Body)
	assert.Equal(t, "not_found", resp.Error.Code)
	assert.Equal(t, "place not found", resp.Error.Message)
}
