// Package handler implements the HTTP handlers for the heritage archive API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, place.go, etc.) but
// all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/gadulu-gruhalu/archive/internal/domain"
)

// PlaceServicer defines the business operations the place handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the store or service layer.
type PlaceServicer interface {
	Submit(ctx context.Context, sub domain.Submission) (domain.Place, error)
	List(ctx context.Context, filter domain.PlaceFilter, page domain.PaginationParams, lang string) ([]domain.Place, int, error)
	Get(ctx context.Context, id, lang string) (domain.Place, error)
	Facets(ctx context.Context) (domain.PlaceFacets, error)
}

// ContributorServicer looks up contributors for GET /contributors/{username}.
type ContributorServicer interface {
	Get(ctx context.Context, username string) (domain.Contributor, error)
}

// AccountServicer handles signup and login.
type AccountServicer interface {
	Register(ctx context.Context, username, password string) (domain.Contributor, error)
	Login(ctx context.Context, username, password string) (domain.Contributor, error)
}

// Storyteller drafts a story from key points.
type Storyteller interface {
	Generate(ctx context.Context, placeName string, points []string) (string, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandlerWithOptions(server, nil, StrictOptions(logger)).
type Server struct {
	places       PlaceServicer
	contributors ContributorServicer
	accounts     AccountServicer
	stories      Storyteller
}

// NewServer constructs the Server with all its dependencies.
func NewServer(places PlaceServicer, contributors ContributorServicer, accounts AccountServicer, stories Storyteller) *Server {
	return &Server{places: places, contributors: contributors, accounts: accounts, stories: stories}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}
