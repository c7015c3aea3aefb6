package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gadulu-gruhalu/archive/internal/assist"
	"github.com/gadulu-gruhalu/archive/internal/domain"
	"github.com/gadulu-gruhalu/archive/internal/repo"
)

// PlaceService implements business logic for Place operations.
// A submission flows validator → ledger.Ensure → store → ledger.RecordContribution.
type PlaceService struct {
	places     repo.PlaceRepo
	ledger     *LedgerService
	validator  Validator
	translator assist.Translator
}

// NewPlaceService constructs a PlaceService. A nil translator disables
// translation of listings.
func NewPlaceService(places repo.PlaceRepo, ledger *LedgerService, validator Validator, translator assist.Translator) *PlaceService {
	if translator == nil {
		translator = assist.NopTranslator{}
	}
	return &PlaceService{places: places, ledger: ledger, validator: validator, translator: translator}
}

// Submit validates a submission, stores it and credits the contributor.
// A validation failure or a failed store write mutates nothing; the
// contributor is only created once the place is stored. A colliding id replaces the
// existing record (last write wins); the stored record is returned with
// the contributor attached.
func (s *PlaceService) Submit(ctx context.Context, sub domain.Submission) (domain.Place, error) {
	place, err := s.validator.Normalize(sub)
	if err != nil {
		return domain.Place{}, fmt.Errorf("service.PlaceService.Submit: %w", err)
	}
	stored, err := s.places.Upsert(ctx, place)
	if err != nil {
		return domain.Place{}, fmt.Errorf("service.PlaceService.Submit: %w", err)
	}
	if _, err := s.ledger.Ensure(ctx, sub.ContributorUsername); err != nil {
		return domain.Place{}, fmt.Errorf("service.PlaceService.Submit: %w", err)
	}
	contributor, err := s.ledger.RecordContribution(ctx, place.ContributorID)
	if err != nil {
		return domain.Place{}, fmt.Errorf("service.PlaceService.Submit: %w", err)
	}
	stored.Contributor = &contributor
	return stored, nil
}

// List returns one page of the places matching filter together with the
// total number of matches. When lang names a language other than the
// source language, the text fields of the page are translated.
// Always returns a non-nil slice.
func (s *PlaceService) List(ctx context.Context, filter domain.PlaceFilter, page domain.PaginationParams, lang string) ([]domain.Place, int, error) {
	all, err := s.places.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("service.PlaceService.List: %w", err)
	}
	matched := domain.FilterPlaces(all, filter)
	start, end := page.Window(len(matched))
	result := matched[start:end]

	seen := map[string]*domain.Contributor{}
	for i := range result {
		c, err := s.attribution(ctx, result[i].ContributorID, seen)
		if err != nil {
			return nil, 0, fmt.Errorf("service.PlaceService.List: %w", err)
		}
		result[i].Contributor = c
		s.localize(ctx, &result[i], lang)
	}
	return result, len(matched), nil
}

// Get returns a single place with its contributor attached.
// Returns domain.ErrNotFound if no place has that id.
func (s *PlaceService) Get(ctx context.Context, id, lang string) (domain.Place, error) {
	place, err := s.places.GetByID(ctx, id)
	if err != nil {
		return domain.Place{}, fmt.Errorf("service.PlaceService.Get: %w", err)
	}
	c, err := s.attribution(ctx, place.ContributorID, map[string]*domain.Contributor{})
	if err != nil {
		return domain.Place{}, fmt.Errorf("service.PlaceService.Get: %w", err)
	}
	place.Contributor = c
	s.localize(ctx, &place, lang)
	return place, nil
}

// Facets returns the distinct regions and types of the whole collection.
func (s *PlaceService) Facets(ctx context.Context) (domain.PlaceFacets, error) {
	all, err := s.places.List(ctx)
	if err != nil {
		return domain.PlaceFacets{}, fmt.Errorf("service.PlaceService.Facets: %w", err)
	}
	return domain.Facets(all), nil
}

// attribution looks up the contributor of a record, memoizing in seen.
// An unknown contributor yields nil, not an error.
func (s *PlaceService) attribution(ctx context.Context, username string, seen map[string]*domain.Contributor) (*domain.Contributor, error) {
	if c, ok := seen[username]; ok {
		return c, nil
	}
	c, err := s.ledger.Get(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		seen[username] = nil
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	seen[username] = &c
	return &c, nil
}

func (s *PlaceService) localize(ctx context.Context, p *domain.Place, lang string) {
	if !assist.NeedsTranslation(lang) {
		return
	}
	p.Name = s.translator.Translate(ctx, p.Name, lang)
	p.Type = s.translator.Translate(ctx, p.Type, lang)
	p.Era = s.translator.Translate(ctx, p.Era, lang)
	p.Story = s.translator.Translate(ctx, p.Story, lang)
}
