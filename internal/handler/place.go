package handler

import (
	"context"
	"errors"

	"github.com/gadulu-gruhalu/archive/internal/domain"
	"github.com/gadulu-gruhalu/archive/internal/handler/gen"
)

// CreatePlace handles POST /places.
func (s *Server) CreatePlace(ctx context.Context, req gen.CreatePlaceRequestObject) (gen.CreatePlaceResponseObject, error) {
	if req.Body == nil {
		return gen.CreatePlace422JSONResponse(requestBody("request body is required")), nil
	}

	created, err := s.places.Submit(ctx, requestToSubmission(req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreatePlace422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreatePlace201JSONResponse(placeToResponse(created)), nil
}

// ListPlaces handles GET /places.
// Supports ?skip= and ?limit= (defaults: skip=0, limit=100, max=100) plus
// the region, type, q and lang filters.
func (s *Server) ListPlaces(ctx context.Context, req gen.ListPlacesRequestObject) (gen.ListPlacesResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Skip, req.Params.Limit)
	filter := domain.PlaceFilter{
		Region: deref(req.Params.Region),
		Type:   deref(req.Params.Type),
		Query:  deref(req.Params.Q),
	}

	places, total, err := s.places.List(ctx, filter, params, deref(req.Params.Lang))
	if err != nil {
		return nil, err
	}

	data := make([]gen.Place, len(places))
	for i, p := range places {
		data[i] = placeToResponse(p)
	}
	return gen.ListPlaces200JSONResponse{
		Data: data,
		Pagination: gen.Pagination{
			Skip:  params.Skip,
			Limit: params.Limit,
			Total: total,
		},
	}, nil
}

// GetPlaceFacets handles GET /places/facets.
func (s *Server) GetPlaceFacets(ctx context.Context, _ gen.GetPlaceFacetsRequestObject) (gen.GetPlaceFacetsResponseObject, error) {
	facets, err := s.places.Facets(ctx)
	if err != nil {
		return nil, err
	}
	return gen.GetPlaceFacets200JSONResponse{Regions: facets.Regions, Types: facets.Types}, nil
}

// GetPlace handles GET /places/{id}.
func (s *Server) GetPlace(ctx context.Context, req gen.GetPlaceRequestObject) (gen.GetPlaceResponseObject, error) {
	place, err := s.places.Get(ctx, req.Id, deref(req.Params.Lang))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetPlace404JSONResponse(notFoundBody("place not found")), nil
		}
		return nil, err
	}

	return gen.GetPlace200JSONResponse(placeToResponse(place)), nil
}

// --- mapping helpers --------------------------------------------------------

// requestToSubmission copies the request body into a domain.Submission.
// Absent optional fields become empty strings; the validator decides what is required.
func requestToSubmission(body *gen.CreatePlaceRequest) domain.Submission {
	sub := domain.Submission{
		Name:                body.Name,
		Type:                deref(body.Type),
		Region:              deref(body.Region),
		Area:                deref(body.Area),
		Era:                 deref(body.Era),
		Story:               deref(body.Story),
		Tags:                deref(body.Tags),
		ImageURL:            deref(body.ImageUrl),
		ContributorUsername: body.ContributorUsername,
	}
	if body.StoryPoints != nil {
		sub.StoryPoints = *body.StoryPoints
	}
	return sub
}

// placeToResponse converts a domain.Place into the generated API response type.
func placeToResponse(p domain.Place) gen.Place {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	comments := make([]gen.Comment, len(p.Comments))
	for i, c := range p.Comments {
		comments[i] = gen.Comment{User: c.User, Text: c.Text}
	}
	resp := gen.Place{
		Id:            p.ID,
		Name:          p.Name,
		Type:          p.Type,
		Region:        p.Region,
		Area:          p.Area,
		Era:           p.Era,
		Story:         p.Story,
		Tags:          tags,
		Image:         p.Image,
		ContributorId: p.ContributorID,
		Comments:      comments,
		CreatedAt:     p.CreatedAt,
	}
	if p.Contributor != nil {
		c := contributorToResponse(*p.Contributor)
		resp.Contributor = &c
	}
	return resp
}

// deref returns the value of an optional string parameter, or "" if absent.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
