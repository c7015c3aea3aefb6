package handler

import (
	"context"
	"errors"

	"github.com/gadulu-gruhalu/archive/internal/domain"
	"github.com/gadulu-gruhalu/archive/internal/handler/gen"
)

// GenerateStory handles POST /ai/generate-story.
func (s *Server) GenerateStory(ctx context.Context, req gen.GenerateStoryRequestObject) (gen.GenerateStoryResponseObject, error) {
	if req.Body == nil {
		return gen.GenerateStory422JSONResponse(requestBody("request body is required")), nil
	}

	story, err := s.stories.Generate(ctx, deref(req.Body.PlaceName), req.Body.Points)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return gen.GenerateStory422JSONResponse(validationBody(err)), nil
		case errors.Is(err, domain.ErrExternal):
			return gen.GenerateStory502JSONResponse(externalBody("story generation failed")), nil
		}
		return nil, err
	}

	return gen.GenerateStory200JSONResponse{Story: story}, nil
}
