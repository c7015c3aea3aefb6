package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gadulu-gruhalu/archive/internal/assist"
	"github.com/gadulu-gruhalu/archive/internal/domain"
)

// StoryService drafts a narrative from key points through a Generator.
type StoryService struct {
	generator assist.Generator
}

// NewStoryService constructs a StoryService. A nil generator falls back to
// assist.TemplateGenerator.
func NewStoryService(generator assist.Generator) *StoryService {
	if generator == nil {
		generator = assist.TemplateGenerator{}
	}
	return &StoryService{generator: generator}
}

// Generate returns a story for placeName built from points.
// Returns domain.ErrValidation when no non-blank point is given and an
// error wrapping domain.ErrExternal when the generator fails.
func (s *StoryService) Generate(ctx context.Context, placeName string, points []string) (string, error) {
	cleaned := domain.CleanPoints(points)
	if len(cleaned) == 0 {
		return "", fmt.Errorf("service.StoryService.Generate: %w: no points provided for story generation", domain.ErrValidation)
	}
	story, err := s.generator.GenerateStory(ctx, strings.TrimSpace(placeName), cleaned)
	if err != nil {
		return "", fmt.Errorf("service.StoryService.Generate: %w", err)
	}
	return story, nil
}
