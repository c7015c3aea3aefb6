package assist

import (
	"context"

	"github.com/gadulu-gruhalu/archive/internal/domain"
)

// Generator writes a narrative for a place from a list of key points.
// A failure is returned as an error wrapping domain.ErrExternal.
type Generator interface {
	GenerateStory(ctx context.Context, placeName string, points []string) (string, error)
}

// TemplateGenerator assembles the story the same way an assisted submission
// does. It is the fallback when no generative model is configured.
type TemplateGenerator struct{}

func (TemplateGenerator) GenerateStory(_ context.Context, _ string, points []string) (string, error) {
	return domain.TemplateStory(points), nil
}
