package domain

import "strings"

// StoryLeadIn and StoryClosing frame a story assembled from key points.
const (
	StoryLeadIn  = "This historic place holds deep significance. "
	StoryClosing = ". These memories paint a vivid picture of its past."
)

// TemplateStory assembles a narrative from key points without any
// generative step: lead-in, the points joined by spaces, closing sentence.
// Callers pass points already trimmed and non-empty.
func TemplateStory(points []string) string {
	return StoryLeadIn + strings.Join(points, " ") + StoryClosing
}

// CleanPoints trims each point and drops the blank ones.
// The result is never nil.
func CleanPoints(points []string) []string {
	out := []string{}
	for _, p := range points {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
