// Package service contains the business logic for the heritage archive API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No storage code lives here — services depend on repo interfaces, not implementations.
package service

import (
	"fmt"
	"strings"

	"github.com/gadulu-gruhalu/archive/internal/domain"
)

// Validator turns a raw submission into a storable Place.
// It is a pure transform: no I/O, no clock, no contributor lookups.
type Validator struct {
	// RequireLocation makes area and region mandatory.
	RequireLocation bool
}

// Normalize trims the submission, checks required fields and fills defaults.
// A rejection wraps domain.ErrValidation and names every missing field.
//
// When the story is blank but story points are given, the story is
// assembled from the points with domain.TemplateStory.
func (v Validator) Normalize(sub domain.Submission) (domain.Place, error) {
	name := strings.TrimSpace(sub.Name)
	story := strings.TrimSpace(sub.Story)
	area := strings.TrimSpace(sub.Area)
	region := strings.TrimSpace(sub.Region)
	username := NormalizeUsername(sub.ContributorUsername)
	points := domain.CleanPoints(sub.StoryPoints)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if story == "" && len(points) == 0 {
		missing = append(missing, "story or story_points")
	}
	if v.RequireLocation {
		if area == "" {
			missing = append(missing, "area")
		}
		if region == "" {
			missing = append(missing, "region")
		}
	}
	if username == "" {
		missing = append(missing, "contributor_username")
	}
	if len(missing) > 0 {
		return domain.Place{}, fmt.Errorf("%w: missing required fields: %s", domain.ErrValidation, strings.Join(missing, ", "))
	}

	if story == "" {
		story = domain.TemplateStory(points)
	}
	placeType := strings.TrimSpace(sub.Type)
	if placeType == "" {
		placeType = domain.DefaultPlaceType
	}
	image := strings.TrimSpace(sub.ImageURL)
	if image == "" {
		image = domain.PlaceholderImage
	}

	return domain.Place{
		ID:            PlaceID(name),
		Name:          name,
		Type:          placeType,
		Region:        region,
		Area:          area,
		Era:           strings.TrimSpace(sub.Era),
		Story:         story,
		Tags:          SplitTags(sub.Tags),
		Image:         image,
		ContributorID: username,
		Comments:      []domain.Comment{},
	}, nil
}

// PlaceID derives the record key from a display name:
// lowercased, with every run of whitespace replaced by a single underscore.
// e.g. "Gadwal  Fort" → "gadwal_fort"
func PlaceID(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}

// SplitTags splits a comma-separated tag list, trimming each tag and
// dropping empties. Always returns a non-nil slice.
func SplitTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// NormalizeUsername returns the ledger key for a username.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
