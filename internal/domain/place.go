// Package domain contains the core data types for the heritage archive.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// PlaceholderImage is the image URL used when a submission carries none.
const PlaceholderImage = "https://i.imgur.com/sdVn1iA.png"

// DefaultPlaceType is applied when a submission leaves the type blank.
const DefaultPlaceType = "Other"

// Place is one documented fortress, home or monument.
// ID is unique within the collection; inserting a place whose ID already
// exists replaces the earlier entry (last write wins).
// Type is an open string: contributors introduce new categories freely.
type Place struct {
	ID            string
	Name          string
	Type          string
	Region        string
	Area          string
	Era           string
	Story         string
	Tags          []string
	Image         string
	ContributorID string
	Comments      []Comment
	CreatedAt     time.Time

	// Contributor is attribution resolved on read. It is never persisted
	// with the place; ContributorID is the only stored reference.
	Contributor *Contributor
}

// Comment is a single community reaction on a place. Comments are append-only.
type Comment struct {
	User string
	Text string
}

// Submission carries the raw, untrusted fields of a place submission before
// normalization. Tags is the comma-separated string typed by the contributor.
// StoryPoints is the assisted-narrative alternative to Story.
type Submission struct {
	Name                string
	Type                string
	Region              string
	Area                string
	Era                 string
	Story               string
	StoryPoints         []string
	Tags                string
	ImageURL            string
	ContributorUsername string
}

// Clone returns a deep copy of p so callers can mutate slices freely.
func (p Place) Clone() Place {
	out := p
	if p.Tags != nil {
		out.Tags = append([]string{}, p.Tags...)
	}
	if p.Comments != nil {
		out.Comments = append([]Comment{}, p.Comments...)
	}
	if p.Contributor != nil {
		c := *p.Contributor
		out.Contributor = &c
	}
	return out
}
