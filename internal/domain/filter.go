package domain

import "strings"

// FilterAll is the filter value that disables the region or type axis.
const FilterAll = "All"

// PlaceFilter holds the listing criteria. Empty or FilterAll values for
// Region and Type disable that axis; an empty Query matches every place.
type PlaceFilter struct {
	// Region is matched exactly and case-sensitively against Place.Region.
	Region string
	// Type is matched exactly and case-sensitively against Place.Type.
	Type string
	// Query is a case-insensitive substring of the name or of any tag.
	Query string
}

// Match reports whether p satisfies every active criterion of f.
func (f PlaceFilter) Match(p Place) bool {
	if active(f.Region) && p.Region != f.Region {
		return false
	}
	if active(f.Type) && p.Type != f.Type {
		return false
	}
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// FilterPlaces returns the places matching f in their input order.
// The input slice is not modified. The result is never nil.
func FilterPlaces(places []Place, f PlaceFilter) []Place {
	out := []Place{}
	for _, p := range places {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// PlaceFacets lists the distinct values offered as listing filters.
type PlaceFacets struct {
	Regions []string
	Types   []string
}

// Facets collects the distinct regions and types of places in first-seen
// order. Empty values are skipped.
func Facets(places []Place) PlaceFacets {
	f := PlaceFacets{Regions: []string{}, Types: []string{}}
	seenRegion := map[string]bool{}
	seenType := map[string]bool{}
	for _, p := range places {
		if p.Region != "" && !seenRegion[p.Region] {
			seenRegion[p.Region] = true
			f.Regions = append(f.Regions, p.Region)
		}
		if p.Type != "" && !seenType[p.Type] {
			seenType[p.Type] = true
			f.Types = append(f.Types, p.Type)
		}
	}
	return f
}

func active(v string) bool {
	return v != "" && v != FilterAll
}
