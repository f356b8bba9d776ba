// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Business represents a monitored business persisted across scans.
// The identifier is assigned by the upstream source and uniquely determines
// at most one Business. FirstSeen is set once and never changes; LastUpdated
// is bumped whenever any mutable field changes, so FirstSeen <= LastUpdated
// always holds.
type Business struct {
	ID           string    `json:"id"`            // Stable source-assigned identifier, primary key.
	Name         string    `json:"name"`          // Display name of the business.
	Categories   []string  `json:"categories"`    // Category names, treated as an unordered set.
	Location     Location  `json:"location"`      // Geographic location with optional address fields.
	Rating       *float64  `json:"rating"`        // Rating on a 0.0-5.0 scale, when published.
	Popularity   *float64  `json:"popularity"`    // Popularity score on a 0.0-1.0 scale, when published.
	Verified     bool      `json:"verified"`      // Whether the listing is verified by the source.
	Website      string    `json:"website"`       // Optional website URL.
	Phone        string    `json:"phone"`         // Optional telephone number.
	IsCompetitor bool      `json:"is_competitor"` // Competitor flag, sticky across scans.
	FirstSeen    time.Time `json:"first_seen"`    // When the business was first observed. Immutable.
	LastUpdated  time.Time `json:"last_updated"`  // When any field last changed.
	Notes        string    `json:"notes"`         // Free-text operator notes.
}

// NewBusinessFromPlace constructs a Business from a freshly fetched place.
// Both timestamps are set to now; the competitor flag is the caller's call.
func NewBusinessFromPlace(place *PlaceRecord, isCompetitor bool, now time.Time) *Business {
	return &Business{
		ID:           place.ID,
		Name:         place.Name,
		Categories:   place.Categories,
		Location:     place.Location,
		Rating:       place.Rating,
		Popularity:   place.Popularity,
		Verified:     place.Verified,
		Website:      place.Website,
		Phone:        place.Phone,
		IsCompetitor: isCompetitor,
		FirstSeen:    now,
		LastUpdated:  now,
	}
}

// ApplyPlace merges freshly fetched place data into the business, field by
// field. It reports whether anything actually changed; on any change
// LastUpdated is advanced to now. FirstSeen and the competitor flag are
// never touched here.
func (b *Business) ApplyPlace(place *PlaceRecord, now time.Time) bool {
	changed := false

	if b.Name != place.Name {
		b.Name = place.Name
		changed = true
	}
	if !floatPtrEqual(b.Rating, place.Rating) {
		b.Rating = place.Rating
		changed = true
	}
	if !floatPtrEqual(b.Popularity, place.Popularity) {
		b.Popularity = place.Popularity
		changed = true
	}
	if b.Verified != place.Verified {
		b.Verified = place.Verified
		changed = true
	}
	if b.Website != place.Website {
		b.Website = place.Website
		changed = true
	}
	if b.Phone != place.Phone {
		b.Phone = place.Phone
		changed = true
	}
	if !categorySetEqual(b.Categories, place.Categories) {
		b.Categories = place.Categories
		changed = true
	}
	if b.Location != place.Location {
		b.Location = place.Location
		changed = true
	}

	if changed {
		b.LastUpdated = now
	}

	return changed
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

// categorySetEqual compares category lists as sets; ordering differences
// coming back from the source are not a change.
func categorySetEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	seen := make(map[string]int, len(a))
	for _, category := range a {
		seen[category]++
	}
	for _, category := range b {
		seen[category]--
		if seen[category] < 0 {
			return false
		}
	}

	return true
}
