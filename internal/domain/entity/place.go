package entity

// PlaceRecord is the normalized shape of a single place returned by the
// location-search API. It is produced fresh on every fetch and is never
// persisted directly; the scan engine translates it into a Business.
type PlaceRecord struct {
	ID         string   `json:"id"`         // Stable source-assigned identifier (fsq_id).
	Name       string   `json:"name"`       // Display name of the place.
	Categories []string `json:"categories"` // Category names, unordered.
	Location   Location `json:"location"`   // Geographic location with optional address fields.
	Rating     *float64 `json:"rating"`     // Rating on a 0.0-5.0 scale, when published.
	Popularity *float64 `json:"popularity"` // Popularity score on a 0.0-1.0 scale, when published.
	Verified   bool     `json:"verified"`   // Whether the listing is verified by the source.
	Website    string   `json:"website"`    // Optional website URL.
	Phone      string   `json:"phone"`      // Optional telephone number.
}

// Location holds a coordinate pair plus the optional address fields the
// source attaches to it.
type Location struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Address    string  `json:"address,omitempty"`
	City       string  `json:"city,omitempty"`
	State      string  `json:"state,omitempty"`
	PostalCode string  `json:"postal_code,omitempty"`
	Country    string  `json:"country,omitempty"`
}
