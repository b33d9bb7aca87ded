package models

// SearchRequest carries the user-facing filter form. Every field is optional;
// an empty request is valid and simply searches without those filters.
type SearchRequest struct {
	// Comma-separated postal codes and/or city names, e.g. "31000, Toulouse".
	Zipcodes string `json:"zipcodes"`

	// Zero means no price cap.
	PriceMax int `json:"price_max"`

	// Zero means unbounded on that side.
	RoomsMin int `json:"rooms_min"`
	RoomsMax int `json:"rooms_max"`

	// "house" or "apartment"; anything else falls back to house.
	PropertyType string `json:"property_type"`
}

// Listing is the canonical record the map/list UI consumes. Every field is
// always present with a safe default, so consumers never touch raw provider
// fields.
type Listing struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	Surface  string `json:"surface"`
	Pieces   string `json:"pieces"`
	Chambres string `json:"chambres"`
	Location string `json:"location"`

	// [latitude, longitude]; nil unless both coordinates are known.
	Coords *[2]float64 `json:"coords"`
	Images []string    `json:"images"`
	URL    string      `json:"url"`
}

type SearchResponse struct {
	Results []Listing `json:"results"`
}
