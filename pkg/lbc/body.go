package lbc

// SearchBody is the request document the finder API expects. Optional filters
// must be omitted entirely when inactive: the upstream treats presence as
// "filter active", so an empty price object is not the same as no price object.
type SearchBody struct {
	Limit    int     `json:"limit"`
	LimitAlu int     `json:"limit_alu"`
	Filters  Filters `json:"filters"`
}

type Filters struct {
	Category       IDFilter        `json:"category"`
	RealEstateType IDFilter        `json:"real_estate_type"`
	Price          *RangeFilter    `json:"price,omitempty"`
	Rooms          *RoomsFilter    `json:"rooms,omitempty"`
	Location       *LocationFilter `json:"location,omitempty"`
}

type IDFilter struct {
	ID string `json:"id"`
}

type RangeFilter struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// RoomsFilter bounds are pointers so a min-only or max-only filter serializes
// with exactly the bounds that were supplied.
type RoomsFilter struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

type LocationFilter struct {
	Locations []LocationEntry `json:"locations"`
}

// LocationEntry is either a zipcode or a city, never both.
type LocationEntry struct {
	Zipcode string `json:"zipcode,omitempty"`
	City    string `json:"city,omitempty"`
}
