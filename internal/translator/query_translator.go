package translator

import (
	"regexp"
	"strings"

	"rentmap-backend/internal/models"
	"rentmap-backend/pkg/lbc"
)

// Fixed finder API selectors for the rental housing scope.
const (
	categoryRentals  = "10"
	typeHouse        = "1"
	typeApartment    = "2"
	resultLimit      = 40
	featuredAdsLimit = 3
)

var zipcodePattern = regexp.MustCompile(`^\d{5}$`)

type queryTranslator struct{}

func NewQueryTranslator() QueryTranslator {
	return &queryTranslator{}
}

// BuildSearchBody converts the user filter form into the finder API's filter
// document. It is total: malformed input never fails, it just activates fewer
// filters. A token that is not a 5-digit postal code is reclassified as a
// city name rather than rejected, because the upstream has no strict
// validation either and over-filtering would silently return zero results.
func (t *queryTranslator) BuildSearchBody(req *models.SearchRequest) lbc.SearchBody {
	filters := lbc.Filters{
		Category:       lbc.IDFilter{ID: categoryRentals},
		RealEstateType: lbc.IDFilter{ID: propertyTypeID(req.PropertyType)},
	}

	if req.PriceMax > 0 {
		filters.Price = &lbc.RangeFilter{Min: 0, Max: req.PriceMax}
	}

	if req.RoomsMin > 0 || req.RoomsMax > 0 {
		rooms := &lbc.RoomsFilter{}
		if req.RoomsMin > 0 {
			v := req.RoomsMin
			rooms.Min = &v
		}
		if req.RoomsMax > 0 {
			v := req.RoomsMax
			rooms.Max = &v
		}
		filters.Rooms = rooms
	}

	if locations := parseLocations(req.Zipcodes); len(locations) > 0 {
		filters.Location = &lbc.LocationFilter{Locations: locations}
	}

	return lbc.SearchBody{
		Limit:    resultLimit,
		LimitAlu: featuredAdsLimit,
		Filters:  filters,
	}
}

func propertyTypeID(propertyType string) string {
	if strings.EqualFold(strings.TrimSpace(propertyType), "apartment") {
		return typeApartment
	}
	return typeHouse
}

// parseLocations splits the free-text location field on commas, dropping
// empty tokens and preserving input order.
func parseLocations(zipcodes string) []lbc.LocationEntry {
	var locations []lbc.LocationEntry
	for _, token := range strings.Split(zipcodes, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if zipcodePattern.MatchString(token) {
			locations = append(locations, lbc.LocationEntry{Zipcode: token})
		} else {
			locations = append(locations, lbc.LocationEntry{City: token})
		}
	}
	return locations
}
