package translator

import (
	"fmt"
	"strings"

	"rentmap-backend/internal/models"
)

const adURLPattern = "https://www.leboncoin.fr/ad/locations/%s"

// Alias sets for the finder API's result records. The upstream has shipped
// every one of these variants at some point.
var (
	idKeys         = []string{"list_id", "ad_id", "id"}
	titleKeys      = []string{"subject", "title"}
	attributesKeys = []string{"attributes", "params"}
	surfaceKeys    = []string{"square", "surface", "living_space"}
	roomsKeys      = []string{"rooms", "room", "nb_rooms"}
	bedroomsKeys   = []string{"bedrooms", "bedroom", "nb_bedrooms"}
	cityKeys       = []string{"city", "city_label", "label"}
	zipcodeKeys    = []string{"zipcode", "zip_code"}
	latKeys        = []string{"lat", "latitude"}
	lngKeys        = []string{"lng", "longitude"}
)

type listingNormalizer struct{}

func NewListingNormalizer() ListingNormalizer {
	return &listingNormalizer{}
}

// Normalize converts one raw finder record into the canonical listing shape.
// It is total over arbitrary untyped input: every extraction degrades to a
// safe default instead of failing, so a record of garbage still yields a
// well-formed (if empty) listing.
func (n *listingNormalizer) Normalize(record map[string]interface{}) models.Listing {
	listing := models.Listing{
		ID:       firstString(record, idKeys...),
		Title:    firstString(record, titleKeys...),
		Price:    normalizePrice(record),
		Surface:  attributeValue(record, surfaceKeys...),
		Pieces:   attributeValue(record, roomsKeys...),
		Chambres: attributeValue(record, bedroomsKeys...),
		Images:   normalizeImages(record),
	}

	loc := subMap(record, "location")
	listing.Location = joinLocation(firstString(loc, cityKeys...), firstString(loc, zipcodeKeys...))
	listing.Coords = normalizeCoords(loc)

	if listing.ID != "" {
		listing.URL = fmt.Sprintf(adURLPattern, listing.ID)
	}
	return listing
}

// normalizePrice resolves the price either directly or from the nested
// prices.value field and renders it with the fixed currency suffix.
func normalizePrice(record map[string]interface{}) string {
	value, ok := firstNumber(record, "price")
	if !ok {
		if prices := subMap(record, "prices"); prices != nil {
			value, ok = firstNumber(prices, "value")
		}
	}
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s €", asString(value))
}

// attributeValue scans the record's attribute collection for the first entry
// whose key matches one of the aliases. Entries may name the key field "key"
// or "name" and the value field "value" or "val".
func attributeValue(record map[string]interface{}, keys ...string) string {
	var attrs []interface{}
	for _, collectionKey := range attributesKeys {
		if arr, ok := record[collectionKey].([]interface{}); ok {
			attrs = arr
			break
		}
	}

	for _, key := range keys {
		for _, entry := range attrs {
			attr, ok := entry.(map[string]interface{})
			if !ok {
				continue
			}
			if firstString(attr, "key", "name") != key {
				continue
			}
			if v := firstString(attr, "value", "val"); v != "" {
				return v
			}
		}
	}
	return ""
}

func joinLocation(city, zipcode string) string {
	parts := make([]string, 0, 2)
	if city != "" {
		parts = append(parts, city)
	}
	if zipcode != "" {
		parts = append(parts, zipcode)
	}
	return strings.Join(parts, " ")
}

// normalizeCoords is both-or-nothing: a record with only one coordinate is
// unusable for mapping and yields nil.
func normalizeCoords(loc map[string]interface{}) *[2]float64 {
	if loc == nil {
		return nil
	}
	lat, latOK := firstNumber(loc, latKeys...)
	lng, lngOK := firstNumber(loc, lngKeys...)
	if !latOK || !lngOK {
		return nil
	}
	return &[2]float64{lat, lng}
}

// normalizeImages maps the images collection to URL strings. Entries may be
// bare strings or objects carrying "url" or, failing that, "small_url";
// entries yielding neither are skipped. Without a collection, a singular
// thumb_url becomes a one-element list.
func normalizeImages(record map[string]interface{}) []string {
	images := []string{}

	arr, ok := record["images"].([]interface{})
	if !ok {
		if thumb := firstString(record, "thumb_url"); thumb != "" {
			images = append(images, thumb)
		}
		return images
	}

	for _, entry := range arr {
		switch v := entry.(type) {
		case string:
			if v != "" {
				images = append(images, v)
			}
		case map[string]interface{}:
			if url := firstString(v, "url", "small_url"); url != "" {
				images = append(images, url)
			}
		}
	}
	return images
}
