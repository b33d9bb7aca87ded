package translator

import (
	"encoding/json"
	"testing"
)

// record builds an untyped document the way json.Unmarshal would produce it,
// so numeric literals become float64 like real decoded responses.
func record(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("bad test record: %v", err)
	}
	return m
}

func TestNormalize_FullRecord(t *testing.T) {
	hit := record(t, `{
		"list_id": 2345678901,
		"subject": "Maison T4 avec jardin",
		"price": 980,
		"attributes": [
			{"key": "square", "value": "95"},
			{"key": "rooms", "value": "4"},
			{"key": "bedrooms", "value": "3"}
		],
		"location": {"city": "Toulouse", "zipcode": "31000", "lat": 43.6, "lng": 1.44},
		"images": ["https://img.example/1.jpg", {"url": "https://img.example/2.jpg"}]
	}`)

	got := NewListingNormalizer().Normalize(hit)

	if got.ID != "2345678901" {
		t.Fatalf("id: got %q", got.ID)
	}
	if got.Title != "Maison T4 avec jardin" {
		t.Fatalf("title: got %q", got.Title)
	}
	if got.Price != "980 €" {
		t.Fatalf("price: got %q", got.Price)
	}
	if got.Surface != "95" || got.Pieces != "4" || got.Chambres != "3" {
		t.Fatalf("attributes: got surface=%q pieces=%q chambres=%q", got.Surface, got.Pieces, got.Chambres)
	}
	if got.Location != "Toulouse 31000" {
		t.Fatalf("location: got %q", got.Location)
	}
	if got.Coords == nil || got.Coords[0] != 43.6 || got.Coords[1] != 1.44 {
		t.Fatalf("coords: got %v", got.Coords)
	}
	if len(got.Images) != 2 || got.Images[0] != "https://img.example/1.jpg" || got.Images[1] != "https://img.example/2.jpg" {
		t.Fatalf("images: got %v", got.Images)
	}
	if got.URL != "https://www.leboncoin.fr/ad/locations/2345678901" {
		t.Fatalf("url: got %q", got.URL)
	}
}

func TestNormalize_PartialCoordsRejected(t *testing.T) {
	hit := record(t, `{"list_id": 1, "location": {"lat": 43.6, "city": "Toulouse"}}`)

	got := NewListingNormalizer().Normalize(hit)
	if got.Coords != nil {
		t.Fatalf("expected nil coords for lat without lng, got %v", got.Coords)
	}
	if got.Location != "Toulouse" {
		t.Fatalf("location: got %q", got.Location)
	}
}

func TestNormalize_CoordAliases(t *testing.T) {
	hit := record(t, `{"location": {"latitude": 48.85, "longitude": 2.35}}`)

	got := NewListingNormalizer().Normalize(hit)
	if got.Coords == nil || got.Coords[0] != 48.85 || got.Coords[1] != 2.35 {
		t.Fatalf("expected long-form coordinate aliases to resolve, got %v", got.Coords)
	}
}

func TestNormalize_AttributeAliases(t *testing.T) {
	// Older responses keyed attribute entries as name/val under "params".
	hit := record(t, `{
		"params": [
			{"name": "room", "val": "3"},
			{"name": "living_space", "val": "72"},
			{"name": "nb_bedrooms", "val": "2"}
		]
	}`)

	got := NewListingNormalizer().Normalize(hit)
	if got.Pieces != "3" {
		t.Fatalf("pieces: got %q, want 3", got.Pieces)
	}
	if got.Surface != "72" {
		t.Fatalf("surface: got %q, want 72", got.Surface)
	}
	if got.Chambres != "2" {
		t.Fatalf("chambres: got %q, want 2", got.Chambres)
	}
}

func TestNormalize_AttributeAliasOrder(t *testing.T) {
	// "rooms" is the preferred alias and must win over "room".
	hit := record(t, `{
		"attributes": [
			{"key": "room", "value": "9"},
			{"key": "rooms", "value": "4"}
		]
	}`)

	got := NewListingNormalizer().Normalize(hit)
	if got.Pieces != "4" {
		t.Fatalf("pieces: got %q, want 4", got.Pieces)
	}
}

func TestNormalize_NoIdentifier(t *testing.T) {
	hit := record(t, `{"subject": "annonce sans id"}`)

	got := NewListingNormalizer().Normalize(hit)
	if got.ID != "" {
		t.Fatalf("id: got %q, want empty", got.ID)
	}
	if got.URL != "" {
		t.Fatalf("url: got %q, want empty", got.URL)
	}
}

func TestNormalize_IdentifierAliases(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: `{"list_id": 111}`, want: "111"},
		{raw: `{"ad_id": "222"}`, want: "222"},
		{raw: `{"id": 333}`, want: "333"},
		{raw: `{"ad_id": 222, "id": 333}`, want: "222"},
	}

	n := NewListingNormalizer()
	for _, tt := range tests {
		if got := n.Normalize(record(t, tt.raw)); got.ID != tt.want {
			t.Fatalf("record %s: id %q, want %q", tt.raw, got.ID, tt.want)
		}
	}
}

func TestNormalize_NestedPrice(t *testing.T) {
	hit := record(t, `{"prices": {"value": 750}}`)

	if got := NewListingNormalizer().Normalize(hit); got.Price != "750 €" {
		t.Fatalf("price: got %q, want \"750 €\"", got.Price)
	}
}

func TestNormalize_PriceShapes(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: `{"price": 850}`, want: "850 €"},
		{raw: `{"price": "920"}`, want: "920 €"},
		{raw: `{"price": [680]}`, want: "680 €"},
		{raw: `{"price": 799.5}`, want: "799.5 €"},
		{raw: `{}`, want: ""},
		{raw: `{"price": "soon"}`, want: ""},
	}

	n := NewListingNormalizer()
	for _, tt := range tests {
		if got := n.Normalize(record(t, tt.raw)); got.Price != tt.want {
			t.Fatalf("record %s: price %q, want %q", tt.raw, got.Price, tt.want)
		}
	}
}

func TestNormalize_LocationJoin(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: `{"location": {"city": "Blagnac", "zipcode": "31700"}}`, want: "Blagnac 31700"},
		{raw: `{"location": {"city_label": "Colomiers"}}`, want: "Colomiers"},
		{raw: `{"location": {"zip_code": "31770"}}`, want: "31770"},
		{raw: `{"location": {}}`, want: ""},
		{raw: `{}`, want: ""},
	}

	n := NewListingNormalizer()
	for _, tt := range tests {
		if got := n.Normalize(record(t, tt.raw)); got.Location != tt.want {
			t.Fatalf("record %s: location %q, want %q", tt.raw, got.Location, tt.want)
		}
	}
}

func TestNormalize_ImageShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "mixed entries, unusable ones skipped",
			raw:  `{"images": ["a.jpg", {"url": "b.jpg"}, {"small_url": "c.jpg"}, {"width": 640}, 12]}`,
			want: []string{"a.jpg", "b.jpg", "c.jpg"},
		},
		{
			name: "thumb fallback",
			raw:  `{"thumb_url": "t.jpg"}`,
			want: []string{"t.jpg"},
		},
		{
			name: "none",
			raw:  `{}`,
			want: []string{},
		},
	}

	n := NewListingNormalizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(record(t, tt.raw))
			if got.Images == nil {
				t.Fatal("images must never be nil")
			}
			if len(got.Images) != len(tt.want) {
				t.Fatalf("images: got %v, want %v", got.Images, tt.want)
			}
			for i := range tt.want {
				if got.Images[i] != tt.want[i] {
					t.Fatalf("images[%d]: got %q, want %q", i, got.Images[i], tt.want[i])
				}
			}
		})
	}
}

// Records full of wrong-typed values must degrade to defaults, never panic.
func TestNormalize_GarbageRecord(t *testing.T) {
	hit := record(t, `{
		"list_id": {"nested": true},
		"subject": 42,
		"price": {"weird": []},
		"attributes": "not-an-array",
		"location": "not-an-object",
		"images": {"not": "an-array"}
	}`)

	got := NewListingNormalizer().Normalize(hit)
	if got.ID != "" || got.URL != "" {
		t.Fatalf("expected empty id/url, got id=%q url=%q", got.ID, got.URL)
	}
	if got.Title != "42" {
		t.Fatalf("numeric subject should coerce to string, got %q", got.Title)
	}
	if got.Price != "" || got.Surface != "" || got.Location != "" {
		t.Fatalf("expected defaults, got price=%q surface=%q location=%q", got.Price, got.Surface, got.Location)
	}
	if got.Coords != nil {
		t.Fatalf("coords: got %v, want nil", got.Coords)
	}
	if got.Images == nil || len(got.Images) != 0 {
		t.Fatalf("images: got %v, want empty", got.Images)
	}
}
