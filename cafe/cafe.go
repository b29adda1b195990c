// Package cafe holds the cafe record served by the listing backend.
// No build tags, so it is shared by WASM and native builds.
package cafe

// Cafe is a read-only cafe record as returned by the backend.
type Cafe struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	ImgURL      string    `json:"img_url"`
	MapURL      string    `json:"map_url"`
	CoffeePrice *string   `json:"coffee_price"`
	Seats       string    `json:"seats,omitempty"`
	Amenities   Amenities `json:"amenities"`
}

// Amenities are the facility flags the backend reports for a cafe.
type Amenities struct {
	HasToilet    bool `json:"has_toilet"`
	HasWifi      bool `json:"has_wifi"`
	HasSockets   bool `json:"has_sockets"`
	CanTakeCalls bool `json:"can_take_calls"`
}

// PriceOr returns the coffee price, or fallback when the backend sent
// none (missing, null or empty).
func (c Cafe) PriceOr(fallback string) string {
	if c.CoffeePrice == nil || *c.CoffeePrice == "" {
		return fallback
	}
	return *c.CoffeePrice
}
