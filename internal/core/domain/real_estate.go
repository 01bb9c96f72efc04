package domain

import "time"

// RealEstate is a property listing. Name, address and price are mandatory;
// area, location and bedrooms are optional attributes used only by the search
// filter, and image is an optional reference to an externally hosted picture.
type RealEstate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Price     float64   `json:"price"`
	Image     string    `json:"image,omitempty"`
	Area      *float64  `json:"area,omitempty"`
	Location  string    `json:"location,omitempty"`
	Bedrooms  *int      `json:"bedrooms,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
