package domain

import "time"

// Favorite is an ordered list of listing references. Every reference must
// resolve to an existing RealEstate at write time.
//
// Favorites carry no owner: any authenticated caller can read or modify any
// favorite list. This mirrors the shipped product behaviour.
type Favorite struct {
	ID          string    `json:"id"`
	RealEstates []string  `json:"realEstates"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
