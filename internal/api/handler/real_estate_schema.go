package handler

import "github.com/imovelhub/imoveis-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createRealEstateRequest struct {
	Name     string   `json:"name"     validate:"required"`
	Address  string   `json:"address"  validate:"required"`
	Price    *float64 `json:"price"    validate:"required,gte=0"`
	Image    string   `json:"image"`
	Area     *float64 `json:"area"     validate:"omitempty,gt=0"`
	Location string   `json:"location"`
	Bedrooms *int     `json:"bedrooms" validate:"omitempty,gte=0"`
}

// updateRealEstateRequest is a partial merge: absent fields are left
// untouched.
type updateRealEstateRequest struct {
	Name     *string  `json:"name"     validate:"omitempty,min=1"`
	Address  *string  `json:"address"  validate:"omitempty,min=1"`
	Price    *float64 `json:"price"    validate:"omitempty,gte=0"`
	Image    *string  `json:"image"`
	Area     *float64 `json:"area"     validate:"omitempty,gt=0"`
	Location *string  `json:"location"`
	Bedrooms *int     `json:"bedrooms" validate:"omitempty,gte=0"`
}

// realEstateEnvelope is the success envelope used by the listing CRUD routes.
type realEstateEnvelope struct {
	Success bool               `json:"success"`
	Data    *domain.RealEstate `json:"data"`
}

type realEstateListEnvelope struct {
	Success bool                `json:"success"`
	Data    []domain.RealEstate `json:"data"`
}

// searchResponse is the unpaginated result set of an advanced search.
type searchResponse struct {
	Results []domain.RealEstate `json:"results"`
}
