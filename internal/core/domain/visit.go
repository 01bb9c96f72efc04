package domain

import "time"

// Visit schedules a viewing of a single listing. Date defaults to the
// creation time when the caller does not supply one.
type Visit struct {
	ID         string    `json:"id"`
	RealEstate string    `json:"realEstate"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
