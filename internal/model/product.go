package model

import (
	"time"
)

// Product is one catalog entry. ItemCode doubles as the document id supplied
// by the caller at creation time.
type Product struct {
	ItemCode    string    `json:"itemCode"`
	Description string    `json:"description"`
	Unit        string    `json:"unit"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
