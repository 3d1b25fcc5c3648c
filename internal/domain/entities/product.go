package entities

import "time"

// Product is a catalog entry with its on-hand stock.
//
// Storage model (DynamoDB):
//   - PK: id
//
// StockQuantity never goes below zero and every stock mutation bumps
// Version by exactly one.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	StockQuantity int64     `json:"stock_quantity"`
	Version       int64     `json:"version"`
	UpdatedAt     time.Time `json:"updated_at"`
}
