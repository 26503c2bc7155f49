package dto

import "time"

// RecordMovementRequest input for the movement ledger. MovementType is not
// validated against an enum: "Receipt" adds stock, anything else subtracts.
type RecordMovementRequest struct {
	ProductID    int64  `json:"product_id"`
	MovementType string `json:"movement_type"`
	Quantity     int64  `json:"quantity"`
	UserName     string `json:"user_name"`
	Reason       string `json:"reason"`
	Supplier     string `json:"supplier"`
	Notes        string `json:"notes"`
}

// MovementResponse is a ledger entry on the wire, with the joined product
// fields the movements list shows.
type MovementResponse struct {
	ID           int64     `json:"id"`
	ProductID    int64     `json:"product_id,omitempty"`
	MovementType string    `json:"movement_type"`
	Quantity     int64     `json:"quantity"`
	UserName     string    `json:"user_name"`
	Reason       string    `json:"reason,omitempty"`
	Supplier     string    `json:"supplier,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	ProductName  string    `json:"product_name,omitempty"`
	SKU          string    `json:"sku,omitempty"`
}

// MovementListResponse mirrors the legacy body: {"movements": [...]}.
type MovementListResponse struct {
	Movements []MovementResponse `json:"movements"`
}

// MovementCreatedResponse mirrors the legacy body: {"movement": {...}}.
type MovementCreatedResponse struct {
	Movement MovementResponse `json:"movement"`
}
