package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest input for creating a product. Name and SKU are the
// only required fields.
type CreateProductRequest struct {
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Quantity int64           `json:"quantity"`
	Unit     string          `json:"unit"`
	MinStock int64           `json:"min_stock"`
	Price    decimal.Decimal `json:"price"`
	Batch    string          `json:"batch"`
}

// UpdateQuantityRequest is the direct quantity overwrite (PUT). It bypasses
// the movement ledger, as the legacy stock handler did.
type UpdateQuantityRequest struct {
	ID       int64 `json:"id"`
	Quantity int64 `json:"quantity"`
}

// ProductResponse is a product on the wire.
type ProductResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Quantity  int64           `json:"quantity"`
	Unit      string          `json:"unit"`
	MinStock  int64           `json:"min_stock"`
	Price     decimal.Decimal `json:"price"`
	Batch     string          `json:"batch"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse mirrors the legacy body: {"products": [...]}.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// ProductCreatedResponse mirrors the legacy body: {"product": {...}}.
type ProductCreatedResponse struct {
	Product ProductResponse `json:"product"`
}
