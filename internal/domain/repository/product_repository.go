package repository

import (
	"context"

	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/entity"
)

// ProductRepository is the persistence port for Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// AdjustQuantity applies a signed delta with a single atomic UPDATE
	// (quantity = quantity + delta). Returns ErrNotFound when no row matches.
	AdjustQuantity(ctx context.Context, id int64, delta int64) error
	// SetQuantity overwrites the quantity directly, bypassing the ledger.
	SetQuantity(ctx context.Context, id int64, quantity int64) error
	List(ctx context.Context) ([]*entity.Product, error)
	// ListOrderedByName is the ordering the Excel export uses.
	ListOrderedByName(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}
