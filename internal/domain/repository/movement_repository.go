package repository

import (
	"context"

	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/entity"
)

// MovementRepository is the persistence port for the movement ledger.
// Movements are append-only.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	// ListRecent returns movements joined with product name and sku,
	// newest first, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]*entity.Movement, error)
}
