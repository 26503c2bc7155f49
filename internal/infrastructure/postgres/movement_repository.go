package postgres

import (
	"context"
	"fmt"

	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/entity"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implements the append-only movement ledger on PostgreSQL
// (usable with pool or tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository builds the adapter. Pass a pool or a tx.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persists a movement and fills in the generated id and created_at.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	query := `
		INSERT INTO movements (product_id, movement_type, quantity, user_name, reason, supplier, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		movement.ProductID, movement.MovementType, movement.Quantity,
		movement.UserName, movement.Reason, movement.Supplier, movement.Notes,
	).Scan(&movement.ID, &movement.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListRecent returns the newest movements joined with product name and sku.
func (r *MovementRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Movement, error) {
	query := `
		SELECT m.id, m.product_id, m.movement_type, m.quantity, m.user_name,
		       m.reason, m.supplier, m.notes, m.created_at,
		       p.name AS product_name, p.sku
		FROM movements m
		JOIN products p ON m.product_id = p.id
		ORDER BY m.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.MovementType, &m.Quantity, &m.UserName,
			&m.Reason, &m.Supplier, &m.Notes, &m.CreatedAt,
			&m.ProductName, &m.ProductSKU,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
