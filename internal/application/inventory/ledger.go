package inventory

import (
	"context"
	"time"

	"github.com/pr-poehali-dev/stock-management-excel/internal/application/dto"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/entity"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/repository"
	"github.com/pr-poehali-dev/stock-management-excel/pkg/logger"
)

// MovementListLimit caps the movements feed, newest first.
const MovementListLimit = 50

// Ledger is the single entry point for product quantity changes. The regular
// path records an immutable movement and adjusts the quantity atomically in
// one transaction; OverrideQuantity is the administrative escape hatch the
// stock PUT uses, which rewrites the quantity without an audit record.
type Ledger struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
	log         *logger.Logger
}

// NewLedger builds the use case.
func NewLedger(txRunner TxRunner, productRepo repository.ProductRepository, movRepo repository.MovementRepository, log *logger.Logger) *Ledger {
	return &Ledger{txRunner: txRunner, productRepo: productRepo, movRepo: movRepo, log: log}
}

// RecordMovement inserts a movement row and applies its delta to the product
// quantity, both inside one transaction. "Receipt" adds the quantity, any
// other movement_type subtracts it; the type is deliberately not validated.
// The resulting quantity may go negative — there is no floor check.
func (l *Ledger) RecordMovement(ctx context.Context, in dto.RecordMovementRequest) (*dto.MovementResponse, error) {
	if in.ProductID == 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := l.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	mov := &entity.Movement{
		ProductID:    in.ProductID,
		MovementType: in.MovementType,
		Quantity:     in.Quantity,
		UserName:     in.UserName,
		Reason:       in.Reason,
		Supplier:     in.Supplier,
		Notes:        in.Notes,
		CreatedAt:    time.Now(),
	}

	err = l.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		// quantity = quantity + delta in a single UPDATE; concurrent
		// movements on the same product serialize on the row, not on an
		// application-level read-modify-write.
		return productRepo.AdjustQuantity(ctx, mov.ProductID, mov.Delta())
	})
	if err != nil {
		return nil, err
	}

	l.log.Info().
		Int64("product_id", mov.ProductID).
		Str("movement_type", mov.MovementType).
		Int64("delta", mov.Delta()).
		Msg("movement recorded")

	return toMovementResponse(mov), nil
}

// ListMovements returns the recent ledger feed joined with product name and
// sku, newest first, capped at MovementListLimit.
func (l *Ledger) ListMovements(ctx context.Context) (*dto.MovementListResponse, error) {
	movements, err := l.movRepo.ListRecent(ctx, MovementListLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{Movements: items}, nil
}

// OverrideQuantity rewrites a product quantity directly, bypassing the ledger.
// The stock PUT has always worked this way; the override is logged because it
// desynchronizes the audit history from the stored quantity.
func (l *Ledger) OverrideQuantity(ctx context.Context, productID, quantity int64) error {
	if err := l.productRepo.SetQuantity(ctx, productID, quantity); err != nil {
		return err
	}
	l.log.Warn().
		Int64("product_id", productID).
		Int64("quantity", quantity).
		Msg("quantity override, ledger bypassed")
	return nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		MovementType: m.MovementType,
		Quantity:     m.Quantity,
		UserName:     m.UserName,
		Reason:       m.Reason,
		Supplier:     m.Supplier,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		ProductName:  m.ProductName,
		SKU:          m.ProductSKU,
	}
}
