// Package importer reconciles spreadsheet rows against the products table:
// rows are matched to existing products by sku and applied as an update, or
// inserted when no product carries that sku.
package importer

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pr-poehali-dev/stock-management-excel/internal/application/inventory"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/entity"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/repository"
	"github.com/pr-poehali-dev/stock-management-excel/pkg/logger"
)

// Row is one parsed spreadsheet line. Cell coercion (blank numeric -> 0,
// missing text -> "", missing unit -> entity.DefaultUnit) happens in the
// excel codec before rows reach the engine.
type Row struct {
	Name     string
	SKU      string
	Quantity int64
	Unit     string
	MinStock int64
	Price    decimal.Decimal
	Batch    string
}

// Summary is the aggregate result of a reconciliation. The engine reports no
// per-row diagnostics.
type Summary struct {
	Inserted int
	Updated  int
}

// Total is the number of rows applied.
func (s Summary) Total() int { return s.Inserted + s.Updated }

// Reconciler applies import batches. Transactional selects between the legacy
// per-row statements (a mid-batch failure leaves earlier rows committed) and
// a single all-or-nothing transaction.
type Reconciler struct {
	productRepo   repository.ProductRepository
	txRunner      inventory.TxRunner
	transactional bool
	log           *logger.Logger
}

// NewReconciler builds the engine.
func NewReconciler(productRepo repository.ProductRepository, txRunner inventory.TxRunner, transactional bool, log *logger.Logger) *Reconciler {
	return &Reconciler{
		productRepo:   productRepo,
		txRunner:      txRunner,
		transactional: transactional,
		log:           log,
	}
}

// Reconcile walks the rows in order. A row with an empty name is skipped
// silently and counts for nothing. Every other row is matched by exact sku:
// a hit overwrites name, quantity, unit, min_stock, price and batch (the sku
// itself never changes); a miss inserts a new product.
func (r *Reconciler) Reconcile(ctx context.Context, rows []Row) (Summary, error) {
	var summary Summary
	var err error

	if r.transactional {
		err = r.txRunner.Run(ctx, func(
			_ repository.MovementRepository,
			productRepo repository.ProductRepository,
		) error {
			var txErr error
			summary, txErr = r.applyAll(ctx, productRepo, rows)
			return txErr
		})
	} else {
		summary, err = r.applyAll(ctx, r.productRepo, rows)
	}
	if err != nil {
		return Summary{}, err
	}

	r.log.Info().
		Int("inserted", summary.Inserted).
		Int("updated", summary.Updated).
		Bool("transactional", r.transactional).
		Msg("import reconciled")
	return summary, nil
}

func (r *Reconciler) applyAll(ctx context.Context, productRepo repository.ProductRepository, rows []Row) (Summary, error) {
	var summary Summary
	for _, row := range rows {
		if row.Name == "" {
			continue
		}
		applied, err := r.applyRow(ctx, productRepo, row)
		if err != nil {
			// Per-row mode: rows applied so far stay committed.
			return summary, err
		}
		if applied {
			summary.Updated++
		} else {
			summary.Inserted++
		}
	}
	return summary, nil
}

// applyRow returns true when an existing product was updated, false when a
// new one was inserted.
func (r *Reconciler) applyRow(ctx context.Context, productRepo repository.ProductRepository, row Row) (bool, error) {
	existing, err := productRepo.GetBySKU(ctx, row.SKU)
	if err != nil {
		return false, err
	}
	now := time.Now()

	if existing != nil {
		existing.Name = row.Name
		existing.Quantity = row.Quantity
		existing.Unit = row.Unit
		existing.MinStock = row.MinStock
		existing.Price = row.Price
		existing.Batch = row.Batch
		existing.UpdatedAt = now
		if err := productRepo.Update(ctx, existing); err != nil {
			return false, err
		}
		return true, nil
	}

	product := &entity.Product{
		Name:      row.Name,
		SKU:       row.SKU,
		Quantity:  row.Quantity,
		Unit:      row.Unit,
		MinStock:  row.MinStock,
		Price:     row.Price,
		Batch:     row.Batch,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := productRepo.Create(ctx, product); err != nil {
		return false, err
	}
	return false, nil
}
