package inventory

import (
	"context"

	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/repository"
)

// TxRunner executes a function inside one DB transaction, handing it
// repositories bound to that transaction. The ledger needs it so the movement
// insert and the quantity increment commit or roll back together.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
