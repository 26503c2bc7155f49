package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultUnit is substituted when a product arrives without a unit of measure.
const DefaultUnit = "шт"

// Product is a stock position. SKU is the natural key used by the Excel
// reconciliation; Quantity is the running total of movement deltas since
// creation, except where an administrative override rewrote it directly.
type Product struct {
	ID        int64
	Name      string
	SKU       string // артикул / инвентарный номер
	Quantity  int64
	Unit      string
	MinStock  int64
	Price     decimal.Decimal
	Batch     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
