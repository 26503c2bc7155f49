package entity

import "time"

// Movement types. Anything other than Receipt is applied as a write-off; the
// legacy handlers never validated the value and callers rely on that.
const (
	MovementTypeReceipt  = "Receipt"
	MovementTypeWriteOff = "WriteOff"
)

// Movement is an immutable record of a quantity change on a product.
// Created only by the ledger; never updated or deleted.
type Movement struct {
	ID           int64
	ProductID    int64
	MovementType string
	Quantity     int64 // positive magnitude; direction comes from MovementType
	UserName     string
	Reason       string
	Supplier     string
	Notes        string
	CreatedAt    time.Time

	// Joined product fields, populated on list reads.
	ProductName string
	ProductSKU  string
}

// Delta returns the signed quantity change this movement applies to its
// product: +Quantity for a receipt, -Quantity for everything else.
func (m *Movement) Delta() int64 {
	if m.MovementType == MovementTypeReceipt {
		return m.Quantity
	}
	return -m.Quantity
}
