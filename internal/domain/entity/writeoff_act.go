package entity

import "time"

// WriteoffActItem is one line of a write-off act. Items are stored verbatim in
// a single JSONB column, in the order the frontend sent them.
type WriteoffActItem struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	SKU         string `json:"sku"`
	Quantity    int64  `json:"quantity"`
	Unit        string `json:"unit"`
	Reason      string `json:"reason,omitempty"`
}

// WriteoffAct is an administrative document grouping write-off line items.
// It is paperwork only: saving an act does not create movements and does not
// touch product quantities.
type WriteoffAct struct {
	ID                int64
	ActNumber         string
	ActDate           time.Time
	ResponsiblePerson string
	Reason            string
	Items             []WriteoffActItem
	CreatedBy         string
	IsDraft           bool
	CreatedAt         time.Time
}
