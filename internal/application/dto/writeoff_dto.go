package dto

import (
	"time"

	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/entity"
)

// CreateWriteoffActRequest input for saving a write-off act. Items are stored
// as-is; nothing is cross-checked against stock levels.
type CreateWriteoffActRequest struct {
	ActNumber         string                   `json:"act_number"`
	ActDate           string                   `json:"act_date"` // YYYY-MM-DD
	ResponsiblePerson string                   `json:"responsible_person"`
	Reason            string                   `json:"reason"`
	Items             []entity.WriteoffActItem `json:"items"`
	CreatedBy         string                   `json:"created_by"`
	IsDraft           bool                     `json:"is_draft"`
}

// WriteoffActResponse is an act on the wire.
type WriteoffActResponse struct {
	ID                int64                    `json:"id"`
	ActNumber         string                   `json:"act_number"`
	ActDate           string                   `json:"act_date"`
	ResponsiblePerson string                   `json:"responsible_person"`
	Reason            string                   `json:"reason"`
	Items             []entity.WriteoffActItem `json:"items"`
	CreatedBy         string                   `json:"created_by"`
	IsDraft           bool                     `json:"is_draft"`
	CreatedAt         time.Time                `json:"created_at"`
}

// WriteoffActListResponse mirrors the legacy body: {"acts": [...]}.
type WriteoffActListResponse struct {
	Acts []WriteoffActResponse `json:"acts"`
}

// WriteoffActCreatedResponse mirrors the legacy body: {"act": {...}}.
type WriteoffActCreatedResponse struct {
	Act WriteoffActResponse `json:"act"`
}
