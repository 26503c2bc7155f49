package repository

import (
	"context"

	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/entity"
)

// WriteoffActRepository is the persistence port for write-off acts.
type WriteoffActRepository interface {
	Create(ctx context.Context, act *entity.WriteoffAct) error
	GetByID(ctx context.Context, id int64) (*entity.WriteoffAct, error)
	List(ctx context.Context) ([]*entity.WriteoffAct, error)
	Delete(ctx context.Context, id int64) error
}
