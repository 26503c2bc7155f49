package usecase

import (
	"context"
	"time"

	"github.com/pr-poehali-dev/stock-management-excel/internal/application/dto"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/entity"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/repository"
)

const actDateLayout = "2006-01-02"

// WriteoffActUseCase persists write-off act documents. Acts are descriptive
// records: saving one neither creates ledger movements nor touches product
// quantities.
type WriteoffActUseCase struct {
	repo repository.WriteoffActRepository
}

// NewWriteoffActUseCase builds the use case.
func NewWriteoffActUseCase(repo repository.WriteoffActRepository) *WriteoffActUseCase {
	return &WriteoffActUseCase{repo: repo}
}

// Create stores a new act. Items keep the order they arrived in.
func (uc *WriteoffActUseCase) Create(ctx context.Context, in dto.CreateWriteoffActRequest) (*dto.WriteoffActResponse, error) {
	if in.ActNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	// Legacy clients sometimes omit the date; the act is dated today then.
	actDate := time.Now()
	if in.ActDate != "" {
		var err error
		actDate, err = time.Parse(actDateLayout, in.ActDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	createdBy := in.CreatedBy
	if createdBy == "" {
		createdBy = "Пользователь"
	}
	items := in.Items
	if items == nil {
		items = []entity.WriteoffActItem{}
	}
	act := &entity.WriteoffAct{
		ActNumber:         in.ActNumber,
		ActDate:           actDate,
		ResponsiblePerson: in.ResponsiblePerson,
		Reason:            in.Reason,
		Items:             items,
		CreatedBy:         createdBy,
		IsDraft:           in.IsDraft,
		CreatedAt:         time.Now(),
	}
	if err := uc.repo.Create(ctx, act); err != nil {
		return nil, err
	}
	return toWriteoffActResponse(act), nil
}

// GetActByID returns the raw act, (nil, nil) when it does not exist. The PDF
// route renders from the entity rather than the wire shape.
func (uc *WriteoffActUseCase) GetActByID(ctx context.Context, id int64) (*entity.WriteoffAct, error) {
	return uc.repo.GetByID(ctx, id)
}

// List returns all acts ordered by act_date, then created_at, newest first.
func (uc *WriteoffActUseCase) List(ctx context.Context) (*dto.WriteoffActListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WriteoffActResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toWriteoffActResponse(a))
	}
	return &dto.WriteoffActListResponse{Acts: items}, nil
}

// Delete removes an act by id.
func (uc *WriteoffActUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toWriteoffActResponse(a *entity.WriteoffAct) *dto.WriteoffActResponse {
	if a == nil {
		return nil
	}
	return &dto.WriteoffActResponse{
		ID:                a.ID,
		ActNumber:         a.ActNumber,
		ActDate:           a.ActDate.Format(actDateLayout),
		ResponsiblePerson: a.ResponsiblePerson,
		Reason:            a.Reason,
		Items:             a.Items,
		CreatedBy:         a.CreatedBy,
		IsDraft:           a.IsDraft,
		CreatedAt:         a.CreatedAt,
	}
}
