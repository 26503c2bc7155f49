package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/stock-management-excel/internal/application/dto"
	"github.com/pr-poehali-dev/stock-management-excel/internal/application/usecase"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/entity"
)

type stubActRepo struct {
	acts   map[int64]*entity.WriteoffAct
	nextID int64
}

func newStubActRepo() *stubActRepo {
	return &stubActRepo{acts: map[int64]*entity.WriteoffAct{}, nextID: 1}
}

func (r *stubActRepo) Create(_ context.Context, act *entity.WriteoffAct) error {
	act.ID = r.nextID
	r.nextID++
	cp := *act
	r.acts[act.ID] = &cp
	return nil
}

func (r *stubActRepo) GetByID(_ context.Context, id int64) (*entity.WriteoffAct, error) {
	act, ok := r.acts[id]
	if !ok {
		return nil, nil
	}
	cp := *act
	return &cp, nil
}

func (r *stubActRepo) List(_ context.Context) ([]*entity.WriteoffAct, error) {
	out := make([]*entity.WriteoffAct, 0, len(r.acts))
	for _, a := range r.acts {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *stubActRepo) Delete(_ context.Context, id int64) error {
	delete(r.acts, id)
	return nil
}

func TestWriteoffCreate_RequiresActNumber(t *testing.T) {
	uc := usecase.NewWriteoffActUseCase(newStubActRepo())

	_, err := uc.Create(context.Background(), dto.CreateWriteoffActRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWriteoffCreate_DefaultsCreatedByAndItems(t *testing.T) {
	uc := usecase.NewWriteoffActUseCase(newStubActRepo())

	out, err := uc.Create(context.Background(), dto.CreateWriteoffActRequest{
		ActNumber: "АКТ-001",
		ActDate:   "2024-06-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "Пользователь", out.CreatedBy)
	assert.NotNil(t, out.Items)
	assert.Empty(t, out.Items)
	assert.Equal(t, "2024-06-01", out.ActDate)
}

func TestWriteoffCreate_EmptyDateIsToday(t *testing.T) {
	uc := usecase.NewWriteoffActUseCase(newStubActRepo())

	out, err := uc.Create(context.Background(), dto.CreateWriteoffActRequest{
		ActNumber: "АКТ-002",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ActDate)
}

func TestWriteoffCreate_BadDate(t *testing.T) {
	uc := usecase.NewWriteoffActUseCase(newStubActRepo())

	_, err := uc.Create(context.Background(), dto.CreateWriteoffActRequest{
		ActNumber: "АКТ-003",
		ActDate:   "01.06.2024",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWriteoffCreate_KeepsItemOrder(t *testing.T) {
	uc := usecase.NewWriteoffActUseCase(newStubActRepo())

	items := []entity.WriteoffActItem{
		{ProductID: 3, ProductName: "Розетка", SKU: "SOC-002", Quantity: 2, Unit: "шт"},
		{ProductID: 1, ProductName: "Кабель", SKU: "CAB-001", Quantity: 7, Unit: "м"},
	}
	out, err := uc.Create(context.Background(), dto.CreateWriteoffActRequest{
		ActNumber: "АКТ-004",
		ActDate:   "2024-06-01",
		Items:     items,
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "SOC-002", out.Items[0].SKU)
	assert.Equal(t, "CAB-001", out.Items[1].SKU)
}

func TestWriteoffGetActByID_Missing(t *testing.T) {
	uc := usecase.NewWriteoffActUseCase(newStubActRepo())

	act, err := uc.GetActByID(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, act)
}
