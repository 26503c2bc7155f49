package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/stock-management-excel/internal/application/dto"
	"github.com/pr-poehali-dev/stock-management-excel/internal/application/inventory"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/entity"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/repository"
	"github.com/pr-poehali-dev/stock-management-excel/pkg/logger"
)

type fakeProductRepo struct {
	products map[int64]*entity.Product
	setCalls []int64
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error { return nil }

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProductRepo) GetBySKU(_ context.Context, _ string) (*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, _ *entity.Product) error { return nil }

func (r *fakeProductRepo) AdjustQuantity(_ context.Context, id, delta int64) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity += delta
	return nil
}

func (r *fakeProductRepo) SetQuantity(_ context.Context, id, quantity int64) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	r.setCalls = append(r.setCalls, id)
	return nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) ListOrderedByName(_ context.Context) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, _ int64) error { return nil }

type fakeMovementRepo struct {
	created []*entity.Movement
	listOut []*entity.Movement
	failOn  error
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	if r.failOn != nil {
		return r.failOn
	}
	m.ID = int64(len(r.created) + 1)
	r.created = append(r.created, m)
	return nil
}

func (r *fakeMovementRepo) ListRecent(_ context.Context, limit int) ([]*entity.Movement, error) {
	if len(r.listOut) > limit {
		return r.listOut[:limit], nil
	}
	return r.listOut, nil
}

// fakeTxRunner snapshots quantities before the callback and restores them if
// it fails, mimicking a rollback.
type fakeTxRunner struct {
	products *fakeProductRepo
	movs     *fakeMovementRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	before := map[int64]int64{}
	for id, p := range t.products.products {
		before[id] = p.Quantity
	}
	movsBefore := len(t.movs.created)

	if err := fn(t.movs, t.products); err != nil {
		for id, q := range before {
			t.products.products[id].Quantity = q
		}
		t.movs.created = t.movs.created[:movsBefore]
		return err
	}
	return nil
}

func newLedger(products *fakeProductRepo, movs *fakeMovementRepo) *inventory.Ledger {
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return inventory.NewLedger(&fakeTxRunner{products: products, movs: movs}, products, movs, log)
}

func TestRecordMovement_ReceiptAddsQuantity(t *testing.T) {
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "Кабель", SKU: "CAB-001", Quantity: 10},
	}}
	movs := &fakeMovementRepo{}
	ledger := newLedger(products, movs)

	out, err := ledger.RecordMovement(context.Background(), dto.RecordMovementRequest{
		ProductID:    1,
		MovementType: entity.MovementTypeReceipt,
		Quantity:     5,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(15), products.products[1].Quantity)
	require.Len(t, movs.created, 1)
	assert.Equal(t, entity.MovementTypeReceipt, out.MovementType)
	assert.Equal(t, int64(5), out.Quantity)
}

func TestRecordMovement_WriteOffSubtractsQuantity(t *testing.T) {
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Quantity: 10},
	}}
	ledger := newLedger(products, &fakeMovementRepo{})

	_, err := ledger.RecordMovement(context.Background(), dto.RecordMovementRequest{
		ProductID:    1,
		MovementType: entity.MovementTypeWriteOff,
		Quantity:     3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), products.products[1].Quantity)
}

func TestRecordMovement_UnknownTypeSubtracts(t *testing.T) {
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Quantity: 10},
	}}
	ledger := newLedger(products, &fakeMovementRepo{})

	_, err := ledger.RecordMovement(context.Background(), dto.RecordMovementRequest{
		ProductID:    1,
		MovementType: "Инвентаризация",
		Quantity:     4,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), products.products[1].Quantity)
}

func TestRecordMovement_QuantityMayGoNegative(t *testing.T) {
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Quantity: 2},
	}}
	ledger := newLedger(products, &fakeMovementRepo{})

	_, err := ledger.RecordMovement(context.Background(), dto.RecordMovementRequest{
		ProductID:    1,
		MovementType: entity.MovementTypeWriteOff,
		Quantity:     5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-3), products.products[1].Quantity)
}

func TestRecordMovement_UnknownProduct(t *testing.T) {
	ledger := newLedger(&fakeProductRepo{products: map[int64]*entity.Product{}}, &fakeMovementRepo{})

	_, err := ledger.RecordMovement(context.Background(), dto.RecordMovementRequest{
		ProductID:    99,
		MovementType: entity.MovementTypeReceipt,
		Quantity:     1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordMovement_MissingProductID(t *testing.T) {
	ledger := newLedger(&fakeProductRepo{products: map[int64]*entity.Product{}}, &fakeMovementRepo{})

	_, err := ledger.RecordMovement(context.Background(), dto.RecordMovementRequest{
		MovementType: entity.MovementTypeReceipt,
		Quantity:     1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordMovement_FailedInsertRollsBackQuantity(t *testing.T) {
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Quantity: 10},
	}}
	movs := &fakeMovementRepo{failOn: errors.New("insert failed")}
	ledger := newLedger(products, movs)

	_, err := ledger.RecordMovement(context.Background(), dto.RecordMovementRequest{
		ProductID:    1,
		MovementType: entity.MovementTypeReceipt,
		Quantity:     5,
	})
	require.Error(t, err)
	assert.Equal(t, int64(10), products.products[1].Quantity)
	assert.Empty(t, movs.created)
}

func TestListMovements_CappedAtLimit(t *testing.T) {
	movs := &fakeMovementRepo{}
	for i := 0; i < inventory.MovementListLimit+10; i++ {
		movs.listOut = append(movs.listOut, &entity.Movement{ID: int64(i + 1)})
	}
	ledger := newLedger(&fakeProductRepo{products: map[int64]*entity.Product{}}, movs)

	out, err := ledger.ListMovements(context.Background())
	require.NoError(t, err)
	assert.Len(t, out.Movements, inventory.MovementListLimit)
}

func TestOverrideQuantity_BypassesLedger(t *testing.T) {
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Quantity: 10},
	}}
	movs := &fakeMovementRepo{}
	ledger := newLedger(products, movs)

	err := ledger.OverrideQuantity(context.Background(), 1, 77)
	require.NoError(t, err)

	assert.Equal(t, int64(77), products.products[1].Quantity)
	// No audit record is written on the override path.
	assert.Empty(t, movs.created)
	assert.Equal(t, []int64{1}, products.setCalls)
}
