package importer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/stock-management-excel/internal/application/importer"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/entity"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/repository"
	"github.com/pr-poehali-dev/stock-management-excel/pkg/logger"
)

// memProductRepo keeps products in memory, keyed by sku, and can be told to
// fail on the nth write to exercise the per-row commit behavior.
type memProductRepo struct {
	bySKU  map[string]*entity.Product
	nextID int64

	writes      int
	failAtWrite int // 0 = never fail
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{bySKU: map[string]*entity.Product{}, nextID: 1}
}

func (r *memProductRepo) write() error {
	r.writes++
	if r.failAtWrite > 0 && r.writes >= r.failAtWrite {
		return errors.New("connection reset")
	}
	return nil
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	if err := r.write(); err != nil {
		return err
	}
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.bySKU[p.SKU] = &cp
	return nil
}

func (r *memProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	p, ok := r.bySKU[sku]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	if err := r.write(); err != nil {
		return err
	}
	cp := *p
	r.bySKU[p.SKU] = &cp
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	for _, p := range r.bySKU {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) AdjustQuantity(_ context.Context, id, delta int64) error {
	for _, p := range r.bySKU {
		if p.ID == id {
			p.Quantity += delta
			return nil
		}
	}
	return errors.New("no row")
}

func (r *memProductRepo) SetQuantity(_ context.Context, id, quantity int64) error {
	for _, p := range r.bySKU {
		if p.ID == id {
			p.Quantity = quantity
			return nil
		}
	}
	return errors.New("no row")
}

func (r *memProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.bySKU))
	for _, p := range r.bySKU {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) ListOrderedByName(ctx context.Context) ([]*entity.Product, error) {
	return r.List(ctx)
}

func (r *memProductRepo) Delete(_ context.Context, id int64) error {
	for sku, p := range r.bySKU {
		if p.ID == id {
			delete(r.bySKU, sku)
		}
	}
	return nil
}

// passthroughTxRunner hands the callback the same repos and discards rollback
// semantics; good enough for count assertions, not for atomicity ones.
type passthroughTxRunner struct {
	products repository.ProductRepository
	movs     repository.MovementRepository
}

func (t *passthroughTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(t.movs, t.products)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func newReconciler(repo *memProductRepo, transactional bool) *importer.Reconciler {
	runner := &passthroughTxRunner{products: repo}
	return importer.NewReconciler(repo, runner, transactional, testLogger())
}

func row(name, sku string, quantity int64) importer.Row {
	return importer.Row{
		Name:     name,
		SKU:      sku,
		Quantity: quantity,
		Unit:     entity.DefaultUnit,
		Price:    decimal.NewFromInt(100),
	}
}

func TestReconcile_InsertsNewProducts(t *testing.T) {
	repo := newMemProductRepo()
	r := newReconciler(repo, false)

	summary, err := r.Reconcile(context.Background(), []importer.Row{
		row("Кабель ВВГ", "CAB-001", 10),
		row("Розетка", "SOC-002", 25),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Inserted)
	assert.Equal(t, 0, summary.Updated)
	assert.Equal(t, 2, summary.Total())

	p, err := repo.GetBySKU(context.Background(), "CAB-001")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, int64(10), p.Quantity)
}

func TestReconcile_UpdatesExistingBySKU(t *testing.T) {
	repo := newMemProductRepo()
	require.NoError(t, repo.Create(context.Background(), &entity.Product{
		Name: "Старое имя", SKU: "CAB-001", Quantity: 3, Unit: entity.DefaultUnit,
	}))
	r := newReconciler(repo, false)

	summary, err := r.Reconcile(context.Background(), []importer.Row{
		row("Новое имя", "CAB-001", 42),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Inserted)
	assert.Equal(t, 1, summary.Updated)

	p, err := repo.GetBySKU(context.Background(), "CAB-001")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Новое имя", p.Name)
	assert.Equal(t, int64(42), p.Quantity)
	// The sku itself is the match key and never changes.
	assert.Equal(t, "CAB-001", p.SKU)
}

func TestReconcile_SecondImportIsAllUpdates(t *testing.T) {
	repo := newMemProductRepo()
	r := newReconciler(repo, false)
	rows := []importer.Row{
		row("Кабель", "CAB-001", 10),
		row("Розетка", "SOC-002", 25),
	}

	first, err := r.Reconcile(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Inserted)

	second, err := r.Reconcile(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 2, second.Updated)
}

func TestReconcile_SkipsRowsWithEmptyName(t *testing.T) {
	repo := newMemProductRepo()
	r := newReconciler(repo, false)

	summary, err := r.Reconcile(context.Background(), []importer.Row{
		row("", "GHOST-1", 5),
		row("Кабель", "CAB-001", 10),
		row("", "", 0),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Inserted)
	assert.Equal(t, 1, summary.Total())

	ghost, err := repo.GetBySKU(context.Background(), "GHOST-1")
	require.NoError(t, err)
	assert.Nil(t, ghost)
}

func TestReconcile_PerRowModeKeepsEarlierRowsOnFailure(t *testing.T) {
	repo := newMemProductRepo()
	repo.failAtWrite = 3 // first two inserts land, the third write blows up
	r := newReconciler(repo, false)

	_, err := r.Reconcile(context.Background(), []importer.Row{
		row("Первый", "A-1", 1),
		row("Второй", "A-2", 2),
		row("Третий", "A-3", 3),
	})
	require.Error(t, err)

	first, _ := repo.GetBySKU(context.Background(), "A-1")
	second, _ := repo.GetBySKU(context.Background(), "A-2")
	third, _ := repo.GetBySKU(context.Background(), "A-3")
	assert.NotNil(t, first)
	assert.NotNil(t, second)
	assert.Nil(t, third)
}

func TestReconcile_TransactionalModeRunsInsideRunner(t *testing.T) {
	repo := newMemProductRepo()
	runner := &countingTxRunner{inner: &passthroughTxRunner{products: repo}}
	r := importer.NewReconciler(repo, runner, true, testLogger())

	summary, err := r.Reconcile(context.Background(), []importer.Row{
		row("Кабель", "CAB-001", 10),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Inserted)
	assert.Equal(t, 1, runner.calls)
}

type countingTxRunner struct {
	inner *passthroughTxRunner
	calls int
}

func (t *countingTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	t.calls++
	return t.inner.Run(ctx, fn)
}
