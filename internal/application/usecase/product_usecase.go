package usecase

import (
	"context"
	"time"

	"github.com/pr-poehali-dev/stock-management-excel/internal/application/dto"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/entity"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/repository"
)

// ProductUseCase covers product CRUD. Quantity changes go through the
// inventory ledger; the direct overwrite is exposed there as well.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create validates name and sku, then persists. A sku collision surfaces as
// domain.ErrDuplicate and leaves existing data untouched.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Unit == "" {
		in.Unit = entity.DefaultUnit
	}
	now := time.Now()
	product := &entity.Product{
		Name:      in.Name,
		SKU:       in.SKU,
		Quantity:  in.Quantity,
		Unit:      in.Unit,
		MinStock:  in.MinStock,
		Price:     in.Price,
		Batch:     in.Batch,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID returns (nil, nil) when the product does not exist.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List returns all products, newest first.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Products: items}, nil
}

// ListForExport returns all products ordered by name, as entities, the order
// the workbook rows are written in.
func (uc *ProductUseCase) ListForExport(ctx context.Context) ([]*entity.Product, error) {
	return uc.repo.ListOrderedByName(ctx)
}

// Delete removes a product by id.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Quantity:  p.Quantity,
		Unit:      p.Unit,
		MinStock:  p.MinStock,
		Price:     p.Price,
		Batch:     p.Batch,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
