package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/marketgo/storefront-service/internal/model"
	"github.com/marketgo/storefront-service/internal/product"
	"github.com/marketgo/storefront-service/internal/product/dto"
	"github.com/marketgo/storefront-service/pkg/httperr"
)

type productUseCase struct {
	repo   product.Repository
	logger *zap.Logger
}

func NewProductUseCase(repo product.Repository, log *zap.Logger) product.UseCase {
	return &productUseCase{repo: repo, logger: log}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	price, err := input.Price.Float64()
	if err != nil {
		return nil, err
	}

	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}

	now := time.Now()
	p := &model.Product{
		Name:      input.Name,
		Price:     price,
		Category:  input.Category,
		Image:     input.Image,
		InStock:   inStock,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.logger.Info("product created", zap.String("id", p.ID.Hex()), zap.String("name", p.Name))
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, httperr.Wrap(httperr.ErrNotFound, "product not found")
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	// "All" is a sentinel for "no filter"; resolve it here so the
	// repository only ever sees a real category or nothing.
	if filters.Category == dto.CategoryAll {
		filters.Category = ""
	}
	return uc.repo.FindAll(ctx, filters)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	fields, err := input.Fields()
	if err != nil {
		return nil, err
	}

	matched, err := uc.repo.Update(ctx, input.ID, fields)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, httperr.Wrap(httperr.ErrNotFound, "product not found")
	}
	return uc.repo.FindByID(ctx, input.ID)
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.Wrap(httperr.ErrNotFound, "product not found")
	}
	uc.logger.Info("product deleted", zap.String("id", id))
	return nil
}
