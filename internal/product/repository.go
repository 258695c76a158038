package product

import (
	"context"

	"github.com/marketgo/storefront-service/internal/model"
	"github.com/marketgo/storefront-service/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)

	// Update applies a partial merge; returns false when no document
	// matched the id. Delete behaves the same way.
	Update(ctx context.Context, id string, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
