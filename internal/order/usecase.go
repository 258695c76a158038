package order

import (
	"context"

	"github.com/marketgo/storefront-service/internal/model"
	"github.com/marketgo/storefront-service/internal/order/dto"
)

type UseCase interface {
	CreateOrder(ctx context.Context, email string, input *dto.CreateOrderInput) (*model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	Stats(ctx context.Context) (*model.OrderStats, error)
}
