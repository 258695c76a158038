package dto

import (
	"github.com/marketgo/storefront-service/internal/model"
	"github.com/marketgo/storefront-service/pkg/httperr"
)

type CreateOrderInput struct {
	Items   []model.OrderItem `json:"items"`
	Total   float64           `json:"total"`
	Address string            `json:"address"`
	Phone   string            `json:"phone"`
}

func (in *CreateOrderInput) Validate() error {
	if len(in.Items) == 0 {
		return httperr.Wrap(httperr.ErrInvalidInput, "order must contain at least one item")
	}
	return nil
}

type UpdateStatusInput struct {
	Status string `json:"status"`
}
