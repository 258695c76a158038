package user

import (
	"context"

	"github.com/marketgo/storefront-service/internal/model"
)

type UseCase interface {
	Sync(ctx context.Context, email string) (*model.User, error)
}
