package wishlist

import (
	"context"

	"github.com/marketgo/storefront-service/internal/model"
	"github.com/marketgo/storefront-service/internal/wishlist/dto"
)

type UseCase interface {
	Add(ctx context.Context, email string, input *dto.AddInput) (*model.WishlistItem, error)
	Check(ctx context.Context, email, productRef string) (*dto.CheckResult, error)
	List(ctx context.Context, email string) ([]model.WishlistEntry, error)
	UpdateNote(ctx context.Context, email, id string, input *dto.UpdateNoteInput) (*model.WishlistItem, error)
	DeleteByID(ctx context.Context, email, id string) error
	DeleteByProduct(ctx context.Context, email, productRef string) error
}
