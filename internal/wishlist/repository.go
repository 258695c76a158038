package wishlist

import (
	"context"

	"github.com/marketgo/storefront-service/internal/model"
)

type Repository interface {
	// Insert relies on the unique (email, productId) index; a duplicate
	// pair surfaces as httperr.ErrDuplicate.
	Insert(ctx context.Context, item *model.WishlistItem) error

	FindByOwnerAndProduct(ctx context.Context, email, productID string) (*model.WishlistItem, error)
	FindByOwner(ctx context.Context, email string) ([]model.WishlistItem, error)
	// UpdateNote returns the updated entry, or nil when the caller owns no
	// entry with that id.
	UpdateNote(ctx context.Context, email, id, note string) (*model.WishlistItem, error)
	DeleteByID(ctx context.Context, email, id string) (bool, error)
	DeleteByProduct(ctx context.Context, email, productID string) (bool, error)
}
