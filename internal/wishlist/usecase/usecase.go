package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/marketgo/storefront-service/internal/model"
	"github.com/marketgo/storefront-service/internal/product"
	"github.com/marketgo/storefront-service/internal/wishlist"
	"github.com/marketgo/storefront-service/internal/wishlist/dto"
	"github.com/marketgo/storefront-service/pkg/httperr"
)

type wishlistUseCase struct {
	repo     wishlist.Repository
	products product.Repository
	logger   *zap.Logger
}

func NewWishlistUseCase(repo wishlist.Repository, products product.Repository, log *zap.Logger) wishlist.UseCase {
	return &wishlistUseCase{repo: repo, products: products, logger: log}
}

func (uc *wishlistUseCase) Add(ctx context.Context, email string, input *dto.AddInput) (*model.WishlistItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	item := &model.WishlistItem{
		Email:     email,
		ProductID: dto.NormalizeProductRef(input.ProductID),
		Note:      "",
		CreatedAt: now,
		UpdatedAt: now,
	}

	// The unique (email, productId) index makes this a single conditional
	// write; concurrent adds of the same pair cannot both succeed.
	if err := uc.repo.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *wishlistUseCase) Check(ctx context.Context, email, productRef string) (*dto.CheckResult, error) {
	item, err := uc.repo.FindByOwnerAndProduct(ctx, email, dto.NormalizeProductRef(productRef))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return &dto.CheckResult{Exists: false}, nil
	}
	return &dto.CheckResult{Exists: true, ID: item.ID.Hex()}, nil
}

func (uc *wishlistUseCase) List(ctx context.Context, email string) ([]model.WishlistEntry, error) {
	items, err := uc.repo.FindByOwner(ctx, email)
	if err != nil {
		return nil, err
	}

	// One lookup per entry; entries whose product is gone (or whose
	// reference is an opaque code) carry a null product.
	entries := make([]model.WishlistEntry, 0, len(items))
	for _, item := range items {
		entry := model.WishlistEntry{WishlistItem: item}
		if _, err := primitive.ObjectIDFromHex(item.ProductID); err == nil {
			p, err := uc.products.FindByID(ctx, item.ProductID)
			if err != nil {
				return nil, err
			}
			entry.Product = p
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (uc *wishlistUseCase) UpdateNote(ctx context.Context, email, id string, input *dto.UpdateNoteInput) (*model.WishlistItem, error) {
	item, err := uc.repo.UpdateNote(ctx, email, id, input.Note)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, httperr.Wrap(httperr.ErrNotFound, "wishlist entry not found")
	}
	return item, nil
}

func (uc *wishlistUseCase) DeleteByID(ctx context.Context, email, id string) error {
	deleted, err := uc.repo.DeleteByID(ctx, email, id)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.Wrap(httperr.ErrNotFound, "wishlist entry not found")
	}
	uc.logger.Debug("wishlist entry removed", zap.String("email", email), zap.String("id", id))
	return nil
}

func (uc *wishlistUseCase) DeleteByProduct(ctx context.Context, email, productRef string) error {
	deleted, err := uc.repo.DeleteByProduct(ctx, email, dto.NormalizeProductRef(productRef))
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.Wrap(httperr.ErrNotFound, "wishlist entry not found")
	}
	return nil
}
