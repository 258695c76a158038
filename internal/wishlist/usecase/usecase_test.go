package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/marketgo/storefront-service/internal/model"
	productdto "github.com/marketgo/storefront-service/internal/product/dto"
	"github.com/marketgo/storefront-service/internal/wishlist/dto"
	"github.com/marketgo/storefront-service/pkg/httperr"
)

type fakeWishlistRepo struct {
	items []*model.WishlistItem
}

func (r *fakeWishlistRepo) Insert(_ context.Context, item *model.WishlistItem) error {
	for _, existing := range r.items {
		if existing.Email == item.Email && existing.ProductID == item.ProductID {
			return httperr.Wrap(httperr.ErrDuplicate, "product already in wishlist")
		}
	}
	item.ID = primitive.NewObjectID()
	r.items = append(r.items, item)
	return nil
}

func (r *fakeWishlistRepo) FindByOwnerAndProduct(_ context.Context, email, productID string) (*model.WishlistItem, error) {
	for _, item := range r.items {
		if item.Email == email && item.ProductID == productID {
			return item, nil
		}
	}
	return nil, nil
}

func (r *fakeWishlistRepo) FindByOwner(_ context.Context, email string) ([]model.WishlistItem, error) {
	out := []model.WishlistItem{}
	for _, item := range r.items {
		if item.Email == email {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeWishlistRepo) UpdateNote(_ context.Context, email, id, note string) (*model.WishlistItem, error) {
	for _, item := range r.items {
		if item.Email == email && item.ID.Hex() == id {
			item.Note = note
			item.UpdatedAt = time.Now()
			return item, nil
		}
	}
	return nil, nil
}

func (r *fakeWishlistRepo) DeleteByID(_ context.Context, email, id string) (bool, error) {
	for i, item := range r.items {
		if item.Email == email && item.ID.Hex() == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeWishlistRepo) DeleteByProduct(_ context.Context, email, productID string) (bool, error) {
	for i, item := range r.items {
		if item.Email == email && item.ProductID == productID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeProductRepo struct {
	byID map[string]*model.Product
}

func (r *fakeProductRepo) Create(_ context.Context, p *model.Product) error { return nil }
func (r *fakeProductRepo) FindByID(_ context.Context, id string) (*model.Product, error) {
	return r.byID[id], nil
}
func (r *fakeProductRepo) FindAll(_ context.Context, _ *productdto.ProductFilters) ([]model.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Update(_ context.Context, _ string, _ map[string]any) (bool, error) {
	return false, nil
}
func (r *fakeProductRepo) Delete(_ context.Context, _ string) (bool, error) { return false, nil }

func TestAdd(t *testing.T) {
	ctx := context.Background()
	repo := &fakeWishlistRepo{}
	uc := NewWishlistUseCase(repo, &fakeProductRepo{}, zap.NewNop())

	productID := primitive.NewObjectID().Hex()

	t.Run("first add succeeds with empty note", func(t *testing.T) {
		item, err := uc.Add(ctx, "a@example.com", &dto.AddInput{ProductID: productID})
		require.NoError(t, err)
		require.Equal(t, productID, item.ProductID)
		require.Empty(t, item.Note)
		require.False(t, item.CreatedAt.IsZero())
	})

	t.Run("second add of same pair -> duplicate", func(t *testing.T) {
		_, err := uc.Add(ctx, "a@example.com", &dto.AddInput{ProductID: productID})
		require.ErrorIs(t, err, httperr.ErrDuplicate)
	})

	t.Run("same product for another owner is fine", func(t *testing.T) {
		_, err := uc.Add(ctx, "b@example.com", &dto.AddInput{ProductID: productID})
		require.NoError(t, err)
	})

	t.Run("missing productId -> invalid input", func(t *testing.T) {
		_, err := uc.Add(ctx, "a@example.com", &dto.AddInput{})
		require.ErrorIs(t, err, httperr.ErrInvalidInput)
	})
}

func TestCheck(t *testing.T) {
	ctx := context.Background()
	repo := &fakeWishlistRepo{}
	uc := NewWishlistUseCase(repo, &fakeProductRepo{}, zap.NewNop())

	productID := primitive.NewObjectID().Hex()
	added, err := uc.Add(ctx, "a@example.com", &dto.AddInput{ProductID: productID})
	require.NoError(t, err)

	t.Run("present entry", func(t *testing.T) {
		result, err := uc.Check(ctx, "a@example.com", productID)
		require.NoError(t, err)
		require.True(t, result.Exists)
		require.Equal(t, added.ID.Hex(), result.ID)
	})

	t.Run("absent entry", func(t *testing.T) {
		result, err := uc.Check(ctx, "a@example.com", "something-else")
		require.NoError(t, err)
		require.False(t, result.Exists)
		require.Empty(t, result.ID)
	})

	t.Run("other owner does not see the entry", func(t *testing.T) {
		result, err := uc.Check(ctx, "b@example.com", productID)
		require.NoError(t, err)
		require.False(t, result.Exists)
	})
}

func TestListEnrichment(t *testing.T) {
	ctx := context.Background()

	existing := &model.Product{ID: primitive.NewObjectID(), Name: "Mug", Price: 10, Category: "kitchen"}
	products := &fakeProductRepo{byID: map[string]*model.Product{existing.ID.Hex(): existing}}

	repo := &fakeWishlistRepo{}
	uc := NewWishlistUseCase(repo, products, zap.NewNop())

	_, err := uc.Add(ctx, "a@example.com", &dto.AddInput{ProductID: existing.ID.Hex()})
	require.NoError(t, err)
	// A dangling id and an opaque code both resolve to a null product.
	_, err = uc.Add(ctx, "a@example.com", &dto.AddInput{ProductID: primitive.NewObjectID().Hex()})
	require.NoError(t, err)
	_, err = uc.Add(ctx, "a@example.com", &dto.AddInput{ProductID: "legacy-sku-42"})
	require.NoError(t, err)

	entries, err := uc.List(ctx, "a@example.com")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	byRef := map[string]*model.Product{}
	for _, e := range entries {
		byRef[e.ProductID] = e.Product
	}
	require.NotNil(t, byRef[existing.ID.Hex()])
	require.Equal(t, "Mug", byRef[existing.ID.Hex()].Name)
	require.Nil(t, byRef["legacy-sku-42"])
}

func TestUpdateNote(t *testing.T) {
	ctx := context.Background()
	repo := &fakeWishlistRepo{}
	uc := NewWishlistUseCase(repo, &fakeProductRepo{}, zap.NewNop())

	added, err := uc.Add(ctx, "a@example.com", &dto.AddInput{ProductID: primitive.NewObjectID().Hex()})
	require.NoError(t, err)

	t.Run("owner can update", func(t *testing.T) {
		item, err := uc.UpdateNote(ctx, "a@example.com", added.ID.Hex(), &dto.UpdateNoteInput{Note: "birthday gift"})
		require.NoError(t, err)
		require.Equal(t, "birthday gift", item.Note)
	})

	t.Run("other owner -> not found", func(t *testing.T) {
		_, err := uc.UpdateNote(ctx, "b@example.com", added.ID.Hex(), &dto.UpdateNoteInput{Note: "x"})
		require.ErrorIs(t, err, httperr.ErrNotFound)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := &fakeWishlistRepo{}
	uc := NewWishlistUseCase(repo, &fakeProductRepo{}, zap.NewNop())

	productID := primitive.NewObjectID().Hex()
	added, err := uc.Add(ctx, "a@example.com", &dto.AddInput{ProductID: productID})
	require.NoError(t, err)

	t.Run("entry of another owner -> not found", func(t *testing.T) {
		err := uc.DeleteByID(ctx, "b@example.com", added.ID.Hex())
		require.ErrorIs(t, err, httperr.ErrNotFound)
	})

	t.Run("delete by product ref", func(t *testing.T) {
		require.NoError(t, uc.DeleteByProduct(ctx, "a@example.com", productID))
		require.ErrorIs(t, uc.DeleteByProduct(ctx, "a@example.com", productID), httperr.ErrNotFound)
	})
}
