package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/marketgo/storefront-service/internal/model"
	"github.com/marketgo/storefront-service/pkg/httperr"
)

type fakeRepo struct {
	byEmail map[string]*model.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: map[string]*model.User{}}
}

func (r *fakeRepo) Sync(_ context.Context, email string) (*model.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	u := &model.User{ID: primitive.NewObjectID(), Email: email, Role: model.RoleUser}
	r.byEmail[email] = u
	return u, nil
}

func (r *fakeRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	return r.byEmail[email], nil
}

func TestSync(t *testing.T) {
	ctx := context.Background()

	t.Run("twice with same email yields one document and same role", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewUserUseCase(repo, zap.NewNop())

		first, err := uc.Sync(ctx, "a@example.com")
		require.NoError(t, err)
		require.Equal(t, model.RoleUser, first.Role)

		second, err := uc.Sync(ctx, "a@example.com")
		require.NoError(t, err)
		require.Equal(t, first.ID, second.ID)
		require.Equal(t, first.Role, second.Role)
		require.Len(t, repo.byEmail, 1)
	})

	t.Run("existing admin keeps their role", func(t *testing.T) {
		repo := newFakeRepo()
		repo.byEmail["boss@example.com"] = &model.User{
			ID:    primitive.NewObjectID(),
			Email: "boss@example.com",
			Role:  model.RoleAdmin,
		}
		uc := NewUserUseCase(repo, zap.NewNop())

		u, err := uc.Sync(ctx, "boss@example.com")
		require.NoError(t, err)
		require.Equal(t, model.RoleAdmin, u.Role)
	})

	t.Run("empty principal -> unauthenticated", func(t *testing.T) {
		uc := NewUserUseCase(newFakeRepo(), zap.NewNop())
		_, err := uc.Sync(ctx, "")
		require.ErrorIs(t, err, httperr.ErrUnauthenticated)
	})
}
