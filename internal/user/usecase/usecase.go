package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/marketgo/storefront-service/internal/model"
	"github.com/marketgo/storefront-service/internal/user"
	"github.com/marketgo/storefront-service/pkg/httperr"
)

type userUseCase struct {
	repo   user.Repository
	logger *zap.Logger
}

func NewUserUseCase(repo user.Repository, log *zap.Logger) user.UseCase {
	return &userUseCase{repo: repo, logger: log}
}

func (uc *userUseCase) Sync(ctx context.Context, email string) (*model.User, error) {
	if email == "" {
		return nil, httperr.Wrap(httperr.ErrUnauthenticated, "missing principal")
	}
	u, err := uc.repo.Sync(ctx, email)
	if err != nil {
		return nil, err
	}
	uc.logger.Debug("user synced", zap.String("email", u.Email), zap.String("role", u.Role))
	return u, nil
}
