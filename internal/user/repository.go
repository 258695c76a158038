package user

import (
	"context"

	"github.com/marketgo/storefront-service/internal/model"
)

type Repository interface {
	// Sync upserts by email: creates the user with the default role when
	// absent, returns the stored document untouched when present.
	Sync(ctx context.Context, email string) (*model.User, error)

	// GetByEmail returns nil, nil when no user exists for the email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
