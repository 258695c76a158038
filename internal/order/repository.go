package order

import (
	"context"
	"time"

	"github.com/marketgo/storefront-service/internal/model"
)

// StatusCount is one row of the status distribution aggregation.
type StatusCount struct {
	Status string `bson:"_id"`
	Count  int64  `bson:"count"`
}

// MonthlyRow is one row of the monthly aggregation, keyed "YYYY-MM".
type MonthlyRow struct {
	Month   string  `bson:"_id"`
	Count   int64   `bson:"count"`
	Revenue float64 `bson:"revenue"`
}

type Repository interface {
	Create(ctx context.Context, o *model.Order) error
	FindAll(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, id string) (*model.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)

	// Aggregations backing the statistics endpoint.
	CountAndRevenue(ctx context.Context) (int64, float64, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	MonthlyBreakdown(ctx context.Context, since time.Time) ([]MonthlyRow, error)
}
