package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/marketgo/storefront-service/internal/model"
	"github.com/marketgo/storefront-service/internal/order"
	"github.com/marketgo/storefront-service/internal/order/dto"
	"github.com/marketgo/storefront-service/pkg/httperr"
)

// monthsBack is the size of the trailing window in the monthly breakdown,
// current month included.
const monthsBack = 6

type orderUseCase struct {
	repo   order.Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewOrderUseCase(repo order.Repository, log *zap.Logger) order.UseCase {
	return &orderUseCase{repo: repo, logger: log, now: time.Now}
}

func (uc *orderUseCase) CreateOrder(ctx context.Context, email string, input *dto.CreateOrderInput) (*model.Order, error) {
	if email == "" {
		return nil, httperr.Wrap(httperr.ErrUnauthenticated, "missing principal")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := uc.now()
	o := &model.Order{
		Email:     email,
		Items:     input.Items,
		Total:     input.Total,
		Status:    model.StatusPending,
		Address:   input.Address,
		Phone:     input.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	uc.logger.Info("order created",
		zap.String("id", o.ID.Hex()),
		zap.String("email", o.Email),
		zap.Float64("total", o.Total),
	)
	return o, nil
}

func (uc *orderUseCase) ListOrders(ctx context.Context) ([]model.Order, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *orderUseCase) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, httperr.Wrap(httperr.ErrNotFound, "order not found")
	}
	return o, nil
}

func (uc *orderUseCase) UpdateStatus(ctx context.Context, id, status string) (*model.Order, error) {
	// Strict enum: anything outside the six statuses would silently fall
	// out of the statistics buckets, so it is rejected here.
	if !model.ValidOrderStatus(status) {
		return nil, httperr.Wrapf(httperr.ErrInvalidInput, "invalid order status %q", status)
	}

	matched, err := uc.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, httperr.Wrap(httperr.ErrNotFound, "order not found")
	}
	return uc.repo.FindByID(ctx, id)
}

func (uc *orderUseCase) DeleteOrder(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.Wrap(httperr.ErrNotFound, "order not found")
	}
	return nil
}

func (uc *orderUseCase) Stats(ctx context.Context) (*model.OrderStats, error) {
	total, revenue, err := uc.repo.CountAndRevenue(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := uc.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	// All six buckets are always present, missing ones report zero.
	distribution := make(map[string]int64, len(model.OrderStatuses))
	for _, s := range model.OrderStatuses {
		distribution[s] = 0
	}
	for _, row := range byStatus {
		if _, ok := distribution[row.Status]; ok {
			distribution[row.Status] = row.Count
		}
	}

	since := monthFloor(uc.now()).AddDate(0, -(monthsBack - 1), 0)
	rows, err := uc.repo.MonthlyBreakdown(ctx, since)
	if err != nil {
		return nil, err
	}

	monthly := make([]model.MonthlyStat, 0, len(rows))
	for _, row := range rows {
		monthly = append(monthly, model.MonthlyStat{
			Month:   row.Month,
			Count:   row.Count,
			Revenue: row.Revenue,
		})
	}

	return &model.OrderStats{
		TotalOrders:  total,
		TotalRevenue: revenue,
		ByStatus:     distribution,
		Monthly:      monthly,
	}, nil
}

func monthFloor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
