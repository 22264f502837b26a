package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lunchmicro/lunchsvc/internal/clock"
	domainErrors "github.com/lunchmicro/lunchsvc/internal/domain/errors"
	"github.com/lunchmicro/lunchsvc/internal/domain/model"
	"github.com/lunchmicro/lunchsvc/internal/domain/repository"
)

// PlaceOrderRequest carries a creation request into the use case.
type PlaceOrderRequest struct {
	ParentID uuid.UUID
	ChildID  uuid.UUID
	Meal     model.Meal
	Quantity int
	OrderDay string
}

// LunchOrderUseCase encapsulates the order lifecycle: creation rules,
// the cancellation guard, the completion sweep pass, and read filters.
type LunchOrderUseCase struct {
	orders              repository.OrderRepository
	clock               clock.Clock
	unitPrice           decimal.Decimal
	completedVisibleFor time.Duration
	logger              *slog.Logger
}

// NewLunchOrderUseCase constructs LunchOrderUseCase.
func NewLunchOrderUseCase(
	orders repository.OrderRepository,
	clk clock.Clock,
	unitPrice decimal.Decimal,
	completedVisibleFor time.Duration,
	logger *slog.Logger,
) *LunchOrderUseCase {
	return &LunchOrderUseCase{
		orders:              orders,
		clock:               clk,
		unitPrice:           unitPrice,
		completedVisibleFor: completedVisibleFor,
		logger:              logger,
	}
}

// Place validates a creation request and persists the order as PAID.
// Rules are applied in order and the first failure wins; nothing is
// persisted on failure.
func (u *LunchOrderUseCase) Place(ctx context.Context, req PlaceOrderRequest) (*model.Order, error) {
	if req.Quantity < 1 {
		return nil, domainErrors.ErrInvalidQuantity
	}
	if !model.ValidMeal(req.Meal) {
		return nil, domainErrors.ErrInvalidMeal
	}

	day, err := model.ParseOrderDay(req.OrderDay)
	if err != nil || !model.BusinessDay(day) {
		return nil, domainErrors.ErrInvalidOrderDay
	}

	now := u.clock.Now()
	if day == now.Weekday() && timeOfDay(now) >= orderCutoff {
		return nil, domainErrors.ErrOrderCutoffPassed
	}

	exists, err := u.orders.ExistsActiveForDay(ctx, req.ChildID, model.OrderDayName(day))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domainErrors.ErrDuplicateOrder
	}

	order := &model.Order{
		ID:        uuid.New(),
		ParentID:  req.ParentID,
		ChildID:   req.ChildID,
		Meal:      req.Meal,
		Quantity:  req.Quantity,
		OrderDay:  model.OrderDayName(day),
		UnitPrice: u.unitPrice,
		Total:     u.unitPrice.Mul(decimal.NewFromInt(int64(req.Quantity))),
		Status:    model.OrderStatusPaid,
		CreatedOn: now,
		UpdatedOn: now,
	}

	saved, err := u.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	u.logger.Info("order placed",
		slog.String("order_id", saved.ID.String()),
		slog.String("child_id", saved.ChildID.String()),
		slog.String("order_day", saved.OrderDay),
		slog.String("total", saved.Total.String()),
	)
	return saved, nil
}

// Cancel decides whether the order may be cancelled right now. A fresh
// read precedes every evaluation because the sweeper may have moved the
// record since the caller last saw it, and because time itself changes
// the valid decision between load and write.
func (u *LunchOrderUseCase) Cancel(ctx context.Context, orderID, childID uuid.UUID) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	if order.ChildID != childID {
		return domainErrors.ErrNotOwnedByChild
	}
	if order.Status == model.OrderStatusCompleted {
		return domainErrors.ErrOrderCompleted
	}
	if order.Status != model.OrderStatusPaid {
		return domainErrors.ErrOrderNotPaid
	}

	day, err := order.Weekday()
	if err != nil {
		return err
	}

	now := u.clock.Now()
	if day == now.Weekday() {
		switch tod := timeOfDay(now); {
		case tod >= completionTime:
			// The order is logically finished even though the sweep may
			// not have run yet. The completion write is independent of
			// the cancellation outcome and its failure never masks the
			// rejection the caller must see.
			u.forceComplete(ctx, order.ID, now)
			return domainErrors.ErrOrderCompleted
		case tod >= cancelLock:
			return domainErrors.ErrCancelTooLate
		}
	}

	if err := u.orders.UpdateStatus(ctx, order.ID, model.OrderStatusCancelled, nil); err != nil {
		return err
	}

	u.logger.Info("order cancelled",
		slog.String("order_id", order.ID.String()),
		slog.String("child_id", childID.String()),
	)
	return nil
}

func (u *LunchOrderUseCase) forceComplete(ctx context.Context, orderID uuid.UUID, now time.Time) {
	completedOn := now
	if err := u.orders.UpdateStatus(ctx, orderID, model.OrderStatusCompleted, &completedOn); err != nil {
		u.logger.Error("force complete failed",
			slog.String("order_id", orderID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// OrdersForChild returns the child's orders minus cancelled ones and
// completed ones that left the visibility window.
func (u *LunchOrderUseCase) OrdersForChild(ctx context.Context, childID uuid.UUID) ([]model.Order, error) {
	completedAfter := u.clock.Now().Add(-u.completedVisibleFor)
	return u.orders.ListRelevantByChild(ctx, childID, completedAfter)
}

// OrdersForParent applies the same display filter across all of the
// parent's children.
func (u *LunchOrderUseCase) OrdersForParent(ctx context.Context, parentID uuid.UUID) ([]model.Order, error) {
	completedAfter := u.clock.Now().Add(-u.completedVisibleFor)
	return u.orders.ListRelevantByParent(ctx, parentID, completedAfter)
}

// OrdersForParentByStatus returns the parent's orders in a single status,
// unfiltered by the visibility window.
func (u *LunchOrderUseCase) OrdersForParentByStatus(ctx context.Context, parentID uuid.UUID, status model.OrderStatus) ([]model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, domainErrors.ErrInvalidStatus
	}
	return u.orders.ListByParentAndStatus(ctx, parentID, status)
}
