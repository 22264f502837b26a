package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/lunchmicro/lunchsvc/internal/domain/model"
	"github.com/lunchmicro/lunchsvc/internal/usecase"
)

// HealthChecker reports storage connectivity.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// LunchFacade is the single entry point handlers and the sweeper use.
type LunchFacade struct {
	orders *usecase.LunchOrderUseCase
	health HealthChecker
}

// NewLunchFacade constructs LunchFacade.
func NewLunchFacade(orders *usecase.LunchOrderUseCase, health HealthChecker) *LunchFacade {
	return &LunchFacade{orders: orders, health: health}
}

func (f *LunchFacade) PlaceOrder(ctx context.Context, req usecase.PlaceOrderRequest) (*model.Order, error) {
	return f.orders.Place(ctx, req)
}

func (f *LunchFacade) CancelOrder(ctx context.Context, orderID, childID uuid.UUID) error {
	return f.orders.Cancel(ctx, orderID, childID)
}

func (f *LunchFacade) OrdersForChild(ctx context.Context, childID uuid.UUID) ([]model.Order, error) {
	return f.orders.OrdersForChild(ctx, childID)
}

func (f *LunchFacade) OrdersForParent(ctx context.Context, parentID uuid.UUID) ([]model.Order, error) {
	return f.orders.OrdersForParent(ctx, parentID)
}

func (f *LunchFacade) OrdersForParentByStatus(ctx context.Context, parentID uuid.UUID, status model.OrderStatus) ([]model.Order, error) {
	return f.orders.OrdersForParentByStatus(ctx, parentID, status)
}

func (f *LunchFacade) CompleteDueOrders(ctx context.Context) (int, error) {
	return f.orders.CompleteDueOrders(ctx)
}

func (f *LunchFacade) Healthy(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
