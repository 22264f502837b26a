package test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lunchmicro/lunchsvc/internal/domain/model"
	"github.com/lunchmicro/lunchsvc/internal/usecase"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn          func(context.Context, usecase.PlaceOrderRequest) (*model.Order, error)
	CancelFn         func(context.Context, uuid.UUID, uuid.UUID) error
	ForChildFn       func(context.Context, uuid.UUID) ([]model.Order, error)
	ForParentFn      func(context.Context, uuid.UUID) ([]model.Order, error)
	ByStatusFn       func(context.Context, uuid.UUID, model.OrderStatus) ([]model.Order, error)
	HealthyFn        func(context.Context) error
	DefaultOrderDays []model.Order
}

// PlaceOrder delegates to the override or echoes the request as a PAID order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, req usecase.PlaceOrderRequest) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, req)
	}
	return &model.Order{
		ID:       uuid.New(),
		ParentID: req.ParentID,
		ChildID:  req.ChildID,
		Meal:     req.Meal,
		Quantity: req.Quantity,
		OrderDay: req.OrderDay,
		Status:   model.OrderStatusPaid,
	}, nil
}

// CancelOrder delegates to the override or succeeds.
func (s OrderFacadeStub) CancelOrder(ctx context.Context, orderID, childID uuid.UUID) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID, childID)
	}
	return nil
}

// OrdersForChild returns configured orders.
func (s OrderFacadeStub) OrdersForChild(ctx context.Context, childID uuid.UUID) ([]model.Order, error) {
	if s.ForChildFn != nil {
		return s.ForChildFn(ctx, childID)
	}
	return s.DefaultOrderDays, nil
}

// OrdersForParent returns configured orders.
func (s OrderFacadeStub) OrdersForParent(ctx context.Context, parentID uuid.UUID) ([]model.Order, error) {
	if s.ForParentFn != nil {
		return s.ForParentFn(ctx, parentID)
	}
	return s.DefaultOrderDays, nil
}

// OrdersForParentByStatus returns configured orders for one status.
func (s OrderFacadeStub) OrdersForParentByStatus(ctx context.Context, parentID uuid.UUID, status model.OrderStatus) ([]model.Order, error) {
	if s.ByStatusFn != nil {
		return s.ByStatusFn(ctx, parentID, status)
	}
	return s.DefaultOrderDays, nil
}

// Healthy reports configured health.
func (s OrderFacadeStub) Healthy(ctx context.Context) error {
	if s.HealthyFn != nil {
		return s.HealthyFn(ctx)
	}
	return nil
}

// SweepFacadeStub mimics the sweeper's view of the application facade.
type SweepFacadeStub struct {
	CompleteFn func(context.Context) (int, error)

	mu    sync.Mutex
	calls int
}

// CompleteDueOrders counts invocations and delegates to the override.
func (s *SweepFacadeStub) CompleteDueOrders(ctx context.Context) (int, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.CompleteFn != nil {
		return s.CompleteFn(ctx)
	}
	return 0, nil
}

// Calls returns how many sweeps ran.
func (s *SweepFacadeStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// HealthCheckerStub reports configured storage health.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthCheckerStub) HealthCheck(ctx context.Context) error {
	return s.Err
}
