package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/lunchmicro/lunchsvc/internal/domain/model"
	"github.com/lunchmicro/lunchsvc/internal/usecase"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, req usecase.PlaceOrderRequest) (*model.Order, error)
	CancelOrder(ctx context.Context, orderID, childID uuid.UUID) error
	OrdersForChild(ctx context.Context, childID uuid.UUID) ([]model.Order, error)
	OrdersForParent(ctx context.Context, parentID uuid.UUID) ([]model.Order, error)
	OrdersForParentByStatus(ctx context.Context, parentID uuid.UUID, status model.OrderStatus) ([]model.Order, error)
}

// HealthFacade reports whether the service can reach its storage.
type HealthFacade interface {
	Healthy(ctx context.Context) error
}

// LunchFacade aggregates the full set of operations used across handlers.
type LunchFacade interface {
	OrderFacade
	HealthFacade
}
