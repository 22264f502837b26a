package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lunchmicro/lunchsvc/internal/domain/model"
)

// OrderRepository describes persistence operations with lunch orders.
// The store serializes writes per record; callers rely on transition
// idempotence rather than locking when two writers race.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	ExistsActiveForDay(ctx context.Context, childID uuid.UUID, orderDay string) (bool, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	ListRelevantByChild(ctx context.Context, childID uuid.UUID, completedAfter time.Time) ([]model.Order, error)
	ListRelevantByParent(ctx context.Context, parentID uuid.UUID, completedAfter time.Time) ([]model.Order, error)
	ListByParentAndStatus(ctx context.Context, parentID uuid.UUID, status model.OrderStatus) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status model.OrderStatus, completedOn *time.Time) error
}
