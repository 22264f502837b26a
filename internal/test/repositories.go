package test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/lunchmicro/lunchsvc/internal/domain/errors"
	"github.com/lunchmicro/lunchsvc/internal/domain/model"
)

// StatusUpdateCall stores information about UpdateStatus invocations.
type StatusUpdateCall struct {
	OrderID     uuid.UUID
	Status      model.OrderStatus
	CompletedOn *time.Time
}

// OrderRepositoryStub keeps orders in memory and lets tests override any
// operation. The default behaviour mimics the real store: updates are
// applied to the held records so that a follow-up read observes them.
type OrderRepositoryStub struct {
	CreateFn             func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn            func(context.Context, uuid.UUID) (*model.Order, error)
	ExistsActiveForDayFn func(context.Context, uuid.UUID, string) (bool, error)
	ListAllFn            func(context.Context) ([]model.Order, error)
	UpdateStatusFn       func(context.Context, uuid.UUID, model.OrderStatus, *time.Time) error

	mu          sync.Mutex
	Orders      map[uuid.UUID]*model.Order
	UpdateCalls []StatusUpdateCall
}

// NewOrderRepositoryStub constructs a stub with initialized storage.
func NewOrderRepositoryStub(orders ...*model.Order) *OrderRepositoryStub {
	s := &OrderRepositoryStub{Orders: make(map[uuid.UUID]*model.Order)}
	for _, o := range orders {
		s.Orders[o.ID] = o
	}
	return s
}

// Create stores the order unless an override is configured.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *order
	s.Orders[order.ID] = &stored
	return order, nil
}

// GetByID returns a copy of the stored order or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.Orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ExistsActiveForDay scans stored orders for a non-cancelled day match.
func (s *OrderRepositoryStub) ExistsActiveForDay(ctx context.Context, childID uuid.UUID, orderDay string) (bool, error) {
	if s.ExistsActiveForDayFn != nil {
		return s.ExistsActiveForDayFn(ctx, childID, orderDay)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.Orders {
		if o.ChildID == childID && o.OrderDay == orderDay && o.Status != model.OrderStatusCancelled {
			return true, nil
		}
	}
	return false, nil
}

// ListAll returns copies of every stored order.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Order, 0, len(s.Orders))
	for _, o := range s.Orders {
		result = append(result, *o)
	}
	return result, nil
}

// ListRelevantByChild applies the display filter the real store applies.
func (s *OrderRepositoryStub) ListRelevantByChild(ctx context.Context, childID uuid.UUID, completedAfter time.Time) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Order
	for _, o := range s.Orders {
		if o.ChildID == childID && relevant(o, completedAfter) {
			result = append(result, *o)
		}
	}
	return result, nil
}

// ListRelevantByParent mirrors ListRelevantByChild for a parent.
func (s *OrderRepositoryStub) ListRelevantByParent(ctx context.Context, parentID uuid.UUID, completedAfter time.Time) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Order
	for _, o := range s.Orders {
		if o.ParentID == parentID && relevant(o, completedAfter) {
			result = append(result, *o)
		}
	}
	return result, nil
}

// ListByParentAndStatus filters stored orders by parent and status.
func (s *OrderRepositoryStub) ListByParentAndStatus(ctx context.Context, parentID uuid.UUID, status model.OrderStatus) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Order
	for _, o := range s.Orders {
		if o.ParentID == parentID && o.Status == status {
			result = append(result, *o)
		}
	}
	return result, nil
}

// UpdateStatus records the call and applies the transition to the held
// record, so repeated sweeps observe the new status.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID uuid.UUID, status model.OrderStatus, completedOn *time.Time) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status, completedOn)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UpdateCalls = append(s.UpdateCalls, StatusUpdateCall{OrderID: orderID, Status: status, CompletedOn: completedOn})
	o, ok := s.Orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	o.Status = status
	if completedOn != nil {
		t := *completedOn
		o.CompletedOn = &t
	}
	o.UpdatedOn = time.Now()
	return nil
}

// Updates returns a snapshot of recorded UpdateStatus calls.
func (s *OrderRepositoryStub) Updates() []StatusUpdateCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]StatusUpdateCall(nil), s.UpdateCalls...)
}

func relevant(o *model.Order, completedAfter time.Time) bool {
	if o.Status == model.OrderStatusCancelled {
		return false
	}
	if o.Status == model.OrderStatusCompleted && o.CompletedOn != nil && !o.CompletedOn.After(completedAfter) {
		return false
	}
	return true
}
