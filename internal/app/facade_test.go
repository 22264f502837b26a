package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/lunchmicro/lunchsvc/internal/domain/errors"
	"github.com/lunchmicro/lunchsvc/internal/domain/model"
	testhelpers "github.com/lunchmicro/lunchsvc/internal/test"
	"github.com/lunchmicro/lunchsvc/internal/usecase"
)

var facadeTestDay = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

func newFacade(orders ...*model.Order) (*LunchFacade, *testhelpers.OrderRepositoryStub, *testhelpers.FakeClock) {
	repo := testhelpers.NewOrderRepositoryStub(orders...)
	clk := testhelpers.NewFakeClock(testhelpers.At(facadeTestDay, 9, 0, 0))
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	uc := usecase.NewLunchOrderUseCase(repo, clk, decimal.RequireFromString("2.50"), 7*time.Hour, logger)
	facade := NewLunchFacade(uc, testhelpers.HealthCheckerStub{})
	return facade, repo, clk
}

func TestLunchFacadeOrderLifecycle(t *testing.T) {
	facade, repo, _ := newFacade()

	req := usecase.PlaceOrderRequest{
		ParentID: uuid.New(),
		ChildID:  uuid.New(),
		Meal:     model.MealBeanWithSalad,
		Quantity: 1,
		OrderDay: "WEDNESDAY",
	}

	order, err := facade.PlaceOrder(context.Background(), req)
	if err != nil {
		t.Fatalf("place returned error: %v", err)
	}
	if order.Status != model.OrderStatusPaid {
		t.Fatalf("unexpected status %s", order.Status)
	}

	listed, err := facade.OrdersForChild(context.Background(), req.ChildID)
	if err != nil || len(listed) != 1 {
		t.Fatalf("unexpected child listing: %d err=%v", len(listed), err)
	}

	listed, err = facade.OrdersForParent(context.Background(), req.ParentID)
	if err != nil || len(listed) != 1 {
		t.Fatalf("unexpected parent listing: %d err=%v", len(listed), err)
	}

	listed, err = facade.OrdersForParentByStatus(context.Background(), req.ParentID, model.OrderStatusPaid)
	if err != nil || len(listed) != 1 {
		t.Fatalf("unexpected status listing: %d err=%v", len(listed), err)
	}

	if err := facade.CancelOrder(context.Background(), order.ID, req.ChildID); err != nil {
		t.Fatalf("cancel returned error: %v", err)
	}
	if repo.Orders[order.ID].Status != model.OrderStatusCancelled {
		t.Fatal("expected cancelled order in storage")
	}
}

func TestLunchFacadeCompleteDueOrders(t *testing.T) {
	due := &model.Order{
		ID:       uuid.New(),
		ChildID:  uuid.New(),
		OrderDay: "MONDAY",
		Status:   model.OrderStatusPaid,
	}
	facade, repo, clk := newFacade(due)
	clk.Set(testhelpers.At(facadeTestDay, 13, 0, 0))

	count, err := facade.CompleteDueOrders(context.Background())
	if err != nil || count != 1 {
		t.Fatalf("unexpected sweep result: count=%d err=%v", count, err)
	}
	if repo.Orders[due.ID].Status != model.OrderStatusCompleted {
		t.Fatal("expected completed order in storage")
	}
}

func TestLunchFacadeHealthy(t *testing.T) {
	facade, _, _ := newFacade()
	if err := facade.Healthy(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hErr := errors.New("db down")
	broken := NewLunchFacade(nil, testhelpers.HealthCheckerStub{Err: hErr})
	if err := broken.Healthy(context.Background()); !errors.Is(err, hErr) {
		t.Fatalf("expected health error, got %v", err)
	}
}

func TestLunchFacadeSurfacesDomainErrors(t *testing.T) {
	facade, _, _ := newFacade()

	if err := facade.CancelOrder(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := facade.OrdersForParentByStatus(context.Background(), uuid.New(), "BOGUS"); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}
}
