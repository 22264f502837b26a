package usecase

import (
	"context"
	"log/slog"

	"github.com/lunchmicro/lunchsvc/internal/domain/model"
)

// CompleteDueOrders transitions every PAID order whose day matches today
// to COMPLETED, stamping the whole batch with one shared completion
// instant. The transition is idempotent: once a record leaves PAID it no
// longer matches the filter, so overlapping sweep triggers and the
// cancellation guard's forced completion can race harmlessly.
//
// Records with an unparseable order day are logged and skipped; one
// malformed row never blocks the rest of the batch. Returns the number
// of orders completed.
func (u *LunchOrderUseCase) CompleteDueOrders(ctx context.Context) (int, error) {
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	now := u.clock.Now()
	today := now.Weekday()

	completed := 0
	for i := range orders {
		order := &orders[i]
		if order.Status != model.OrderStatusPaid {
			continue
		}

		day, err := order.Weekday()
		if err != nil {
			u.logger.Warn("skipping order with invalid day",
				slog.String("order_id", order.ID.String()),
				slog.String("order_day", order.OrderDay),
			)
			continue
		}
		if day != today {
			continue
		}

		completedOn := now
		if err := u.orders.UpdateStatus(ctx, order.ID, model.OrderStatusCompleted, &completedOn); err != nil {
			u.logger.Error("complete order failed",
				slog.String("order_id", order.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		completed++
	}

	return completed, nil
}
