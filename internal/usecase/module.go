package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/lunchmicro/lunchsvc/internal/clock"
	"github.com/lunchmicro/lunchsvc/internal/config"
	"github.com/lunchmicro/lunchsvc/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(newLunchOrderUseCase)

type useCaseParams struct {
	fx.In

	Orders repository.OrderRepository
	Clock  clock.Clock
	Config *config.Config
	Logger *slog.Logger
}

func newLunchOrderUseCase(p useCaseParams) *LunchOrderUseCase {
	return NewLunchOrderUseCase(p.Orders, p.Clock, p.Config.UnitPrice, p.Config.CompletedVisibleFor, p.Logger)
}
