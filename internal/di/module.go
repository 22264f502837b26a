package di

import (
	"go.uber.org/fx"

	"github.com/lunchmicro/lunchsvc/internal/app"
	"github.com/lunchmicro/lunchsvc/internal/clock"
	"github.com/lunchmicro/lunchsvc/internal/config"
	"github.com/lunchmicro/lunchsvc/internal/logger"
	"github.com/lunchmicro/lunchsvc/internal/server/http/handlers"
	"github.com/lunchmicro/lunchsvc/internal/server/http/router"
	"github.com/lunchmicro/lunchsvc/internal/storage/postgres"
	"github.com/lunchmicro/lunchsvc/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		clock.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.LunchFacade) handlers.LunchFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
