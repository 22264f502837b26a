package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/lunchmicro/lunchsvc/internal/clock"
	"github.com/lunchmicro/lunchsvc/internal/config"
	"github.com/lunchmicro/lunchsvc/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewLunchFacade,
		newHTTPServer,
		newStatusSweeper,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type sweeperParams struct {
	fx.In

	Facade *LunchFacade
	Clock  clock.Clock
	Config *config.Config
	Logger *slog.Logger
}

func newStatusSweeper(p sweeperParams) *worker.StatusSweeper {
	return worker.NewStatusSweeper(
		p.Facade,
		p.Clock,
		p.Config.SweepAt,
		p.Config.SweepWindow,
		p.Config.SweepPollInterval,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Sweeper    *worker.StatusSweeper
	Config     *config.Config
	AppCtx     context.Context
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting lunchsvc", slog.String("addr", p.Server.Addr))
			// the sweeper outlives the start hook, so it runs on the
			// application context rather than the hook context
			p.Sweeper.Start(p.AppCtx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Sweeper.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("lunchsvc stopped")
			return nil
		},
	})
}
