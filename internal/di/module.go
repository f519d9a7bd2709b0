package di

import (
	"go.uber.org/fx"

	"github.com/grubline/vendordash/internal/adapter/vendorapi"
	"github.com/grubline/vendordash/internal/app"
	"github.com/grubline/vendordash/internal/config"
	"github.com/grubline/vendordash/internal/logger"
	"github.com/grubline/vendordash/internal/pkg/secrets"
	"github.com/grubline/vendordash/internal/server/http/handlers"
	"github.com/grubline/vendordash/internal/server/http/middleware"
	"github.com/grubline/vendordash/internal/server/http/router"
	"github.com/grubline/vendordash/internal/storage/postgres"
	"github.com/grubline/vendordash/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		secrets.Module,
		postgres.Module,
		vendorapi.Module,
		usecase.Module,
		fx.Provide(
			func(f *app.DashboardFacade) handlers.DashboardFacade { return f },
			func(f *app.DashboardFacade) middleware.SessionResolver { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
