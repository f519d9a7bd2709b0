package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/grubline/vendordash/internal/config"
	"github.com/grubline/vendordash/internal/domain/repository"
	"github.com/grubline/vendordash/internal/pkg/secrets"
)

// Module wires PostgreSQL storage and the session repository.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(func(s *Storage) repository.SessionRepository { return s.Sessions() }),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Cipher secrets.Cipher
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Cipher, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
