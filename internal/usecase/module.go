package usecase

import (
	"go.uber.org/fx"

	"github.com/grubline/vendordash/internal/adapter/vendorapi"
	"github.com/grubline/vendordash/internal/config"
	"github.com/grubline/vendordash/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAuthUseCase,
	NewCatalogUseCase,
	NewOrdersUseCase,
)

type authParams struct {
	fx.In

	API      vendorapi.Client
	Sessions repository.SessionRepository
	Config   *config.Config
}

func newAuthUseCase(p authParams) *AuthUseCase {
	return NewAuthUseCase(p.API, p.Sessions, p.Config.SessionTTL)
}
