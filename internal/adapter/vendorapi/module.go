package vendorapi

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/grubline/vendordash/internal/config"
)

// Module exposes the vendor API client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.VendorAPIAddress, p.Logger)
}
