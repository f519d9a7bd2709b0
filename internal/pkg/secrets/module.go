package secrets

import (
	"go.uber.org/fx"

	"github.com/grubline/vendordash/internal/config"
)

// Module provides the token cipher via fx.
var Module = fx.Provide(newCipher)

type cipherParams struct {
	fx.In

	Config *config.Config
}

func newCipher(p cipherParams) (Cipher, error) {
	return NewAESGCMCipher(p.Config.SessionSecret)
}
