package bootstrap

import (
	"github.com/kevinmatta11/pizzetna-sub000/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		func(cfg config.Config) config.CheckoutConfig { return cfg.Checkout },
	),
)
