package bootstrap

import (
	"github.com/kevinmatta11/pizzetna-sub000/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.NotifyModule,
	components.HandlerModule,
)
