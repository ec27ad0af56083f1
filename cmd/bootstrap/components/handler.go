package components

import (
	"github.com/kevinmatta11/pizzetna-sub000/internal/handler"
	"github.com/kevinmatta11/pizzetna-sub000/internal/handler/api"
	"github.com/kevinmatta11/pizzetna-sub000/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewMenuHandler,
		api.NewCheckoutHandler,
		api.NewLoyaltyHandler,
		api.NewOrderHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
