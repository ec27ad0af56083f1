package components

import (
	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/wheel"
	"github.com/kevinmatta11/pizzetna-sub000/internal/infra/payment"
	"github.com/kevinmatta11/pizzetna-sub000/internal/pkg/clock"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/commands"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		wheel.NewDefault,
		fx.As(new(commands.PrizeDrawer)),
	),
	fx.Annotate(
		payment.NewSimulator,
		fx.As(new(commands.PaymentGateway)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCheckoutCommands,
		commands.NewLoyaltyCommands,
		commands.NewMenuCommands,
		commands.NewOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewMenuQueries,
		queries.NewOrderQueries,
		queries.NewLoyaltyQueries,
		queries.NewCheckoutQueries,
		queries.NewUserQueries,
	),
)
