package components

import (
	"find-my-space/internal/domain/booking"
	"find-my-space/internal/pkg/clock"
	"find-my-space/internal/pkg/config"
	"find-my-space/internal/usecase"
	"find-my-space/internal/usecase/commands"
	"find-my-space/internal/usecase/queries"
	"find-my-space/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewHourlyCostCalculator,
		fx.As(new(booking.CostCalculator)),
	),
	fx.Annotate(
		booking.NewRandomCodeGenerator,
		fx.As(new(booking.CodeGenerator)),
	),
	func(clock clock.Clock, calc booking.CostCalculator, cfg config.Config) *booking.Services {
		return &booking.Services{
			Clock:          clock,
			CostCalculator: calc,
			Location:       cfg.Booking.Location(),
		}
	},
	func(cfg config.Config) commands.BookingPolicy {
		return commands.BookingPolicy{
			CancellationWindow: cfg.Booking.CancellationWindow,
			Currency:           cfg.Payment.Currency,
		}
	},
	func(cfg config.Config) commands.PayoutPolicy {
		return commands.PayoutPolicy{
			Enabled:    cfg.Payment.PayoutsEnabled,
			Commission: cfg.Payment.Commission,
			Currency:   cfg.Payment.Currency,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSpotCommands,
		commands.NewBookingCommands,
		commands.NewPaymentCommands,
		commands.NewPayoutCommands,
		func(uow shared.UnitOfWork, clk clock.Clock, blobs commands.BlobStore, cfg config.Config) commands.ProviderCommands {
			return commands.NewProviderCommands(uow, clk, blobs, cfg.Blob.MaxBytes)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSpotQueries,
		queries.NewBookingQueries,
		queries.NewProviderQueries,
		func(spots queries.SpotReadStore, bookings queries.BookingReadStore, services *booking.Services, cfg config.Config) queries.AvailabilityQueries {
			return queries.NewAvailabilityQueries(spots, bookings, services, cfg.Booking.CalendarDays)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
