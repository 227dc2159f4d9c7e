package components

import (
	"fablab-scheduler/internal/pkg/clock"
	"fablab-scheduler/internal/pkg/config"
	"fablab-scheduler/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		usecase.NewAuthUseCase,
		usecase.NewReservationUseCase,
		usecase.NewMachineUseCase,
		usecase.NewAvailabilityUseCase,
		NewSubscriptionUseCase,
	),
)

func NewSubscriptionUseCase(
	subscriptionRepo usecase.SubscriptionRepository,
	pool *pgxpool.Pool,
	clk clock.Clock,
	cfg config.Config,
) usecase.SubscriptionUseCase {
	return usecase.NewSubscriptionUseCase(subscriptionRepo, pool, clk, cfg.Feed.SubscriptionValidity)
}
