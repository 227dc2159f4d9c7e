package components

import (
	repo_impl "fablab-scheduler/internal/infra/repository"
	"fablab-scheduler/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(usecase.ReservationRepository)),
			fx.As(new(usecase.ActiveReservationReader)),
		),
		fx.Annotate(
			repo_impl.NewMachineRepository,
			fx.As(new(usecase.MachineRepository)),
		),
		fx.Annotate(
			repo_impl.NewSubscriptionRepository,
			fx.As(new(usecase.SubscriptionRepository)),
		),
	),
)
