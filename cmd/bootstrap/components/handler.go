package components

import (
	"fablab-scheduler/internal/handler"
	"fablab-scheduler/internal/handler/api"
	"fablab-scheduler/internal/handler/middleware"
	"fablab-scheduler/internal/pkg/config"
	"fablab-scheduler/internal/pkg/jwt"
	"fablab-scheduler/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewReservationHandler,
		NewMachineHandler,
		api.NewSubscriptionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(authUseCase usecase.AuthUseCase, jwtService *jwt.Service, cfg config.Config) *api.AuthHandler {
	return api.NewAuthHandler(authUseCase, jwtService, cfg.Cookie)
}

func NewMachineHandler(machineUseCase usecase.MachineUseCase, availabilityUseCase usecase.AvailabilityUseCase, cfg config.Config) *api.MachineHandler {
	return api.NewMachineHandler(machineUseCase, availabilityUseCase, cfg.Feed)
}
