package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fablab-scheduler/internal/handler/api"
	"fablab-scheduler/internal/handler/middleware"
	"fablab-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	reservationHandler *api.ReservationHandler,
	machineHandler *api.MachineHandler,
	subscriptionHandler *api.SubscriptionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, reservationHandler, machineHandler, subscriptionHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	reservationHandler *api.ReservationHandler,
	machineHandler *api.MachineHandler,
	subscriptionHandler *api.SubscriptionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		machines := apiGroup.Group("/machines")
		{
			addRoutes(machines, []route{
				{Method: http.MethodGet, Path: "", Handler: machineHandler.ListMachines},
				{Method: http.MethodGet, Path: "/status", Handler: machineHandler.MachineStatus},
				{Method: http.MethodGet, Path: "/:id", Handler: machineHandler.GetMachine},
				{Method: http.MethodGet, Path: "/:id/status", Handler: machineHandler.MachineStatusByID},
				{Method: http.MethodGet, Path: "/:id/reservations", Handler: reservationHandler.ListMachineReservations},
			})

			staffOnly := machines.Group("")
			staffOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireStaff())
			addRoutes(staffOnly, []route{
				{Method: http.MethodPut, Path: "/:id/flags", Handler: machineHandler.UpdateMachineFlags},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.CancelReservation},
			})

			staffOnly := reservations.Group("")
			staffOnly.Use(authMiddleware.RequireStaff())
			addRoutes(staffOnly, []route{
				{Method: http.MethodPost, Path: "/:id/approve", Handler: reservationHandler.ApproveReservation},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: reservationHandler.RejectReservation},
			})
		}

		subscriptions := apiGroup.Group("/subscriptions")
		subscriptions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(subscriptions, []route{
				{Method: http.MethodPost, Path: "", Handler: subscriptionHandler.RequestSubscription},
				{Method: http.MethodGet, Path: "/me", Handler: subscriptionHandler.MySubscription},
			})

			staffOnly := subscriptions.Group("")
			staffOnly.Use(authMiddleware.RequireStaff())
			addRoutes(staffOnly, []route{
				{Method: http.MethodPost, Path: "/:userId/approve", Handler: subscriptionHandler.ApproveSubscription},
				{Method: http.MethodPost, Path: "/:userId/reject", Handler: subscriptionHandler.RejectSubscription},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
