package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"fablab-scheduler/internal/pkg/config"
	"fablab-scheduler/internal/usecase"

	"go.uber.org/fx"
)

var ReconcilerModule = fx.Module("reconciler",
	fx.Invoke(StartReconciler),
)

// StartReconciler runs the approved → completed sweep on a fixed cadence.
// Reads never depend on it; the interval only bounds how stale persisted
// reservation rows can be.
func StartReconciler(lc fx.Lifecycle, cfg config.Config, reservationUseCase usecase.ReservationUseCase, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go runReconcileLoop(ctx, cfg.Feed.ReconcileInterval, reservationUseCase, logger, done)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}

func runReconcileLoop(ctx context.Context, interval time.Duration, reservationUseCase usecase.ReservationUseCase, logger *slog.Logger, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("reservation reconcile loop started", "interval", interval)

	for {
		select {
		case <-ctx.Done():
			logger.Info("reservation reconcile loop stopped")
			return
		case <-ticker.C:
			count, err := reservationUseCase.ReconcileCompleted(ctx)
			if err != nil {
				logger.Warn("reconcile sweep failed", "error", err)
				continue
			}
			if count > 0 {
				logger.Info("reconcile sweep completed reservations", "count", count)
			}
		}
	}
}
