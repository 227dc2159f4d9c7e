package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fablab-scheduler/internal/domain/reservation"
	"fablab-scheduler/internal/domain/user"
	"fablab-scheduler/internal/infra"
	"fablab-scheduler/internal/infra/db"
	"fablab-scheduler/internal/pkg/clock"
	"fablab-scheduler/internal/pkg/errs"
	"fablab-scheduler/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrMachineNotFound     = errors.New("machine not found")
	ErrInvalidWindow       = errors.New("invalid reservation window")
	ErrNotEligible         = errors.New("user has no valid subscription grant")
	ErrMachineNotBookable  = errors.New("machine cannot be reserved")
	ErrReservationConflict = errors.New("window conflicts with an approved reservation")
	ErrForbidden           = errors.New("actor is not allowed to perform this action")
	ErrInvalidState        = errors.New("reservation is in a terminal state")
	ErrStoreUnavailable    = errors.New("store unavailable")
)

type ReservationRepository interface {
	Insert(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error
	HasApprovedOverlap(ctx context.Context, tx db.DBTX, machineID uuid.UUID, window reservation.Window, excludeID uuid.UUID) (bool, error)
	FindEntityByID(ctx context.Context, tx db.DBTX, id uuid.UUID, forUpdate bool) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error
	FindRMByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*readmodel.ReservationRM, error)
	ListForMachine(ctx context.Context, machineID uuid.UUID, from, to time.Time) ([]*readmodel.ReservationListRM, error)
	ReconcileCompleted(ctx context.Context, now time.Time) (int64, error)
}

type CreateReservationParams struct {
	MachineID uuid.UUID
	UserID    uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Purpose   string
}

type ReservationUseCase interface {
	Create(ctx context.Context, params CreateReservationParams) (*readmodel.ReservationRM, error)
	Approve(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error)
	Reject(ctx context.Context, id uuid.UUID, reason string) (*readmodel.ReservationRM, error)
	Cancel(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*readmodel.ReservationRM, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error)
	ListForMachine(ctx context.Context, machineID uuid.UUID, from, to time.Time) ([]*readmodel.ReservationListRM, error)
	ReconcileCompleted(ctx context.Context) (int64, error)
}

type reservationUseCaseImpl struct {
	reservationRepo  ReservationRepository
	machineRepo      MachineRepository
	subscriptionRepo SubscriptionRepository
	db               *pgxpool.Pool
	clock            clock.Clock
}

func NewReservationUseCase(
	reservationRepo ReservationRepository,
	machineRepo MachineRepository,
	subscriptionRepo SubscriptionRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		reservationRepo:  reservationRepo,
		machineRepo:      machineRepo,
		subscriptionRepo: subscriptionRepo,
		db:               db,
		clock:            clock,
	}
}

// Create persists a new requested reservation. Eligibility is re-checked on
// every call because grants can expire between requests. The overlap
// pre-check runs under the machine row lock, so a 409 here is authoritative
// at the time of the call; the approve step re-checks regardless.
func (u *reservationUseCaseImpl) Create(ctx context.Context, params CreateReservationParams) (*readmodel.ReservationRM, error) {
	now := u.clock.Now()

	if err := u.checkEligibility(ctx, params.UserID, now); err != nil {
		return nil, err
	}

	window, err := reservation.NewWindow(params.StartTime, params.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidWindow)
	}

	res, err := reservation.NewReservation(params.MachineID, params.UserID, window, params.Purpose, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidWindow)
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	defer rollback(ctx, tx)

	m, err := u.machineRepo.FindByID(ctx, tx, params.MachineID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMachineNotFound
		}
		return nil, mapStoreErr(err)
	}
	if !m.Bookable() {
		return nil, ErrMachineNotBookable
	}

	if err := u.machineRepo.LockByID(ctx, tx, params.MachineID); err != nil {
		return nil, mapStoreErr(err)
	}

	conflict, err := u.reservationRepo.HasApprovedOverlap(ctx, tx, params.MachineID, window, uuid.Nil)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if conflict {
		return nil, ErrReservationConflict
	}

	if err := u.reservationRepo.Insert(ctx, tx, res); err != nil {
		return nil, mapStoreErr(err)
	}

	rm, err := u.reservationRepo.FindRMByID(ctx, tx, res.ID())
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return rm, nil
}

// Approve re-validates the no-overlap rule under the machine row lock, so
// two concurrent approvals of overlapping windows cannot both succeed. On
// conflict the reservation stays requested; the caller must reject or
// re-route it.
func (u *reservationUseCaseImpl) Approve(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	defer rollback(ctx, tx)

	res, err := u.reservationRepo.FindEntityByID(ctx, tx, id, true)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, mapStoreErr(err)
	}

	if err := res.Approve(); err != nil {
		return nil, errs.Mark(err, ErrInvalidState)
	}

	if err := u.machineRepo.LockByID(ctx, tx, res.MachineID()); err != nil {
		return nil, mapStoreErr(err)
	}

	conflict, err := u.reservationRepo.HasApprovedOverlap(ctx, tx, res.MachineID(), res.Window(), res.ID())
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if conflict {
		return nil, ErrReservationConflict
	}

	if err := u.reservationRepo.UpdateStatus(ctx, tx, res); err != nil {
		return nil, mapStoreErr(err)
	}

	rm, err := u.reservationRepo.FindRMByID(ctx, tx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return rm, nil
}

func (u *reservationUseCaseImpl) Reject(ctx context.Context, id uuid.UUID, reason string) (*readmodel.ReservationRM, error) {
	return u.transition(ctx, id, func(res *reservation.Reservation) error {
		if err := res.Reject(reason); err != nil {
			return errs.Mark(err, ErrInvalidState)
		}
		return nil
	})
}

// Cancel frees the window immediately when the reservation was approved.
// Only the owning user or staff may cancel.
func (u *reservationUseCaseImpl) Cancel(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*readmodel.ReservationRM, error) {
	now := u.clock.Now()
	return u.transition(ctx, id, func(res *reservation.Reservation) error {
		if !res.IsOwnedBy(actorID) && !actorRole.IsStaff() {
			return ErrForbidden
		}
		if res.EffectiveStatusAt(now).IsTerminal() {
			return ErrInvalidState
		}
		if err := res.Cancel(); err != nil {
			return errs.Mark(err, ErrInvalidState)
		}
		return nil
	})
}

func (u *reservationUseCaseImpl) transition(ctx context.Context, id uuid.UUID, apply func(*reservation.Reservation) error) (*readmodel.ReservationRM, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	defer rollback(ctx, tx)

	res, err := u.reservationRepo.FindEntityByID(ctx, tx, id, true)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, mapStoreErr(err)
	}

	if err := apply(res); err != nil {
		return nil, err
	}

	if err := u.reservationRepo.UpdateStatus(ctx, tx, res); err != nil {
		return nil, mapStoreErr(err)
	}

	rm, err := u.reservationRepo.FindRMByID(ctx, tx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return rm, nil
}

func (u *reservationUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	rm, err := u.reservationRepo.FindRMByID(ctx, u.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, mapStoreErr(err)
	}
	applyEffectiveStatus(rm, u.clock.Now())
	return rm, nil
}

func (u *reservationUseCaseImpl) ListForMachine(ctx context.Context, machineID uuid.UUID, from, to time.Time) ([]*readmodel.ReservationListRM, error) {
	rms, err := u.reservationRepo.ListForMachine(ctx, machineID, from, to)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	now := u.clock.Now()
	for _, rm := range rms {
		if rm.Status == reservation.StatusApproved.String() && !rm.EndsAt.After(now) {
			rm.Status = reservation.StatusCompleted.String()
		}
	}
	return rms, nil
}

// ReconcileCompleted persists lazy completions. Correctness of reads never
// depends on this sweep having run.
func (u *reservationUseCaseImpl) ReconcileCompleted(ctx context.Context) (int64, error) {
	count, err := u.reservationRepo.ReconcileCompleted(ctx, u.clock.Now())
	if err != nil {
		return 0, mapStoreErr(err)
	}
	return count, nil
}

func (u *reservationUseCaseImpl) checkEligibility(ctx context.Context, userID uuid.UUID, now time.Time) error {
	grant, err := u.subscriptionRepo.FindByUserID(ctx, u.db, userID, false)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrNotEligible
		}
		return mapStoreErr(err)
	}
	if !grant.IsEligibleAt(now) {
		return ErrNotEligible
	}
	return nil
}

// applyEffectiveStatus mirrors Reservation.EffectiveStatusAt on a read model.
func applyEffectiveStatus(rm *readmodel.ReservationRM, now time.Time) {
	if rm.Status == reservation.StatusApproved.String() && !rm.EndsAt.After(now) {
		rm.Status = reservation.StatusCompleted.String()
	}
}

func mapStoreErr(err error) error {
	if infra.IsKind(err, infra.KindDBFailure) || infra.IsKind(err, infra.KindUnavailable) {
		return errs.Mark(err, ErrStoreUnavailable)
	}
	return err
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("failed to rollback transaction", "error", err)
	}
}
