package usecase

import (
	"context"
	"time"

	"fablab-scheduler/internal/domain/machine"
	"fablab-scheduler/internal/infra"
	"fablab-scheduler/internal/infra/db"
	"fablab-scheduler/internal/pkg/clock"
	"fablab-scheduler/internal/pkg/errs"
	"fablab-scheduler/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ActiveReservationReader is the slice of the reservation store the
// availability feed needs.
type ActiveReservationReader interface {
	ActiveByMachine(ctx context.Context, tx db.DBTX, now time.Time) (map[uuid.UUID]*machine.ActiveReservation, error)
	CurrentOrNext(ctx context.Context, tx db.DBTX, machineID uuid.UUID, now time.Time) (*machine.ActiveReservation, error)
}

type AvailabilityUseCase interface {
	Snapshot(ctx context.Context) (*readmodel.SnapshotRM, error)
	MachineStatus(ctx context.Context, machineID uuid.UUID) (*readmodel.MachineStatusRM, error)
}

type availabilityUseCaseImpl struct {
	machineRepo     MachineRepository
	reservationRead ActiveReservationReader
	db              *pgxpool.Pool
	clock           clock.Clock
}

func NewAvailabilityUseCase(
	machineRepo MachineRepository,
	reservationRead ActiveReservationReader,
	db *pgxpool.Pool,
	clock clock.Clock,
) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		machineRepo:     machineRepo,
		reservationRead: reservationRead,
		db:              db,
		clock:           clock,
	}
}

// Snapshot recomputes every machine's derived status at a single instant.
// Both reads run in one repeatable-read transaction so concurrent callers
// always see a consistent point-in-time view, and any store failure fails
// the whole snapshot; callers keep their last good one.
func (u *availabilityUseCaseImpl) Snapshot(ctx context.Context) (*readmodel.SnapshotRM, error) {
	now := u.clock.Now()

	tx, err := u.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	defer rollback(ctx, tx)

	machines, err := u.machineRepo.ListAll(ctx, tx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	active, err := u.reservationRead.ActiveByMachine(ctx, tx, now)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	snapshot := &readmodel.SnapshotRM{
		Machines: make([]readmodel.MachineStatusRM, 0, len(machines)),
		Stats:    readmodel.SnapshotStatsRM{Total: len(machines), AsOf: now},
	}

	for _, m := range machines {
		derived := machine.DeriveStatus(m, active[m.ID()], now)
		snapshot.Machines = append(snapshot.Machines, toMachineStatusRM(m, derived))

		switch derived.State {
		case machine.StateAvailable:
			snapshot.Stats.Available++
		case machine.StateInUse:
			snapshot.Stats.InUse++
		case machine.StateMaintenance:
			snapshot.Stats.Maintenance++
		case machine.StateBroken:
			snapshot.Stats.Broken++
		case machine.StateUnavailable:
			snapshot.Stats.Unavailable++
		}
	}

	return snapshot, nil
}

// MachineStatus derives one machine's status at now. Unlike the whole-feed
// snapshot, a point read needs no transaction; both queries go through the
// pool directly.
func (u *availabilityUseCaseImpl) MachineStatus(ctx context.Context, machineID uuid.UUID) (*readmodel.MachineStatusRM, error) {
	now := u.clock.Now()

	m, err := u.machineRepo.FindByID(ctx, u.db, machineID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMachineNotFound
		}
		return nil, mapStoreErr(err)
	}

	active, err := u.reservationRead.CurrentOrNext(ctx, u.db, machineID, now)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	rm := toMachineStatusRM(m, machine.DeriveStatus(m, active, now))
	if active != nil && now.Before(active.Window.Start()) {
		rm.NextReservation = toReservationRefRM(active)
	}
	return &rm, nil
}

func toMachineStatusRM(m *machine.Machine, derived machine.DerivedStatus) readmodel.MachineStatusRM {
	rm := readmodel.MachineStatusRM{
		MachineID:          m.ID(),
		Name:               m.Name(),
		Code:               m.Code(),
		Category:           m.Category(),
		State:              derived.State.String(),
		AvailableInMinutes: derived.AvailableInMinutes,
	}
	if derived.CurrentReservation != nil {
		rm.CurrentReservation = toReservationRefRM(derived.CurrentReservation)
	}
	return rm
}

func toReservationRefRM(a *machine.ActiveReservation) *readmodel.ReservationRefRM {
	return &readmodel.ReservationRefRM{
		ID:       a.ID,
		UserID:   a.UserID,
		StartsAt: a.Window.Start(),
		EndsAt:   a.Window.End(),
	}
}
