package repository

import (
	"context"
	"errors"
	"time"

	"fablab-scheduler/internal/domain/machine"
	"fablab-scheduler/internal/domain/reservation"
	"fablab-scheduler/internal/infra"
	"fablab-scheduler/internal/infra/db"
	"fablab-scheduler/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

func (r *ReservationRepository) Insert(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO reservations (id, machine_id, user_id, starts_at, ends_at, status, purpose)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		res.ID(), res.MachineID(), res.UserID(),
		res.Window().Start(), res.Window().End(),
		res.Status().String(), nullIfEmpty(res.Purpose()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert reservation", err)
	}
	return nil
}

// HasApprovedOverlap checks the half-open overlap rule against approved
// reservations on the machine. Callers must hold the machine row lock so
// the check and the subsequent write are atomic per machine.
func (r *ReservationRepository) HasApprovedOverlap(ctx context.Context, tx db.DBTX, machineID uuid.UUID, window reservation.Window, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM reservations
		   WHERE machine_id = $1
		     AND status = 'approved'
		     AND id <> $2
		     AND starts_at < $4
		     AND $3 < ends_at
		 )`,
		machineID, excludeID, window.Start(), window.End(),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservation overlap", err)
	}
	return exists, nil
}

func (r *ReservationRepository) FindEntityByID(ctx context.Context, tx db.DBTX, id uuid.UUID, forUpdate bool) (*reservation.Reservation, error) {
	query := `SELECT id, machine_id, user_id, starts_at, ends_at, status, purpose, reason, created_at, updated_at
	          FROM reservations WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}

	row := tx.QueryRow(ctx, query, id)
	res, err := scanReservationEntity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	tag, err := tx.Exec(ctx,
		`UPDATE reservations SET status = $2, reason = $3, updated_at = now() WHERE id = $1`,
		res.ID(), res.Status().String(), nullIfEmpty(res.Reason()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) FindRMByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*readmodel.ReservationRM, error) {
	row := tx.QueryRow(ctx,
		`SELECT r.id, r.machine_id, m.name, r.user_id, u.email,
		        r.starts_at, r.ends_at, r.status, r.purpose, r.reason,
		        r.created_at, r.updated_at
		 FROM reservations r
		 JOIN machines m ON m.id = r.machine_id
		 JOIN users u ON u.id = r.user_id
		 WHERE r.id = $1`,
		id,
	)

	var rm readmodel.ReservationRM
	err := row.Scan(
		&rm.ID, &rm.MachineID, &rm.MachineName, &rm.UserID, &rm.UserEmail,
		&rm.StartsAt, &rm.EndsAt, &rm.Status, &rm.Purpose, &rm.Reason,
		&rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return &rm, nil
}

// ListForMachine returns reservations whose window overlaps [from, to),
// ordered by window start. Used for timeline rendering and status derivation.
func (r *ReservationRepository) ListForMachine(ctx context.Context, machineID uuid.UUID, from, to time.Time) ([]*readmodel.ReservationListRM, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, machine_id, user_id, starts_at, ends_at, status, purpose, created_at
		 FROM reservations
		 WHERE machine_id = $1
		   AND starts_at < $3
		   AND $2 < ends_at
		 ORDER BY starts_at ASC, id ASC`,
		machineID, from, to,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations for machine", err)
	}
	defer rows.Close()

	var result []*readmodel.ReservationListRM
	for rows.Next() {
		var rm readmodel.ReservationListRM
		if err := rows.Scan(&rm.ID, &rm.MachineID, &rm.UserID, &rm.StartsAt, &rm.EndsAt, &rm.Status, &rm.Purpose, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return result, nil
}

// CurrentOrNext returns the approved reservation containing now, else the
// earliest future approved one, else nil. Approved windows never overlap, so
// ordering by (starts_at, id) makes the first row with ends_at > now exactly
// that reservation; the id tiebreak keeps equal start times deterministic.
func (r *ReservationRepository) CurrentOrNext(ctx context.Context, tx db.DBTX, machineID uuid.UUID, now time.Time) (*machine.ActiveReservation, error) {
	row := tx.QueryRow(ctx,
		`SELECT id, user_id, starts_at, ends_at
		 FROM reservations
		 WHERE machine_id = $1 AND status = 'approved' AND ends_at > $2
		 ORDER BY starts_at ASC, id ASC
		 LIMIT 1`,
		machineID, now,
	)

	active, err := scanActiveReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find current reservation", err)
	}
	return active, nil
}

// ActiveByMachine returns, for every machine with one, its current-or-next
// approved reservation keyed by machine id. One scan feeds the whole
// availability snapshot.
func (r *ReservationRepository) ActiveByMachine(ctx context.Context, tx db.DBTX, now time.Time) (map[uuid.UUID]*machine.ActiveReservation, error) {
	rows, err := tx.Query(ctx,
		`SELECT DISTINCT ON (machine_id) machine_id, id, user_id, starts_at, ends_at
		 FROM reservations
		 WHERE status = 'approved' AND ends_at > $1
		 ORDER BY machine_id, starts_at ASC, id ASC`,
		now,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query active reservations", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]*machine.ActiveReservation)
	for rows.Next() {
		var (
			machineID        uuid.UUID
			id, userID       uuid.UUID
			startsAt, endsAt time.Time
		)
		if err := rows.Scan(&machineID, &id, &userID, &startsAt, &endsAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan active reservation row", err)
		}
		window, err := reservation.NewWindow(startsAt, endsAt)
		if err != nil {
			return nil, infra.WrapRepoErr("stored reservation has invalid window", err)
		}
		result[machineID] = &machine.ActiveReservation{ID: id, UserID: userID, Window: window}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate active reservation rows", err)
	}
	return result, nil
}

// ReconcileCompleted persists the lazy approved → completed transition for
// reservations whose window has ended. Read paths never depend on this.
func (r *ReservationRepository) ReconcileCompleted(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE reservations SET status = 'completed', updated_at = now()
		 WHERE status = 'approved' AND ends_at <= $1`,
		now,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to reconcile completed reservations", err)
	}
	return tag.RowsAffected(), nil
}

func scanReservationEntity(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id, machineID, userID uuid.UUID
		startsAt, endsAt      time.Time
		status                string
		purpose, reason       *string
		createdAt, updatedAt  time.Time
	)
	if err := row.Scan(&id, &machineID, &userID, &startsAt, &endsAt, &status, &purpose, &reason, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	window, err := reservation.NewWindow(startsAt, endsAt)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		id, machineID, userID,
		window,
		reservation.Status(status),
		deref(purpose), deref(reason),
		createdAt, updatedAt,
	), nil
}

func scanActiveReservation(row pgx.Row) (*machine.ActiveReservation, error) {
	var (
		id, userID       uuid.UUID
		startsAt, endsAt time.Time
	)
	if err := row.Scan(&id, &userID, &startsAt, &endsAt); err != nil {
		return nil, err
	}
	window, err := reservation.NewWindow(startsAt, endsAt)
	if err != nil {
		return nil, err
	}
	return &machine.ActiveReservation{ID: id, UserID: userID, Window: window}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
