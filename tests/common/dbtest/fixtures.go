//go:build e2e

package dbtest

import (
	"context"
	"time"

	"fablab-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const fixtureTimeout = 5 * time.Second

// ResetDB truncates all mutable tables and reseeds the reference data, so
// every subtest starts from the same registry and account set.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), fixtureTimeout)
	defer cancel()

	_, err := pool.Exec(ctx, `TRUNCATE reservations, subscription_grants, machines, users CASCADE`)
	if err != nil {
		return errs.Wrap(err, "failed to truncate tables")
	}

	return SeedReferenceData(pool)
}

// SeedReferenceData inserts the accounts and machines the e2e suites rely
// on. Passwords are hashed in-database so the fixture stays in sync with
// what the login endpoint verifies.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), fixtureTimeout)
	defer cancel()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (email, password_hash, role) VALUES
			('admin@fablab.example.com', crypt('password123', gen_salt('bf', 10)), 'admin'),
			('staff@fablab.example.com', crypt('password123', gen_salt('bf', 10)), 'staff'),
			('member@fablab.example.com', crypt('password123', gen_salt('bf', 10)), 'member'),
			('member2@fablab.example.com', crypt('password123', gen_salt('bf', 10)), 'member')
		ON CONFLICT (email) DO NOTHING`)
	if err != nil {
		return errs.Wrap(err, "failed to seed users")
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO machines (name, code, category) VALUES
			('Prusa MK4',       'PRT-01', '3d_printer'),
			('Prusa MK4',       'PRT-02', '3d_printer'),
			('Epilog Fusion',   'LSR-01', 'laser_cutter'),
			('Shapeoko 5 Pro',  'CNC-01', 'cnc_router'),
			('Brother PR1055X', 'EMB-01', 'embroidery')
		ON CONFLICT (code) DO NOTHING`)
	if err != nil {
		return errs.Wrap(err, "failed to seed machines")
	}

	return nil
}

func UserIDByEmail(pool *pgxpool.Pool, email string) (uuid.UUID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), fixtureTimeout)
	defer cancel()

	var id uuid.UUID
	err := pool.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&id)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to look up user by email")
	}
	return id, nil
}

// InsertApprovedReservation plants an approved reservation directly, so
// status derivation can be observed for windows that contain now without
// waiting on the clock.
func InsertApprovedReservation(pool *pgxpool.Pool, machineID, userID uuid.UUID, startsAt, endsAt time.Time) (uuid.UUID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), fixtureTimeout)
	defer cancel()

	var id uuid.UUID
	err := pool.QueryRow(ctx, `
		INSERT INTO reservations (machine_id, user_id, starts_at, ends_at, status)
		VALUES ($1, $2, $3, $4, 'approved')
		RETURNING id`,
		machineID, userID, startsAt, endsAt).Scan(&id)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to insert approved reservation")
	}
	return id, nil
}

func MachineIDByCode(pool *pgxpool.Pool, code string) (uuid.UUID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), fixtureTimeout)
	defer cancel()

	var id uuid.UUID
	err := pool.QueryRow(ctx, `SELECT id FROM machines WHERE code = $1`, code).Scan(&id)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to look up machine by code")
	}
	return id, nil
}
