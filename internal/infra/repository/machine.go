package repository

import (
	"context"
	"errors"
	"time"

	"fablab-scheduler/internal/domain/machine"
	"fablab-scheduler/internal/infra"
	"fablab-scheduler/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MachineRepository struct {
	pool *pgxpool.Pool
}

func NewMachineRepository(pool *pgxpool.Pool) *MachineRepository {
	return &MachineRepository{pool: pool}
}

const machineColumns = `id, name, code, category, maintenance, broken, retired, created_at, updated_at`

func (r *MachineRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*machine.Machine, error) {
	row := tx.QueryRow(ctx,
		`SELECT `+machineColumns+` FROM machines WHERE id = $1`, id)

	m, err := scanMachine(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("machine not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find machine", err)
	}
	return m, nil
}

// LockByID takes the per-machine row lock that serializes reservation
// writes for one machine. Must run inside a transaction.
func (r *MachineRepository) LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	var locked uuid.UUID
	err := tx.QueryRow(ctx, `SELECT id FROM machines WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return infra.WrapRepoErr("machine not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock machine row", err)
	}
	return nil
}

func (r *MachineRepository) ListAll(ctx context.Context, tx db.DBTX) ([]*machine.Machine, error) {
	rows, err := tx.Query(ctx,
		`SELECT `+machineColumns+` FROM machines ORDER BY code ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list machines", err)
	}
	defer rows.Close()

	var machines []*machine.Machine
	for rows.Next() {
		m, err := scanMachine(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan machine row", err)
		}
		machines = append(machines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate machine rows", err)
	}
	return machines, nil
}

func (r *MachineRepository) SetMaintenance(ctx context.Context, id uuid.UUID, flag bool) error {
	return r.setFlag(ctx, id, "maintenance", flag)
}

func (r *MachineRepository) SetBroken(ctx context.Context, id uuid.UUID, flag bool) error {
	return r.setFlag(ctx, id, "broken", flag)
}

func (r *MachineRepository) SetRetired(ctx context.Context, id uuid.UUID, flag bool) error {
	return r.setFlag(ctx, id, "retired", flag)
}

// setFlag interpolates the column name from a fixed set; flag columns are
// never user input.
func (r *MachineRepository) setFlag(ctx context.Context, id uuid.UUID, column string, flag bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE machines SET `+column+` = $2, updated_at = now() WHERE id = $1`,
		id, flag,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update machine flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("machine not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanMachine(row pgx.Row) (*machine.Machine, error) {
	var (
		id                           uuid.UUID
		name, code, category         string
		maintenance, broken, retired bool
		createdAt, updatedAt         time.Time
	)
	if err := row.Scan(&id, &name, &code, &category, &maintenance, &broken, &retired, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return machine.ReconstructMachine(id, name, code, category, maintenance, broken, retired, createdAt, updatedAt), nil
}
