package usecase

import (
	"context"

	"fablab-scheduler/internal/domain/machine"
	"fablab-scheduler/internal/infra"
	"fablab-scheduler/internal/infra/db"
	"fablab-scheduler/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MachineRepository interface {
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*machine.Machine, error)
	LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	ListAll(ctx context.Context, tx db.DBTX) ([]*machine.Machine, error)
	SetMaintenance(ctx context.Context, id uuid.UUID, flag bool) error
	SetBroken(ctx context.Context, id uuid.UUID, flag bool) error
	SetRetired(ctx context.Context, id uuid.UUID, flag bool) error
}

// MachineFlags carries a partial flag update; nil fields are untouched.
type MachineFlags struct {
	Maintenance *bool
	Broken      *bool
	Retired     *bool
}

type MachineUseCase interface {
	List(ctx context.Context) ([]*readmodel.MachineRM, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.MachineRM, error)
	SetFlags(ctx context.Context, id uuid.UUID, flags MachineFlags) (*readmodel.MachineRM, error)
}

type machineUseCaseImpl struct {
	machineRepo MachineRepository
	db          *pgxpool.Pool
}

func NewMachineUseCase(machineRepo MachineRepository, db *pgxpool.Pool) MachineUseCase {
	return &machineUseCaseImpl{
		machineRepo: machineRepo,
		db:          db,
	}
}

func (u *machineUseCaseImpl) List(ctx context.Context) ([]*readmodel.MachineRM, error) {
	machines, err := u.machineRepo.ListAll(ctx, u.db)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	result := make([]*readmodel.MachineRM, len(machines))
	for i, m := range machines {
		result[i] = toMachineRM(m)
	}
	return result, nil
}

func (u *machineUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.MachineRM, error) {
	m, err := u.machineRepo.FindByID(ctx, u.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMachineNotFound
		}
		return nil, mapStoreErr(err)
	}
	return toMachineRM(m), nil
}

// SetFlags applies staff flag mutations. The effect is observable on the
// next derivation cycle; no audit trail is kept here.
func (u *machineUseCaseImpl) SetFlags(ctx context.Context, id uuid.UUID, flags MachineFlags) (*readmodel.MachineRM, error) {
	if flags.Maintenance != nil {
		if err := u.machineRepo.SetMaintenance(ctx, id, *flags.Maintenance); err != nil {
			return nil, mapMachineErr(err)
		}
	}
	if flags.Broken != nil {
		if err := u.machineRepo.SetBroken(ctx, id, *flags.Broken); err != nil {
			return nil, mapMachineErr(err)
		}
	}
	if flags.Retired != nil {
		if err := u.machineRepo.SetRetired(ctx, id, *flags.Retired); err != nil {
			return nil, mapMachineErr(err)
		}
	}

	return u.Get(ctx, id)
}

func mapMachineErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrMachineNotFound
	}
	return mapStoreErr(err)
}

func toMachineRM(m *machine.Machine) *readmodel.MachineRM {
	return &readmodel.MachineRM{
		ID:          m.ID(),
		Name:        m.Name(),
		Code:        m.Code(),
		Category:    m.Category(),
		Maintenance: m.Maintenance(),
		Broken:      m.Broken(),
		Retired:     m.Retired(),
		CreatedAt:   m.CreatedAt(),
		UpdatedAt:   m.UpdatedAt(),
	}
}
