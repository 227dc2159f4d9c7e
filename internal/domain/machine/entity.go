package machine

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyMachineName = errors.New("machine name cannot be empty")
	ErrEmptyMachineCode = errors.New("machine code cannot be empty")
	ErrNameTooLong      = errors.New("machine name is too long (max 255 characters)")
)

const MaxMachineNameLength = 255

// Machine is a reservable piece of FabLab equipment. The maintenance,
// broken and retired flags are set by staff and are independent of the
// reservation timeline; they only meet in DeriveStatus.
type Machine struct {
	id          uuid.UUID
	name        string
	code        string
	category    string
	maintenance bool
	broken      bool
	retired     bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewMachine(name, code, category string) (*Machine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyMachineName
	}
	if len(name) > MaxMachineNameLength {
		return nil, ErrNameTooLong
	}
	if strings.TrimSpace(code) == "" {
		return nil, ErrEmptyMachineCode
	}

	return &Machine{
		id:       uuid.New(),
		name:     name,
		code:     strings.TrimSpace(code),
		category: strings.TrimSpace(category),
	}, nil
}

func ReconstructMachine(
	id uuid.UUID,
	name, code, category string,
	maintenance, broken, retired bool,
	createdAt, updatedAt time.Time,
) *Machine {
	return &Machine{
		id:          id,
		name:        name,
		code:        code,
		category:    category,
		maintenance: maintenance,
		broken:      broken,
		retired:     retired,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (m *Machine) ID() uuid.UUID        { return m.id }
func (m *Machine) Name() string         { return m.name }
func (m *Machine) Code() string         { return m.code }
func (m *Machine) Category() string     { return m.category }
func (m *Machine) Maintenance() bool    { return m.maintenance }
func (m *Machine) Broken() bool         { return m.broken }
func (m *Machine) Retired() bool        { return m.retired }
func (m *Machine) CreatedAt() time.Time { return m.createdAt }
func (m *Machine) UpdatedAt() time.Time { return m.updatedAt }

// Bookable reports whether new reservations may target this machine at all.
// Reservation conflicts are a separate concern.
func (m *Machine) Bookable() bool {
	return !m.broken && !m.maintenance && !m.retired
}
