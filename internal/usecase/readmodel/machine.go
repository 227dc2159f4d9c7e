package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type MachineRM struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Category    string    `json:"category"`
	Maintenance bool      `json:"maintenance"`
	Broken      bool      `json:"broken"`
	Retired     bool      `json:"retired"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ReservationRefRM identifies an approved reservation relevant to a
// machine's derived status: the one occupying it now, or the next upcoming.
type ReservationRefRM struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"userId"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
}

type MachineStatusRM struct {
	MachineID          uuid.UUID         `json:"machineId"`
	Name               string            `json:"name"`
	Code               string            `json:"code"`
	Category           string            `json:"category"`
	State              string            `json:"state"`
	CurrentReservation *ReservationRefRM `json:"currentReservation,omitempty"`
	NextReservation    *ReservationRefRM `json:"nextReservation,omitempty"`
	AvailableInMinutes *int              `json:"availableInMinutes,omitempty"`
}

type SnapshotStatsRM struct {
	Total       int       `json:"total"`
	Available   int       `json:"available"`
	InUse       int       `json:"inUse"`
	Maintenance int       `json:"maintenance"`
	Broken      int       `json:"broken"`
	Unavailable int       `json:"unavailable"`
	AsOf        time.Time `json:"asOf"`
}

// SnapshotRM is a point-in-time view over every machine in the registry.
type SnapshotRM struct {
	Machines []MachineStatusRM `json:"machines"`
	Stats    SnapshotStatsRM   `json:"stats"`
}
