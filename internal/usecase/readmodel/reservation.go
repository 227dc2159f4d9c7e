package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type ReservationRM struct {
	ID          uuid.UUID  `json:"id"`
	MachineID   uuid.UUID  `json:"machineId"`
	MachineName string     `json:"machineName"`
	UserID      uuid.UUID  `json:"userId"`
	UserEmail   string     `json:"userEmail"`
	StartsAt    time.Time  `json:"startsAt"`
	EndsAt      time.Time  `json:"endsAt"`
	Status      string     `json:"status"`
	Purpose     *string    `json:"purpose,omitempty"`
	Reason      *string    `json:"reason,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type ReservationListRM struct {
	ID        uuid.UUID `json:"id"`
	MachineID uuid.UUID `json:"machineId"`
	UserID    uuid.UUID `json:"userId"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
	Status    string    `json:"status"`
	Purpose   *string   `json:"purpose,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
