package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type GrantRM struct {
	UserID    uuid.UUID  `json:"userId"`
	Plan      string     `json:"plan"`
	Status    string     `json:"status"`
	AccessKey *string    `json:"accessKey,omitempty"`
	Reason    *string    `json:"reason,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
