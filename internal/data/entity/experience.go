package entity

import (
	"github.com/google/uuid"
)

type Experience struct {
	Base
	OperatorID      uuid.UUID `db:"operator_id"`
	Name            string    `db:"name"`
	Description     string    `db:"description"`
	Location        string    `db:"location"`
	Price           float64   `db:"price"`
	MaxParticipants int       `db:"max_participants"`
	DurationHours   int       `db:"duration_hours"`
	IsActive        bool      `db:"is_active"`
}
