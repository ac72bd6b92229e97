package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
)

// ServiceCharge is the per-add-on cost detail persisted alongside a
// reservation (jsonb column, decoded at the repository boundary).
type ServiceCharge struct {
	Type       string  `json:"type"`
	Percentage float64 `json:"percentage"`
	Cost       float64 `json:"cost"`
}

type Reservation struct {
	BaseNoDelete
	Code                   string            `db:"code"`
	ExperienceID           uuid.UUID         `db:"experience_id"`
	UserID                 uuid.UUID         `db:"user_id"`
	Date                   time.Time         `db:"date"`
	Participants           int               `db:"participants"`
	AdditionalServices     []string          `db:"additional_services"`
	Services               []ServiceCharge   `db:"services"`
	BasePrice              float64           `db:"base_price"`
	AdditionalServicesCost float64           `db:"additional_services_cost"`
	DiscountPercentage     float64           `db:"discount_percentage"`
	DiscountAmount         float64           `db:"discount_amount"`
	TotalPrice             float64           `db:"total_price"`
	Status                 ReservationStatus `db:"status"`
	CancelledAt            *time.Time        `db:"cancelled_at"`
}
