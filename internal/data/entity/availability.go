package entity

import (
	"github.com/google/uuid"
)

// AvailabilitySnapshot is the derived capacity state of an experience on a
// calendar date. It is never persisted. AvailableSpots can be negative when
// a date is oversold; IsAvailable only says whether any spot remains.
type AvailabilitySnapshot struct {
	ExperienceID         uuid.UUID `json:"experience_id"`
	Date                 string    `json:"date"`
	MaxCapacity          int       `json:"max_capacity"`
	ReservedParticipants int       `json:"reserved_participants"`
	AvailableSpots       int       `json:"available_spots"`
	IsAvailable          bool      `json:"is_available"`
}

// CanAccommodate reports whether the snapshot has room for the requested
// group size. Distinct from IsAvailable, which ignores the request size.
func (s AvailabilitySnapshot) CanAccommodate(participants int) bool {
	return s.AvailableSpots >= participants
}
