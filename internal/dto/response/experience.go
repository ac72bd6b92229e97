package response

import (
	"time"

	"tourism-booking/internal/data/entity"
)

type ExperienceResponse struct {
	ID              string    `json:"id"`
	OperatorID      string    `json:"operator_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Location        string    `json:"location"`
	Price           float64   `json:"price"`
	MaxParticipants int       `json:"max_participants"`
	DurationHours   int       `json:"duration_hours"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

func ExperienceToResponse(experience *entity.Experience) ExperienceResponse {
	return ExperienceResponse{
		ID:              experience.ID.String(),
		OperatorID:      experience.OperatorID.String(),
		Name:            experience.Name,
		Description:     experience.Description,
		Location:        experience.Location,
		Price:           experience.Price,
		MaxParticipants: experience.MaxParticipants,
		DurationHours:   experience.DurationHours,
		IsActive:        experience.IsActive,
		CreatedAt:       experience.CreatedAt,
	}
}
