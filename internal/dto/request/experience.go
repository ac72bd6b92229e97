package request

type CreateExperienceRequest struct {
	Name            string  `json:"name" validate:"required,min=3,max=200"`
	Description     string  `json:"description" validate:"omitempty,max=2000"`
	Location        string  `json:"location" validate:"required,min=2,max=200"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	MaxParticipants int     `json:"max_participants" validate:"required,min=1,max=500"`
	DurationHours   int     `json:"duration_hours" validate:"required,min=1,max=72"`
}

type UpdateExperienceRequest struct {
	Name            *string  `json:"name" validate:"omitempty,min=3,max=200"`
	Description     *string  `json:"description" validate:"omitempty,max=2000"`
	Location        *string  `json:"location" validate:"omitempty,min=2,max=200"`
	Price           *float64 `json:"price" validate:"omitempty,gt=0"`
	MaxParticipants *int     `json:"max_participants" validate:"omitempty,min=1,max=500"`
	DurationHours   *int     `json:"duration_hours" validate:"omitempty,min=1,max=72"`
	IsActive        *bool    `json:"is_active"`
}
