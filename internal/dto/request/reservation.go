package request

type EstimateRequest struct {
	ExperienceID       string   `json:"experience_id" validate:"required,uuid4"`
	Participants       int      `json:"participants" validate:"required,min=1,max=100"`
	AdditionalServices []string `json:"additional_services" validate:"omitempty,dive,min=1"`
}

type AvailabilityRequest struct {
	ExperienceID string `json:"experience_id" validate:"required,uuid4"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	Participants int    `json:"participants" validate:"required,min=1,max=100"`
}

type CreateReservationRequest struct {
	ExperienceID       string   `json:"experience_id" validate:"required,uuid4"`
	Date               string   `json:"date" validate:"required,datetime=2006-01-02"`
	Participants       int      `json:"participants" validate:"required,min=1,max=100"`
	AdditionalServices []string `json:"additional_services" validate:"omitempty,dive,min=1"`
}
