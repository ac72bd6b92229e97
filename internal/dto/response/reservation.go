package response

import (
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/utils"
)

type ServiceChargeResponse struct {
	Type       string  `json:"type"`
	Percentage float64 `json:"percentage"`
	Cost       float64 `json:"cost"`
}

type EstimateResponse struct {
	ExperienceID           string                  `json:"experience_id"`
	ExperienceName         string                  `json:"experience_name,omitempty"`
	Participants           int                     `json:"participants"`
	PricePerParticipant    float64                 `json:"price_per_participant"`
	Subtotal               float64                 `json:"subtotal"`
	Services               []ServiceChargeResponse `json:"services"`
	AdditionalServicesCost float64                 `json:"additional_services_cost"`
	TotalBeforeDiscount    float64                 `json:"total_before_discount"`
	DiscountPercentage     float64                 `json:"discount_percentage"`
	DiscountAmount         float64                 `json:"discount_amount"`
	TotalPrice             float64                 `json:"total_price"`
	InvalidServicesIgnored []string                `json:"invalid_services_ignored,omitempty"`
}

type AvailabilityResponse struct {
	ExperienceID          string `json:"experience_id"`
	Date                  string `json:"date"`
	MaxCapacity           int    `json:"max_capacity"`
	ReservedParticipants  int    `json:"reserved_participants"`
	AvailableSpots        int    `json:"available_spots"`
	IsAvailable           bool   `json:"is_available"`
	RequestedParticipants int    `json:"requested_participants"`
	CanAccommodate        bool   `json:"can_accommodate"`
}

type ReservationResponse struct {
	ID                     string                   `json:"id"`
	Code                   string                   `json:"code"`
	ExperienceID           string                   `json:"experience_id"`
	ExperienceName         string                   `json:"experience_name,omitempty"`
	UserID                 string                   `json:"user_id"`
	Date                   string                   `json:"date"`
	Participants           int                      `json:"participants"`
	AdditionalServices     []string                 `json:"additional_services"`
	Services               []ServiceChargeResponse  `json:"services"`
	BasePrice              float64                  `json:"base_price"`
	AdditionalServicesCost float64                  `json:"additional_services_cost"`
	DiscountPercentage     float64                  `json:"discount_percentage"`
	DiscountAmount         float64                  `json:"discount_amount"`
	TotalPrice             float64                  `json:"total_price"`
	Status                 entity.ReservationStatus `json:"status"`
	CancelledAt            *time.Time               `json:"cancelled_at,omitempty"`
	CreatedAt              time.Time                `json:"created_at"`
}

func ServiceChargesToResponse(charges []entity.ServiceCharge) []ServiceChargeResponse {
	out := make([]ServiceChargeResponse, len(charges))
	for i, c := range charges {
		out[i] = ServiceChargeResponse{
			Type:       c.Type,
			Percentage: c.Percentage,
			Cost:       c.Cost,
		}
	}
	return out
}

func ReservationToResponse(reservation *entity.Reservation, experienceName string) ReservationResponse {
	return ReservationResponse{
		ID:                     reservation.ID.String(),
		Code:                   reservation.Code,
		ExperienceID:           reservation.ExperienceID.String(),
		ExperienceName:         experienceName,
		UserID:                 reservation.UserID.String(),
		Date:                   reservation.Date.Format(utils.DateLayout),
		Participants:           reservation.Participants,
		AdditionalServices:     reservation.AdditionalServices,
		Services:               ServiceChargesToResponse(reservation.Services),
		BasePrice:              reservation.BasePrice,
		AdditionalServicesCost: reservation.AdditionalServicesCost,
		DiscountPercentage:     reservation.DiscountPercentage,
		DiscountAmount:         reservation.DiscountAmount,
		TotalPrice:             reservation.TotalPrice,
		Status:                 reservation.Status,
		CancelledAt:            reservation.CancelledAt,
		CreatedAt:              reservation.CreatedAt,
	}
}
