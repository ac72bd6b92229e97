package usecase

import (
	"math"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/apperr"
)

// PriceBreakdown is the full deterministic price computation for a
// reservation request. Every monetary sub-amount is rounded once, at the
// point it is derived, and never re-rounded downstream.
type PriceBreakdown struct {
	Subtotal               float64
	Services               []entity.ServiceCharge
	AdditionalServicesCost float64
	TotalBeforeDiscount    float64
	// DiscountPercentage is in percent points (15 means 15%).
	DiscountPercentage     float64
	DiscountAmount         float64
	TotalPrice             float64
	InvalidServicesIgnored []string
}

// PricingEngine computes price breakdowns. Implementations must be pure:
// deterministic and side-effect-free for identical inputs.
type PricingEngine interface {
	Breakdown(price float64, participants int, additionalServices []string) (*PriceBreakdown, error)
}

type standardPricing struct{}

func NewPricingEngine() PricingEngine {
	return &standardPricing{}
}

func (standardPricing) Breakdown(price float64, participants int, additionalServices []string) (*PriceBreakdown, error) {
	fields := make(map[string]string)
	if price <= 0 {
		fields["price"] = "Experience price must be greater than zero"
	}
	if participants < 1 {
		fields["participants"] = "Must be at least 1"
	}
	if len(fields) > 0 {
		return nil, apperr.Validation("invalid pricing input", fields)
	}

	subtotal := price * float64(participants)

	var services []entity.ServiceCharge
	var invalidIgnored []string
	var additionalServicesCost float64
	for _, serviceType := range additionalServices {
		st, ok := entity.LookupServiceType(serviceType)
		if !ok {
			// Unknown types are dropped, not rejected; callers get the
			// ignored list back in the breakdown.
			invalidIgnored = append(invalidIgnored, serviceType)
			continue
		}

		cost := math.Round(subtotal * st.PercentageOfSubtotal)
		services = append(services, entity.ServiceCharge{
			Type:       st.Type,
			Percentage: st.PercentageOfSubtotal,
			Cost:       cost,
		})
		additionalServicesCost += cost
	}

	totalBeforeDiscount := subtotal + additionalServicesCost

	// The discount is computed from the pre-discount total including
	// add-ons, never from the base subtotal alone.
	discountPercentage := GroupDiscountPercentage(participants)
	discountAmount := math.Round(totalBeforeDiscount * discountPercentage / 100)

	return &PriceBreakdown{
		Subtotal:               subtotal,
		Services:               services,
		AdditionalServicesCost: additionalServicesCost,
		TotalBeforeDiscount:    totalBeforeDiscount,
		DiscountPercentage:     discountPercentage,
		DiscountAmount:         discountAmount,
		TotalPrice:             totalBeforeDiscount - discountAmount,
		InvalidServicesIgnored: invalidIgnored,
	}, nil
}

// GroupDiscountPercentage is a step function on participant count alone;
// total spend plays no part.
func GroupDiscountPercentage(participants int) float64 {
	switch {
	case participants >= 15:
		return 15
	case participants >= 8:
		return 10
	default:
		return 0
	}
}
