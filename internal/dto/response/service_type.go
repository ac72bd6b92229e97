package response

import (
	"tourism-booking/internal/data/entity"
)

type ServiceTypeResponse struct {
	Type                 string  `json:"type"`
	PercentageOfSubtotal float64 `json:"percentage_of_subtotal"`
	DisplayName          string  `json:"display_name"`
	Description          string  `json:"description"`
}

func ServiceTypeToResponse(st entity.ServiceType) ServiceTypeResponse {
	return ServiceTypeResponse{
		Type:                 st.Type,
		PercentageOfSubtotal: st.PercentageOfSubtotal,
		DisplayName:          st.DisplayName,
		Description:          st.Description,
	}
}
