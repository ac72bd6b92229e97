package adaptor

import (
	"net/http"

	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetServiceTypes handles GET /api/service-types (public)
func (h *CatalogHandler) GetServiceTypes(w http.ResponseWriter, r *http.Request) {
	serviceTypes, err := h.service.ListServiceTypes(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "get service types")
		return
	}

	utils.ResponseSuccess(w, "success", serviceTypes)
}
