package wire

import (
	"tourism-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// GET /api/service-types - List add-on service catalog (public)
	r.Get("/api/service-types", catalogHandler.GetServiceTypes)
}
