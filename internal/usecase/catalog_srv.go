package usecase

import (
	"context"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/dto/response"

	"go.uber.org/zap"
)

// CatalogService exposes the static add-on service catalog.
type CatalogService interface {
	ListServiceTypes(ctx context.Context) ([]*response.ServiceTypeResponse, error)
}

type catalogService struct {
	log *zap.Logger
}

func NewCatalogService(log *zap.Logger) CatalogService {
	return &catalogService{
		log: log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListServiceTypes(_ context.Context) ([]*response.ServiceTypeResponse, error) {
	catalog := entity.ServiceCatalog()

	serviceTypes := make([]*response.ServiceTypeResponse, len(catalog))
	for i, st := range catalog {
		resp := response.ServiceTypeToResponse(st)
		serviceTypes[i] = &resp
	}

	return serviceTypes, nil
}
