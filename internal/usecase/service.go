package usecase

import (
	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/response"
	"tourism-booking/internal/event"
	"tourism-booking/pkg/cache"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Catalog     CatalogService
	Experience  ExperienceService
	Reservation ReservationService
}

// NewService wires the engine from explicitly constructed, injected
// collaborators; no package-level singletons.
func NewService(
	repo *repository.Repository,
	config *utils.Config,
	snapshots *cache.Cache[entity.AvailabilitySnapshot],
	estimates *cache.Cache[response.EstimateResponse],
	events event.Sink,
	log *zap.Logger,
) *Service {
	pricing := NewPricingEngine()
	availability := NewAvailabilityService(repo, snapshots, log)

	return &Service{
		Catalog:     NewCatalogService(log),
		Experience:  NewExperienceService(repo, availability, estimates, log),
		Reservation: NewReservationService(repo, pricing, availability, estimates, events, config.Reservation, log),
	}
}
