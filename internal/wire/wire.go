package wire

import (
	"net/http"
	"time"

	"tourism-booking/internal/adaptor"
	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/response"
	"tourism-booking/internal/event"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/cache"
	"tourism-booking/pkg/middleware"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring constructs the whole dependency graph by hand: caches, event
// sink, services, handlers, router.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	// Two independent caches: availability snapshots turn over quickly,
	// estimates live longer.
	snapshots := cache.New[entity.AvailabilitySnapshot](
		config.Reservation.CacheCapacity,
		time.Duration(config.Reservation.AvailabilityCacheTTLSec)*time.Second,
	)
	estimates := cache.New[response.EstimateResponse](
		config.Reservation.CacheCapacity,
		time.Duration(config.Reservation.EstimateCacheTTLSec)*time.Second,
	)

	events := event.NewLogSink(logger)

	service := usecase.NewService(repo, config, snapshots, estimates, events, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireCatalog(r, handler.Catalog)
	wireExperience(r, handler.Experience, repo, logger)
	wireReservation(r, handler.Reservation, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
