package wire

import (
	"tourism-booking/internal/adaptor"
	"tourism-booking/internal/data/repository"
	"tourism-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/estimates - Price estimate without booking
	r.Post("/api/estimates", reservationHandler.Estimate)

	// GET /api/experiences/{id}/availability - Remaining capacity for a date
	r.Get("/api/experiences/{id}/availability", reservationHandler.CheckAvailability)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/reservations - Create new reservation (pending)
		r.Post("/api/reservations", reservationHandler.CreateReservation)

		// GET /api/user/reservations - Reservation history (user's own)
		r.Get("/api/user/reservations", reservationHandler.GetUserReservations)

		// GET /api/reservations/{id} - Reservation details
		r.Get("/api/reservations/{id}", reservationHandler.GetReservationByID)

		// PUT /api/reservations/{id}/confirm - Confirm a pending reservation
		r.Put("/api/reservations/{id}/confirm", reservationHandler.ConfirmReservation)

		// PUT /api/reservations/{id}/cancel - Cancel within the allowed window
		r.Put("/api/reservations/{id}/cancel", reservationHandler.CancelReservation)

		// PUT /api/reservations/{id}/complete - Mark a confirmed reservation done
		r.Put("/api/reservations/{id}/complete", reservationHandler.CompleteReservation)
	})
}
