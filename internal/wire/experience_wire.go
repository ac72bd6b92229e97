package wire

import (
	"tourism-booking/internal/adaptor"
	"tourism-booking/internal/data/repository"
	"tourism-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireExperience(
	r chi.Router,
	experienceHandler *adaptor.ExperienceHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/experiences - Browse active experiences
	r.Get("/api/experiences", experienceHandler.ListExperiences)

	// GET /api/experiences/{id} - Experience details
	r.Get("/api/experiences/{id}", experienceHandler.GetExperienceByID)

	// ==================== OPERATOR ROUTES (require auth) ====================
	r.Route("/api/operator/experiences", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/operator/experiences - Publish a new experience
		r.Post("/", experienceHandler.CreateExperience)

		// PUT /api/operator/experiences/{id} - Update an owned experience
		r.Put("/{id}", experienceHandler.UpdateExperience)
	})
}
