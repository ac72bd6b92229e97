package adaptor

import (
	"encoding/json"
	"net/http"

	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ExperienceHandler struct {
	service usecase.ExperienceService
	log     *zap.Logger
}

func NewExperienceHandler(service usecase.ExperienceService, log *zap.Logger) *ExperienceHandler {
	return &ExperienceHandler{
		service: service,
		log:     log.With(zap.String("handler", "experience")),
	}
}

// ListExperiences handles GET /api/experiences (public)
func (h *ExperienceHandler) ListExperiences(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	experiences, err := h.service.List(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.log, err, "list experiences")
		return
	}

	utils.ResponseSuccess(w, "success", experiences)
}

// GetExperienceByID handles GET /api/experiences/{id} (public)
func (h *ExperienceHandler) GetExperienceByID(w http.ResponseWriter, r *http.Request) {
	experienceID := chi.URLParam(r, "id")
	if experienceID == "" {
		utils.ResponseBadRequest(w, "Experience ID is required", nil)
		return
	}

	experience, err := h.service.GetByID(r.Context(), experienceID)
	if err != nil {
		respondServiceError(w, h.log, err, "get experience by ID")
		return
	}

	utils.ResponseSuccess(w, "success", experience)
}

// CreateExperience handles POST /api/operator/experiences (protected)
func (h *ExperienceHandler) CreateExperience(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	experience, err := h.service.Create(r.Context(), operatorID.String(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create experience")
		return
	}

	utils.ResponseCreated(w, "success", experience)
}

// UpdateExperience handles PUT /api/operator/experiences/{id} (protected)
func (h *ExperienceHandler) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	experienceID := chi.URLParam(r, "id")
	if experienceID == "" {
		utils.ResponseBadRequest(w, "Experience ID is required", nil)
		return
	}

	var req request.UpdateExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	experience, err := h.service.Update(r.Context(), operatorID.String(), experienceID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update experience")
		return
	}

	utils.ResponseSuccess(w, "success", experience)
}
