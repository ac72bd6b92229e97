package usecase

import (
	"context"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/dto/response"
	"tourism-booking/pkg/apperr"
	"tourism-booking/pkg/cache"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ExperienceService interface {
	// Public reads
	GetByID(ctx context.Context, experienceID string) (*response.ExperienceResponse, error)
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ExperienceResponse], error)

	// Operator endpoints (authenticated)
	Create(ctx context.Context, operatorID string, req *request.CreateExperienceRequest) (*response.ExperienceResponse, error)
	Update(ctx context.Context, operatorID, experienceID string, req *request.UpdateExperienceRequest) (*response.ExperienceResponse, error)
}

type experienceService struct {
	repo         *repository.Repository
	availability AvailabilityService
	estimates    *cache.Cache[response.EstimateResponse]
	log          *zap.Logger
}

func NewExperienceService(
	repo *repository.Repository,
	availability AvailabilityService,
	estimates *cache.Cache[response.EstimateResponse],
	log *zap.Logger,
) ExperienceService {
	return &experienceService{
		repo:         repo,
		availability: availability,
		estimates:    estimates,
		log:          log.With(zap.String("service", "experience")),
	}
}

func (s *experienceService) GetByID(ctx context.Context, experienceID string) (*response.ExperienceResponse, error) {
	id, err := uuid.Parse(experienceID)
	if err != nil {
		return nil, apperr.New(apperr.KindValidation, "invalid experience ID format %s", experienceID)
	}

	experience, err := s.repo.Experience.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, err, "look up experience")
	}
	if experience == nil {
		return nil, apperr.New(apperr.KindNotFound, "experience %s not found", experienceID)
	}

	resp := response.ExperienceToResponse(experience)
	return &resp, nil
}

func (s *experienceService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ExperienceResponse], error) {
	experiences, err := s.repo.Experience.FindAllActive(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list experiences", zap.Error(err))
		return nil, apperr.Wrap(apperr.KindInternal, err, "list experiences")
	}

	total, err := s.repo.Experience.CountActive(ctx)
	if err != nil {
		s.log.Error("Failed to count experiences", zap.Error(err))
		return nil, apperr.Wrap(apperr.KindInternal, err, "count experiences")
	}

	experienceResponses := make([]response.ExperienceResponse, len(experiences))
	for i, experience := range experiences {
		experienceResponses[i] = response.ExperienceToResponse(experience)
	}

	return response.NewPaginatedResponse(experienceResponses, req.Page, req.PerPage, total), nil
}

func (s *experienceService) Create(ctx context.Context, operatorID string, req *request.CreateExperienceRequest) (*response.ExperienceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create experience validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed", errs)
	}

	operatorUUID, err := uuid.Parse(operatorID)
	if err != nil {
		return nil, apperr.New(apperr.KindValidation, "invalid operator ID format %s", operatorID)
	}

	now := time.Now()
	experience := &entity.Experience{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OperatorID:      operatorUUID,
		Name:            req.Name,
		Description:     req.Description,
		Location:        req.Location,
		Price:           req.Price,
		MaxParticipants: req.MaxParticipants,
		DurationHours:   req.DurationHours,
		IsActive:        true,
	}

	if err := s.repo.Experience.Create(ctx, experience); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, err, "create experience")
	}

	s.log.Info("Experience created",
		zap.String("experience_id", experience.ID.String()),
		zap.String("operator_id", operatorID),
		zap.String("name", experience.Name),
	)

	resp := response.ExperienceToResponse(experience)
	return &resp, nil
}

func (s *experienceService) Update(ctx context.Context, operatorID, experienceID string, req *request.UpdateExperienceRequest) (*response.ExperienceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update experience validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed", errs)
	}

	operatorUUID, err := uuid.Parse(operatorID)
	if err != nil {
		return nil, apperr.New(apperr.KindValidation, "invalid operator ID format %s", operatorID)
	}

	id, err := uuid.Parse(experienceID)
	if err != nil {
		return nil, apperr.New(apperr.KindValidation, "invalid experience ID format %s", experienceID)
	}

	experience, err := s.repo.Experience.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, err, "look up experience")
	}
	if experience == nil {
		return nil, apperr.New(apperr.KindNotFound, "experience %s not found", experienceID)
	}

	if experience.OperatorID != operatorUUID {
		return nil, apperr.New(apperr.KindPermission,
			"experience %s does not belong to the requesting operator", experienceID)
	}

	if req.Name != nil {
		experience.Name = *req.Name
	}
	if req.Description != nil {
		experience.Description = *req.Description
	}
	if req.Location != nil {
		experience.Location = *req.Location
	}
	if req.Price != nil {
		experience.Price = *req.Price
	}
	if req.MaxParticipants != nil {
		experience.MaxParticipants = *req.MaxParticipants
	}
	if req.DurationHours != nil {
		experience.DurationHours = *req.DurationHours
	}
	if req.IsActive != nil {
		experience.IsActive = *req.IsActive
	}
	experience.UpdatedAt = time.Now()

	if err := s.repo.Experience.Update(ctx, experience); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, err, "update experience")
	}

	// Any mutation of the experience invalidates cached snapshots and
	// estimates referencing it.
	s.availability.InvalidateExperience(id)
	s.estimates.InvalidateExperience(id)

	s.log.Info("Experience updated",
		zap.String("experience_id", experienceID),
		zap.String("operator_id", operatorID),
	)

	resp := response.ExperienceToResponse(experience)
	return &resp, nil
}
