package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/dto/response"
	"tourism-booking/internal/event"
	"tourism-booking/pkg/apperr"
	"tourism-booking/pkg/cache"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReservationService interface {
	// Estimation (public)
	Estimate(ctx context.Context, req *request.EstimateRequest) (*response.EstimateResponse, error)
	CheckAvailability(ctx context.Context, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error)

	// Lifecycle (authenticated)
	Create(ctx context.Context, userID string, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	Confirm(ctx context.Context, reservationID string) (*response.ReservationResponse, error)
	Cancel(ctx context.Context, reservationID, userID string) (*response.ReservationResponse, error)
	Complete(ctx context.Context, reservationID string) (*response.ReservationResponse, error)

	// Reads (authenticated)
	GetByID(ctx context.Context, reservationID string) (*response.ReservationResponse, error)
	GetUserReservations(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error)
}

type reservationService struct {
	repo         *repository.Repository
	pricing      PricingEngine
	availability AvailabilityService
	estimates    *cache.Cache[response.EstimateResponse]
	events       event.Sink
	cfg          utils.ReservationConfig
	log          *zap.Logger
}

func NewReservationService(
	repo *repository.Repository,
	pricing PricingEngine,
	availability AvailabilityService,
	estimates *cache.Cache[response.EstimateResponse],
	events event.Sink,
	cfg utils.ReservationConfig,
	log *zap.Logger,
) ReservationService {
	return &reservationService{
		repo:         repo,
		pricing:      pricing,
		availability: availability,
		estimates:    estimates,
		events:       events,
		cfg:          cfg,
		log:          log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) Estimate(ctx context.Context, req *request.EstimateRequest) (*response.EstimateResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Estimate validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed", errs)
	}

	expID, err := uuid.Parse(req.ExperienceID)
	if err != nil {
		return nil, apperr.Validation("invalid experience ID", map[string]string{
			"experience_id": "Must be a valid UUID",
		})
	}

	key := cache.Key{ExperienceID: expID, Extra: estimateKeyExtra(req.Participants, req.AdditionalServices)}
	if cached, ok := s.estimates.Get(key); ok {
		return &cached, nil
	}

	experience, err := s.repo.Experience.FindByID(ctx, expID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, err, "look up experience")
	}
	if experience == nil {
		return nil, apperr.New(apperr.KindNotFound, "experience %s not found", req.ExperienceID)
	}

	breakdown, err := s.pricing.Breakdown(experience.Price, req.Participants, req.AdditionalServices)
	if err != nil {
		return nil, err
	}

	resp := response.EstimateResponse{
		ExperienceID:           experience.ID.String(),
		ExperienceName:         experience.Name,
		Participants:           req.Participants,
		PricePerParticipant:    experience.Price,
		Subtotal:               breakdown.Subtotal,
		Services:               response.ServiceChargesToResponse(breakdown.Services),
		AdditionalServicesCost: breakdown.AdditionalServicesCost,
		TotalBeforeDiscount:    breakdown.TotalBeforeDiscount,
		DiscountPercentage:     breakdown.DiscountPercentage,
		DiscountAmount:         breakdown.DiscountAmount,
		TotalPrice:             breakdown.TotalPrice,
		InvalidServicesIgnored: breakdown.InvalidServicesIgnored,
	}

	s.estimates.Set(key, resp)

	s.log.Info("Estimate computed",
		zap.String("experience_id", req.ExperienceID),
		zap.Int("participants", req.Participants),
		zap.Float64("total_price", resp.TotalPrice),
	)

	return &resp, nil
}

func (s *reservationService) CheckAvailability(ctx context.Context, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Availability validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed", errs)
	}

	snapshot, err := s.availability.Check(ctx, req.ExperienceID, req.Date)
	if err != nil {
		return nil, err
	}

	return &response.AvailabilityResponse{
		ExperienceID:          snapshot.ExperienceID.String(),
		Date:                  snapshot.Date,
		MaxCapacity:           snapshot.MaxCapacity,
		ReservedParticipants:  snapshot.ReservedParticipants,
		AvailableSpots:        snapshot.AvailableSpots,
		IsAvailable:           snapshot.IsAvailable,
		RequestedParticipants: req.Participants,
		CanAccommodate:        snapshot.CanAccommodate(req.Participants),
	}, nil
}

func (s *reservationService) Create(ctx context.Context, userID string, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed", errs)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.New(apperr.KindValidation, "invalid user ID format %s", userID)
	}

	expID, err := uuid.Parse(req.ExperienceID)
	if err != nil {
		return nil, apperr.Validation("invalid experience ID", map[string]string{
			"experience_id": "Must be a valid UUID",
		})
	}

	day, err := ParseReservationDate(req.Date)
	if err != nil {
		return nil, err
	}

	experience, err := s.repo.Experience.FindByID(ctx, expID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, err, "look up experience")
	}
	if experience == nil {
		return nil, apperr.New(apperr.KindNotFound, "experience %s not found", req.ExperienceID)
	}
	if !experience.IsActive {
		return nil, apperr.New(apperr.KindState, "experience %s is not open for reservations", req.ExperienceID)
	}

	snapshot, err := s.availability.Check(ctx, req.ExperienceID, req.Date)
	if err != nil {
		return nil, err
	}

	if !snapshot.CanAccommodate(req.Participants) {
		if !s.cfg.AllowOverbooking {
			return nil, apperr.New(apperr.KindCapacity,
				"experience %s has %d spots left on %s, requested %d",
				req.ExperienceID, snapshot.AvailableSpots, req.Date, req.Participants)
		}
		s.log.Warn("Reservation exceeds remaining capacity, overbooking allowed",
			zap.String("experience_id", req.ExperienceID),
			zap.String("date", req.Date),
			zap.Int("available_spots", snapshot.AvailableSpots),
			zap.Int("requested", req.Participants),
		)
	}

	breakdown, err := s.pricing.Breakdown(experience.Price, req.Participants, req.AdditionalServices)
	if err != nil {
		return nil, err
	}

	// Persist only the add-ons that survived catalog validation.
	validServices := make([]string, len(breakdown.Services))
	for i, svc := range breakdown.Services {
		validServices[i] = svc.Type
	}

	now := time.Now()
	reservation := &entity.Reservation{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Code:                   utils.GenerateReservationCode(),
		ExperienceID:           expID,
		UserID:                 userUUID,
		Date:                   day,
		Participants:           req.Participants,
		AdditionalServices:     validServices,
		Services:               breakdown.Services,
		BasePrice:              experience.Price,
		AdditionalServicesCost: breakdown.AdditionalServicesCost,
		DiscountPercentage:     breakdown.DiscountPercentage,
		DiscountAmount:         breakdown.DiscountAmount,
		TotalPrice:             breakdown.TotalPrice,
		Status:                 entity.ReservationStatusPending,
	}

	if err := s.repo.Reservation.Create(ctx, reservation); err != nil {
		s.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("experience_id", req.ExperienceID),
		)
		return nil, apperr.Wrap(apperr.KindInternal, err, "create reservation")
	}

	s.invalidateExperienceCaches(expID)
	s.publish(ctx, event.TypeReservationCreated, reservation)

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("code", reservation.Code),
		zap.String("user_id", userID),
		zap.String("experience_id", req.ExperienceID),
		zap.Int("participants", req.Participants),
		zap.Float64("total_price", reservation.TotalPrice),
	)

	resp := response.ReservationToResponse(reservation, experience.Name)
	return &resp, nil
}

func (s *reservationService) Confirm(ctx context.Context, reservationID string) (*response.ReservationResponse, error) {
	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if reservation.Status != entity.ReservationStatusPending {
		return nil, apperr.New(apperr.KindState,
			"reservation status is %s, only pending reservations can be confirmed", reservation.Status)
	}

	if err := s.repo.Reservation.UpdateStatus(ctx, reservation.ID, entity.ReservationStatusConfirmed, nil); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, err, "confirm reservation")
	}
	reservation.Status = entity.ReservationStatusConfirmed

	// Confirmed participants feed the availability sums.
	s.invalidateExperienceCaches(reservation.ExperienceID)
	s.publish(ctx, event.TypeReservationConfirmed, reservation)

	s.log.Info("Reservation confirmed",
		zap.String("reservation_id", reservationID),
		zap.String("code", reservation.Code),
	)

	resp := response.ReservationToResponse(reservation, s.experienceName(ctx, reservation.ExperienceID))
	return &resp, nil
}

func (s *reservationService) Cancel(ctx context.Context, reservationID, userID string) (*response.ReservationResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.New(apperr.KindValidation, "invalid user ID format %s", userID)
	}

	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if reservation.UserID != userUUID {
		return nil, apperr.New(apperr.KindPermission,
			"reservation %s does not belong to the requesting user", reservationID)
	}

	if reservation.Status != entity.ReservationStatusPending && reservation.Status != entity.ReservationStatusConfirmed {
		return nil, apperr.New(apperr.KindState,
			"reservation status is %s, cannot cancel", reservation.Status)
	}

	window := time.Duration(s.cfg.CancellationWindowHours) * time.Hour
	if time.Until(reservation.Date) < window {
		return nil, apperr.New(apperr.KindState,
			"cancellation window closed: reservations can only be cancelled at least %d hours in advance",
			s.cfg.CancellationWindowHours)
	}

	now := time.Now()
	if err := s.repo.Reservation.UpdateStatus(ctx, reservation.ID, entity.ReservationStatusCancelled, &now); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, err, "cancel reservation")
	}
	reservation.Status = entity.ReservationStatusCancelled
	reservation.CancelledAt = &now

	s.invalidateExperienceCaches(reservation.ExperienceID)
	s.publish(ctx, event.TypeReservationCancelled, reservation)

	s.log.Info("Reservation cancelled",
		zap.String("reservation_id", reservationID),
		zap.String("code", reservation.Code),
		zap.String("user_id", userID),
	)

	resp := response.ReservationToResponse(reservation, s.experienceName(ctx, reservation.ExperienceID))
	return &resp, nil
}

func (s *reservationService) Complete(ctx context.Context, reservationID string) (*response.ReservationResponse, error) {
	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if reservation.Status != entity.ReservationStatusConfirmed {
		return nil, apperr.New(apperr.KindState,
			"reservation status is %s, only confirmed reservations can be completed", reservation.Status)
	}

	if err := s.repo.Reservation.UpdateStatus(ctx, reservation.ID, entity.ReservationStatusCompleted, nil); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, err, "complete reservation")
	}
	reservation.Status = entity.ReservationStatusCompleted

	s.publish(ctx, event.TypeReservationCompleted, reservation)

	s.log.Info("Reservation completed",
		zap.String("reservation_id", reservationID),
		zap.String("code", reservation.Code),
	)

	resp := response.ReservationToResponse(reservation, s.experienceName(ctx, reservation.ExperienceID))
	return &resp, nil
}

func (s *reservationService) GetByID(ctx context.Context, reservationID string) (*response.ReservationResponse, error) {
	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	resp := response.ReservationToResponse(reservation, s.experienceName(ctx, reservation.ExperienceID))
	return &resp, nil
}

func (s *reservationService) GetUserReservations(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.New(apperr.KindValidation, "invalid user ID format %s", userID)
	}

	reservations, err := s.repo.Reservation.FindByUserID(ctx, userUUID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get user reservations",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, apperr.Wrap(apperr.KindInternal, err, "get user reservations")
	}

	total, err := s.repo.Reservation.CountByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to count user reservations", zap.Error(err))
		return nil, apperr.Wrap(apperr.KindInternal, err, "count user reservations")
	}

	names := make(map[uuid.UUID]string)
	reservationResponses := make([]response.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		name, ok := names[reservation.ExperienceID]
		if !ok {
			name = s.experienceName(ctx, reservation.ExperienceID)
			names[reservation.ExperienceID] = name
		}
		reservationResponses[i] = response.ReservationToResponse(reservation, name)
	}

	return response.NewPaginatedResponse(reservationResponses, req.Page, req.PerPage, total), nil
}

// ==================== HELPER METHODS ====================

func (s *reservationService) findReservation(ctx context.Context, reservationID string) (*entity.Reservation, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, apperr.New(apperr.KindValidation, "invalid reservation ID format %s", reservationID)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, err, "look up reservation")
	}
	if reservation == nil {
		return nil, apperr.New(apperr.KindNotFound, "reservation %s not found", reservationID)
	}

	return reservation, nil
}

func (s *reservationService) experienceName(ctx context.Context, experienceID uuid.UUID) string {
	experience, _ := s.repo.Experience.FindByID(ctx, experienceID)
	if experience == nil {
		return ""
	}
	return experience.Name
}

// invalidateExperienceCaches drops every cached snapshot and estimate
// referencing the experience. Coarse on purpose: correctness over hit rate.
func (s *reservationService) invalidateExperienceCaches(experienceID uuid.UUID) {
	s.availability.InvalidateExperience(experienceID)
	s.estimates.InvalidateExperience(experienceID)
}

func (s *reservationService) publish(ctx context.Context, eventType event.Type, reservation *entity.Reservation) {
	s.events.Publish(ctx, event.Event{
		Type:          eventType,
		ReservationID: reservation.ID,
		ExperienceID:  reservation.ExperienceID,
		UserID:        reservation.UserID,
		OccurredAt:    time.Now(),
	})
}

func estimateKeyExtra(participants int, additionalServices []string) string {
	sorted := make([]string, len(additionalServices))
	copy(sorted, additionalServices)
	sort.Strings(sorted)
	return fmt.Sprintf("p=%d|s=%s", participants, strings.Join(sorted, ","))
}
