package usecase

import (
	"context"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/pkg/apperr"
	"tourism-booking/pkg/cache"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AvailabilityService derives the capacity state of an experience on a
// calendar date, memoizing successful snapshots per (experience, date).
type AvailabilityService interface {
	Check(ctx context.Context, experienceID, date string) (*entity.AvailabilitySnapshot, error)
	InvalidateExperience(experienceID uuid.UUID)
}

type availabilityService struct {
	repo  *repository.Repository
	cache *cache.Cache[entity.AvailabilitySnapshot]
	log   *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, snapshots *cache.Cache[entity.AvailabilitySnapshot], log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo:  repo,
		cache: snapshots,
		log:   log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) Check(ctx context.Context, experienceID, date string) (*entity.AvailabilitySnapshot, error) {
	expID, err := uuid.Parse(experienceID)
	if err != nil {
		return nil, apperr.Validation("invalid experience ID", map[string]string{
			"experience_id": "Must be a valid UUID",
		})
	}

	day, err := ParseReservationDate(date)
	if err != nil {
		return nil, err
	}

	key := cache.Key{ExperienceID: expID, Date: date}
	if snapshot, ok := s.cache.Get(key); ok {
		return &snapshot, nil
	}

	experience, err := s.repo.Experience.FindByID(ctx, expID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, err, "look up experience")
	}
	if experience == nil {
		return nil, apperr.New(apperr.KindNotFound, "experience %s not found", experienceID)
	}

	maxParticipants, reservedParticipants, err := s.repo.Reservation.CheckAvailability(ctx, expID, day)
	if err != nil {
		s.log.Error("Failed to check availability",
			zap.Error(err),
			zap.String("experience_id", experienceID),
			zap.String("date", date),
		)
		return nil, apperr.Wrap(apperr.KindInternal, err, "check availability")
	}

	snapshot := entity.AvailabilitySnapshot{
		ExperienceID:         expID,
		Date:                 date,
		MaxCapacity:          maxParticipants,
		ReservedParticipants: reservedParticipants,
		AvailableSpots:       maxParticipants - reservedParticipants,
		IsAvailable:          maxParticipants-reservedParticipants > 0,
	}

	// Only successful lookups are memoized; failures are never cached.
	s.cache.Set(key, snapshot)

	s.log.Debug("Availability computed",
		zap.String("experience_id", experienceID),
		zap.String("date", date),
		zap.Int("max_capacity", snapshot.MaxCapacity),
		zap.Int("reserved", snapshot.ReservedParticipants),
		zap.Int("available", snapshot.AvailableSpots),
	)

	return &snapshot, nil
}

func (s *availabilityService) InvalidateExperience(experienceID uuid.UUID) {
	removed := s.cache.InvalidateExperience(experienceID)
	if removed > 0 {
		s.log.Debug("Availability cache invalidated",
			zap.String("experience_id", experienceID.String()),
			zap.Int("entries", removed),
		)
	}
}

// ParseReservationDate validates a calendar date string and rejects dates
// that are not strictly after today at midnight (UTC).
func ParseReservationDate(date string) (time.Time, error) {
	day, err := time.Parse(utils.DateLayout, date)
	if err != nil {
		return time.Time{}, apperr.Validation("invalid reservation date", map[string]string{
			"date": "Must be a valid calendar date in YYYY-MM-DD format",
		})
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !day.After(today) {
		return time.Time{}, apperr.Validation("invalid reservation date", map[string]string{
			"date": "Reservation date must be in the future",
		})
	}

	return day, nil
}
