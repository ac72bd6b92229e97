package usecase

import (
	"context"
	"testing"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/apperr"
	"tourism-booking/pkg/cache"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(utils.DateLayout)
}

func testExperience(id uuid.UUID, price float64, maxParticipants int) *entity.Experience {
	now := time.Now()
	return &entity.Experience{
		Base: entity.Base{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		OperatorID:      uuid.New(),
		Name:            "Sunrise Volcano Hike",
		Location:        "Batur",
		Price:           price,
		MaxParticipants: maxParticipants,
		DurationHours:   6,
		IsActive:        true,
	}
}

func newAvailabilityFixture(expRepo *mockExperienceRepository, resRepo *mockReservationRepository) AvailabilityService {
	snapshots := cache.New[entity.AvailabilitySnapshot](100, time.Minute)
	return NewAvailabilityService(newMockRepository(expRepo, resRepo), snapshots, zap.NewNop())
}

func TestCheckComputesSnapshot(t *testing.T) {
	expID := uuid.New()
	expRepo := &mockExperienceRepository{
		findByIDFunc: func(_ context.Context, id uuid.UUID) (*entity.Experience, error) {
			return testExperience(id, 100000, 10), nil
		},
	}
	resRepo := &mockReservationRepository{
		checkAvailabilityFunc: func(context.Context, uuid.UUID, time.Time) (int, int, error) {
			return 10, 4, nil
		},
	}
	svc := newAvailabilityFixture(expRepo, resRepo)

	snapshot, err := svc.Check(context.Background(), expID.String(), futureDate(7))
	require.NoError(t, err)

	assert.Equal(t, 10, snapshot.MaxCapacity)
	assert.Equal(t, 4, snapshot.ReservedParticipants)
	assert.Equal(t, 6, snapshot.AvailableSpots)
	assert.True(t, snapshot.IsAvailable)
	assert.True(t, snapshot.CanAccommodate(6))
	assert.False(t, snapshot.CanAccommodate(7))
}

func TestCheckOversoldDateYieldsNegativeSpots(t *testing.T) {
	expID := uuid.New()
	expRepo := &mockExperienceRepository{
		findByIDFunc: func(_ context.Context, id uuid.UUID) (*entity.Experience, error) {
			return testExperience(id, 100000, 10), nil
		},
	}
	resRepo := &mockReservationRepository{
		checkAvailabilityFunc: func(context.Context, uuid.UUID, time.Time) (int, int, error) {
			return 10, 12, nil
		},
	}
	svc := newAvailabilityFixture(expRepo, resRepo)

	snapshot, err := svc.Check(context.Background(), expID.String(), futureDate(7))
	require.NoError(t, err)

	// Negative spots are a valid return value signaling oversell.
	assert.Equal(t, -2, snapshot.AvailableSpots)
	assert.False(t, snapshot.IsAvailable)
}

func TestCheckExperienceNotFound(t *testing.T) {
	svc := newAvailabilityFixture(&mockExperienceRepository{}, &mockReservationRepository{})

	_, err := svc.Check(context.Background(), uuid.New().String(), futureDate(7))
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCheckRejectsBadInput(t *testing.T) {
	svc := newAvailabilityFixture(&mockExperienceRepository{}, &mockReservationRepository{})

	tests := []struct {
		name         string
		experienceID string
		date         string
	}{
		{"malformed experience id", "not-a-uuid", futureDate(7)},
		{"malformed date", uuid.New().String(), "07/05/2030"},
		{"impossible calendar date", uuid.New().String(), "2030-02-30"},
		{"past date", uuid.New().String(), "2020-01-01"},
		{"today", uuid.New().String(), time.Now().UTC().Format(utils.DateLayout)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Check(context.Background(), tt.experienceID, tt.date)
			require.Error(t, err)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}
}

func TestCheckMemoizesSnapshots(t *testing.T) {
	expID := uuid.New()
	expRepo := &mockExperienceRepository{
		findByIDFunc: func(_ context.Context, id uuid.UUID) (*entity.Experience, error) {
			return testExperience(id, 100000, 10), nil
		},
	}
	resRepo := &mockReservationRepository{
		checkAvailabilityFunc: func(context.Context, uuid.UUID, time.Time) (int, int, error) {
			return 10, 2, nil
		},
	}
	svc := newAvailabilityFixture(expRepo, resRepo)

	date := futureDate(7)
	first, err := svc.Check(context.Background(), expID.String(), date)
	require.NoError(t, err)
	second, err := svc.Check(context.Background(), expID.String(), date)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, resRepo.checkAvailabilityCalls, "second check should be served from cache")
}

func TestCheckFailuresAreNotCached(t *testing.T) {
	calls := 0
	expRepo := &mockExperienceRepository{
		findByIDFunc: func(_ context.Context, id uuid.UUID) (*entity.Experience, error) {
			calls++
			if calls == 1 {
				return nil, nil
			}
			return testExperience(id, 100000, 10), nil
		},
	}
	resRepo := &mockReservationRepository{
		checkAvailabilityFunc: func(context.Context, uuid.UUID, time.Time) (int, int, error) {
			return 10, 0, nil
		},
	}
	svc := newAvailabilityFixture(expRepo, resRepo)

	expID := uuid.New().String()
	date := futureDate(7)

	_, err := svc.Check(context.Background(), expID, date)
	require.Error(t, err)

	// The experience appears afterwards; the earlier not-found must not
	// have been memoized.
	snapshot, err := svc.Check(context.Background(), expID, date)
	require.NoError(t, err)
	assert.Equal(t, 10, snapshot.AvailableSpots)
}

func TestInvalidateExperienceDropsSnapshot(t *testing.T) {
	expID := uuid.New()
	expRepo := &mockExperienceRepository{
		findByIDFunc: func(_ context.Context, id uuid.UUID) (*entity.Experience, error) {
			return testExperience(id, 100000, 10), nil
		},
	}
	resRepo := &mockReservationRepository{
		checkAvailabilityFunc: func(context.Context, uuid.UUID, time.Time) (int, int, error) {
			return 10, 2, nil
		},
	}
	svc := newAvailabilityFixture(expRepo, resRepo)

	date := futureDate(7)
	_, err := svc.Check(context.Background(), expID.String(), date)
	require.NoError(t, err)

	svc.InvalidateExperience(expID)

	_, err = svc.Check(context.Background(), expID.String(), date)
	require.NoError(t, err)
	assert.Equal(t, 2, resRepo.checkAvailabilityCalls, "invalidation should force a recomputation")
}
