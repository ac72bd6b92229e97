package usecase

import (
	"context"
	"sync"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/event"

	"github.com/google/uuid"
)

// Mock repositories for testing

type mockExperienceRepository struct {
	createFunc        func(ctx context.Context, experience *entity.Experience) error
	findByIDFunc      func(ctx context.Context, id uuid.UUID) (*entity.Experience, error)
	findAllActiveFunc func(ctx context.Context, limit, offset int) ([]*entity.Experience, error)
	countActiveFunc   func(ctx context.Context) (int64, error)
	updateFunc        func(ctx context.Context, experience *entity.Experience) error

	findByIDCalls int
}

func (m *mockExperienceRepository) Create(ctx context.Context, experience *entity.Experience) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, experience)
	}
	return nil
}

func (m *mockExperienceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Experience, error) {
	m.findByIDCalls++
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockExperienceRepository) FindAllActive(ctx context.Context, limit, offset int) ([]*entity.Experience, error) {
	if m.findAllActiveFunc != nil {
		return m.findAllActiveFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockExperienceRepository) CountActive(ctx context.Context) (int64, error) {
	if m.countActiveFunc != nil {
		return m.countActiveFunc(ctx)
	}
	return 0, nil
}

func (m *mockExperienceRepository) Update(ctx context.Context, experience *entity.Experience) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, experience)
	}
	return nil
}

type mockReservationRepository struct {
	createFunc            func(ctx context.Context, reservation *entity.Reservation) error
	findByIDFunc          func(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	findByUserIDFunc      func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Reservation, error)
	countByUserIDFunc     func(ctx context.Context, userID uuid.UUID) (int64, error)
	updateFunc            func(ctx context.Context, reservation *entity.Reservation) error
	updateStatusFunc      func(ctx context.Context, id uuid.UUID, status entity.ReservationStatus, cancelledAt *time.Time) error
	checkAvailabilityFunc func(ctx context.Context, experienceID uuid.UUID, date time.Time) (int, int, error)

	checkAvailabilityCalls int
}

func (m *mockReservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, reservation)
	}
	return nil
}

func (m *mockReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockReservationRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Reservation, error) {
	if m.findByUserIDFunc != nil {
		return m.findByUserIDFunc(ctx, userID, limit, offset)
	}
	return nil, nil
}

func (m *mockReservationRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.countByUserIDFunc != nil {
		return m.countByUserIDFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockReservationRepository) Update(ctx context.Context, reservation *entity.Reservation) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, reservation)
	}
	return nil
}

func (m *mockReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReservationStatus, cancelledAt *time.Time) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status, cancelledAt)
	}
	return nil
}

func (m *mockReservationRepository) CheckAvailability(ctx context.Context, experienceID uuid.UUID, date time.Time) (int, int, error) {
	m.checkAvailabilityCalls++
	if m.checkAvailabilityFunc != nil {
		return m.checkAvailabilityFunc(ctx, experienceID, date)
	}
	return 0, 0, nil
}

type mockSessionRepository struct {
	findValidSessionFunc func(ctx context.Context, token string) (*entity.Session, error)
}

func (m *mockSessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	if m.findValidSessionFunc != nil {
		return m.findValidSessionFunc(ctx, token)
	}
	return nil, nil
}

func newMockRepository(expRepo *mockExperienceRepository, resRepo *mockReservationRepository) *repository.Repository {
	return &repository.Repository{
		Session:     &mockSessionRepository{},
		Experience:  expRepo,
		Reservation: resRepo,
	}
}

// recordingSink collects published events for assertions.
type recordingSink struct {
	mu     sync.Mutex
	events []event.Event
}

func (s *recordingSink) Publish(_ context.Context, evt event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
}

func (s *recordingSink) Events() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]event.Event, len(s.events))
	copy(out, s.events)
	return out
}
