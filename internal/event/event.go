package event

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Type tags a reservation lifecycle event.
type Type string

const (
	TypeReservationCreated   Type = "reservation.created"
	TypeReservationConfirmed Type = "reservation.confirmed"
	TypeReservationCancelled Type = "reservation.cancelled"
	TypeReservationCompleted Type = "reservation.completed"
)

type Event struct {
	Type          Type
	ReservationID uuid.UUID
	ExperienceID  uuid.UUID
	UserID        uuid.UUID
	OccurredAt    time.Time
}

// Sink receives lifecycle events. The engine publishes through a Sink so
// its core logic carries no dependency on the notification mechanism.
type Sink interface {
	Publish(ctx context.Context, evt Event)
}

// LogSink publishes events to the application log.
type LogSink struct {
	log *zap.Logger
}

func NewLogSink(log *zap.Logger) *LogSink {
	return &LogSink{
		log: log.With(zap.String("sink", "log")),
	}
}

func (s *LogSink) Publish(_ context.Context, evt Event) {
	s.log.Info("Reservation event",
		zap.String("type", string(evt.Type)),
		zap.String("reservation_id", evt.ReservationID.String()),
		zap.String("experience_id", evt.ExperienceID.String()),
		zap.String("user_id", evt.UserID.String()),
		zap.Time("occurred_at", evt.OccurredAt),
	)
}
