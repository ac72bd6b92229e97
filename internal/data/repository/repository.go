package repository

import (
	"tourism-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Session     SessionRepository
	Experience  ExperienceRepository
	Reservation ReservationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Session:     NewSessionRepository(db, log),
		Experience:  NewExperienceRepository(db, log),
		Reservation: NewReservationRepository(db, log),
	}
}
