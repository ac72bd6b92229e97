package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Reservation, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	Update(ctx context.Context, reservation *entity.Reservation) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReservationStatus, cancelledAt *time.Time) error

	// CheckAvailability returns the experience's capacity together with the
	// sum of confirmed participants for the given calendar date.
	CheckAvailability(ctx context.Context, experienceID uuid.UUID, date time.Time) (maxParticipants, reservedParticipants int, err error)
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

const reservationColumns = `id, code, experience_id, user_id, date, participants,
	additional_services, services, base_price, additional_services_cost,
	discount_percentage, discount_amount, total_price, status, cancelled_at,
	created_at, updated_at`

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (` + reservationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	servicesJSON, err := json.Marshal(reservation.Services)
	if err != nil {
		return fmt.Errorf("encode reservation services: %w", err)
	}

	_, err = r.db.Exec(ctx, query,
		reservation.ID,
		reservation.Code,
		reservation.ExperienceID,
		reservation.UserID,
		reservation.Date,
		reservation.Participants,
		reservation.AdditionalServices,
		servicesJSON,
		reservation.BasePrice,
		reservation.AdditionalServicesCost,
		reservation.DiscountPercentage,
		reservation.DiscountAmount,
		reservation.TotalPrice,
		reservation.Status,
		reservation.CancelledAt,
		reservation.CreatedAt,
		reservation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("code", reservation.Code),
			zap.String("user_id", reservation.UserID.String()),
		)
		return fmt.Errorf("create reservation %s: %w", reservation.Code, err)
	}

	return nil
}

func (r *reservationRepository) scanReservation(row pgx.Row) (*entity.Reservation, error) {
	var reservation entity.Reservation
	var servicesJSON []byte

	err := row.Scan(
		&reservation.ID,
		&reservation.Code,
		&reservation.ExperienceID,
		&reservation.UserID,
		&reservation.Date,
		&reservation.Participants,
		&reservation.AdditionalServices,
		&servicesJSON,
		&reservation.BasePrice,
		&reservation.AdditionalServicesCost,
		&reservation.DiscountPercentage,
		&reservation.DiscountAmount,
		&reservation.TotalPrice,
		&reservation.Status,
		&reservation.CancelledAt,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Decode the jsonb detail once, at the repository boundary.
	if len(servicesJSON) > 0 {
		if err := json.Unmarshal(servicesJSON, &reservation.Services); err != nil {
			return nil, fmt.Errorf("decode reservation services: %w", err)
		}
	}

	return &reservation, nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	reservation, err := r.scanReservation(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return reservation, nil
}

func (r *reservationRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reservations by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find reservations by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		reservation, err := r.scanReservation(rows)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, reservation)
	}

	return reservations, nil
}

func (r *reservationRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reservations WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reservations by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count reservations by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *reservationRepository) Update(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		UPDATE reservations
		SET date = $2, participants = $3, additional_services = $4, services = $5,
		    base_price = $6, additional_services_cost = $7, discount_percentage = $8,
		    discount_amount = $9, total_price = $10, status = $11, cancelled_at = $12,
		    updated_at = $13
		WHERE id = $1
	`

	servicesJSON, err := json.Marshal(reservation.Services)
	if err != nil {
		return fmt.Errorf("encode reservation services: %w", err)
	}

	result, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.Date,
		reservation.Participants,
		reservation.AdditionalServices,
		servicesJSON,
		reservation.BasePrice,
		reservation.AdditionalServicesCost,
		reservation.DiscountPercentage,
		reservation.DiscountAmount,
		reservation.TotalPrice,
		reservation.Status,
		reservation.CancelledAt,
		reservation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update reservation",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
		)
		return fmt.Errorf("update reservation %s: %w", reservation.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", reservation.ID.String())
	}

	return nil
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReservationStatus, cancelledAt *time.Time) error {
	query := `
		UPDATE reservations
		SET status = $2, cancelled_at = COALESCE($3, cancelled_at), updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, status, cancelledAt)
	if err != nil {
		r.log.Error("Failed to update reservation status",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update reservation %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", id.String())
	}

	return nil
}

func (r *reservationRepository) CheckAvailability(ctx context.Context, experienceID uuid.UUID, date time.Time) (int, int, error) {
	query := `
		SELECT e.max_participants,
		       COALESCE(SUM(r.participants) FILTER (WHERE r.status = 'confirmed'), 0)
		FROM experiences e
		LEFT JOIN reservations r ON r.experience_id = e.id AND r.date = $2
		WHERE e.id = $1
		GROUP BY e.max_participants
	`

	var maxParticipants, reservedParticipants int
	err := r.db.QueryRow(ctx, query, experienceID, date).Scan(&maxParticipants, &reservedParticipants)
	if err != nil {
		r.log.Error("Failed to check availability",
			zap.Error(err),
			zap.String("experience_id", experienceID.String()),
			zap.Time("date", date),
		)
		return 0, 0, fmt.Errorf("check availability for experience %s: %w", experienceID.String(), err)
	}

	return maxParticipants, reservedParticipants, nil
}
