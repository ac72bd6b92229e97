package repository

import (
	"context"
	"fmt"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ExperienceRepository interface {
	Create(ctx context.Context, experience *entity.Experience) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Experience, error)
	FindAllActive(ctx context.Context, limit, offset int) ([]*entity.Experience, error)
	CountActive(ctx context.Context) (int64, error)
	Update(ctx context.Context, experience *entity.Experience) error
}

type experienceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewExperienceRepository(db database.PgxIface, log *zap.Logger) ExperienceRepository {
	return &experienceRepository{
		db:  db,
		log: log.With(zap.String("repository", "experience")),
	}
}

func (r *experienceRepository) Create(ctx context.Context, experience *entity.Experience) error {
	query := `
		INSERT INTO experiences (id, operator_id, name, description, location, price,
		                         max_participants, duration_hours, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		experience.ID,
		experience.OperatorID,
		experience.Name,
		experience.Description,
		experience.Location,
		experience.Price,
		experience.MaxParticipants,
		experience.DurationHours,
		experience.IsActive,
		experience.CreatedAt,
		experience.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create experience",
			zap.Error(err),
			zap.String("operator_id", experience.OperatorID.String()),
			zap.String("name", experience.Name),
		)
		return fmt.Errorf("create experience %s: %w", experience.Name, err)
	}

	return nil
}

func (r *experienceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Experience, error) {
	query := `
		SELECT id, operator_id, name, description, location, price,
		       max_participants, duration_hours, is_active, created_at, updated_at
		FROM experiences
		WHERE id = $1 AND deleted_at IS NULL
	`

	var experience entity.Experience
	err := r.db.QueryRow(ctx, query, id).Scan(
		&experience.ID,
		&experience.OperatorID,
		&experience.Name,
		&experience.Description,
		&experience.Location,
		&experience.Price,
		&experience.MaxParticipants,
		&experience.DurationHours,
		&experience.IsActive,
		&experience.CreatedAt,
		&experience.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find experience by ID",
			zap.Error(err),
			zap.String("experience_id", id.String()),
		)
		return nil, fmt.Errorf("find experience by ID %s: %w", id.String(), err)
	}

	return &experience, nil
}

func (r *experienceRepository) FindAllActive(ctx context.Context, limit, offset int) ([]*entity.Experience, error) {
	query := `
		SELECT id, operator_id, name, description, location, price,
		       max_participants, duration_hours, is_active, created_at, updated_at
		FROM experiences
		WHERE is_active = true AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find active experiences",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find active experiences: %w", err)
	}
	defer rows.Close()

	var experiences []*entity.Experience
	for rows.Next() {
		var experience entity.Experience
		err := rows.Scan(
			&experience.ID,
			&experience.OperatorID,
			&experience.Name,
			&experience.Description,
			&experience.Location,
			&experience.Price,
			&experience.MaxParticipants,
			&experience.DurationHours,
			&experience.IsActive,
			&experience.CreatedAt,
			&experience.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan experience row", zap.Error(err))
			return nil, fmt.Errorf("scan experience row: %w", err)
		}
		experiences = append(experiences, &experience)
	}

	return experiences, nil
}

func (r *experienceRepository) CountActive(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM experiences WHERE is_active = true AND deleted_at IS NULL`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count active experiences", zap.Error(err))
		return 0, fmt.Errorf("count active experiences: %w", err)
	}

	return count, nil
}

func (r *experienceRepository) Update(ctx context.Context, experience *entity.Experience) error {
	query := `
		UPDATE experiences
		SET name = $2, description = $3, location = $4, price = $5,
		    max_participants = $6, duration_hours = $7, is_active = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		experience.ID,
		experience.Name,
		experience.Description,
		experience.Location,
		experience.Price,
		experience.MaxParticipants,
		experience.DurationHours,
		experience.IsActive,
		experience.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update experience",
			zap.Error(err),
			zap.String("experience_id", experience.ID.String()),
		)
		return fmt.Errorf("update experience %s: %w", experience.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("experience %s not found", experience.ID.String())
	}

	return nil
}
