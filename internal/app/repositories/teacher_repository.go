package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bandroom/backend/internal/app/models"
	"github.com/bandroom/backend/internal/pkg/apperrors"
)

// TeacherRepository handles database operations for teacher profiles. The
// instruments column stores the comma-joined tag encoding; it is decoded and
// encoded here so the rest of the app only ever sees the slice form.
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(pool *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{db: pool}
}

// Create inserts a new teacher profile
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (user_id, name, bio, instruments)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		teacher.UserID,
		teacher.Name,
		teacher.Bio,
		models.EncodeInstrumentSet(teacher.Instruments),
	).Scan(&teacher.ID, &teacher.CreatedAt, &teacher.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating teacher: %w", err)
	}

	return nil
}

// GetByID retrieves a teacher by id
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	query := `
		SELECT id, user_id, name, bio, instruments, created_at, updated_at
		FROM teachers
		WHERE id = $1
	`

	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// GetByUserID retrieves the teacher profile linked to a user account.
// Returns (nil, nil) when the user has no teacher profile.
func (r *TeacherRepository) GetByUserID(ctx context.Context, userID int64) (*models.Teacher, error) {
	query := `
		SELECT id, user_id, name, bio, instruments, created_at, updated_at
		FROM teachers
		WHERE user_id = $1
	`

	teacher, err := r.scanOne(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == apperrors.ErrTeacherNotFound {
			return nil, nil
		}
		return nil, err
	}
	return teacher, nil
}

// List retrieves all teachers alphabetically
func (r *TeacherRepository) List(ctx context.Context) ([]*models.Teacher, error) {
	query := `
		SELECT id, user_id, name, bio, instruments, created_at, updated_at
		FROM teachers
		ORDER BY name ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		var teacher models.Teacher
		var instruments string
		err := rows.Scan(
			&teacher.ID,
			&teacher.UserID,
			&teacher.Name,
			&teacher.Bio,
			&instruments,
			&teacher.CreatedAt,
			&teacher.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning teacher row: %w", err)
		}
		teacher.Instruments = models.DecodeInstrumentSet(instruments)
		teachers = append(teachers, &teacher)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teacher rows: %w", err)
	}

	return teachers, nil
}

// Update rewrites a teacher profile
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	query := `
		UPDATE teachers
		SET name = $1, bio = $2, instruments = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		teacher.Name,
		teacher.Bio,
		models.EncodeInstrumentSet(teacher.Instruments),
		teacher.ID,
	).Scan(&teacher.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.ErrTeacherNotFound
		}
		return fmt.Errorf("error updating teacher: %w", err)
	}

	return nil
}

// Delete removes a teacher profile
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting teacher: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}
	return nil
}

func (r *TeacherRepository) scanOne(row pgx.Row) (*models.Teacher, error) {
	var teacher models.Teacher
	var instruments string
	err := row.Scan(
		&teacher.ID,
		&teacher.UserID,
		&teacher.Name,
		&teacher.Bio,
		&instruments,
		&teacher.CreatedAt,
		&teacher.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	teacher.Instruments = models.DecodeInstrumentSet(instruments)
	return &teacher, nil
}
