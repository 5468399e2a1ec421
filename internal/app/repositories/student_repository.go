package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bandroom/backend/internal/app/models"
	"github.com/bandroom/backend/internal/pkg/apperrors"
	"github.com/bandroom/backend/internal/pkg/dberrors"
)

// StudentRepository handles database operations for student profiles
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: pool}
}

// Create inserts a new student profile
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (user_id, name, username, dob, instrument, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.UserID,
		student.Name,
		student.Username,
		student.DOB,
		student.Instrument,
		student.ImageURL,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by id
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, user_id, name, username, dob, instrument, image_url, created_at, updated_at
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.UserID,
		&student.Name,
		&student.Username,
		&student.DOB,
		&student.Instrument,
		&student.ImageURL,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// List retrieves students with optional instrument and name filters,
// alphabetically, with the total row count for pagination
func (r *StudentRepository) List(ctx context.Context, instrument, search string, offset uint64, limit int) ([]*models.Student, int64, error) {
	queryBuilder := squirrel.Select(
		"id", "user_id", "name", "username", "dob", "instrument", "image_url", "created_at", "updated_at",
	).
		From("students").
		OrderBy("name ASC", "id ASC").
		Offset(offset).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	countBuilder := squirrel.Select("COUNT(*)").
		From("students").
		PlaceholderFormat(squirrel.Dollar)

	if instrument != "" {
		queryBuilder = queryBuilder.Where("instrument = ?", instrument)
		countBuilder = countBuilder.Where("instrument = ?", instrument)
	}
	if search != "" {
		pattern := "%" + search + "%"
		queryBuilder = queryBuilder.Where("(name ILIKE ? OR username ILIKE ?)", pattern, pattern)
		countBuilder = countBuilder.Where("(name ILIKE ? OR username ILIKE ?)", pattern, pattern)
	}

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		err := rows.Scan(
			&student.ID,
			&student.UserID,
			&student.Name,
			&student.Username,
			&student.DOB,
			&student.Instrument,
			&student.ImageURL,
			&student.CreatedAt,
			&student.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, &student)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, total, nil
}

// Update rewrites a student profile
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, username = $2, dob = $3, instrument = $4, image_url = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.Name,
		student.Username,
		student.DOB,
		student.Instrument,
		student.ImageURL,
		student.ID,
	).Scan(&student.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.ErrStudentNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	return nil
}

// Delete removes a student profile
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
