package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bandroom/backend/internal/app/models"
	"github.com/bandroom/backend/internal/db"
	"github.com/bandroom/backend/internal/pkg/apperrors"
	"github.com/bandroom/backend/internal/pkg/dberrors"
)

// BandRepository handles database operations for bands and their membership
// links in band_students and band_teachers
type BandRepository struct {
	db *pgxpool.Pool
}

// NewBandRepository creates a new BandRepository
func NewBandRepository(pool *pgxpool.Pool) *BandRepository {
	return &BandRepository{db: pool}
}

// Create inserts a new band and its membership links in one transaction
func (r *BandRepository) Create(ctx context.Context, band *models.Band, studentIDs, teacherIDs []int64) error {
	query := `
		INSERT INTO bands (name, age_group, schedule)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query, band.Name, band.AgeGroup, band.Schedule).
			Scan(&band.ID, &band.CreatedAt, &band.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error creating band: %w", err)
		}
		if err := linkStudents(ctx, tx, "band_students", "band_id", band.ID, studentIDs); err != nil {
			return err
		}
		return linkTeachers(ctx, tx, band.ID, teacherIDs)
	})
}

// GetByID retrieves a band with its members
func (r *BandRepository) GetByID(ctx context.Context, id int64) (*models.Band, error) {
	query := `
		SELECT id, name, age_group, schedule, created_at, updated_at
		FROM bands
		WHERE id = $1
	`

	var band models.Band
	err := r.db.QueryRow(ctx, query, id).Scan(
		&band.ID,
		&band.Name,
		&band.AgeGroup,
		&band.Schedule,
		&band.CreatedAt,
		&band.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrBandNotFound
		}
		return nil, fmt.Errorf("error retrieving band: %w", err)
	}

	if band.Students, err = r.loadStudents(ctx, id); err != nil {
		return nil, err
	}
	if band.Teachers, err = r.loadTeachers(ctx, id); err != nil {
		return nil, err
	}

	return &band, nil
}

// List retrieves bands with an optional age group filter, without members
func (r *BandRepository) List(ctx context.Context, ageGroup string) ([]*models.Band, error) {
	queryBuilder := squirrel.Select("id", "name", "age_group", "schedule", "created_at", "updated_at").
		From("bands").
		OrderBy("name ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if ageGroup != "" {
		queryBuilder = queryBuilder.Where("age_group = ?", ageGroup)
	}

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var bands []*models.Band
	for rows.Next() {
		var band models.Band
		err := rows.Scan(
			&band.ID,
			&band.Name,
			&band.AgeGroup,
			&band.Schedule,
			&band.CreatedAt,
			&band.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning band row: %w", err)
		}
		bands = append(bands, &band)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating band rows: %w", err)
	}

	return bands, nil
}

// Update rewrites a band and, when the replace flags are set, its membership
// links wholesale, in one transaction
func (r *BandRepository) Update(ctx context.Context, band *models.Band, replaceStudents bool, studentIDs []int64, replaceTeachers bool, teacherIDs []int64) error {
	query := `
		UPDATE bands
		SET name = $1, age_group = $2, schedule = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query, band.Name, band.AgeGroup, band.Schedule, band.ID).
			Scan(&band.UpdatedAt)
		if err != nil {
			if err == pgx.ErrNoRows {
				return apperrors.ErrBandNotFound
			}
			return fmt.Errorf("error updating band: %w", err)
		}
		if replaceStudents {
			if _, err := tx.Exec(ctx, `DELETE FROM band_students WHERE band_id = $1`, band.ID); err != nil {
				return fmt.Errorf("error clearing band students: %w", err)
			}
			if err := linkStudents(ctx, tx, "band_students", "band_id", band.ID, studentIDs); err != nil {
				return err
			}
		}
		if replaceTeachers {
			if _, err := tx.Exec(ctx, `DELETE FROM band_teachers WHERE band_id = $1`, band.ID); err != nil {
				return fmt.Errorf("error clearing band teachers: %w", err)
			}
			if err := linkTeachers(ctx, tx, band.ID, teacherIDs); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a band. Membership links go with it via ON DELETE CASCADE.
func (r *BandRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM bands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting band: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrBandNotFound
	}
	return nil
}

func (r *BandRepository) loadStudents(ctx context.Context, bandID int64) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.name, s.username, s.dob, s.instrument, s.image_url, s.created_at, s.updated_at
		FROM students s
		JOIN band_students bs ON bs.student_id = s.id
		WHERE bs.band_id = $1
		ORDER BY s.name ASC, s.id ASC
	`

	rows, err := r.db.Query(ctx, query, bandID)
	if err != nil {
		return nil, fmt.Errorf("error loading band students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Username,
			&student.DOB,
			&student.Instrument,
			&student.ImageURL,
			&student.CreatedAt,
			&student.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning band student row: %w", err)
		}
		students = append(students, &student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating band student rows: %w", err)
	}

	return students, nil
}

func (r *BandRepository) loadTeachers(ctx context.Context, bandID int64) ([]*models.Teacher, error) {
	query := `
		SELECT t.id, t.name, t.bio, t.instruments, t.created_at, t.updated_at
		FROM teachers t
		JOIN band_teachers bt ON bt.teacher_id = t.id
		WHERE bt.band_id = $1
		ORDER BY t.name ASC, t.id ASC
	`

	rows, err := r.db.Query(ctx, query, bandID)
	if err != nil {
		return nil, fmt.Errorf("error loading band teachers: %w", err)
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		var teacher models.Teacher
		var instruments string
		err := rows.Scan(
			&teacher.ID,
			&teacher.Name,
			&teacher.Bio,
			&instruments,
			&teacher.CreatedAt,
			&teacher.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning band teacher row: %w", err)
		}
		teacher.Instruments = models.DecodeInstrumentSet(instruments)
		teachers = append(teachers, &teacher)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating band teacher rows: %w", err)
	}

	return teachers, nil
}

func linkTeachers(ctx context.Context, tx pgx.Tx, bandID int64, teacherIDs []int64) error {
	for _, teacherID := range teacherIDs {
		_, err := tx.Exec(ctx, `INSERT INTO band_teachers (band_id, teacher_id) VALUES ($1, $2)`, bandID, teacherID)
		if err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrTeacherNotFound
			}
			return fmt.Errorf("error linking teacher %d: %w", teacherID, err)
		}
	}
	return nil
}
