package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bandroom/backend/internal/app/models"
	"github.com/bandroom/backend/internal/db"
	"github.com/bandroom/backend/internal/pkg/apperrors"
	"github.com/bandroom/backend/internal/pkg/dberrors"
)

// SongRepository handles database operations for songs and their performer
// links in song_students
type SongRepository struct {
	db *pgxpool.Pool
}

// NewSongRepository creates a new SongRepository
func NewSongRepository(pool *pgxpool.Pool) *SongRepository {
	return &SongRepository{db: pool}
}

// Create inserts a new song and its performer links in one transaction
func (r *SongRepository) Create(ctx context.Context, song *models.Song, studentIDs []int64) error {
	query := `
		INSERT INTO songs (title, artist, description, key, bpm, lyrics)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query,
			song.Title,
			song.Artist,
			song.Description,
			song.Key,
			song.BPM,
			song.Lyrics,
		).Scan(&song.ID, &song.CreatedAt, &song.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error creating song: %w", err)
		}
		return linkStudents(ctx, tx, "song_students", "song_id", song.ID, studentIDs)
	})
}

// GetByID retrieves a song with its performers
func (r *SongRepository) GetByID(ctx context.Context, id int64) (*models.Song, error) {
	query := `
		SELECT id, title, artist, description, key, bpm, lyrics, created_at, updated_at
		FROM songs
		WHERE id = $1
	`

	var song models.Song
	err := r.db.QueryRow(ctx, query, id).Scan(
		&song.ID,
		&song.Title,
		&song.Artist,
		&song.Description,
		&song.Key,
		&song.BPM,
		&song.Lyrics,
		&song.CreatedAt,
		&song.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrSongNotFound
		}
		return nil, fmt.Errorf("error retrieving song: %w", err)
	}

	song.Students, err = r.loadStudents(ctx, id)
	if err != nil {
		return nil, err
	}

	return &song, nil
}

// List retrieves all songs by title, without performer links
func (r *SongRepository) List(ctx context.Context) ([]*models.Song, error) {
	query := `
		SELECT id, title, artist, description, key, bpm, lyrics, created_at, updated_at
		FROM songs
		ORDER BY title ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var songs []*models.Song
	for rows.Next() {
		var song models.Song
		err := rows.Scan(
			&song.ID,
			&song.Title,
			&song.Artist,
			&song.Description,
			&song.Key,
			&song.BPM,
			&song.Lyrics,
			&song.CreatedAt,
			&song.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning song row: %w", err)
		}
		songs = append(songs, &song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating song rows: %w", err)
	}

	return songs, nil
}

// Update rewrites a song and, when replaceStudents is set, its performer
// links wholesale, in one transaction
func (r *SongRepository) Update(ctx context.Context, song *models.Song, replaceStudents bool, studentIDs []int64) error {
	query := `
		UPDATE songs
		SET title = $1, artist = $2, description = $3, key = $4, bpm = $5, lyrics = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query,
			song.Title,
			song.Artist,
			song.Description,
			song.Key,
			song.BPM,
			song.Lyrics,
			song.ID,
		).Scan(&song.UpdatedAt)
		if err != nil {
			if err == pgx.ErrNoRows {
				return apperrors.ErrSongNotFound
			}
			return fmt.Errorf("error updating song: %w", err)
		}
		if replaceStudents {
			_, err := tx.Exec(ctx, `DELETE FROM song_students WHERE song_id = $1`, song.ID)
			if err != nil {
				return fmt.Errorf("error clearing song performers: %w", err)
			}
			return linkStudents(ctx, tx, "song_students", "song_id", song.ID, studentIDs)
		}
		return nil
	})
}

// Delete removes a song. Comments and links go with it via ON DELETE CASCADE.
func (r *SongRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM songs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting song: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrSongNotFound
	}
	return nil
}

// ListForStudent retrieves the songs a student performs on
func (r *SongRepository) ListForStudent(ctx context.Context, studentID int64) ([]*models.Song, error) {
	query := `
		SELECT s.id, s.title, s.artist, s.description, s.key, s.bpm, s.lyrics, s.created_at, s.updated_at
		FROM songs s
		JOIN song_students ss ON ss.song_id = s.id
		WHERE ss.student_id = $1
		ORDER BY s.title ASC, s.id ASC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var songs []*models.Song
	for rows.Next() {
		var song models.Song
		err := rows.Scan(
			&song.ID,
			&song.Title,
			&song.Artist,
			&song.Description,
			&song.Key,
			&song.BPM,
			&song.Lyrics,
			&song.CreatedAt,
			&song.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning song row: %w", err)
		}
		songs = append(songs, &song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating song rows: %w", err)
	}

	return songs, nil
}

func (r *SongRepository) loadStudents(ctx context.Context, songID int64) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.name, s.username, s.dob, s.instrument, s.image_url, s.created_at, s.updated_at
		FROM students s
		JOIN song_students ss ON ss.student_id = s.id
		WHERE ss.song_id = $1
		ORDER BY s.name ASC, s.id ASC
	`

	rows, err := r.db.Query(ctx, query, songID)
	if err != nil {
		return nil, fmt.Errorf("error loading song performers: %w", err)
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
			return nil, fmt.Errorf("error scanning performer row: %w", err)
		}
		students = append(students, &student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating performer rows: %w", err)
	}

	return students, nil
}

// linkStudents inserts membership rows for one owning entity. Duplicate ids
// in the input surface as a conflict error instead of a raw pg failure.
func linkStudents(ctx context.Context, tx pgx.Tx, table, ownerColumn string, ownerID int64, studentIDs []int64) error {
	for _, studentID := range studentIDs {
		query := fmt.Sprintf(`INSERT INTO %s (%s, student_id) VALUES ($1, $2)`, table, ownerColumn)
		if _, err := tx.Exec(ctx, query, ownerID, studentID); err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrStudentNotFound
			}
			return fmt.Errorf("error linking student %d: %w", studentID, err)
		}
	}
	return nil
}
