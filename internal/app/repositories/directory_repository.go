package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DirectoryRepository answers existence questions about the school roster.
// Comment validation uses it to vet scope targets and mention ids without
// loading full rows.
type DirectoryRepository struct {
	db *pgxpool.Pool
}

// NewDirectoryRepository creates a new DirectoryRepository
func NewDirectoryRepository(pool *pgxpool.Pool) *DirectoryRepository {
	return &DirectoryRepository{db: pool}
}

// TeacherExists reports whether a teacher row exists with the given id
func (r *DirectoryRepository) TeacherExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "teachers", id)
}

// StudentExists reports whether a student row exists with the given id
func (r *DirectoryRepository) StudentExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "students", id)
}

// SongExists reports whether a song row exists with the given id
func (r *DirectoryRepository) SongExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "songs", id)
}

func (r *DirectoryRepository) exists(ctx context.Context, table string, id int64) (bool, error) {
	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, table)
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking %s existence: %w", table, err)
	}
	return exists, nil
}

// MissingStudents returns the subset of ids that have no student row,
// in the order they were given
func (r *DirectoryRepository) MissingStudents(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `SELECT id FROM students WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("error checking student ids: %w", err)
	}
	defer rows.Close()

	found := make(map[int64]struct{}, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning student id: %w", err)
		}
		found[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student ids: %w", err)
	}

	var missing []int64
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
