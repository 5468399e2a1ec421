package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bandroom/backend/internal/app/models"
	"github.com/bandroom/backend/internal/db"
)

// CommentRepository handles database operations for student and song comments.
// Student comments live in the comments table; song comments live in
// song_comments with their mention rows in song_comment_mentions.
type CommentRepository struct {
	db *pgxpool.Pool
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: pool}
}

func scopeTable(scope models.CommentScope) (table, scopeColumn string, err error) {
	switch scope {
	case models.ScopeStudent:
		return "comments", "student_id", nil
	case models.ScopeSong:
		return "song_comments", "song_id", nil
	default:
		return "", "", fmt.Errorf("unknown comment scope %q", scope)
	}
}

// FindByIDAndAuthor retrieves a comment by id only when it belongs to the
// given author. Returns (nil, nil) when no such row exists, so callers can
// treat a foreign author's comment the same as a missing one.
func (r *CommentRepository) FindByIDAndAuthor(ctx context.Context, scope models.CommentScope, id, authorID int64) (*models.Comment, error) {
	table, scopeColumn, err := scopeTable(scope)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT id, %s, content, author_id, created_at, updated_at
		FROM %s
		WHERE id = $1 AND author_id = $2
	`, scopeColumn, table)

	comment := models.Comment{Scope: scope}
	err = r.db.QueryRow(ctx, query, id, authorID).Scan(
		&comment.ID,
		&comment.ScopeID,
		&comment.Content,
		&comment.AuthorID,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving comment: %w", err)
	}

	return &comment, nil
}

// Create inserts a new comment and, for song scope, its mention rows. The
// insert and the mention writes run in one transaction.
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment, mentionIDs []int64) error {
	table, scopeColumn, err := scopeTable(comment.Scope)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, content, author_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, table, scopeColumn)

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query, comment.ScopeID, comment.Content, comment.AuthorID).
			Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error creating comment: %w", err)
		}
		if comment.Scope == models.ScopeSong {
			return insertMentions(ctx, tx, comment.ID, mentionIDs)
		}
		return nil
	})
}

// Update rewrites a comment's content and, for song scope, replaces its
// mention rows wholesale. Both writes run in one transaction.
func (r *CommentRepository) Update(ctx context.Context, comment *models.Comment, mentionIDs []int64) error {
	table, _, err := scopeTable(comment.Scope)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET content = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING updated_at
	`, table)

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query, comment.Content, comment.ID).Scan(&comment.UpdatedAt)
		if err != nil {
			if err == pgx.ErrNoRows {
				return fmt.Errorf("comment not found with ID %d", comment.ID)
			}
			return fmt.Errorf("error updating comment: %w", err)
		}
		if comment.Scope == models.ScopeSong {
			_, err := tx.Exec(ctx, `DELETE FROM song_comment_mentions WHERE comment_id = $1`, comment.ID)
			if err != nil {
				return fmt.Errorf("error clearing comment mentions: %w", err)
			}
			return insertMentions(ctx, tx, comment.ID, mentionIDs)
		}
		return nil
	})
}

// insertMentions appends mention rows in the order given. The serial id on
// song_comment_mentions preserves that order for reads.
func insertMentions(ctx context.Context, tx pgx.Tx, commentID int64, mentionIDs []int64) error {
	for _, studentID := range mentionIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO song_comment_mentions (comment_id, student_id) VALUES ($1, $2)`,
			commentID, studentID,
		)
		if err != nil {
			return fmt.Errorf("error inserting comment mention: %w", err)
		}
	}
	return nil
}

// Delete removes a comment. Mention rows go with it via ON DELETE CASCADE.
func (r *CommentRepository) Delete(ctx context.Context, scope models.CommentScope, id int64) error {
	table, _, err := scopeTable(scope)
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return fmt.Errorf("error deleting comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("comment not found with ID %d", id)
	}
	return nil
}

// ListForScope retrieves the comment feed for one student or song, newest
// activity first with ids breaking ties, authors joined in and song mentions
// attached in submission order. limit <= 0 means no limit.
func (r *CommentRepository) ListForScope(ctx context.Context, scope models.CommentScope, scopeID int64, limit int) ([]*models.Comment, error) {
	table, scopeColumn, err := scopeTable(scope)
	if err != nil {
		return nil, err
	}

	queryBuilder := squirrel.Select(
		"c.id", "c."+scopeColumn, "c.content", "c.author_id", "c.created_at", "c.updated_at",
		"t.name",
	).
		From(table + " c").
		LeftJoin("teachers t ON c.author_id = t.id").
		Where("c."+scopeColumn+" = ?", scopeID).
		OrderBy("c.updated_at DESC", "c.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	comments, err := r.scanComments(ctx, scope, sql, args...)
	if err != nil {
		return nil, err
	}

	if scope == models.ScopeSong {
		if err := r.attachMentions(ctx, comments); err != nil {
			return nil, err
		}
	}

	return comments, nil
}

// ListMentioning retrieves every song comment that mentions the given
// student, newest activity first.
func (r *CommentRepository) ListMentioning(ctx context.Context, studentID int64) ([]*models.Comment, error) {
	query := `
		SELECT c.id, c.song_id, c.content, c.author_id, c.created_at, c.updated_at, t.name
		FROM song_comments c
		JOIN song_comment_mentions m ON m.comment_id = c.id
		LEFT JOIN teachers t ON c.author_id = t.id
		WHERE m.student_id = $1
		ORDER BY c.updated_at DESC, c.id ASC
	`

	comments, err := r.scanComments(ctx, models.ScopeSong, query, studentID)
	if err != nil {
		return nil, err
	}
	if err := r.attachMentions(ctx, comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) scanComments(ctx context.Context, scope models.CommentScope, sql string, args ...interface{}) ([]*models.Comment, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		comment := models.Comment{Scope: scope}
		var authorName *string

		err := rows.Scan(
			&comment.ID,
			&comment.ScopeID,
			&comment.Content,
			&comment.AuthorID,
			&comment.CreatedAt,
			&comment.UpdatedAt,
			&authorName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}

		if authorName != nil {
			comment.Author = &models.Teacher{ID: comment.AuthorID, Name: *authorName}
		}
		comments = append(comments, &comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return comments, nil
}

// attachMentions loads the mentioned students for a batch of song comments.
// Ordering by the mention row id keeps the submission order.
func (r *CommentRepository) attachMentions(ctx context.Context, comments []*models.Comment) error {
	if len(comments) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(comments))
	byID := make(map[int64]*models.Comment, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
		byID[c.ID] = c
	}

	query := `
		SELECT m.comment_id, s.id, s.name, s.username, s.dob, s.instrument, s.image_url, s.created_at, s.updated_at
		FROM song_comment_mentions m
		JOIN students s ON m.student_id = s.id
		WHERE m.comment_id = ANY($1)
		ORDER BY m.id ASC
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("error loading comment mentions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var commentID int64
		var student models.Student

		err := rows.Scan(
			&commentID,
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
			return fmt.Errorf("error scanning mention row: %w", err)
		}

		if comment, ok := byID[commentID]; ok {
			comment.Mentions = append(comment.Mentions, &student)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating mention rows: %w", err)
	}

	return nil
}
