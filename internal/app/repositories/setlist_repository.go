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

// SetlistRepository handles database operations for seasons and band
// setlists with their song links in setlist_songs
type SetlistRepository struct {
	db *pgxpool.Pool
}

// NewSetlistRepository creates a new SetlistRepository
func NewSetlistRepository(pool *pgxpool.Pool) *SetlistRepository {
	return &SetlistRepository{db: pool}
}

// CreateSeason inserts a new teaching term
func (r *SetlistRepository) CreateSeason(ctx context.Context, season *models.Season) error {
	query := `
		INSERT INTO seasons (start_date, end_date)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, season.StartDate, season.EndDate).
		Scan(&season.ID, &season.CreatedAt, &season.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating season: %w", err)
	}
	return nil
}

// CurrentSeason retrieves the newest season that has not ended yet,
// (nil, nil) when there is none
func (r *SetlistRepository) CurrentSeason(ctx context.Context) (*models.Season, error) {
	query := `
		SELECT id, start_date, end_date, created_at, updated_at
		FROM seasons
		WHERE end_date IS NULL OR end_date >= NOW()
		ORDER BY start_date DESC, id DESC
		LIMIT 1
	`

	var season models.Season
	err := r.db.QueryRow(ctx, query).Scan(
		&season.ID,
		&season.StartDate,
		&season.EndDate,
		&season.CreatedAt,
		&season.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving current season: %w", err)
	}
	return &season, nil
}

// Create inserts a new setlist and its song links in one transaction
func (r *SetlistRepository) Create(ctx context.Context, setlist *models.Setlist, songIDs []int64) error {
	query := `
		INSERT INTO setlists (band_id, season_id, theme)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query, setlist.BandID, setlist.SeasonID, setlist.Theme).
			Scan(&setlist.ID, &setlist.CreatedAt, &setlist.UpdatedAt)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "setlists_band_season_key") {
				return apperrors.ErrSetlistAlreadyExists
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrBandNotFound
			}
			return fmt.Errorf("error creating setlist: %w", err)
		}
		return linkSongs(ctx, tx, setlist.ID, songIDs)
	})
}

// GetByID retrieves a setlist with its songs
func (r *SetlistRepository) GetByID(ctx context.Context, id int64) (*models.Setlist, error) {
	query := `
		SELECT id, band_id, season_id, theme, created_at, updated_at
		FROM setlists
		WHERE id = $1
	`

	var setlist models.Setlist
	err := r.db.QueryRow(ctx, query, id).Scan(
		&setlist.ID,
		&setlist.BandID,
		&setlist.SeasonID,
		&setlist.Theme,
		&setlist.CreatedAt,
		&setlist.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrSetlistNotFound
		}
		return nil, fmt.Errorf("error retrieving setlist: %w", err)
	}

	if err := r.attachSongs(ctx, []*models.Setlist{&setlist}); err != nil {
		return nil, err
	}
	return &setlist, nil
}

// ListForBand retrieves a band's setlists across seasons, newest season
// first, with songs attached in program order
func (r *SetlistRepository) ListForBand(ctx context.Context, bandID int64) ([]*models.Setlist, error) {
	query := `
		SELECT l.id, l.band_id, l.season_id, l.theme, l.created_at, l.updated_at
		FROM setlists l
		JOIN seasons s ON l.season_id = s.id
		WHERE l.band_id = $1
		ORDER BY s.start_date DESC, l.id ASC
	`

	rows, err := r.db.Query(ctx, query, bandID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var setlists []*models.Setlist
	for rows.Next() {
		var setlist models.Setlist
		err := rows.Scan(
			&setlist.ID,
			&setlist.BandID,
			&setlist.SeasonID,
			&setlist.Theme,
			&setlist.CreatedAt,
			&setlist.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning setlist row: %w", err)
		}
		setlists = append(setlists, &setlist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating setlist rows: %w", err)
	}

	if err := r.attachSongs(ctx, setlists); err != nil {
		return nil, err
	}
	return setlists, nil
}

// Delete removes a setlist. Song links go with it via ON DELETE CASCADE.
func (r *SetlistRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM setlists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting setlist: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrSetlistNotFound
	}
	return nil
}

// linkSongs appends song rows in the order given. The serial id on
// setlist_songs preserves that order for reads.
func linkSongs(ctx context.Context, tx pgx.Tx, setlistID int64, songIDs []int64) error {
	for _, songID := range songIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO setlist_songs (setlist_id, song_id) VALUES ($1, $2)`,
			setlistID, songID,
		)
		if err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrSongNotFound
			}
			return fmt.Errorf("error linking song %d: %w", songID, err)
		}
	}
	return nil
}

// attachSongs loads the songs for a batch of setlists. Ordering by the link
// row id keeps the program order.
func (r *SetlistRepository) attachSongs(ctx context.Context, setlists []*models.Setlist) error {
	if len(setlists) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(setlists))
	byID := make(map[int64]*models.Setlist, len(setlists))
	for _, l := range setlists {
		ids = append(ids, l.ID)
		byID[l.ID] = l
	}

	query := `
		SELECT ss.setlist_id, s.id, s.title, s.artist, s.description, s.key, s.bpm, s.lyrics, s.created_at, s.updated_at
		FROM setlist_songs ss
		JOIN songs s ON ss.song_id = s.id
		WHERE ss.setlist_id = ANY($1)
		ORDER BY ss.id ASC
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("error loading setlist songs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var setlistID int64
		var song models.Song

		err := rows.Scan(
			&setlistID,
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
			return fmt.Errorf("error scanning setlist song row: %w", err)
		}

		if setlist, ok := byID[setlistID]; ok {
			setlist.Songs = append(setlist.Songs, &song)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating setlist song rows: %w", err)
	}

	return nil
}
