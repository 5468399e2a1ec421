package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandroom/backend/internal/app/models"
	"github.com/bandroom/backend/internal/app/models/dto"
	"github.com/bandroom/backend/internal/pkg/apperrors"
)

// fakeSetlists is an in-memory SetlistStore
type fakeSetlists struct {
	current  *models.Season
	setlists map[int64]*models.Setlist
	nextID   int64
}

func newFakeSetlists() *fakeSetlists {
	return &fakeSetlists{
		setlists: make(map[int64]*models.Setlist),
		nextID:   1,
	}
}

func (f *fakeSetlists) CurrentSeason(_ context.Context) (*models.Season, error) {
	return f.current, nil
}

func (f *fakeSetlists) Create(_ context.Context, setlist *models.Setlist, songIDs []int64) error {
	for _, l := range f.setlists {
		if l.BandID == setlist.BandID && l.SeasonID == setlist.SeasonID {
			return apperrors.ErrSetlistAlreadyExists
		}
	}

	setlist.ID = f.nextID
	f.nextID++
	setlist.CreatedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	setlist.UpdatedAt = setlist.CreatedAt

	stored := *setlist
	for _, id := range songIDs {
		stored.Songs = append(stored.Songs, &models.Song{ID: id})
	}
	f.setlists[setlist.ID] = &stored
	return nil
}

func (f *fakeSetlists) GetByID(_ context.Context, id int64) (*models.Setlist, error) {
	l, ok := f.setlists[id]
	if !ok {
		return nil, apperrors.ErrSetlistNotFound
	}
	copied := *l
	return &copied, nil
}

func (f *fakeSetlists) ListForBand(_ context.Context, bandID int64) ([]*models.Setlist, error) {
	var out []*models.Setlist
	for _, l := range f.setlists {
		if l.BandID == bandID {
			copied := *l
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeSetlists) Delete(_ context.Context, id int64) error {
	if _, ok := f.setlists[id]; !ok {
		return apperrors.ErrSetlistNotFound
	}
	delete(f.setlists, id)
	return nil
}

func TestCreateSetlistDefaultsToCurrentSeason(t *testing.T) {
	store := newFakeSetlists()
	store.current = &models.Season{ID: 3, StartDate: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)}
	svc := NewSetlistService(store)

	setlist, err := svc.Create(context.Background(), 42, dto.CreateSetlistRequest{
		Theme:   "  Garage Rock  ",
		SongIDs: []int64{100, 101},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), setlist.BandID)
	assert.Equal(t, int64(3), setlist.SeasonID)
	assert.Equal(t, "Garage Rock", setlist.Theme)
	require.Len(t, setlist.Songs, 2)
	assert.Equal(t, int64(100), setlist.Songs[0].ID)
	assert.Equal(t, int64(101), setlist.Songs[1].ID)
}

func TestCreateSetlistRequiresTheme(t *testing.T) {
	store := newFakeSetlists()
	store.current = &models.Season{ID: 3}
	svc := NewSetlistService(store)

	_, err := svc.Create(context.Background(), 42, dto.CreateSetlistRequest{Theme: "   "})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.Empty(t, store.setlists)
}

func TestCreateSetlistWithoutActiveSeason(t *testing.T) {
	svc := NewSetlistService(newFakeSetlists())

	_, err := svc.Create(context.Background(), 42, dto.CreateSetlistRequest{Theme: "Grunge"})
	assert.ErrorIs(t, err, apperrors.ErrSeasonNotFound)
}

func TestCreateSecondSetlistForSeasonConflicts(t *testing.T) {
	store := newFakeSetlists()
	store.current = &models.Season{ID: 3}
	svc := NewSetlistService(store)

	_, err := svc.Create(context.Background(), 42, dto.CreateSetlistRequest{Theme: "Grunge"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), 42, dto.CreateSetlistRequest{Theme: "Funk"})
	assert.ErrorIs(t, err, apperrors.ErrSetlistAlreadyExists)
}

func TestCurrentForBandPicksCurrentSeason(t *testing.T) {
	store := newFakeSetlists()
	store.current = &models.Season{ID: 2}
	store.setlists[1] = &models.Setlist{ID: 1, BandID: 42, SeasonID: 1, Theme: "Classic Rock"}
	store.setlists[2] = &models.Setlist{ID: 2, BandID: 42, SeasonID: 2, Theme: "Funk"}
	store.setlists[3] = &models.Setlist{ID: 3, BandID: 43, SeasonID: 2, Theme: "Grunge"}
	store.nextID = 4
	svc := NewSetlistService(store)

	setlist, err := svc.CurrentForBand(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Funk", setlist.Theme)
	assert.Equal(t, int64(2), setlist.SeasonID)
}

func TestCurrentForBandWithoutProgram(t *testing.T) {
	store := newFakeSetlists()
	store.current = &models.Season{ID: 2}
	svc := NewSetlistService(store)

	_, err := svc.CurrentForBand(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrSetlistNotFound)

	store.current = nil
	_, err = svc.CurrentForBand(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrSetlistNotFound)
}
