package services

import (
	"context"
	"strings"

	"github.com/bandroom/backend/internal/app/models"
	"github.com/bandroom/backend/internal/app/models/dto"
	"github.com/bandroom/backend/internal/pkg/apperrors"
)

// SetlistService handles a band's seasonal song programs
type SetlistService interface {
	Create(ctx context.Context, bandID int64, req dto.CreateSetlistRequest) (*models.Setlist, error)
	ListForBand(ctx context.Context, bandID int64) ([]*models.Setlist, error)
	CurrentForBand(ctx context.Context, bandID int64) (*models.Setlist, error)
	Delete(ctx context.Context, id int64) error
}

type setlistService struct {
	setlists SetlistStore
}

// NewSetlistService creates a new SetlistService
func NewSetlistService(setlists SetlistStore) SetlistService {
	return &setlistService{setlists: setlists}
}

// Create adds a setlist for a band. When the request names no season the
// current one is used.
func (s *setlistService) Create(ctx context.Context, bandID int64, req dto.CreateSetlistRequest) (*models.Setlist, error) {
	theme := strings.TrimSpace(req.Theme)
	if theme == "" {
		return nil, apperrors.NewBadRequestError("theme is required")
	}

	seasonID := req.SeasonID
	if seasonID == 0 {
		season, err := s.setlists.CurrentSeason(ctx)
		if err != nil {
			return nil, err
		}
		if season == nil {
			return nil, apperrors.ErrSeasonNotFound
		}
		seasonID = season.ID
	}

	setlist := &models.Setlist{
		BandID:   bandID,
		SeasonID: seasonID,
		Theme:    theme,
	}
	if err := s.setlists.Create(ctx, setlist, req.SongIDs); err != nil {
		return nil, err
	}
	return s.setlists.GetByID(ctx, setlist.ID)
}

func (s *setlistService) ListForBand(ctx context.Context, bandID int64) ([]*models.Setlist, error) {
	return s.setlists.ListForBand(ctx, bandID)
}

// CurrentForBand retrieves the band's setlist for the current season. No
// active season or no program for it both report setlist-not-found.
func (s *setlistService) CurrentForBand(ctx context.Context, bandID int64) (*models.Setlist, error) {
	season, err := s.setlists.CurrentSeason(ctx)
	if err != nil {
		return nil, err
	}
	if season == nil {
		return nil, apperrors.ErrSetlistNotFound
	}

	setlists, err := s.setlists.ListForBand(ctx, bandID)
	if err != nil {
		return nil, err
	}
	for _, setlist := range setlists {
		if setlist.SeasonID == season.ID {
			return setlist, nil
		}
	}
	return nil, apperrors.ErrSetlistNotFound
}

func (s *setlistService) Delete(ctx context.Context, id int64) error {
	return s.setlists.Delete(ctx, id)
}
