package models

import "time"

// Season is a teaching term. A season with no end date, or one still ahead
// of its end date, is the current one.
type Season struct {
	ID        int64      `json:"id" db:"id"`
	StartDate time.Time  `json:"startDate" db:"start_date"`
	EndDate   *time.Time `json:"endDate,omitempty" db:"end_date"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

// Setlist is one band's song program for one season
type Setlist struct {
	ID        int64     `json:"id" db:"id"`
	BandID    int64     `json:"bandId" db:"band_id"`
	SeasonID  int64     `json:"seasonId" db:"season_id"`
	Theme     string    `json:"theme" db:"theme"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Songs in program order
	Songs []*Song `json:"songs,omitempty"`
}
