package dto

import "time"

// SongRef is the slim song shape embedded in setlist responses
type SongRef struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Key    string `json:"key"`
	BPM    int    `json:"bpm"`
}

// SetlistResponse is the full setlist shape returned to clients. Songs come
// back in program order.
type SetlistResponse struct {
	ID        int64     `json:"id"`
	BandID    int64     `json:"bandId"`
	SeasonID  int64     `json:"seasonId"`
	Theme     string    `json:"theme"`
	Songs     []SongRef `json:"songs,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateSetlistRequest carries a new setlist. SeasonID zero means the
// current season.
type CreateSetlistRequest struct {
	Theme    string  `json:"theme" binding:"required"`
	SeasonID int64   `json:"seasonId"`
	SongIDs  []int64 `json:"songIds"`
}
