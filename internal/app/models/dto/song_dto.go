package dto

import "time"

// SongResponse is the full song shape returned to clients
type SongResponse struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Artist      string       `json:"artist"`
	Description *string      `json:"description,omitempty"`
	Key         string       `json:"key"`
	BPM         int          `json:"bpm"`
	Lyrics      *string      `json:"lyrics,omitempty"`
	Students    []StudentRef `json:"students,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// CreateSongRequest carries a new song
type CreateSongRequest struct {
	Title       string  `json:"title" binding:"required"`
	Artist      string  `json:"artist" binding:"required"`
	Description *string `json:"description"`
	Key         string  `json:"key" binding:"required"`
	BPM         int     `json:"bpm" binding:"required,gt=0"`
	Lyrics      *string `json:"lyrics"`
	StudentIDs  []int64 `json:"studentIds"`
}

// UpdateSongRequest carries partial song changes. StudentIDs, when present,
// replaces the performer set wholesale.
type UpdateSongRequest struct {
	Title       *string `json:"title"`
	Artist      *string `json:"artist"`
	Description *string `json:"description"`
	Key         *string `json:"key"`
	BPM         *int    `json:"bpm"`
	Lyrics      *string `json:"lyrics"`
	StudentIDs  []int64 `json:"studentIds"`
}
