package models

import "time"

// Song represents a song in a band's setlist
type Song struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Artist      string    `json:"artist" db:"artist"`
	Description *string   `json:"description,omitempty" db:"description"`
	Key         string    `json:"key" db:"key"`
	BPM         int       `json:"bpm" db:"bpm"`
	Lyrics      *string   `json:"lyrics,omitempty" db:"lyrics"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Students performing this song
	Students []*Student `json:"students,omitempty"`
}
