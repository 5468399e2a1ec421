package models

import "time"

// Teacher represents a teacher profile. Instruments is a set of instrument
// tags; the comma-joined column encoding stays inside the repository layer.
type Teacher struct {
	ID          int64        `json:"id" db:"id"`
	UserID      *int64       `json:"userId,omitempty" db:"user_id"`
	Name        string       `json:"name" db:"name"`
	Bio         *string      `json:"bio,omitempty" db:"bio"`
	Instruments []Instrument `json:"instruments"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" db:"updated_at"`

	// Related entities
	User *User `json:"user,omitempty"`
}
