package models

import "time"

// Student represents a student profile
type Student struct {
	ID         int64      `json:"id" db:"id"`
	UserID     *int64     `json:"userId,omitempty" db:"user_id"`
	Name       string     `json:"name" db:"name"`
	Username   string     `json:"username" db:"username"`
	DOB        time.Time  `json:"dob" db:"dob"`
	Instrument Instrument `json:"instrument" db:"instrument"`
	ImageURL   *string    `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time  `json:"updatedAt" db:"updated_at"`
}
