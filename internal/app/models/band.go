package models

import "time"

// Band groups students of one age bracket into a weekly lesson slot
type Band struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	AgeGroup  AgeGroup  `json:"ageGroup" db:"age_group"`
	Schedule  string    `json:"schedule" db:"schedule"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Related entities
	Students []*Student `json:"students,omitempty"`
	Teachers []*Teacher `json:"teachers,omitempty"`
}
