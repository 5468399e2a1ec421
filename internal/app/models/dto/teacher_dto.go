package dto

import "time"

// TeacherResponse is the full teacher shape returned to clients
type TeacherResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Bio         *string   `json:"bio,omitempty"`
	Instruments []string  `json:"instruments"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateTeacherRequest carries a new teacher profile
type CreateTeacherRequest struct {
	Name        string   `json:"name" binding:"required"`
	Bio         *string  `json:"bio"`
	Instruments []string `json:"instruments" binding:"required,min=1"`
}

// UpdateTeacherRequest carries partial teacher profile changes
type UpdateTeacherRequest struct {
	Name        *string  `json:"name"`
	Bio         *string  `json:"bio"`
	Instruments []string `json:"instruments"`
}
