package dto

import "time"

// StudentResponse is the full student shape returned to clients
type StudentResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Username   string    `json:"username"`
	DOB        time.Time `json:"dob"`
	Age        int       `json:"age"`
	Instrument string    `json:"instrument"`
	ImageURL   *string   `json:"imageUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreateStudentRequest carries a new student profile
type CreateStudentRequest struct {
	Name       string    `json:"name" binding:"required"`
	Username   string    `json:"username" binding:"required"`
	DOB        time.Time `json:"dob" binding:"required"`
	Instrument string    `json:"instrument" binding:"required"`
	ImageURL   *string   `json:"imageUrl"`
}

// UpdateStudentRequest carries partial student profile changes
type UpdateStudentRequest struct {
	Name       *string    `json:"name"`
	Username   *string    `json:"username"`
	DOB        *time.Time `json:"dob"`
	Instrument *string    `json:"instrument"`
	ImageURL   *string    `json:"imageUrl"`
}

// StudentFilterRequest narrows student list queries
type StudentFilterRequest struct {
	Instrument string `form:"instrument"`
	Search     string `form:"search"`
	Page       int    `form:"page"`
	PageSize   int    `form:"pageSize"`
}
