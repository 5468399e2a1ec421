package dto

import "time"

// BandResponse is the full band shape returned to clients
type BandResponse struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	AgeGroup  string       `json:"ageGroup"`
	Schedule  string       `json:"schedule"`
	Students  []StudentRef `json:"students,omitempty"`
	Teachers  []TeacherRef `json:"teachers,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// CreateBandRequest carries a new band
type CreateBandRequest struct {
	Name       string  `json:"name" binding:"required"`
	AgeGroup   string  `json:"ageGroup" binding:"required"`
	Schedule   string  `json:"schedule" binding:"required"`
	StudentIDs []int64 `json:"studentIds"`
	TeacherIDs []int64 `json:"teacherIds"`
}

// UpdateBandRequest carries partial band changes. Member id lists, when
// present, replace the membership wholesale.
type UpdateBandRequest struct {
	Name       *string `json:"name"`
	AgeGroup   *string `json:"ageGroup"`
	Schedule   *string `json:"schedule"`
	StudentIDs []int64 `json:"studentIds"`
	TeacherIDs []int64 `json:"teacherIds"`
}
