package dto

// APIResponse is the envelope for every successful reply
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse wraps data in the success envelope
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
	}
}

// PaginationInfo describes the page window of a list reply
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
}

// PaginatedResponse is the envelope for paginated list replies
type PaginatedResponse struct {
	Items      interface{}    `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}

// NewPaginatedResponse wraps items and their page window
func NewPaginatedResponse(items interface{}, pagination PaginationInfo) PaginatedResponse {
	return PaginatedResponse{
		Items:      items,
		Pagination: pagination,
	}
}
