package dto

import "time"

// APIResponse is the standard success envelope for single-resource endpoints.
type APIResponse struct {
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewAPIResponse wraps data in the standard success envelope.
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{Data: data, Timestamp: time.Now()}
}

// MessageResponse carries a human-readable result for mutating endpoints.
type MessageResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PaginationInfo represents pagination metadata. CurrentPage is the page the
// client asked for, even when it lies past LastPage.
type PaginationInfo struct {
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
}
