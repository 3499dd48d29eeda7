package dto

import "time"

type CreateSuggestionRequest struct {
	Username string   `json:"username" binding:"required,max=64"`
	Country  string   `json:"country" binding:"omitempty,max=64"`
	Tags     []string `json:"tags" binding:"omitempty,max=5,dive,max=32"`
}

type ReviewSuggestionRequest struct {
	RequestID string `json:"requestId" binding:"required,uuid"`
}

type SuggestionResponse struct {
	RequestID     string    `json:"requestId"`
	Username      string    `json:"username"`
	Country       *string   `json:"country"`
	Tags          []string  `json:"tags"`
	RequestStatus string    `json:"requestStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}
