package model

import (
	"time"
)

type ArtistSuggestion struct {
	ID            uint64  `gorm:"primaryKey" json:"id"`
	RequestID     string  `gorm:"type:varchar(36);not null;uniqueIndex:idx_suggestion_request_id" json:"requestId"`
	Username      string  `gorm:"type:varchar(64);not null" json:"username"`
	Country       *string `gorm:"type:varchar(8)" json:"country"`
	Tags          TagList `gorm:"type:json" json:"tags"`
	RequestStatus string  `gorm:"type:varchar(16);not null;default:'pending';index:idx_suggestion_status" json:"requestStatus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ArtistSuggestion) TableName() string {
	return "artist_suggestions"
}
