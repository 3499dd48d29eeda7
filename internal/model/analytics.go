package model

import (
	"time"
)

// AnalyticsArtists 每轮刷新后的在库画师总数快照
type AnalyticsArtists struct {
	ID                uint64    `gorm:"primaryKey" json:"id"`
	TotalArtistsCount int       `gorm:"not null;default:0" json:"totalArtistsCount"`
	CreatedAt         time.Time `json:"createdAt"`
}

func (AnalyticsArtists) TableName() string {
	return "analytics_artists"
}

// AnalyticsSuggestions 每轮提升后的建议总数快照
type AnalyticsSuggestions struct {
	ID                    uint64    `gorm:"primaryKey" json:"id"`
	TotalSuggestionsCount int       `gorm:"not null;default:0" json:"totalSuggestionsCount"`
	CreatedAt             time.Time `json:"createdAt"`
}

func (AnalyticsSuggestions) TableName() string {
	return "analytics_suggestions"
}
