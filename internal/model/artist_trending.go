package model

import (
	"time"
)

// ArtistTrending 单次抓取的计数快照，只追加不修改
type ArtistTrending struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	UserID         string    `gorm:"type:varchar(32);not null;index:idx_trending_user_recorded" json:"userId"`
	FollowersCount int       `gorm:"not null;default:0" json:"followersCount"`
	TweetsCount    int       `gorm:"not null;default:0" json:"tweetsCount"`
	RecordedAt     time.Time `gorm:"not null;index:idx_trending_user_recorded" json:"recordedAt"`
}

func (ArtistTrending) TableName() string {
	return "artist_trendings"
}
