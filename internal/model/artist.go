package model

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

type Artist struct {
	ID        uint64  `gorm:"primaryKey" json:"id"`
	UserID    string  `gorm:"type:varchar(32);not null;uniqueIndex:idx_artist_user_id" json:"userId"`
	Username  string  `gorm:"type:varchar(64);not null;uniqueIndex:idx_artist_username" json:"username"`
	Name      *string `gorm:"type:varchar(128)" json:"name"`
	Bio       *string `gorm:"type:text" json:"bio"`
	AvatarURL *string `gorm:"type:varchar(512)" json:"avatarUrl"`
	BannerURL *string `gorm:"type:varchar(512)" json:"bannerUrl"`
	Website   *string `gorm:"type:varchar(512)" json:"website"`
	URL       string  `gorm:"type:varchar(512);not null" json:"url"`
	Country   *string `gorm:"type:varchar(8)" json:"country"`
	Tags      TagList `gorm:"type:json" json:"tags"`

	FollowersCount int `gorm:"not null;default:0" json:"followersCount"`
	TweetsCount    int `gorm:"not null;default:0" json:"tweetsCount"`

	// 周增长趋势，百分比，保留3位小数
	WeeklyFollowersGrowingTrend float64 `gorm:"type:decimal(10,3);not null;default:0" json:"weeklyFollowersGrowingTrend"`
	WeeklyPostsGrowingTrend     float64 `gorm:"type:decimal(10,3);not null;default:0" json:"weeklyPostsGrowingTrend"`

	JoinedAt      *time.Time `json:"joinedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastUpdatedAt time.Time  `gorm:"column:last_updated_at" json:"lastUpdatedAt"`
}

func (Artist) TableName() string {
	return "artists"
}

// TagList 标签集合，存储为 JSON 数组
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		t = TagList{}
	}
	return json.Marshal(t)
}

func (t *TagList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}
	return json.Unmarshal(bytes, t)
}
