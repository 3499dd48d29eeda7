package es

import "time"

// ArtistES 对应 artist_index 的文档结构，供主站搜索使用
type ArtistES struct {
	UserID                      string     `json:"user_id"`
	Username                    string     `json:"username"`
	Name                        *string    `json:"name,omitempty"`
	Bio                         *string    `json:"bio,omitempty"`
	AvatarURL                   *string    `json:"avatar_url,omitempty"`
	Country                     *string    `json:"country,omitempty"`
	Tags                        []string   `json:"tags"`
	FollowersCount              int        `json:"followers_count"`
	TweetsCount                 int        `json:"tweets_count"`
	WeeklyFollowersGrowingTrend float64    `json:"weekly_followers_growing_trend"`
	WeeklyPostsGrowingTrend     float64    `json:"weekly_posts_growing_trend"`
	JoinedAt                    *time.Time `json:"joined_at,omitempty"`
}
