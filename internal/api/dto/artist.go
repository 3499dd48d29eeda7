package dto

import "time"

type ArtistResponse struct {
	UserID                      string     `json:"userId"`
	Username                    string     `json:"username"`
	Name                        *string    `json:"name"`
	Bio                         *string    `json:"bio"`
	AvatarURL                   *string    `json:"avatarUrl"`
	BannerURL                   *string    `json:"bannerUrl"`
	Website                     *string    `json:"website"`
	Country                     *string    `json:"country"`
	URL                         string     `json:"url"`
	Tags                        []string   `json:"tags"`
	FollowersCount              int        `json:"followersCount"`
	TweetsCount                 int        `json:"tweetsCount"`
	WeeklyFollowersGrowingTrend float64    `json:"weeklyFollowersGrowingTrend"`
	WeeklyPostsGrowingTrend     float64    `json:"weeklyPostsGrowingTrend"`
	JoinedAt                    *time.Time `json:"joinedAt"`
	LastUpdatedAt               time.Time  `json:"lastUpdatedAt"`
}

type ArtistPageResponse struct {
	Artists  []*ArtistResponse `json:"artists"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
	Total    int64             `json:"total"`
}

type ArtistTrendPoint struct {
	FollowersCount int       `json:"followersCount"`
	TweetsCount    int       `json:"tweetsCount"`
	RecordedAt     time.Time `json:"recordedAt"`
}

type ArtistTrendsResponse struct {
	UserID string              `json:"userId"`
	Days   int                 `json:"days"`
	Points []*ArtistTrendPoint `json:"points"`
}
