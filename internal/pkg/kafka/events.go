package kafka

import "time"

const (
	EventTypeArtistCreated = "artist.created"
	EventTypeArtistUpdated = "artist.updated"
)

// ArtistEvent 画师档案变更事件，供主站后端消费
type ArtistEvent struct {
	Type                        string    `json:"type"`
	UserID                      string    `json:"userId"`
	Username                    string    `json:"username"`
	FollowersCount              int       `json:"followersCount"`
	TweetsCount                 int       `json:"tweetsCount"`
	WeeklyFollowersGrowingTrend float64   `json:"weeklyFollowersGrowingTrend"`
	WeeklyPostsGrowingTrend     float64   `json:"weeklyPostsGrowingTrend"`
	OccurredAt                  time.Time `json:"occurredAt"`
}
