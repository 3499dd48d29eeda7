package twitter

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrProfileNotFound 账号不存在或已注销
	ErrProfileNotFound = errors.New("profile not found")
	// ErrRateLimited 源站限流，本轮跳过该账号
	ErrRateLimited = errors.New("rate limited by profile source")
)

// Profile 单次抓取到的个人主页快照
type Profile struct {
	UserID         string
	Username       string
	Name           string
	Biography      string
	AvatarURL      string
	BannerURL      string
	Website        string
	URL            string
	FollowersCount int
	TweetsCount    int
	JoinedAt       *time.Time
}

// Fetcher 画师主页抓取接口
type Fetcher interface {
	FetchProfile(ctx context.Context, username string) (*Profile, error)
}
