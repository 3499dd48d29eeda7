package job

import (
	"Dotcreator/internal/model"
	"Dotcreator/internal/pkg/consts"
	"Dotcreator/internal/pkg/twitter"
	"Dotcreator/internal/pkg/webhook"
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRefreshJob(artistRepo *fakeArtistRepo, trendRepo *fakeTrendRepo, fetcher *fakeFetcher, notifier *fakeNotifier) *ArtistRefreshJob {
	return NewArtistRefreshJob(artistRepo, trendRepo, nil, fetcher, notifier, nil, nil, nil, nil, nil)
}

func TestArtistRefreshJobWalksAllPages(t *testing.T) {
	artistCount := consts.ArtistPageSize + 10
	artists := make([]*model.Artist, 0, artistCount)
	fetcher := newFakeFetcher()
	for i := 0; i < artistCount; i++ {
		username := fmt.Sprintf("artist%03d", i)
		artists = append(artists, &model.Artist{
			UserID:   fmt.Sprintf("uid%03d", i),
			Username: username,
		})
		fetcher.profiles[username] = &twitter.Profile{
			UserID:         fmt.Sprintf("uid%03d", i),
			Username:       username,
			URL:            consts.ProfileURLPrefix + username,
			FollowersCount: 100 + i,
			TweetsCount:    10,
		}
	}

	artistRepo := newFakeArtistRepo(artists...)
	trendRepo := newFakeTrendRepo()
	notifier := &fakeNotifier{}

	newRefreshJob(artistRepo, trendRepo, fetcher, notifier).Run()

	assert.Len(t, artistRepo.updated, artistCount)
	assert.Equal(t, artistCount, trendRepo.appended)

	require.Len(t, notifier.notifications, 1)
	got := notifier.notifications[0]
	assert.Equal(t, "Artist Refresh Finished", got.title)
	assert.Equal(t, fmt.Sprintf("Updated %d artists.", artistCount), got.body)
	assert.Equal(t, webhook.SeverityInfo, got.severity)
}

func TestArtistRefreshJobIsolatesFailures(t *testing.T) {
	artists := []*model.Artist{
		{UserID: "u1", Username: "alice"},
		{UserID: "u2", Username: "bob"},
		{UserID: "u3", Username: "carol"},
	}

	fetcher := newFakeFetcher()
	fetcher.profiles["alice"] = &twitter.Profile{UserID: "u1", Username: "alice", FollowersCount: 10}
	fetcher.errs["bob"] = twitter.ErrRateLimited
	fetcher.profiles["carol"] = &twitter.Profile{UserID: "u3", Username: "carol", FollowersCount: 30}

	artistRepo := newFakeArtistRepo(artists...)
	trendRepo := newFakeTrendRepo()
	notifier := &fakeNotifier{}

	newRefreshJob(artistRepo, trendRepo, fetcher, notifier).Run()

	assert.Len(t, artistRepo.updated, 2)
	assert.NotContains(t, artistRepo.updated, "u2")
	assert.Empty(t, trendRepo.byUser["u2"])

	require.Len(t, notifier.notifications, 1)
	got := notifier.notifications[0]
	assert.Equal(t, "Updated 2 artists, 1 failed.", got.body)
	assert.Equal(t, webhook.SeverityError, got.severity)
}

func TestArtistRefreshJobAbortsWhenPageReadFails(t *testing.T) {
	artistRepo := newFakeArtistRepo(&model.Artist{UserID: "u1", Username: "alice"})
	artistRepo.listErr = errors.New("connection refused")
	trendRepo := newFakeTrendRepo()
	notifier := &fakeNotifier{}

	newRefreshJob(artistRepo, trendRepo, newFakeFetcher(), notifier).Run()

	assert.Empty(t, artistRepo.updated)
	require.Len(t, notifier.notifications, 1)
	got := notifier.notifications[0]
	assert.Equal(t, "Artist Refresh Aborted", got.title)
	assert.Equal(t, webhook.SeverityError, got.severity)
}

func TestArtistRefreshJobNotifiesWhenNothingToDo(t *testing.T) {
	artistRepo := newFakeArtistRepo()
	notifier := &fakeNotifier{}

	newRefreshJob(artistRepo, newFakeTrendRepo(), newFakeFetcher(), notifier).Run()

	require.Len(t, notifier.notifications, 1)
	got := notifier.notifications[0]
	assert.Equal(t, "No artists to refresh.", got.body)
	assert.Equal(t, webhook.SeverityInfo, got.severity)
}

func TestArtistRefreshJobComputesWeeklyTrends(t *testing.T) {
	artist := &model.Artist{UserID: "u1", Username: "alice"}
	artistRepo := newFakeArtistRepo(artist)

	// 已有 6 个历史采样，本轮快照补齐窗口
	trendRepo := newFakeTrendRepo()
	history := []int{1000, 1020, 1050, 1080, 1100, 1150}
	base := time.Now().Add(-6 * 24 * time.Hour)
	for i, followers := range history {
		require.NoError(t, trendRepo.AppendTrend(t.Context(), &model.ArtistTrending{
			UserID:         "u1",
			FollowersCount: followers,
			TweetsCount:    200,
			RecordedAt:     base.Add(time.Duration(i) * 24 * time.Hour),
		}))
	}

	fetcher := newFakeFetcher()
	fetcher.profiles["alice"] = &twitter.Profile{
		UserID:         "u1",
		Username:       "alice",
		FollowersCount: 1200,
		TweetsCount:    220,
	}

	newRefreshJob(artistRepo, trendRepo, fetcher, &fakeNotifier{}).Run()

	updated := artistRepo.updated["u1"]
	require.NotNil(t, updated)
	// (1200-1000)/1000*100 与 (220-200)/200*100
	assert.Equal(t, float64(20), updated.WeeklyFollowersGrowingTrend)
	assert.Equal(t, float64(10), updated.WeeklyPostsGrowingTrend)
	assert.Equal(t, 1200, updated.FollowersCount)
	// 抓取结果没带主页地址时落库兜底地址
	assert.Equal(t, consts.ProfileURLPrefix+"alice", updated.URL)
}
