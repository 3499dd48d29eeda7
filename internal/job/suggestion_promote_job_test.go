package job

import (
	"Dotcreator/internal/model"
	"Dotcreator/internal/pkg/consts"
	"Dotcreator/internal/pkg/twitter"
	"Dotcreator/internal/pkg/webhook"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPromoteJob(suggestionRepo *fakeSuggestionRepo, artistRepo *fakeArtistRepo, trendRepo *fakeTrendRepo, fetcher *fakeFetcher, notifier *fakeNotifier) *SuggestionPromoteJob {
	return NewSuggestionPromoteJob(suggestionRepo, artistRepo, trendRepo, nil, fetcher, notifier, nil, nil, nil, nil, nil, nil)
}

func TestSuggestionPromoteJobCreatesArtists(t *testing.T) {
	artistRepo := newFakeArtistRepo()
	suggestionRepo := newFakeSuggestionRepo(artistRepo,
		&model.ArtistSuggestion{
			RequestID:     "req-1",
			Username:      "alice",
			Tags:          model.TagList{"pixelart"},
			RequestStatus: consts.SuggestionStatusApproved,
		},
	)

	fetcher := newFakeFetcher()
	fetcher.profiles["alice"] = &twitter.Profile{
		UserID:         "u1",
		Username:       "alice",
		URL:            consts.ProfileURLPrefix + "alice",
		FollowersCount: 1500,
		TweetsCount:    300,
	}

	trendRepo := newFakeTrendRepo()
	notifier := &fakeNotifier{}

	newPromoteJob(suggestionRepo, artistRepo, trendRepo, fetcher, notifier).Run()

	require.Len(t, artistRepo.created, 1)
	created := artistRepo.created[0]
	assert.Equal(t, "u1", created.UserID)
	assert.Equal(t, model.TagList{"pixelart"}, created.Tags)
	assert.Equal(t, consts.SuggestionStatusCreated, artistRepo.statuses["req-1"])

	// 建档时写入首个采样点
	require.Len(t, trendRepo.byUser["u1"], 1)
	assert.Equal(t, 1500, trendRepo.byUser["u1"][0].FollowersCount)

	require.Len(t, notifier.notifications, 1)
	got := notifier.notifications[0]
	assert.Equal(t, "Created 1 artists.", got.body)
	assert.Equal(t, webhook.SeverityInfo, got.severity)
}

func TestSuggestionPromoteJobWithNothingApproved(t *testing.T) {
	artistRepo := newFakeArtistRepo()
	suggestionRepo := newFakeSuggestionRepo(artistRepo,
		&model.ArtistSuggestion{RequestID: "req-1", Username: "alice", RequestStatus: consts.SuggestionStatusPending},
	)
	notifier := &fakeNotifier{}

	newPromoteJob(suggestionRepo, artistRepo, newFakeTrendRepo(), newFakeFetcher(), notifier).Run()

	assert.Empty(t, artistRepo.created)
	require.Len(t, notifier.notifications, 1)
	got := notifier.notifications[0]
	assert.Equal(t, "No approved suggestions to promote.", got.body)
	assert.Equal(t, webhook.SeverityInfo, got.severity)
}

func TestSuggestionPromoteJobIsolatesFailures(t *testing.T) {
	artistRepo := newFakeArtistRepo()
	suggestionRepo := newFakeSuggestionRepo(artistRepo,
		&model.ArtistSuggestion{RequestID: "req-1", Username: "alice", RequestStatus: consts.SuggestionStatusApproved},
		&model.ArtistSuggestion{RequestID: "req-2", Username: "ghost", RequestStatus: consts.SuggestionStatusApproved},
	)

	fetcher := newFakeFetcher()
	fetcher.profiles["alice"] = &twitter.Profile{UserID: "u1", Username: "alice", FollowersCount: 100}
	fetcher.errs["ghost"] = twitter.ErrProfileNotFound

	notifier := &fakeNotifier{}

	newPromoteJob(suggestionRepo, artistRepo, newFakeTrendRepo(), fetcher, notifier).Run()

	require.Len(t, artistRepo.created, 1)
	assert.Equal(t, consts.SuggestionStatusApproved, artistRepo.statuses["req-2"])

	require.Len(t, notifier.notifications, 1)
	got := notifier.notifications[0]
	assert.Equal(t, "Created 1 artists, 1 failed.", got.body)
	assert.Equal(t, webhook.SeverityError, got.severity)
}

func TestSuggestionPromoteJobDefaultsMissingProfileURL(t *testing.T) {
	artistRepo := newFakeArtistRepo()
	suggestionRepo := newFakeSuggestionRepo(artistRepo,
		&model.ArtistSuggestion{RequestID: "req-1", Username: "alice", RequestStatus: consts.SuggestionStatusApproved},
	)

	// 抓取结果没有带主页地址
	fetcher := newFakeFetcher()
	fetcher.profiles["alice"] = &twitter.Profile{UserID: "u1", Username: "alice", FollowersCount: 100}

	newPromoteJob(suggestionRepo, artistRepo, newFakeTrendRepo(), fetcher, &fakeNotifier{}).Run()

	require.Len(t, artistRepo.created, 1)
	assert.Equal(t, consts.ProfileURLPrefix+"alice", artistRepo.created[0].URL)
}

func TestSuggestionPromoteJobKeepsDualWriteAtomic(t *testing.T) {
	artistRepo := newFakeArtistRepo()
	artistRepo.createErr = errors.New("deadlock found when trying to get lock")
	suggestionRepo := newFakeSuggestionRepo(artistRepo,
		&model.ArtistSuggestion{RequestID: "req-1", Username: "alice", RequestStatus: consts.SuggestionStatusApproved},
	)

	fetcher := newFakeFetcher()
	fetcher.profiles["alice"] = &twitter.Profile{UserID: "u1", Username: "alice", FollowersCount: 100}

	notifier := &fakeNotifier{}

	newPromoteJob(suggestionRepo, artistRepo, newFakeTrendRepo(), fetcher, notifier).Run()

	// 事务失败后建档与状态翻转都不可见，申请保持 approved 等待下一轮
	assert.Empty(t, artistRepo.created)
	assert.Equal(t, consts.SuggestionStatusApproved, artistRepo.statuses["req-1"])

	require.Len(t, notifier.notifications, 1)
	got := notifier.notifications[0]
	assert.Equal(t, "Created 0 artists, 1 failed.", got.body)
	assert.Equal(t, webhook.SeverityError, got.severity)
}

func TestSuggestionPromoteJobRejectsProfileWithoutUserID(t *testing.T) {
	artistRepo := newFakeArtistRepo()
	suggestionRepo := newFakeSuggestionRepo(artistRepo,
		&model.ArtistSuggestion{RequestID: "req-1", Username: "alice", RequestStatus: consts.SuggestionStatusApproved},
	)

	// 镜像站降级抓取没有稳定 ID
	fetcher := newFakeFetcher()
	fetcher.profiles["alice"] = &twitter.Profile{Username: "alice", FollowersCount: 100}

	notifier := &fakeNotifier{}

	newPromoteJob(suggestionRepo, artistRepo, newFakeTrendRepo(), fetcher, notifier).Run()

	assert.Empty(t, artistRepo.created)
	assert.Equal(t, consts.SuggestionStatusApproved, artistRepo.statuses["req-1"])

	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, webhook.SeverityError, notifier.notifications[0].severity)
}

func TestSuggestionPromoteJobReconcilesExistingArtist(t *testing.T) {
	artistRepo := newFakeArtistRepo(&model.Artist{UserID: "u1", Username: "alice"})
	suggestionRepo := newFakeSuggestionRepo(artistRepo,
		&model.ArtistSuggestion{RequestID: "req-1", Username: "alice", RequestStatus: consts.SuggestionStatusApproved},
	)
	fetcher := newFakeFetcher()
	notifier := &fakeNotifier{}

	newPromoteJob(suggestionRepo, artistRepo, newFakeTrendRepo(), fetcher, notifier).Run()

	// 档案已存在时不重复建档，只收口申请状态
	assert.Empty(t, artistRepo.created)
	assert.Empty(t, fetcher.calls)
	assert.Equal(t, consts.SuggestionStatusCreated, artistRepo.statuses["req-1"])
}
