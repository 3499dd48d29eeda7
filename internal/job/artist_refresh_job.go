package job

import (
	"Dotcreator/internal/model"
	"Dotcreator/internal/pkg/consts"
	"Dotcreator/internal/pkg/es"
	"Dotcreator/internal/pkg/kafka"
	"Dotcreator/internal/pkg/logger"
	"Dotcreator/internal/pkg/media"
	"Dotcreator/internal/pkg/mongo"
	"Dotcreator/internal/pkg/redis"
	"Dotcreator/internal/pkg/twitter"
	"Dotcreator/internal/pkg/util"
	"Dotcreator/internal/pkg/webhook"
	"Dotcreator/internal/repository"
	"Dotcreator/internal/service"
	"context"
	"fmt"
	log "log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	RefreshJobName     = "artist-refresh"
	refreshConcurrency = 8
	refreshLockTTL     = 30 * time.Minute
)

// ArtistRefreshJob 周期性刷新全量画师档案：
// 抓取主页快照、追加采样记录、重算周增长趋势、回写档案
type ArtistRefreshJob struct {
	artistRepo    repository.ArtistRepo
	trendRepo     repository.ArtistTrendRepo
	analyticsRepo repository.AnalyticsRepo
	fetcher       twitter.Fetcher
	notifier      webhook.Notifier
	mirror        media.Mirror
	publisher     kafka.Publisher
	esRepo        es.ArtistRepo
	jobRuns       mongo.JobRunRepo
	locker        *redis.JobLocker
}

func NewArtistRefreshJob(
	artistRepo repository.ArtistRepo,
	trendRepo repository.ArtistTrendRepo,
	analyticsRepo repository.AnalyticsRepo,
	fetcher twitter.Fetcher,
	notifier webhook.Notifier,
	mirror media.Mirror,
	publisher kafka.Publisher,
	esRepo es.ArtistRepo,
	jobRuns mongo.JobRunRepo,
	locker *redis.JobLocker,
) *ArtistRefreshJob {
	return &ArtistRefreshJob{
		artistRepo:    artistRepo,
		trendRepo:     trendRepo,
		analyticsRepo: analyticsRepo,
		fetcher:       fetcher,
		notifier:      notifier,
		mirror:        mirror,
		publisher:     publisher,
		esRepo:        esRepo,
		jobRuns:       jobRuns,
		locker:        locker,
	}
}

func (s *ArtistRefreshJob) Name() string {
	return RefreshJobName
}

func (s *ArtistRefreshJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	if s.locker != nil {
		locked, err := s.locker.TryLock(ctx, consts.RefreshJobLock, traceID, refreshLockTTL, 1)
		if err != nil {
			log.ErrorContext(ctx, "acquire refresh lock error", "err", err)
			return
		}
		if !locked {
			log.WarnContext(ctx, "another refresh run is in progress, skipping")
			return
		}
		defer s.locker.UnLock(ctx, consts.RefreshJobLock, traceID)
	}

	startedAt := time.Now()
	log.InfoContext(ctx, "artist refresh started")

	var updated, failed atomic.Int64
	var runErr error

	page := 1
	for {
		artists, err := s.artistRepo.ListArtistsPage(ctx, page, consts.ArtistPageSize)
		if err != nil {
			runErr = err
			break
		}
		if len(artists) == 0 {
			break
		}

		eg := errgroup.Group{}
		eg.SetLimit(refreshConcurrency)
		for _, artist := range artists {
			eg.Go(func() error {
				// 单个画师失败不终止本轮，只计数
				if err := s.refreshOne(ctx, artist); err != nil {
					failed.Add(1)
					log.WarnContext(ctx, "refresh artist failed",
						"username", artist.Username, "err", err)
				} else {
					updated.Add(1)
				}
				return nil
			})
		}
		_ = eg.Wait()

		if len(artists) < consts.ArtistPageSize {
			break
		}
		page++
	}

	s.finish(ctx, traceID, startedAt, int(updated.Load()), int(failed.Load()), runErr)
}

func (s *ArtistRefreshJob) finish(ctx context.Context, traceID string, startedAt time.Time, updated int, failed int, runErr error) {
	log.InfoContext(ctx, "artist refresh finished",
		"updated", updated, "failed", failed,
		"duration", time.Since(startedAt).String(), "err", runErr)

	if s.analyticsRepo != nil && runErr == nil {
		if total, err := s.artistRepo.CountArtists(ctx); err == nil {
			if err = s.analyticsRepo.RecordArtistsTotal(ctx, int(total)); err != nil {
				log.WarnContext(ctx, "record artists total failed", "err", err)
			}
		}
	}

	if s.jobRuns != nil {
		run := &mongo.JobRunDoc{
			Job:        RefreshJobName,
			TraceID:    traceID,
			StartedAt:  startedAt,
			FinishedAt: time.Now(),
			Succeeded:  updated,
			Failed:     failed,
		}
		if runErr != nil {
			run.Error = runErr.Error()
		}
		if err := s.jobRuns.RecordRun(ctx, run); err != nil {
			log.WarnContext(ctx, "record job run failed", "err", err)
		}
	}

	if s.notifier == nil {
		return
	}
	switch {
	case runErr != nil:
		s.notifier.Notify(ctx, "Artist Refresh Aborted",
			fmt.Sprintf("Refresh stopped after %d updated, %d failed: %v", updated, failed, runErr),
			webhook.SeverityError)
	case updated == 0 && failed == 0:
		s.notifier.Notify(ctx, "Artist Refresh Finished",
			"No artists to refresh.", webhook.SeverityInfo)
	case failed > 0:
		s.notifier.Notify(ctx, "Artist Refresh Finished",
			fmt.Sprintf("Updated %d artists, %d failed.", updated, failed),
			webhook.SeverityError)
	default:
		s.notifier.Notify(ctx, "Artist Refresh Finished",
			fmt.Sprintf("Updated %d artists.", updated), webhook.SeverityInfo)
	}
}

// refreshOne 刷新单个画师：抓取、记采样、算趋势、回写、同步下游
func (s *ArtistRefreshJob) refreshOne(ctx context.Context, artist *model.Artist) error {
	profile, err := s.fetcher.FetchProfile(ctx, artist.Username)
	if err != nil {
		return err
	}

	now := time.Now()
	if err = s.trendRepo.AppendTrend(ctx, &model.ArtistTrending{
		UserID:         artist.UserID,
		FollowersCount: profile.FollowersCount,
		TweetsCount:    profile.TweetsCount,
		RecordedAt:     now,
	}); err != nil {
		return err
	}

	trends, err := s.trendRepo.GetRecentTrends(ctx, artist.UserID, service.TrendWindowSize)
	if err != nil {
		return err
	}
	followers := make([]int, 0, len(trends))
	tweets := make([]int, 0, len(trends))
	for _, trend := range trends {
		followers = append(followers, trend.FollowersCount)
		tweets = append(tweets, trend.TweetsCount)
	}

	artist.Username = profile.Username
	artist.Name = util.PtrStringOrNil(profile.Name)
	artist.Bio = util.PtrStringOrNil(profile.Biography)
	artist.AvatarURL = util.PtrStringOrNil(profile.AvatarURL)
	artist.BannerURL = util.PtrStringOrNil(profile.BannerURL)
	artist.Website = util.PtrStringOrNil(profile.Website)
	artist.URL = profileURL(profile)
	artist.FollowersCount = profile.FollowersCount
	artist.TweetsCount = profile.TweetsCount
	artist.WeeklyFollowersGrowingTrend = service.ComputeGrowthTrend(followers)
	artist.WeeklyPostsGrowingTrend = service.ComputeGrowthTrend(tweets)
	artist.LastUpdatedAt = now

	s.mirrorImages(ctx, artist, profile)

	if err = s.artistRepo.UpdateProfile(ctx, artist); err != nil {
		return err
	}

	s.syncDownstream(ctx, artist, kafka.EventTypeArtistUpdated, now)
	return nil
}

// mirrorImages 头像转存尽力而为，失败时继续使用源站地址
func (s *ArtistRefreshJob) mirrorImages(ctx context.Context, artist *model.Artist, profile *twitter.Profile) {
	if s.mirror == nil {
		return
	}
	result, err := s.mirror.MirrorProfileImages(ctx, artist.UserID, profile.AvatarURL, profile.BannerURL)
	if err != nil {
		log.WarnContext(ctx, "mirror profile images failed", "username", artist.Username, "err", err)
		return
	}
	if result == nil {
		return
	}
	if result.AvatarURL != nil {
		artist.AvatarURL = result.AvatarURL
	}
	if result.BannerURL != nil {
		artist.BannerURL = result.BannerURL
	}
}

// profileURL 抓取结果缺失主页地址时按用户名拼出兜底地址
func profileURL(profile *twitter.Profile) string {
	if profile.URL != "" {
		return profile.URL
	}
	return consts.ProfileURLPrefix + profile.Username
}

func (s *ArtistRefreshJob) syncDownstream(ctx context.Context, artist *model.Artist, eventType string, now time.Time) {
	if s.esRepo != nil {
		doc := &es.ArtistES{
			UserID:                      artist.UserID,
			Username:                    artist.Username,
			Name:                        artist.Name,
			Bio:                         artist.Bio,
			AvatarURL:                   artist.AvatarURL,
			Country:                     artist.Country,
			Tags:                        artist.Tags,
			FollowersCount:              artist.FollowersCount,
			TweetsCount:                 artist.TweetsCount,
			WeeklyFollowersGrowingTrend: artist.WeeklyFollowersGrowingTrend,
			WeeklyPostsGrowingTrend:     artist.WeeklyPostsGrowingTrend,
			JoinedAt:                    artist.JoinedAt,
		}
		if err := s.esRepo.IndexArtist(ctx, doc, now.UnixMilli()); err != nil {
			log.WarnContext(ctx, "index artist failed", "username", artist.Username, "err", err)
		}
	}

	if s.publisher != nil {
		event := &kafka.ArtistEvent{
			Type:                        eventType,
			UserID:                      artist.UserID,
			Username:                    artist.Username,
			FollowersCount:              artist.FollowersCount,
			TweetsCount:                 artist.TweetsCount,
			WeeklyFollowersGrowingTrend: artist.WeeklyFollowersGrowingTrend,
			WeeklyPostsGrowingTrend:     artist.WeeklyPostsGrowingTrend,
			OccurredAt:                  now,
		}
		if err := s.publisher.PublishArtistEvent(ctx, event); err != nil {
			log.WarnContext(ctx, "publish artist event failed", "username", artist.Username, "err", err)
		}
	}
}
