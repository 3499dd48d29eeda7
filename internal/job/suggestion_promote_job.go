package job

import (
	"Dotcreator/internal/model"
	"Dotcreator/internal/pkg/consts"
	"Dotcreator/internal/pkg/es"
	"Dotcreator/internal/pkg/kafka"
	"Dotcreator/internal/pkg/llm"
	"Dotcreator/internal/pkg/logger"
	"Dotcreator/internal/pkg/media"
	"Dotcreator/internal/pkg/mongo"
	"Dotcreator/internal/pkg/redis"
	"Dotcreator/internal/pkg/twitter"
	"Dotcreator/internal/pkg/util"
	"Dotcreator/internal/pkg/webhook"
	"Dotcreator/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	PromoteJobName     = "suggestion-promote"
	promoteConcurrency = 4
	promoteLockTTL     = 30 * time.Minute
)

// SuggestionPromoteJob 把审核通过的收录申请升格为正式画师档案
type SuggestionPromoteJob struct {
	suggestionRepo repository.SuggestionRepo
	artistRepo     repository.ArtistRepo
	trendRepo      repository.ArtistTrendRepo
	analyticsRepo  repository.AnalyticsRepo
	fetcher        twitter.Fetcher
	notifier       webhook.Notifier
	mirror         media.Mirror
	tagger         llm.Tagger
	publisher      kafka.Publisher
	esRepo         es.ArtistRepo
	jobRuns        mongo.JobRunRepo
	locker         *redis.JobLocker
}

func NewSuggestionPromoteJob(
	suggestionRepo repository.SuggestionRepo,
	artistRepo repository.ArtistRepo,
	trendRepo repository.ArtistTrendRepo,
	analyticsRepo repository.AnalyticsRepo,
	fetcher twitter.Fetcher,
	notifier webhook.Notifier,
	mirror media.Mirror,
	tagger llm.Tagger,
	publisher kafka.Publisher,
	esRepo es.ArtistRepo,
	jobRuns mongo.JobRunRepo,
	locker *redis.JobLocker,
) *SuggestionPromoteJob {
	return &SuggestionPromoteJob{
		suggestionRepo: suggestionRepo,
		artistRepo:     artistRepo,
		trendRepo:      trendRepo,
		analyticsRepo:  analyticsRepo,
		fetcher:        fetcher,
		notifier:       notifier,
		mirror:         mirror,
		tagger:         tagger,
		publisher:      publisher,
		esRepo:         esRepo,
		jobRuns:        jobRuns,
		locker:         locker,
	}
}

func (s *SuggestionPromoteJob) Name() string {
	return PromoteJobName
}

func (s *SuggestionPromoteJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	if s.locker != nil {
		locked, err := s.locker.TryLock(ctx, consts.PromoteJobLock, traceID, promoteLockTTL, 1)
		if err != nil {
			log.ErrorContext(ctx, "acquire promote lock error", "err", err)
			return
		}
		if !locked {
			log.WarnContext(ctx, "another promote run is in progress, skipping")
			return
		}
		defer s.locker.UnLock(ctx, consts.PromoteJobLock, traceID)
	}

	startedAt := time.Now()
	log.InfoContext(ctx, "suggestion promote started")

	suggestions, err := s.suggestionRepo.ListApproved(ctx)
	if err != nil {
		log.ErrorContext(ctx, "list approved suggestions error", "err", err)
		s.finish(ctx, traceID, startedAt, 0, 0, err)
		return
	}
	if len(suggestions) == 0 {
		s.finish(ctx, traceID, startedAt, 0, 0, nil)
		return
	}

	var created, failed atomic.Int64
	eg := errgroup.Group{}
	eg.SetLimit(promoteConcurrency)
	for _, suggestion := range suggestions {
		eg.Go(func() error {
			// 单条申请失败不影响其余申请
			if err := s.promoteOne(ctx, suggestion); err != nil {
				failed.Add(1)
				log.WarnContext(ctx, "promote suggestion failed",
					"request_id", suggestion.RequestID,
					"username", suggestion.Username, "err", err)
			} else {
				created.Add(1)
			}
			return nil
		})
	}
	_ = eg.Wait()

	s.finish(ctx, traceID, startedAt, int(created.Load()), int(failed.Load()), nil)
}

func (s *SuggestionPromoteJob) finish(ctx context.Context, traceID string, startedAt time.Time, created int, failed int, runErr error) {
	log.InfoContext(ctx, "suggestion promote finished",
		"created", created, "failed", failed,
		"duration", time.Since(startedAt).String(), "err", runErr)

	if s.analyticsRepo != nil && runErr == nil {
		if total, err := s.suggestionRepo.CountSuggestions(ctx); err == nil {
			if err = s.analyticsRepo.RecordSuggestionsTotal(ctx, int(total)); err != nil {
				log.WarnContext(ctx, "record suggestions total failed", "err", err)
			}
		}
	}

	if s.jobRuns != nil {
		run := &mongo.JobRunDoc{
			Job:        PromoteJobName,
			TraceID:    traceID,
			StartedAt:  startedAt,
			FinishedAt: time.Now(),
			Succeeded:  created,
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
		s.notifier.Notify(ctx, "Suggestion Promotion Aborted",
			fmt.Sprintf("Promotion failed before processing: %v", runErr),
			webhook.SeverityError)
	case created == 0 && failed == 0:
		s.notifier.Notify(ctx, "Suggestion Promotion Finished",
			"No approved suggestions to promote.", webhook.SeverityInfo)
	case failed > 0:
		s.notifier.Notify(ctx, "Suggestion Promotion Finished",
			fmt.Sprintf("Created %d artists, %d failed.", created, failed),
			webhook.SeverityError)
	default:
		s.notifier.Notify(ctx, "Suggestion Promotion Finished",
			fmt.Sprintf("Created %d artists.", created), webhook.SeverityInfo)
	}
}

// promoteOne 抓取主页、建档并翻转申请状态，建档与状态变更在同一事务内
func (s *SuggestionPromoteJob) promoteOne(ctx context.Context, suggestion *model.ArtistSuggestion) error {
	existing, err := s.artistRepo.GetByUsername(ctx, suggestion.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		// 档案已存在时只收口申请状态
		if _, err = s.suggestionRepo.UpdateStatus(ctx, suggestion.RequestID,
			consts.SuggestionStatusApproved, consts.SuggestionStatusCreated); err != nil {
			return err
		}
		return nil
	}

	profile, err := s.fetcher.FetchProfile(ctx, suggestion.Username)
	if err != nil {
		return err
	}
	if profile.UserID == "" {
		// 镜像站降级抓取拿不到稳定的账号 ID，不能以此建档
		return errors.Errorf("profile for %s has no user id", suggestion.Username)
	}

	now := time.Now()
	artist := &model.Artist{
		UserID:         profile.UserID,
		Username:       profile.Username,
		Name:           util.PtrStringOrNil(profile.Name),
		Bio:            util.PtrStringOrNil(profile.Biography),
		AvatarURL:      util.PtrStringOrNil(profile.AvatarURL),
		BannerURL:      util.PtrStringOrNil(profile.BannerURL),
		Website:        util.PtrStringOrNil(profile.Website),
		URL:            profileURL(profile),
		Country:        suggestion.Country,
		Tags:           s.resolveTags(ctx, suggestion, profile),
		FollowersCount: profile.FollowersCount,
		TweetsCount:    profile.TweetsCount,
		JoinedAt:       profile.JoinedAt,
		LastUpdatedAt:  now,
	}

	if s.mirror != nil {
		result, err := s.mirror.MirrorProfileImages(ctx, artist.UserID, profile.AvatarURL, profile.BannerURL)
		if err != nil {
			log.WarnContext(ctx, "mirror profile images failed", "username", artist.Username, "err", err)
		} else if result != nil {
			if result.AvatarURL != nil {
				artist.AvatarURL = result.AvatarURL
			}
			if result.BannerURL != nil {
				artist.BannerURL = result.BannerURL
			}
		}
	}

	if err = s.artistRepo.CreateArtistWithSuggestion(ctx, artist, suggestion.RequestID); err != nil {
		return err
	}

	if err = s.trendRepo.AppendTrend(ctx, &model.ArtistTrending{
		UserID:         artist.UserID,
		FollowersCount: artist.FollowersCount,
		TweetsCount:    artist.TweetsCount,
		RecordedAt:     now,
	}); err != nil {
		log.WarnContext(ctx, "append initial trend failed", "username", artist.Username, "err", err)
	}

	s.syncDownstream(ctx, artist, now)
	return nil
}

// resolveTags 申请自带标签优先，否则交给模型根据简介打标
func (s *SuggestionPromoteJob) resolveTags(ctx context.Context, suggestion *model.ArtistSuggestion, profile *twitter.Profile) model.TagList {
	if len(suggestion.Tags) > 0 {
		return suggestion.Tags
	}
	if s.tagger == nil {
		return nil
	}
	tags, err := s.tagger.SuggestTags(ctx, profile.Biography)
	if err != nil {
		log.WarnContext(ctx, "suggest tags failed", "username", suggestion.Username, "err", err)
		return nil
	}
	return tags
}

func (s *SuggestionPromoteJob) syncDownstream(ctx context.Context, artist *model.Artist, now time.Time) {
	if s.esRepo != nil {
		doc := &es.ArtistES{
			UserID:         artist.UserID,
			Username:       artist.Username,
			Name:           artist.Name,
			Bio:            artist.Bio,
			AvatarURL:      artist.AvatarURL,
			Country:        artist.Country,
			Tags:           artist.Tags,
			FollowersCount: artist.FollowersCount,
			TweetsCount:    artist.TweetsCount,
			JoinedAt:       artist.JoinedAt,
		}
		if err := s.esRepo.IndexArtist(ctx, doc, now.UnixMilli()); err != nil {
			log.WarnContext(ctx, "index artist failed", "username", artist.Username, "err", err)
		}
	}

	if s.publisher != nil {
		event := &kafka.ArtistEvent{
			Type:           kafka.EventTypeArtistCreated,
			UserID:         artist.UserID,
			Username:       artist.Username,
			FollowersCount: artist.FollowersCount,
			TweetsCount:    artist.TweetsCount,
			OccurredAt:     now,
		}
		if err := s.publisher.PublishArtistEvent(ctx, event); err != nil {
			log.WarnContext(ctx, "publish artist event failed", "username", artist.Username, "err", err)
		}
	}
}
