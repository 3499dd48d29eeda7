package service

import (
	"Dotcreator/internal/api/dto"
	"Dotcreator/internal/pkg/consts"
	"Dotcreator/internal/pkg/redis"
	"Dotcreator/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

const trendsCacheExpiration = time.Hour

type ArtistService interface {
	ListArtists(ctx context.Context, page int) (*dto.ArtistPageResponse, error)
	GetArtistByUsername(ctx context.Context, username string) (*dto.ArtistResponse, error)
	GetArtistTrends(ctx context.Context, username string, days int) (*dto.ArtistTrendsResponse, error)
}

type artistServiceImpl struct {
	artistRepo repository.ArtistRepo
	trendRepo  repository.ArtistTrendRepo
}

func NewArtistService(artistRepo repository.ArtistRepo, trendRepo repository.ArtistTrendRepo) ArtistService {
	return &artistServiceImpl{
		artistRepo: artistRepo,
		trendRepo:  trendRepo,
	}
}

func (s *artistServiceImpl) ListArtists(ctx context.Context, page int) (*dto.ArtistPageResponse, error) {
	if page < 1 {
		page = 1
	}

	artists, err := s.artistRepo.ListArtistsPage(ctx, page, consts.ArtistPageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.artistRepo.CountArtists(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ArtistResponse, 0, len(artists))
	if err := copier.Copy(&responses, &artists); err != nil {
		return nil, err
	}

	return &dto.ArtistPageResponse{
		Artists:  responses,
		Page:     page,
		PageSize: consts.ArtistPageSize,
		Total:    total,
	}, nil
}

func (s *artistServiceImpl) GetArtistByUsername(ctx context.Context, username string) (*dto.ArtistResponse, error) {
	artist, err := s.artistRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return nil, ErrArtistNotFound
	}

	var response dto.ArtistResponse
	if err := copier.Copy(&response, artist); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetArtistTrends 查询画师最近 7/30 天的采样序列，结果缓存一小时
func (s *artistServiceImpl) GetArtistTrends(ctx context.Context, username string, days int) (*dto.ArtistTrendsResponse, error) {
	var cacheKey string
	switch days {
	case 7:
		cacheKey = consts.ArtistTrends7DaysKey + username
	case 30:
		cacheKey = consts.ArtistTrends30DaysKey + username
	default:
		return nil, ErrInvalidDaysRange
	}

	artist, err := s.artistRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return nil, ErrArtistNotFound
	}

	cached, err := redis.GetList(ctx, cacheKey)
	if err != nil {
		log.WarnContext(ctx, "read trends cache failed", "key", cacheKey, "err", err)
	}
	if len(cached) > 0 {
		points, err := decodeTrendPoints(cached)
		if err == nil {
			return &dto.ArtistTrendsResponse{UserID: artist.UserID, Days: days, Points: points}, nil
		}
		log.WarnContext(ctx, "decode trends cache failed", "key", cacheKey, "err", err)
	}

	trends, err := s.trendRepo.GetRecentTrends(ctx, artist.UserID, days)
	if err != nil {
		return nil, err
	}

	points := make([]*dto.ArtistTrendPoint, 0, len(trends))
	encoded := make([]string, 0, len(trends))
	for _, trend := range trends {
		point := &dto.ArtistTrendPoint{
			FollowersCount: trend.FollowersCount,
			TweetsCount:    trend.TweetsCount,
			RecordedAt:     trend.RecordedAt,
		}
		points = append(points, point)
		data, err := json.Marshal(point)
		if err != nil {
			return nil, err
		}
		encoded = append(encoded, string(data))
	}

	if len(encoded) > 0 {
		if err := redis.SetListWithExpiration(ctx, cacheKey, encoded, trendsCacheExpiration); err != nil {
			log.WarnContext(ctx, "write trends cache failed", "key", cacheKey, "err", err)
		}
	}

	return &dto.ArtistTrendsResponse{UserID: artist.UserID, Days: days, Points: points}, nil
}

func decodeTrendPoints(cached []string) ([]*dto.ArtistTrendPoint, error) {
	points := make([]*dto.ArtistTrendPoint, 0, len(cached))
	for _, item := range cached {
		var point dto.ArtistTrendPoint
		if err := json.Unmarshal([]byte(item), &point); err != nil {
			return nil, err
		}
		points = append(points, &point)
	}
	return points, nil
}
