package repository

import (
	"Dotcreator/internal/model"
	"Dotcreator/internal/pkg/consts"
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrSuggestionNotApproved 建议状态已变更，无法标记为已创建
var ErrSuggestionNotApproved = errors.New("suggestion is not in approved state")

type ArtistRepo interface {
	ListArtistsPage(ctx context.Context, page int, pageSize int) ([]*model.Artist, error)
	GetByUserID(ctx context.Context, userID string) (*model.Artist, error)
	GetByUsername(ctx context.Context, username string) (*model.Artist, error)
	UpdateProfile(ctx context.Context, artist *model.Artist) error
	CreateArtistWithSuggestion(ctx context.Context, artist *model.Artist, requestID string) error
	CountArtists(ctx context.Context) (int64, error)
}

type artistRepoImpl struct {
	db *gorm.DB
}

func NewArtistRepo(db *gorm.DB) ArtistRepo {
	return &artistRepoImpl{db: db}
}

// ListArtistsPage 按主键升序分页，保证一轮刷新内分页稳定
func (s *artistRepoImpl) ListArtistsPage(ctx context.Context, page int, pageSize int) ([]*model.Artist, error) {
	artists := make([]*model.Artist, 0, pageSize)
	result := s.db.WithContext(ctx).
		Order("id ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&artists)
	if result.Error != nil {
		return nil, result.Error
	}
	return artists, nil
}

func (s *artistRepoImpl) GetByUserID(ctx context.Context, userID string) (*model.Artist, error) {
	var artist model.Artist
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&artist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &artist, nil
}

func (s *artistRepoImpl) GetByUsername(ctx context.Context, username string) (*model.Artist, error) {
	var artist model.Artist
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&artist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &artist, nil
}

// UpdateProfile 以 user_id 为键覆盖资料字段，零值列也要写入
func (s *artistRepoImpl) UpdateProfile(ctx context.Context, artist *model.Artist) error {
	return s.db.WithContext(ctx).
		Model(&model.Artist{}).
		Where("user_id = ?", artist.UserID).
		Select(
			"username", "name", "bio", "avatar_url", "banner_url",
			"website", "url", "followers_count", "tweets_count",
			"weekly_followers_growing_trend", "weekly_posts_growing_trend",
			"last_updated_at",
		).
		Updates(artist).Error
}

// CreateArtistWithSuggestion 建档与建议状态翻转必须同事务，防止出现孤儿档案
func (s *artistRepoImpl) CreateArtistWithSuggestion(ctx context.Context, artist *model.Artist, requestID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(artist).Error; err != nil {
			return err
		}

		result := tx.Model(&model.ArtistSuggestion{}).
			Where("request_id = ? AND request_status = ?", requestID, consts.SuggestionStatusApproved).
			Update("request_status", consts.SuggestionStatusCreated)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrSuggestionNotApproved
		}
		return nil
	})
}

func (s *artistRepoImpl) CountArtists(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Artist{}).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
