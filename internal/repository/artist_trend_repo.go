package repository

import (
	"Dotcreator/internal/model"
	"context"

	"gorm.io/gorm"
)

type ArtistTrendRepo interface {
	AppendTrend(ctx context.Context, trend *model.ArtistTrending) error
	GetRecentTrends(ctx context.Context, userID string, limit int) ([]*model.ArtistTrending, error)
}

type artistTrendRepoImpl struct {
	db *gorm.DB
}

func NewArtistTrendRepo(db *gorm.DB) ArtistTrendRepo {
	return &artistTrendRepoImpl{db: db}
}

func (s *artistTrendRepoImpl) AppendTrend(ctx context.Context, trend *model.ArtistTrending) error {
	return s.db.WithContext(ctx).Create(trend).Error
}

// GetRecentTrends 按记录时间倒序取最近 limit 条
func (s *artistTrendRepoImpl) GetRecentTrends(ctx context.Context, userID string, limit int) ([]*model.ArtistTrending, error) {
	trends := make([]*model.ArtistTrending, 0, limit)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Limit(limit).
		Find(&trends)
	if result.Error != nil {
		return nil, result.Error
	}
	return trends, nil
}
