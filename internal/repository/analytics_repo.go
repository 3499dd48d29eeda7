package repository

import (
	"Dotcreator/internal/model"
	"context"

	"gorm.io/gorm"
)

type AnalyticsRepo interface {
	RecordArtistsTotal(ctx context.Context, total int) error
	RecordSuggestionsTotal(ctx context.Context, total int) error
	ListArtistsTotals(ctx context.Context, limit int) ([]*model.AnalyticsArtists, error)
	ListSuggestionsTotals(ctx context.Context, limit int) ([]*model.AnalyticsSuggestions, error)
}

type analyticsRepoImpl struct {
	db *gorm.DB
}

func NewAnalyticsRepo(db *gorm.DB) AnalyticsRepo {
	return &analyticsRepoImpl{db: db}
}

func (s *analyticsRepoImpl) RecordArtistsTotal(ctx context.Context, total int) error {
	return s.db.WithContext(ctx).Create(&model.AnalyticsArtists{TotalArtistsCount: total}).Error
}

func (s *analyticsRepoImpl) RecordSuggestionsTotal(ctx context.Context, total int) error {
	return s.db.WithContext(ctx).Create(&model.AnalyticsSuggestions{TotalSuggestionsCount: total}).Error
}

func (s *analyticsRepoImpl) ListArtistsTotals(ctx context.Context, limit int) ([]*model.AnalyticsArtists, error) {
	records := make([]*model.AnalyticsArtists, 0, limit)
	result := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

func (s *analyticsRepoImpl) ListSuggestionsTotals(ctx context.Context, limit int) ([]*model.AnalyticsSuggestions, error) {
	records := make([]*model.AnalyticsSuggestions, 0, limit)
	result := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}
