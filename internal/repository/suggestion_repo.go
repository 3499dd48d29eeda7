package repository

import (
	"Dotcreator/internal/model"
	"Dotcreator/internal/pkg/consts"
	"context"
	"errors"

	"gorm.io/gorm"
)

type SuggestionRepo interface {
	CreateSuggestion(ctx context.Context, suggestion *model.ArtistSuggestion) error
	GetByRequestID(ctx context.Context, requestID string) (*model.ArtistSuggestion, error)
	ListApproved(ctx context.Context) ([]*model.ArtistSuggestion, error)
	UpdateStatus(ctx context.Context, requestID string, from string, to string) (bool, error)
	CountSuggestions(ctx context.Context) (int64, error)
}

type suggestionRepoImpl struct {
	db *gorm.DB
}

func NewSuggestionRepo(db *gorm.DB) SuggestionRepo {
	return &suggestionRepoImpl{db: db}
}

func (s *suggestionRepoImpl) CreateSuggestion(ctx context.Context, suggestion *model.ArtistSuggestion) error {
	return s.db.WithContext(ctx).Create(suggestion).Error
}

func (s *suggestionRepoImpl) GetByRequestID(ctx context.Context, requestID string) (*model.ArtistSuggestion, error) {
	var suggestion model.ArtistSuggestion
	err := s.db.WithContext(ctx).Where("request_id = ?", requestID).First(&suggestion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &suggestion, nil
}

func (s *suggestionRepoImpl) ListApproved(ctx context.Context) ([]*model.ArtistSuggestion, error) {
	suggestions := make([]*model.ArtistSuggestion, 0)
	result := s.db.WithContext(ctx).
		Where("request_status = ?", consts.SuggestionStatusApproved).
		Find(&suggestions)
	if result.Error != nil {
		return nil, result.Error
	}
	return suggestions, nil
}

// UpdateStatus 带前置状态的条件更新，返回是否真的翻转了状态
func (s *suggestionRepoImpl) UpdateStatus(ctx context.Context, requestID string, from string, to string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&model.ArtistSuggestion{}).
		Where("request_id = ? AND request_status = ?", requestID, from).
		Update("request_status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *suggestionRepoImpl) CountSuggestions(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ArtistSuggestion{}).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
