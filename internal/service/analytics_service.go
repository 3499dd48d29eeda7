package service

import (
	"Dotcreator/internal/api/dto"
	"Dotcreator/internal/repository"
	"context"
)

const analyticsHistoryLimit = 30

type AnalyticsService interface {
	GetAnalytics(ctx context.Context) (*dto.AnalyticsResponse, error)
}

type analyticsServiceImpl struct {
	analyticsRepo repository.AnalyticsRepo
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepo) AnalyticsService {
	return &analyticsServiceImpl{analyticsRepo: analyticsRepo}
}

func (s *analyticsServiceImpl) GetAnalytics(ctx context.Context) (*dto.AnalyticsResponse, error) {
	artists, err := s.analyticsRepo.ListArtistsTotals(ctx, analyticsHistoryLimit)
	if err != nil {
		return nil, err
	}
	suggestions, err := s.analyticsRepo.ListSuggestionsTotals(ctx, analyticsHistoryLimit)
	if err != nil {
		return nil, err
	}

	response := &dto.AnalyticsResponse{
		Artists:     make([]*dto.AnalyticsPoint, 0, len(artists)),
		Suggestions: make([]*dto.AnalyticsPoint, 0, len(suggestions)),
	}
	for _, record := range artists {
		response.Artists = append(response.Artists, &dto.AnalyticsPoint{
			Total:     record.TotalArtistsCount,
			CreatedAt: record.CreatedAt,
		})
	}
	for _, record := range suggestions {
		response.Suggestions = append(response.Suggestions, &dto.AnalyticsPoint{
			Total:     record.TotalSuggestionsCount,
			CreatedAt: record.CreatedAt,
		})
	}
	return response, nil
}
