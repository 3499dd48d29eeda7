package service

import (
	"Dotcreator/internal/api/dto"
	"Dotcreator/internal/model"
	"Dotcreator/internal/pkg/consts"
	"Dotcreator/internal/repository"
	"context"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SuggestionService interface {
	CreateSuggestion(ctx context.Context, req *dto.CreateSuggestionRequest) (*dto.SuggestionResponse, error)
	ApproveSuggestion(ctx context.Context, requestID string) error
	RejectSuggestion(ctx context.Context, requestID string) error
}

type suggestionServiceImpl struct {
	suggestionRepo repository.SuggestionRepo
	artistRepo     repository.ArtistRepo
}

func NewSuggestionService(suggestionRepo repository.SuggestionRepo, artistRepo repository.ArtistRepo) SuggestionService {
	return &suggestionServiceImpl{
		suggestionRepo: suggestionRepo,
		artistRepo:     artistRepo,
	}
}

func (s *suggestionServiceImpl) CreateSuggestion(ctx context.Context, req *dto.CreateSuggestionRequest) (*dto.SuggestionResponse, error) {
	existing, err := s.artistRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrArtistAlreadyExists
	}

	suggestion := &model.ArtistSuggestion{
		RequestID:     uuid.NewString(),
		Username:      req.Username,
		RequestStatus: consts.SuggestionStatusPending,
		Tags:          req.Tags,
	}
	if req.Country != "" {
		suggestion.Country = &req.Country
	}
	if err := s.suggestionRepo.CreateSuggestion(ctx, suggestion); err != nil {
		return nil, err
	}

	var response dto.SuggestionResponse
	if err := copier.Copy(&response, suggestion); err != nil {
		return nil, err
	}
	return &response, nil
}

func (s *suggestionServiceImpl) ApproveSuggestion(ctx context.Context, requestID string) error {
	return s.reviewSuggestion(ctx, requestID, consts.SuggestionStatusApproved)
}

func (s *suggestionServiceImpl) RejectSuggestion(ctx context.Context, requestID string) error {
	return s.reviewSuggestion(ctx, requestID, consts.SuggestionStatusRejected)
}

// reviewSuggestion 仅允许 pending 状态的申请进入审核结论
func (s *suggestionServiceImpl) reviewSuggestion(ctx context.Context, requestID string, to string) error {
	suggestion, err := s.suggestionRepo.GetByRequestID(ctx, requestID)
	if err != nil {
		return err
	}
	if suggestion == nil {
		return ErrSuggestionNotFound
	}

	updated, err := s.suggestionRepo.UpdateStatus(ctx, requestID, consts.SuggestionStatusPending, to)
	if err != nil {
		return err
	}
	if !updated {
		return ErrSuggestionFinalized
	}
	return nil
}
