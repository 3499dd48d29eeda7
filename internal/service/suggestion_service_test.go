package service

import (
	"Dotcreator/internal/api/dto"
	"Dotcreator/internal/model"
	"Dotcreator/internal/pkg/consts"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSuggestionRepo struct {
	byRequestID map[string]*model.ArtistSuggestion
	created     []*model.ArtistSuggestion
}

func (s *stubSuggestionRepo) CreateSuggestion(_ context.Context, suggestion *model.ArtistSuggestion) error {
	s.created = append(s.created, suggestion)
	return nil
}

func (s *stubSuggestionRepo) GetByRequestID(_ context.Context, requestID string) (*model.ArtistSuggestion, error) {
	return s.byRequestID[requestID], nil
}

func (s *stubSuggestionRepo) ListApproved(_ context.Context) ([]*model.ArtistSuggestion, error) {
	return nil, nil
}

func (s *stubSuggestionRepo) UpdateStatus(_ context.Context, requestID string, from string, to string) (bool, error) {
	suggestion, ok := s.byRequestID[requestID]
	if !ok || suggestion.RequestStatus != from {
		return false, nil
	}
	suggestion.RequestStatus = to
	return true, nil
}

func (s *stubSuggestionRepo) CountSuggestions(_ context.Context) (int64, error) {
	return int64(len(s.byRequestID)), nil
}

type stubArtistRepo struct {
	byUsername map[string]*model.Artist
}

func (s *stubArtistRepo) ListArtistsPage(_ context.Context, _ int, _ int) ([]*model.Artist, error) {
	return nil, nil
}

func (s *stubArtistRepo) GetByUserID(_ context.Context, _ string) (*model.Artist, error) {
	return nil, nil
}

func (s *stubArtistRepo) GetByUsername(_ context.Context, username string) (*model.Artist, error) {
	return s.byUsername[username], nil
}

func (s *stubArtistRepo) UpdateProfile(_ context.Context, _ *model.Artist) error {
	return nil
}

func (s *stubArtistRepo) CreateArtistWithSuggestion(_ context.Context, _ *model.Artist, _ string) error {
	return nil
}

func (s *stubArtistRepo) CountArtists(_ context.Context) (int64, error) {
	return 0, nil
}

func TestCreateSuggestion(t *testing.T) {
	suggestionRepo := &stubSuggestionRepo{byRequestID: map[string]*model.ArtistSuggestion{}}
	artistRepo := &stubArtistRepo{byUsername: map[string]*model.Artist{}}
	svc := NewSuggestionService(suggestionRepo, artistRepo)

	resp, err := svc.CreateSuggestion(t.Context(), &dto.CreateSuggestionRequest{
		Username: "alice",
		Country:  "JP",
		Tags:     []string{"pixelart"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, consts.SuggestionStatusPending, resp.RequestStatus)
	require.Len(t, suggestionRepo.created, 1)
	assert.Equal(t, "alice", suggestionRepo.created[0].Username)
}

func TestCreateSuggestionForTrackedArtist(t *testing.T) {
	suggestionRepo := &stubSuggestionRepo{byRequestID: map[string]*model.ArtistSuggestion{}}
	artistRepo := &stubArtistRepo{byUsername: map[string]*model.Artist{
		"alice": {UserID: "u1", Username: "alice"},
	}}
	svc := NewSuggestionService(suggestionRepo, artistRepo)

	_, err := svc.CreateSuggestion(t.Context(), &dto.CreateSuggestionRequest{Username: "alice"})
	assert.ErrorIs(t, err, ErrArtistAlreadyExists)
	assert.Empty(t, suggestionRepo.created)
}

func TestReviewSuggestionTransitions(t *testing.T) {
	suggestionRepo := &stubSuggestionRepo{byRequestID: map[string]*model.ArtistSuggestion{
		"req-1": {RequestID: "req-1", Username: "alice", RequestStatus: consts.SuggestionStatusPending},
		"req-2": {RequestID: "req-2", Username: "bob", RequestStatus: consts.SuggestionStatusRejected},
	}}
	artistRepo := &stubArtistRepo{byUsername: map[string]*model.Artist{}}
	svc := NewSuggestionService(suggestionRepo, artistRepo)

	require.NoError(t, svc.ApproveSuggestion(t.Context(), "req-1"))
	assert.Equal(t, consts.SuggestionStatusApproved, suggestionRepo.byRequestID["req-1"].RequestStatus)

	// 已出结论的申请不允许再变更
	assert.ErrorIs(t, svc.ApproveSuggestion(t.Context(), "req-1"), ErrSuggestionFinalized)
	assert.ErrorIs(t, svc.RejectSuggestion(t.Context(), "req-2"), ErrSuggestionFinalized)

	assert.ErrorIs(t, svc.ApproveSuggestion(t.Context(), "missing"), ErrSuggestionNotFound)
}
