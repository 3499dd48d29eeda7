package job

import (
	"Dotcreator/internal/model"
	"Dotcreator/internal/pkg/twitter"
	"Dotcreator/internal/pkg/webhook"
	"context"
	"sync"

	"github.com/pkg/errors"
)

type fakeArtistRepo struct {
	mu        sync.Mutex
	artists   []*model.Artist
	updated   map[string]*model.Artist
	created   []*model.Artist
	listErr   error
	createErr error
	statuses  map[string]string
}

func newFakeArtistRepo(artists ...*model.Artist) *fakeArtistRepo {
	return &fakeArtistRepo{
		artists:  artists,
		updated:  make(map[string]*model.Artist),
		statuses: make(map[string]string),
	}
}

func (s *fakeArtistRepo) ListArtistsPage(_ context.Context, page int, pageSize int) ([]*model.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	start := (page - 1) * pageSize
	if start >= len(s.artists) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(s.artists) {
		end = len(s.artists)
	}
	return s.artists[start:end], nil
}

func (s *fakeArtistRepo) GetByUserID(_ context.Context, userID string) (*model.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, artist := range s.artists {
		if artist.UserID == userID {
			return artist, nil
		}
	}
	return nil, nil
}

func (s *fakeArtistRepo) GetByUsername(_ context.Context, username string) (*model.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, artist := range s.artists {
		if artist.Username == username {
			return artist, nil
		}
	}
	return nil, nil
}

func (s *fakeArtistRepo) UpdateProfile(_ context.Context, artist *model.Artist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *artist
	s.updated[artist.UserID] = &copied
	return nil
}

func (s *fakeArtistRepo) CreateArtistWithSuggestion(_ context.Context, artist *model.Artist, requestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// 事务中途失败时两个写入都不可见
	if s.createErr != nil {
		return s.createErr
	}
	if s.statuses[requestID] != "approved" {
		return errors.New("suggestion is not in approved state")
	}
	s.statuses[requestID] = "created"
	s.created = append(s.created, artist)
	s.artists = append(s.artists, artist)
	return nil
}

func (s *fakeArtistRepo) CountArtists(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.artists)), nil
}

type fakeTrendRepo struct {
	mu       sync.Mutex
	byUser   map[string][]*model.ArtistTrending
	appended int
}

func newFakeTrendRepo() *fakeTrendRepo {
	return &fakeTrendRepo{byUser: make(map[string][]*model.ArtistTrending)}
}

func (s *fakeTrendRepo) AppendTrend(_ context.Context, trend *model.ArtistTrending) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUser[trend.UserID] = append([]*model.ArtistTrending{trend}, s.byUser[trend.UserID]...)
	s.appended++
	return nil
}

func (s *fakeTrendRepo) GetRecentTrends(_ context.Context, userID string, limit int) ([]*model.ArtistTrending, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	trends := s.byUser[userID]
	if len(trends) > limit {
		trends = trends[:limit]
	}
	return trends, nil
}

type fakeSuggestionRepo struct {
	mu          sync.Mutex
	suggestions []*model.ArtistSuggestion
	artistRepo  *fakeArtistRepo
	listErr     error
}

func newFakeSuggestionRepo(artistRepo *fakeArtistRepo, suggestions ...*model.ArtistSuggestion) *fakeSuggestionRepo {
	for _, suggestion := range suggestions {
		artistRepo.statuses[suggestion.RequestID] = suggestion.RequestStatus
	}
	return &fakeSuggestionRepo{suggestions: suggestions, artistRepo: artistRepo}
}

func (s *fakeSuggestionRepo) CreateSuggestion(_ context.Context, suggestion *model.ArtistSuggestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suggestions = append(s.suggestions, suggestion)
	return nil
}

func (s *fakeSuggestionRepo) GetByRequestID(_ context.Context, requestID string) (*model.ArtistSuggestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, suggestion := range s.suggestions {
		if suggestion.RequestID == requestID {
			return suggestion, nil
		}
	}
	return nil, nil
}

func (s *fakeSuggestionRepo) ListApproved(_ context.Context) ([]*model.ArtistSuggestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	s.artistRepo.mu.Lock()
	defer s.artistRepo.mu.Unlock()
	approved := make([]*model.ArtistSuggestion, 0)
	for _, suggestion := range s.suggestions {
		if s.artistRepo.statuses[suggestion.RequestID] == "approved" {
			approved = append(approved, suggestion)
		}
	}
	return approved, nil
}

func (s *fakeSuggestionRepo) UpdateStatus(_ context.Context, requestID string, from string, to string) (bool, error) {
	s.artistRepo.mu.Lock()
	defer s.artistRepo.mu.Unlock()
	if s.artistRepo.statuses[requestID] != from {
		return false, nil
	}
	s.artistRepo.statuses[requestID] = to
	return true, nil
}

func (s *fakeSuggestionRepo) CountSuggestions(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.suggestions)), nil
}

type fakeFetcher struct {
	mu       sync.Mutex
	profiles map[string]*twitter.Profile
	errs     map[string]error
	calls    []string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		profiles: make(map[string]*twitter.Profile),
		errs:     make(map[string]error),
	}
}

func (s *fakeFetcher) FetchProfile(_ context.Context, username string) (*twitter.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, username)
	if err, ok := s.errs[username]; ok {
		return nil, err
	}
	if profile, ok := s.profiles[username]; ok {
		return profile, nil
	}
	return nil, twitter.ErrProfileNotFound
}

type notification struct {
	title    string
	body     string
	severity webhook.Severity
}

type fakeNotifier struct {
	mu            sync.Mutex
	notifications []notification
}

func (s *fakeNotifier) Notify(_ context.Context, title string, body string, severity webhook.Severity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, notification{title: title, body: body, severity: severity})
}
