package twitter

import (
	"Dotcreator/internal/api/config"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aliceAPIBody = `{
	"code": 200,
	"message": "ok",
	"user": {
		"id": "44196397",
		"screen_name": "alice",
		"name": "Alice",
		"description": "pixel artist",
		"avatar_url": "https://cdn.example.com/a.jpg",
		"banner_url": "https://cdn.example.com/b.jpg",
		"website": "https://alice.example.com",
		"url": "https://x.com/alice",
		"joined": "Sat Jun 11 21:49:51 +0000 2009",
		"followers": 1234,
		"tweets": 567
	}
}`

const aliceMirrorBody = `<html><body>
<div class="profile-card">
  <a class="profile-card-fullname">Alice</a>
  <div class="profile-bio"><p>pixel artist</p></div>
  <div class="profile-website"><a href="https://alice.example.com">alice.example.com</a></div>
  <a class="profile-card-avatar" href="https://mirror.example.com/pic/a.jpg"></a>
</div>
<div class="profile-banner"><img src="https://mirror.example.com/pic/b.jpg"/></div>
<ul class="profile-statlist">
  <li class="posts"><span class="profile-stat-num">5,670</span></li>
  <li class="followers"><span class="profile-stat-num">12,345</span></li>
</ul>
</body></html>`

func TestFetchProfileFromAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/alice", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(aliceAPIBody))
	}))
	defer server.Close()

	client := NewClient(config.TwitterConfig{APIBaseURL: server.URL})
	profile, err := client.FetchProfile(t.Context(), "alice")
	require.NoError(t, err)

	assert.Equal(t, "44196397", profile.UserID)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, "pixel artist", profile.Biography)
	assert.Equal(t, 1234, profile.FollowersCount)
	assert.Equal(t, 567, profile.TweetsCount)
	require.NotNil(t, profile.JoinedAt)
	assert.Equal(t, 2009, profile.JoinedAt.Year())
}

func TestFetchProfileNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(config.TwitterConfig{APIBaseURL: server.URL})
	_, err := client.FetchProfile(t.Context(), "nobody")
	assert.True(t, errors.Is(err, ErrProfileNotFound))
}

func TestFetchProfileRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(config.TwitterConfig{APIBaseURL: server.URL})
	_, err := client.FetchProfile(t.Context(), "alice")
	assert.True(t, errors.Is(err, ErrRateLimited))
}

func TestFetchProfileFallsBackToMirror(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer api.Close()

	mirror := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/alice", r.URL.Path)
		_, _ = w.Write([]byte(aliceMirrorBody))
	}))
	defer mirror.Close()

	client := NewClient(config.TwitterConfig{APIBaseURL: api.URL, MirrorBaseURL: mirror.URL})
	profile, err := client.FetchProfile(t.Context(), "alice")
	require.NoError(t, err)

	// 镜像站拿不到数字型账号 ID
	assert.Empty(t, profile.UserID)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, "pixel artist", profile.Biography)
	assert.Equal(t, 12345, profile.FollowersCount)
	assert.Equal(t, 5670, profile.TweetsCount)
	assert.Equal(t, "https://mirror.example.com/pic/a.jpg", profile.AvatarURL)
	assert.Equal(t, "https://mirror.example.com/pic/b.jpg", profile.BannerURL)
	assert.Equal(t, "https://alice.example.com", profile.Website)
}

func TestFetchProfileDoesNotFallBackOnNotFound(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer api.Close()

	mirrorCalled := false
	mirror := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mirrorCalled = true
		_, _ = w.Write([]byte(aliceMirrorBody))
	}))
	defer mirror.Close()

	client := NewClient(config.TwitterConfig{APIBaseURL: api.URL, MirrorBaseURL: mirror.URL})
	_, err := client.FetchProfile(t.Context(), "nobody")
	assert.True(t, errors.Is(err, ErrProfileNotFound))
	assert.False(t, mirrorCalled)
}
