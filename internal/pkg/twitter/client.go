package twitter

import (
	"Dotcreator/internal/api/config"
	"Dotcreator/internal/pkg/consts"
	"context"
	log "log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// joinedLayout 源站注册时间格式："Sat Jun 11 21:49:51 +0000 2009"
const joinedLayout = "Mon Jan 02 15:04:05 -0700 2006"

type Client struct {
	httpClient    *resty.Client
	apiBaseURL    string
	mirrorBaseURL string
}

// NewClient 构造抓取客户端，主通道为 JSON 网关，镜像站 HTML 作为兜底
func NewClient(cfg config.TwitterConfig) *Client {
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20
	}

	client := resty.New().
		SetTimeout(time.Duration(timeout) * time.Second).
		SetHeader("User-Agent", ua)

	return &Client{
		httpClient:    client,
		apiBaseURL:    strings.TrimRight(cfg.APIBaseURL, "/"),
		mirrorBaseURL: strings.TrimRight(cfg.MirrorBaseURL, "/"),
	}
}

func (s *Client) FetchProfile(ctx context.Context, username string) (*Profile, error) {
	profile, err := s.fetchFromAPI(ctx, username)
	if err == nil {
		return profile, nil
	}
	if errors.Is(err, ErrProfileNotFound) || s.mirrorBaseURL == "" {
		return nil, err
	}

	log.WarnContext(ctx, "profile api failed, falling back to mirror", "username", username, "err", err)
	return s.fetchFromMirror(ctx, username)
}

type apiResponse struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	User    *apiUser `json:"user"`
}

type apiUser struct {
	ID          string `json:"id"`
	ScreenName  string `json:"screen_name"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatar_url"`
	BannerURL   string `json:"banner_url"`
	Website     string `json:"website"`
	URL         string `json:"url"`
	Joined      string `json:"joined"`
	Followers   int    `json:"followers"`
	Tweets      int    `json:"tweets"`
}

func (s *Client) fetchFromAPI(ctx context.Context, username string) (*Profile, error) {
	var out apiResponse
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetResult(&out).
		Get(s.apiBaseURL + "/" + username)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch profile %s", username)
	}

	switch resp.StatusCode() {
	case 404:
		return nil, ErrProfileNotFound
	case 429:
		return nil, ErrRateLimited
	}
	if !resp.IsSuccess() {
		return nil, errors.Errorf("fetch profile %s: unexpected status %d", username, resp.StatusCode())
	}
	if out.User == nil {
		return nil, ErrProfileNotFound
	}

	u := out.User
	profile := &Profile{
		UserID:         u.ID,
		Username:       u.ScreenName,
		Name:           u.Name,
		Biography:      u.Description,
		AvatarURL:      u.AvatarURL,
		BannerURL:      u.BannerURL,
		Website:        u.Website,
		URL:            u.URL,
		FollowersCount: u.Followers,
		TweetsCount:    u.Tweets,
	}
	if u.Joined != "" {
		if t, err := time.Parse(joinedLayout, u.Joined); err == nil {
			profile.JoinedAt = &t
		}
	}
	return profile, nil
}

// fetchFromMirror 从镜像站静态页解析计数，拿不到数字型 user_id
func (s *Client) fetchFromMirror(ctx context.Context, username string) (*Profile, error) {
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(s.mirrorBaseURL + "/" + username)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch mirror profile %s", username)
	}
	defer func() {
		_ = resp.RawBody().Close()
	}()

	switch resp.StatusCode() {
	case 404:
		return nil, ErrProfileNotFound
	case 429:
		return nil, ErrRateLimited
	}
	if !resp.IsSuccess() {
		return nil, errors.Errorf("fetch mirror profile %s: unexpected status %d", username, resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(resp.RawBody())
	if err != nil {
		return nil, errors.Wrapf(err, "parse mirror profile %s", username)
	}

	profile := &Profile{
		Username:       username,
		URL:            consts.ProfileURLPrefix + username,
		Name:           strings.TrimSpace(doc.Find(".profile-card-fullname").First().Text()),
		Biography:      strings.TrimSpace(doc.Find(".profile-bio").First().Text()),
		FollowersCount: parseStatCount(doc.Find(".followers .profile-stat-num").First().Text()),
		TweetsCount:    parseStatCount(doc.Find(".posts .profile-stat-num").First().Text()),
	}

	if href, ok := doc.Find(".profile-card-avatar").Attr("href"); ok {
		profile.AvatarURL = href
	}
	if src, ok := doc.Find(".profile-banner img").Attr("src"); ok {
		profile.BannerURL = src
	}
	if href, ok := doc.Find(".profile-website a").Attr("href"); ok {
		profile.Website = href
	}

	return profile, nil
}

func parseStatCount(raw string) int {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return 0
	}
	count := 0
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return count
		}
		count = count*10 + int(r-'0')
	}
	return count
}
