package webhook

import (
	"Dotcreator/internal/api/config"
	"context"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

const (
	colorInfo  = 0x45A3FA
	colorError = 0xFA4545
)

// Notifier 任务级结果通知，尽力而为，通知失败不能影响任务本身
type Notifier interface {
	Notify(ctx context.Context, title string, body string, severity Severity)
}

type discordMessage struct {
	Username  string         `json:"username,omitempty"`
	AvatarURL string         `json:"avatar_url,omitempty"`
	Embeds    []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       int    `json:"color"`
	Timestamp   string `json:"timestamp"`
}

type DiscordNotifier struct {
	httpClient *resty.Client
	url        string
	username   string
	avatarURL  string
}

func NewDiscordNotifier(cfg config.WebhookConfig) *DiscordNotifier {
	return &DiscordNotifier{
		httpClient: resty.New().SetTimeout(10 * time.Second),
		url:        cfg.URL,
		username:   cfg.Username,
		avatarURL:  cfg.AvatarURL,
	}
}

func (s *DiscordNotifier) Notify(ctx context.Context, title string, body string, severity Severity) {
	if s.url == "" {
		return
	}

	color := colorInfo
	if severity == SeverityError {
		color = colorError
	}

	msg := discordMessage{
		Username:  s.username,
		AvatarURL: s.avatarURL,
		Embeds: []discordEmbed{
			{
				Title:       title,
				Description: body,
				Color:       color,
				Timestamp:   time.Now().UTC().Format(time.RFC3339),
			},
		},
	}

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		Post(s.url)
	if err != nil {
		log.ErrorContext(ctx, "send discord webhook error", "title", title, "err", err)
		return
	}
	if !resp.IsSuccess() {
		log.WarnContext(ctx, "discord webhook rejected", "title", title, "status", resp.StatusCode())
	}
}
