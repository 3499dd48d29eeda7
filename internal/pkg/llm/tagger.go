package llm

import (
	"Dotcreator/internal/api/config"
	"context"
	log "log/slog"

	"github.com/goccy/go-json"
	"github.com/tmc/langchaingo/llms"
	"golang.org/x/sync/semaphore"
)

const maxSuggestedTags = 5

var tagSem = semaphore.NewWeighted(2)

// Tagger 根据简介给画师补充标签，失败或未启用时返回空
type Tagger interface {
	SuggestTags(ctx context.Context, bio string) ([]string, error)
}

type BioTagger struct{}

func NewBioTagger() Tagger {
	return &BioTagger{}
}

func (s *BioTagger) SuggestTags(ctx context.Context, bio string) ([]string, error) {
	if llmClient == nil || bio == "" {
		return nil, nil
	}

	if err := tagSem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer tagSem.Release(1)

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(artistTagPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(bio),
			},
		},
	}

	resp, err := llmClient.GenerateContent(ctx, messages,
		llms.WithModel(config.Cfg.LLM.Model),
		llms.WithTemperature(0.2),
	)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, nil
	}

	var tags []string
	if err = json.Unmarshal([]byte(resp.Choices[0].Content), &tags); err != nil {
		// 模型没有按约定输出 JSON 数组时放弃打标
		log.WarnContext(ctx, "unexpected tag output from model", "content", resp.Choices[0].Content)
		return nil, nil
	}

	if len(tags) > maxSuggestedTags {
		tags = tags[:maxSuggestedTags]
	}
	return tags, nil
}
