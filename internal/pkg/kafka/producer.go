package kafka

import (
	"Dotcreator/internal/api/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// Publisher 画师事件发布接口
type Publisher interface {
	PublishArtistEvent(ctx context.Context, event *ArtistEvent) error
	Close() error
}

type syncPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewSyncPublisher 构造同步生产者，消息按 user_id 哈希分区
func NewSyncPublisher(cfg config.KafkaConfig) (Publisher, error) {
	saramaCfg := newSaramaConfig(cfg)

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &syncPublisher{
		producer: producer,
		topic:    cfg.Topic,
	}, nil
}

func (s *syncPublisher) PublishArtistEvent(ctx context.Context, event *ArtistEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(event.UserID),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := s.producer.SendMessage(msg)
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "artist event published",
		"type", event.Type,
		"user_id", event.UserID,
		"partition", partition,
		"offset", offset,
	)
	return nil
}

func (s *syncPublisher) Close() error {
	return s.producer.Close()
}
