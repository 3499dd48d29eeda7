package es

import (
	"context"
	"errors"
	log "log/slog"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/versiontype"
)

type ArtistRepo interface {
	IndexArtist(ctx context.Context, artist *ArtistES, version int64) error
	DeleteArtist(ctx context.Context, userID string) error
}

type ArtistRepoImpl struct {
}

func NewArtistRepo() ArtistRepo {
	return &ArtistRepoImpl{}
}

func (s *ArtistRepoImpl) IndexArtist(ctx context.Context, artist *ArtistES, version int64) error {
	_, err := Client.Index(ArtistIndex).
		Id(artist.UserID).
		Document(artist).
		Version(strconv.FormatInt(version, 10)).
		VersionType(versiontype.External).
		Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == ConflictCode {
				log.Warn("Version conflict detected, skipping old data",
					"user_id", artist.UserID,
					"version", version)
				return nil
			}
		}
		return err
	}

	return nil
}

func (s *ArtistRepoImpl) DeleteArtist(ctx context.Context, userID string) error {
	_, err := Client.Delete(ArtistIndex, userID).Do(ctx)
	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == NotFoundCode {
				log.Warn("Artist already deleted or not found in ES", "user_id", userID)
				return nil
			}
		}
		return err
	}
	return nil
}
