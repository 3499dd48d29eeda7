package media

import (
	"Dotcreator/internal/pkg/minio"
	"bytes"
	"context"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const (
	avatarMaxWidth = 400
	bannerMaxWidth = 1500
	jpegQuality    = 85
)

// MirrorResult 转存后的对象公共地址，未转存的字段为 nil
type MirrorResult struct {
	AvatarURL *string
	BannerURL *string
}

// Mirror 把源站 CDN 的头像/横幅转存到自有对象存储
type Mirror interface {
	MirrorProfileImages(ctx context.Context, userID string, avatarURL string, bannerURL string) (*MirrorResult, error)
}

type minioMirror struct {
	httpClient *resty.Client
}

func NewMinioMirror() Mirror {
	return &minioMirror{
		httpClient: resty.New().SetTimeout(15 * time.Second),
	}
}

func (s *minioMirror) MirrorProfileImages(ctx context.Context, userID string, avatarURL string, bannerURL string) (*MirrorResult, error) {
	if minio.Client == nil {
		return nil, nil
	}

	result := &MirrorResult{}

	if avatarURL != "" {
		url, err := s.mirrorImage(ctx, avatarURL, "artists/avatar/"+userID+".jpg", avatarMaxWidth)
		if err != nil {
			return nil, errors.Wrapf(err, "mirror avatar for %s", userID)
		}
		result.AvatarURL = &url
	}

	if bannerURL != "" {
		url, err := s.mirrorImage(ctx, bannerURL, "artists/banner/"+userID+".jpg", bannerMaxWidth)
		if err != nil {
			return nil, errors.Wrapf(err, "mirror banner for %s", userID)
		}
		result.BannerURL = &url
	}

	return result, nil
}

func (s *minioMirror) mirrorImage(ctx context.Context, sourceURL string, objectName string, maxWidth int) (string, error) {
	resp, err := s.httpClient.R().SetContext(ctx).Get(sourceURL)
	if err != nil {
		return "", err
	}
	if !resp.IsSuccess() {
		return "", errors.Errorf("download image: unexpected status %d", resp.StatusCode())
	}

	img, err := imaging.Decode(bytes.NewReader(resp.Body()))
	if err != nil {
		return "", err
	}

	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", err
	}

	key, err := minio.UploadFile(ctx, objectName, &buf, int64(buf.Len()), "image/jpeg")
	if err != nil {
		return "", err
	}

	return minio.GetPublicURL(key), nil
}
