package infra_s3_poster

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/humanbelnik/kinomatch/core/internal/model"
)

const DefaultURLTTL = time.Hour

//go:generate mockery --name=Catalog --output=./mocks/poster/catalog --filename=catalog.go
type Catalog interface {
	LoadByID(ctx context.Context, id model.MediaID) (model.Media, error)
	LoadByIDs(ctx context.Context, ids []model.MediaID) ([]model.Media, error)
}

// Resolver decorates a media catalog: poster paths stored as object keys
// are replaced by presigned GET links to the bucket.
type Resolver struct {
	next      Catalog
	presigner *s3.PresignClient
	bucket    string
	ttl       time.Duration
	logger    *slog.Logger
}

type Option func(*Resolver)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

func WithURLTTL(ttl time.Duration) Option {
	return func(r *Resolver) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

func New(next Catalog, client *s3.Client, bucket string, opts ...Option) *Resolver {
	r := &Resolver{
		next:      next,
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
		ttl:       DefaultURLTTL,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resolver) LoadByID(ctx context.Context, id model.MediaID) (model.Media, error) {
	media, err := r.next.LoadByID(ctx, id)
	if err != nil {
		return model.Media{}, err
	}
	media.PosterPath = r.resolve(ctx, media.PosterPath)
	return media, nil
}

func (r *Resolver) LoadByIDs(ctx context.Context, ids []model.MediaID) ([]model.Media, error) {
	media, err := r.next.LoadByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range media {
		media[i].PosterPath = r.resolve(ctx, media[i].PosterPath)
	}
	return media, nil
}

// resolve keeps absolute links and empty paths as they are. A failed
// presign leaves the raw key in place.
func (r *Resolver) resolve(ctx context.Context, path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	req, err := r.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(strings.TrimPrefix(path, "/")),
	}, s3.WithPresignExpires(r.ttl))
	if err != nil {
		r.logger.Warn("failed to presign poster",
			slog.String("key", path),
			slog.String("error", err.Error()))
		return path
	}
	return req.URL
}
