package seed

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// s3Loader implements Loader for reading the seed catalogue from AWS S3.
type s3Loader struct {
	client *s3.Client
	bucket string
	key    string
	logger zerolog.Logger
}

// NewS3Loader creates an S3-based catalogue loader.
func NewS3Loader(ctx context.Context, bucket, key, region string, logger zerolog.Logger) (Loader, error) {
	logger = logger.With().Str("component", "s3-seed-loader").Logger()

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("key", key).
		Str("region", region).
		Msg("S3 seed loader initialised")

	return &s3Loader{
		client: client,
		bucket: bucket,
		key:    key,
		logger: logger,
	}, nil
}

// Load downloads and decodes the catalogue object.
func (l *s3Loader) Load(ctx context.Context) (*Catalog, error) {
	l.logger.Info().Str("bucket", l.bucket).Str("key", l.key).Msg("downloading seed catalogue")

	out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(l.key),
	})
	if err != nil {
		l.logger.Error().Err(err).Str("key", l.key).Msg("failed to download seed catalogue")
		return nil, fmt.Errorf("failed to download seed catalogue s3://%s/%s: %w", l.bucket, l.key, err)
	}
	defer out.Body.Close()

	return decodeCatalog(out.Body)
}
