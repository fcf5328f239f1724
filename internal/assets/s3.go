package assets

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// ObjectPutter is the slice of the S3 client the uploader needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Uploader struct {
	client ObjectPutter
	bucket string
	region string
	now    func() time.Time
	log    *zap.Logger
}

type S3Options struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// NewS3Client builds an S3 client for opts.Region. Static credentials are
// used when both keys are set, otherwise the default AWS chain applies.
func NewS3Client(ctx context.Context, opts S3Options) (*s3.Client, error) {
	loaders := []func(*awscfg.LoadOptions) error{awscfg.WithRegion(opts.Region)}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loaders = append(loaders, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}
	cfg, err := awscfg.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

func NewS3Uploader(client ObjectPutter, bucket, region string, log *zap.Logger) *S3Uploader {
	if log == nil {
		log = zap.NewNop()
	}
	return &S3Uploader{client: client, bucket: bucket, region: region, now: time.Now, log: log}
}

// WithClock replaces the clock used for object keys.
func (u *S3Uploader) WithClock(now func() time.Time) *S3Uploader {
	u.now = now
	return u
}

// Upload puts f under a timestamped key and returns the object's public URL.
// The URL is built locally; the bucket is not queried again.
func (u *S3Uploader) Upload(ctx context.Context, f File) (string, error) {
	if f.Name == "" {
		return "", fmt.Errorf("upload: file name is required")
	}
	key := ObjectKey(f.Name, u.now())
	contentType := DetectContentType(f)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(f.Data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(f.Data))),
	})
	if err != nil {
		u.log.Error("s3 put object failed", zap.String("bucket", u.bucket), zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("upload %s: %w", f.Name, err)
	}

	u.log.Info("asset uploaded", zap.String("key", key), zap.String("content_type", contentType), zap.Int("size", len(f.Data)))
	return PublicURL(u.bucket, u.region, key), nil
}
