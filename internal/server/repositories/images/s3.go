package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/dmitrijs2005/caseintake/internal/common"
	"github.com/dmitrijs2005/caseintake/internal/server/models"
)

// Seams for tests.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// objectAPI is the slice of the S3 client the repository uses.
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Options configures the S3-backed store. Works against AWS or any
// S3-compatible backend (e.g. MinIO) via BaseEndpoint.
type S3Options struct {
	User         string
	Password     string
	Bucket       string
	Region       string
	BaseEndpoint string
}

// S3Repository stores each case image as one object: the body is the data
// URI text, filename and reported size travel as object metadata.
type S3Repository struct {
	client objectAPI
	bucket string
	now    func() time.Time
}

// NewS3Repository builds a repository over a client configured with static
// credentials and an optional custom endpoint.
func NewS3Repository(ctx context.Context, opts S3Options) (*S3Repository, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.User,
			opts.Password,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("aws config error: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	return &S3Repository{client: client, bucket: opts.Bucket, now: time.Now}, nil
}

func newS3RepositoryWithClient(client objectAPI, bucket string) *S3Repository {
	return &S3Repository{client: client, bucket: bucket, now: time.Now}
}

// Put uploads the payload under its key; an existing object is overwritten.
func (r *S3Repository) Put(ctx context.Context, img *models.CaseImage) error {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(img.Key),
		Body:        strings.NewReader(img.DataURI),
		ContentType: aws.String("text/plain"),
		Metadata: map[string]string{
			"name":        img.Name,
			"size":        strconv.FormatInt(img.Size, 10),
			"uploaded-at": r.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return fmt.Errorf("s3 put error: %w", err)
	}
	return nil
}

// Get downloads the object under key, or returns common.ErrNotFound.
func (r *S3Repository) Get(ctx context.Context, key string) (*models.CaseImage, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NoSuchKey
		if errors.As(err, &notFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("s3 get error: %w", err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("s3 read error: %w", err)
	}

	img := &models.CaseImage{Key: key, DataURI: string(body)}
	if v, ok := out.Metadata["name"]; ok {
		img.Name = v
	}
	if v, ok := out.Metadata["size"]; ok {
		if size, err := strconv.ParseInt(v, 10, 64); err == nil {
			img.Size = size
		}
	}
	if v, ok := out.Metadata["uploaded-at"]; ok {
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			img.UploadedAt = ts
		}
	}
	return img, nil
}
