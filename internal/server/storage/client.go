// Package storage wraps the S3-compatible object storage API (Cloudflare R2,
// MinIO, ...) behind a small passthrough client. One Client is constructed at
// startup and injected into handlers; there is no package-level state.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/dmitrijs2005/r2vault/internal/common"
	sc "github.com/dmitrijs2005/r2vault/internal/server/config"
)

// s3API is the slice of the S3 client the passthrough needs. *s3.Client
// satisfies it; tests supply a fake.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

type Client struct {
	api s3API
}

// Object is a downloaded object: its full body and the stored content type.
type Object struct {
	Body        []byte
	ContentType string
}

type BucketInfo struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type ObjectInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

// NewClient builds an S3 client for the configured endpoint with static
// credentials.
func NewClient(ctx context.Context, cfg *sc.Config) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.R2Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.R2AccessKeyID,
			cfg.R2SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("aws config error: %w", err)
	}

	api := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.BaseEndpoint())
	})

	return &Client{api: api}, nil
}

// Upload stores body under bucket/key. contentType may be empty.
func (c *Client) Upload(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(body),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := c.api.PutObject(ctx, input); err != nil {
		return fmt.Errorf("put object: %w", err)
	}
	return nil
}

// Download fetches bucket/key in full. Unknown keys and buckets map to
// common.ErrorNotFound.
func (c *Client) Download(ctx context.Context, bucket, key string) (*Object, error) {
	out, err := c.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("get object: %w", err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read object body: %w", err)
	}

	return &Object{Body: body, ContentType: aws.ToString(out.ContentType)}, nil
}

func (c *Client) ListBuckets(ctx context.Context) ([]BucketInfo, error) {
	out, err := c.api.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("list buckets: %w", err)
	}

	buckets := make([]BucketInfo, 0, len(out.Buckets))
	for _, b := range out.Buckets {
		buckets = append(buckets, BucketInfo{
			Name:      aws.ToString(b.Name),
			CreatedAt: aws.ToTime(b.CreationDate),
		})
	}
	return buckets, nil
}

// ListObjects returns the first page of objects in bucket. Pagination is
// intentionally not exposed.
func (c *Client) ListObjects(ctx context.Context, bucket string) ([]ObjectInfo, error) {
	out, err := c.api.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("list objects: %w", err)
	}

	objects := make([]ObjectInfo, 0, len(out.Contents))
	for _, o := range out.Contents {
		objects = append(objects, ObjectInfo{
			Key:          aws.ToString(o.Key),
			Size:         aws.ToInt64(o.Size),
			LastModified: aws.ToTime(o.LastModified),
		})
	}
	return objects, nil
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	var noSuchBucket *types.NoSuchBucket
	var notFound *types.NotFound
	return errors.As(err, &noSuchKey) || errors.As(err, &noSuchBucket) || errors.As(err, &notFound)
}
