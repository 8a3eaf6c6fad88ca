// Package storage fetches uploaded résumé files from S3-compatible object
// storage (AWS S3 or Cloudflare R2).
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
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/config"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/ingestion"
)

// DefaultMaxBytes caps a single fetched object.
const DefaultMaxBytes = 10 * 1024 * 1024

const fetchAttempts = 3

// ErrObjectNotFound is returned when the bucket has no object under a key.
var ErrObjectNotFound = errors.New("object not found")

// ObjectGetter is the subset of the S3 API used here. *s3.Client satisfies it.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// FetchError describes a failed object download.
type FetchError struct {
	Key     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to fetch object %s: %s: %v", e.Key, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to fetch object %s: %s", e.Key, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Object is a downloaded file.
type Object struct {
	Key         string
	ContentType string
	Data        []byte
}

// Client downloads objects from one bucket.
type Client struct {
	api      ObjectGetter
	bucket   string
	maxBytes int64
	backoff  time.Duration
}

// New builds a client from the storage settings. An explicit endpoint wins;
// otherwise an account ID selects the Cloudflare R2 endpoint, and with
// neither the default AWS endpoint for the region is used.
func New(ctx context.Context, cfg config.StorageConfig) (*Client, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is not configured")
	}
	region := cfg.Region
	if region == "" {
		region = "auto"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	endpoint := Endpoint(cfg)
	api := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return NewWithAPI(api, cfg.Bucket), nil
}

// Endpoint resolves the base endpoint for cfg, or "" for the AWS default.
func Endpoint(cfg config.StorageConfig) string {
	switch {
	case cfg.Endpoint != "":
		return cfg.Endpoint
	case cfg.AccountID != "":
		return fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
	default:
		return ""
	}
}

// NewWithAPI wraps an existing S3 API implementation.
func NewWithAPI(api ObjectGetter, bucket string) *Client {
	return &Client{
		api:      api,
		bucket:   bucket,
		maxBytes: DefaultMaxBytes,
		backoff:  500 * time.Millisecond,
	}
}

// Bucket returns the bucket name.
func (c *Client) Bucket() string {
	return c.bucket
}

// Fetch downloads key, retrying transient failures.
func (c *Client) Fetch(ctx context.Context, key string) (Object, error) {
	if key == "" {
		return Object{}, &FetchError{Key: key, Message: "object key is empty"}
	}

	var lastErr error
	for attempt := 0; attempt < fetchAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return Object{}, &FetchError{Key: key, Message: "cancelled", Cause: ctx.Err()}
			case <-time.After(c.backoff * time.Duration(attempt)):
			}
		}

		obj, err := c.fetchOnce(ctx, key)
		if err == nil {
			return obj, nil
		}
		lastErr = err
		if errors.Is(err, ErrObjectNotFound) || ctx.Err() != nil {
			break
		}
	}
	return Object{}, &FetchError{Key: key, Message: "download failed", Cause: lastErr}
}

func (c *Client) fetchOnce(ctx context.Context, key string) (Object, error) {
	out, err := c.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *s3types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return Object{}, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return Object{}, fmt.Errorf("failed to get object: %w", err)
	}
	defer out.Body.Close()

	buf := new(bytes.Buffer)
	n, err := io.Copy(buf, io.LimitReader(out.Body, c.maxBytes+1))
	if err != nil {
		return Object{}, fmt.Errorf("failed to read object body: %w", err)
	}
	if n > c.maxBytes {
		return Object{}, fmt.Errorf("object exceeds %d bytes", c.maxBytes)
	}

	return Object{
		Key:         key,
		ContentType: aws.ToString(out.ContentType),
		Data:        buf.Bytes(),
	}, nil
}

// LoadDocument downloads key and extracts it into a document. It matches
// pipeline.Loader, so stored objects can be batch-analyzed directly.
func (c *Client) LoadDocument(ctx context.Context, key string) (ingestion.Document, error) {
	obj, err := c.Fetch(ctx, key)
	if err != nil {
		return ingestion.Document{}, err
	}
	doc, err := ingestion.FromBytes(obj.Key, obj.ContentType, obj.Data)
	if err != nil {
		return ingestion.Document{}, err
	}
	doc.Source.ObjectKey = key
	return doc, nil
}
