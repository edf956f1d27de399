package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// BlobStore is the object storage used for menu item images.
type BlobStore interface {
	Upload(ctx context.Context, name, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, name string) error
	URL(name string) string
}

// Options for an S3-compatible backend. Endpoint stays empty for real AWS;
// set it (plus key/secret) for MinIO, Spaces or R2.
type Options struct {
	Bucket   string
	Region   string
	Key      string
	Secret   string
	Endpoint string
	BaseURL  string
}

type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3Store(ctx context.Context, opt Options) (*S3Store, error) {
	if opt.Bucket == "" {
		return nil, fmt.Errorf("storage/s3: bucket is not configured")
	}

	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(opt.Region),
	}
	// Static credentials are required for MinIO / R2 / Spaces.
	if opt.Key != "" && opt.Secret != "" {
		loadOpts = append(loadOpts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opt.Key, opt.Secret, ""),
		))
	}

	cfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("storage/s3: load config: %w", err)
	}

	clientOpts := []func(*s3.Options){}
	if opt.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(opt.Endpoint)
			o.UsePathStyle = true // required for MinIO
		})
	}

	baseURL := strings.TrimRight(opt.BaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", opt.Bucket, opt.Region)
	}

	return &S3Store{
		client:  s3.NewFromConfig(cfg, clientOpts...),
		bucket:  opt.Bucket,
		baseURL: baseURL,
	}, nil
}

// Upload stores the object and returns its public URL.
func (s *S3Store) Upload(ctx context.Context, name, contentType string, body io.Reader) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("storage/s3: put %s: %w", name, err)
	}
	return s.URL(name), nil
}

func (s *S3Store) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		return fmt.Errorf("storage/s3: delete %s: %w", name, err)
	}
	return nil
}

func (s *S3Store) URL(name string) string {
	return s.baseURL + "/" + strings.TrimLeft(name, "/")
}
