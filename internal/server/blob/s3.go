// Package blob stores photo image bytes in S3-compatible object storage
// (MinIO in development). Database rows keep only keys and URLs.
package blob

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	sc "fitprogress/internal/server/config"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}
	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
		return c.DeleteObject(ctx, in, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Store uploads and removes objects in a single bucket.
type Store struct {
	config *sc.Config
}

// NewStore constructs a Store over the bucket named in config.
func NewStore(config *sc.Config) *Store {
	return &Store{config: config}
}

// NewStorageKey returns a fresh object key under the user's prefix,
// keeping the original file extension.
func NewStorageKey(userID string, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("users/%s/%v%s", userID, uuid.New(), ext)
}

func (s *Store) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3AccessKey,
			s.config.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.config.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	return client, nil
}

// Put uploads data under key and returns the public URL of the object.
func (s *Store) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket
	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return s.PublicURL(key), nil
}

// Delete removes the object under key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	client, err := s.getClient(ctx)
	if err != nil {
		return err
	}

	bucket := s.config.S3Bucket
	if _, err := deleteObject(client, ctx, &s3.DeleteObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

// PresignGet returns a time-limited GET URL for the object under key.
func (s *Store) PresignGet(ctx context.Context, key string) (string, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket
	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

// PublicURL builds the stable URL for key served through the configured
// public base (a CDN or the bucket endpoint itself).
func (s *Store) PublicURL(key string) string {
	base := strings.TrimRight(s.config.S3PublicBaseURL, "/")
	if base == "" {
		base = strings.TrimRight(s.config.S3BaseEndpoint, "/") + "/" + s.config.S3Bucket
	}
	return base + "/" + key
}
