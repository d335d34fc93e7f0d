package blob

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sc "fitprogress/internal/server/config"
)

func testConfig() *sc.Config {
	return &sc.Config{
		S3AccessKey:     "minio",
		S3SecretKey:     "minio123",
		S3Bucket:        "photos",
		S3Region:        "us-east-1",
		S3BaseEndpoint:  "http://localhost:9000",
		S3PublicBaseURL: "https://cdn.example.com",
	}
}

func TestNewStorageKey(t *testing.T) {
	key := NewStorageKey("u1", "Selfie.JPG")
	assert.True(t, strings.HasPrefix(key, "users/u1/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	noExt := NewStorageKey("u1", "raw")
	assert.False(t, strings.Contains(noExt[len("users/u1/"):], "."))
}

func TestPut(t *testing.T) {
	origPut := putObject
	defer func() { putObject = origPut }()

	var gotKey, gotContentType string
	var gotBody []byte
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		gotKey = aws.ToString(in.Key)
		gotContentType = aws.ToString(in.ContentType)
		b, err := io.ReadAll(in.Body)
		if err != nil {
			return nil, err
		}
		gotBody = b
		return &s3.PutObjectOutput{}, nil
	}

	store := NewStore(testConfig())
	url, err := store.Put(context.Background(), "users/u1/a.jpg", []byte("jpegbytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/users/u1/a.jpg", url)
	assert.Equal(t, "users/u1/a.jpg", gotKey)
	assert.Equal(t, "image/jpeg", gotContentType)
	assert.Equal(t, []byte("jpegbytes"), gotBody)
}

func TestPut_Error(t *testing.T) {
	origPut := putObject
	defer func() { putObject = origPut }()

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return nil, errors.New("boom")
	}

	store := NewStore(testConfig())
	_, err := store.Put(context.Background(), "k", nil, "image/png")
	assert.ErrorContains(t, err, "boom")
}

func TestDelete(t *testing.T) {
	origDelete := deleteObject
	defer func() { deleteObject = origDelete }()

	var gotKey string
	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
		gotKey = aws.ToString(in.Key)
		return &s3.DeleteObjectOutput{}, nil
	}

	store := NewStore(testConfig())
	require.NoError(t, store.Delete(context.Background(), "users/u1/a.jpg"))
	assert.Equal(t, "users/u1/a.jpg", gotKey)
}

func TestPresignGet(t *testing.T) {
	origPresign := presignGetObject
	defer func() { presignGetObject = origPresign }()

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "https://signed.example.com/" + aws.ToString(in.Key)}, nil
	}

	store := NewStore(testConfig())
	url, err := store.PresignGet(context.Background(), "users/u1/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://signed.example.com/users/u1/a.jpg", url)
}

func TestPublicURL_FallsBackToEndpoint(t *testing.T) {
	cfg := testConfig()
	cfg.S3PublicBaseURL = ""
	store := NewStore(cfg)
	assert.Equal(t, "http://localhost:9000/photos/k.jpg", store.PublicURL("k.jpg"))
}
