package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Object is one blob headed for the bucket.
type Object struct {
	Key         string
	ContentType string
	Body        io.Reader
	Size        int64
}

// ObjectStore persists uploads and hands back the durable public URL the
// database keeps. Implementations must not retry, callers decide what a
// failed upload means.
type ObjectStore interface {
	Upload(context.Context, Object) (string, error)
}

type s3ObjectStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewS3ObjectStore serves any S3-compatible endpoint. baseURL is the
// public root the bucket is exposed under.
func NewS3ObjectStore(client *s3.Client, bucket string, baseURL string) ObjectStore {
	return &s3ObjectStore{client: client, bucket: bucket, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *s3ObjectStore) Upload(ctx context.Context, obj Object) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(obj.Key),
		Body:          obj.Body,
		ContentType:   aws.String(obj.ContentType),
		ContentLength: obj.Size,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s - %w", obj.Key, err)
	}

	return fmt.Sprintf("%s/%s", s.baseURL, obj.Key), nil
}
