package kv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3API is the part of *s3.Client used by S3Repository.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Repository stores every key as a separate object under prefix.
type S3Repository struct {
	client S3API
	bucket string
	prefix string
}

func NewS3Repository(client S3API, bucket, prefix string) *S3Repository {
	return &S3Repository{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

func (r *S3Repository) objectKey(key string) string {
	if r.prefix == "" {
		return key + ".json"
	}
	return path.Join(r.prefix, key+".json")
}

func (r *S3Repository) Get(ctx context.Context, key string) (string, bool, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.objectKey(key)),
	})
	if err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get object %s: %w", r.objectKey(key), err)
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return "", false, fmt.Errorf("failed to read object %s: %w", r.objectKey(key), err)
	}
	return string(b), true, nil
}

func (r *S3Repository) Set(ctx context.Context, key string, value string) error {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(r.objectKey(key)),
		Body:        strings.NewReader(value),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", r.objectKey(key), err)
	}
	return nil
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	// MinIO and some gateways answer with a bare NotFound code.
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
