// Package fsxs3 implements fsx.FileSystem over an S3 bucket.
package fsxs3

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/smartresume/smartresume/pkg/fsx"
)

// S3FileSystem stores files as objects in a single bucket
type S3FileSystem struct {
	client *s3.Client
	bucket string
}

// New creates an S3-backed file system for the given bucket
func New(client *s3.Client, bucket string) *S3FileSystem {
	return &S3FileSystem{client: client, bucket: bucket}
}

// ReadFile downloads an object and returns its full contents
func (f *S3FileSystem) ReadFile(ctx context.Context, filePath string) ([]byte, error) {
	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(filePath),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 get %q: %w", filePath, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("s3 read %q: %w", filePath, err)
	}
	return data, nil
}

// WriteFile uploads data as an object
func (f *S3FileSystem) WriteFile(ctx context.Context, filePath string, data []byte) error {
	return f.WriteFileStream(ctx, filePath, bytes.NewReader(data))
}

// WriteFileStream uploads a reader's contents as an object
func (f *S3FileSystem) WriteFileStream(ctx context.Context, filePath string, r io.Reader) error {
	_, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(filePath),
		Body:   r,
	})
	if err != nil {
		return fmt.Errorf("s3 put %q: %w", filePath, err)
	}
	return nil
}

// DeleteFile removes an object
func (f *S3FileSystem) DeleteFile(ctx context.Context, filePath string) error {
	_, err := f.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(filePath),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %q: %w", filePath, err)
	}
	return nil
}

// Join builds an object key from path segments
func (f *S3FileSystem) Join(parts ...string) string {
	return fsx.Join(parts...)
}
