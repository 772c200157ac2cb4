// Package fsx abstracts file storage so services can read and write
// uploaded files without knowing where they live.
package fsx

import (
	"context"
	"io"
	"path"
)

// FileReader reads stored files
type FileReader interface {
	ReadFile(ctx context.Context, filePath string) ([]byte, error)
}

// FileSystem reads, writes and deletes stored files
type FileSystem interface {
	FileReader
	WriteFile(ctx context.Context, filePath string, data []byte) error
	WriteFileStream(ctx context.Context, filePath string, r io.Reader) error
	DeleteFile(ctx context.Context, filePath string) error
	Join(parts ...string) string
}

// Join is the default slash-separated path join used by implementations
func Join(parts ...string) string {
	return path.Join(parts...)
}
