// Package fsxmem implements fsx.FileSystem in memory, for tests and
// local development without object storage.
package fsxmem

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/smartresume/smartresume/pkg/fsx"
)

// MemFileSystem keeps files in a map guarded by a mutex
type MemFileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// New creates an empty in-memory file system
func New() *MemFileSystem {
	return &MemFileSystem{files: make(map[string][]byte)}
}

// ReadFile returns a copy of a stored file
func (f *MemFileSystem) ReadFile(_ context.Context, filePath string) ([]byte, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	data, ok := f.files[filePath]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", filePath)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// WriteFile stores a copy of data under filePath
func (f *MemFileSystem) WriteFile(_ context.Context, filePath string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	f.files[filePath] = stored
	return nil
}

// WriteFileStream stores the reader's contents under filePath
func (f *MemFileSystem) WriteFileStream(ctx context.Context, filePath string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read stream for %q: %w", filePath, err)
	}
	return f.WriteFile(ctx, filePath, data)
}

// DeleteFile removes a stored file
func (f *MemFileSystem) DeleteFile(_ context.Context, filePath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.files[filePath]; !ok {
		return fmt.Errorf("file not found: %s", filePath)
	}
	delete(f.files, filePath)
	return nil
}

// Join builds a storage key from path segments
func (f *MemFileSystem) Join(parts ...string) string {
	return fsx.Join(parts...)
}
