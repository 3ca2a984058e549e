package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type localUploader struct {
	dir     string
	baseURL string
}

// NewLocalUploader stores files under dir and reports URLs below baseURL
// (typically "/uploads"). It is the zero-configuration default.
func NewLocalUploader(dir, baseURL string) (FileUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %q: %w", dir, err)
	}
	return &localUploader{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (u *localUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error) {
	// Keys may carry path separators ("goalkeepers/<id>.png").
	name := filepath.Join(u.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory for %q: %w", key, err)
	}

	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("failed to create file for %q: %w", key, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		return nil, fmt.Errorf("failed to write file for %q: %w", key, err)
	}

	return &UploadResult{
		Key:      key,
		Location: u.GetPublicURL(key),
	}, nil
}

func (u *localUploader) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(u.dir, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file for %q: %w", key, err)
	}
	return nil
}

func (u *localUploader) GetPublicURL(key string) string {
	return u.baseURL + "/" + strings.TrimPrefix(key, "/")
}
