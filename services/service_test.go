package services

import (
	"context"
	"io"

	"github.com/gbfmachado/gkpro-system/repositories"
	"github.com/gbfmachado/gkpro-system/storage"
)

// memStore keeps collections in memory for service tests.
type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Load(ctx context.Context, name string) ([]byte, error) {
	data, ok := m.data[name]
	if !ok {
		return nil, storage.ErrCollectionNotFound
	}
	return data, nil
}

func (m *memStore) Save(ctx context.Context, name string, data []byte) error {
	m.data[name] = data
	return nil
}

func newTestRepo() *repositories.Repository {
	return repositories.New(context.Background(), newMemStore())
}

// fakeUploader records the last upload and returns a fixed location.
type fakeUploader struct {
	lastKey         string
	lastContentType string
}

func (f *fakeUploader) Upload(ctx context.Context, key, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	f.lastKey = key
	f.lastContentType = contentType
	_, _ = io.Copy(io.Discard, reader)
	return &storage.UploadResult{Key: key, Location: "https://cdn.example.com/" + key}, nil
}

func (f *fakeUploader) Delete(ctx context.Context, key string) error { return nil }

func (f *fakeUploader) GetPublicURL(key string) string { return "https://cdn.example.com/" + key }
