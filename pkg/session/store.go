package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Store persists the single credential slot across application restarts.
// It is the Go analog of the one localStorage key a browser client would use.
type Store interface {
	// Load returns the stored credential.
	// Returns ErrNoCredential if the slot is empty.
	Load(ctx context.Context) (string, error)

	// Save replaces the stored credential.
	Save(ctx context.Context, credential string) error

	// Clear empties the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}

// MemoryStore keeps the credential in process memory. It does not survive
// restarts; useful for tests and ephemeral sessions.
type MemoryStore struct {
	mu         sync.Mutex
	credential string
	set        bool
}

// NewMemoryStore creates an empty in-memory credential store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", ErrNoCredential
	}
	return s.credential, nil
}

func (s *MemoryStore) Save(_ context.Context, credential string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = credential
	s.set = true
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = ""
	s.set = false
	return nil
}

// FileStore keeps the credential in a single file, surviving restarts.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file-backed credential store at the given path.
// The file is created on first Save with owner-only permissions.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoCredential
	}
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", ErrNoCredential
	}
	return string(data), nil
}

func (s *FileStore) Save(_ context.Context, credential string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, []byte(credential), 0o600)
}

func (s *FileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// RedisStore keeps the credential under a single Redis key.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

// NewRedisStore creates a Redis-backed credential store using the given key.
func NewRedisStore(client redis.UniversalClient, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Load(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoCredential
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisStore) Save(ctx context.Context, credential string) error {
	return s.client.Set(ctx, s.key, credential, 0).Err()
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
