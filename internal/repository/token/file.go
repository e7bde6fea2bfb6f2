package token

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dajor/bewirtungsbeleg-sub002/pkg/logger"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/model"
)

const (
	storageFileName = "tokens.json"
	janitorInterval = time.Minute
)

// fileEntry is the persisted form of a stored value. ExpiresAt is checked on
// every read since the filesystem has no native TTL.
type fileEntry struct {
	Data      string    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// fileStore implements Store on a JSON file guarded by a process-wide mutex.
// It survives restarts but not multi-instance deployments; it exists so the
// service stays usable in development without Redis.
type fileStore struct {
	mu      sync.Mutex
	path    string
	entries map[string]fileEntry
	done    chan struct{}
}

// NewFileStore creates a file-backed token store rooted at dir. When dir is
// empty a directory under the OS temp dir is used.
func NewFileStore(dir string) (Store, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "bewirtungsbeleg-tokens")
	}

	err := os.MkdirAll(dir, 0700)
	if err != nil {
		return nil, fmt.Errorf("failed to create token storage directory: %w", err)
	}

	s := &fileStore{
		path:    filepath.Join(dir, storageFileName),
		entries: make(map[string]fileEntry),
		done:    make(chan struct{}),
	}

	s.load()
	go s.janitor()

	return s, nil
}

// load reads previously persisted entries and drops the expired ones
func (s *fileStore) load() {
	content, err := os.ReadFile(s.path)
	if err != nil {
		// file doesn't exist or is unreadable, start fresh
		return
	}

	entries := make(map[string]fileEntry)
	err = json.Unmarshal(content, &entries)
	if err != nil {
		logger.Warnf("token file %s is invalid, starting with empty storage", s.path)
		return
	}

	now := time.Now()
	for key, entry := range entries {
		if entry.ExpiresAt.After(now) {
			s.entries[key] = entry
		}
	}

	logger.Infof("loaded %d tokens from file storage", len(s.entries))
}

// save persists the current entries; caller must hold the mutex
func (s *fileStore) save() {
	data, err := json.Marshal(s.entries)
	if err != nil {
		logger.Error(err, "failed to marshal token file store")
		return
	}

	err = os.WriteFile(s.path, data, 0600)
	if err != nil {
		logger.Error(err, "failed to save token file store")
	}
}

// janitor periodically drops expired entries so the file does not grow
// without bound
func (s *fileStore) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			now := time.Now()
			changed := false
			for key, entry := range s.entries {
				if !entry.ExpiresAt.After(now) {
					delete(s.entries, key)
					changed = true
				}
			}
			if changed {
				s.save()
			}
			s.mu.Unlock()
		}
	}
}

// getValid returns the live entry for key, deleting it when expired; caller
// must hold the mutex
func (s *fileStore) getValid(key string, now time.Time) (fileEntry, bool) {
	entry, ok := s.entries[key]
	if !ok {
		return fileEntry{}, false
	}
	if !entry.ExpiresAt.After(now) {
		delete(s.entries, key)
		s.save()
		return fileEntry{}, false
	}
	return entry, true
}

// Put stores a record unless it is already past its TTL
func (s *fileStore) Put(ctx context.Context, rec *model.EmailToken, ttl time.Duration) (bool, error) {
	now := time.Now()
	if remainingTTL(rec.CreatedAt, ttl, now) <= 0 {
		return false, nil
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return false, fmt.Errorf("failed to marshal token record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[tokenKey(rec.Token)] = fileEntry{
		Data:      string(data),
		ExpiresAt: rec.CreatedAt.Add(ttl),
	}
	s.save()

	return true, nil
}

// Get retrieves a record without consuming it
func (s *fileStore) Get(ctx context.Context, token string) (*model.EmailToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.getValid(tokenKey(token), time.Now())
	if !ok {
		return nil, nil
	}

	rec := &model.EmailToken{}
	err := json.Unmarshal([]byte(entry.Data), rec)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal token record: %w", err)
	}

	return rec, nil
}

// GetAndConsume retrieves and deletes a record under the store lock, so two
// racing callers cannot both observe it
func (s *fileStore) GetAndConsume(ctx context.Context, token string) (*model.EmailToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := tokenKey(token)
	entry, ok := s.getValid(key, time.Now())
	if !ok {
		return nil, nil
	}

	rec := &model.EmailToken{}
	err := json.Unmarshal([]byte(entry.Data), rec)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal token record: %w", err)
	}

	delete(s.entries, key)
	s.save()

	return rec, nil
}

// Delete removes a record; deleting an absent token succeeds
func (s *fileStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := tokenKey(token)
	if _, ok := s.entries[key]; ok {
		delete(s.entries, key)
		s.save()
	}

	return nil
}

// PutActiveToken records the currently active token for (purpose, email)
func (s *fileStore) PutActiveToken(ctx context.Context, purpose model.TokenPurpose, email, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[byEmailKey(purpose, email)] = fileEntry{
		Data:      token,
		ExpiresAt: time.Now().Add(ttl),
	}
	s.save()

	return nil
}

// GetActiveToken resolves the active token for (purpose, email), "" if none
func (s *fileStore) GetActiveToken(ctx context.Context, purpose model.TokenPurpose, email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.getValid(byEmailKey(purpose, email), time.Now())
	if !ok {
		return "", nil
	}

	return entry.Data, nil
}

// DeleteActiveToken clears the secondary index entry for (purpose, email)
func (s *fileStore) DeleteActiveToken(ctx context.Context, purpose model.TokenPurpose, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := byEmailKey(purpose, email)
	if _, ok := s.entries[key]; ok {
		delete(s.entries, key)
		s.save()
	}

	return nil
}

// Close stops the janitor goroutine
func (s *fileStore) Close() error {
	close(s.done)
	return nil
}
