package credentials

import (
	"github.com/provtools/provctl/internal/errors"
)

// MemoryStore is an in-memory Store for tests and headless
// environments without a keychain.
type MemoryStore struct {
	entries map[string]string
	// SetErr, when non-nil, is returned by Set to simulate a storage
	// backend failure.
	SetErr error
	// DeleteErr, when non-nil, is returned by Delete for present
	// entries to simulate a backend failure.
	DeleteErr error
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

func key(service, url string) string {
	return service + "\x00" + url
}

// Get returns the stored token or an invalid-account error.
func (s *MemoryStore) Get(service, url string) (string, error) {
	token, ok := s.entries[key(service, url)]
	if !ok {
		return "", errors.NewInvalidAccount()
	}
	return token, nil
}

// Set stores token, last writer wins.
func (s *MemoryStore) Set(service, url, token string) error {
	if s.SetErr != nil {
		return errors.NewCredentialStorageFailed(s.SetErr)
	}
	s.entries[key(service, url)] = token
	return nil
}

// Delete removes the entry, mirroring the keyring semantics.
func (s *MemoryStore) Delete(service, url string) error {
	if _, ok := s.entries[key(service, url)]; !ok {
		return errors.NewInvalidAccount()
	}
	if s.DeleteErr != nil {
		return errors.NewCredentialDeletionFailed(s.DeleteErr)
	}
	delete(s.entries, key(service, url))
	return nil
}
