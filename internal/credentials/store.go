// Package credentials wraps the OS secret store for service tokens.
//
// Purpose:
//
//	Persist one provisioning token per endpoint URL in the platform
//	keychain, keyed by (service name, endpoint URL). The store is an
//	injected capability so commands and tests can substitute an
//	in-memory implementation.
//
// Dependencies:
//   - github.com/zalando/go-keyring: OS keychain access
//
package credentials

import (
	"github.com/zalando/go-keyring"

	"github.com/provtools/provctl/internal/errors"
)

// ServiceName keys every credential this tool stores.
const ServiceName = "provctl"

// Store is the narrow secret-store contract the CLI depends on.
type Store interface {
	// Get returns the token stored for (service, url). A missing entry
	// is errors.KindInvalidAccount.
	Get(service, url string) (string, error)
	// Set stores token under (service, url), overwriting any previous
	// value. Failures are errors.KindCredentialStorageFailed.
	Set(service, url, token string) error
	// Delete removes the entry for (service, url). A missing entry is
	// errors.KindInvalidAccount; a backend failure is
	// errors.KindCredentialDeletionFailed.
	Delete(service, url string) error
}

// KeyringStore stores tokens in the OS keychain.
type KeyringStore struct{}

// NewKeyringStore returns the platform-backed store.
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{}
}

// Get looks up the stored token for url.
func (s *KeyringStore) Get(service, url string) (string, error) {
	token, err := keyring.Get(service, url)
	if err != nil {
		return "", errors.NewInvalidAccount()
	}
	return token, nil
}

// Set stores token for url.
func (s *KeyringStore) Set(service, url, token string) error {
	if err := keyring.Set(service, url, token); err != nil {
		return errors.NewCredentialStorageFailed(err)
	}
	return nil
}

// Delete removes the stored token for url. Presence is verified first
// so a missing entry reports invalid account rather than a backend
// deletion failure.
func (s *KeyringStore) Delete(service, url string) error {
	if _, err := keyring.Get(service, url); err != nil {
		return errors.NewInvalidAccount()
	}
	if err := keyring.Delete(service, url); err != nil {
		return errors.NewCredentialDeletionFailed(err)
	}
	return nil
}
