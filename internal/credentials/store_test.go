// Package credentials provides tests for the secret-store adapter.
package credentials

import (
	"fmt"
	"testing"

	"github.com/provtools/provctl/internal/errors"
)

const testURL = "https://dracoon.example.com"

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	if err := store.Set(ServiceName, testURL, "secret-token"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	token, err := store.Get(ServiceName, testURL)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if token != "secret-token" {
		t.Errorf("Get() = %q, want %q", token, "secret-token")
	}
}

func TestGetMissingEntryIsInvalidAccount(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(ServiceName, testURL)
	if errors.KindOf(err) != errors.KindInvalidAccount {
		t.Errorf("Get() on missing entry = %v, want invalid account", err)
	}
}

func TestDeleteMissingEntryIsInvalidAccount(t *testing.T) {
	store := NewMemoryStore()

	err := store.Delete(ServiceName, testURL)
	if errors.KindOf(err) != errors.KindInvalidAccount {
		t.Errorf("Delete() on missing entry = %v, want invalid account, not a storage failure", err)
	}
}

func TestDeleteBackendFailure(t *testing.T) {
	store := NewMemoryStore()
	store.Set(ServiceName, testURL, "secret-token")
	store.DeleteErr = fmt.Errorf("keychain locked")

	err := store.Delete(ServiceName, testURL)
	if errors.KindOf(err) != errors.KindCredentialDeletionFailed {
		t.Errorf("Delete() backend failure = %v, want credential deletion failure", err)
	}
}

func TestSetOverwritesLastWriterWins(t *testing.T) {
	store := NewMemoryStore()
	store.Set(ServiceName, testURL, "first")
	store.Set(ServiceName, testURL, "second")

	token, err := store.Get(ServiceName, testURL)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if token != "second" {
		t.Errorf("Get() = %q, want last written value", token)
	}
}
