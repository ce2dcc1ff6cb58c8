package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/provtools/provctl/internal/credentials"
	provErrors "github.com/provtools/provctl/internal/errors"
	"github.com/provtools/provctl/internal/prompt"
)

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"https://dracoon.team", "https://dracoon.team"},
		{"http://dracoon.team", "https://dracoon.team"},
		{"dracoon.team", "https://dracoon.team"},
		{"http://host:8443/base", "https://host:8443/base"},
	}
	for _, c := range cases {
		if got := NormalizeURL(c.in); got != c.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

type fakePrompter struct {
	token string
	err   error
	calls int
}

var _ prompt.Prompter = (*fakePrompter)(nil)

func (p *fakePrompter) Token(serviceURL string) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.token, nil
}

// newTokenServer accepts any request carrying wantToken and rejects
// everything else with 401.
func newTokenServer(t *testing.T, wantToken string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Sds-Service-Token") != wantToken {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"code":401,"message":"unauthorized"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"range":{"offset":0,"limit":1,"total":0},"items":[]}`)
	}))
}

// newTestBootstrap disables URL normalization so the client can reach
// the plain-http test server.
func newTestBootstrap(store credentials.Store, prompter prompt.Prompter) *Bootstrap {
	b := NewBootstrap(store, prompter)
	b.Normalize = func(u string) string { return u }
	return b
}

func TestConnectExplicitTokenNeverPersisted(t *testing.T) {
	srv := newTokenServer(t, "explicit-token")
	defer srv.Close()

	store := credentials.NewMemoryStore()
	prompter := &fakePrompter{token: "prompted-token"}
	b := newTestBootstrap(store, prompter)

	client, err := b.Connect(context.Background(), srv.URL, "explicit-token")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if client == nil {
		t.Fatal("expected a client")
	}
	if prompter.calls != 0 {
		t.Errorf("prompter called %d times, want 0", prompter.calls)
	}
	if _, err := store.Get(b.Service, srv.URL); provErrors.KindOf(err) != provErrors.KindInvalidAccount {
		t.Errorf("explicit token must not be persisted, store returned %v", err)
	}
}

func TestConnectUsesStoredToken(t *testing.T) {
	srv := newTokenServer(t, "stored-token")
	defer srv.Close()

	store := credentials.NewMemoryStore()
	if err := store.Set(credentials.ServiceName, srv.URL, "stored-token"); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	prompter := &fakePrompter{token: "prompted-token"}
	b := newTestBootstrap(store, prompter)

	if _, err := b.Connect(context.Background(), srv.URL, ""); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if prompter.calls != 0 {
		t.Errorf("prompter called %d times, want 0", prompter.calls)
	}
}

func TestConnectPromptsOnceThenUsesStore(t *testing.T) {
	srv := newTokenServer(t, "prompted-token")
	defer srv.Close()

	store := credentials.NewMemoryStore()
	prompter := &fakePrompter{token: "prompted-token"}
	b := newTestBootstrap(store, prompter)

	if _, err := b.Connect(context.Background(), srv.URL, ""); err != nil {
		t.Fatalf("first Connect: %v", err)
	}
	if prompter.calls != 1 {
		t.Fatalf("prompter called %d times, want 1", prompter.calls)
	}

	got, err := store.Get(b.Service, srv.URL)
	if err != nil || got != "prompted-token" {
		t.Fatalf("prompted token not persisted: %q, %v", got, err)
	}

	if _, err := b.Connect(context.Background(), srv.URL, ""); err != nil {
		t.Fatalf("second Connect: %v", err)
	}
	if prompter.calls != 1 {
		t.Errorf("prompter called %d times after second connect, want still 1", prompter.calls)
	}
}

func TestConnectPersistFailureIsFatal(t *testing.T) {
	srv := newTokenServer(t, "prompted-token")
	defer srv.Close()

	store := credentials.NewMemoryStore()
	store.SetErr = errors.New("keychain locked")
	prompter := &fakePrompter{token: "prompted-token"}
	b := newTestBootstrap(store, prompter)

	_, err := b.Connect(context.Background(), srv.URL, "")
	if err == nil {
		t.Fatal("expected error when persisting fails")
	}
	if provErrors.KindOf(err) != provErrors.KindCredentialStorageFailed {
		t.Errorf("kind = %v, want %v", provErrors.KindOf(err), provErrors.KindCredentialStorageFailed)
	}
}

func TestConnectRejectsInvalidToken(t *testing.T) {
	srv := newTokenServer(t, "valid-token")
	defer srv.Close()

	store := credentials.NewMemoryStore()
	prompter := &fakePrompter{token: "wrong-token"}
	b := newTestBootstrap(store, prompter)

	_, err := b.Connect(context.Background(), srv.URL, "")
	if err == nil {
		t.Fatal("expected error for rejected token")
	}
	if provErrors.KindOf(err) != provErrors.KindUnauthorized {
		t.Errorf("kind = %v, want %v", provErrors.KindOf(err), provErrors.KindUnauthorized)
	}
}

func TestConnectPersistsPromptedTokenBeforeValidation(t *testing.T) {
	srv := newTokenServer(t, "valid-token")
	defer srv.Close()

	store := credentials.NewMemoryStore()
	prompter := &fakePrompter{token: "rejected-token"}
	b := newTestBootstrap(store, prompter)

	_, err := b.Connect(context.Background(), srv.URL, "")
	if provErrors.KindOf(err) != provErrors.KindUnauthorized {
		t.Fatalf("kind = %v, want %v", provErrors.KindOf(err), provErrors.KindUnauthorized)
	}

	got, err := store.Get(b.Service, srv.URL)
	if err != nil {
		t.Fatalf("prompted token must be stored even when the pre-check rejects it: %v", err)
	}
	if got != "rejected-token" {
		t.Errorf("stored token = %q, want %q", got, "rejected-token")
	}
}

func TestConnectPersistFailureWinsOverValidation(t *testing.T) {
	srv := newTokenServer(t, "valid-token")
	defer srv.Close()

	store := credentials.NewMemoryStore()
	store.SetErr = errors.New("keychain locked")
	prompter := &fakePrompter{token: "rejected-token"}
	b := newTestBootstrap(store, prompter)

	// Persistence runs first, so its failure is reported even though
	// the pre-check would also have rejected this token.
	_, err := b.Connect(context.Background(), srv.URL, "")
	if provErrors.KindOf(err) != provErrors.KindCredentialStorageFailed {
		t.Errorf("kind = %v, want %v", provErrors.KindOf(err), provErrors.KindCredentialStorageFailed)
	}
}
