// Package session builds authenticated provisioning clients from the
// credential sources available to the CLI.
//
// Purpose:
//
//	Resolve the service token for an endpoint in a fixed order: an
//	explicitly supplied token wins and is never persisted, then the OS
//	credential store, and finally an interactive prompt whose answer is
//	persisted for the next run. The resolved token is validated by the
//	client constructor before any command runs.
package session

import (
	"context"
	"strings"

	"github.com/provtools/provctl/internal/client/provisioning"
	"github.com/provtools/provctl/internal/credentials"
	"github.com/provtools/provctl/internal/errors"
	"github.com/provtools/provctl/internal/prompt"
)

// NormalizeURL forces the https scheme onto raw. Plain http is
// upgraded, a missing scheme is prefixed.
func NormalizeURL(raw string) string {
	switch {
	case strings.HasPrefix(raw, "https://"):
		return raw
	case strings.HasPrefix(raw, "http://"):
		return "https://" + strings.TrimPrefix(raw, "http://")
	default:
		return "https://" + raw
	}
}

// Bootstrap wires the credential store and prompter into client
// construction.
type Bootstrap struct {
	Store         credentials.Store
	Prompt        prompt.Prompter
	Service       string
	ClientOptions []provisioning.Option

	// Normalize rewrites the endpoint before lookup. It defaults to
	// NormalizeURL; tests substitute an identity function to reach
	// plain-http fixtures.
	Normalize func(string) string
}

// NewBootstrap returns a Bootstrap with the default service name.
func NewBootstrap(store credentials.Store, prompter prompt.Prompter, opts ...provisioning.Option) *Bootstrap {
	return &Bootstrap{
		Store:         store,
		Prompt:        prompter,
		Service:       credentials.ServiceName,
		ClientOptions: opts,
		Normalize:     NormalizeURL,
	}
}

// Connect resolves a token for rawURL and returns a validated client.
// An explicit token is used as-is and never persisted. Otherwise the
// store is consulted, and as a last resort the operator is prompted.
// A prompted token is persisted before the client is built, so it
// survives a failed validity pre-check; a persist failure aborts the
// session without any request being sent.
func (b *Bootstrap) Connect(ctx context.Context, rawURL, explicitToken string) (*provisioning.Client, error) {
	normalize := b.Normalize
	if normalize == nil {
		normalize = NormalizeURL
	}
	url := normalize(rawURL)

	token := explicitToken
	persist := false
	if token == "" {
		stored, err := b.Store.Get(b.Service, url)
		if err == nil {
			token = stored
		} else {
			if errors.KindOf(err) != errors.KindInvalidAccount {
				return nil, err
			}
			prompted, err := b.Prompt.Token(url)
			if err != nil {
				return nil, err
			}
			token = prompted
			persist = true
		}
	}

	if persist {
		if err := b.Store.Set(b.Service, url, token); err != nil {
			return nil, err
		}
	}

	return provisioning.New(ctx, url, token, b.ClientOptions...)
}
