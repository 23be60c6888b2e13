// Package auth provides authentication support for content API requests.
package auth

import "net/http"

// Authenticator defines the interface for applying authentication to HTTP requests.
type Authenticator interface {
	Apply(req *http.Request) error
	Type() Type
}

// TokenSource exposes the current access token. Refreshing it is the
// owner's job; readers only look.
type TokenSource interface {
	AccessToken() string
	IsExpired() bool
}

// BearerAuth adds the access token of Source as a Bearer token.
type BearerAuth struct {
	Source TokenSource
}

// Type represents the type of authentication.
type Type string

// Authentication types.
const (
	// NoAuthType sends requests anonymously.
	NoAuthType Type = "none"
	// BearerAuthType represents Bearer token authentication.
	BearerAuthType Type = "bearer"
)

// Apply sets the Authorization header when a non-empty, unexpired token is available.
func (b BearerAuth) Apply(req *http.Request) error {
	if b.Source == nil || b.Source.IsExpired() {
		return nil
	}
	if token := b.Source.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}

// Type returns the authentication type (BearerAuthType).
func (b BearerAuth) Type() Type { return BearerAuthType }

// Anonymous leaves requests untouched.
type Anonymous struct{}

// Apply does nothing.
func (Anonymous) Apply(*http.Request) error { return nil }

// Type returns the authentication type (NoAuthType).
func (Anonymous) Type() Type { return NoAuthType }
