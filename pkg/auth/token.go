package auth

import (
	"encoding/json"
	"os"
	"time"

	"github.com/glorpus-work/gogalaxy/pkg/errors"
)

// Token is the galaxy OAuth token as stored by login tooling.
type Token struct {
	Access    string  `json:"access_token"`
	Refresh   string  `json:"refresh_token,omitempty"`
	ExpiresIn int64   `json:"expires_in"`
	LoginTime float64 `json:"login_time"`
	UserID    string  `json:"user_id,omitempty"`

	now func() time.Time
}

// LoadToken reads a token file. An empty path yields an empty token, which
// sends requests anonymously.
func LoadToken(path string) (*Token, error) {
	if path == "" {
		return &Token{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrTokenFile, "%s: %v", path, err)
	}
	var tok Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, errors.Wrapf(errors.ErrTokenFile, "%s: %v", path, err)
	}
	return &tok, nil
}

// AccessToken returns the access token, which may be empty.
func (t *Token) AccessToken() string {
	if t == nil {
		return ""
	}
	return t.Access
}

// ExpiresAt returns the moment the access token stops being valid.
func (t *Token) ExpiresAt() time.Time {
	sec := int64(t.LoginTime)
	nsec := int64((t.LoginTime - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec).Add(time.Duration(t.ExpiresIn) * time.Second)
}

// IsExpired reports whether the token can no longer be used. Tokens without
// a login time never expire; nothing is known about them.
func (t *Token) IsExpired() bool {
	if t == nil || t.LoginTime == 0 {
		return false
	}
	now := time.Now
	if t.now != nil {
		now = t.now
	}
	return !now().Before(t.ExpiresAt())
}
