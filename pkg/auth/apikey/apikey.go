// Package apikey provides an API key authenticator that validates
// bearer tokens against a static key store using SHA-256 hashing and
// constant-time comparison.
package apikey

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/skillgate/skillgate/pkg/auth"
)

// KeyEntry maps a key hash to an identity.
type KeyEntry struct {
	KeyHash  [32]byte
	Identity auth.Identity
}

// RawKeyEntry is the configuration format for API keys.
type RawKeyEntry struct {
	Key      string
	Identity auth.Identity
}

// Authenticator validates bearer tokens against a static key store.
type Authenticator struct {
	keys []KeyEntry
}

// New creates an API key authenticator from raw keys and identities.
// Keys are hashed immediately; plaintext keys are not stored.
func New(entries []RawKeyEntry) *Authenticator {
	a := &Authenticator{}
	for _, e := range entries {
		a.keys = append(a.keys, KeyEntry{
			KeyHash:  sha256.Sum256([]byte(e.Key)),
			Identity: e.Identity,
		})
	}
	return a
}

// Authenticate extracts the bearer token and validates it. Returns Yes
// if valid, No if a bearer token is present but invalid, Abstain if
// there is no Authorization header or it is not a Bearer scheme.
func (a *Authenticator) Authenticate(_ context.Context, r *http.Request) auth.Result {
	header := r.Header.Get("Authorization")
	if header == "" {
		return auth.Result{Decision: auth.Abstain}
	}

	if !strings.HasPrefix(header, "Bearer ") {
		return auth.Result{Decision: auth.Abstain}
	}

	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		return auth.Result{Decision: auth.No, Err: auth.ErrUnauthenticated}
	}

	tokenHash := sha256.Sum256([]byte(token))

	for _, entry := range a.keys {
		if subtle.ConstantTimeCompare(tokenHash[:], entry.KeyHash[:]) == 1 {
			// Copy identity to avoid shared state.
			id := entry.Identity
			return auth.Result{Decision: auth.Yes, Identity: &id}
		}
	}

	return auth.Result{Decision: auth.No, Err: auth.ErrUnauthenticated}
}
