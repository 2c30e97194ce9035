// Package jwt provides a JWT authenticator for HMAC-signed bearer
// tokens with configurable issuer, audience, and scope claim handling.
package jwt

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/skillgate/skillgate/pkg/auth"
)

// Config holds the JWT authenticator configuration.
type Config struct {
	// Secret is the HMAC signing secret (required).
	Secret string

	// Issuer is the expected iss claim. Empty skips issuer validation.
	Issuer string

	// Audience is the expected aud claim. Empty skips audience validation.
	Audience string

	// ScopesClaim is the claim carrying authorization scopes, either a
	// space-separated string or a JSON array. Default: "scope".
	ScopesClaim string
}

// Authenticator validates HMAC-signed JWT bearer tokens.
type Authenticator struct {
	config Config
}

// New creates a JWT authenticator with the given configuration.
func New(cfg Config) *Authenticator {
	if cfg.ScopesClaim == "" {
		cfg.ScopesClaim = "scope"
	}
	return &Authenticator{config: cfg}
}

// Authenticate extracts a bearer token from the Authorization header and
// validates it as an HMAC-signed JWT.
//
// Decision outcomes:
//   - Abstain: no Authorization header, not a Bearer scheme, or the
//     token does not look like a JWT (lets an apikey authenticator vote)
//   - No: JWT present but invalid (expired, wrong issuer, bad signature)
//   - Yes: valid JWT with populated Identity
func (a *Authenticator) Authenticate(_ context.Context, r *http.Request) auth.Result {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return auth.Result{Decision: auth.Abstain}
	}

	token := strings.TrimPrefix(header, "Bearer ")
	// A JWT has exactly three dot-separated segments; anything else is
	// some other bearer credential.
	if strings.Count(token, ".") != 2 {
		return auth.Result{Decision: auth.Abstain}
	}

	opts := []jwtlib.ParserOption{jwtlib.WithValidMethods([]string{"HS256", "HS384", "HS512"})}
	if a.config.Issuer != "" {
		opts = append(opts, jwtlib.WithIssuer(a.config.Issuer))
	}
	if a.config.Audience != "" {
		opts = append(opts, jwtlib.WithAudience(a.config.Audience))
	}

	claims := jwtlib.MapClaims{}
	parsed, err := jwtlib.ParseWithClaims(token, claims, func(*jwtlib.Token) (any, error) {
		return []byte(a.config.Secret), nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return auth.Result{Decision: auth.No, Err: fmt.Errorf("invalid JWT: %w", err)}
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return auth.Result{Decision: auth.No, Err: fmt.Errorf("JWT missing sub claim")}
	}

	return auth.Result{
		Decision: auth.Yes,
		Identity: &auth.Identity{
			Subject: subject,
			Scopes:  extractScopes(claims[a.config.ScopesClaim]),
		},
	}
}

// extractScopes handles both space-separated strings and JSON arrays.
func extractScopes(v any) []string {
	switch t := v.(type) {
	case string:
		if t == "" {
			return nil
		}
		return strings.Fields(t)
	case []any:
		scopes := make([]string, 0, len(t))
		for _, s := range t {
			if str, ok := s.(string); ok {
				scopes = append(scopes, str)
			}
		}
		return scopes
	default:
		return nil
	}
}
