package auth

import "context"

type contextKey struct{}

// ContextWithIdentity returns a context carrying the authenticated
// identity.
func ContextWithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// IdentityFromContext returns the authenticated identity, or nil when
// the request was not authenticated (bypass paths, no-auth mode).
func IdentityFromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(contextKey{}).(*Identity)
	return id
}
