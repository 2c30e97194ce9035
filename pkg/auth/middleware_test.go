package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMiddleware(t *testing.T) {
	chain := &Chain{
		Authenticators: []Authenticator{
			&fakeAuthenticator{result: Result{Decision: Abstain}},
		},
		DefaultDecision: No,
	}
	var gotIdentity *Identity
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIdentity = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := Middleware(chain, []string{"/healthz"})(inner)

	t.Run("rejects unauthenticated requests", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/skills", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("bypass path skips authentication", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("injects identity on success", func(t *testing.T) {
		okChain := &Chain{
			Authenticators: []Authenticator{
				&fakeAuthenticator{result: Result{Decision: Yes, Identity: &Identity{Subject: "alice"}}},
			},
		}
		okHandler := Middleware(okChain, nil)(inner)

		rec := httptest.NewRecorder()
		okHandler.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/skills", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if gotIdentity == nil || gotIdentity.Subject != "alice" {
			t.Errorf("identity = %+v", gotIdentity)
		}
	})

	t.Run("empty subject is an internal error", func(t *testing.T) {
		badChain := &Chain{
			Authenticators: []Authenticator{
				&fakeAuthenticator{result: Result{Decision: Yes, Identity: &Identity{}}},
			},
		}
		badHandler := Middleware(badChain, nil)(inner)

		rec := httptest.NewRecorder()
		badHandler.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/skills", nil))
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", rec.Code)
		}
	})
}
