package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// TestBearerAuthMissingHeader verifies a missing Authorization header is 401.
func TestBearerAuthMissingHeader(t *testing.T) {
	h := BearerAuth("secret")(okHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

// TestBearerAuthWrongKey verifies a wrong key is 403, distinct from missing.
func TestBearerAuthWrongKey(t *testing.T) {
	h := BearerAuth("secret")(okHandler())
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

// TestBearerAuthValidKey verifies the happy path, with and without the
// Bearer prefix.
func TestBearerAuthValidKey(t *testing.T) {
	h := BearerAuth("secret")(okHandler())
	for _, header := range []string{"Bearer secret", "secret"} {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("header %q: status = %d, want 200", header, rec.Code)
		}
	}
}

// TestBearerAuthDisabled verifies no key configured means no auth at all.
func TestBearerAuthDisabled(t *testing.T) {
	h := BearerAuth("")(okHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

// TestRequestID verifies an id is assigned, exposed in the response header,
// and retrievable from the request context.
func TestRequestID(t *testing.T) {
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
	})
	rec := httptest.NewRecorder()
	RequestID(inner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if len(seen) != 8 {
		t.Errorf("request id = %q, want 8 chars", seen)
	}
	if got := rec.Header().Get("X-Request-ID"); got != seen {
		t.Errorf("header id = %q, context id = %q", got, seen)
	}
}

// TestRequestLoggingPassthrough verifies the logging middleware preserves the
// wrapped handler's status.
func TestRequestLoggingPassthrough(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := RequestLogging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418", rec.Code)
	}
}
