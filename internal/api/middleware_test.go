package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func authTestHandler(token string) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return AuthMiddleware(&fakeRepo{authToken: token}, logger)(next)
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		header string
		want   int
	}{
		{"valid token", "secret-token", "Bearer secret-token", http.StatusOK},
		{"missing header", "secret-token", "", http.StatusUnauthorized},
		{"wrong scheme", "secret-token", "Basic secret-token", http.StatusUnauthorized},
		{"wrong token", "secret-token", "Bearer other-token", http.StatusUnauthorized},
		{"no token configured", "", "Bearer secret-token", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/status", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			authTestHandler(tt.stored).ServeHTTP(rr, req)

			if rr.Code != tt.want {
				t.Errorf("status code = %d, want %d", rr.Code, tt.want)
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(RequestIDKey).(string)
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	RequestIDMiddleware()(next).ServeHTTP(rr, req)

	if seen == "" {
		t.Error("request id missing from context")
	}
	if got := rr.Header().Get("X-Request-ID"); got != seen {
		t.Errorf("X-Request-ID header = %q, want %q", got, seen)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/status", nil)

	RecoveryMiddleware(logger)(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status code = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}
