package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdworkspace/internal/httputil"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = httputil.GetRequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	rec := httptest.NewRecorder()
	RequestLogger(logger)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pot", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	require.NotEmpty(t, seenID)
	assert.Equal(t, seenID, rec.Header().Get(RequestIDHeader))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request", entry["msg"])
	assert.Equal(t, "/pot", entry["path"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, float64(len("short and stout")), entry["bytes"])
	assert.Equal(t, seenID, entry["request_id"])
}

func TestRequestLogger_KeepsIncomingID(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")

	rec := httptest.NewRecorder()
	RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc-123", httputil.GetRequestID(r.Context()))
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	Recovery(logger)(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/files/read", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "boom")
}

func TestLocalOnly(t *testing.T) {
	guarded := LocalOnly([]string{"http://localhost:1420", "tauri://localhost"})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
	)

	tests := []struct {
		name        string
		method      string
		host        string
		origin      string
		contentType string
		want        int
	}{
		{"loopback get", http.MethodGet, "127.0.0.1:8787", "", "", http.StatusNoContent},
		{"localhost without port", http.MethodGet, "localhost", "", "", http.StatusNoContent},
		{"ipv6 loopback", http.MethodGet, "[::1]:8787", "", "", http.StatusNoContent},
		{"other loopback address", http.MethodGet, "127.0.0.2:8787", "", "", http.StatusNoContent},
		{"rebound name", http.MethodGet, "evil.example:8787", "", "", http.StatusForbidden},
		{"lan address", http.MethodGet, "192.168.1.10:8787", "", "", http.StatusForbidden},
		{"allowed origin json", http.MethodPost, "127.0.0.1:8787", "tauri://localhost", "application/json", http.StatusNoContent},
		{"origin case ignored", http.MethodPost, "127.0.0.1:8787", "HTTP://LOCALHOST:1420", "application/json", http.StatusNoContent},
		{"json with charset", http.MethodPatch, "127.0.0.1:8787", "", "application/json; charset=utf-8", http.StatusNoContent},
		{"foreign origin get", http.MethodGet, "127.0.0.1:8787", "https://evil.example", "", http.StatusForbidden},
		{"foreign origin post", http.MethodPost, "127.0.0.1:8787", "https://evil.example", "application/json", http.StatusForbidden},
		{"plain text post", http.MethodPost, "127.0.0.1:8787", "", "text/plain", http.StatusUnsupportedMediaType},
		{"form post", http.MethodPost, "127.0.0.1:8787", "http://localhost:1420", "multipart/form-data; boundary=x", http.StatusUnsupportedMediaType},
		{"missing content type", http.MethodPost, "127.0.0.1:8787", "", "", http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/files/write", nil)
			req.Host = tt.host
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			rec := httptest.NewRecorder()
			guarded.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want != http.StatusNoContent {
				assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestCORS_PreflightForAllowedOrigin(t *testing.T) {
	reached := false
	h := CORS([]string{"http://localhost:1420"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/files/write", nil)
	req.Header.Set("Origin", "http://localhost:1420")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.False(t, reached)
	assert.Equal(t, "http://localhost:1420", rec.Header().Get("Access-Control-Allow-Origin"))
}
