package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calculator/internal/testutil"
)

// =============================================================================
// Test Setup Helpers
// =============================================================================

func setupTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Config{
		Addr:            "127.0.0.1:0",
		AllowedOrigins:  []string{"http://localhost:3000"},
		ShutdownTimeout: time.Second,
		Logger:          testutil.NewTestLogger(t, "text"),
	})
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/calculator/evaluate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// =============================================================================
// Evaluate Tests
// =============================================================================

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantValue  *float64
		wantText   string
	}{
		{name: "precedence", expression: "2+3*4", wantValue: ptr(14), wantText: "14"},
		{name: "right associative", expression: "2^3^2", wantValue: ptr(512), wantText: "512"},
		{name: "negative", expression: "3*-2", wantValue: ptr(-6), wantText: "-6"},
		{name: "function", expression: "sqrt(16)", wantValue: ptr(4), wantText: "4"},
		{name: "decimal", expression: "1.5+2.5", wantValue: ptr(4), wantText: "4"},
		{name: "infinite", expression: "1/0", wantText: "+Inf"},
		{name: "nan", expression: "sqrt(-1)", wantText: "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTestServer(t)
			body, err := json.Marshal(EvaluateRequest{Expression: tt.expression})
			require.NoError(t, err)

			rec := post(t, s.Handler(), string(body))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			var resp EvaluateResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expression, resp.Expression)
			assert.Equal(t, tt.wantValue, resp.Value)
			assert.Equal(t, tt.wantText, resp.Text)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantTitle  string
		wantPos    int
	}{
		{name: "empty", body: `{"expression": ""}`, wantStatus: http.StatusBadRequest, wantTitle: "Empty expression", wantPos: 1},
		{name: "missing field", body: `{}`, wantStatus: http.StatusBadRequest, wantTitle: "Empty expression", wantPos: 1},
		{name: "unknown character", body: `{"expression": "2#3"}`, wantStatus: http.StatusBadRequest, wantTitle: "Unknown character", wantPos: 2},
		{name: "unknown function", body: `{"expression": "foo(2)"}`, wantStatus: http.StatusBadRequest, wantTitle: "Unknown function", wantPos: 1},
		{name: "invalid number", body: `{"expression": "-(1)"}`, wantStatus: http.StatusBadRequest, wantTitle: "Invalid number", wantPos: 1},
		{name: "parentheses", body: `{"expression": "(2+3"}`, wantStatus: http.StatusBadRequest, wantTitle: "Mismatched parentheses", wantPos: 1},
		{name: "operands", body: `{"expression": "2+"}`, wantStatus: http.StatusBadRequest, wantTitle: "Insufficient operands", wantPos: 2},
		{name: "arguments", body: `{"expression": "sqrt()"}`, wantStatus: http.StatusBadRequest, wantTitle: "Insufficient arguments", wantPos: 1},
		{name: "extra", body: `{"expression": "2 3"}`, wantStatus: http.StatusBadRequest, wantTitle: "Extra operands", wantPos: 3},
		{name: "bad json", body: `{"expression":`, wantStatus: http.StatusBadRequest, wantTitle: "Invalid request"},
		{name: "wrong type", body: `{"expression": 2}`, wantStatus: http.StatusBadRequest, wantTitle: "Invalid request"},
		{name: "too large", body: `{"expression": "` + strings.Repeat("1", maxBodyBytes) + `"}`, wantStatus: http.StatusRequestEntityTooLarge, wantTitle: "Request too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTestServer(t)

			rec := post(t, s.Handler(), tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var p Problem
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
			assert.Equal(t, tt.wantTitle, p.Title)
			assert.Equal(t, tt.wantStatus, p.Status)
			assert.Equal(t, tt.wantPos, p.Position)
			assert.NotEmpty(t, p.Detail)
		})
	}
}

func TestEvaluateMethod(t *testing.T) {
	s := setupTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/calculator/evaluate", nil)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

// =============================================================================
// Middleware Tests
// =============================================================================

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		origin     string
		preflight  bool
		wantStatus int
		wantAllow  string
	}{
		{name: "allowed origin", method: http.MethodPost, origin: "http://localhost:3000", wantStatus: http.StatusOK, wantAllow: "http://localhost:3000"},
		{name: "other origin", method: http.MethodPost, origin: "http://evil.example", wantStatus: http.StatusOK},
		{name: "no origin", method: http.MethodPost, wantStatus: http.StatusOK},
		{name: "preflight", method: http.MethodOptions, origin: "http://localhost:3000", preflight: true, wantStatus: http.StatusNoContent, wantAllow: "http://localhost:3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTestServer(t)
			req := httptest.NewRequest(tt.method, "/api/calculator/evaluate", strings.NewReader(`{"expression":"1"}`))
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
				req.Header.Set("Access-Control-Request-Headers", "content-type")
			}
			rec := httptest.NewRecorder()

			s.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Access-Control-Allow-Origin"))
			if tt.preflight {
				assert.Equal(t, http.MethodPost, rec.Header().Get("Access-Control-Allow-Methods"))
				assert.Equal(t, "content-type", rec.Header().Get("Access-Control-Allow-Headers"))
			}
		})
	}
}

func TestCORSWildcard(t *testing.T) {
	h := cors([]string{"*"})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://anywhere.example")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "http://anywhere.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

// =============================================================================
// Lifecycle Tests
// =============================================================================

func TestServeListener(t *testing.T) {
	s := setupTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ServeListener(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServeBadAddr(t *testing.T) {
	s := New(Config{Addr: "not an address"})
	err := s.Serve(context.Background())
	assert.Error(t, err)
}

func ptr(v float64) *float64 {
	return &v
}
