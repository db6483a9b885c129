package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/restyle-next/internal/config"
	"github.com/restyle-next/internal/http/handlers/shared"
	"github.com/restyle-next/internal/provider"

	"github.com/gin-gonic/gin"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://example.com", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://example.com", []string{"*"}, true)
	if got != "https://example.com" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://a.example.com", []string{"https://a.example.com", "https://b.example.com"}, false)
	if got != "https://a.example.com" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString(requestIDKey)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	if w2.Header().Get(requestIDHeader) == "" {
		t.Fatalf("generated request id should not be empty")
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: "0", Mode: "debug"},
		Backend: config.BackendConfig{
			BaseURL:          "http://127.0.0.1:0",
			TimeoutMS:        1000,
			PlaceholderImage: "/placeholder.png",
		},
		Session: config.SessionConfig{
			SecretKey:   "test-secret-0123456789-0123456789",
			CookieName:  "restyle_session",
			ExpireHours: 24,
		},
	}
}

func TestSessionMiddlewareIssuesAndReusesCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	container := provider.NewContainer(cfg)

	r := gin.New()
	r.Use(SessionMiddleware(container))
	r.GET("/session", func(c *gin.Context) {
		sess, ok := shared.CurrentSession(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"session_id": sess.ID})
	})

	// 首次请求：新会话 + 下发 cookie
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var first map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &first); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if first["session_id"] == "" {
		t.Fatalf("first request must attach a session")
	}

	cookies := w.Result().Cookies()
	var sessionCookie *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == cfg.Session.CookieName {
			sessionCookie = cookie
		}
	}
	if sessionCookie == nil || sessionCookie.Value == "" {
		t.Fatalf("first request must issue a session cookie")
	}

	// 带 cookie 的请求：复用同一会话，不再下发新 cookie
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/session", nil)
	req2.AddCookie(sessionCookie)
	r.ServeHTTP(w2, req2)

	var second map[string]string
	if err := json.Unmarshal(w2.Body.Bytes(), &second); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if second["session_id"] != first["session_id"] {
		t.Fatalf("valid cookie must reuse session: first %s second %s", first["session_id"], second["session_id"])
	}
	for _, cookie := range w2.Result().Cookies() {
		if cookie.Name == cfg.Session.CookieName {
			t.Fatalf("reused session must not reissue cookie")
		}
	}
}

func TestSessionMiddlewareRejectsForgedCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	container := provider.NewContainer(cfg)

	r := gin.New()
	r.Use(SessionMiddleware(container))
	r.GET("/session", func(c *gin.Context) {
		sess, _ := shared.CurrentSession(c)
		c.JSON(http.StatusOK, gin.H{"session_id": sess.ID})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	req.AddCookie(&http.Cookie{Name: cfg.Session.CookieName, Value: "forged-token"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("forged cookie should still get a fresh session, status %d", w.Code)
	}
	var issued bool
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == cfg.Session.CookieName && cookie.Value != "forged-token" && cookie.Value != "" {
			issued = true
		}
	}
	if !issued {
		t.Fatalf("forged cookie must be replaced with a freshly signed one")
	}
}
