package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/JaimeStill/checkout-shell/pkg/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS_Disabled(t *testing.T) {
	cfg := &middleware.CORSConfig{Enabled: false, Origins: []string{"http://localhost:8080"}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	w := httptest.NewRecorder()
	middleware.CORS(cfg)(okHandler()).ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("CORS headers should not be set when disabled")
	}
}

func TestCORS_AllowedOrigin(t *testing.T) {
	cfg := &middleware.CORSConfig{Enabled: true, Origins: []string{"http://localhost:8080"}, AllowCredentials: true}
	cfg.Finalize(nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	w := httptest.NewRecorder()
	middleware.CORS(cfg)(okHandler()).ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:8080" {
		t.Errorf("Allow-Origin = %q, want http://localhost:8080", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Allow-Credentials = %q, want true", got)
	}
	if got := w.Header().Get("Access-Control-Max-Age"); got != "3600" {
		t.Errorf("Max-Age = %q, want 3600", got)
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	cfg := &middleware.CORSConfig{Enabled: true, Origins: []string{"http://localhost:8080"}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	w := httptest.NewRecorder()
	middleware.CORS(cfg)(okHandler()).ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("CORS headers should not be set for disallowed origin")
	}
}

func TestCORS_Preflight(t *testing.T) {
	cfg := &middleware.CORSConfig{Enabled: true, Origins: []string{"http://localhost:8080"}}
	cfg.Finalize(nil)

	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	w := httptest.NewRecorder()
	middleware.CORS(cfg)(handler).ServeHTTP(w, req)

	if called {
		t.Error("preflight should not reach the handler")
	}
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNoContent)
	}
}

func TestCORSConfig_Finalize_EnvOverrides(t *testing.T) {
	os.Setenv("TEST_CORS_ENABLED", "true")
	os.Setenv("TEST_CORS_ORIGINS", "http://localhost:3000, http://localhost:8080")
	os.Setenv("TEST_CORS_MAX_AGE", "7200")
	defer func() {
		os.Unsetenv("TEST_CORS_ENABLED")
		os.Unsetenv("TEST_CORS_ORIGINS")
		os.Unsetenv("TEST_CORS_MAX_AGE")
	}()

	cfg := &middleware.CORSConfig{}
	env := &middleware.CORSEnv{
		Enabled: "TEST_CORS_ENABLED",
		Origins: "TEST_CORS_ORIGINS",
		MaxAge:  "TEST_CORS_MAX_AGE",
	}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if !cfg.Enabled {
		t.Error("Enabled should be true from env")
	}
	if len(cfg.Origins) != 2 || cfg.Origins[1] != "http://localhost:8080" {
		t.Errorf("Origins = %v", cfg.Origins)
	}
	if cfg.MaxAge != 7200 {
		t.Errorf("MaxAge = %d, want 7200", cfg.MaxAge)
	}
}

func TestCORSConfig_Merge(t *testing.T) {
	base := &middleware.CORSConfig{Origins: []string{"http://a"}, MaxAge: 3600}
	base.Merge(&middleware.CORSConfig{Enabled: true, Origins: []string{"http://b"}})

	if !base.Enabled {
		t.Error("Enabled should merge")
	}
	if len(base.Origins) != 1 || base.Origins[0] != "http://b" {
		t.Errorf("Origins = %v, want [http://b]", base.Origins)
	}
	if base.MaxAge != 3600 {
		t.Errorf("MaxAge = %d, want 3600 (should not change)", base.MaxAge)
	}
}
