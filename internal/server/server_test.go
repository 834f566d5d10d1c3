package server_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/JaimeStill/checkout-shell/internal/config"
	"github.com/JaimeStill/checkout-shell/internal/server"
	"github.com/JaimeStill/checkout-shell/pkg/lifecycle"
)

func TestServer_StartAndShutdown(t *testing.T) {
	cfg := &config.ServerConfig{Host: "127.0.0.1", Port: 1}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}
	cfg.Port = 0

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	lc := lifecycle.New()
	srv := server.New(cfg, handler, logger, 5*time.Second)

	if err := srv.Start(lc); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	resp, err := http.Get("http://" + srv.Addr() + "/")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if string(body) != "ok" {
		t.Errorf("body = %q, want ok", string(body))
	}

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}

	if _, err := http.Get("http://" + srv.Addr() + "/"); err == nil {
		t.Error("server still accepting requests after shutdown")
	}
}
