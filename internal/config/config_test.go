package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JaimeStill/checkout-shell/internal/config"
	"github.com/JaimeStill/checkout-shell/pkg/logging"
	"github.com/JaimeStill/checkout-shell/pkg/navigation"
)

func writeFile(t *testing.T, dir, name, data string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoad_BaseConfig(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")
	dir := t.TempDir()
	writeFile(t, dir, config.BaseConfigFile, `
shutdown_timeout = "15s"

[server]
port = 9000

[logging]
level = "debug"
format = "text"

[app]
url_mode = "history"
not_found = "redirect"
`)

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ShutdownTimeoutDuration() != 15*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 15s", cfg.ShutdownTimeoutDuration())
	}
	if cfg.Server.Addr() != "0.0.0.0:9000" {
		t.Errorf("Addr() = %q, want 0.0.0.0:9000", cfg.Server.Addr())
	}
	if cfg.Logging.Level != logging.LevelDebug {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.App.Mode() != navigation.ModeHistory {
		t.Errorf("App.Mode() = %q, want history", cfg.App.Mode())
	}
	if cfg.App.NotFound != config.NotFoundRedirect {
		t.Errorf("App.NotFound = %q, want redirect", cfg.App.NotFound)
	}
	if cfg.App.FallbackRoute != "Home" {
		t.Errorf("App.FallbackRoute = %q, want Home", cfg.App.FallbackRoute)
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("API.BasePath = %q, want /api", cfg.API.BasePath)
	}
}

func TestLoad_WithOverlay(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "test")
	dir := t.TempDir()
	writeFile(t, dir, config.BaseConfigFile, `
[server]
port = 8080

[app]
public_url = "http://localhost:8080"
`)
	writeFile(t, dir, "config.test.toml", `
shutdown_timeout = "60s"

[app]
public_url = "https://shop.example.com"
`)

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Env() != "test" {
		t.Errorf("Env() = %q, want test", cfg.Env())
	}
	if cfg.ShutdownTimeoutDuration() != 60*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 60s", cfg.ShutdownTimeoutDuration())
	}
	if cfg.App.PublicURL != "https://shop.example.com" {
		t.Errorf("App.PublicURL = %q, want overlay value", cfg.App.PublicURL)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080 (should not change)", cfg.Server.Port)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")

	if _, err := config.Load(t.TempDir()); err == nil {
		t.Error("Load() without config.toml succeeded, want error")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")
	dir := t.TempDir()
	writeFile(t, dir, config.BaseConfigFile, `[server`)

	if _, err := config.Load(dir); err == nil {
		t.Error("Load() with malformed toml succeeded, want error")
	}
}

func TestConfig_Finalize_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvServiceShutdownTimeout, "45s")
	t.Setenv(config.EnvServerPort, "9191")
	t.Setenv(config.EnvAppURLMode, "history")
	t.Setenv(config.EnvAppFallbackRoute, "Fail")
	t.Setenv("LOGGING_LEVEL", "warn")
	t.Setenv("API_CORS_ORIGINS", "http://localhost:3000")

	cfg := &config.Config{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.ShutdownTimeoutDuration() != 45*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 45s", cfg.ShutdownTimeoutDuration())
	}
	if cfg.Server.Port != 9191 {
		t.Errorf("Server.Port = %d, want 9191", cfg.Server.Port)
	}
	if cfg.App.Mode() != navigation.ModeHistory {
		t.Errorf("App.Mode() = %q, want history", cfg.App.Mode())
	}
	if cfg.App.FallbackRoute != "Fail" {
		t.Errorf("App.FallbackRoute = %q, want Fail", cfg.App.FallbackRoute)
	}
	if cfg.Logging.Level != logging.LevelWarn {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
	if len(cfg.API.CORS.Origins) != 1 || cfg.API.CORS.Origins[0] != "http://localhost:3000" {
		t.Errorf("API.CORS.Origins = %v", cfg.API.CORS.Origins)
	}
}

func TestConfig_Finalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"shutdown timeout", config.Config{ShutdownTimeout: "soon"}},
		{"port", config.Config{Server: config.ServerConfig{Port: 70000}}},
		{"read timeout", config.Config{Server: config.ServerConfig{ReadTimeout: "later"}}},
		{"header size", config.Config{Server: config.ServerConfig{MaxHeaderSize: "lots"}}},
		{"logging format", config.Config{Logging: logging.Config{Format: "xml"}}},
		{"url mode", config.Config{App: config.AppConfig{URLMode: "abstract"}}},
		{"not found policy", config.Config{App: config.AppConfig{NotFound: "ignore"}}},
		{"relative public url", config.Config{App: config.AppConfig{PublicURL: "localhost:8080"}}},
		{"public url with query", config.Config{App: config.AppConfig{PublicURL: "http://localhost:8080/?ref=x"}}},
		{"public url with fragment", config.Config{App: config.AppConfig{PublicURL: "http://localhost:8080/#top"}}},
		{"api base path", config.Config{API: config.APIConfig{BasePath: "/api/v1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(); err == nil {
				t.Error("Finalize() succeeded, want error")
			}
		})
	}
}

func TestLoad_RepositoryConfig(t *testing.T) {
	cfg, err := config.Load("../..")
	if err != nil {
		t.Fatalf("Load() of repository config failed: %v", err)
	}

	if cfg.API.BasePath != "/api" {
		t.Errorf("API.BasePath = %q, want /api", cfg.API.BasePath)
	}
	if cfg.App.FallbackRoute != "Home" {
		t.Errorf("App.FallbackRoute = %q, want Home", cfg.App.FallbackRoute)
	}
}
