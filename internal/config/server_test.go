package config_test

import (
	"testing"
	"time"

	"github.com/JaimeStill/checkout-shell/internal/config"
)

func TestServerConfig_Finalize_Defaults(t *testing.T) {
	cfg := &config.ServerConfig{}

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q, want 0.0.0.0:8080", cfg.Addr())
	}
	if cfg.ReadTimeoutDuration() != 30*time.Second {
		t.Errorf("ReadTimeout = %v, want 30s", cfg.ReadTimeoutDuration())
	}
	if cfg.WriteTimeoutDuration() != 30*time.Second {
		t.Errorf("WriteTimeout = %v, want 30s", cfg.WriteTimeoutDuration())
	}
	if cfg.MaxHeaderBytes() != 1000000 {
		t.Errorf("MaxHeaderBytes() = %d, want 1000000", cfg.MaxHeaderBytes())
	}
}

func TestServerConfig_MaxHeaderSize(t *testing.T) {
	tests := []struct {
		size string
		want int
	}{
		{"64KB", 64000},
		{"512kb", 512000},
		{"2MB", 2000000},
	}

	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			cfg := &config.ServerConfig{MaxHeaderSize: tt.size}
			if err := cfg.Finalize(); err != nil {
				t.Fatalf("Finalize() failed: %v", err)
			}
			if cfg.MaxHeaderBytes() != tt.want {
				t.Errorf("MaxHeaderBytes() = %d, want %d", cfg.MaxHeaderBytes(), tt.want)
			}
		})
	}
}

func TestServerConfig_Merge(t *testing.T) {
	base := &config.ServerConfig{Host: "0.0.0.0", Port: 8080, ReadTimeout: "30s"}
	base.Merge(&config.ServerConfig{Port: 9090, MaxHeaderSize: "2MB"})

	if base.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want 0.0.0.0 (should not change)", base.Host)
	}
	if base.Port != 9090 {
		t.Errorf("Port = %d, want 9090", base.Port)
	}
	if base.MaxHeaderSize != "2MB" {
		t.Errorf("MaxHeaderSize = %q, want 2MB", base.MaxHeaderSize)
	}
}
