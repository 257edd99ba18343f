package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "3001" {
		t.Errorf("expected default port 3001, got %s", cfg.Server.Port)
	}
	if cfg.Server.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Server.Env)
	}
	if cfg.Server.ShutdownTimeout != 30*time.Second {
		t.Errorf("expected shutdown timeout 30s, got %v", cfg.Server.ShutdownTimeout)
	}
	if !cfg.WebSocket.Enabled {
		t.Error("expected websocket feed enabled by default")
	}
	if cfg.WebSocket.PingPeriod >= cfg.WebSocket.PongWait {
		t.Errorf("ping period %v must be shorter than pong wait %v", cfg.WebSocket.PingPeriod, cfg.WebSocket.PongWait)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level info, got %s", cfg.Logging.Level)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("WS_ENABLED", "false")
	t.Setenv("WS_MAX_CLIENTS", "7")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.Server.Addr(); got != "127.0.0.1:9090" {
		t.Errorf("expected addr 127.0.0.1:9090, got %s", got)
	}
	if cfg.WebSocket.Enabled {
		t.Error("expected websocket feed disabled")
	}
	if cfg.WebSocket.MaxClients != 7 {
		t.Errorf("expected max clients 7, got %d", cfg.WebSocket.MaxClients)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("expected shutdown timeout 5s, got %v", cfg.Server.ShutdownTimeout)
	}
}

func TestLoad_FromDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("LOG_LEVEL=debug\nLOG_FORMAT=console\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("LOG_FORMAT")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("expected log format console, got %s", cfg.Logging.Format)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unparsable shutdown timeout", key: "SHUTDOWN_TIMEOUT", value: "soon"},
		{name: "zero pong wait", key: "WS_PONG_WAIT", value: "0s"},
		{name: "pong wait too short for a ping period", key: "WS_PONG_WAIT", value: "1ns"},
		{name: "negative pong wait", key: "WS_PONG_WAIT", value: "-5s"},
		{name: "zero write wait", key: "WS_WRITE_WAIT", value: "0s"},
		{name: "zero max clients", key: "WS_MAX_CLIENTS", value: "0"},
		{name: "negative max clients", key: "WS_MAX_CLIENTS", value: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			if err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), "invalid "+tt.key) {
				t.Errorf("expected error to name %s, got %v", tt.key, err)
			}
		})
	}
}

func TestLoad_ShortPongWaitKeepsPositivePingPeriod(t *testing.T) {
	t.Setenv("WS_PONG_WAIT", "10ns")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.WebSocket.PingPeriod <= 0 {
		t.Errorf("expected positive ping period, got %v", cfg.WebSocket.PingPeriod)
	}
}
