package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_CreatesDefault(t *testing.T) {
	t.Setenv("ZENIFY_API_URL", "")
	t.Setenv("TELEGRAM_TOKEN", "")
	path := filepath.Join(t.TempDir(), "config.yaml")

	manager, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	cfg := manager.Get()
	if cfg.Server.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Client.SampleSize != 50 {
		t.Errorf("SampleSize = %d, want 50", cfg.Client.SampleSize)
	}
	if cfg.Server.AllowOrigins != "*" {
		t.Errorf("AllowOrigins = %q, want *", cfg.Server.AllowOrigins)
	}
	if manager.ClientTimeout() != 10*time.Second {
		t.Errorf("ClientTimeout = %v, want 10s", manager.ClientTimeout())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected default config written, got %v", err)
	}

	// The written file must load back
	if _, err := Load(path); err != nil {
		t.Errorf("expected written default to load, got %v", err)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("ZENIFY_API_URL", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := "server:\n  port: 8080\nclient:\n  api_base_url: http://catalog:3000\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	manager, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	cfg := manager.Get()
	if cfg.Server.Port != 8080 || cfg.Client.APIBaseURL != "http://catalog:3000" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Client.SampleSize != 50 || cfg.Storage.Path != "./zenify.db" {
		t.Errorf("expected defaults to survive, got %+v", cfg)
	}
	if cfg.Client.MaxSessions != 10000 || manager.SessionIdle() != time.Hour {
		t.Errorf("expected session limits to default, got %d and %v", cfg.Client.MaxSessions, manager.SessionIdle())
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ZENIFY_API_URL", "http://override:9000")
	t.Setenv("TELEGRAM_TOKEN", "secret-token")
	manager, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if manager.Get().Client.APIBaseURL != "http://override:9000" {
		t.Errorf("expected env override, got %q", manager.Get().Client.APIBaseURL)
	}
	if strings.Contains(manager.GetJSON(), "secret-token") || strings.Contains(manager.GetYAML(), "secret-token") {
		t.Error("expected token to be redacted")
	}
	if manager.Get().Telegram.Token != "secret-token" {
		t.Error("redaction must not change the live config")
	}
}

func TestLoad_ValidationFails(t *testing.T) {
	t.Setenv("ZENIFY_API_URL", "")
	cases := map[string]string{
		"bad url":         "client:\n  api_base_url: not a url\n",
		"zero sample":     "client:\n  sample_size: 0\n",
		"bad log level":   "logger:\n  level: loud\n",
		"missing storage": "storage:\n  path: \"\"\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
