package config

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Manager holds the application configuration and provides thread-safe access to it.
type Manager struct {
	mu     sync.RWMutex
	config *Config
}

// NewManager creates a new ConfigManager.
func NewManager(config *Config) *Manager {
	return &Manager{config: config}
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// ClientTimeout returns the catalog request timeout.
func (m *Manager) ClientTimeout() time.Duration {
	return time.Duration(m.Get().Client.TimeoutSeconds) * time.Second
}

// SessionIdle returns how long an unused client session is kept in memory.
func (m *Manager) SessionIdle() time.Duration {
	return time.Duration(m.Get().Client.SessionIdleMinutes) * time.Minute
}

// redactedCfg gets a redacted copy of the Config. Callers hold the read lock.
func (m *Manager) redactedCfg() Config {
	cfgCpy := *m.config
	if cfgCpy.Telegram.Token != "" {
		cfgCpy.Telegram.Token = "<redacted>"
	}
	return cfgCpy
}

// GetJSON returns the current configuration as a JSON string.
func (m *Manager) GetJSON() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	jsonBytes, err := json.Marshal(m.redactedCfg())
	if err != nil {
		slog.Error("failed to marshal config to JSON", "error", err)
		return err.Error()
	}
	return string(jsonBytes)
}

// GetYAML returns the current configuration as a YAML string.
func (m *Manager) GetYAML() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	yamlBytes, err := yaml.Marshal(m.redactedCfg())
	if err != nil {
		slog.Error("failed to marshal config to YAML", "error", err)
		return err.Error()
	}
	return string(yamlBytes)
}
