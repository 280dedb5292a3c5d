package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML file from the given path and returns a new ConfigManager.
// If the file doesn't exist, creates a default configuration.
func Load(path string) (*Manager, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	// Check if config file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Info("Config file not found, creating default configuration", "path", path)
		defaultCfg := createDefaultConfig()

		if err := saveDefaultConfig(path, defaultCfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}

		applyEnv(defaultCfg)
		return NewManager(defaultCfg), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := createDefaultConfig()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, err
	}

	// Override with environment variables if set
	applyEnv(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return NewManager(cfg), nil
}

// Validate checks the configuration struct tags.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if token := os.Getenv("TELEGRAM_TOKEN"); token != "" {
		cfg.Telegram.Token = token
	}
	if apiURL := os.Getenv("ZENIFY_API_URL"); apiURL != "" {
		cfg.Client.APIBaseURL = apiURL
	}
}

// createDefaultConfig creates a new Config with sensible default values
func createDefaultConfig() *Config {
	return &Config{
		Server: Server{
			PrintRoutes:  false,
			Port:         3000,
			AllowOrigins: "*",
		},
		Logger: Logger{
			Enabled: true,
			Level:   "info",
			Format:  "text",
		},
		Catalog: Catalog{
			Path: "", // Built-in catalog
		},
		Client: Client{
			APIBaseURL:         "http://localhost:3000",
			SampleSize:         50,
			TimeoutSeconds:     10,
			MaxSessions:        10000,
			SessionIdleMinutes: 60,
		},
		Storage: Storage{
			Path: "./zenify.db", // ":memory:" keeps client state in memory only
		},
		Preview: Preview{
			Enabled: true,
			BaseURL: "https://itunes.apple.com",
		},
		Telegram: Telegram{
			Enabled:      false,
			Token:        "",                // Can be obtained with https://t.me/BotFather
			AllowedUsers: []string{"user1"}, // No @
		},
		Metrics: Metrics{
			Enabled: true,
		},
	}
}

// saveDefaultConfig saves the default configuration to the specified file path
func saveDefaultConfig(path string, cfg *Config) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()
	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	slog.Info("Default configuration saved", "path", path)
	return nil
}
