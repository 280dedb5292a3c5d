package config

// Config holds the application configuration.
type Config struct {
	Server   Server   `yaml:"server"`
	Logger   Logger   `yaml:"logger"`
	Catalog  Catalog  `yaml:"catalog"`
	Client   Client   `yaml:"client"`
	Storage  Storage  `yaml:"storage"`
	Preview  Preview  `yaml:"preview"`
	Telegram Telegram `yaml:"telegram"`
	Metrics  Metrics  `yaml:"metrics"`
}

// Server hold the configuration for the Fiber server Config
type Server struct {
	PrintRoutes  bool   `yaml:"show_routes"`
	Port         uint32 `yaml:"port" validate:"required"`
	AllowOrigins string `yaml:"allow_origins"`
}

// Logger holds the configuration for the app logging
type Logger struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format  string `yaml:"format" validate:"omitempty,oneof=text json logfmt"`
}

// Catalog points at an external catalog file. Empty uses the built-in catalog.
type Catalog struct {
	Path string `yaml:"path"`
}

// Client configures the playlist client and the catalog API it talks to.
type Client struct {
	APIBaseURL         string `yaml:"api_base_url" validate:"required,url"`
	SampleSize         int    `yaml:"sample_size" validate:"min=1"`
	TimeoutSeconds     int    `yaml:"timeout_seconds" validate:"min=1"`
	MaxSessions        int    `yaml:"max_sessions" validate:"min=0"`
	SessionIdleMinutes int    `yaml:"session_idle_minutes" validate:"min=0"`
}

// Storage holds the configuration for the clients' local storage.
type Storage struct {
	Path string `yaml:"path" validate:"required"`
}

// Preview configures the song preview lookup.
type Preview struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"base_url" validate:"omitempty,url"`
}

type Telegram struct {
	Enabled      bool     `yaml:"enabled"`
	Token        string   `yaml:"token"`
	AllowedUsers []string `yaml:"allowedUsers"`
}

// Metrics toggles the Prometheus endpoint.
type Metrics struct {
	Enabled bool `yaml:"enabled"`
}
