package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Mode values for [AppConfig.Mode].
const (
	ModeDev  = "dev"
	ModeProd = "prod"
)

// Config represents the application configuration loaded from a TOML file.
//
// The config is loaded once at startup and injected into constructors;
// nothing reads the process environment at call sites.
type Config struct {
	App      AppConfig      `toml:"app"`
	API      APIConfig      `toml:"api"`
	Proxy    ProxyConfig    `toml:"proxy"`
	Database DatabaseConfig `toml:"database"`
	Search   SearchConfig   `toml:"search"`
}

// AppConfig contains application-wide settings.
type AppConfig struct {
	Mode string `toml:"mode"`
}

// APIConfig contains HonkingVersion API settings.
type APIConfig struct {
	BaseURL string `toml:"base_url"`
	Token   string `toml:"token"`
}

// ProxyConfig contains local proxy server settings.
type ProxyConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// SearchConfig contains debounced-search tuning.
type SearchConfig struct {
	QuietMs     int     `toml:"quiet_ms"`
	MinQueryLen int     `toml:"min_query_len"`
	RateLimit   float64 `toml:"rate_limit"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnvOverrides loads an optional .env file and folds HONK_* variables
// into the config. Happens once during startup; downstream code only ever
// sees the resulting Config.
func ApplyEnvOverrides(config *Config, envPath string) {
	if envPath != "" {
		// Missing .env is fine; overrides are opt-in.
		_ = godotenv.Load(envPath)
	}

	if v := os.Getenv("HONK_API_URL"); v != "" {
		config.API.BaseURL = v
	}
	if v := os.Getenv("HONK_API_TOKEN"); v != "" {
		config.API.Token = v
	}
	if v := os.Getenv("HONK_MODE"); v != "" {
		config.App.Mode = v
	}
}

// Validate checks config invariants shared by every command.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("%w: api.base_url is empty", ErrInvalidConfig)
	}
	if c.App.Mode != ModeDev && c.App.Mode != ModeProd {
		return fmt.Errorf("%w: app.mode must be %q or %q", ErrInvalidConfig, ModeDev, ModeProd)
	}
	if c.Search.MinQueryLen < 1 {
		return fmt.Errorf("%w: search.min_query_len must be positive", ErrInvalidConfig)
	}
	return nil
}
