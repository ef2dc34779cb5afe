package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.App.Mode != ModeProd {
			t.Errorf("expected prod mode, got %s", config.App.Mode)
		}

		if config.API.BaseURL != "http://localhost:8000" {
			t.Errorf("expected base url http://localhost:8000, got %s", config.API.BaseURL)
		}

		if config.Database.Path != "honk.db" {
			t.Errorf("expected database path honk.db, got %s", config.Database.Path)
		}

		if config.Proxy.Port != 8090 {
			t.Errorf("expected proxy port 8090, got %d", config.Proxy.Port)
		}

		if config.Search.QuietMs != 300 {
			t.Errorf("expected quiet_ms 300, got %d", config.Search.QuietMs)
		}

		if config.Search.MinQueryLen != 2 {
			t.Errorf("expected min_query_len 2, got %d", config.Search.MinQueryLen)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[app]
mode = "dev"

[api]
base_url = "https://honking.example.com"
token = "secret"

[proxy]
host = "0.0.0.0"
port = 9090

[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[search]
quiet_ms = 150
min_query_len = 3
rate_limit = 2.5
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.App.Mode != ModeDev {
			t.Errorf("expected dev mode, got %s", config.App.Mode)
		}
		if config.API.BaseURL != "https://honking.example.com" {
			t.Errorf("expected custom base url, got %s", config.API.BaseURL)
		}
		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}
		if config.Search.QuietMs != 150 {
			t.Errorf("expected quiet_ms 150, got %d", config.Search.QuietMs)
		}
	})

	t.Run("LoadConfig with missing file", func(t *testing.T) {
		if _, err := LoadConfig("/nonexistent/config.toml"); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("LoadConfig with malformed TOML", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := os.WriteFile(configPath, []byte("not [valid toml"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfig(configPath); err == nil {
			t.Error("expected error for malformed config")
		}
	})

	t.Run("ApplyEnvOverrides", func(t *testing.T) {
		t.Run("environment variables replace file values", func(t *testing.T) {
			t.Setenv("HONK_API_URL", "https://override.example.com")
			t.Setenv("HONK_API_TOKEN", "env-token")
			t.Setenv("HONK_MODE", "dev")

			config := DefaultConfig()
			ApplyEnvOverrides(config, "")

			if config.API.BaseURL != "https://override.example.com" {
				t.Errorf("expected base url override, got %s", config.API.BaseURL)
			}
			if config.API.Token != "env-token" {
				t.Errorf("expected token override, got %s", config.API.Token)
			}
			if config.App.Mode != ModeDev {
				t.Errorf("expected mode override, got %s", config.App.Mode)
			}
		})

		t.Run("unset variables leave the config alone", func(t *testing.T) {
			t.Setenv("HONK_API_URL", "")
			t.Setenv("HONK_API_TOKEN", "")
			t.Setenv("HONK_MODE", "")

			config := DefaultConfig()
			ApplyEnvOverrides(config, "")

			if config.API.BaseURL != "http://localhost:8000" {
				t.Errorf("expected default base url, got %s", config.API.BaseURL)
			}
		})

		t.Run("loads a dotenv file before reading variables", func(t *testing.T) {
			// t.Setenv registers restoration; unset so godotenv can set the key.
			t.Setenv("HONK_API_TOKEN", "")
			os.Unsetenv("HONK_API_TOKEN")

			tmpDir := t.TempDir()
			envPath := filepath.Join(tmpDir, ".env")
			if err := os.WriteFile(envPath, []byte("HONK_API_TOKEN=dotenv-token\n"), 0644); err != nil {
				t.Fatalf("failed to write .env: %v", err)
			}

			config := DefaultConfig()
			ApplyEnvOverrides(config, envPath)

			if config.API.Token != "dotenv-token" {
				t.Errorf("expected token from .env, got %s", config.API.Token)
			}
		})

		t.Run("missing dotenv file is not an error", func(t *testing.T) {
			config := DefaultConfig()
			ApplyEnvOverrides(config, "/nonexistent/.env")
		})
	})

	t.Run("Validate", func(t *testing.T) {
		t.Run("accepts the defaults", func(t *testing.T) {
			if err := DefaultConfig().Validate(); err != nil {
				t.Errorf("expected default config to validate, got %v", err)
			}
		})

		t.Run("rejects empty base url", func(t *testing.T) {
			config := DefaultConfig()
			config.API.BaseURL = ""

			err := config.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})

		t.Run("rejects unknown modes", func(t *testing.T) {
			config := DefaultConfig()
			config.App.Mode = "staging"

			err := config.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})

		t.Run("rejects non-positive min query length", func(t *testing.T) {
			config := DefaultConfig()
			config.Search.MinQueryLen = 0

			err := config.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	})
}
