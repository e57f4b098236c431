package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the client needs to reach the backend and manage
// its local state.
type Config struct {
	Env      string // "dev" or "prod"; controls log format
	LogLevel string

	API       APIConfig
	StateDir  string // directory for durable client state (cart, auth token)
	Telemetry TelemetryConfig
}

// APIConfig points the client at the backend REST API.
type APIConfig struct {
	// BaseURL is the API root, e.g. "http://localhost:5000/api".
	BaseURL string

	// Timeout bounds every request round-trip.
	Timeout time.Duration
}

// TelemetryConfig controls the optional local observability listener.
type TelemetryConfig struct {
	// Addr is the listen address for /metrics and /healthz
	// (e.g. "127.0.0.1:9464"). Empty disables the listener.
	Addr string

	// Namespace prefixes every metric name.
	Namespace string
}

// NewConfig loads configuration from the environment, with an optional .env
// file in the working directory or up to two parents.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		dir, _ := os.Getwd()
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				break
			}
		}
	}

	v := viper.New()
	v.SetDefault("ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("API_URL", "http://localhost:5000/api")
	v.SetDefault("API_TIMEOUT_SECONDS", 30)
	v.SetDefault("STATE_DIR", defaultStateDir())
	v.SetDefault("METRICS_ADDR", "")
	v.SetDefault("METRICS_NAMESPACE", "shopkit")
	v.AutomaticEnv()

	cfg := &Config{
		Env:      v.GetString("ENV"),
		LogLevel: v.GetString("LOG_LEVEL"),
		API: APIConfig{
			BaseURL: v.GetString("API_URL"),
			Timeout: time.Duration(v.GetInt("API_TIMEOUT_SECONDS")) * time.Second,
		},
		StateDir: v.GetString("STATE_DIR"),
		Telemetry: TelemetryConfig{
			Addr:      v.GetString("METRICS_ADDR"),
			Namespace: v.GetString("METRICS_NAMESPACE"),
		},
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("API_URL must not be empty")
	}
	if cfg.API.Timeout <= 0 {
		return nil, fmt.Errorf("API_TIMEOUT_SECONDS must be positive")
	}

	return cfg, nil
}

// defaultStateDir places client state under the user state directory,
// falling back to a dot directory in the working directory.
func defaultStateDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", "shopkit")
	}
	return ".shopkit"
}
