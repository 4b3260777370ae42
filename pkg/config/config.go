package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SEGEDIT_SERVER_PORT.
const EnvPrefix = "SEGEDIT"

// DefaultDraftKey is the record name the draft blob is stored under.
const DefaultDraftKey = "lx-annotate-drafts"

var (
	once    sync.Once
	initErr error

	storageBackends = []string{"memory", "file", "gorm", "redis", "minio"}
	databaseDrivers = []string{"sqlite", "mysql"}
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		initErr = load("./config/settings.yaml")
	})
	return initErr
}

// load reads .env, defaults, environment and the optional config file, then
// validates the result.
func load(path string) error {
	// .env is optional; values already in the environment win
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error reading .env: %w", err)
	}

	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configPath := filepath.Clean(path)
	viper.SetConfigFile(configPath)
	if err := viper.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	if err := validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetFloat64 returns a float config value
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// Set overrides a config value, e.g. from a command line flag
func Set(key string, value any) {
	viper.Set(key, value)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	backend := strings.ToLower(viper.GetString("storage.backend"))
	if !contains(storageBackends, backend) {
		return fmt.Errorf("unknown storage backend %q (want one of %s)", backend, strings.Join(storageBackends, ", "))
	}
	viper.Set("storage.backend", backend)

	driver := strings.ToLower(viper.GetString("database.driver"))
	if !contains(databaseDrivers, driver) {
		return fmt.Errorf("unknown database driver %q (want one of %s)", driver, strings.Join(databaseDrivers, ", "))
	}
	viper.Set("database.driver", driver)

	if strings.TrimSpace(viper.GetString("storage.key")) == "" {
		viper.Set("storage.key", DefaultDraftKey)
	}

	// Auto-correct non-positive timeline tuning
	fixPositive("timeline.handle_px", 6)
	fixPositive("timeline.min_segment_px", 10)
	fixPositive("timeline.selection_threshold", 0.1)
	fixPositive("timeline.container_px", 1000)

	return nil
}

func fixPositive(key string, fallback float64) {
	if viper.GetFloat64(key) <= 0 {
		viper.Set(key, fallback)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Storage.Backend == "" {
		c.Storage.Backend = "memory"
	}
	if !contains(storageBackends, c.Storage.Backend) {
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if !contains(databaseDrivers, c.Database.Driver) {
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	if c.Database.Driver == "mysql" && c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required for mysql")
	}

	if c.Storage.Key == "" {
		c.Storage.Key = DefaultDraftKey
	}
	if c.Timeline.HandlePx <= 0 {
		c.Timeline.HandlePx = 6
	}
	if c.Timeline.MinSegmentPx <= 0 {
		c.Timeline.MinSegmentPx = 10
	}
	if c.Timeline.SelectionThreshold <= 0 {
		c.Timeline.SelectionThreshold = 0.1
	}
	if c.Timeline.ContainerPx <= 0 {
		c.Timeline.ContainerPx = 1000
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_body_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "./data/segments.db")
	viper.SetDefault("database.dsn", "")
	viper.SetDefault("database.max_connections", 10)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.connection_max_lifetime", 30*time.Minute)
	viper.SetDefault("database.enable_wal", true)
	viper.SetDefault("database.enable_foreign_keys", true)
	viper.SetDefault("database.verbose", false)

	// Storage defaults
	viper.SetDefault("storage.backend", "file")
	viper.SetDefault("storage.key", DefaultDraftKey)
	viper.SetDefault("storage.memory_quota", 5*1024*1024)
	viper.SetDefault("storage.file_dir", "./data/drafts")
	viper.SetDefault("storage.redis.addr", "localhost:6379")
	viper.SetDefault("storage.redis.db", 0)
	viper.SetDefault("storage.redis.prefix", "segedit:")
	viper.SetDefault("storage.minio.endpoint", "localhost:9000")
	viper.SetDefault("storage.minio.bucket", "segment-drafts")
	viper.SetDefault("storage.minio.use_ssl", false)

	// Timeline defaults
	viper.SetDefault("timeline.handle_px", 6)
	viper.SetDefault("timeline.min_segment_px", 10)
	viper.SetDefault("timeline.selection_threshold", 0.1)
	viper.SetDefault("timeline.container_px", 1000)

	// WebSocket defaults
	viper.SetDefault("websocket.read_buffer_size", 1024)
	viper.SetDefault("websocket.write_buffer_size", 1024)
	viper.SetDefault("websocket.max_message_size", 65536)
	viper.SetDefault("websocket.pong_wait", 60*time.Second)
	viper.SetDefault("websocket.write_wait", 10*time.Second)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.requests_per_second", 20)
	viper.SetDefault("rate_limiting.burst", 40)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.cors_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	viper.SetDefault("security.cors_headers", []string{"Content-Type", "Authorization"})

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output", "stdout")
	viper.SetDefault("logging.file_path", "./logs/segment-editor.log")
	viper.SetDefault("logging.max_size", 100)
	viper.SetDefault("logging.max_backups", 10)
	viper.SetDefault("logging.max_age", 30)
	viper.SetDefault("logging.compress", true)
	viper.SetDefault("logging.enable_caller", false)
	viper.SetDefault("logging.enable_stacktrace", true)
}
