package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T)
	}{
		{
			name: "load from settings file",
			content: `
server:
  host: "127.0.0.1"
  port: 8081
storage:
  backend: gorm
`,
			check: func(t *testing.T) {
				assert.Equal(t, 8081, GetInt("server.port"))
				assert.Equal(t, "gorm", GetString("storage.backend"))
				assert.Equal(t, DefaultDraftKey, GetString("storage.key"))
			},
		},
		{
			name: "environment variable override",
			content: `
server:
  port: 8081
`,
			env: map[string]string{"SEGEDIT_SERVER_PORT": "9090", "SEGEDIT_STORAGE_BACKEND": "Redis"},
			check: func(t *testing.T) {
				assert.Equal(t, 9090, GetInt("server.port"))
				assert.Equal(t, "redis", GetString("storage.backend"))
			},
		},
		{
			name: "missing config file with defaults",
			check: func(t *testing.T) {
				assert.Equal(t, 8080, GetInt("server.port"))
				assert.Equal(t, "file", GetString("storage.backend"))
				assert.Equal(t, "sqlite", GetString("database.driver"))
				assert.Equal(t, 0.1, GetFloat64("timeline.selection_threshold"))
			},
		},
		{
			name: "non-positive timeline values are corrected",
			content: `
timeline:
  handle_px: 0
  min_segment_px: -4
`,
			check: func(t *testing.T) {
				assert.Equal(t, 6.0, GetFloat64("timeline.handle_px"))
				assert.Equal(t, 10.0, GetFloat64("timeline.min_segment_px"))
			},
		},
		{
			name: "unknown storage backend",
			content: `
storage:
  backend: floppy
`,
			wantErr: true,
		},
		{
			name: "unknown database driver",
			content: `
database:
  driver: oracle
`,
			wantErr: true,
		},
		{
			name: "invalid port",
			content: `
server:
  port: 70000
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := filepath.Join(t.TempDir(), "settings.yaml")
			if tt.content != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			}

			err := load(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t)
			}
		})
	}
}

func TestGetConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	require.NoError(t, load(filepath.Join(t.TempDir(), "absent.yaml")))

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "lx-annotate-drafts", cfg.Storage.Key)
	assert.Equal(t, 1000.0, cfg.Timeline.ContainerPx)
	assert.Equal(t, 40, cfg.RateLimiting.Burst)
	assert.Equal(t, "segment-drafts", cfg.Storage.Minio.Bucket)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  &Config{Server: ServerConfig{Host: "localhost", Port: 8080}},
			wantErr: false,
		},
		{
			name:    "invalid port",
			config:  &Config{Server: ServerConfig{Host: "localhost", Port: 0}},
			wantErr: true,
		},
		{
			name: "unknown backend",
			config: &Config{
				Server:  ServerConfig{Port: 8080},
				Storage: StorageConfig{Backend: "tape"},
			},
			wantErr: true,
		},
		{
			name: "mysql requires a dsn",
			config: &Config{
				Server:   ServerConfig{Port: 8080},
				Database: DatabaseConfig{Driver: "mysql"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "memory", tt.config.Storage.Backend)
			assert.Equal(t, DefaultDraftKey, tt.config.Storage.Key)
			assert.Equal(t, 10.0, tt.config.Timeline.MinSegmentPx)
		})
	}
}
