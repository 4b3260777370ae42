package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/segment-editor/internal/models"
	"github.com/killallgit/segment-editor/pkg/config"
)

func TestServeCommand(t *testing.T) {
	t.Run("help", func(t *testing.T) {
		out, err := execute(t, "serve", "--help")
		require.NoError(t, err)
		assert.Contains(t, out, "Start the Segment Editor API server")
	})

	t.Run("invalid port", func(t *testing.T) {
		_, err := execute(t, "serve", "--port", "invalid")
		assert.Error(t, err)
	})
}

func TestServeCommandFlags(t *testing.T) {
	cmd := NewRootCmd()
	serveCmd, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)

	assert.NotNil(t, serveCmd.Flags().Lookup("port"), "Expected port flag to be registered")
	assert.NotNil(t, serveCmd.Flags().Lookup("host"), "Expected host flag to be registered")
}

func testConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		Server:   config.ServerConfig{Host: "127.0.0.1", Port: 8089},
		Database: config.DatabaseConfig{Driver: "sqlite", Path: filepath.Join(dir, "segments.db")},
		Storage:  config.StorageConfig{Backend: "gorm", Key: config.DefaultDraftKey},
		Timeline: config.TimelineConfig{ContainerPx: 1000},
	}
}

func TestOpenApplication(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	cfg := testConfig(t)

	app, err := openApplication(ctx, cfg)
	require.NoError(t, err)

	srv, err := app.server()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8089", srv.Addr())

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.Engine().ServeHTTP(w, req)
		return w
	}

	w := do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(http.MethodPut, "/api/v1/media/v1/drafts", `{"label":"polyp","start":1,"end":2}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	app.Close()

	// drafts written through the gorm backend survive a restart
	app, err = openApplication(ctx, cfg)
	require.NoError(t, err)
	defer app.Close()

	list := app.drafts.GetDraftsForVideo("v1")
	require.Len(t, list, 1)
	assert.Equal(t, "polyp", list[0].Label)

	// segments too
	require.NoError(t, app.segments.RegisterMedia(ctx, &models.Media{ID: "v1", Duration: 30}))
	srv, err = app.server()
	require.NoError(t, err)
	w = httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/media", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp["count"])
}

func TestOpenApplication_Errors(t *testing.T) {
	ctx := context.Background()

	cfg := testConfig(t)
	cfg.Database.Path = ""
	_, err := openApplication(ctx, cfg)
	assert.Error(t, err)

	cfg = testConfig(t)
	cfg.Storage.Backend = "tape"
	_, err = openApplication(ctx, cfg)
	assert.Error(t, err)
}
