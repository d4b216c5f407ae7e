package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/questionbank/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:   config.Server{Port: "0", Mode: gin.TestMode},
		Database: config.Database{Driver: "memory", LogLevel: "silent"},
		Log:      config.Log{Level: "error"},
		CORS:     config.CORS{AllowedOrigins: []string{"*"}},
	}
}

func TestAppGraphIsComplete(t *testing.T) {
	require.NoError(t, fx.ValidateApp(appOptions(testConfig())))
}

func TestNewGinEngine_ServesMetricsAndSwagger(t *testing.T) {
	r := NewGinEngine(testConfig())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/question/{id}")
}

func TestCORSConfig(t *testing.T) {
	c := corsConfig([]string{"*"})
	assert.True(t, c.AllowAllOrigins)
	assert.Empty(t, c.AllowOrigins)
	assert.False(t, c.AllowCredentials)

	c = corsConfig(nil)
	assert.True(t, c.AllowAllOrigins)

	c = corsConfig([]string{"https://a.example", "https://b.example"})
	assert.False(t, c.AllowAllOrigins)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.AllowOrigins)
	assert.True(t, c.AllowCredentials)
}

func TestGinMode(t *testing.T) {
	assert.Equal(t, gin.ReleaseMode, ginMode("release"))
	assert.Equal(t, gin.TestMode, ginMode("test"))
	assert.Equal(t, gin.DebugMode, ginMode(""))
	assert.Equal(t, gin.DebugMode, ginMode("verbose"))
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"serve", "reset-db"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestRequestLogger_LevelFollowsStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	prev, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	r := gin.New()
	r.Use(requestLogger())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	tests := map[string]string{"/ok": "info", "/missing": "warn", "/boom": "error"}
	for path, level := range tests {
		buf.Reset()
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))

		var event map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &event), path)
		assert.Equal(t, level, event["level"], path)
		assert.Equal(t, path, event["path"])
		assert.Equal(t, "request", event["message"])
	}
}

func TestResetDBCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_DRIVER", "memory")
	t.Setenv("LOG_LEVEL", "error")

	root := newRootCmd()
	root.SetArgs([]string{"reset-db"})
	require.NoError(t, root.Execute())
}
