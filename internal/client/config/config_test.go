package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/railticket/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, "railticket.db", c.DatabasePath)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Empty(t, c.Secret)
}

func TestLoadConfig_Layering(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Chdir(t.TempDir())

	path := writeTempJSON(t, "", "", map[string]any{
		"server_endpoint_addr": "json:1",
		"database_path":        "json.db",
	})
	t.Setenv("RAILTICKET_SERVER_ENDPOINT_ADDR", "env:1")
	t.Setenv("RAILTICKET_SECRET", "from-env")
	os.Args = []string{"testbin", "-config", path, "-d", "flag.db"}

	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "json:1", cfg.ServerEndpointAddr, "json overrides env")
	assert.Equal(t, "flag.db", cfg.DatabasePath, "flags override json")
	assert.Equal(t, "from-env", cfg.Secret)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	var c Config
	c.LoadDefaults()
	require.ErrorIs(t, c.Validate(), common.ErrMissingSecret)

	c.Secret = "k"
	require.NoError(t, c.Validate())

	c.DatabasePath = ""
	require.ErrorIs(t, c.Validate(), common.ErrorValidation)

	c.DatabasePath = "x.db"
	c.RequestTimeout = 0
	require.ErrorIs(t, c.Validate(), common.ErrorValidation)
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"loud":  slog.LevelInfo,
		"":      slog.LevelInfo,
	}
	for in, want := range tests {
		c := Config{LogLevel: in}
		assert.Equal(t, want, c.SlogLevel(), in)
	}
}

func TestString_MasksSecret(t *testing.T) {
	c := Config{Secret: "hunter2", ServerEndpointAddr: "h:1"}
	s := c.String()
	assert.NotContains(t, s, "hunter2")
	assert.Contains(t, s, "***")
	assert.Contains(t, s, "h:1")
}
