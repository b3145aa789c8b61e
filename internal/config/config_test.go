package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads for the duration of t.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir()) // no stray .env
	for k := range keys {
		for _, name := range []string{strings.ToUpper(k), EnvPrefix + strings.ToUpper(k)} {
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}
	t.Setenv(EnvPrefix+"CONFIG", "")
	os.Unsetenv(EnvPrefix + "CONFIG")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *cfg)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/swapi")
	t.Setenv("SWAPI_LOG_LEVEL", "debug")
	t.Setenv("SWAPI_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("SWAPI_AUTO_MIGRATE", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "postgres://u:p@localhost/swapi", cfg.DatabaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.AutoMigrate)
}

func TestLoad_PrefixWinsOverBare(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("SWAPI_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "swapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 4000\ncors_allowed_origins: \"http://a.test, http://b.test\"\n"), 0o600))
	t.Setenv("SWAPI_CONFIG", path)
	t.Setenv("PORT", "4001")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4001, cfg.Port, "env beats file")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins())
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("PORT=5050\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("PORT") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5050, cfg.Port)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"port":     func(c *Config) { c.Port = 0 },
		"database": func(c *Config) { c.DatabaseURL = " " },
		"format":   func(c *Config) { c.LogFormat = "xml" },
		"gin mode": func(c *Config) { c.GinMode = "prod" },
		"shutdown": func(c *Config) { c.ShutdownTimeout = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Defaults()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	ok := Defaults()
	assert.NoError(t, ok.Validate())
}
