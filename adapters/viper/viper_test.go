package viper

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	Server struct {
		Port        int           `mapstructure:"port"`
		ReadTimeout time.Duration `mapstructure:"read_timeout"`
	} `mapstructure:"server"`
	App struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"app"`
	Tags []string `mapstructure:"tags"`
}

func writeConfig(t *testing.T, env, body string) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, env)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return root
}

func TestNewViperAppendsEnvironment(t *testing.T) {
	t.Setenv("Environment", "production")
	v := NewViper("config", "yaml", "/etc/app/")
	assert.Equal(t, "/etc/app/prod/", v.ConfigPath())
}

func TestInitialiseAndUnmarshal(t *testing.T) {
	t.Setenv("Environment", "dev")
	root := writeConfig(t, "dev", "server:\n  port: 9000\n  read_timeout: 5s\napp:\n  url: https://example.test\ntags: a,b\n")

	v := NewViper("config", "yaml", root, WithRequiredKeys("app.url"))
	require.NoError(t, v.InitialiseViper())

	var cfg sampleConfig
	require.NoError(t, UnmarshalConfig(v, &cfg))
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "https://example.test", cfg.App.URL)
	assert.Equal(t, []string{"a", "b"}, cfg.Tags)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("Environment", "dev")
	t.Setenv("TESTAPP_SERVER_PORT", "7100")
	root := writeConfig(t, "dev", "server:\n  port: 9000\n")

	v := NewViper("config", "yaml", root, WithEnvPrefix("TESTAPP"))
	require.NoError(t, v.InitialiseViper())

	var cfg sampleConfig
	require.NoError(t, UnmarshalConfig(v, &cfg))
	assert.Equal(t, 7100, cfg.Server.Port)
}

func TestMissingRequiredKey(t *testing.T) {
	t.Setenv("Environment", "dev")
	v := NewViper("config", "yaml", t.TempDir(),
		WithDefaults(map[string]any{"server.port": 8080}),
		WithRequiredKeys("app.url"),
	)
	err := v.InitialiseViper()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app.url")
}

func TestUnmarshalNilTarget(t *testing.T) {
	v := NewViper("config", "yaml", t.TempDir())
	assert.Error(t, UnmarshalConfig[sampleConfig](v, nil))
}
