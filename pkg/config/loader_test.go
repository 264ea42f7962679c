package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cykrypt/registration/pkg/config"
)

type sinkConfig struct {
	Token   string        `env:"BOT_TOKEN"`
	ChatID  string        `env:"CHAT_ID"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

type appConfig struct {
	Env   string `env:"APP_ENV" envDefault:"development"`
	Limit int    `env:"LIMIT" envDefault:"5"`
	Sink  sinkConfig
}

type requiredConfig struct {
	Value string `env:"REQUIRED_VALUE,required"`
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	var cfg appConfig
	require.NoError(t, config.Load(&cfg, config.WithEnviron(map[string]string{})))

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 5, cfg.Limit)
	assert.Equal(t, 10*time.Second, cfg.Sink.Timeout)
	assert.Empty(t, cfg.Sink.Token)
}

func TestLoad_FromEnviron(t *testing.T) {
	t.Parallel()

	var cfg appConfig
	require.NoError(t, config.Load(&cfg, config.WithEnviron(map[string]string{
		"APP_ENV":   "production",
		"LIMIT":     "10",
		"BOT_TOKEN": "123:abc",
		"TIMEOUT":   "3s",
	})))

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 10, cfg.Limit)
	assert.Equal(t, "123:abc", cfg.Sink.Token)
	assert.Equal(t, 3*time.Second, cfg.Sink.Timeout)
}

func TestLoad_EnvFiles(t *testing.T) {
	t.Parallel()

	path := writeEnvFile(t, "BOT_TOKEN=from-file\nCHAT_ID=-100\nLIMIT=7\n")

	var cfg appConfig
	require.NoError(t, config.Load(&cfg,
		config.WithEnviron(map[string]string{"LIMIT": "9"}),
		config.WithEnvFiles(path, filepath.Join(t.TempDir(), "missing.env")),
	))

	assert.Equal(t, "from-file", cfg.Sink.Token)
	assert.Equal(t, "-100", cfg.Sink.ChatID)
	assert.Equal(t, 9, cfg.Limit, "environment wins over file")
}

func TestLoad_Prefix(t *testing.T) {
	t.Parallel()

	var cfg sinkConfig
	require.NoError(t, config.Load(&cfg,
		config.WithEnviron(map[string]string{"REG_BOT_TOKEN": "t", "BOT_TOKEN": "ignored"}),
		config.WithPrefix("REG_"),
	))
	assert.Equal(t, "t", cfg.Token)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	t.Run("nil pointer", func(t *testing.T) {
		t.Parallel()
		var cfg *appConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("missing required", func(t *testing.T) {
		t.Parallel()
		var cfg requiredConfig
		err := config.Load(&cfg, config.WithEnviron(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Parallel()
		var cfg appConfig
		err := config.Load(&cfg, config.WithEnviron(map[string]string{"LIMIT": "many"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("malformed env file", func(t *testing.T) {
		t.Parallel()
		path := writeEnvFile(t, "NOT A VALID LINE WITH 'UNCLOSED\n")
		var cfg appConfig
		err := config.Load(&cfg, config.WithEnviron(map[string]string{}), config.WithEnvFiles(path))
		assert.ErrorIs(t, err, config.ErrReadingEnvFile)
	})

	t.Run("must load panics", func(t *testing.T) {
		t.Parallel()
		var cfg requiredConfig
		assert.Panics(t, func() { config.MustLoad(&cfg, config.WithEnviron(map[string]string{})) })
	})
}
