package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/feedbackboard/pkg/config"
)

type boardConfig struct {
	Title    string   `env:"CFGTEST_TITLE" envDefault:"Feedback Board"`
	PageSize int      `env:"CFGTEST_PAGE_SIZE" envDefault:"20"`
	Tags     []string `env:"CFGTEST_TAGS" envSeparator:","`
}

type requiredConfig struct {
	Secret string `env:"CFGTEST_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults and env values", func(t *testing.T) {
		config.Reset()
		t.Setenv("CFGTEST_PAGE_SIZE", "50")
		t.Setenv("CFGTEST_TAGS", "ui,bug")

		var cfg boardConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "Feedback Board", cfg.Title)
		assert.Equal(t, 50, cfg.PageSize)
		assert.Equal(t, []string{"ui", "bug"}, cfg.Tags)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("CFGTEST_TITLE", "first")

		var first boardConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("CFGTEST_TITLE", "second")
		var second boardConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Title)

		config.Reset()
		var third boardConfig
		require.NoError(t, config.Load(&third))
		assert.Equal(t, "second", third.Title)
	})

	t.Run("missing required value", func(t *testing.T) {
		config.Reset()
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[boardConfig](nil), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	config.Reset()
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("CFGTEST_FROM_FILE=loaded\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("CFGTEST_FROM_FILE") })

	require.NoError(t, config.LoadEnv(path))
	assert.Equal(t, "loaded", os.Getenv("CFGTEST_FROM_FILE"))

	err := config.LoadEnv(filepath.Join(dir, "missing.env"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFiles)
}
