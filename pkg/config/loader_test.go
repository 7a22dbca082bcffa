package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asciikit/pkg/config"
)

type testConfig struct {
	Mode      string `env:"MODE" envDefault:"printable"`
	MaxErrors int    `env:"MAX_ERRORS" envDefault:"0"`
	Verbose   bool   `env:"VERBOSE"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		require.NoError(t, err)
		assert.Equal(t, testConfig{Mode: "printable"}, cfg)
	})

	t.Run("reads prefixed variables", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg,
			config.WithPrefix("ASCIICHECK_"),
			config.WithEnvironment(map[string]string{
				"ASCIICHECK_MODE":       "ascii",
				"ASCIICHECK_MAX_ERRORS": "3",
				"MODE":                  "ignored",
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, "ascii", cfg.Mode)
		assert.Equal(t, 3, cfg.MaxErrors)
	})

	t.Run("reads process environment", func(t *testing.T) {
		t.Setenv("LOADER_TEST_VERBOSE", "true")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg, config.WithPrefix("LOADER_TEST_")))
		assert.True(t, cfg.Verbose)
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"MAX_ERRORS": "many"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		var cfg *testConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

type fileConfig struct {
	Value    string `env:"LOADER_FILE_VALUE"`
	Override string `env:"LOADER_FILE_OVERRIDE"`
}

func TestLoad_EnvFiles(t *testing.T) {
	t.Run("loads listed file without overriding environment", func(t *testing.T) {
		t.Setenv("LOADER_FILE_VALUE", "")
		t.Setenv("LOADER_FILE_OVERRIDE", "from-env")

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg, config.WithEnvFiles("testdata/.env.test")))
		assert.Equal(t, "from-env", cfg.Override)
	})

	t.Run("fails on missing file", func(t *testing.T) {
		var cfg fileConfig
		err := config.Load(&cfg, config.WithEnvFiles("testdata/missing.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg testConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{"MAX_ERRORS": "x"}))
	})
}
