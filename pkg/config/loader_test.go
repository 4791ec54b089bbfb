package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiroshiyui/baudrate-sub005/pkg/config"
)

type testConfig struct {
	Name    string `env:"TEST_LOADER_NAME" envDefault:"fallback"`
	Count   int    `env:"TEST_LOADER_COUNT" envDefault:"42"`
	Enabled bool   `env:"TEST_LOADER_ENABLED" envDefault:"false"`
}

type requiredConfig struct {
	Value string `env:"TEST_LOADER_REQUIRED,required"`
}

func TestLoad_Defaults(t *testing.T) {
	config.ResetCache()

	var cfg testConfig
	err := config.Load(&cfg)
	require.NoError(t, err)

	assert.Equal(t, "fallback", cfg.Name)
	assert.Equal(t, 42, cfg.Count)
	assert.False(t, cfg.Enabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_LOADER_NAME", "from-env")
	t.Setenv("TEST_LOADER_COUNT", "7")
	t.Setenv("TEST_LOADER_ENABLED", "true")
	config.ResetCache()

	var cfg testConfig
	err := config.Load(&cfg)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, 7, cfg.Count)
	assert.True(t, cfg.Enabled)
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("TEST_LOADER_COUNT", "1")
	config.ResetCache()

	var first testConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, 1, first.Count)

	// A later env change is not observed: the type is served from cache.
	t.Setenv("TEST_LOADER_COUNT", "2")

	var second testConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, 1, second.Count)
}

func TestLoad_RequiredMissing(t *testing.T) {
	config.ResetCache()

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	config.ResetCache()

	err := config.Load[testConfig](nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
