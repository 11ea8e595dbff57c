package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sillynames/pkg/config"
	"github.com/dmitrymomot/sillynames/pkg/environment"
)

type testConfig struct {
	TestString string `env:"TEST_STRING" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL" envDefault:"true"`
}

type customEnvConfig struct {
	TestString    string   `env:"TEST_CUSTOM_STRING"`
	TestInt       int      `env:"TEST_CUSTOM_INT"`
	TestBool      bool     `env:"TEST_CUSTOM_BOOL"`
	TestArray     []string `env:"TEST_CUSTOM_ARRAY" envSeparator:","`
	TestWithQuote string   `env:"TEST_CUSTOM_WITH_QUOTES"`
	TestEmpty     string   `env:"TEST_CUSTOM_EMPTY"`
	TestPriority  string   `env:"TEST_PRIORITY"`
	TestUnique    string   `env:"TEST_OVERRIDE_UNIQUE"`
}

type requiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

type nestedConfig struct {
	Env   environment.Environment `env:"APP_ENV" envDefault:"development"`
	Inner struct {
		Name string `env:"INNER_NAME" envDefault:"inner"`
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_STRING", "test_value")
	t.Setenv("TEST_INT", "100")
	t.Setenv("TEST_BOOL", "false")

	var cfg testConfig
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "test_value", cfg.TestString)
	assert.Equal(t, 100, cfg.TestInt)
	assert.False(t, cfg.TestBool)
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))

	require.NoError(t, err)
	assert.Equal(t, "default_value", cfg.TestString)
	assert.Equal(t, 42, cfg.TestInt)
	assert.True(t, cfg.TestBool)
}

func TestLoad_WithPrefix(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	err := config.Load(&cfg,
		config.WithPrefix("APP_"),
		config.WithEnvironment(map[string]string{
			"APP_TEST_STRING": "prefixed",
			"TEST_STRING":     "ignored",
		}),
	)

	require.NoError(t, err)
	assert.Equal(t, "prefixed", cfg.TestString)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Parallel()

	var cfg requiredConfig
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))

	require.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{"TEST_INT": "forty"}))

	require.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NestedAndTextUnmarshaler(t *testing.T) {
	t.Parallel()

	var cfg nestedConfig
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{"APP_ENV": "prod"}))

	require.NoError(t, err)
	assert.Equal(t, environment.Production, cfg.Env)
	assert.Equal(t, "inner", cfg.Inner.Name)

	err = config.Load(&cfg, config.WithEnvironment(map[string]string{"APP_ENV": "qa"}))
	require.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	t.Parallel()

	var cfg *testConfig
	err := config.Load(cfg)
	require.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoad_WithEnvFiles(t *testing.T) {
	t.Parallel()

	t.Run("single file", func(t *testing.T) {
		t.Parallel()

		var cfg customEnvConfig
		err := config.Load(&cfg,
			config.WithEnvFiles("testdata/.env.custom"),
			config.WithEnvironment(map[string]string{}),
		)

		require.NoError(t, err)
		assert.Equal(t, "custom_value", cfg.TestString)
		assert.Equal(t, 1234, cfg.TestInt)
		assert.True(t, cfg.TestBool)
		assert.Equal(t, []string{"item1", "item2", "item3"}, cfg.TestArray)
		assert.Equal(t, "quoted value", cfg.TestWithQuote)
		assert.Empty(t, cfg.TestEmpty)
		assert.Equal(t, "custom_file_value", cfg.TestPriority)
	})

	t.Run("later files win", func(t *testing.T) {
		t.Parallel()

		var cfg customEnvConfig
		err := config.Load(&cfg,
			config.WithEnvFiles("testdata/.env.custom", "testdata/.env.override"),
			config.WithEnvironment(map[string]string{}),
		)

		require.NoError(t, err)
		assert.Equal(t, "override_value", cfg.TestString)
		assert.Equal(t, 9999, cfg.TestInt)
		assert.Equal(t, "override_value", cfg.TestPriority)
		assert.Equal(t, "unique_to_override", cfg.TestUnique)
		assert.True(t, cfg.TestBool)
	})

	t.Run("environment wins over files", func(t *testing.T) {
		t.Parallel()

		var cfg customEnvConfig
		err := config.Load(&cfg,
			config.WithEnvFiles("testdata/.env.custom"),
			config.WithEnvironment(map[string]string{"TEST_PRIORITY": "from_env"}),
		)

		require.NoError(t, err)
		assert.Equal(t, "from_env", cfg.TestPriority)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		var cfg customEnvConfig
		err := config.Load(&cfg, config.WithEnvFiles("testdata/non_existent_file.env"))
		require.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}

func TestMustLoad(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
	assert.NotPanics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{"REQUIRED_VALUE": "x"}))
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads into process environment", func(t *testing.T) {
		t.Setenv("TEST_OVERRIDE_UNIQUE", "")
		require.NoError(t, os.Unsetenv("TEST_OVERRIDE_UNIQUE"))

		err := config.LoadEnv("testdata/.env.override")
		require.NoError(t, err)
		assert.Equal(t, "unique_to_override", os.Getenv("TEST_OVERRIDE_UNIQUE"))
	})

	t.Run("does not override existing variables", func(t *testing.T) {
		t.Setenv("TEST_PRIORITY", "preset")

		require.NoError(t, config.LoadEnv("testdata/.env.custom"))
		assert.Equal(t, "preset", os.Getenv("TEST_PRIORITY"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/non_existent_file.env")
		require.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}

func TestMustLoadEnv(t *testing.T) {
	assert.Panics(t, func() {
		config.MustLoadEnv("testdata/non_existent_file.env")
	})
}
