package config_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	config "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/loader"
	"github.com/0xalexb/hjarta-config/logging"
	"github.com/0xalexb/hjarta-config/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestNewModule_ProvidesComponents(t *testing.T) {
	t.Parallel()

	var (
		cfg      *config.Config
		registry *parser.Registry
		ldr      *loader.Loader
	)

	app := fxtest.New(t,
		fx.NopLogger,
		config.NewModule(
			config.WithEnabled("yml", "json"),
			config.WithDirectories(testDirs...),
		),
		fx.Populate(&cfg, &registry, &ldr),
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	require.NotNil(t, cfg)
	assert.Same(t, cfg.Registry(), registry)
	assert.Same(t, cfg.Loader(), ldr)
	assert.Equal(t, []string{"yml", "json"}, registry.Enabled())
}

func TestNewModule_UsesContainerLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Level: "debug"}, &buf)

	var cfg *config.Config

	app := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(logger),
		config.NewModule(config.WithDirectories(testDirs...)),
		fx.Populate(&cfg),
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	_, err := cfg.Load(context.Background(), "missing.json")
	require.ErrorIs(t, err, loader.ErrNoConfigurationFound)
	assert.Contains(t, buf.String(), "configuration file not found")
}

func TestNewModule_Provider(t *testing.T) {
	t.Parallel()

	var server *serverConfig

	app := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(logging.Discard()),
		config.NewModule(
			config.WithEnabled("json", "yml"),
			config.WithDirectories(testDirs...),
		),
		fx.Provide(config.Provider(&serverConfig{}, "server", "server")),
		fx.Populate(&server),
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	assert.Equal(t, serverConfig{Host: "api.example.com", Port: 9000, Timeout: 30}, *server)
}

func TestNewModule_InvalidOptionsFailStart(t *testing.T) {
	t.Parallel()

	app := fx.New(
		fx.NopLogger,
		fx.Supply(slog.Default()),
		config.NewModule(config.WithEnabled("toml")),
		fx.Invoke(func(*config.Config) {}),
	)

	require.Error(t, app.Err())
	assert.Contains(t, app.Err().Error(), parser.ErrUnregisteredExtension.Error())
}
