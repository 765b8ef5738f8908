package command_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/0xalexb/hjarta-config/internal/command"
	"github.com/0xalexb/hjarta-config/loader"
	"github.com/0xalexb/hjarta-config/parser"
	"github.com/0xalexb/hjarta-config/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtures = "../../testdata/config"

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	app := command.App()
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.RunContext(context.Background(), append([]string{"hjarta-config"}, args...))

	return stdout.String(), stderr.String(), err
}

func TestApp(t *testing.T) {
	t.Parallel()

	app := command.App()

	assert.Equal(t, "hjarta-config", app.Name)
	assert.NotEmpty(t, app.Usage)

	names := make([]string, 0, len(app.Commands))
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}

	assert.ElementsMatch(t, []string{"load", "parsers"}, names)

	flags := make([]string, 0, len(app.Flags))
	for _, flag := range app.Flags {
		flags = append(flags, flag.Names()[0])
	}

	assert.ElementsMatch(t, []string{"log-level", "log-format", "enable"}, flags)
}

func TestLoad_JSON(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t,
		"--enable", "json", "--enable", "yml",
		"load", "--dir", fixtures, "--dir", fixtures+"/override", "--output", "json",
		"server",
	)
	require.NoError(t, err)

	var got map[string]any

	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, map[string]any{
		"host":    "api.example.com",
		"port":    float64(9000),
		"timeout": float64(30),
	}, got["server"])
}

func TestLoad_YAMLSection(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t,
		"--enable", "yml",
		"load", "--dir", fixtures, "--path", "database:connection",
		"server",
	)
	require.NoError(t, err)

	assert.Contains(t, stdout, "host: db.local")
	assert.Contains(t, stdout, "port: 5432")
	assert.NotContains(t, stdout, "server")
}

func TestLoad_DebugLogsToErrWriter(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := run(t,
		"--log-level", "debug", "--enable", "ini",
		"load", "--dir", fixtures, "app",
	)
	require.NoError(t, err)

	assert.Contains(t, stdout, "name: demo")
	assert.Contains(t, stderr, "loading configuration file")
	assert.NotContains(t, stdout, "loading configuration file")
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "no files",
			args:    []string{"load", "--dir", fixtures},
			wantErr: command.ErrNoFiles,
		},
		{
			name:    "unknown output",
			args:    []string{"load", "--dir", fixtures, "--output", "toml", "server"},
			wantErr: command.ErrUnknownOutput,
		},
		{
			name:    "nothing found",
			args:    []string{"load", "--dir", fixtures, "missing"},
			wantErr: loader.ErrNoConfigurationFound,
		},
		{
			name:    "parse failure",
			args:    []string{"--enable", "yml", "load", "--dir", fixtures, "broken.yml"},
			wantErr: loader.ErrParse,
		},
		{
			name:    "unknown parser",
			args:    []string{"--enable", "toml", "load", "--dir", fixtures, "server"},
			wantErr: parser.ErrUnregisteredExtension,
		},
		{
			name:    "missing section",
			args:    []string{"--enable", "yml", "load", "--dir", fixtures, "--path", "nope", "server"},
			wantErr: tree.ErrPathNotFound,
		},
	}

	for _, testInfo := range testCases {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := run(t, testInfo.args...)

			require.ErrorIs(t, err, testInfo.wantErr)
			assert.Empty(t, stdout)
		})
	}
}

func TestParsers(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "--enable", "yml", "--enable", "json", "parsers")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 7)

	assert.Equal(t, []string{"EXTENSION", "STATUS", "PRIORITY"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"yml", "enabled", "1"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"json", "enabled", "2"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"ini", "disabled", "-"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"yaml", "disabled", "-"}, strings.Fields(lines[6]))
}

func TestParsers_Default(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "parsers")
	require.NoError(t, err)

	assert.Contains(t, stdout, "json")
	assert.Equal(t, 1, strings.Count(stdout, "enabled"))
}
