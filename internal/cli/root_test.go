package cli

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/a11y/brlapi-go/pkg/brlapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var stdout bytes.Buffer
	cmd := NewRootCmd(logger, &slog.LevelVar{}, &stdout)
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestInvalidOutputFormat(t *testing.T) {
	_, err := execute(t, "--output", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid output format "yaml"`)
}

func TestInvalidRequirement(t *testing.T) {
	_, err := execute(t, "--require", "one.two")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --require")
}

func TestRejectsArguments(t *testing.T) {
	_, err := execute(t, "extra")
	require.Error(t, err)
}

func TestMissingLibrary(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "--library", "brlapi-cli-missing", "--library-path", dir)

	var loadErr *brlapi.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "brlapi-cli-missing", loadErr.Library)
	assert.Empty(t, out)
}

func TestMissingConfigFile(t *testing.T) {
	_, err := execute(t, "--config", "/nonexistent/brlapi.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestEveryLibraryFlagBound(t *testing.T) {
	cmd := NewRootCmd(slog.New(slog.NewTextHandler(io.Discard, nil)), &slog.LevelVar{}, io.Discard)
	for _, name := range []string{"library", "library-path", "major-symbol", "minor-symbol", "revision-symbol"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestMissingLibraryWarnsThroughInjectedLogger(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	cmd := NewRootCmd(logger, &slog.LevelVar{}, io.Discard)
	cmd.SetArgs([]string{"--library", "brlapi-cli-missing", "--library-path", t.TempDir()})
	cmd.SetErr(io.Discard)

	require.ErrorIs(t, cmd.Execute(), brlapi.ErrUnavailable)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "library=brlapi-cli-missing")
	assert.NotContains(t, logs.String(), "library=brlapi ")
}
