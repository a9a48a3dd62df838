package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/a11y/brlapi-go/pkg/brlapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// libcArgs binds getpid from libc as all three entry points.
var libcArgs = []string{
	"--library", "libc.so.6",
	"--major-symbol", "getpid",
	"--minor-symbol", "getpid",
	"--revision-symbol", "getpid",
}

func TestTextOutput(t *testing.T) {
	out, err := execute(t, libcArgs...)
	require.NoError(t, err)

	pid := os.Getpid()
	assert.Equal(t, fmt.Sprintf("brlapi-go %s\nlibc.so.6 %d.%d.%d\n", brlapi.WrapperVersion(), pid, pid, pid), out)
}

func TestJSONOutput(t *testing.T) {
	out, err := execute(t, append([]string{"-o", "json"}, libcArgs...)...)
	require.NoError(t, err)

	var got report
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	pid := os.Getpid()
	assert.Equal(t, report{
		Wrapper:  brlapi.WrapperVersion(),
		Library:  "libc.so.6",
		Version:  fmt.Sprintf("%d.%d.%d", pid, pid, pid),
		Major:    pid,
		Minor:    pid,
		Revision: pid,
	}, got)
}

func TestRequire(t *testing.T) {
	_, err := execute(t, append([]string{"--require", "0.0.1"}, libcArgs...)...)
	require.NoError(t, err)

	out, err := execute(t, append([]string{"--require", "2147483647.0.0"}, libcArgs...)...)
	require.ErrorIs(t, err, ErrRequirementNotMet)
	assert.NotEmpty(t, out)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brlapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`library: libc.so.6
major_symbol: getpid
minor_symbol: getpid
revision_symbol: getpid
`), 0o600))

	out, err := execute(t, "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "libc.so.6")
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("BRLAPI_LIBRARY", "brlapi-env-missing")
	t.Setenv("BRLAPI_MAJOR_SYMBOL", "getpid")
	t.Setenv("BRLAPI_MINOR_SYMBOL", "getpid")
	t.Setenv("BRLAPI_REVISION_SYMBOL", "getpid")

	_, err := execute(t)
	require.ErrorIs(t, err, brlapi.ErrUnavailable)

	out, err := execute(t, "--library", "libc.so.6")
	require.NoError(t, err)
	assert.Contains(t, out, "libc.so.6")
}

// The package default loader settled at init and nothing here consumes it,
// so a successful run against another library writes no warning anywhere.
func TestNoWarningForUnusedDefaultLibrary(t *testing.T) {
	var global bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&global, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	var logs, stdout bytes.Buffer
	cmd := NewRootCmd(slog.New(slog.NewTextHandler(&logs, nil)), &slog.LevelVar{}, &stdout)
	cmd.SetArgs(libcArgs)
	cmd.SetErr(io.Discard)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "libc.so.6")
	assert.NotContains(t, global.String(), "level=WARN")
	assert.NotContains(t, logs.String(), "level=WARN")
}
