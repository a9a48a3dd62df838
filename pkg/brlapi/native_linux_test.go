package brlapi

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNativeLoaderAgainstLibc(t *testing.T) {
	l := NewNativeLoader(Config{
		Library: "libc.so.6",
		Symbols: Symbols{Major: "getpid", Minor: "getpid", Revision: "getpid"},
	})
	v, err := NewReporter(l).Version()
	require.NoError(t, err)

	pid := os.Getpid()
	assert.Equal(t, VersionIdentifier{pid, pid, pid}, v)
	assert.Equal(t, StateLoaded, l.State())
}

func TestNativeLoaderMissingLibrary(t *testing.T) {
	dir := t.TempDir()
	l := NewNativeLoader(Config{
		Library:     "brlapi-test-missing",
		SearchPaths: []string{dir},
		Symbols:     DefaultConfig().Symbols,
	})
	r := NewReporter(l)

	_, err := r.MajorVersion()
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "brlapi-test-missing", loadErr.Library)
	assert.Contains(t, err.Error(), dir)

	_, err = r.MinorVersion()
	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
}
