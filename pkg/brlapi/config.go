package brlapi

import (
	"path/filepath"
	"strings"

	"github.com/a11y/brlapi-go/internal/bindings"
	"github.com/spf13/viper"
)

// Defaults used when neither the environment nor a config file override them.
//
// The symbol names are placeholders for a native module exporting three
// int32_t (*)(void) entry points. Stock libbrlapi exports
// brlapi_getLibraryVersion(int *, int *, int *) instead, and the JNI symbols
// of libbrlapi_java take JNIEnv and jclass arguments, so neither binds with
// these defaults: point BRLAPI_LIBRARY and the BRLAPI_*_SYMBOL variables at a
// shim that exports the parameterless form.
const (
	DefaultLibrary        = "brlapi"
	// DefaultMajorSymbol is exported by no stock libbrlapi build; override
	// it with BRLAPI_MAJOR_SYMBOL when binding a real shim.
	DefaultMajorSymbol    = "brlapi_getMajorVersion"
	DefaultMinorSymbol    = "brlapi_getMinorVersion"
	DefaultRevisionSymbol = "brlapi_getRevision"
)

// Config keys, shared by environment variables (BRLAPI_ prefix, upper case),
// config files and command line flags.
const (
	KeyLibrary        = "library"
	KeyLibraryPath    = "library_path"
	KeyMajorSymbol    = "major_symbol"
	KeyMinorSymbol    = "minor_symbol"
	KeyRevisionSymbol = "revision_symbol"
)

// EnvPrefix is the prefix of the environment variables read by ConfigFromEnv.
const EnvPrefix = "BRLAPI"

// Config describes where the native library lives and which entry points it
// exports.
type Config struct {
	// Library is a logical name ("brlapi" resolves to libbrlapi.so or
	// libbrlapi.dylib) or an explicit file name or path.
	Library string

	// SearchPaths are probed before the platform dynamic linker search path.
	SearchPaths []string

	Symbols Symbols
}

// Symbols names the three version entry points.
type Symbols struct {
	Major    string
	Minor    string
	Revision string
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Library: DefaultLibrary,
		Symbols: Symbols{
			Major:    DefaultMajorSymbol,
			Minor:    DefaultMinorSymbol,
			Revision: DefaultRevisionSymbol,
		},
	}
}

// SetDefaults registers the DefaultConfig values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLibrary, DefaultLibrary)
	v.SetDefault(KeyLibraryPath, "")
	v.SetDefault(KeyMajorSymbol, DefaultMajorSymbol)
	v.SetDefault(KeyMinorSymbol, DefaultMinorSymbol)
	v.SetDefault(KeyRevisionSymbol, DefaultRevisionSymbol)
}

// ConfigFromEnv reads BRLAPI_LIBRARY, BRLAPI_LIBRARY_PATH (a list separated
// by the OS path list separator), BRLAPI_MAJOR_SYMBOL, BRLAPI_MINOR_SYMBOL and
// BRLAPI_REVISION_SYMBOL on top of DefaultConfig.
func ConfigFromEnv() Config {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return ConfigFromViper(v)
}

// ConfigFromViper builds a Config from the keys above. Empty values fall back
// to the defaults.
func ConfigFromViper(v *viper.Viper) Config {
	cfg := DefaultConfig()
	if s := strings.TrimSpace(v.GetString(KeyLibrary)); s != "" {
		cfg.Library = s
	}
	cfg.SearchPaths = searchPaths(v)
	if s := strings.TrimSpace(v.GetString(KeyMajorSymbol)); s != "" {
		cfg.Symbols.Major = s
	}
	if s := strings.TrimSpace(v.GetString(KeyMinorSymbol)); s != "" {
		cfg.Symbols.Minor = s
	}
	if s := strings.TrimSpace(v.GetString(KeyRevisionSymbol)); s != "" {
		cfg.Symbols.Revision = s
	}
	return cfg
}

// searchPaths accepts either a path list string (environment, flags) or a
// sequence (YAML config files).
func searchPaths(v *viper.Viper) []string {
	var raw []string
	if s, ok := v.Get(KeyLibraryPath).(string); ok {
		raw = filepath.SplitList(s)
	} else {
		raw = v.GetStringSlice(KeyLibraryPath)
	}
	var out []string
	for _, p := range raw {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c Config) toBindings() bindings.Config {
	return bindings.Config{
		Library:        c.Library,
		SearchPaths:    c.SearchPaths,
		MajorSymbol:    c.Symbols.Major,
		MinorSymbol:    c.Symbols.Minor,
		RevisionSymbol: c.Symbols.Revision,
	}
}
