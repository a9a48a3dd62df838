package bindings

import (
	"path/filepath"
	"strings"
)

// fileName maps a logical library name to the platform shared object name.
// Names that already carry a shared object suffix or a directory component
// are returned unchanged.
func fileName(goos, name string) string {
	if looksLikeFile(name) {
		return name
	}
	switch goos {
	case "darwin", "ios":
		return "lib" + name + ".dylib"
	case "windows":
		return name + ".dll"
	default:
		return "lib" + name + ".so"
	}
}

func looksLikeFile(name string) bool {
	if strings.ContainsAny(name, `/\`) {
		return true
	}
	return strings.HasSuffix(name, ".dylib") ||
		strings.HasSuffix(name, ".dll") ||
		strings.HasSuffix(name, ".so") ||
		strings.Contains(name, ".so.")
}

// candidates lists the paths handed to the dynamic loader, in order. Each
// search path is tried first; the bare file name comes last so the platform
// search (LD_LIBRARY_PATH, DYLD_LIBRARY_PATH, ld.so.cache) still applies.
// Absolute or relative paths in name bypass the search paths.
func candidates(goos string, cfg Config) []string {
	file := fileName(goos, cfg.Library)
	if strings.ContainsAny(cfg.Library, `/\`) {
		return []string{file}
	}
	out := make([]string, 0, len(cfg.SearchPaths)+1)
	seen := make(map[string]struct{}, len(cfg.SearchPaths)+1)
	for _, dir := range cfg.SearchPaths {
		if dir == "" {
			continue
		}
		p := filepath.Join(dir, file)
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return append(out, file)
}

func (c Config) validate() error {
	if c.Library == "" {
		return ErrNoLibrary
	}
	if c.MajorSymbol == "" || c.MinorSymbol == "" || c.RevisionSymbol == "" {
		return ErrNoSymbol
	}
	return nil
}
