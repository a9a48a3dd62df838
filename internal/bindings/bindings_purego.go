//go:build darwin || freebsd || linux

package bindings

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

// Open locates the native library described by cfg, loads it and binds the
// three version entry points. Every failed candidate contributes its
// dynamic loader diagnostic to the returned error.
func Open(cfg Config) (*Library, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var errs []error
	for _, path := range candidates(runtime.GOOS, cfg) {
		h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			errs = append(errs, fmt.Errorf("dlopen %s: %w", path, err))
			continue
		}
		lib, err := bind(h, path, cfg)
		if err != nil {
			// The handle stays open: the dynamic loader refcounts it and
			// nothing from it is reachable.
			errs = append(errs, err)
			continue
		}
		return lib, nil
	}
	return nil, errors.Join(errs...)
}

func bind(h uintptr, path string, cfg Config) (*Library, error) {
	lib := &Library{path: path}
	for _, ep := range []struct {
		name string
		fn   *func() int32
	}{
		{cfg.MajorSymbol, &lib.major},
		{cfg.MinorSymbol, &lib.minor},
		{cfg.RevisionSymbol, &lib.revision},
	} {
		sym, err := purego.Dlsym(h, ep.name)
		if err != nil {
			return nil, fmt.Errorf("dlsym %s in %s: %w", ep.name, path, err)
		}
		purego.RegisterFunc(ep.fn, sym)
	}
	return lib, nil
}
