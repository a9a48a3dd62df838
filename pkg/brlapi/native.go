package brlapi

import "github.com/a11y/brlapi-go/internal/bindings"

// Native is the capability exported by the native library: three
// parameterless entry points returning a 32-bit signed integer.
type Native interface {
	MajorVersion() int32
	MinorVersion() int32
	Revision() int32
}

// OpenFunc locates and initializes a native module.
type OpenFunc func() (Native, error)

// NativeOpener returns an OpenFunc that loads the shared library described by
// cfg through the platform dynamic loader.
func NativeOpener(cfg Config) OpenFunc {
	bc := cfg.toBindings()
	return func() (Native, error) {
		lib, err := bindings.Open(bc)
		if err != nil {
			return nil, err
		}
		return lib, nil
	}
}

// NewNativeLoader is shorthand for a Loader over NativeOpener(cfg) that
// reports cfg.Library in its errors and log records.
func NewNativeLoader(cfg Config, opts ...Option) *Loader {
	opts = append([]Option{WithLibraryName(cfg.Library)}, opts...)
	return NewLoader(NativeOpener(cfg), opts...)
}
