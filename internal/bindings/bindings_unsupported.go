//go:build !(darwin || freebsd || linux)

package bindings

// Open validates cfg and reports that runtime loading is unavailable on this
// platform.
func Open(cfg Config) (*Library, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return nil, ErrUnsupportedPlatform
}
