// Package brlapi reports the build identity of the native brlapi client
// library.
//
// The native library is located through the platform dynamic linker search
// path and loaded exactly once per process. The package-level default loader
// is configured from the environment (see ConfigFromEnv) and starts loading
// as soon as the package is initialized, so a missing or broken installation
// is detected before the first query:
//
//	major, err := brlapi.MajorVersion()
//	if err != nil {
//	    var loadErr *brlapi.LoadError
//	    if errors.As(err, &loadErr) {
//	        log.Printf("brlapi not installed: %v", loadErr.Err)
//	    }
//	    return err
//	}
//
// A failed load is terminal for the process. The first caller that observes
// the failure receives a *LoadError with the dynamic loader diagnostics;
// later callers receive an *UnavailableError. Both match ErrUnavailable
// under errors.Is.
//
// Callers that need a different library location, or that test against a
// fake native module, build their own Loader and Reporter:
//
//	loader := brlapi.NewLoader(func() (brlapi.Native, error) { return fake, nil })
//	v, err := brlapi.NewReporter(loader).Version()
package brlapi
