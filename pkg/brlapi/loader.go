package brlapi

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/a11y/brlapi-go/pkg/brlapi/logging"
)

// State is the position of a Loader in its one-shot state machine:
// Unloaded -> Loading -> Loaded | Failed. Loaded and Failed are terminal.
type State int32

const (
	StateUnloaded State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger routes load diagnostics to l.
func WithLogger(l logging.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// WithLibraryName sets the library name reported in errors and log records.
func WithLibraryName(name string) Option {
	return func(ld *Loader) {
		if name != "" {
			ld.name = name
		}
	}
}

// Loader runs an OpenFunc at most once per Loader and remembers the outcome
// for the rest of the process. Concurrent callers block until the single
// attempt settles and all observe the same terminal state. A failed load is
// never retried.
type Loader struct {
	open   OpenFunc
	name   string
	logger logging.Logger

	once     sync.Once
	state    atomic.Int32
	reported atomic.Bool

	// Written inside once; read only after once.Do returns.
	native Native
	err    error
}

// NewLoader returns a Loader in StateUnloaded. Nothing is loaded until
// EnsureLoaded or a Reporter query runs.
func NewLoader(open OpenFunc, opts ...Option) *Loader {
	l := &Loader{
		open:   open,
		name:   DefaultLibrary,
		logger: logging.New(nil),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = logging.ForLibrary(l.logger, l.name)
	return l
}

// State returns the current state without triggering a load.
func (l *Loader) State() State {
	return State(l.state.Load())
}

// EnsureLoaded loads the native module if no attempt was made yet. It
// returns nil once the module is loaded. After a failure the first caller to
// observe it receives a *LoadError and every later caller an
// *UnavailableError.
func (l *Loader) EnsureLoaded() error {
	_, err := l.acquire()
	return err
}

func (l *Loader) acquire() (Native, error) {
	l.load()
	if l.State() == StateLoaded {
		return l.native, nil
	}
	if l.reported.CompareAndSwap(false, true) {
		l.logger.Warn(context.Background(), "native library unavailable", logging.Err(l.err))
		return nil, &LoadError{Library: l.name, Err: l.err}
	}
	return nil, &UnavailableError{Library: l.name, Cause: l.err}
}

// load settles the latch without reporting a failure to anyone. The outcome
// is logged at debug level; the warning waits for the first consumer.
func (l *Loader) load() {
	l.once.Do(func() {
		ctx := context.Background()
		l.state.Store(int32(StateLoading))
		l.logger.Debug(ctx, "loading native library")

		n, err := l.safeOpen()
		if err == nil && n == nil {
			err = errNilNative
		}
		if err != nil {
			l.err = err
			l.state.Store(int32(StateFailed))
			l.logger.Debug(ctx, "native library load failed", logging.State(StateFailed), logging.Err(err))
			return
		}
		l.native = n
		l.state.Store(int32(StateLoaded))
		l.logger.Debug(ctx, "native library loaded", logging.State(StateLoaded))
	})
}

// safeOpen turns a panicking opener into a failure so the latch always
// reaches a terminal state.
func (l *Loader) safeOpen() (n Native, err error) {
	if l.open == nil {
		return nil, errNilNative
	}
	defer func() {
		if r := recover(); r != nil {
			n, err = nil, fmt.Errorf("brlapi: native open panicked: %v", r)
		}
	}()
	return l.open()
}
