package brlapi

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/a11y/brlapi-go/pkg/brlapi/logging"
)

// fakeNative reports fixed values and counts every native call.
type fakeNative struct {
	major, minor, revision atomic.Int32
	calls                  atomic.Int64
}

func newFakeNative(major, minor, revision int32) *fakeNative {
	f := &fakeNative{}
	f.major.Store(major)
	f.minor.Store(minor)
	f.revision.Store(revision)
	return f
}

func (f *fakeNative) MajorVersion() int32 { f.calls.Add(1); return f.major.Load() }
func (f *fakeNative) MinorVersion() int32 { f.calls.Add(1); return f.minor.Load() }
func (f *fakeNative) Revision() int32     { f.calls.Add(1); return f.revision.Load() }

var errNotFound = errors.New("libbrlapi.so: cannot open shared object file: No such file or directory")

// countingOpener wraps an outcome and counts how often it runs.
type countingOpener struct {
	native Native
	err    error
	delay  time.Duration
	opens  atomic.Int64
}

func (o *countingOpener) open() (Native, error) {
	o.opens.Add(1)
	if o.delay > 0 {
		time.Sleep(o.delay)
	}
	if o.err != nil {
		return nil, o.err
	}
	return o.native, nil
}

func newTestLoader(o *countingOpener) *Loader {
	return NewLoader(o.open, WithLibraryName("brlapi"), WithLogger(logging.Discard()))
}
