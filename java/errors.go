package java

import (
	"github.com/cockroachdb/errors"
)

// Error kinds. Every error produced by this package is marked with exactly one
// of them, so callers can test with errors.Is while the message stays specific.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIllegalState    = errors.New("illegal state")
	ErrUnsupported     = errors.New("unsupported operation")
	ErrNullArgument    = errors.New("null argument")
)

func newError(kind error, format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), kind)
}

func checkArgument(ok bool, format string, args ...any) {
	if !ok {
		panic(newError(ErrInvalidArgument, format, args...))
	}
}

func checkState(ok bool, format string, args ...any) {
	if !ok {
		panic(newError(ErrIllegalState, format, args...))
	}
}

func checkSupported(ok bool, format string, args ...any) {
	if !ok {
		panic(newError(ErrUnsupported, format, args...))
	}
}

func checkNotNull(ok bool, what string) {
	if !ok {
		panic(newError(ErrNullArgument, "%s == null", what))
	}
}

// IsBuildError reports whether err carries one of the package error kinds.
func IsBuildError(err error) bool {
	return errors.IsAny(err, ErrInvalidArgument, ErrIllegalState, ErrUnsupported, ErrNullArgument)
}

// Capture runs fn and converts a builder failure raised inside it into a
// returned error. Builders fail fast by panicking at the offending call;
// Capture is the boundary for callers that build trees from untrusted input.
// Panics that did not originate in this package are re-raised.
func Capture(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok && IsBuildError(e) {
			err = e
			return
		}
		if re, ok := r.(renderError); ok {
			err = re.err
			return
		}
		panic(r)
	}()
	fn()
	return nil
}

// renderError carries a failure out of a render pass. It is recovered at the
// render entry point so that a render either produces all of its output or
// none of it.
type renderError struct {
	err error
}

func recoverRender(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if re, ok := r.(renderError); ok {
		*err = re.err
		return
	}
	panic(r)
}
