package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrorKind discriminates the two failure shapes every loader reports
// through. Subsystem-specific error types never cross the loader
// boundary.
type ErrorKind int

const (
	// KindIO marks failures of the storage layer itself: missing files,
	// permission problems, short reads.
	KindIO ErrorKind = iota
	// KindOther marks semantic failures: malformed images, unparseable
	// fonts, unsupported codecs, backend errors.
	KindOther
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// LoadError is the single error type surfaced by loaders and by
// Manager.GetOrLoad.
type LoadError struct {
	Kind ErrorKind
	Path string
	msg  string
	err  error
}

func (e *LoadError) Error() string {
	if e.err != nil && e.msg != e.err.Error() {
		return fmt.Sprintf("load %q: %s: %v", e.Path, e.msg, e.err)
	}
	return fmt.Sprintf("load %q: %s", e.Path, e.msg)
}

func (e *LoadError) Unwrap() error {
	return e.err
}

// NewIOError builds a KindIO error preserving cause for errors.Is/As
// chains.
func NewIOError(path string, cause error) *LoadError {
	return &LoadError{
		Kind: KindIO,
		Path: path,
		msg:  "i/o failure",
		err:  cause,
	}
}

// NewOtherError builds a KindOther error with a descriptive message.
func NewOtherError(path, format string, args ...interface{}) *LoadError {
	return &LoadError{
		Kind: KindOther,
		Path: path,
		msg:  fmt.Sprintf(format, args...),
	}
}

// WrapError converts any error into a LoadError. The conversion is
// total: a *LoadError passes through untouched, filesystem failures
// classify as KindIO with the cause preserved, everything else becomes
// KindOther carrying the original error's display form. Equal inputs
// always classify to the same kind.
func WrapError(path string, err error) *LoadError {
	var le *LoadError
	if errors.As(err, &le) {
		return le
	}
	if isIOFailure(err) {
		return NewIOError(path, err)
	}
	return &LoadError{
		Kind: KindOther,
		Path: path,
		msg:  err.Error(),
		err:  err,
	}
}

func isIOFailure(err error) bool {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return true
	}
	var sysErr *os.SyscallError
	if errors.As(err, &sysErr) {
		return true
	}
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, fs.ErrClosed)
}
