package hostfs

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// ErrUnsupported marks a primitive that has no implementation on the current
// backend. errors.Is(err, ErrUnsupported) holds for every error returned by
// the Unsupported variant, and for no error returned by a real backend.
var ErrUnsupported = errors.New("operation not supported")

// ErrorKind classifies why a primitive failed. KindUnsupported is reserved
// for the stub path; real backends report the remaining kinds.
type ErrorKind int

const (
	KindUnsupported ErrorKind = iota
	KindPermissionDenied
	KindNotFound
	KindAlreadyExists
	KindIOFailure
)

// String returns a human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindUnsupported:
		return "unsupported"
	case KindPermissionDenied:
		return "permission denied"
	case KindNotFound:
		return "not found"
	case KindAlreadyExists:
		return "already exists"
	case KindIOFailure:
		return "io failure"
	default:
		return "unknown"
	}
}

// OpError is the failure half of every primitive's result. It carries the
// operation name, the path operated on (empty for primitives that take
// none), a kind callers can switch on, and the platform errno when one
// applies.
type OpError struct {
	Op    string
	Path  string
	Kind  ErrorKind
	Errno syscall.Errno
	Err   error
}

// Error returns a formatted error message.
func (e *OpError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("hostfs: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("hostfs: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *OpError) Unwrap() error {
	return e.Err
}

// newUnsupported builds the fixed error every stubbed primitive returns.
// The errno is the same constant for every primitive that follows the stub
// pattern.
func newUnsupported(op, path string) *OpError {
	return &OpError{
		Op:    op,
		Path:  path,
		Kind:  KindUnsupported,
		Errno: syscall.ENOSYS,
		Err:   ErrUnsupported,
	}
}

// wrapOSError classifies a platform error and wraps it as an OpError,
// preserving the underlying error chain for errors.Is / errors.As.
func wrapOSError(op, path string, err error) *OpError {
	var errno syscall.Errno
	errors.As(err, &errno)

	kind := KindIOFailure
	switch {
	case errors.Is(err, fs.ErrExist):
		kind = KindAlreadyExists
	case errors.Is(err, fs.ErrNotExist):
		kind = KindNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = KindPermissionDenied
	}

	return &OpError{Op: op, Path: path, Kind: kind, Errno: errno, Err: err}
}
