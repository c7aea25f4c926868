// Package oserror defines the error returned by every public junction
// operation. It records which operation failed and on which path, and keeps
// the underlying Win32 code reachable through [errors.Is] and [errors.As].
package oserror

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"

	cerrdefs "github.com/containerd/errdefs"

	"github.com/Microsoft/go-junction/internal/errdefs"
)

const ERROR_GEN_FAILURE = syscall.Errno(31) //nolint:revive,stylecheck

type Error struct {
	Op   string
	Path string
	Err  error
}

var _ error = &Error{}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := e.Op
	if e.Path != "" {
		s += " " + e.Path
	}
	if e.Err == nil {
		return s
	}
	var code syscall.Errno
	if errors.As(e.Err, &code) {
		return fmt.Sprintf("%s: %s (0x%x)", s, e.Err, uint32(code))
	}
	return s + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is maps the failure onto the containerd error classes, so callers can use
// [cerrdefs.IsNotFound] and friends without knowing the Win32 codes.
func (e *Error) Is(target error) bool {
	if e == nil || e.Err == nil {
		return false
	}
	switch target {
	case cerrdefs.ErrNotFound:
		return errors.Is(e.Err, fs.ErrNotExist)
	case cerrdefs.ErrAlreadyExists:
		return errdefs.IsAny(e.Err, errdefs.ErrAlreadyExists, fs.ErrExist)
	case cerrdefs.ErrPermissionDenied:
		return errdefs.IsAny(e.Err, errdefs.ErrAccessDenied, errdefs.ErrNotAllAssigned)
	case cerrdefs.ErrInvalidArgument:
		return errdefs.IsAny(e.Err, errdefs.ErrTargetTooLong, errdefs.ErrMalformedBuffer)
	case cerrdefs.ErrFailedPrecondition:
		return errdefs.IsNotMountPoint(e.Err) || errdefs.IsAny(e.Err, errdefs.ErrReparseTagMismatch)
	case cerrdefs.ErrUnavailable:
		return errdefs.IsAny(e.Err, errdefs.ErrSharingViolation)
	}
	return false
}

// New wraps err with the operation and path that produced it.
// A nil err returns nil so callers can wrap unconditionally.
func New(err error, op, path string) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Path: path, Err: err}
}

// Win32FromError returns the Win32 code carried by err, or ERROR_GEN_FAILURE
// when the failure was synthesized locally.
func Win32FromError(err error) uint32 {
	if code := syscall.Errno(0); errors.As(err, &code) {
		return uint32(code)
	}
	return uint32(ERROR_GEN_FAILURE)
}
