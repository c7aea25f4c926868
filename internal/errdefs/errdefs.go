// This package contains errors commonly encountered when manipulating junction
// points, both Win32 codes surfaced verbatim from the OS and conditions
// synthesized locally before any OS call is made.
package errdefs

import (
	"errors"
	"syscall"
)

// [syscall.Errno] is uintptr on every platform, so these compare correctly against
// errors returned by golang.org/x/sys/windows and can be referenced from the
// platform-neutral codec and its tests.

const (
	// ErrAccessDenied is returned when opening a reparse point without the
	// privilege needed to bypass the directory's ACL checks.
	ErrAccessDenied = syscall.Errno(0x5)

	// ErrSharingViolation is returned when another handle to the same junction is
	// already open. Reparse points are always opened with share mode none.
	ErrSharingViolation = syscall.Errno(0x20)

	// ErrInsufficientBuffer is returned by path resolution when the output buffer is too small.
	ErrInsufficientBuffer = syscall.Errno(0x7a)

	// ErrAlreadyExists is returned when creating a junction over an existing path.
	ErrAlreadyExists = syscall.Errno(0xb7)

	// ErrNotAllAssigned is set by AdjustTokenPrivileges when the token does not hold
	// the requested privilege, even though the call itself succeeded.
	ErrNotAllAssigned = syscall.Errno(0x514)

	// ErrNotAReparsePoint is returned when reading or deleting reparse data on an
	// object that carries none.
	ErrNotAReparsePoint = syscall.Errno(0x1126)

	// ErrReparseTagMismatch is returned when deleting reparse data whose tag is not
	// the one supplied in the request.
	ErrReparseTagMismatch = syscall.Errno(0x1127)
)

var (
	// ErrNotMountPoint is returned when reparse data exists but is not tagged as a
	// mount point (for example a symbolic link).
	ErrNotMountPoint = errors.New("not a reparse tag mount point")

	// ErrTargetTooLong is returned when the resolved junction target does not fit
	// in a reparse data buffer.
	ErrTargetTooLong = errors.New("junction target is too long")

	// ErrMalformedBuffer is returned when reparse data is truncated or its name
	// offsets point outside of the buffer.
	ErrMalformedBuffer = errors.New("malformed reparse data buffer")
)

// IsNotReparsePoint returns true when err is caused by an object that carries no
// reparse data at all.
func IsNotReparsePoint(err error) bool {
	return errors.Is(err, ErrNotAReparsePoint)
}

// IsNotMountPoint returns true when err is caused by reparse data of a different
// tag, or by no reparse data at all.
func IsNotMountPoint(err error) bool {
	return IsAny(err, ErrNotMountPoint, ErrNotAReparsePoint)
}

// IsAccessIsDenied returns true when err is caused by `ErrAccessDenied`.
func IsAccessIsDenied(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}

// IsAny is a vectorized version of [errors.Is], it returns true if err is one of targets.
func IsAny(err error, targets ...error) bool {
	for _, e := range targets {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
