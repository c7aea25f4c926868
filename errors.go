package junction

import (
	"github.com/Microsoft/go-junction/internal/errdefs"
	"github.com/Microsoft/go-junction/internal/oserror"
)

var (
	// ErrNotMountPoint is returned when a path carries reparse data of another
	// type, such as a symbolic link.
	ErrNotMountPoint = errdefs.ErrNotMountPoint

	// ErrTargetTooLong is returned by [Create] when the resolved target does not
	// fit in a reparse data buffer. Nothing is created in that case.
	ErrTargetTooLong = errdefs.ErrTargetTooLong
)

const (
	// ErrNotAReparsePoint is returned for a plain directory or file that
	// carries no reparse data.
	ErrNotAReparsePoint = errdefs.ErrNotAReparsePoint

	// ErrAlreadyExists is returned by [Create] when something is already at the
	// junction path.
	ErrAlreadyExists = errdefs.ErrAlreadyExists
)

// Error is the error returned by every operation in this package.
type Error = oserror.Error

// Win32FromError returns the Win32 error code carried by err, or
// ERROR_GEN_FAILURE for failures that did not come from the OS.
func Win32FromError(err error) uint32 {
	return oserror.Win32FromError(err)
}

// IsNotJunction returns true when err reports that a path exists but is not a
// junction, either because it has no reparse data or because its reparse data
// is of another type.
func IsNotJunction(err error) bool {
	return errdefs.IsNotMountPoint(err)
}
