//go:build windows

// Package reparsepoint opens reparse points and moves reparse data buffers
// between them and the OS.
package reparsepoint

import (
	"context"
	"os"

	"github.com/Microsoft/go-winio"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"

	"github.com/Microsoft/go-junction/internal/errdefs"
	"github.com/Microsoft/go-junction/internal/log"
	"github.com/Microsoft/go-junction/internal/logfields"
	"github.com/Microsoft/go-junction/internal/privilege"
	"github.com/Microsoft/go-junction/internal/reparse"
	"github.com/Microsoft/go-junction/internal/winapi"
)

// swapped out in tests
var (
	openForBackup   = winio.OpenForBackup
	ensurePrivilege = privilege.Ensure
)

// Open opens the reparse point itself at path, rather than whatever it
// resolves to, with exclusive access.
//
// If the open is denied, the privilege returned by [privilege.ForAccess] is
// enabled for the process and the open is retried once.
func Open(ctx context.Context, path string, writable bool) (*os.File, error) {
	access := uint32(windows.GENERIC_READ)
	if writable {
		access |= windows.GENERIC_WRITE
	}
	entry := log.G(ctx).WithFields(logrus.Fields{
		logfields.Path:     path,
		logfields.Writable: writable,
	})

	f, err := openForBackup(path, access, 0, windows.OPEN_EXISTING)
	if err == nil || !errdefs.IsAccessIsDenied(err) {
		return f, err
	}

	p := privilege.ForAccess(writable)
	entry.WithError(err).WithFields(logrus.Fields{
		logfields.Privilege: p,
		logfields.Attempt:   2,
	}).Debug("reparse point open denied, retrying with privilege")
	if perr := ensurePrivilege(ctx, p); perr != nil {
		return nil, perr
	}
	return openForBackup(path, access, 0, windows.OPEN_EXISTING)
}

// Get reads the reparse data buffer of f.
func Get(f *os.File) ([]byte, error) {
	b := make([]byte, reparse.MaxBufferSize)
	n, err := winapi.DeviceIoControl(windows.Handle(f.Fd()), winapi.FSCTL_GET_REPARSE_POINT, nil, b)
	if err != nil {
		return nil, errors.Wrap(err, "FSCTL_GET_REPARSE_POINT")
	}
	return b[:n], nil
}

// Set writes the reparse data buffer b to f. f must be a writable handle to
// an empty directory or an existing mount point.
func Set(f *os.File, b []byte) error {
	if _, err := winapi.DeviceIoControl(windows.Handle(f.Fd()), winapi.FSCTL_SET_REPARSE_POINT, b, nil); err != nil {
		return errors.Wrap(err, "FSCTL_SET_REPARSE_POINT")
	}
	return nil
}

// Delete removes the mount point reparse data from f, leaving an empty
// directory behind.
func Delete(f *os.File) error {
	if _, err := winapi.DeviceIoControl(windows.Handle(f.Fd()), winapi.FSCTL_DELETE_REPARSE_POINT, reparse.EncodeDelete(), nil); err != nil {
		return errors.Wrap(err, "FSCTL_DELETE_REPARSE_POINT")
	}
	return nil
}
