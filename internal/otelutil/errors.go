package otelutil

import (
	"context"
	"io/fs"

	"github.com/Microsoft/go-junction/internal/errdefs"
)

const (
	kindNotFound         = "not_found"
	kindAlreadyExists    = "already_exists"
	kindPermissionDenied = "permission_denied"
	kindNotJunction      = "not_a_junction"
	kindInvalidArgument  = "invalid_argument"
	kindUnavailable      = "unavailable"
	kindCancelled        = "cancelled"
	kindUnknown          = "unknown"
)

// errorKind classifies err for the error.kind span attribute.
func errorKind(err error) string {
	switch {
	case errdefs.IsAny(err, context.Canceled, context.DeadlineExceeded):
		return kindCancelled
	case errdefs.IsAny(err, fs.ErrNotExist):
		return kindNotFound
	case errdefs.IsAny(err, errdefs.ErrAlreadyExists, fs.ErrExist):
		return kindAlreadyExists
	case errdefs.IsAny(err, errdefs.ErrAccessDenied, errdefs.ErrNotAllAssigned):
		return kindPermissionDenied
	case errdefs.IsNotMountPoint(err), errdefs.IsAny(err, errdefs.ErrReparseTagMismatch):
		return kindNotJunction
	case errdefs.IsAny(err, errdefs.ErrTargetTooLong, errdefs.ErrMalformedBuffer):
		return kindInvalidArgument
	case errdefs.IsAny(err, errdefs.ErrSharingViolation):
		return kindUnavailable
	default:
		return kindUnknown
	}
}
