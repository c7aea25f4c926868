//go:build windows

package junction

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"unicode/utf16"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Microsoft/go-junction/internal/errdefs"
	"github.com/Microsoft/go-junction/internal/log"
	"github.com/Microsoft/go-junction/internal/logfields"
	"github.com/Microsoft/go-junction/internal/oserror"
	"github.com/Microsoft/go-junction/internal/otelutil"
	"github.com/Microsoft/go-junction/internal/reparse"
	"github.com/Microsoft/go-junction/internal/reparsepoint"
	"github.com/Microsoft/go-junction/internal/winapi"
)

const (
	opCreate    = "junction::Create"
	opDelete    = "junction::Delete"
	opExists    = "junction::Exists"
	opGetTarget = "junction::GetTarget"
)

// Create makes a junction at path that resolves to target. Relative targets
// are resolved against the current directory.
//
// Nothing may exist at path. Create makes an empty directory there and then
// writes the reparse data; if writing fails, the directory is left in place.
func Create(ctx context.Context, target, path string) (err error) {
	ctx, span := otelutil.StartSpan(ctx, opCreate, trace.WithAttributes(
		attribute.String(logfields.Path, path),
		attribute.String(logfields.Target, target)))
	defer span.End()
	defer func() { otelutil.SetSpanStatus(span, err) }()

	full, err := winapi.GetFullPathName(target)
	if err != nil {
		return makeError(err, opCreate, path)
	}
	b, err := reparse.EncodeMountPoint(full)
	if err != nil {
		return makeError(err, opCreate, path)
	}

	if err := os.Mkdir(path, 0o777); err != nil {
		return makeError(err, opCreate, path)
	}
	f, err := reparsepoint.Open(ctx, path, true)
	if err != nil {
		return makeError(err, opCreate, path)
	}
	defer f.Close()
	if err := reparsepoint.Set(f, b); err != nil {
		return makeError(err, opCreate, path)
	}

	log.G(ctx).WithFields(logrus.Fields{
		logfields.Operation: opCreate,
		logfields.Path:      path,
		logfields.Target:    string(utf16.Decode(full)),
		logfields.Bytes:     len(b),
	}).Debug("created junction")
	return nil
}

// Delete removes the reparse data from the junction at path. The empty
// directory remains.
func Delete(ctx context.Context, path string) (err error) {
	ctx, span := otelutil.StartSpan(ctx, opDelete, trace.WithAttributes(
		attribute.String(logfields.Path, path)))
	defer span.End()
	defer func() { otelutil.SetSpanStatus(span, err) }()

	if _, err := os.Lstat(path); err != nil {
		return makeError(err, opDelete, path)
	}
	f, err := reparsepoint.Open(ctx, path, true)
	if err != nil {
		return makeError(err, opDelete, path)
	}
	defer f.Close()
	if err := reparsepoint.Delete(f); err != nil {
		return makeError(err, opDelete, path)
	}

	log.G(ctx).WithFields(logrus.Fields{
		logfields.Operation: opDelete,
		logfields.Path:      path,
	}).Debug("deleted junction")
	return nil
}

// Exists reports whether path is a junction.
//
// It returns false and no error when nothing exists at path. When path exists
// but is not a junction it returns false with an error matching either
// [ErrNotAReparsePoint] or [ErrNotMountPoint].
func Exists(ctx context.Context, path string) (_ bool, err error) {
	ctx, span := otelutil.StartSpan(ctx, opExists, trace.WithAttributes(
		attribute.String(logfields.Path, path)))
	defer span.End()
	defer func() { otelutil.SetSpanStatus(span, err) }()

	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, makeError(err, opExists, path)
	}
	b, err := read(ctx, path)
	if err != nil {
		if errdefs.IsNotReparsePoint(err) {
			log.G(ctx).WithFields(logrus.Fields{
				logfields.Operation: opExists,
				logfields.Path:      path,
			}).Debug("path has no reparse data")
		}
		return false, makeError(err, opExists, path)
	}
	tag, err := reparse.Tag(b)
	if err != nil {
		return false, makeError(err, opExists, path)
	}
	log.G(ctx).WithFields(logrus.Fields{
		logfields.Operation: opExists,
		logfields.Path:      path,
		logfields.Tag:       tag,
	}).Debug("read reparse tag")
	if tag != reparse.TagMountPoint {
		return false, makeError(&reparse.UnsupportedTagError{Tag: tag}, opExists, path)
	}
	return true, nil
}

// GetTarget returns the target recorded by the junction at path, without the
// \??\ prefix.
func GetTarget(ctx context.Context, path string) (_ string, err error) {
	ctx, span := otelutil.StartSpan(ctx, opGetTarget, trace.WithAttributes(
		attribute.String(logfields.Path, path)))
	defer span.End()
	defer func() { otelutil.SetSpanStatus(span, err) }()

	if _, err := os.Lstat(path); err != nil {
		return "", makeError(err, opGetTarget, path)
	}
	b, err := read(ctx, path)
	if err != nil {
		return "", makeError(err, opGetTarget, path)
	}
	mp, err := reparse.Decode(b)
	if err != nil {
		return "", makeError(err, opGetTarget, path)
	}
	target := mp.Target()
	log.G(ctx).WithFields(logrus.Fields{
		logfields.Operation: opGetTarget,
		logfields.Path:      path,
		logfields.Target:    target,
	}).Debug("read junction target")
	return target, nil
}

func read(ctx context.Context, path string) ([]byte, error) {
	f, err := reparsepoint.Open(ctx, path, false)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return reparsepoint.Get(f)
}

// makeError drops the [fs.PathError] added by os and go-winio, since the
// returned [Error] already names the path, and reduces any not-found failure
// to [fs.ErrNotExist].
func makeError(err error, op, path string) error {
	if errors.Is(err, fs.ErrNotExist) {
		err = fs.ErrNotExist
	} else if pe := (*fs.PathError)(nil); errors.As(err, &pe) {
		err = pe.Err
	}
	return oserror.New(err, op, path)
}
