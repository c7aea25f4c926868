package log

import (
	"context"

	"github.com/sirupsen/logrus"
)

type entryContextKeyType int

const _entryContextKey entryContextKeyType = iota

// L is the default log entry. It has no fields and writes to the standard logrus logger.
var L = logrus.NewEntry(logrus.StandardLogger())

// G returns the [logrus.Entry] stored in ctx by [WithContext], or [L] if there
// is none, with its context set to ctx.
//
// The entry always references ctx itself, so [Hook] sees whichever span is
// active in ctx rather than the one active when the entry was stored.
func G(ctx context.Context) *logrus.Entry {
	e, _ := ctx.Value(_entryContextKey).(*logrus.Entry)
	if e == nil {
		e = L
	}
	return e.WithContext(ctx)
}

// WithContext returns a context that carries entry, and entry with its context
// set to the returned context.
func WithContext(ctx context.Context, entry *logrus.Entry) (context.Context, *logrus.Entry) {
	ctx = context.WithValue(ctx, _entryContextKey, entry)
	return ctx, entry.WithContext(ctx)
}
