package otelutil

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/Microsoft/go-junction/internal/oserror"
)

const tracerName = "github.com/Microsoft/go-junction"

var DefaultSampler = sdktrace.AlwaysSample()

// SetSpanStatus sets `span.SetStatus` to the proper status depending on `err`. If
// `err` is `nil` assumes `codes.Ok`.
func SetSpanStatus(span trace.Span, err error) {
	if err != nil {
		span.SetAttributes(
			attribute.Int64("win32", int64(oserror.Win32FromError(err))),
			attribute.String("error.kind", errorKind(err)),
		)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

// StartSpan starts a span named name on the package tracer. Entries from
// [github.com/Microsoft/go-junction/internal/log.G] on the returned context carry the span's trace and span IDs.
func StartSpan(ctx context.Context, name string, o ...trace.SpanStartOption) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, o...)
}
