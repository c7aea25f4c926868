package otelutil

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/Microsoft/go-junction/internal/log"
	"github.com/Microsoft/go-junction/internal/logfields"
)

// LogrusExporter writes finished spans as logrus entries.
type LogrusExporter struct {
	// Entry is the base entry spans are logged with. Defaults to [log.G] of the
	// export context.
	Entry *logrus.Entry
}

var _ sdktrace.SpanExporter = &LogrusExporter{}

// ExportSpans logs each span at info level, or error level when the span
// status is [codes.Error].
func (le *LogrusExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		le.export(ctx, s)
	}
	return nil
}

func (le *LogrusExporter) export(ctx context.Context, s sdktrace.ReadOnlySpan) {
	entry := le.Entry
	if entry == nil {
		entry = log.G(ctx)
	}
	sc := s.SpanContext()
	entry = entry.WithFields(logrus.Fields{
		logfields.Name:      s.Name(),
		logfields.TraceID:   sc.TraceID().String(),
		logfields.SpanID:    sc.SpanID().String(),
		logfields.SpanKind:  s.SpanKind().String(),
		logfields.StartTime: s.StartTime(),
		logfields.EndTime:   s.EndTime(),
		logfields.Duration:  s.EndTime().Sub(s.StartTime()),
	})
	if p := s.Parent(); p.IsValid() {
		entry = entry.WithField(logfields.ParentSpanID, p.SpanID().String())
	}
	for _, kv := range s.Attributes() {
		entry = entry.WithField(string(kv.Key), kv.Value.AsInterface())
	}

	level := logrus.InfoLevel
	if st := s.Status(); st.Code == codes.Error {
		level = logrus.ErrorLevel
		entry = entry.WithField(logrus.ErrorKey, st.Description)
	}
	entry.WithField(logfields.Status, s.Status().Code.String()).Log(level, "Span")
}

func (*LogrusExporter) Shutdown(context.Context) error { return nil }

// NewTracerProvider returns a provider that samples every span and exports it
// synchronously through e, or a default [LogrusExporter] if e is nil.
func NewTracerProvider(e *LogrusExporter) *sdktrace.TracerProvider {
	if e == nil {
		e = &LogrusExporter{}
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(DefaultSampler),
		sdktrace.WithSyncer(e),
	)
}
