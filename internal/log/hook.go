package log

import (
	"time"

	"github.com/containerd/log"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/Microsoft/go-junction/internal/logfields"
)

// Hook formats time and duration fields consistently across the text and JSON
// formatters, and adds the trace and span IDs of the entry's context.
type Hook struct {
	// TimeFormat is passed to [time.Time.Format] for [time.Time] fields.
	// An empty string leaves them as is.
	//
	// Default is [github.com/containerd/log.RFC3339NanoFixed].
	TimeFormat string

	// DurationFormat converts [time.Duration] fields.
	//
	// Default is [DurationFormatSeconds].
	DurationFormat DurationFormat

	// AddSpanContext adds [logfields.TraceID] and [logfields.SpanID] from the
	// span in [logrus.Entry.Context], if there is one.
	AddSpanContext bool
}

var _ logrus.Hook = &Hook{}

func NewHook() *Hook {
	return &Hook{
		TimeFormat:     log.RFC3339NanoFixed,
		DurationFormat: DurationFormatSeconds,
		AddSpanContext: true,
	}
}

func (h *Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *Hook) Fire(e *logrus.Entry) error {
	for k, v := range e.Data {
		switch vv := v.(type) {
		case time.Time:
			if h.TimeFormat != "" {
				e.Data[k] = vv.Format(h.TimeFormat)
			}
		case time.Duration:
			if h.DurationFormat != nil {
				e.Data[k] = h.DurationFormat(vv)
			}
		}
	}

	if h.AddSpanContext && e.Context != nil {
		if sc := trace.SpanContextFromContext(e.Context); sc.IsValid() {
			e.Data[logfields.TraceID] = sc.TraceID().String()
			e.Data[logfields.SpanID] = sc.SpanID().String()
		}
	}
	return nil
}
