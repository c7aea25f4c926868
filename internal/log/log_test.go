package log

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/Microsoft/go-junction/internal/logfields"
)

func TestGDefault(t *testing.T) {
	ctx := context.Background()
	e := G(ctx)
	if e.Context != ctx {
		t.Errorf("expected entry context to be %v, got %v", ctx, e.Context)
	}
	if len(e.Data) != 0 {
		t.Errorf("expected no fields, got %v", e.Data)
	}
}

func TestWithContext(t *testing.T) {
	ctx, e := WithContext(context.Background(), L.WithField(logfields.Path, `C:\link`))
	if e.Context != ctx {
		t.Errorf("expected entry to reference the returned context")
	}

	got := G(ctx)
	if got.Context != ctx {
		t.Errorf("expected stored entry to reference the returned context")
	}
	if diff := cmp.Diff(logrus.Fields{logfields.Path: `C:\link`}, got.Data); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}

	type key struct{}
	child := context.WithValue(ctx, key{}, 1)
	got = G(child)
	if got.Context != child {
		t.Errorf("expected entry to reference the child context")
	}
	if got.Data[logfields.Path] != `C:\link` {
		t.Errorf("expected child entry to keep the stored fields, got %v", got.Data)
	}
}

func TestHookFormat(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC)
	err := errors.New("boom")

	e := logrus.NewEntry(logrus.New())
	e.Data = logrus.Fields{
		logfields.StartTime: now,
		logfields.Duration:  1500 * time.Millisecond,
		logfields.Tag:       uint32(0xA0000003),
		logfields.Path:      `C:\link`,
		logrus.ErrorKey:     err,
	}

	h := NewHook()
	h.TimeFormat = time.RFC3339Nano
	if err := h.Fire(e); err != nil {
		t.Fatal(err)
	}

	want := logrus.Fields{
		logfields.StartTime: now.Format(time.RFC3339Nano),
		logfields.Duration:  1.5,
		logfields.Tag:       uint32(0xA0000003),
		logfields.Path:      `C:\link`,
		logrus.ErrorKey:     err,
	}
	if diff := cmp.Diff(want, e.Data, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestHookSpanContext(t *testing.T) {
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1, 2, 3},
		SpanID:     trace.SpanID{4, 5, 6},
		TraceFlags: trace.FlagsSampled,
	})
	// an entry stored before the span started still picks the span up through G
	base, _ := WithContext(context.Background(), logrus.NewEntry(logrus.New()))
	e := G(trace.ContextWithSpanContext(base, sc))
	if err := NewHook().Fire(e); err != nil {
		t.Fatal(err)
	}
	if got := e.Data[logfields.TraceID]; got != sc.TraceID().String() {
		t.Errorf("expected trace ID %s, got %v", sc.TraceID(), got)
	}
	if got := e.Data[logfields.SpanID]; got != sc.SpanID().String() {
		t.Errorf("expected span ID %s, got %v", sc.SpanID(), got)
	}

	e = logrus.NewEntry(logrus.New()).WithContext(context.Background())
	if err := NewHook().Fire(e); err != nil {
		t.Fatal(err)
	}
	if _, ok := e.Data[logfields.TraceID]; ok {
		t.Errorf("expected no trace ID without a span, got %v", e.Data)
	}
}

func TestFormat(t *testing.T) {
	got := Format(context.Background(), map[string]string{"path": `C:\a<b>`})
	if want := `{"path":"C:\\a<b>"}`; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	if got := Format(context.Background(), make(chan int)); got != "" {
		t.Errorf("expected empty string for unencodable value, got %q", got)
	}
}
