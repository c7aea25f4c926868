package log

import (
	"bytes"
	"context"
	"encoding/json"
	"time"
)

// DurationFormat converts a [time.Duration] log entry field into a value that
// is JSON-serializable.
type DurationFormat func(time.Duration) interface{}

func DurationFormatSeconds(d time.Duration) interface{} { return d.Seconds() }

// Format encodes v as single-line JSON without HTML escapes, so that paths
// keep their backslashes readable. It returns "" and logs a warning to ctx if
// v cannot be encoded.
func Format(ctx context.Context, v interface{}) string {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		G(ctx).WithError(err).Warningf("could not format %T as JSON", v)
		return ""
	}
	return string(bytes.TrimSpace(buf.Bytes()))
}
