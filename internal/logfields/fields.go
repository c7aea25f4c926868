package logfields

const (
	// Identifiers

	Name      = "name"
	Operation = "operation"

	// Filesystem

	Path   = "path"
	Target = "target"
	Bytes  = "bytes"
	Tag    = "reparse-tag"

	// Privileges

	Privilege = "privilege"
	Elevated  = "elevated"
	Writable  = "writable"

	// Common Misc

	Attempt = "attemptNo"

	// Time

	Duration  = "duration"
	StartTime = "startTime"
	EndTime   = "endTime"

	// Tracing

	TraceID      = "traceID"
	SpanID       = "spanID"
	ParentSpanID = "parentSpanID"
	SpanKind     = "spanKind"
	Status       = "status"
)
