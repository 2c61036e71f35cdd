// Package logging provides a small structured-logging abstraction so the
// prediction pipeline does not depend on a concrete logging framework.
package logging

// Logger is the structured logger used throughout the application.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger
}

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Standardized field names used across the pipeline's log output.
const (
	FieldComponent = "component"
	FieldSource    = "source"
	FieldReason    = "reason"
	FieldCount     = "count"
	FieldRate      = "rate"
	FieldFile      = "file_path"
	FieldAddr      = "addr"
	FieldDuration  = "duration_ms"
)
