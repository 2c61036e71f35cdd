// Package parsererror defines the typed errors raised while validating
// request inputs. Keeping them as structs lets callers distinguish a
// malformed field from an internal fault with errors.As instead of string
// matching.
package parsererror

import "fmt"

// ParseError reports a request field that failed validation.
type ParseError struct {
	Field  string
	Value  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse %s=%q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("failed to parse %s=%q: %s", e.Field, e.Value, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InputError reports an input file that could not be loaded or decoded.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("failed to load input %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
