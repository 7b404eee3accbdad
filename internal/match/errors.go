package match

import "fmt"

// MalformedMatchError reports a raw record that cannot be normalized.
// Assembly is all-or-nothing: when this is returned, no Match exists.
type MalformedMatchError struct {
	Field  string
	Reason string
}

func (e *MalformedMatchError) Error() string {
	return fmt.Sprintf("malformed match record: %s: %s", e.Field, e.Reason)
}

func malformed(field, format string, args ...interface{}) *MalformedMatchError {
	return &MalformedMatchError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
