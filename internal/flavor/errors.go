package flavor

import "fmt"

// NotFoundError reports that no document exists for a flavor name in either
// the user or builtin directory.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// ParseError reports that a flavor document exists but is not valid TOML.
type ParseError struct {
	Kind string
	Name string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s %q: %v", e.Kind, e.Name, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports a structurally invalid document, such as an
// "inherits" key that is not a string.
type SchemaError struct {
	Kind   string
	Name   string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Kind, e.Name, e.Reason)
}

// CycleError reports an inheritance cycle between flavor documents.
type CycleError struct {
	Kind string
	Name string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s %q: inheritance cycle detected", e.Kind, e.Name)
}
