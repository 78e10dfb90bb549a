package fontparts

import "fmt"

// ValidationError reports malformed input to one of the scripting
// accessors. It is raised before any mutation occurs, so a failed call
// never leaves partial state behind.
type ValidationError struct {
	Kind   string // what was validated, e.g. "layer name", "color"
	Value  any    // the offending value
	Reason string // human-readable description of the problem
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Kind, e.Value, e.Reason)
}

// DuplicateNameError reports a rename collision with a sibling layer.
type DuplicateNameError struct {
	Name string
}

// Error implements the error interface.
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("a layer with the name %q already exists", e.Name)
}

// NotFoundError reports a lookup of a glyph name absent from a layer.
type NotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no glyph named %q", e.Name)
}

// UnimplementedError reports that a concrete environment did not supply
// a required storage hook. Partial environments embed
// [UnimplementedBackend], whose every method returns this error.
type UnimplementedError struct {
	Op string // name of the missing hook, e.g. "SetColor"
}

// Error implements the error interface.
func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("operation %s is not implemented by this environment", e.Op)
}

// unimplemented constructs an UnimplementedError for hook op.
func unimplemented(op string) error {
	return &UnimplementedError{Op: op}
}

// InvariantError reports a programming error, such as attaching a layer
// to a second font.
type InvariantError struct {
	Reason string
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return "invariant violated: " + e.Reason
}
