package cubefield

import "fmt"

// GeometryConstructionError reports geometry that cannot be turned into a
// drawable mesh. It is always raised before any GPU upload happens.
type GeometryConstructionError struct {
	Reason string
}

func (e *GeometryConstructionError) Error() string {
	return fmt.Sprintf("geometry construction: %s", e.Reason)
}

// ShaderCompilationError carries the backend diagnostic for a shader module
// that failed to compile or link.
type ShaderCompilationError struct {
	Name       string
	Diagnostic string
}

func (e *ShaderCompilationError) Error() string {
	return fmt.Sprintf("shader %q failed to compile: %s", e.Name, e.Diagnostic)
}

// BufferAllocationError wraps a backend failure during buffer creation,
// e.g. device out-of-memory.
type BufferAllocationError struct {
	Label string
	Err   error
}

func (e *BufferAllocationError) Error() string {
	return fmt.Sprintf("buffer %q allocation failed: %v", e.Label, e.Err)
}

func (e *BufferAllocationError) Unwrap() error {
	return e.Err
}
