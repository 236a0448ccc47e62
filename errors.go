package glh

import "fmt"

// CompileError is returned when the native shader compiler rejects a
// shader source. Log carries the compiler's info log verbatim.
type CompileError struct {
	Type ShaderType
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Type, e.Log)
}

// LinkError is returned when linking a vertex and fragment shader into a
// program fails. Log carries the linker's info log verbatim.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link shader program: %s", e.Log)
}

// UniformError is returned when a uniform name cannot be resolved to a
// location in a linked program.
type UniformError struct {
	Name string
}

func (e *UniformError) Error() string {
	return fmt.Sprintf("could not find uniform with name %q", e.Name)
}

// BoundsError is returned when a partial buffer update would write outside
// the buffer's allocated region.
type BoundsError struct {
	AllocatedSize int
	Offset        int
	Size          int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("buffer update of %d bytes at offset %d exceeds allocated size %d",
		e.Size, e.Offset, e.AllocatedSize)
}

// StringError is returned when a string cannot cross the native-string
// boundary, e.g. a uniform name containing an embedded null byte.
type StringError struct {
	Value string
}

func (e *StringError) Error() string {
	return fmt.Sprintf("cannot convert %q to a native string: embedded null byte", e.Value)
}
