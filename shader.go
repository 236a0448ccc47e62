package glh

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ShaderType identifies the pipeline stage a shader compiles for.
type ShaderType uint32

const (
	VertexShader   ShaderType = gl.VERTEX_SHADER
	FragmentShader ShaderType = gl.FRAGMENT_SHADER
)

func (t ShaderType) String() string {
	switch t {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return fmt.Sprintf("unknown(0x%X)", uint32(t))
	}
}

// Shader is a compiled shader object. It may be deleted as soon as it has
// been linked into a program; the program keeps its own copy of the
// compiled code.
type Shader struct {
	id   uint32
	kind ShaderType
}

// CompileShader compiles src as a shader of the given type. On failure the
// returned error is a *CompileError carrying the compiler's info log.
func CompileShader(src string, kind ShaderType) (*Shader, error) {
	id := gl.CreateShader(uint32(kind))

	csrc, err := terminate(src)
	if err != nil {
		gl.DeleteShader(id)
		return nil, err
	}

	csources, free := gl.Strs(csrc)
	gl.ShaderSource(id, 1, csources, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := shaderInfoLog(id, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(id)
		return nil, &CompileError{Type: kind, Log: log}
	}

	slog.Debug("compiled shader", "id", id, "type", kind)

	return &Shader{id: id, kind: kind}, nil
}

// LoadShader reads a shader source file and compiles it. File contents are
// treated as UTF-8 text.
func LoadShader(path string, kind ShaderType) (*Shader, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}
	return CompileShader(string(src), kind)
}

// ID returns the native shader object name.
func (s *Shader) ID() uint32 {
	return s.id
}

// Type returns the shader's pipeline stage.
func (s *Shader) Type() ShaderType {
	return s.kind
}

// Delete releases the native shader object. Safe to call more than once;
// only the first call issues the native delete.
func (s *Shader) Delete() {
	if s.id == 0 {
		return
	}
	slog.Debug("deleting shader", "id", s.id, "type", s.kind)
	gl.DeleteShader(s.id)
	s.id = 0
}

// ShaderProgram is a linked shader program.
type ShaderProgram struct {
	id uint32
}

// LinkProgram attaches a vertex and fragment shader and links them into a
// program. On failure the returned error is a *LinkError carrying the
// linker's info log. The shaders may be deleted once linking succeeds.
func LinkProgram(vert, frag *Shader) (*ShaderProgram, error) {
	id := gl.CreateProgram()

	gl.AttachShader(id, vert.id)
	gl.AttachShader(id, frag.id)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := shaderInfoLog(id, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(id)
		return nil, &LinkError{Log: log}
	}

	slog.Debug("linked shader program", "id", id, "vertex", vert.id, "fragment", frag.id)

	return &ShaderProgram{id: id}, nil
}

// ID returns the native program name.
func (p *ShaderProgram) ID() uint32 {
	return p.id
}

// Use makes the program current for subsequent draw calls.
func (p *ShaderProgram) Use() {
	gl.UseProgram(p.id)
}

// SetUniform resolves name to a uniform location and pushes value to it.
// The program is made current as a side effect. Returns *UniformError if
// the name does not resolve.
func (p *ShaderProgram) SetUniform(name string, value UniformValue) error {
	p.Use()

	cname, err := terminate(name)
	if err != nil {
		return err
	}

	location := gl.GetUniformLocation(p.id, gl.Str(cname))
	if location == -1 {
		return &UniformError{Name: name}
	}

	slog.Debug("setting uniform", "name", name, "location", location,
		"program", p.id, "type", value.uniformType())

	value.apply(location)

	return nil
}

// Delete releases the native program object. Safe to call more than once.
func (p *ShaderProgram) Delete() {
	if p.id == 0 {
		return
	}
	slog.Debug("deleting shader program", "id", p.id)
	gl.DeleteProgram(p.id)
	p.id = 0
}

// terminate null-terminates s for the native API, rejecting strings that
// already contain a null byte.
func terminate(s string) (string, error) {
	if strings.ContainsRune(s, 0) {
		return "", &StringError{Value: s}
	}
	return s + "\x00", nil
}

// shaderInfoLog extracts the info log for a shader or program object using
// the matching iv/log getter pair.
func shaderInfoLog(
	id uint32,
	getIV func(uint32, uint32, *int32),
	getLog func(uint32, int32, *int32, *uint8),
) string {
	var length int32
	getIV(id, gl.INFO_LOG_LENGTH, &length)
	if length <= 0 {
		return ""
	}

	buf := make([]byte, length+1)
	getLog(id, length, nil, &buf[0])

	return strings.TrimRight(string(buf), "\x00\n")
}
