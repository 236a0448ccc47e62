package glh

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// DrawMode selects the primitive type a draw call assembles.
type DrawMode uint32

const (
	Points    DrawMode = gl.POINTS
	Lines     DrawMode = gl.LINES
	Triangles DrawMode = gl.TRIANGLES
)

func (m DrawMode) String() string {
	switch m {
	case Points:
		return "points"
	case Lines:
		return "lines"
	case Triangles:
		return "triangles"
	default:
		return fmt.Sprintf("unknown(0x%X)", uint32(m))
	}
}

// IndexType identifies the element type of indices in an element buffer.
type IndexType uint32

const (
	IndexUnsignedByte  IndexType = gl.UNSIGNED_BYTE
	IndexUnsignedShort IndexType = gl.UNSIGNED_SHORT
	IndexUnsignedInt   IndexType = gl.UNSIGNED_INT
)

// DrawArrays draws count vertices starting at first from vao using prog.
// The program is made current and the vertex array bound inside the call;
// no prior binding is required.
func DrawArrays(prog *ShaderProgram, vao *VertexArrayObject, mode DrawMode, first, count int32) {
	prog.Use()
	vao.Bind()

	slog.Debug("draw arrays", "program", prog.ID(), "vao", vao.ID(),
		"mode", mode, "first", first, "count", count)

	gl.DrawArrays(uint32(mode), first, count)
}

// DrawArraysWithTextures is DrawArrays with each texture in textures
// activated first, at the unit matching its position in the list.
func DrawArraysWithTextures(prog *ShaderProgram, vao *VertexArrayObject, mode DrawMode,
	first, count int32, textures []*Texture) {
	activateTextures(textures)
	DrawArrays(prog, vao, mode, first, count)
}

// DrawElements draws count indices from vao's element buffer using prog.
// indexType must match the element type the buffer was filled with. The
// program is made current and the vertex array bound inside the call.
func DrawElements(prog *ShaderProgram, vao *VertexArrayObject, indexType IndexType,
	mode DrawMode, count int32) {
	prog.Use()
	vao.Bind()

	slog.Debug("draw elements", "program", prog.ID(), "vao", vao.ID(),
		"mode", mode, "count", count)

	gl.DrawElementsWithOffset(uint32(mode), count, uint32(indexType), 0)
}

// DrawElementsWithTextures is DrawElements with each texture in textures
// activated first, at the unit matching its position in the list.
func DrawElementsWithTextures(prog *ShaderProgram, vao *VertexArrayObject, indexType IndexType,
	mode DrawMode, count int32, textures []*Texture) {
	activateTextures(textures)
	DrawElements(prog, vao, indexType, mode, count)
}

func activateTextures(textures []*Texture) {
	for i, t := range textures {
		t.Activate(uint32(i))
	}
}
