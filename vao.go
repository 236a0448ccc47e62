package glh

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// AttribType identifies the component element type of a vertex attribute.
type AttribType uint32

const (
	AttribByte          AttribType = gl.BYTE
	AttribUnsignedByte  AttribType = gl.UNSIGNED_BYTE
	AttribShort         AttribType = gl.SHORT
	AttribUnsignedShort AttribType = gl.UNSIGNED_SHORT
	AttribInt           AttribType = gl.INT
	AttribUnsignedInt   AttribType = gl.UNSIGNED_INT
	AttribHalfFloat     AttribType = gl.HALF_FLOAT
	AttribFloat         AttribType = gl.FLOAT
	AttribDouble        AttribType = gl.DOUBLE
)

// VertexAttrib describes how a slice of a vertex buffer's bytes maps onto
// one vertex shader input.
type VertexAttrib struct {
	// Index is the layout location of the attribute in the vertex shader.
	// It must be unique within a vertex array.
	Index uint32
	// Size is the number of components per vertex, 1 through 4.
	Size int32
	// Type is the component element type.
	Type AttribType
	// Normalize maps integer components onto [0,1] or [-1,1] when read as
	// floats.
	Normalize bool
	// Stride is the byte distance between consecutive vertex records.
	Stride int32
	// Offset is the byte offset of this attribute within a vertex record.
	Offset int
}

// VertexArrayObject is an immutable vertex array configuration built by
// VertexArrayBuilder. It shares ownership of the buffers recorded against
// it; buffer contents may still change through other handles.
type VertexArrayObject struct {
	id      uint32
	buffers []*VertexBuffer
	element *ElementBuffer
}

// ID returns the native vertex array object name.
func (v *VertexArrayObject) ID() uint32 {
	return v.id
}

// Bind makes the vertex array current. Rendering entry points call this
// themselves; callers only need it for raw gl access.
func (v *VertexArrayObject) Bind() {
	gl.BindVertexArray(v.id)
}

// Delete releases the native vertex array and drops its references to the
// buffers it was built from. Safe to call more than once.
func (v *VertexArrayObject) Delete() {
	if v.id == 0 {
		return
	}
	slog.Debug("deleting vertex array object", "id", v.id)
	gl.DeleteVertexArrays(1, &v.id)
	v.id = 0

	for _, b := range v.buffers {
		b.Release()
	}
	v.buffers = nil
	if v.element != nil {
		v.element.Release()
		v.element = nil
	}
}

// bufferAttribs keeps every attribute recorded against one buffer so they
// can all be configured while that buffer is bound.
type bufferAttribs struct {
	buffer  *VertexBuffer
	attribs []VertexAttrib
}

// VertexArrayBuilder accumulates attribute and element buffer associations
// and materializes them into a VertexArrayObject in one step. A builder is
// single use; Build consumes it.
type VertexArrayBuilder struct {
	groups  []bufferAttribs
	element *ElementBuffer
	built   bool
}

// NewVertexArray returns an empty builder.
func NewVertexArray() *VertexArrayBuilder {
	return &VertexArrayBuilder{}
}

// Attrib records attrib against buf. Multiple attributes may reference the
// same buffer; they are grouped by buffer identity. The builder keeps a
// reference to buf until Build hands it to the vertex array.
func (b *VertexArrayBuilder) Attrib(buf *VertexBuffer, attrib VertexAttrib) *VertexArrayBuilder {
	for i := range b.groups {
		if b.groups[i].buffer.ID() == buf.ID() {
			b.groups[i].attribs = append(b.groups[i].attribs, attrib)
			return b
		}
	}
	b.groups = append(b.groups, bufferAttribs{
		buffer:  buf.Clone(),
		attribs: []VertexAttrib{attrib},
	})
	return b
}

// ElementBuffer records ebo as the vertex array's element buffer. At most
// one may be set; the last call wins.
func (b *VertexArrayBuilder) ElementBuffer(ebo *ElementBuffer) *VertexArrayBuilder {
	if b.element != nil {
		b.element.Release()
	}
	b.element = ebo.Clone()
	return b
}

// Build creates the native vertex array, configures and enables every
// recorded attribute with its buffer bound, and attaches the element
// buffer if one was set. Duplicate layout indices are rejected. The
// builder must not be used again after Build.
func (b *VertexArrayBuilder) Build() (*VertexArrayObject, error) {
	if b.built {
		panic("glh: VertexArrayBuilder.Build called twice")
	}
	b.built = true

	if index, ok := duplicateAttribIndex(b.groups); ok {
		b.release()
		return nil, fmt.Errorf("duplicate vertex attribute layout index %d", index)
	}

	var id uint32
	gl.GenVertexArrays(1, &id)

	vao := &VertexArrayObject{id: id}
	vao.Bind()

	for _, g := range b.groups {
		g.buffer.bind()
		for _, a := range g.attribs {
			gl.VertexAttribPointerWithOffset(a.Index, a.Size, uint32(a.Type),
				a.Normalize, a.Stride, uintptr(a.Offset))
			gl.EnableVertexAttribArray(a.Index)

			slog.Debug("enabled vertex attribute", "vao", id, "index", a.Index,
				"buffer", g.buffer.ID())
		}
		vao.buffers = append(vao.buffers, g.buffer)
	}

	if b.element != nil {
		b.element.bind()
		vao.element = b.element
	}

	gl.BindVertexArray(0)

	slog.Debug("created vertex array object", "id", id, "buffers", len(vao.buffers))

	return vao, nil
}

// release drops every reference the builder holds, for the error path
// where no vertex array takes them over.
func (b *VertexArrayBuilder) release() {
	for _, g := range b.groups {
		g.buffer.Release()
	}
	b.groups = nil
	if b.element != nil {
		b.element.Release()
		b.element = nil
	}
}

// duplicateAttribIndex reports the first layout index recorded more than
// once across all buffer groups.
func duplicateAttribIndex(groups []bufferAttribs) (uint32, bool) {
	seen := make(map[uint32]bool)
	for _, g := range groups {
		for _, a := range g.attribs {
			if seen[a.Index] {
				return a.Index, true
			}
			seen[a.Index] = true
		}
	}
	return 0, false
}
