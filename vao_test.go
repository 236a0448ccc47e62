package glh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVertexBuffer fabricates a handle without a native buffer behind it,
// for exercising builder bookkeeping.
func fakeVertexBuffer(id uint32) *VertexBuffer {
	b := &VertexBuffer{buffer{state: &bufferState{
		id:     id,
		target: VertexBufferType,
		usage:  StaticDraw,
	}}}
	b.state.refs.retain()
	return b
}

func fakeElementBuffer(id uint32) *ElementBuffer {
	b := &ElementBuffer{buffer{state: &bufferState{
		id:     id,
		target: ElementBufferType,
		usage:  StaticDraw,
	}}}
	b.state.refs.retain()
	return b
}

func TestBuilderGroupsAttribsByBufferIdentity(t *testing.T) {
	a := fakeVertexBuffer(1)
	b := fakeVertexBuffer(2)
	aClone := a.Clone()

	builder := NewVertexArray().
		Attrib(a, VertexAttrib{Index: 0, Size: 3, Type: AttribFloat, Stride: 20}).
		Attrib(b, VertexAttrib{Index: 1, Size: 2, Type: AttribFloat, Stride: 8}).
		Attrib(aClone, VertexAttrib{Index: 2, Size: 2, Type: AttribFloat, Stride: 20, Offset: 12})

	require.Len(t, builder.groups, 2, "clone of the same buffer must not open a new group")
	assert.Equal(t, uint32(1), builder.groups[0].buffer.ID())
	assert.Len(t, builder.groups[0].attribs, 2)
	assert.Equal(t, uint32(2), builder.groups[1].buffer.ID())
	assert.Len(t, builder.groups[1].attribs, 1)
}

func TestBuilderRetainsBuffers(t *testing.T) {
	vbo := fakeVertexBuffer(3)
	ebo := fakeElementBuffer(4)

	builder := NewVertexArray().
		Attrib(vbo, VertexAttrib{Index: 0, Size: 3, Type: AttribFloat}).
		ElementBuffer(ebo)

	assert.Equal(t, 2, vbo.state.refs.n)
	assert.Equal(t, 2, ebo.state.refs.n)

	// The error path gives the builder's references back. The caller's
	// own handles stay live, so no native delete happens here.
	builder.release()
	assert.Equal(t, 1, vbo.state.refs.n)
	assert.Equal(t, 1, ebo.state.refs.n)
	assert.True(t, vbo.state.refs.live())
	assert.True(t, ebo.state.refs.live())
}

func TestBuilderElementBufferLastWins(t *testing.T) {
	first := fakeElementBuffer(5)
	second := fakeElementBuffer(6)

	builder := NewVertexArray().
		ElementBuffer(first).
		ElementBuffer(second)

	assert.Equal(t, uint32(6), builder.element.ID())
	assert.Equal(t, 1, first.state.refs.n, "replaced element buffer must be released")
	assert.Equal(t, 2, second.state.refs.n)
}

func TestBuildRejectsDuplicateLayoutIndex(t *testing.T) {
	a := fakeVertexBuffer(7)
	b := fakeVertexBuffer(8)

	// Same layout index recorded against two different buffers.
	builder := NewVertexArray().
		Attrib(a, VertexAttrib{Index: 0, Size: 3, Type: AttribFloat}).
		Attrib(b, VertexAttrib{Index: 0, Size: 2, Type: AttribFloat})

	vao, err := builder.Build()
	require.Error(t, err)
	assert.Nil(t, vao)
	assert.Contains(t, err.Error(), "layout index 0")

	// The failed build must release the builder's references.
	assert.Equal(t, 1, a.state.refs.n)
	assert.Equal(t, 1, b.state.refs.n)
}

func TestBuildIsSingleUse(t *testing.T) {
	a := fakeVertexBuffer(9)
	builder := NewVertexArray().
		Attrib(a, VertexAttrib{Index: 0, Size: 3, Type: AttribFloat}).
		Attrib(a, VertexAttrib{Index: 0, Size: 3, Type: AttribFloat})

	_, err := builder.Build() // fails on the duplicate, still consumes the builder
	require.Error(t, err)

	assert.Panics(t, func() { _, _ = builder.Build() })
}

func TestDuplicateAttribIndex(t *testing.T) {
	groups := []bufferAttribs{
		{attribs: []VertexAttrib{{Index: 0}, {Index: 1}}},
		{attribs: []VertexAttrib{{Index: 2}}},
	}
	_, dup := duplicateAttribIndex(groups)
	assert.False(t, dup)

	groups[1].attribs = append(groups[1].attribs, VertexAttrib{Index: 1})
	index, dup := duplicateAttribIndex(groups)
	assert.True(t, dup)
	assert.Equal(t, uint32(1), index)
}
