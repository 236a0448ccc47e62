package glh

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// BufferType identifies the binding target of a buffer object.
type BufferType uint32

const (
	VertexBufferType  BufferType = gl.ARRAY_BUFFER
	ElementBufferType BufferType = gl.ELEMENT_ARRAY_BUFFER
)

func (t BufferType) String() string {
	switch t {
	case VertexBufferType:
		return "vertex"
	case ElementBufferType:
		return "element"
	default:
		return fmt.Sprintf("unknown(0x%X)", uint32(t))
	}
}

// BufferUsage hints the driver how often buffer contents will change.
type BufferUsage uint32

const (
	StaticDraw  BufferUsage = gl.STATIC_DRAW
	DynamicDraw BufferUsage = gl.DYNAMIC_DRAW
)

func (u BufferUsage) String() string {
	switch u {
	case StaticDraw:
		return "static"
	case DynamicDraw:
		return "dynamic"
	default:
		return fmt.Sprintf("unknown(0x%X)", uint32(u))
	}
}

// Bytes reinterprets a slice of fixed-size elements as its raw bytes, for
// upload into a buffer object. The returned slice aliases data.
func Bytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	size := len(data) * int(unsafe.Sizeof(data[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(data))), size)
}

// refCount tracks shared ownership of a native object. It is not
// synchronized; all access is serialized by the rendering-context thread.
type refCount struct {
	n int
}

func (r *refCount) retain() {
	r.n++
}

// release drops one reference and reports whether it was the last live one.
// Extra releases past zero report false, so the native delete runs once.
func (r *refCount) release() bool {
	if r.n <= 0 {
		return false
	}
	r.n--
	return r.n == 0
}

func (r *refCount) live() bool {
	return r.n > 0
}

// bufferState is the shared state behind every handle cloned from one
// buffer. allocatedSize changes only on allocation, never on update.
type bufferState struct {
	id            uint32
	target        BufferType
	usage         BufferUsage
	allocatedSize int
	refs          refCount
}

// buffer is the implementation shared by VertexBuffer and ElementBuffer.
type buffer struct {
	state *bufferState
}

func newBuffer(target BufferType, usage BufferUsage, data []byte) buffer {
	var id uint32
	gl.GenBuffers(1, &id)

	b := buffer{state: &bufferState{
		id:     id,
		target: target,
		usage:  usage,
	}}
	b.state.refs.retain()

	slog.Debug("created buffer object", "id", id, "target", target, "usage", usage)

	b.reallocate(data)

	return b
}

// ID returns the native buffer object name.
func (b buffer) ID() uint32 {
	return b.state.id
}

// AllocatedSize returns the byte size of the buffer's current allocation.
func (b buffer) AllocatedSize() int {
	return b.state.allocatedSize
}

func (b buffer) bind() {
	gl.BindBuffer(uint32(b.state.target), b.state.id)
}

// updateData writes data at the given byte offset without reallocating.
// Fails with *BoundsError when the write would land outside the allocated
// region.
func (b buffer) updateData(data []byte, offset int) error {
	if err := checkUpdateBounds(b.state.allocatedSize, offset, len(data)); err != nil {
		return err
	}

	b.bind()
	gl.BufferSubData(uint32(b.state.target), offset, len(data), dataPtr(data))

	slog.Debug("updated buffer data", "id", b.state.id, "offset", offset, "size", len(data))

	return nil
}

// reallocate replaces the buffer's entire data store and resets the
// allocated size.
func (b buffer) reallocate(data []byte) {
	b.bind()
	gl.BufferData(uint32(b.state.target), len(data), dataPtr(data), uint32(b.state.usage))
	b.state.allocatedSize = len(data)

	slog.Debug("allocated buffer data", "id", b.state.id, "size", len(data))
}

// retain adds a reference for a cloned handle.
func (b buffer) retain() {
	b.state.refs.retain()
}

// Release drops this handle's reference. The native buffer is deleted when
// the last handle referencing it is released. Extra calls are no-ops.
func (b buffer) Release() {
	if !b.state.refs.release() {
		return
	}
	slog.Debug("deleting buffer object", "id", b.state.id, "target", b.state.target)
	gl.DeleteBuffers(1, &b.state.id)
	b.state.id = 0
}

// checkUpdateBounds validates a partial write of size bytes at offset into
// an allocation of allocated bytes.
func checkUpdateBounds(allocated, offset, size int) error {
	if offset < 0 || offset+size > allocated {
		return &BoundsError{AllocatedSize: allocated, Offset: offset, Size: size}
	}
	return nil
}

// dataPtr returns an upload pointer for data, or nil for an empty slice so
// the driver allocates uninitialized storage.
func dataPtr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(data))
}

// VertexBuffer is a buffer object holding vertex attribute data. Handles
// are reference counted: Clone shares the underlying native buffer and the
// buffer lives until the last handle is released.
type VertexBuffer struct {
	buffer
}

// NewVertexBuffer creates a vertex buffer and uploads data as its initial
// contents.
func NewVertexBuffer(data []byte, usage BufferUsage) *VertexBuffer {
	return &VertexBuffer{newBuffer(VertexBufferType, usage, data)}
}

// Clone returns a new handle sharing the same native buffer.
func (b *VertexBuffer) Clone() *VertexBuffer {
	b.retain()
	return &VertexBuffer{b.buffer}
}

// UpdateData writes data at the given byte offset without reallocating.
// Fails with *BoundsError when the write would exceed the allocated size.
func (b *VertexBuffer) UpdateData(data []byte, offset int) error {
	return b.updateData(data, offset)
}

// Reallocate replaces the buffer's contents and updates its allocated size.
func (b *VertexBuffer) Reallocate(data []byte) {
	b.reallocate(data)
}

// ElementBuffer is a buffer object holding index data for indexed draws.
// Handles are reference counted the same way as VertexBuffer.
type ElementBuffer struct {
	buffer
}

// NewElementBuffer creates an element buffer and uploads data as its
// initial contents.
func NewElementBuffer(data []byte, usage BufferUsage) *ElementBuffer {
	return &ElementBuffer{newBuffer(ElementBufferType, usage, data)}
}

// Clone returns a new handle sharing the same native buffer.
func (b *ElementBuffer) Clone() *ElementBuffer {
	b.retain()
	return &ElementBuffer{b.buffer}
}

// UpdateData writes data at the given byte offset without reallocating.
// Fails with *BoundsError when the write would exceed the allocated size.
func (b *ElementBuffer) UpdateData(data []byte, offset int) error {
	return b.updateData(data, offset)
}

// Reallocate replaces the buffer's contents and updates its allocated size.
func (b *ElementBuffer) Reallocate(data []byte) {
	b.reallocate(data)
}
