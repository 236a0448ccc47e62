package glh

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// TextureType identifies the binding target of a texture.
type TextureType uint32

const (
	Texture2D TextureType = gl.TEXTURE_2D
	Texture3D TextureType = gl.TEXTURE_3D
)

func (t TextureType) String() string {
	switch t {
	case Texture2D:
		return "2D"
	case Texture3D:
		return "3D"
	default:
		return fmt.Sprintf("unknown(0x%X)", uint32(t))
	}
}

// TextureCoord identifies a texture coordinate axis for wrap modes.
type TextureCoord int

const (
	CoordS TextureCoord = iota
	CoordT
	CoordR
)

// TextureWrap selects how coordinates outside [0,1] sample the texture.
type TextureWrap uint32

const (
	WrapRepeat         TextureWrap = gl.REPEAT
	WrapMirroredRepeat TextureWrap = gl.MIRRORED_REPEAT
	WrapClampToEdge    TextureWrap = gl.CLAMP_TO_EDGE
	WrapClampToBorder  TextureWrap = gl.CLAMP_TO_BORDER
)

// TextureFilter selects the sampling filter for minification or
// magnification.
type TextureFilter uint32

const (
	FilterNearest TextureFilter = gl.NEAREST
	FilterLinear  TextureFilter = gl.LINEAR
)

// Texture is a native texture object with its image data uploaded.
type Texture struct {
	id   uint32
	kind TextureType
}

// ID returns the native texture object name.
func (t *Texture) ID() uint32 {
	return t.id
}

// Type returns the texture's binding target.
func (t *Texture) Type() TextureType {
	return t.kind
}

// Activate selects texture unit `unit` and binds the texture to it. Units
// are numbered from zero. Panics if unit is at or past the context's
// combined texture unit limit; that is a programming error, not a runtime
// condition.
func (t *Texture) Activate(unit uint32) {
	checkTextureUnit(unit, maxTextureUnits())
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	t.bind()
}

func (t *Texture) bind() {
	gl.BindTexture(uint32(t.kind), t.id)
}

// Delete releases the native texture object. Safe to call more than once.
func (t *Texture) Delete() {
	if t.id == 0 {
		return
	}
	slog.Debug("deleting texture", "id", t.id, "type", t.kind)
	gl.DeleteTextures(1, &t.id)
	t.id = 0
}

func checkTextureUnit(unit uint32, max int32) {
	if int64(unit) >= int64(max) {
		panic(fmt.Sprintf("glh: texture unit %d exceeds the %d unit limit", unit, max))
	}
}

var (
	maxUnitsOnce sync.Once
	maxUnits     int32
)

// maxTextureUnits queries GL_MAX_COMBINED_TEXTURE_IMAGE_UNITS once per
// process; the limit is a property of the context and does not change.
func maxTextureUnits() int32 {
	maxUnitsOnce.Do(func() {
		gl.GetIntegerv(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS, &maxUnits)
	})
	return maxUnits
}

// texParam is one recorded sampling parameter, either an enum/int value or
// a float vector (border color).
type texParam struct {
	iv     int32
	fv     []float32
	floats bool
}

// TextureBuilder accumulates sampling parameters for a texture and
// materializes them in Build. Parameter setters are fluent and last write
// per parameter wins.
type TextureBuilder struct {
	img    Image
	kind   TextureType
	params map[uint32]texParam
	order  []uint32
	mipmap bool
}

// NewTexture returns a builder capturing img as the texture's pixel
// source.
func NewTexture(img Image, kind TextureType) *TextureBuilder {
	return &TextureBuilder{
		img:    img,
		kind:   kind,
		params: make(map[uint32]texParam),
	}
}

// Wrap sets the wrap mode for one coordinate axis.
func (b *TextureBuilder) Wrap(coord TextureCoord, wrap TextureWrap) *TextureBuilder {
	var pname uint32
	switch coord {
	case CoordS:
		pname = gl.TEXTURE_WRAP_S
	case CoordT:
		pname = gl.TEXTURE_WRAP_T
	case CoordR:
		pname = gl.TEXTURE_WRAP_R
	default:
		panic(fmt.Sprintf("glh: unknown texture coordinate %d", coord))
	}
	return b.parameter(pname, texParam{iv: int32(wrap)})
}

// BorderColor sets the color sampled outside the texture under
// WrapClampToBorder.
func (b *TextureBuilder) BorderColor(r, g, bl, a float32) *TextureBuilder {
	return b.parameter(gl.TEXTURE_BORDER_COLOR, texParam{fv: []float32{r, g, bl, a}, floats: true})
}

// MinFilter sets the minification filter.
func (b *TextureBuilder) MinFilter(f TextureFilter) *TextureBuilder {
	return b.parameter(gl.TEXTURE_MIN_FILTER, texParam{iv: int32(f)})
}

// MagFilter sets the magnification filter.
func (b *TextureBuilder) MagFilter(f TextureFilter) *TextureBuilder {
	return b.parameter(gl.TEXTURE_MAG_FILTER, texParam{iv: int32(f)})
}

// GenerateMipmap requests mipmap generation after the image upload.
func (b *TextureBuilder) GenerateMipmap(gen bool) *TextureBuilder {
	b.mipmap = gen
	return b
}

func (b *TextureBuilder) parameter(pname uint32, p texParam) *TextureBuilder {
	if _, ok := b.params[pname]; !ok {
		b.order = append(b.order, pname)
	}
	b.params[pname] = p
	return b
}

// Build allocates the native texture, applies every recorded parameter,
// uploads the image data, and generates mipmaps if requested. 3D texture
// upload is not implemented and panics.
func (b *TextureBuilder) Build() *Texture {
	var id uint32
	gl.GenTextures(1, &id)

	tex := &Texture{id: id, kind: b.kind}
	tex.bind()

	target := uint32(b.kind)
	for _, pname := range b.order {
		p := b.params[pname]
		if p.floats {
			gl.TexParameterfv(target, pname, &p.fv[0])
		} else {
			gl.TexParameteri(target, pname, p.iv)
		}
	}

	switch b.kind {
	case Texture2D:
		gl.TexImage2D(target, 0, internalFormat(b.img.Format()),
			int32(b.img.Width()), int32(b.img.Height()), 0,
			uint32(b.img.Format()), uint32(b.img.Type()), b.img.Ptr())
	default:
		panic(fmt.Sprintf("glh: %s texture upload not implemented", b.kind))
	}

	if b.mipmap {
		gl.GenerateMipmap(target)
	}

	slog.Debug("created texture", "id", id, "type", b.kind,
		"width", b.img.Width(), "height", b.img.Height())

	return tex
}

// internalFormat picks the texture's internal storage format matching the
// source channel layout.
func internalFormat(f PixelFormat) int32 {
	if f == FormatRGBA {
		return gl.RGBA
	}
	return gl.RGB
}
