package glh

import (
	"encoding/binary"
	"image"
	"unsafe"

	"golang.org/x/image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// PixelFormat identifies the channel layout of an image's pixel data.
type PixelFormat uint32

const (
	FormatRGB  PixelFormat = gl.RGB
	FormatRGBA PixelFormat = gl.RGBA
)

// PixelType identifies the channel depth of an image's pixel data.
type PixelType uint32

const (
	Pixel8  PixelType = gl.UNSIGNED_BYTE
	Pixel16 PixelType = gl.UNSIGNED_SHORT
)

// Image is a decoded pixel source consumed by the texture builder. The
// pixel data must stay alive and unchanged until Build has uploaded it.
type Image interface {
	Width() int
	Height() int
	Format() PixelFormat
	Type() PixelType
	Ptr() unsafe.Pointer
}

// pixelSource is the Image implementation behind NewImage and ImageFrom.
type pixelSource struct {
	width, height int
	format        PixelFormat
	typ           PixelType
	pix           []byte
}

func (p *pixelSource) Width() int          { return p.width }
func (p *pixelSource) Height() int         { return p.height }
func (p *pixelSource) Format() PixelFormat { return p.format }
func (p *pixelSource) Type() PixelType     { return p.typ }

func (p *pixelSource) Ptr() unsafe.Pointer {
	if len(p.pix) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(p.pix))
}

// NewImage wraps raw pixel data already laid out for upload: tightly
// packed rows, bottom row first or as the host application prefers,
// channel values in host byte order.
func NewImage(width, height int, format PixelFormat, typ PixelType, pix []byte) Image {
	return &pixelSource{width: width, height: height, format: format, typ: typ, pix: pix}
}

// ImageFrom adapts a decoded image.Image for upload. Tightly packed
// 16-bit sources keep their channel depth; everything else is converted
// to 8-bit RGBA. The
// conversion copies the pixels, so the source may be discarded afterwards.
func ImageFrom(img image.Image) Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.NRGBA:
		if src.Stride == 4*w {
			return &pixelSource{width: w, height: h, format: FormatRGBA, typ: Pixel8, pix: src.Pix}
		}
	case *image.NRGBA64:
		if src.Stride == 8*w {
			return &pixelSource{width: w, height: h, format: FormatRGBA, typ: Pixel16,
				pix: nativeUint16(src.Pix)}
		}
	case *image.RGBA64:
		if src.Stride == 8*w {
			return &pixelSource{width: w, height: h, format: FormatRGBA, typ: Pixel16,
				pix: nativeUint16(src.Pix)}
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Copy(dst, image.Point{}, img, bounds, draw.Src, nil)

	return &pixelSource{width: w, height: h, format: FormatRGBA, typ: Pixel8, pix: dst.Pix}
}

// nativeUint16 converts big-endian 16-bit channel bytes, as stored by the
// stdlib image package, into host byte order for the driver.
func nativeUint16(pix []byte) []byte {
	out := make([]byte, len(pix))
	for i := 0; i+1 < len(pix); i += 2 {
		v := binary.BigEndian.Uint16(pix[i:])
		binary.NativeEndian.PutUint16(out[i:], v)
	}
	return out
}
