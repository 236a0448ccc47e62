package glh

import (
	"encoding/binary"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageFromNRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	src.SetNRGBA(0, 0, color.NRGBA{10, 20, 30, 255})

	img := ImageFrom(src)
	assert.Equal(t, 4, img.Width())
	assert.Equal(t, 2, img.Height())
	assert.Equal(t, FormatRGBA, img.Format())
	assert.Equal(t, Pixel8, img.Type())

	// Tightly packed NRGBA is passed through without copying.
	ps := img.(*pixelSource)
	require.NotEmpty(t, ps.pix)
	src.Pix[0] = 99
	assert.Equal(t, uint8(99), ps.pix[0])
}

func TestImageFromNRGBA64(t *testing.T) {
	src := image.NewNRGBA64(image.Rect(0, 0, 1, 1))
	src.SetNRGBA64(0, 0, color.NRGBA64{R: 0x1234, G: 0x5678, B: 0x9ABC, A: 0xFFFF})

	img := ImageFrom(src)
	assert.Equal(t, Pixel16, img.Type())
	assert.Equal(t, FormatRGBA, img.Format())

	ps := img.(*pixelSource)
	require.Len(t, ps.pix, 8)
	assert.Equal(t, uint16(0x1234), binary.NativeEndian.Uint16(ps.pix[0:]))
	assert.Equal(t, uint16(0x5678), binary.NativeEndian.Uint16(ps.pix[2:]))
}

func TestImageFromConvertsOtherEncodings(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 3))
	src.SetGray(1, 1, color.Gray{Y: 128})

	img := ImageFrom(src)
	assert.Equal(t, FormatRGBA, img.Format())
	assert.Equal(t, Pixel8, img.Type())
	assert.Equal(t, 3, img.Width())

	ps := img.(*pixelSource)
	require.Len(t, ps.pix, 3*3*4)
	// Center pixel expanded to gray RGBA.
	i := (1*3 + 1) * 4
	assert.Equal(t, uint8(128), ps.pix[i])
	assert.Equal(t, uint8(255), ps.pix[i+3])
}

func TestImageFromOffsetBounds(t *testing.T) {
	// A subimage whose bounds do not start at the origin must still come
	// out as a tight width x height pixel block.
	base := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	base.SetNRGBA(5, 5, color.NRGBA{R: 200, A: 255})
	sub := base.SubImage(image.Rect(4, 4, 8, 8)).(*image.NRGBA)

	img := ImageFrom(sub)
	assert.Equal(t, 4, img.Width())
	assert.Equal(t, 4, img.Height())

	ps := img.(*pixelSource)
	require.Len(t, ps.pix, 4*4*4)
	i := (1*4 + 1) * 4 // (5,5) in the subimage
	assert.Equal(t, uint8(200), ps.pix[i])
}

func TestNewImageRaw(t *testing.T) {
	pix := []byte{1, 2, 3, 4, 5, 6}
	img := NewImage(2, 1, FormatRGB, Pixel8, pix)

	assert.Equal(t, 2, img.Width())
	assert.Equal(t, 1, img.Height())
	assert.Equal(t, FormatRGB, img.Format())
	assert.NotNil(t, img.Ptr())
}

func TestEmptyImagePtrIsNil(t *testing.T) {
	img := NewImage(0, 0, FormatRGBA, Pixel8, nil)
	assert.Nil(t, img.Ptr())
}

func TestNativeUint16(t *testing.T) {
	in := []byte{0x12, 0x34, 0xAB, 0xCD}
	out := nativeUint16(in)
	require.Len(t, out, 4)
	assert.Equal(t, uint16(0x1234), binary.NativeEndian.Uint16(out[0:]))
	assert.Equal(t, uint16(0xABCD), binary.NativeEndian.Uint16(out[2:]))
	// Input is left untouched.
	assert.Equal(t, []byte{0x12, 0x34, 0xAB, 0xCD}, in)
}
