package glh

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Init binds the native GL entry points through the current context's
// function resolver. Call it once after making a context current and
// before any other function in this package.
func Init() error {
	return gl.Init()
}

// Clear fills the color buffer with the given color. Channel values are in
// [0,1].
func Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// EnableWireframe draws subsequent primitives as outlines instead of
// filled faces.
func EnableWireframe() {
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
}

// DisableWireframe restores filled primitive rendering.
func DisableWireframe() {
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}
