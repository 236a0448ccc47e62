// Example renders a textured quad through the glh typed-handle layer.
//
// Prerequisites:
//
//	A platform with OpenGL 4.1 and the usual GLFW build dependencies
//	(X11 headers on Linux).
//	go run ./example/
//
// The example creates a GLFW window, builds a shader program, uploads a
// quad into shared buffer objects, wraps a generated checkerboard image in
// a texture, and draws with an indexed draw call every frame.
package main

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-glh/glh"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "glh example"
)

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 TexCoord;

uniform mat4 transform;

void main() {
    gl_Position = transform * vec4(aPos, 1.0);
    TexCoord = aTexCoord;
}
`

const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;

out vec4 FragColor;

uniform sampler2D tex;
uniform float fade;

void main() {
    FragColor = texture(tex, TexCoord) * vec4(1.0, 1.0, 1.0, fade);
}
`

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Bind the GL entry points through the current context.
	if err := glh.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	glh.SetErrorCallback(func(msg string) {
		fmt.Fprintln(os.Stderr, "OpenGL error:", msg)
	})

	// Shader program.
	vert, err := glh.CompileShader(vertexShaderSource, glh.VertexShader)
	if err != nil {
		return err
	}
	frag, err := glh.CompileShader(fragmentShaderSource, glh.FragmentShader)
	if err != nil {
		return err
	}
	prog, err := glh.LinkProgram(vert, frag)
	if err != nil {
		return err
	}
	vert.Delete() // the program keeps its own compiled copy
	frag.Delete()
	defer prog.Delete()

	// One quad: position (3 floats) + texcoord (2 floats) per vertex.
	verts := []float32{
		-0.5, -0.5, 0, 0, 0,
		0.5, -0.5, 0, 1, 0,
		0.5, 0.5, 0, 1, 1,
		-0.5, 0.5, 0, 0, 1,
	}
	indices := []uint16{0, 1, 2, 2, 3, 0}

	vbo := glh.NewVertexBuffer(glh.Bytes(verts), glh.StaticDraw)
	ebo := glh.NewElementBuffer(glh.Bytes(indices), glh.StaticDraw)

	vao, err := glh.NewVertexArray().
		Attrib(vbo, glh.VertexAttrib{Index: 0, Size: 3, Type: glh.AttribFloat, Stride: 20}).
		Attrib(vbo, glh.VertexAttrib{Index: 1, Size: 2, Type: glh.AttribFloat, Stride: 20, Offset: 12}).
		ElementBuffer(ebo).
		Build()
	if err != nil {
		return err
	}
	defer vao.Delete()

	// The vertex array holds its own buffer references now.
	vbo.Release()
	ebo.Release()

	tex := glh.NewTexture(glh.ImageFrom(checkerboard(128, 16)), glh.Texture2D).
		Wrap(glh.CoordS, glh.WrapRepeat).
		Wrap(glh.CoordT, glh.WrapRepeat).
		MinFilter(glh.FilterLinear).
		MagFilter(glh.FilterNearest).
		GenerateMipmap(true).
		Build()
	defer tex.Delete()

	if err := prog.SetUniform("tex", glh.Int(0)); err != nil {
		return err
	}

	for !window.ShouldClose() {
		glfw.PollEvents()

		glh.Clear(0.12, 0.12, 0.14, 1.0)

		t := glfw.GetTime()
		rot := mgl32.HomogRotate3DZ(float32(t * 0.5))
		if err := prog.SetUniform("transform", glh.Mat4(rot)); err != nil {
			return err
		}
		fade := float32(0.75 + 0.25*math.Sin(t*2))
		if err := prog.SetUniform("fade", glh.Float(fade)); err != nil {
			return err
		}

		glh.DrawElementsWithTextures(prog, vao, glh.IndexUnsignedShort, glh.Triangles,
			int32(len(indices)), []*glh.Texture{tex})

		window.SwapBuffers()
	}

	return nil
}

// checkerboard generates a size x size test image with cells of the given
// cell size.
func checkerboard(size, cell int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.NRGBA{230, 230, 230, 255}
			if (x/cell+y/cell)%2 == 0 {
				c = color.NRGBA{40, 40, 200, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
