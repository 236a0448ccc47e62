/*
Package glh is a thin safety and ergonomics layer over OpenGL 4.1 core,
providing typed handles for shaders, programs, buffers, vertex arrays, and
textures, with deterministic resource release and bounds-checked buffer
updates.

# Overview

The package wraps the raw bindings from github.com/go-gl/gl. Every native
object is created eagerly by a constructor and released exactly once by an
explicit Delete or Release call. Buffer objects are reference counted so
several vertex array configurations can share one buffer; the native buffer
lives until the last handle is released. All calls must run on the thread
that owns the current rendering context, which is also what makes the
unsynchronized reference counts safe.

# Quick Start

	// After making a GL context current:
	if err := glh.Init(); err != nil { ... }

	vert, err := glh.LoadShader("example.vert", glh.VertexShader)
	frag, err := glh.LoadShader("example.frag", glh.FragmentShader)
	prog, err := glh.LinkProgram(vert, frag)
	vert.Delete() // the program keeps its own compiled copy
	frag.Delete()

	verts := []float32{-0.5, -0.5, 0, 0.5, -0.5, 0, 0, 0.5, 0}
	vbo := glh.NewVertexBuffer(glh.Bytes(verts), glh.StaticDraw)

	vao, err := glh.NewVertexArray().
		Attrib(vbo, glh.VertexAttrib{Index: 0, Size: 3, Type: glh.AttribFloat, Stride: 12}).
		Build()
	vbo.Release() // vao holds its own reference now

	for !window.ShouldClose() { // render loop
		glh.Clear(0.1, 0.1, 0.1, 1)
		glh.DrawArrays(prog, vao, glh.Triangles, 0, 3)
		window.SwapBuffers()
	}

Rendering entry points bind everything they need themselves; callers never
pre-bind programs, vertex arrays, or textures.

# Errors

Fallible operations return typed errors: *CompileError and *LinkError carry
the native info log verbatim, *UniformError names the unresolved uniform,
and *BoundsError reports the allocation, offset, and size of a rejected
buffer update. Conditions that indicate a programming error rather than a
recoverable runtime state, such as activating a texture unit past the
context limit, panic instead.
*/
package glh
