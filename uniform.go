package glh

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// UniformValue is a value that can be pushed to a uniform location. It is a
// closed set: scalars, 2-4 component vectors of float/int/uint, and square
// float matrices. Construct values with the exported types below and pass
// them to ShaderProgram.SetUniform.
type UniformValue interface {
	apply(location int32)
	uniformType() string
}

// Float is a scalar float32 uniform.
type Float float32

func (v Float) apply(location int32) { gl.Uniform1f(location, float32(v)) }
func (v Float) uniformType() string  { return "float" }

// Int is a scalar int32 uniform. Also used for sampler unit indices.
type Int int32

func (v Int) apply(location int32) { gl.Uniform1i(location, int32(v)) }
func (v Int) uniformType() string  { return "int" }

// Uint is a scalar uint32 uniform.
type Uint uint32

func (v Uint) apply(location int32) { gl.Uniform1ui(location, uint32(v)) }
func (v Uint) uniformType() string  { return "uint" }

// Bool is a scalar bool uniform, pushed as 0 or 1.
type Bool bool

func (v Bool) apply(location int32) {
	var i int32
	if v {
		i = 1
	}
	gl.Uniform1i(location, i)
}
func (v Bool) uniformType() string { return "bool" }

// Vec2 is a 2-component float vector uniform.
type Vec2 mgl32.Vec2

func (v Vec2) apply(location int32) { gl.Uniform2fv(location, 1, &v[0]) }
func (v Vec2) uniformType() string  { return "vec2" }

// Vec3 is a 3-component float vector uniform.
type Vec3 mgl32.Vec3

func (v Vec3) apply(location int32) { gl.Uniform3fv(location, 1, &v[0]) }
func (v Vec3) uniformType() string  { return "vec3" }

// Vec4 is a 4-component float vector uniform.
type Vec4 mgl32.Vec4

func (v Vec4) apply(location int32) { gl.Uniform4fv(location, 1, &v[0]) }
func (v Vec4) uniformType() string  { return "vec4" }

// IVec2 is a 2-component int vector uniform.
type IVec2 [2]int32

func (v IVec2) apply(location int32) { gl.Uniform2iv(location, 1, &v[0]) }
func (v IVec2) uniformType() string  { return "ivec2" }

// IVec3 is a 3-component int vector uniform.
type IVec3 [3]int32

func (v IVec3) apply(location int32) { gl.Uniform3iv(location, 1, &v[0]) }
func (v IVec3) uniformType() string  { return "ivec3" }

// IVec4 is a 4-component int vector uniform.
type IVec4 [4]int32

func (v IVec4) apply(location int32) { gl.Uniform4iv(location, 1, &v[0]) }
func (v IVec4) uniformType() string  { return "ivec4" }

// UVec2 is a 2-component uint vector uniform.
type UVec2 [2]uint32

func (v UVec2) apply(location int32) { gl.Uniform2uiv(location, 1, &v[0]) }
func (v UVec2) uniformType() string  { return "uvec2" }

// UVec3 is a 3-component uint vector uniform.
type UVec3 [3]uint32

func (v UVec3) apply(location int32) { gl.Uniform3uiv(location, 1, &v[0]) }
func (v UVec3) uniformType() string  { return "uvec3" }

// UVec4 is a 4-component uint vector uniform.
type UVec4 [4]uint32

func (v UVec4) apply(location int32) { gl.Uniform4uiv(location, 1, &v[0]) }
func (v UVec4) uniformType() string  { return "uvec4" }

// Mat2 is a 2x2 float matrix uniform, column-major per mgl32.
type Mat2 mgl32.Mat2

func (v Mat2) apply(location int32) { gl.UniformMatrix2fv(location, 1, false, &v[0]) }
func (v Mat2) uniformType() string  { return "mat2" }

// Mat3 is a 3x3 float matrix uniform, column-major per mgl32.
type Mat3 mgl32.Mat3

func (v Mat3) apply(location int32) { gl.UniformMatrix3fv(location, 1, false, &v[0]) }
func (v Mat3) uniformType() string  { return "mat3" }

// Mat4 is a 4x4 float matrix uniform, column-major per mgl32.
type Mat4 mgl32.Mat4

func (v Mat4) apply(location int32) { gl.UniformMatrix4fv(location, 1, false, &v[0]) }
func (v Mat4) uniformType() string  { return "mat4" }
