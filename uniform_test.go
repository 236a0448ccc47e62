package glh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformTypeNames(t *testing.T) {
	tests := []struct {
		value UniformValue
		want  string
	}{
		{Float(1.5), "float"},
		{Int(-3), "int"},
		{Uint(7), "uint"},
		{Bool(true), "bool"},
		{Vec2{1, 2}, "vec2"},
		{Vec3{1, 2, 3}, "vec3"},
		{Vec4{1, 2, 3, 4}, "vec4"},
		{IVec2{1, 2}, "ivec2"},
		{IVec3{1, 2, 3}, "ivec3"},
		{IVec4{1, 2, 3, 4}, "ivec4"},
		{UVec2{1, 2}, "uvec2"},
		{UVec3{1, 2, 3}, "uvec3"},
		{UVec4{1, 2, 3, 4}, "uvec4"},
		{Mat2{}, "mat2"},
		{Mat3{}, "mat3"},
		{Mat4{}, "mat4"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.value.uniformType())
	}
}

func TestShaderTypeStrings(t *testing.T) {
	assert.Equal(t, "vertex", VertexShader.String())
	assert.Equal(t, "fragment", FragmentShader.String())
}
