package glh

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessagesCarryDiagnostics(t *testing.T) {
	compile := &CompileError{Type: FragmentShader, Log: "0:3: 'foo' : undeclared identifier"}
	assert.Contains(t, compile.Error(), "fragment")
	assert.Contains(t, compile.Error(), "undeclared identifier")

	link := &LinkError{Log: "varying mismatch"}
	assert.Contains(t, link.Error(), "varying mismatch")

	uniform := &UniformError{Name: "projection"}
	assert.Contains(t, uniform.Error(), `"projection"`)

	bounds := &BoundsError{AllocatedSize: 64, Offset: 60, Size: 8}
	assert.Contains(t, bounds.Error(), "64")
	assert.Contains(t, bounds.Error(), "60")
	assert.Contains(t, bounds.Error(), "8")
}

func TestErrorTypesUnwrapThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("frame setup: %w", &UniformError{Name: "fade"})

	var uniform *UniformError
	require.ErrorAs(t, wrapped, &uniform)
	assert.Equal(t, "fade", uniform.Name)

	var compile *CompileError
	assert.False(t, errors.As(wrapped, &compile))
}

func TestTerminate(t *testing.T) {
	s, err := terminate("transform")
	require.NoError(t, err)
	assert.Equal(t, "transform\x00", s)

	_, err = terminate("bad\x00name")
	var strErr *StringError
	require.ErrorAs(t, err, &strErr)
	assert.Equal(t, "bad\x00name", strErr.Value)
}
