// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"math"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/glkit/gpu/glsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const texturedFragment = `#version 300 es
precision mediump float;
uniform sampler2D tex;
in vec2 vUV;
out vec4 color;
void main() {
	color = texture(tex, vUV);
}
`

const uniformVertex = `#version 300 es
uniform mat4 model;
uniform vec3 tint;
uniform float unused;
uniform vec4 shifts[2];
in vec3 pos;
out vec3 vTint;
void main() {
	vTint = tint;
	gl_Position = model * vec4(pos, 1.0) + shifts[0] + shifts[1];
}
`

func TestProgram(t *testing.T) {
	dev, ctx, lr := newTestDevice(t)
	sp, err := newProgram(t, dev, quadVertex, quadFragment, nil)
	require.NoError(t, err)
	assert.Equal(t, "300 es", sp.Version)
	require.Len(t, sp.Attributes, 2)
	pos, ok := sp.Attribute("pos")
	require.True(t, ok)
	assert.Equal(t, 0, pos.Location)
	assert.Equal(t, glsl.Vec3, pos.Type)
	uv, _ := sp.Attribute("uv")
	assert.Equal(t, 1, uv.Location)
	assert.Empty(t, sp.Uniforms)
	assert.False(t, ctx.Program.Valid())
	assert.Empty(t, lr.msgs)

	sp.Delete()
	assert.False(t, sp.Program.Valid())
	assert.NotContains(t, ctx.Programs, sp.Program)
}

func TestProgramSamplerDefault(t *testing.T) {
	dev, ctx, _ := newTestDevice(t)
	_, err := newProgram(t, dev, quadVertex, texturedFragment, nil)
	assert.ErrorIs(t, err, ErrMissingUniformDefault)
	assert.Empty(t, ctx.Programs, "the program is deleted")

	sp, err := newProgram(t, dev, quadVertex, texturedFragment, &ProgramOptions{Uniforms: map[string]any{"tex": 0}})
	require.NoError(t, err)
	u, ok := sp.Uniform("tex")
	require.True(t, ok)
	assert.Equal(t, glsl.Sampler2D, u.Type)
	v, ok := ctx.UniformValue(sp.Program, "tex")
	require.True(t, ok, "an explicit zero is uploaded")
	assert.Equal(t, []int32{0}, v.Ints)
	assert.ErrorIs(t, sp.SetUniform("tex", 0.5), ErrUniformUpdateFailure)

	_, err = newProgram(t, dev, quadVertex, texturedFragment, &ProgramOptions{Uniforms: map[string]any{"tex": 99}})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestProgramUniformDefaults(t *testing.T) {
	dev, ctx, lr := newTestDevice(t)
	sp, err := newProgram(t, dev, uniformVertex, quadFragment, &ProgramOptions{Uniforms: map[string]any{
		"shifts":  []math32.Vector4{{X: 1}, {Y: 2}},
		"missing": 1,
	}})
	require.NoError(t, err)
	assert.True(t, lr.has("uniform is not active"), "unused is dropped")
	assert.True(t, lr.has("unknown uniform"), "missing is warned about")
	_, ok := sp.Uniform("unused")
	assert.False(t, ok)

	model, ok := ctx.UniformValue(sp.Program, "model")
	require.True(t, ok, "identity is uploaded")
	assert.Equal(t, DefaultUniform(glsl.Mat4, 1).Floats, model.Floats)
	assert.Equal(t, float32(1), model.Floats[15])

	_, ok = ctx.UniformValue(sp.Program, "tint")
	assert.False(t, ok, "zero defaults are not uploaded")
	tint, _ := sp.Uniform("tint")
	assert.Equal(t, []float32{0, 0, 0}, tint.Value().Floats)

	shifts, ok := sp.Uniform("shifts")
	require.True(t, ok)
	assert.Equal(t, 2, shifts.Size)
	v, ok := ctx.UniformValue(sp.Program, "shifts")
	require.True(t, ok)
	assert.Equal(t, []float32{1, 0, 0, 0, 0, 2, 0, 0}, v.Floats)

	_, err = newProgram(t, dev, uniformVertex, quadFragment, &ProgramOptions{Uniforms: map[string]any{"tint": 1.0}})
	assert.ErrorIs(t, err, ErrUniformUpdateFailure)
}

func TestProgramSetUniform(t *testing.T) {
	dev, ctx, _ := newTestDevice(t)
	sp, err := newProgram(t, dev, uniformVertex, quadFragment, nil)
	require.NoError(t, err)

	require.NoError(t, sp.SetUniform("tint", math32.Vector3{X: 0.5, Y: 1}))
	v, ok := ctx.UniformValue(sp.Program, "tint")
	require.True(t, ok)
	assert.Equal(t, []float32{0.5, 1, 0}, v.Floats)
	assert.False(t, ctx.Program.Valid())

	calls := ctx.Calls["Uniformfv"]
	require.NoError(t, sp.SetUniform("tint", []float32{0.5, 1, 0}))
	assert.Equal(t, calls, ctx.Calls["Uniformfv"], "unchanged values are not uploaded")

	assert.ErrorIs(t, sp.SetUniform("tint", []float32{1, 2}), ErrUniformUpdateFailure)
	assert.ErrorIs(t, sp.SetUniform("nothing", 1), ErrUniformUpdateFailure)
	tint, _ := sp.Uniform("tint")
	assert.Equal(t, []float32{0.5, 1, 0}, tint.Value().Floats)
}

func TestProgramLocations(t *testing.T) {
	dev, _, lr := newTestDevice(t)
	sp, err := newProgram(t, dev, quadVertex, quadFragment, &ProgramOptions{
		AttributeLocations: map[string]int{"uv": 0, "pos": 1, "normal": 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, sp.Attributes["pos"].Location)
	assert.Equal(t, 0, sp.Attributes["uv"].Location)
	assert.True(t, lr.has("unknown attribute"))

	const layoutVertex = `#version 300 es
layout(location = 3) in vec3 pos;
void main() {
	gl_Position = vec4(pos, 1.0);
}
`
	lr.msgs = nil
	sp, err = newProgram(t, dev, layoutVertex, quadFragment, &ProgramOptions{
		AttributeLocations: map[string]int{"pos": 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, sp.Attributes["pos"].Location)
	assert.True(t, lr.has("conflicts with the shader layout"))
}

func TestProgramInactiveAttribute(t *testing.T) {
	dev, ctx, lr := newTestDevice(t)
	ctx.Inactive["uv"] = true
	sp, err := newProgram(t, dev, quadVertex, quadFragment, nil)
	require.NoError(t, err)
	_, ok := sp.Attribute("uv")
	assert.False(t, ok)
	assert.True(t, lr.has("attribute is not active"))
}

func TestProgramLinkFailure(t *testing.T) {
	dev, ctx, _ := newTestDevice(t)
	ctx.LinkError = "error: too many varyings"
	_, err := newProgram(t, dev, quadVertex, quadFragment, nil)
	assert.ErrorIs(t, err, ErrLinkFailure)
	assert.Contains(t, err.Error(), "too many varyings")
	assert.Empty(t, ctx.Programs)

	ctx.LinkError = ""
	_, err = newProgram(t, dev, quadVertex, "#version 300 es\n#error broken\n", nil)
	assert.ErrorIs(t, err, ErrLinkFailure)
	assert.Contains(t, err.Error(), "not compiled")
	assert.Contains(t, err.Error(), "fragment log: ERROR: 0:2: '#error broken'")
}

func TestProgramShaderErrors(t *testing.T) {
	dev, _, _ := newTestDevice(t)
	vs, err := NewShader(dev, VertexStage, quadVertex)
	require.NoError(t, err)
	fs, err := NewShader(dev, FragmentStage, quadFragment)
	require.NoError(t, err)
	assert.True(t, vs.Compiled)

	_, err = NewShaderProgram(dev, "swapped", fs, vs, nil)
	assert.ErrorIs(t, err, ErrShaderStage)

	_, err = NewShaderProgram(dev, "nil", vs, nil, nil)
	assert.ErrorIs(t, err, ErrShaderDeleted)

	fs.Delete()
	assert.True(t, fs.Deleted())
	_, err = NewShaderProgram(dev, "deleted", vs, fs, nil)
	assert.ErrorIs(t, err, ErrShaderDeleted)
}

func TestProgramUnsupportedDeclarations(t *testing.T) {
	dev, _, lr := newTestDevice(t)
	const blockVertex = `#version 300 es
uniform Lights {
	vec4 light;
};
in vec3 pos;
void main() {
	gl_Position = vec4(pos, 1.0) + light;
}
`
	_, err := newProgram(t, dev, blockVertex, quadFragment, nil)
	require.NoError(t, err)
	assert.True(t, lr.has("declaration not reflected"))
}

func TestNormalizeUniform(t *testing.T) {
	v, err := NormalizeUniform(glsl.IVec2, 1, []int{3, -4})
	require.NoError(t, err)
	assert.Equal(t, []int32{3, -4}, v.Ints)

	v, err = NormalizeUniform(glsl.BVec2, 1, []bool{true, false})
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 0}, v.Ints)

	v, err = NormalizeUniform(glsl.Uint, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, []uint32{7}, v.Uints)
	_, err = NormalizeUniform(glsl.Uint, 1, -1)
	assert.Error(t, err)

	inexact := []struct {
		typ glsl.Type
		val any
	}{
		{glsl.Uint, 5e9},
		{glsl.Uint, 1.5},
		{glsl.Int, 2.25},
		{glsl.Int, float64(math.MaxInt32) + 1},
		{glsl.IVec2, []float32{1, float32(math.NaN())}},
		{glsl.Sampler2D, 1e10},
		{glsl.Sampler2D, 0.5},
	}
	for _, tt := range inexact {
		_, err = NormalizeUniform(tt.typ, 1, tt.val)
		assert.Error(t, err, "%s %v", tt.typ, tt.val)
	}
	v, err = NormalizeUniform(glsl.Int, 1, float32(-3))
	require.NoError(t, err)
	assert.Equal(t, []int32{-3}, v.Ints)
	v, err = NormalizeUniform(glsl.Uint, 1, uint32(math.MaxUint32))
	require.NoError(t, err)
	assert.Equal(t, []uint32{math.MaxUint32}, v.Uints)

	var m math32.Matrix3
	m[0], m[4], m[8] = 2, 2, 2
	v, err = NormalizeUniform(glsl.Mat3, 1, &m)
	require.NoError(t, err)
	assert.Len(t, v.Floats, 9)
	assert.Equal(t, float32(2), v.Floats[8])

	_, err = NormalizeUniform(glsl.Vec3, 2, []float32{1, 2, 3})
	assert.Error(t, err)
	_, err = NormalizeUniform(glsl.Float, 1, "one")
	assert.Error(t, err)

	id := DefaultUniform(glsl.Mat2, 2)
	assert.Equal(t, []float32{1, 0, 0, 1, 1, 0, 0, 1}, id.Floats)
	assert.True(t, DefaultUniform(glsl.Mat2x3, 1).IsZero())
}
