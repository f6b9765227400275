// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltest

import (
	"testing"

	"cogentcore.org/glkit/gpu/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	c := New()
	assert.Equal(t, gl.NO_ERROR, c.GetError())
	c.BindBuffer(gl.ARRAY_BUFFER, gl.Buffer{V: 99})
	c.BindBuffer(0x1234, gl.Buffer{})
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION, gl.INVALID_ENUM}, c.Errors())
	assert.Equal(t, gl.INVALID_OPERATION, c.GetError())
	assert.Equal(t, gl.INVALID_ENUM, c.GetError())
	assert.Equal(t, gl.NO_ERROR, c.GetError())
}

func TestLimits(t *testing.T) {
	c := New()
	assert.Equal(t, 16, c.GetInteger(gl.MAX_VERTEX_ATTRIBS))
	c.Limits[gl.MAX_VERTEX_ATTRIBS] = 8
	assert.Equal(t, 8, c.GetInteger(gl.MAX_VERTEX_ATTRIBS))
	assert.Equal(t, 2, c.GetInteger(gl.NUM_EXTENSIONS))
	w, h := c.DrawingBufferSize()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestElementBufferPerVAO(t *testing.T) {
	c := New()
	b := c.CreateBuffer()
	va := c.CreateVertexArray()
	c.BindVertexArray(va)
	c.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b)
	assert.Equal(t, b, c.ElementBuffer())
	c.BindVertexArray(gl.VertexArray{})
	assert.False(t, c.ElementBuffer().Valid())
	c.BindVertexArray(va)
	assert.Equal(t, b, c.ElementBuffer())
	assert.Equal(t, 2, c.Objects())
}

func link(t *testing.T, c *Context, vs, fs string) gl.Program {
	t.Helper()
	p := c.CreateProgram()
	for typ, src := range map[gl.Enum]string{gl.VERTEX_SHADER: vs, gl.FRAGMENT_SHADER: fs} {
		s := c.CreateShader(typ)
		c.ShaderSource(s, src)
		c.CompileShader(s)
		c.AttachShader(p, s)
	}
	return p
}

const vertex = `#version 300 es
layout(location = 1) in vec3 pos;
in mat2 basis;
in vec2 uv;
in float unused;
uniform float scale[3];
out vec2 vUV;
void main() {
	vUV = basis * uv * scale[1];
	gl_Position = vec4(pos, 1.0);
}
`

const fragment = `#version 300 es
precision mediump float;
uniform sampler2D tex;
in vec2 vUV;
out vec4 color;
void main() {
	color = texture(tex, vUV);
}
`

func TestLink(t *testing.T) {
	c := New()
	p := link(t, c, vertex, fragment)
	c.BindAttribLocation(p, 5, "uv")
	c.LinkProgram(p)
	require.Equal(t, 1, c.GetProgrami(p, gl.LINK_STATUS), c.GetProgramInfoLog(p))

	assert.Equal(t, gl.Attrib(1), c.GetAttribLocation(p, "pos"))
	assert.Equal(t, gl.Attrib(5), c.GetAttribLocation(p, "uv"))
	assert.Equal(t, gl.Attrib(2), c.GetAttribLocation(p, "basis"), "mat2 takes the first two free locations")
	assert.Equal(t, gl.Attrib(-1), c.GetAttribLocation(p, "unused"))

	scale := c.GetUniformLocation(p, "scale")
	assert.Equal(t, int32(0), scale.V)
	assert.Equal(t, int32(2), c.GetUniformLocation(p, "scale[2]").V)
	assert.False(t, c.GetUniformLocation(p, "scale[3]").Valid())
	assert.Equal(t, int32(3), c.GetUniformLocation(p, "tex").V)

	c.UseProgram(p)
	c.Uniformfv(scale, 1, []float32{1, 2, 3})
	v, ok := c.UniformValue(p, "scale")
	require.True(t, ok)
	assert.Equal(t, []float32{1, 2, 3}, v.Floats)
	c.Uniformfv(scale, 1, []float32{1, 2, 3, 4})
	assert.Equal(t, gl.INVALID_VALUE, c.GetError())
	c.Uniformiv(c.GetUniformLocation(p, "tex"), 1, []int32{99})
	assert.Equal(t, gl.INVALID_VALUE, c.GetError())
}

func TestLinkFailures(t *testing.T) {
	c := New()
	p := link(t, c, vertex, "#version 300 es\n\n#error nope\n")
	c.LinkProgram(p)
	assert.Equal(t, 0, c.GetProgrami(p, gl.LINK_STATUS))
	assert.Contains(t, c.GetProgramInfoLog(p), "not compiled")

	c.LinkError = "error: out of registers"
	p = link(t, c, vertex, fragment)
	c.LinkProgram(p)
	assert.Equal(t, "error: out of registers", c.GetProgramInfoLog(p))
	c.UseProgram(p)
	assert.Equal(t, gl.INVALID_OPERATION, c.GetError())
}

func TestCompileLog(t *testing.T) {
	c := New()
	s := c.CreateShader(gl.FRAGMENT_SHADER)
	c.ShaderSource(s, "#version 300 es\n\n#error nope\n")
	c.CompileShader(s)
	assert.Equal(t, 0, c.GetShaderi(s, gl.COMPILE_STATUS))
	assert.Equal(t, "ERROR: 0:3: '#error nope'", c.GetShaderInfoLog(s))
}

func TestFramebufferStatus(t *testing.T) {
	c := New()
	f := c.CreateFramebuffer()
	c.BindFramebuffer(gl.FRAMEBUFFER, f)
	assert.Equal(t, gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT, c.CheckFramebufferStatus(gl.FRAMEBUFFER))

	tx := c.CreateTexture()
	c.BindTexture(gl.TEXTURE_2D, tx)
	c.TexStorage2D(gl.TEXTURE_2D, 1, gl.RGBA8, 8, 8)
	c.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tx, 0)
	assert.Equal(t, gl.FRAMEBUFFER_COMPLETE, c.CheckFramebufferStatus(gl.FRAMEBUFFER))

	c.Status = gl.FRAMEBUFFER_UNSUPPORTED
	assert.Equal(t, gl.FRAMEBUFFER_UNSUPPORTED, c.CheckFramebufferStatus(gl.FRAMEBUFFER))
	c.BindFramebuffer(gl.FRAMEBUFFER, gl.Framebuffer{})
	assert.Equal(t, gl.FRAMEBUFFER_COMPLETE, c.CheckFramebufferStatus(gl.FRAMEBUFFER))
}
