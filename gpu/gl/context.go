// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gl defines the graphics capability surface that package gpu
// calls into: typed object handles, enumerants, and the [Context]
// interface. It mirrors the OpenGL ES 3.0 / WebGL 2 feature set.
//
// Implementations are not safe for concurrent use; all calls must be made
// on the thread that owns the native context.
package gl

// Context is the set of native graphics operations used by package gpu.
// Method semantics follow the corresponding glXxx entry points; slices
// replace pointer + length pairs, and creations return the zero handle
// on failure instead of raising.
type Context interface {
	// GetError returns and clears the oldest recorded error.
	GetError() Enum
	GetString(pname Enum) string
	GetInteger(pname Enum) int
	Extensions() []string

	// DrawingBufferSize returns the size of the default framebuffer.
	DrawingBufferSize() (width, height int)

	CreateBuffer() Buffer
	DeleteBuffer(b Buffer)
	BindBuffer(target Enum, b Buffer)
	BufferData(target Enum, data []byte, usage Enum)

	CreateVertexArray() VertexArray
	DeleteVertexArray(a VertexArray)
	BindVertexArray(a VertexArray)
	EnableVertexAttribArray(a Attrib)
	VertexAttribPointer(a Attrib, size int, typ Enum, normalized bool, stride, offset int)
	VertexAttribIPointer(a Attrib, size int, typ Enum, stride, offset int)
	VertexAttribDivisor(a Attrib, divisor int)

	CreateTexture() Texture
	DeleteTexture(t Texture)
	ActiveTexture(unit Enum)
	BindTexture(target Enum, t Texture)
	TexStorage2D(target Enum, levels int, internalFormat Enum, width, height int)
	TexStorage3D(target Enum, levels int, internalFormat Enum, width, height, depth int)
	TexSubImage2D(target Enum, level, x, y, width, height int, format, typ Enum, data []byte)
	TexSubImage3D(target Enum, level, x, y, z, width, height, depth int, format, typ Enum, data []byte)
	TexParameteri(target, pname Enum, param int)
	GenerateMipmap(target Enum)
	PixelStorei(pname Enum, param int)

	CreateRenderbuffer() Renderbuffer
	DeleteRenderbuffer(r Renderbuffer)
	BindRenderbuffer(target Enum, r Renderbuffer)
	RenderbufferStorageMultisample(target Enum, samples int, internalFormat Enum, width, height int)

	CreateFramebuffer() Framebuffer
	DeleteFramebuffer(f Framebuffer)
	BindFramebuffer(target Enum, f Framebuffer)
	FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int)
	FramebufferTextureLayer(target, attachment Enum, t Texture, level, layer int)
	FramebufferRenderbuffer(target, attachment, rbTarget Enum, r Renderbuffer)
	DrawBuffers(bufs []Enum)
	CheckFramebufferStatus(target Enum) Enum
	Viewport(x, y, width, height int)

	CreateShader(typ Enum) Shader
	DeleteShader(s Shader)
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string

	CreateProgram() Program
	DeleteProgram(p Program)
	AttachShader(p Program, s Shader)
	BindAttribLocation(p Program, a Attrib, name string)
	LinkProgram(p Program)
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	UseProgram(p Program)
	GetAttribLocation(p Program, name string) Attrib
	GetUniformLocation(p Program, name string) Uniform

	// Uniformfv uploads float vectors of the given component count
	// (1-4) to the current program. Uniformiv and Uniformuiv are the
	// signed and unsigned integer equivalents; booleans and samplers use
	// Uniformiv.
	Uniformfv(u Uniform, components int, v []float32)
	Uniformiv(u Uniform, components int, v []int32)
	Uniformuiv(u Uniform, components int, v []uint32)

	// UniformMatrixfv uploads column-major matrices with the given
	// number of columns and rows (2-4 each).
	UniformMatrixfv(u Uniform, cols, rows int, v []float32)

	Enable(cap Enum)
	Disable(cap Enum)
	CullFace(mode Enum)
	DepthFunc(fn Enum)
	DepthMask(mask bool)

	DrawElements(mode Enum, count int, typ Enum, offset int)
	DrawElementsInstanced(mode Enum, count int, typ Enum, offset, instances int)
}
