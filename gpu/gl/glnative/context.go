// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

// Package glnative implements [gl.Context] on a desktop OpenGL 3.3 core
// profile context, and creates such contexts with GLFW.
package glnative

import (
	"strings"
	"unsafe"

	"cogentcore.org/glkit/gpu/gl"
	ngl "github.com/go-gl/gl/v3.3-core/gl"
)

// Context is a [gl.Context] for the OpenGL context current on the
// calling thread.
type Context struct {
	// Size returns the size of the default framebuffer in pixels.
	Size func() (width, height int)
}

var _ gl.Context = (*Context)(nil)

// New loads the OpenGL entry points for the current context. A
// context must be current on the calling thread.
func New(size func() (width, height int)) (*Context, error) {
	if err := ngl.Init(); err != nil {
		return nil, err
	}
	return &Context{Size: size}, nil
}

// cstr returns a NUL terminated copy of s for go-gl.
func cstr(s string) *uint8 { return ngl.Str(s + "\x00") }

// ptr returns a pointer to the first byte of data, or nil.
func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}

func (c *Context) GetError() gl.Enum { return gl.Enum(ngl.GetError()) }

func (c *Context) GetString(pname gl.Enum) string {
	if s := ngl.GetString(uint32(pname)); s != nil {
		return ngl.GoStr(s)
	}
	return ""
}

func (c *Context) GetInteger(pname gl.Enum) int {
	var v int32
	ngl.GetIntegerv(uint32(pname), &v)
	return int(v)
}

func (c *Context) Extensions() []string {
	n := c.GetInteger(gl.NUM_EXTENSIONS)
	exts := make([]string, 0, n)
	for i := range n {
		if s := ngl.GetStringi(ngl.EXTENSIONS, uint32(i)); s != nil {
			exts = append(exts, ngl.GoStr(s))
		}
	}
	return exts
}

func (c *Context) DrawingBufferSize() (width, height int) {
	if c.Size == nil {
		return 0, 0
	}
	return c.Size()
}

//////// Buffers

func (c *Context) CreateBuffer() gl.Buffer {
	var b uint32
	ngl.GenBuffers(1, &b)
	return gl.Buffer{V: b}
}

func (c *Context) DeleteBuffer(b gl.Buffer) { ngl.DeleteBuffers(1, &b.V) }

func (c *Context) BindBuffer(target gl.Enum, b gl.Buffer) { ngl.BindBuffer(uint32(target), b.V) }

func (c *Context) BufferData(target gl.Enum, data []byte, usage gl.Enum) {
	ngl.BufferData(uint32(target), len(data), ptr(data), uint32(usage))
}

func (c *Context) CreateVertexArray() gl.VertexArray {
	var a uint32
	ngl.GenVertexArrays(1, &a)
	return gl.VertexArray{V: a}
}

func (c *Context) DeleteVertexArray(a gl.VertexArray) { ngl.DeleteVertexArrays(1, &a.V) }

func (c *Context) BindVertexArray(a gl.VertexArray) { ngl.BindVertexArray(a.V) }

func (c *Context) EnableVertexAttribArray(a gl.Attrib) { ngl.EnableVertexAttribArray(uint32(a)) }

func (c *Context) VertexAttribPointer(a gl.Attrib, size int, typ gl.Enum, normalized bool, stride, offset int) {
	ngl.VertexAttribPointer(uint32(a), int32(size), uint32(typ), normalized, int32(stride), ngl.PtrOffset(offset))
}

func (c *Context) VertexAttribIPointer(a gl.Attrib, size int, typ gl.Enum, stride, offset int) {
	ngl.VertexAttribIPointer(uint32(a), int32(size), uint32(typ), int32(stride), ngl.PtrOffset(offset))
}

func (c *Context) VertexAttribDivisor(a gl.Attrib, divisor int) {
	ngl.VertexAttribDivisor(uint32(a), uint32(divisor))
}

//////// Textures

func (c *Context) CreateTexture() gl.Texture {
	var t uint32
	ngl.GenTextures(1, &t)
	return gl.Texture{V: t}
}

func (c *Context) DeleteTexture(t gl.Texture) { ngl.DeleteTextures(1, &t.V) }

func (c *Context) ActiveTexture(unit gl.Enum) { ngl.ActiveTexture(uint32(unit)) }

func (c *Context) BindTexture(target gl.Enum, t gl.Texture) { ngl.BindTexture(uint32(target), t.V) }

var cubeFaces = [6]gl.Enum{
	gl.TEXTURE_CUBE_MAP_POSITIVE_X, gl.TEXTURE_CUBE_MAP_NEGATIVE_X,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Y, gl.TEXTURE_CUBE_MAP_NEGATIVE_Y,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Z, gl.TEXTURE_CUBE_MAP_NEGATIVE_Z,
}

// TexStorage2D allocates every level with TexImage2D, since immutable
// storage is not part of the 3.3 core profile.
func (c *Context) TexStorage2D(target gl.Enum, levels int, internalFormat gl.Enum, width, height int) {
	format, typ := transferFormat(internalFormat)
	for level := range levels {
		w, h := max(1, width>>level), max(1, height>>level)
		if target == gl.TEXTURE_CUBE_MAP {
			for _, face := range cubeFaces {
				ngl.TexImage2D(uint32(face), int32(level), int32(internalFormat), int32(w), int32(h), 0, uint32(format), uint32(typ), nil)
			}
			continue
		}
		ngl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(w), int32(h), 0, uint32(format), uint32(typ), nil)
	}
}

// TexStorage3D allocates every level with TexImage3D. The depth of
// array textures does not shrink with the level.
func (c *Context) TexStorage3D(target gl.Enum, levels int, internalFormat gl.Enum, width, height, depth int) {
	format, typ := transferFormat(internalFormat)
	for level := range levels {
		w, h, d := max(1, width>>level), max(1, height>>level), depth
		if target == gl.TEXTURE_3D {
			d = max(1, depth>>level)
		}
		ngl.TexImage3D(uint32(target), int32(level), int32(internalFormat), int32(w), int32(h), int32(d), 0, uint32(format), uint32(typ), nil)
	}
}

func (c *Context) TexSubImage2D(target gl.Enum, level, x, y, width, height int, format, typ gl.Enum, data []byte) {
	ngl.TexSubImage2D(uint32(target), int32(level), int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(typ), ptr(data))
}

func (c *Context) TexSubImage3D(target gl.Enum, level, x, y, z, width, height, depth int, format, typ gl.Enum, data []byte) {
	ngl.TexSubImage3D(uint32(target), int32(level), int32(x), int32(y), int32(z), int32(width), int32(height), int32(depth), uint32(format), uint32(typ), ptr(data))
}

func (c *Context) TexParameteri(target, pname gl.Enum, param int) {
	ngl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (c *Context) GenerateMipmap(target gl.Enum) { ngl.GenerateMipmap(uint32(target)) }

func (c *Context) PixelStorei(pname gl.Enum, param int) { ngl.PixelStorei(uint32(pname), int32(param)) }

//////// Renderbuffers and framebuffers

func (c *Context) CreateRenderbuffer() gl.Renderbuffer {
	var r uint32
	ngl.GenRenderbuffers(1, &r)
	return gl.Renderbuffer{V: r}
}

func (c *Context) DeleteRenderbuffer(r gl.Renderbuffer) { ngl.DeleteRenderbuffers(1, &r.V) }

func (c *Context) BindRenderbuffer(target gl.Enum, r gl.Renderbuffer) {
	ngl.BindRenderbuffer(uint32(target), r.V)
}

func (c *Context) RenderbufferStorageMultisample(target gl.Enum, samples int, internalFormat gl.Enum, width, height int) {
	ngl.RenderbufferStorageMultisample(uint32(target), int32(samples), uint32(internalFormat), int32(width), int32(height))
}

func (c *Context) CreateFramebuffer() gl.Framebuffer {
	var f uint32
	ngl.GenFramebuffers(1, &f)
	return gl.Framebuffer{V: f}
}

func (c *Context) DeleteFramebuffer(f gl.Framebuffer) { ngl.DeleteFramebuffers(1, &f.V) }

func (c *Context) BindFramebuffer(target gl.Enum, f gl.Framebuffer) {
	ngl.BindFramebuffer(uint32(target), f.V)
}

func (c *Context) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int) {
	ngl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), t.V, int32(level))
}

func (c *Context) FramebufferTextureLayer(target, attachment gl.Enum, t gl.Texture, level, layer int) {
	ngl.FramebufferTextureLayer(uint32(target), uint32(attachment), t.V, int32(level), int32(layer))
}

func (c *Context) FramebufferRenderbuffer(target, attachment, rbTarget gl.Enum, r gl.Renderbuffer) {
	ngl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(rbTarget), r.V)
}

func (c *Context) DrawBuffers(bufs []gl.Enum) {
	if len(bufs) == 0 {
		return
	}
	ub := make([]uint32, len(bufs))
	for i, b := range bufs {
		ub[i] = uint32(b)
	}
	ngl.DrawBuffers(int32(len(ub)), &ub[0])
}

func (c *Context) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	return gl.Enum(ngl.CheckFramebufferStatus(uint32(target)))
}

func (c *Context) Viewport(x, y, width, height int) {
	ngl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

//////// Shaders and programs

func (c *Context) CreateShader(typ gl.Enum) gl.Shader {
	return gl.Shader{V: ngl.CreateShader(uint32(typ))}
}

func (c *Context) DeleteShader(s gl.Shader) { ngl.DeleteShader(s.V) }

func (c *Context) ShaderSource(s gl.Shader, src string) {
	csrc, free := ngl.Strs(src + "\x00")
	ngl.ShaderSource(s.V, 1, csrc, nil)
	free()
}

func (c *Context) CompileShader(s gl.Shader) { ngl.CompileShader(s.V) }

func (c *Context) GetShaderi(s gl.Shader, pname gl.Enum) int {
	var v int32
	ngl.GetShaderiv(s.V, uint32(pname), &v)
	return int(v)
}

func (c *Context) GetShaderInfoLog(s gl.Shader) string {
	var n int32
	ngl.GetShaderiv(s.V, ngl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	ngl.GetShaderInfoLog(s.V, n, nil, ngl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (c *Context) CreateProgram() gl.Program { return gl.Program{V: ngl.CreateProgram()} }

func (c *Context) DeleteProgram(p gl.Program) { ngl.DeleteProgram(p.V) }

func (c *Context) AttachShader(p gl.Program, s gl.Shader) { ngl.AttachShader(p.V, s.V) }

func (c *Context) BindAttribLocation(p gl.Program, a gl.Attrib, name string) {
	ngl.BindAttribLocation(p.V, uint32(a), cstr(name))
}

func (c *Context) LinkProgram(p gl.Program) { ngl.LinkProgram(p.V) }

func (c *Context) GetProgrami(p gl.Program, pname gl.Enum) int {
	var v int32
	ngl.GetProgramiv(p.V, uint32(pname), &v)
	return int(v)
}

func (c *Context) GetProgramInfoLog(p gl.Program) string {
	var n int32
	ngl.GetProgramiv(p.V, ngl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	ngl.GetProgramInfoLog(p.V, n, nil, ngl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (c *Context) UseProgram(p gl.Program) { ngl.UseProgram(p.V) }

func (c *Context) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	return gl.Attrib(ngl.GetAttribLocation(p.V, cstr(name)))
}

func (c *Context) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	return gl.Uniform{V: ngl.GetUniformLocation(p.V, cstr(name))}
}

//////// Uniforms

func (c *Context) Uniformfv(u gl.Uniform, components int, v []float32) {
	if len(v) == 0 || components < 1 {
		return
	}
	n := int32(len(v) / components)
	switch components {
	case 1:
		ngl.Uniform1fv(u.V, n, &v[0])
	case 2:
		ngl.Uniform2fv(u.V, n, &v[0])
	case 3:
		ngl.Uniform3fv(u.V, n, &v[0])
	case 4:
		ngl.Uniform4fv(u.V, n, &v[0])
	}
}

func (c *Context) Uniformiv(u gl.Uniform, components int, v []int32) {
	if len(v) == 0 || components < 1 {
		return
	}
	n := int32(len(v) / components)
	switch components {
	case 1:
		ngl.Uniform1iv(u.V, n, &v[0])
	case 2:
		ngl.Uniform2iv(u.V, n, &v[0])
	case 3:
		ngl.Uniform3iv(u.V, n, &v[0])
	case 4:
		ngl.Uniform4iv(u.V, n, &v[0])
	}
}

func (c *Context) Uniformuiv(u gl.Uniform, components int, v []uint32) {
	if len(v) == 0 || components < 1 {
		return
	}
	n := int32(len(v) / components)
	switch components {
	case 1:
		ngl.Uniform1uiv(u.V, n, &v[0])
	case 2:
		ngl.Uniform2uiv(u.V, n, &v[0])
	case 3:
		ngl.Uniform3uiv(u.V, n, &v[0])
	case 4:
		ngl.Uniform4uiv(u.V, n, &v[0])
	}
}

func (c *Context) UniformMatrixfv(u gl.Uniform, cols, rows int, v []float32) {
	if len(v) == 0 || cols*rows == 0 {
		return
	}
	n := int32(len(v) / (cols * rows))
	switch [2]int{cols, rows} {
	case [2]int{2, 2}:
		ngl.UniformMatrix2fv(u.V, n, false, &v[0])
	case [2]int{3, 3}:
		ngl.UniformMatrix3fv(u.V, n, false, &v[0])
	case [2]int{4, 4}:
		ngl.UniformMatrix4fv(u.V, n, false, &v[0])
	case [2]int{2, 3}:
		ngl.UniformMatrix2x3fv(u.V, n, false, &v[0])
	case [2]int{2, 4}:
		ngl.UniformMatrix2x4fv(u.V, n, false, &v[0])
	case [2]int{3, 2}:
		ngl.UniformMatrix3x2fv(u.V, n, false, &v[0])
	case [2]int{3, 4}:
		ngl.UniformMatrix3x4fv(u.V, n, false, &v[0])
	case [2]int{4, 2}:
		ngl.UniformMatrix4x2fv(u.V, n, false, &v[0])
	case [2]int{4, 3}:
		ngl.UniformMatrix4x3fv(u.V, n, false, &v[0])
	}
}

//////// State and draws

func (c *Context) Enable(capability gl.Enum) { ngl.Enable(uint32(capability)) }

func (c *Context) Disable(capability gl.Enum) { ngl.Disable(uint32(capability)) }

func (c *Context) CullFace(mode gl.Enum) { ngl.CullFace(uint32(mode)) }

func (c *Context) DepthFunc(fn gl.Enum) { ngl.DepthFunc(uint32(fn)) }

func (c *Context) DepthMask(mask bool) { ngl.DepthMask(mask) }

func (c *Context) DrawElements(mode gl.Enum, count int, typ gl.Enum, offset int) {
	ngl.DrawElements(uint32(mode), int32(count), uint32(typ), ngl.PtrOffset(offset))
}

func (c *Context) DrawElementsInstanced(mode gl.Enum, count int, typ gl.Enum, offset, instances int) {
	ngl.DrawElementsInstanced(uint32(mode), int32(count), uint32(typ), ngl.PtrOffset(offset), int32(instances))
}
