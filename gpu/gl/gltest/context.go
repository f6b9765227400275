// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gltest provides an in-memory implementation of [gl.Context]
// that tracks objects and bindings like a real driver, for testing code
// that drives the graphics API without a GPU.
package gltest

import (
	"maps"
	"slices"

	"cogentcore.org/glkit/gpu/gl"
)

// Context is a software model of the native state machine. Exported
// fields describe the current state and can be inspected by tests;
// the configuration fields at the top can be changed before use.
type Context struct {
	// Version is returned for gl.VERSION.
	Version string

	// GLSLVersion is returned for gl.SHADING_LANGUAGE_VERSION.
	GLSLVersion string

	// Limits overrides the values returned by GetInteger.
	Limits map[gl.Enum]int

	// ExtensionList is returned by Extensions.
	ExtensionList []string

	// Width and Height are the drawing buffer size.
	Width, Height int

	// FailCreate makes all Create* calls return the zero handle.
	FailCreate bool

	// OutOfMemory makes storage allocations record gl.OUT_OF_MEMORY.
	OutOfMemory bool

	// FailCompile makes every shader compilation fail.
	FailCompile bool

	// LinkError, if set, makes every link fail with this log.
	LinkError string

	// Inactive names uniforms and attributes that the linker
	// treats as unused, in addition to ones never referenced.
	Inactive map[string]bool

	// Status, if non-zero, is returned by CheckFramebufferStatus
	// for every non-default framebuffer.
	Status gl.Enum

	Buffers       map[gl.Buffer]*Buffer
	VertexArrays  map[gl.VertexArray]*VertexArray
	Textures      map[gl.Texture]*Texture
	Renderbuffers map[gl.Renderbuffer]*Renderbuffer
	Framebuffers  map[gl.Framebuffer]*Framebuffer
	Shaders       map[gl.Shader]*Shader
	Programs      map[gl.Program]*Program

	ArrayBuffer     gl.Buffer
	VertexArray     gl.VertexArray
	Program         gl.Program
	DrawFramebuffer gl.Framebuffer
	ReadFramebuffer gl.Framebuffer
	Renderbuffer    gl.Renderbuffer
	ActiveUnit      int
	Units           map[int]map[gl.Enum]gl.Texture
	Enabled         map[gl.Enum]bool
	DepthWrite      bool
	DepthCompare    gl.Enum
	CullMode        gl.Enum
	ViewportRect    [4]int
	Unpack          map[gl.Enum]int

	// Draws records every successful draw submission.
	Draws []Draw

	// Calls counts calls per method name.
	Calls map[string]int

	nextID uint32
	errs   []gl.Enum

	// defaultVAO holds element and attribute state when no
	// vertex array object is bound.
	defaultVAO VertexArray
}

// Buffer is a buffer object.
type Buffer struct {
	Data  []byte
	Usage gl.Enum
}

// AttribPointer is the state of one vertex attribute location.
type AttribPointer struct {
	Enabled    bool
	Buffer     gl.Buffer
	Size       int
	Type       gl.Enum
	Normalized bool
	Integer    bool
	Stride     int
	Offset     int
	Divisor    int
}

// VertexArray is a vertex array object.
type VertexArray struct {
	Attribs  map[gl.Attrib]*AttribPointer
	Elements gl.Buffer
}

// Draw is a recorded draw submission, with a snapshot of the state
// it was made with.
type Draw struct {
	Program     gl.Program
	VertexArray gl.VertexArray
	Framebuffer gl.Framebuffer
	Count       int
	Type        gl.Enum
	Offset      int
	Instances   int
	CullFace    bool
	CullMode    gl.Enum
	DepthTest   bool
	DepthFunc   gl.Enum
	DepthWrite  bool
	Viewport    [4]int
	Textures    map[int]map[gl.Enum]gl.Texture
}

// New returns a Context with an OpenGL ES 3.0 profile and a 640x480
// drawing buffer.
func New() *Context {
	c := &Context{
		Version:       "OpenGL ES 3.0 (WebGL 2.0)",
		GLSLVersion:   "OpenGL ES GLSL ES 3.00",
		Limits:        map[gl.Enum]int{},
		ExtensionList: []string{"EXT_color_buffer_float", "OES_texture_float_linear"},
		Width:         640,
		Height:        480,
		Inactive:      map[string]bool{},
		Buffers:       map[gl.Buffer]*Buffer{},
		VertexArrays:  map[gl.VertexArray]*VertexArray{},
		Textures:      map[gl.Texture]*Texture{},
		Renderbuffers: map[gl.Renderbuffer]*Renderbuffer{},
		Framebuffers:  map[gl.Framebuffer]*Framebuffer{},
		Shaders:       map[gl.Shader]*Shader{},
		Programs:      map[gl.Program]*Program{},
		Units:         map[int]map[gl.Enum]gl.Texture{},
		Enabled:       map[gl.Enum]bool{},
		DepthWrite:    true,
		DepthCompare:  gl.LESS,
		CullMode:      gl.BACK,
		Unpack:        map[gl.Enum]int{gl.UNPACK_ALIGNMENT: 4},
		Calls:         map[string]int{},
	}
	c.defaultVAO.Attribs = map[gl.Attrib]*AttribPointer{}
	c.ViewportRect = [4]int{0, 0, c.Width, c.Height}
	return c
}

var defaultLimits = map[gl.Enum]int{
	gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS: 16,
	gl.MAX_TEXTURE_SIZE:                 4096,
	gl.MAX_3D_TEXTURE_SIZE:              2048,
	gl.MAX_CUBE_MAP_TEXTURE_SIZE:        4096,
	gl.MAX_RENDERBUFFER_SIZE:            4096,
	gl.MAX_ARRAY_TEXTURE_LAYERS:         256,
	gl.MAX_COLOR_ATTACHMENTS:            4,
	gl.MAX_DRAW_BUFFERS:                 4,
	gl.MAX_VERTEX_ATTRIBS:               16,
	gl.MAX_SAMPLES:                      4,
}

func (c *Context) call(name string) { c.Calls[name]++ }

func (c *Context) newID() uint32 {
	c.nextID++
	return c.nextID
}

func (c *Context) setError(e gl.Enum) {
	c.errs = append(c.errs, e)
}

// Errors returns the pending errors without clearing them.
func (c *Context) Errors() []gl.Enum { return slices.Clone(c.errs) }

// Objects returns the number of live native objects of all kinds.
func (c *Context) Objects() int {
	return len(c.Buffers) + len(c.VertexArrays) + len(c.Textures) + len(c.Renderbuffers) +
		len(c.Framebuffers) + len(c.Shaders) + len(c.Programs)
}

func (c *Context) GetError() gl.Enum {
	c.call("GetError")
	if len(c.errs) == 0 {
		return gl.NO_ERROR
	}
	e := c.errs[0]
	c.errs = c.errs[1:]
	return e
}

func (c *Context) GetString(pname gl.Enum) string {
	switch pname {
	case gl.VERSION:
		return c.Version
	case gl.SHADING_LANGUAGE_VERSION:
		return c.GLSLVersion
	case gl.VENDOR, gl.RENDERER:
		return "gltest"
	}
	c.setError(gl.INVALID_ENUM)
	return ""
}

func (c *Context) GetInteger(pname gl.Enum) int {
	if pname == gl.NUM_EXTENSIONS {
		return len(c.ExtensionList)
	}
	if v, ok := c.Limits[pname]; ok {
		return v
	}
	if v, ok := defaultLimits[pname]; ok {
		return v
	}
	c.setError(gl.INVALID_ENUM)
	return 0
}

func (c *Context) Extensions() []string { return slices.Clone(c.ExtensionList) }

func (c *Context) DrawingBufferSize() (width, height int) { return c.Width, c.Height }

//////// Buffers

func (c *Context) CreateBuffer() gl.Buffer {
	c.call("CreateBuffer")
	if c.FailCreate {
		return gl.Buffer{}
	}
	b := gl.Buffer{V: c.newID()}
	c.Buffers[b] = &Buffer{}
	return b
}

func (c *Context) DeleteBuffer(b gl.Buffer) {
	c.call("DeleteBuffer")
	delete(c.Buffers, b)
	if c.ArrayBuffer == b {
		c.ArrayBuffer = gl.Buffer{}
	}
	if va := c.vao(); va.Elements == b {
		va.Elements = gl.Buffer{}
	}
}

func (c *Context) BindBuffer(target gl.Enum, b gl.Buffer) {
	c.call("BindBuffer")
	if b.Valid() && c.Buffers[b] == nil {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	switch target {
	case gl.ARRAY_BUFFER:
		c.ArrayBuffer = b
	case gl.ELEMENT_ARRAY_BUFFER:
		c.vao().Elements = b
	default:
		c.setError(gl.INVALID_ENUM)
	}
}

// ElementBuffer returns the element buffer of the bound vertex array.
func (c *Context) ElementBuffer() gl.Buffer { return c.vao().Elements }

func (c *Context) boundBuffer(target gl.Enum) *Buffer {
	switch target {
	case gl.ARRAY_BUFFER:
		return c.Buffers[c.ArrayBuffer]
	case gl.ELEMENT_ARRAY_BUFFER:
		return c.Buffers[c.vao().Elements]
	}
	return nil
}

func (c *Context) BufferData(target gl.Enum, data []byte, usage gl.Enum) {
	c.call("BufferData")
	b := c.boundBuffer(target)
	if b == nil {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	if c.OutOfMemory {
		c.setError(gl.OUT_OF_MEMORY)
		return
	}
	b.Data = slices.Clone(data)
	b.Usage = usage
}

//////// Vertex arrays

func (c *Context) vao() *VertexArray {
	if va := c.VertexArrays[c.VertexArray]; va != nil {
		return va
	}
	return &c.defaultVAO
}

func (c *Context) CreateVertexArray() gl.VertexArray {
	c.call("CreateVertexArray")
	if c.FailCreate {
		return gl.VertexArray{}
	}
	a := gl.VertexArray{V: c.newID()}
	c.VertexArrays[a] = &VertexArray{Attribs: map[gl.Attrib]*AttribPointer{}}
	return a
}

func (c *Context) DeleteVertexArray(a gl.VertexArray) {
	c.call("DeleteVertexArray")
	delete(c.VertexArrays, a)
	if c.VertexArray == a {
		c.VertexArray = gl.VertexArray{}
	}
}

func (c *Context) BindVertexArray(a gl.VertexArray) {
	c.call("BindVertexArray")
	if a.Valid() && c.VertexArrays[a] == nil {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	c.VertexArray = a
}

func (c *Context) attrib(a gl.Attrib) *AttribPointer {
	if a < 0 || int(a) >= c.GetInteger(gl.MAX_VERTEX_ATTRIBS) {
		c.setError(gl.INVALID_VALUE)
		return nil
	}
	va := c.vao()
	ap := va.Attribs[a]
	if ap == nil {
		ap = &AttribPointer{}
		va.Attribs[a] = ap
	}
	return ap
}

func (c *Context) EnableVertexAttribArray(a gl.Attrib) {
	c.call("EnableVertexAttribArray")
	if ap := c.attrib(a); ap != nil {
		ap.Enabled = true
	}
}

func (c *Context) VertexAttribPointer(a gl.Attrib, size int, typ gl.Enum, normalized bool, stride, offset int) {
	c.call("VertexAttribPointer")
	c.attribPointer(a, size, typ, normalized, false, stride, offset)
}

func (c *Context) VertexAttribIPointer(a gl.Attrib, size int, typ gl.Enum, stride, offset int) {
	c.call("VertexAttribIPointer")
	c.attribPointer(a, size, typ, false, true, stride, offset)
}

func (c *Context) attribPointer(a gl.Attrib, size int, typ gl.Enum, normalized, integer bool, stride, offset int) {
	if !c.ArrayBuffer.Valid() {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	if size < 1 || size > 4 || stride < 0 || stride > 255 || offset < 0 {
		c.setError(gl.INVALID_VALUE)
		return
	}
	ap := c.attrib(a)
	if ap == nil {
		return
	}
	ap.Buffer = c.ArrayBuffer
	ap.Size = size
	ap.Type = typ
	ap.Normalized = normalized
	ap.Integer = integer
	ap.Stride = stride
	ap.Offset = offset
}

func (c *Context) VertexAttribDivisor(a gl.Attrib, divisor int) {
	c.call("VertexAttribDivisor")
	if ap := c.attrib(a); ap != nil {
		ap.Divisor = divisor
	}
}

//////// State

func (c *Context) Enable(cap gl.Enum) {
	c.call("Enable")
	c.Enabled[cap] = true
}

func (c *Context) Disable(cap gl.Enum) {
	c.call("Disable")
	c.Enabled[cap] = false
}

func (c *Context) CullFace(mode gl.Enum) {
	c.call("CullFace")
	c.CullMode = mode
}

func (c *Context) DepthFunc(fn gl.Enum) {
	c.call("DepthFunc")
	c.DepthCompare = fn
}

func (c *Context) DepthMask(mask bool) {
	c.call("DepthMask")
	c.DepthWrite = mask
}

func (c *Context) Viewport(x, y, width, height int) {
	c.call("Viewport")
	if width < 0 || height < 0 {
		c.setError(gl.INVALID_VALUE)
		return
	}
	c.ViewportRect = [4]int{x, y, width, height}
}

func (c *Context) PixelStorei(pname gl.Enum, param int) {
	c.call("PixelStorei")
	c.Unpack[pname] = param
}

//////// Draws

func (c *Context) DrawElements(mode gl.Enum, count int, typ gl.Enum, offset int) {
	c.call("DrawElements")
	c.draw(mode, count, typ, offset, 1)
}

func (c *Context) DrawElementsInstanced(mode gl.Enum, count int, typ gl.Enum, offset, instances int) {
	c.call("DrawElementsInstanced")
	c.draw(mode, count, typ, offset, instances)
}

func (c *Context) draw(mode gl.Enum, count int, typ gl.Enum, offset, instances int) {
	p := c.Programs[c.Program]
	if p == nil || !p.Linked {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	if !c.VertexArray.Valid() || !c.vao().Elements.Valid() {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	if st := c.CheckFramebufferStatus(gl.DRAW_FRAMEBUFFER); st != gl.FRAMEBUFFER_COMPLETE {
		c.setError(gl.INVALID_FRAMEBUFFER_OPERATION)
		return
	}
	if count < 0 || instances < 0 {
		c.setError(gl.INVALID_VALUE)
		return
	}
	units := make(map[int]map[gl.Enum]gl.Texture, len(c.Units))
	for u, tm := range c.Units {
		if len(tm) > 0 {
			units[u] = maps.Clone(tm)
		}
	}
	c.Draws = append(c.Draws, Draw{
		Program:     c.Program,
		VertexArray: c.VertexArray,
		Framebuffer: c.DrawFramebuffer,
		Count:       count,
		Type:        typ,
		Offset:      offset,
		Instances:   instances,
		CullFace:    c.Enabled[gl.CULL_FACE],
		CullMode:    c.CullMode,
		DepthTest:   c.Enabled[gl.DEPTH_TEST],
		DepthFunc:   c.DepthCompare,
		DepthWrite:  c.DepthWrite,
		Viewport:    c.ViewportRect,
		Textures:    units,
	})
}
