// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltest

import (
	"slices"

	"cogentcore.org/glkit/gpu/gl"
)

// Texture is a texture object.
type Texture struct {
	// Target is set by the first bind.
	Target gl.Enum

	// Format is the internal format given to TexStorage.
	Format gl.Enum

	Levels               int
	Width, Height, Depth int
	Params               map[gl.Enum]int
	Uploads              []Upload
	GeneratedMipmaps     int
}

// Allocated reports whether storage has been allocated.
func (t *Texture) Allocated() bool { return t.Levels > 0 }

// LevelSize returns the size of the given mip level.
// The depth of array textures does not shrink.
func (t *Texture) LevelSize(level int) (w, h, d int) {
	w = max(1, t.Width>>level)
	h = max(1, t.Height>>level)
	d = t.Depth
	if t.Target == gl.TEXTURE_3D {
		d = max(1, t.Depth>>level)
	}
	return
}

// Upload is a recorded TexSubImage call.
type Upload struct {
	Target       gl.Enum
	Level        int
	X, Y, Z      int
	W, H, D      int
	Format, Type gl.Enum
	Data         []byte
}

// Renderbuffer is a renderbuffer object.
type Renderbuffer struct {
	Format        gl.Enum
	Width, Height int
	Samples       int
}

// Allocated reports whether storage has been allocated.
func (r *Renderbuffer) Allocated() bool { return r.Format != 0 }

func (c *Context) CreateTexture() gl.Texture {
	c.call("CreateTexture")
	if c.FailCreate {
		return gl.Texture{}
	}
	t := gl.Texture{V: c.newID()}
	c.Textures[t] = &Texture{Params: map[gl.Enum]int{}}
	return t
}

func (c *Context) DeleteTexture(t gl.Texture) {
	c.call("DeleteTexture")
	delete(c.Textures, t)
	for _, tm := range c.Units {
		for tg, bt := range tm {
			if bt == t {
				delete(tm, tg)
			}
		}
	}
}

func (c *Context) ActiveTexture(unit gl.Enum) {
	c.call("ActiveTexture")
	u := int(unit - gl.TEXTURE0)
	if unit < gl.TEXTURE0 || u >= c.GetInteger(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS) {
		c.setError(gl.INVALID_ENUM)
		return
	}
	c.ActiveUnit = u
}

// Bound returns the texture bound to target on the given unit.
func (c *Context) Bound(unit int, target gl.Enum) gl.Texture {
	return c.Units[unit][target]
}

func (c *Context) BindTexture(target gl.Enum, t gl.Texture) {
	c.call("BindTexture")
	switch target {
	case gl.TEXTURE_2D, gl.TEXTURE_3D, gl.TEXTURE_CUBE_MAP, gl.TEXTURE_2D_ARRAY:
	default:
		c.setError(gl.INVALID_ENUM)
		return
	}
	tm := c.Units[c.ActiveUnit]
	if tm == nil {
		tm = map[gl.Enum]gl.Texture{}
		c.Units[c.ActiveUnit] = tm
	}
	if !t.Valid() {
		delete(tm, target)
		return
	}
	tx := c.Textures[t]
	if tx == nil {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	if tx.Target == 0 {
		tx.Target = target
	} else if tx.Target != target {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	tm[target] = t
}

func (c *Context) boundTexture(target gl.Enum) *Texture {
	return c.Textures[c.Units[c.ActiveUnit][target]]
}

func maxLevels(dims ...int) int {
	m := 0
	for _, d := range dims {
		m = max(m, d)
	}
	n := 1
	for m > 1 {
		m >>= 1
		n++
	}
	return n
}

func (c *Context) TexStorage2D(target gl.Enum, levels int, internalFormat gl.Enum, width, height int) {
	c.call("TexStorage2D")
	if target != gl.TEXTURE_2D && target != gl.TEXTURE_CUBE_MAP {
		c.setError(gl.INVALID_ENUM)
		return
	}
	limit := c.GetInteger(gl.MAX_TEXTURE_SIZE)
	if target == gl.TEXTURE_CUBE_MAP {
		limit = c.GetInteger(gl.MAX_CUBE_MAP_TEXTURE_SIZE)
		if width != height {
			c.setError(gl.INVALID_VALUE)
			return
		}
	}
	if width > limit || height > limit {
		c.setError(gl.INVALID_VALUE)
		return
	}
	c.texStorage(target, levels, internalFormat, width, height, 1, maxLevels(width, height))
}

func (c *Context) TexStorage3D(target gl.Enum, levels int, internalFormat gl.Enum, width, height, depth int) {
	c.call("TexStorage3D")
	var ml int
	switch target {
	case gl.TEXTURE_3D:
		limit := c.GetInteger(gl.MAX_3D_TEXTURE_SIZE)
		if width > limit || height > limit || depth > limit {
			c.setError(gl.INVALID_VALUE)
			return
		}
		ml = maxLevels(width, height, depth)
	case gl.TEXTURE_2D_ARRAY:
		limit := c.GetInteger(gl.MAX_TEXTURE_SIZE)
		if width > limit || height > limit || depth > c.GetInteger(gl.MAX_ARRAY_TEXTURE_LAYERS) {
			c.setError(gl.INVALID_VALUE)
			return
		}
		ml = maxLevels(width, height)
	default:
		c.setError(gl.INVALID_ENUM)
		return
	}
	c.texStorage(target, levels, internalFormat, width, height, depth, ml)
}

func (c *Context) texStorage(target gl.Enum, levels int, internalFormat gl.Enum, width, height, depth, maxLevels int) {
	tx := c.boundTexture(target)
	if tx == nil || tx.Allocated() {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	if levels < 1 || width < 1 || height < 1 || depth < 1 {
		c.setError(gl.INVALID_VALUE)
		return
	}
	if levels > maxLevels {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	if c.OutOfMemory {
		c.setError(gl.OUT_OF_MEMORY)
		return
	}
	tx.Format = internalFormat
	tx.Levels = levels
	tx.Width, tx.Height, tx.Depth = width, height, depth
}

func isCubeFace(target gl.Enum) bool {
	return target >= gl.TEXTURE_CUBE_MAP_POSITIVE_X && target <= gl.TEXTURE_CUBE_MAP_NEGATIVE_Z
}

func formatComponents(format gl.Enum) int {
	switch format {
	case gl.RED, gl.RED_INTEGER, gl.DEPTH_COMPONENT, gl.DEPTH_STENCIL:
		return 1
	case gl.RG, gl.RG_INTEGER:
		return 2
	case gl.RGB, gl.RGB_INTEGER:
		return 3
	case gl.RGBA, gl.RGBA_INTEGER:
		return 4
	}
	return 0
}

func typeSize(typ gl.Enum) int {
	switch typ {
	case gl.BYTE, gl.UNSIGNED_BYTE:
		return 1
	case gl.SHORT, gl.UNSIGNED_SHORT, gl.HALF_FLOAT:
		return 2
	case gl.INT, gl.UNSIGNED_INT, gl.FLOAT, gl.UNSIGNED_INT_24_8:
		return 4
	case gl.FLOAT_32_UNSIGNED_INT_24_8_REV:
		return 8
	}
	return 0
}

// uploadSize returns the minimum number of bytes for a region
// under the current unpack alignment.
func (c *Context) uploadSize(w, h, d int, format, typ gl.Enum) int {
	px := formatComponents(format) * typeSize(typ)
	if typ == gl.UNSIGNED_INT_24_8 || typ == gl.FLOAT_32_UNSIGNED_INT_24_8_REV {
		px = typeSize(typ)
	}
	row := w * px
	align := max(1, c.Unpack[gl.UNPACK_ALIGNMENT])
	padded := (row + align - 1) / align * align
	rows := h * d
	if rows == 0 {
		return 0
	}
	return (rows-1)*padded + row
}

func (c *Context) TexSubImage2D(target gl.Enum, level, x, y, width, height int, format, typ gl.Enum, data []byte) {
	c.call("TexSubImage2D")
	bind := target
	if isCubeFace(target) {
		bind = gl.TEXTURE_CUBE_MAP
	} else if target != gl.TEXTURE_2D {
		c.setError(gl.INVALID_ENUM)
		return
	}
	c.texSubImage(bind, target, level, x, y, 0, width, height, 1, format, typ, data)
}

func (c *Context) TexSubImage3D(target gl.Enum, level, x, y, z, width, height, depth int, format, typ gl.Enum, data []byte) {
	c.call("TexSubImage3D")
	if target != gl.TEXTURE_3D && target != gl.TEXTURE_2D_ARRAY {
		c.setError(gl.INVALID_ENUM)
		return
	}
	c.texSubImage(target, target, level, x, y, z, width, height, depth, format, typ, data)
}

func (c *Context) texSubImage(bind, target gl.Enum, level, x, y, z, width, height, depth int, format, typ gl.Enum, data []byte) {
	tx := c.boundTexture(bind)
	if tx == nil || !tx.Allocated() {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	if level < 0 || level >= tx.Levels {
		c.setError(gl.INVALID_VALUE)
		return
	}
	lw, lh, ld := tx.LevelSize(level)
	if x < 0 || y < 0 || z < 0 || x+width > lw || y+height > lh || z+depth > ld {
		c.setError(gl.INVALID_VALUE)
		return
	}
	if formatComponents(format) == 0 || typeSize(typ) == 0 {
		c.setError(gl.INVALID_ENUM)
		return
	}
	if data != nil && len(data) < c.uploadSize(width, height, depth, format, typ) {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	tx.Uploads = append(tx.Uploads, Upload{
		Target: target, Level: level,
		X: x, Y: y, Z: z, W: width, H: height, D: depth,
		Format: format, Type: typ, Data: slices.Clone(data),
	})
}

func (c *Context) TexParameteri(target, pname gl.Enum, param int) {
	c.call("TexParameteri")
	tx := c.boundTexture(target)
	if tx == nil {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	tx.Params[pname] = param
}

func (c *Context) GenerateMipmap(target gl.Enum) {
	c.call("GenerateMipmap")
	tx := c.boundTexture(target)
	if tx == nil || !tx.Allocated() {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	tx.GeneratedMipmaps++
}

//////// Renderbuffers

func (c *Context) CreateRenderbuffer() gl.Renderbuffer {
	c.call("CreateRenderbuffer")
	if c.FailCreate {
		return gl.Renderbuffer{}
	}
	r := gl.Renderbuffer{V: c.newID()}
	c.Renderbuffers[r] = &Renderbuffer{}
	return r
}

func (c *Context) DeleteRenderbuffer(r gl.Renderbuffer) {
	c.call("DeleteRenderbuffer")
	delete(c.Renderbuffers, r)
	if c.Renderbuffer == r {
		c.Renderbuffer = gl.Renderbuffer{}
	}
}

func (c *Context) BindRenderbuffer(target gl.Enum, r gl.Renderbuffer) {
	c.call("BindRenderbuffer")
	if target != gl.RENDERBUFFER {
		c.setError(gl.INVALID_ENUM)
		return
	}
	if r.Valid() && c.Renderbuffers[r] == nil {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	c.Renderbuffer = r
}

func (c *Context) RenderbufferStorageMultisample(target gl.Enum, samples int, internalFormat gl.Enum, width, height int) {
	c.call("RenderbufferStorageMultisample")
	rb := c.Renderbuffers[c.Renderbuffer]
	if target != gl.RENDERBUFFER {
		c.setError(gl.INVALID_ENUM)
		return
	}
	if rb == nil {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	limit := c.GetInteger(gl.MAX_RENDERBUFFER_SIZE)
	if width < 1 || height < 1 || width > limit || height > limit || samples < 0 {
		c.setError(gl.INVALID_VALUE)
		return
	}
	if samples > c.GetInteger(gl.MAX_SAMPLES) {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	if c.OutOfMemory {
		c.setError(gl.OUT_OF_MEMORY)
		return
	}
	rb.Format = internalFormat
	rb.Width, rb.Height = width, height
	rb.Samples = samples
}
