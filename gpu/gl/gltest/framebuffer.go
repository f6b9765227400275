// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltest

import (
	"maps"
	"slices"

	"cogentcore.org/glkit/gpu/gl"
)

// Framebuffer is a framebuffer object.
type Framebuffer struct {
	Attachments map[gl.Enum]Attachment
	DrawBuffers []gl.Enum
}

// Attachment is one framebuffer attachment point.
type Attachment struct {
	Texture      gl.Texture
	TexTarget    gl.Enum
	Level        int
	Layer        int
	Layered      bool
	Renderbuffer gl.Renderbuffer
}

func (c *Context) CreateFramebuffer() gl.Framebuffer {
	c.call("CreateFramebuffer")
	if c.FailCreate {
		return gl.Framebuffer{}
	}
	f := gl.Framebuffer{V: c.newID()}
	c.Framebuffers[f] = &Framebuffer{Attachments: map[gl.Enum]Attachment{}}
	return f
}

func (c *Context) DeleteFramebuffer(f gl.Framebuffer) {
	c.call("DeleteFramebuffer")
	delete(c.Framebuffers, f)
	if c.DrawFramebuffer == f {
		c.DrawFramebuffer = gl.Framebuffer{}
	}
	if c.ReadFramebuffer == f {
		c.ReadFramebuffer = gl.Framebuffer{}
	}
}

func (c *Context) BindFramebuffer(target gl.Enum, f gl.Framebuffer) {
	c.call("BindFramebuffer")
	if f.Valid() && c.Framebuffers[f] == nil {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	switch target {
	case gl.FRAMEBUFFER:
		c.DrawFramebuffer = f
		c.ReadFramebuffer = f
	case gl.DRAW_FRAMEBUFFER:
		c.DrawFramebuffer = f
	case gl.READ_FRAMEBUFFER:
		c.ReadFramebuffer = f
	default:
		c.setError(gl.INVALID_ENUM)
	}
}

func (c *Context) boundFramebuffer(target gl.Enum) (gl.Framebuffer, bool) {
	switch target {
	case gl.FRAMEBUFFER, gl.DRAW_FRAMEBUFFER:
		return c.DrawFramebuffer, true
	case gl.READ_FRAMEBUFFER:
		return c.ReadFramebuffer, true
	}
	c.setError(gl.INVALID_ENUM)
	return gl.Framebuffer{}, false
}

func (c *Context) attachTarget(target gl.Enum) *Framebuffer {
	f, ok := c.boundFramebuffer(target)
	if !ok {
		return nil
	}
	fb := c.Framebuffers[f]
	if fb == nil {
		c.setError(gl.INVALID_OPERATION)
	}
	return fb
}

func (c *Context) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int) {
	c.call("FramebufferTexture2D")
	fb := c.attachTarget(target)
	if fb == nil {
		return
	}
	if !t.Valid() {
		delete(fb.Attachments, attachment)
		return
	}
	tx := c.Textures[t]
	if tx == nil {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	switch {
	case tx.Target == gl.TEXTURE_2D && texTarget == gl.TEXTURE_2D:
	case tx.Target == gl.TEXTURE_CUBE_MAP && isCubeFace(texTarget):
	default:
		c.setError(gl.INVALID_OPERATION)
		return
	}
	if level < 0 {
		c.setError(gl.INVALID_VALUE)
		return
	}
	fb.Attachments[attachment] = Attachment{Texture: t, TexTarget: texTarget, Level: level}
}

func (c *Context) FramebufferTextureLayer(target, attachment gl.Enum, t gl.Texture, level, layer int) {
	c.call("FramebufferTextureLayer")
	fb := c.attachTarget(target)
	if fb == nil {
		return
	}
	if !t.Valid() {
		delete(fb.Attachments, attachment)
		return
	}
	tx := c.Textures[t]
	if tx == nil || (tx.Target != gl.TEXTURE_3D && tx.Target != gl.TEXTURE_2D_ARRAY) {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	if level < 0 || layer < 0 {
		c.setError(gl.INVALID_VALUE)
		return
	}
	fb.Attachments[attachment] = Attachment{Texture: t, TexTarget: tx.Target, Level: level, Layer: layer, Layered: true}
}

func (c *Context) FramebufferRenderbuffer(target, attachment, rbTarget gl.Enum, r gl.Renderbuffer) {
	c.call("FramebufferRenderbuffer")
	fb := c.attachTarget(target)
	if fb == nil {
		return
	}
	if rbTarget != gl.RENDERBUFFER {
		c.setError(gl.INVALID_ENUM)
		return
	}
	if !r.Valid() {
		delete(fb.Attachments, attachment)
		return
	}
	if c.Renderbuffers[r] == nil {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	fb.Attachments[attachment] = Attachment{Renderbuffer: r}
}

func (c *Context) DrawBuffers(bufs []gl.Enum) {
	c.call("DrawBuffers")
	fb := c.Framebuffers[c.DrawFramebuffer]
	if fb == nil {
		return
	}
	fb.DrawBuffers = append([]gl.Enum(nil), bufs...)
}

// attachmentState returns the size and sample count of an attachment,
// and whether it refers to complete storage.
func (c *Context) attachmentState(a Attachment) (w, h, samples int, ok bool) {
	if a.Renderbuffer.Valid() {
		rb := c.Renderbuffers[a.Renderbuffer]
		if rb == nil || !rb.Allocated() {
			return 0, 0, 0, false
		}
		return rb.Width, rb.Height, rb.Samples, true
	}
	tx := c.Textures[a.Texture]
	if tx == nil || !tx.Allocated() || a.Level >= tx.Levels {
		return 0, 0, 0, false
	}
	lw, lh, ld := tx.LevelSize(a.Level)
	if a.Layered && a.Layer >= ld {
		return 0, 0, 0, false
	}
	return lw, lh, 0, true
}

func (c *Context) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	c.call("CheckFramebufferStatus")
	f, ok := c.boundFramebuffer(target)
	if !ok {
		return 0
	}
	if !f.Valid() {
		return gl.FRAMEBUFFER_COMPLETE
	}
	if c.Status != 0 {
		return c.Status
	}
	fb := c.Framebuffers[f]
	if len(fb.Attachments) == 0 {
		return gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT
	}
	first := true
	var w, h, samples int
	status := gl.FRAMEBUFFER_COMPLETE
	for _, pt := range slices.Sorted(maps.Keys(fb.Attachments)) {
		aw, ah, as, ok := c.attachmentState(fb.Attachments[pt])
		if !ok {
			return gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
		}
		if first {
			w, h, samples = aw, ah, as
			first = false
			continue
		}
		if aw != w || ah != h {
			status = gl.FRAMEBUFFER_INCOMPLETE_DIMENSIONS
		} else if as != samples && status == gl.FRAMEBUFFER_COMPLETE {
			status = gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE
		}
	}
	return status
}
