// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/glkit/gpu/gl"
)

type attachmentKind int32

const (
	attachTexture attachmentKind = iota
	attachLayer
	attachCubeFace
	attachRenderbuffer
)

// Attachment is one framebuffer render target: a texture level,
// a texture layer, a cube face, or a renderbuffer. Make one with
// [TextureAttachment], [LayerAttachment], [CubeFaceAttachment] or
// [RenderbufferAttachment].
type Attachment struct {
	kind attachmentKind

	// Texture is the target texture, nil for a renderbuffer.
	Texture *Texture

	// Renderbuffer is the target renderbuffer, nil for a texture.
	Renderbuffer *Renderbuffer

	// Level is the mip level of a texture target.
	Level int

	// Layer is the slice of a 3D or array texture target.
	Layer int

	// Face is the face of a cube texture target.
	Face CubeFace
}

// TextureAttachment targets level 0 of a 2D texture.
func TextureAttachment(tx *Texture) Attachment {
	return Attachment{kind: attachTexture, Texture: tx}
}

// LayerAttachment targets one slice of a 3D or array texture.
func LayerAttachment(tx *Texture, layer int) Attachment {
	return Attachment{kind: attachLayer, Texture: tx, Layer: layer}
}

// CubeFaceAttachment targets one face of a cube texture.
func CubeFaceAttachment(tx *Texture, face CubeFace) Attachment {
	return Attachment{kind: attachCubeFace, Texture: tx, Face: face}
}

// RenderbufferAttachment targets a renderbuffer.
func RenderbufferAttachment(rb *Renderbuffer) Attachment {
	return Attachment{kind: attachRenderbuffer, Renderbuffer: rb}
}

// AtLevel returns the attachment targeting the given mip level.
func (a Attachment) AtLevel(level int) Attachment {
	a.Level = level
	return a
}

// IsLayer reports whether the attachment targets a texture slice.
func (a *Attachment) IsLayer() bool { return a.kind == attachLayer }

// Format returns the format of the target.
func (a *Attachment) Format() TextureFormat {
	if a.Renderbuffer != nil {
		return a.Renderbuffer.Format
	}
	return a.Texture.Format
}

// Size returns the size of the target.
func (a *Attachment) Size() (width, height int) {
	if a.Renderbuffer != nil {
		return a.Renderbuffer.Width, a.Renderbuffer.Height
	}
	w, h, _ := a.Texture.LevelSize(a.Level)
	return w, h
}

// Samples returns the multisample count of the target.
func (a *Attachment) Samples() int {
	if a.Renderbuffer != nil {
		return a.Renderbuffer.Samples
	}
	return 0
}

// resolve checks the attachment against its target, converting a
// whole-texture attachment of a layered or cube texture to its first
// layer or face.
func (a *Attachment) resolve(dev *Device, fb, slot string) error {
	if a.kind == attachRenderbuffer {
		if a.Renderbuffer == nil {
			return fmt.Errorf("%w: %s has no renderbuffer", ErrInvalidRange, slot)
		}
		return nil
	}
	tx := a.Texture
	if tx == nil {
		return fmt.Errorf("%w: %s has no texture", ErrInvalidRange, slot)
	}
	if a.kind == attachTexture {
		switch tx.Kind {
		case Texture3D, Texture2DArray:
			dev.warn("gpu.NewFramebuffer: layered texture attached without a layer, using layer 0", "framebuffer", fb, "attachment", slot, "texture", tx.Name)
			a.kind = attachLayer
			a.Layer = 0
		case TextureCube:
			dev.warn("gpu.NewFramebuffer: cube texture attached without a face, using PositiveX", "framebuffer", fb, "attachment", slot, "texture", tx.Name)
			a.kind = attachCubeFace
			a.Face = PositiveX
		}
	}
	switch {
	case a.Level < 0 || a.Level >= tx.Levels:
		return fmt.Errorf("%w: %s level %d is not in 0-%d", ErrInvalidRange, slot, a.Level, tx.Levels-1)
	case a.kind == attachLayer && !tx.Kind.Layered():
		return fmt.Errorf("%w: %s targets a layer of a %s texture", ErrInvalidRange, slot, tx.Kind)
	case a.kind == attachCubeFace && tx.Kind != TextureCube:
		return fmt.Errorf("%w: %s targets a face of a %s texture", ErrInvalidRange, slot, tx.Kind)
	case a.kind == attachCubeFace && !a.Face.Valid():
		return fmt.Errorf("%w: %s face %d", ErrInvalidRange, slot, a.Face)
	}
	if a.kind == attachLayer {
		_, _, d := tx.LevelSize(a.Level)
		if a.Layer < 0 || a.Layer >= d {
			return fmt.Errorf("%w: %s layer %d is not in 0-%d", ErrInvalidRange, slot, a.Layer, d-1)
		}
	}
	return nil
}

// attach attaches the target to the bound framebuffer at point.
func (a *Attachment) attach(ctx gl.Context, point gl.Enum) {
	switch a.kind {
	case attachRenderbuffer:
		ctx.FramebufferRenderbuffer(gl.FRAMEBUFFER, point, gl.RENDERBUFFER, a.Renderbuffer.Renderbuffer)
	case attachLayer:
		ctx.FramebufferTextureLayer(gl.FRAMEBUFFER, point, a.Texture.Texture, a.Level, a.Layer)
	case attachCubeFace:
		ctx.FramebufferTexture2D(gl.FRAMEBUFFER, point, a.Face.GL(), a.Texture.Texture, a.Level)
	default:
		ctx.FramebufferTexture2D(gl.FRAMEBUFFER, point, gl.TEXTURE_2D, a.Texture.Texture, a.Level)
	}
}

// DepthSlot is the slot index of the depth attachment in
// [Framebuffer.UpdateLayer].
const DepthSlot = -1

// Framebuffer is a validated set of render targets of equal size.
type Framebuffer struct {
	// Name of the framebuffer, for messages.
	Name string

	// Framebuffer is the native framebuffer.
	Framebuffer gl.Framebuffer

	// Color are the color attachments, in draw buffer order.
	Color []Attachment

	// Depth is the depth attachment, or nil.
	Depth *Attachment

	// Width and Height are the common size of all attachments.
	Width, Height int

	// Samples is the common multisample count.
	Samples int

	dev *Device
}

// NewFramebuffer validates the attachments and creates a framebuffer
// rendering to them. Stencil attachments are not supported; a depth
// format with stencil bits is attached to the combined depth-stencil
// point. The caller's framebuffer binding is restored.
func NewFramebuffer(dev *Device, name string, color []Attachment, depth, stencil *Attachment) (*Framebuffer, error) {
	errPrefix := "gpu.NewFramebuffer " + name
	if stencil != nil {
		return nil, fmt.Errorf("%s: %w", errPrefix, ErrStencilUnsupported)
	}
	fb := &Framebuffer{Name: name, Color: append([]Attachment(nil), color...), dev: dev}
	if depth != nil {
		d := *depth
		fb.Depth = &d
	}
	if err := fb.validate(); err != nil {
		return nil, err
	}

	ctx := dev.GL
	drainErrors(ctx)
	fb.Framebuffer = ctx.CreateFramebuffer()
	if !fb.Framebuffer.Valid() {
		return nil, fmt.Errorf("%s: %w: could not create framebuffer", errPrefix, ErrAllocationFailure)
	}
	prev := dev.Framebuffer()
	dev.bindFramebuffer(fb.Framebuffer)
	defer dev.bindFramebuffer(prev)
	bufs := make([]gl.Enum, len(fb.Color))
	for i := range fb.Color {
		bufs[i] = gl.COLOR_ATTACHMENT0 + gl.Enum(i)
		fb.Color[i].attach(ctx, bufs[i])
	}
	if fb.Depth != nil {
		fb.Depth.attach(ctx, fb.depthPoint())
	}
	if len(bufs) == 0 {
		bufs = []gl.Enum{gl.NONE}
	}
	ctx.DrawBuffers(bufs)
	if err := nativeError(ctx, ErrAllocationFailure, errPrefix); err != nil {
		ctx.DeleteFramebuffer(fb.Framebuffer)
		return nil, err
	}
	if err := fb.checkStatus(); err != nil {
		ctx.DeleteFramebuffer(fb.Framebuffer)
		return nil, err
	}
	return fb, nil
}

// Delete releases the native framebuffer. The attachments are not
// deleted. A deleted framebuffer can no longer be pushed on a
// [FramebufferStack], and one still on a stack is replaced by the
// default framebuffer when it is rebound.
func (fb *Framebuffer) Delete() {
	if !fb.Framebuffer.Valid() {
		return
	}
	if fb.dev.Framebuffer() == fb.Framebuffer {
		fb.dev.bindFramebuffer(gl.Framebuffer{})
	}
	fb.dev.GL.DeleteFramebuffer(fb.Framebuffer)
	fb.Framebuffer = gl.Framebuffer{}
}

func (fb *Framebuffer) depthPoint() gl.Enum {
	if fb.Depth.Format().HasStencil() {
		return gl.DEPTH_STENCIL_ATTACHMENT
	}
	return gl.DEPTH_ATTACHMENT
}

// validate checks attachment kinds, formats, sizes and sample counts
// before any native object is created.
func (fb *Framebuffer) validate() error {
	dev := fb.dev
	errPrefix := "gpu.NewFramebuffer " + fb.Name
	if len(fb.Color) == 0 && fb.Depth == nil {
		return &FramebufferIncompleteError{Name: fb.Name, Reason: IncompleteMissingAttachment}
	}
	if n := min(dev.Caps.MaxColorAttachments, dev.Caps.MaxDrawBuffers); len(fb.Color) > n {
		return fmt.Errorf("%s: %w: %d color attachments exceeds the %d limit", errPrefix, ErrInvalidRange, len(fb.Color), n)
	}
	type sized struct {
		slot       string
		w, h, samp int
	}
	var all []sized
	for i := range fb.Color {
		a := &fb.Color[i]
		slot := fmt.Sprintf("color %d", i)
		if err := a.resolve(dev, fb.Name, slot); err != nil {
			return fmt.Errorf("%s: %w", errPrefix, err)
		}
		if a.Format().IsDepth() {
			return fmt.Errorf("%s: %w: %s has depth format %s", errPrefix, ErrUnsupportedFormatCombination, slot, a.Format())
		}
		w, h := a.Size()
		all = append(all, sized{slot, w, h, a.Samples()})
	}
	if fb.Depth != nil {
		if err := fb.Depth.resolve(dev, fb.Name, "depth"); err != nil {
			return fmt.Errorf("%s: %w", errPrefix, err)
		}
		if !fb.Depth.Format().IsDepth() {
			return fmt.Errorf("%s: %w: depth has color format %s", errPrefix, ErrUnsupportedFormatCombination, fb.Depth.Format())
		}
		w, h := fb.Depth.Size()
		all = append(all, sized{"depth", w, h, fb.Depth.Samples()})
	}
	first := all[0]
	for _, s := range all[1:] {
		if s.w != first.w || s.h != first.h {
			return &FramebufferIncompleteError{Name: fb.Name, Reason: IncompleteDimensions,
				Detail: fmt.Sprintf("%s is %dx%d, %s is %dx%d", first.slot, first.w, first.h, s.slot, s.w, s.h)}
		}
	}
	for _, s := range all[1:] {
		if s.samp != first.samp {
			return &FramebufferIncompleteError{Name: fb.Name, Reason: IncompleteMultisample,
				Detail: fmt.Sprintf("%s has %d samples, %s has %d", first.slot, first.samp, s.slot, s.samp)}
		}
	}
	fb.Width, fb.Height, fb.Samples = first.w, first.h, first.samp
	return nil
}

// checkStatus queries native completeness of the bound framebuffer.
func (fb *Framebuffer) checkStatus() error {
	st := fb.dev.GL.CheckFramebufferStatus(gl.FRAMEBUFFER)
	if st == gl.FRAMEBUFFER_COMPLETE {
		return nil
	}
	return &FramebufferIncompleteError{Name: fb.Name, Reason: reasonForStatus(st), Status: st}
}

// UpdateLayer points a layer attachment at a different layer and
// level. slot is a color attachment index or [DepthSlot]. It does
// nothing if the attachment already targets that layer and level.
func (fb *Framebuffer) UpdateLayer(slot, layer, level int) error {
	errPrefix := "gpu.Framebuffer.UpdateLayer " + fb.Name
	var a *Attachment
	switch {
	case slot == DepthSlot && fb.Depth != nil:
		a = fb.Depth
	case slot >= 0 && slot < len(fb.Color):
		a = &fb.Color[slot]
	default:
		return fmt.Errorf("%s: %w: no attachment in slot %d", errPrefix, ErrInvalidRange, slot)
	}
	if !a.IsLayer() {
		return fmt.Errorf("%s: %w: slot %d is not a layer attachment", errPrefix, ErrInvalidRange, slot)
	}
	if a.Layer == layer && a.Level == level {
		return nil
	}
	tx := a.Texture
	if level < 0 || level >= tx.Levels {
		return fmt.Errorf("%s: %w: level %d is not in 0-%d", errPrefix, ErrInvalidRange, level, tx.Levels-1)
	}
	if w, h, d := tx.LevelSize(level); layer < 0 || layer >= d {
		return fmt.Errorf("%s: %w: layer %d is not in 0-%d", errPrefix, ErrInvalidRange, layer, d-1)
	} else if w != fb.Width || h != fb.Height {
		return &FramebufferIncompleteError{Name: fb.Name, Reason: IncompleteDimensions,
			Detail: fmt.Sprintf("level %d is %dx%d, framebuffer is %dx%d", level, w, h, fb.Width, fb.Height)}
	}
	dev := fb.dev
	ctx := dev.GL
	drainErrors(ctx)
	prev := dev.Framebuffer()
	dev.bindFramebuffer(fb.Framebuffer)
	var point gl.Enum
	if slot == DepthSlot {
		point = fb.depthPoint()
	} else {
		point = gl.COLOR_ATTACHMENT0 + gl.Enum(slot)
	}
	ctx.FramebufferTextureLayer(gl.FRAMEBUFFER, point, tx.Texture, level, layer)
	dev.bindFramebuffer(prev)
	if err := nativeError(ctx, ErrAllocationFailure, errPrefix); err != nil {
		return err
	}
	a.Layer, a.Level = layer, level
	return nil
}
