// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glkit/gpu/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newColor(t *testing.T, dev *Device, size int) *Texture {
	t.Helper()
	tx, err := NewTexture(dev, size, size, Texture2D, 0, &TextureOptions{Levels: 1})
	require.NoError(t, err)
	return tx
}

func newDepth(t *testing.T, dev *Device, size int, format TextureFormat) *Texture {
	t.Helper()
	tx, err := NewTexture(dev, size, size, Texture2D, 0, &TextureOptions{Format: format, Levels: 1})
	require.NoError(t, err)
	return tx
}

func TestFramebuffer(t *testing.T) {
	dev, ctx, _ := newTestDevice(t)
	c0, c1 := newColor(t, dev, 64), newColor(t, dev, 64)
	rb, err := NewRenderbuffer(dev, 64, 64, &RenderbufferOptions{Format: Depth24Stencil8})
	require.NoError(t, err)
	depth := RenderbufferAttachment(rb)
	fb, err := NewFramebuffer(dev, "gbuffer", []Attachment{TextureAttachment(c0), TextureAttachment(c1)}, &depth, nil)
	require.NoError(t, err)
	assert.Equal(t, 64, fb.Width)
	assert.Equal(t, 64, fb.Height)
	assert.False(t, ctx.DrawFramebuffer.Valid(), "binding is restored")

	nf := ctx.Framebuffers[fb.Framebuffer]
	require.NotNil(t, nf)
	assert.Equal(t, c0.Texture, nf.Attachments[gl.COLOR_ATTACHMENT0].Texture)
	assert.Equal(t, c1.Texture, nf.Attachments[gl.COLOR_ATTACHMENT0+1].Texture)
	assert.Equal(t, rb.Renderbuffer, nf.Attachments[gl.DEPTH_STENCIL_ATTACHMENT].Renderbuffer)
	assert.Equal(t, []gl.Enum{gl.COLOR_ATTACHMENT0, gl.COLOR_ATTACHMENT0 + 1}, nf.DrawBuffers)

	fb.Delete()
	assert.False(t, fb.Framebuffer.Valid())
	assert.Empty(t, ctx.Framebuffers)
}

func TestFramebufferDepthOnly(t *testing.T) {
	dev, ctx, _ := newTestDevice(t)
	sm := newDepth(t, dev, 256, Depth32F)
	depth := TextureAttachment(sm)
	fb, err := NewFramebuffer(dev, "shadow", nil, &depth, nil)
	require.NoError(t, err)
	nf := ctx.Framebuffers[fb.Framebuffer]
	assert.Equal(t, []gl.Enum{gl.NONE}, nf.DrawBuffers)
	assert.Equal(t, sm.Texture, nf.Attachments[gl.DEPTH_ATTACHMENT].Texture)
}

func TestFramebufferDimensionMismatch(t *testing.T) {
	dev, ctx, _ := newTestDevice(t)
	color := newColor(t, dev, 128)
	dt := newDepth(t, dev, 64, Depth24)
	objects := ctx.Objects()
	depth := TextureAttachment(dt)
	_, err := NewFramebuffer(dev, "mismatch", []Attachment{TextureAttachment(color)}, &depth, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFramebufferIncomplete)
	var fe *FramebufferIncompleteError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, IncompleteDimensions, fe.Reason)
	assert.Contains(t, err.Error(), "128x128")
	assert.Contains(t, err.Error(), "64x64")
	assert.Equal(t, objects, ctx.Objects(), "no framebuffer is created")
}

func TestFramebufferErrors(t *testing.T) {
	dev, ctx, _ := newTestDevice(t)
	color := newColor(t, dev, 32)

	_, err := NewFramebuffer(dev, "none", nil, nil, nil)
	var fe *FramebufferIncompleteError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, IncompleteMissingAttachment, fe.Reason)

	st := TextureAttachment(color)
	_, err = NewFramebuffer(dev, "stencil", []Attachment{TextureAttachment(color)}, nil, &st)
	assert.ErrorIs(t, err, ErrStencilUnsupported)

	many := make([]Attachment, 5)
	for i := range many {
		many[i] = TextureAttachment(color)
	}
	_, err = NewFramebuffer(dev, "many", many, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidRange)

	notDepth := TextureAttachment(color)
	_, err = NewFramebuffer(dev, "format", nil, &notDepth, nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormatCombination)

	_, err = NewFramebuffer(dev, "level", []Attachment{TextureAttachment(color).AtLevel(3)}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidRange)

	ms, err := NewRenderbuffer(dev, 32, 32, &RenderbufferOptions{Samples: 4})
	require.NoError(t, err)
	ss, err := NewRenderbuffer(dev, 32, 32, &RenderbufferOptions{Format: Depth16})
	require.NoError(t, err)
	sd := RenderbufferAttachment(ss)
	_, err = NewFramebuffer(dev, "samples", []Attachment{RenderbufferAttachment(ms)}, &sd, nil)
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, IncompleteMultisample, fe.Reason)
	assert.Empty(t, ctx.Framebuffers)
}

func TestFramebufferNativeStatus(t *testing.T) {
	dev, ctx, _ := newTestDevice(t)
	color := newColor(t, dev, 32)
	ctx.Status = gl.FRAMEBUFFER_UNSUPPORTED
	_, err := NewFramebuffer(dev, "unsupported", []Attachment{TextureAttachment(color)}, nil, nil)
	var fe *FramebufferIncompleteError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, IncompleteUnsupported, fe.Reason)
	assert.Equal(t, gl.FRAMEBUFFER_UNSUPPORTED, fe.Status)
	assert.Empty(t, ctx.Framebuffers, "the framebuffer is deleted")
	assert.False(t, ctx.DrawFramebuffer.Valid())
}

func TestFramebufferLayers(t *testing.T) {
	dev, ctx, lr := newTestDevice(t)
	arr, err := NewTexture(dev, 32, 32, Texture2DArray, 4, nil)
	require.NoError(t, err)
	fb, err := NewFramebuffer(dev, "layers", []Attachment{TextureAttachment(arr)}, nil, nil)
	require.NoError(t, err)
	assert.True(t, lr.has("without a layer"))
	assert.True(t, fb.Color[0].IsLayer())

	nf := ctx.Framebuffers[fb.Framebuffer]
	assert.Equal(t, 0, nf.Attachments[gl.COLOR_ATTACHMENT0].Layer)

	require.NoError(t, fb.UpdateLayer(0, 2, 0))
	assert.Equal(t, 2, nf.Attachments[gl.COLOR_ATTACHMENT0].Layer)
	calls := ctx.Calls["FramebufferTextureLayer"]
	require.NoError(t, fb.UpdateLayer(0, 2, 0))
	assert.Equal(t, calls, ctx.Calls["FramebufferTextureLayer"], "no-op when unchanged")
	assert.False(t, ctx.DrawFramebuffer.Valid())

	assert.ErrorIs(t, fb.UpdateLayer(0, 4, 0), ErrInvalidRange)
	assert.ErrorIs(t, fb.UpdateLayer(1, 0, 0), ErrInvalidRange)
	assert.ErrorIs(t, fb.UpdateLayer(0, 1, 1), ErrFramebufferIncomplete)
	assert.Equal(t, 2, fb.Color[0].Layer)
}

func TestFramebufferCubeFace(t *testing.T) {
	dev, ctx, _ := newTestDevice(t)
	cube, err := NewTexture(dev, 16, 16, TextureCube, 0, &TextureOptions{Levels: 1})
	require.NoError(t, err)
	fb, err := NewFramebuffer(dev, "face", []Attachment{CubeFaceAttachment(cube, NegativeZ)}, nil, nil)
	require.NoError(t, err)
	at := ctx.Framebuffers[fb.Framebuffer].Attachments[gl.COLOR_ATTACHMENT0]
	assert.Equal(t, gl.TEXTURE_CUBE_MAP_NEGATIVE_Z, at.TexTarget)

	_, err = NewFramebuffer(dev, "noface", []Attachment{LayerAttachment(cube, 1)}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestRenderbuffer(t *testing.T) {
	dev, ctx, _ := newTestDevice(t)
	rb, err := NewRenderbuffer(dev, 100, 50, &RenderbufferOptions{Format: RGBA8, Samples: 4})
	require.NoError(t, err)
	nr := ctx.Renderbuffers[rb.Renderbuffer]
	require.NotNil(t, nr)
	assert.Equal(t, 4, nr.Samples)
	assert.Equal(t, gl.RGBA8, nr.Format)
	assert.False(t, ctx.Renderbuffer.Valid())

	_, err = NewRenderbuffer(dev, 0, 50, nil)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = NewRenderbuffer(dev, 16, 16, &RenderbufferOptions{Samples: 16})
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = NewRenderbuffer(dev, 16, 16, &RenderbufferOptions{Format: R32UI, Samples: 2})
	assert.ErrorIs(t, err, ErrUnsupportedFormatCombination)

	rb.Delete()
	assert.Empty(t, ctx.Renderbuffers)
}
