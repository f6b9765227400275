// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"cogentcore.org/glkit/gpu/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTarget(t *testing.T, dev *Device, name string, size int) *Framebuffer {
	t.Helper()
	fb, err := NewFramebuffer(dev, name, []Attachment{TextureAttachment(newColor(t, dev, size))}, nil, nil)
	require.NoError(t, err)
	return fb
}

func TestFramebufferStack(t *testing.T) {
	dev, ctx, _ := newTestDevice(t)
	a := newTarget(t, dev, "a", 64)
	b := newTarget(t, dev, "b", 32)
	fs := NewFramebufferStack(dev)
	assert.Nil(t, fs.Top())

	require.NoError(t, fs.Push(a))
	assert.Equal(t, a.Framebuffer, ctx.DrawFramebuffer)
	assert.Equal(t, [4]int{0, 0, 64, 64}, ctx.ViewportRect)

	require.NoError(t, fs.Push(b))
	assert.Equal(t, b.Framebuffer, ctx.DrawFramebuffer)
	assert.Equal(t, [4]int{0, 0, 32, 32}, ctx.ViewportRect)
	assert.Equal(t, 2, fs.Len())

	require.NoError(t, fs.Push(b))
	assert.Equal(t, 2, fs.Len(), "pushing the top again does nothing")

	require.NoError(t, fs.Pop())
	assert.Equal(t, a, fs.Top())
	assert.Equal(t, a.Framebuffer, ctx.DrawFramebuffer)
	assert.Equal(t, [4]int{0, 0, 64, 64}, ctx.ViewportRect)

	require.NoError(t, fs.Pop())
	assert.False(t, ctx.DrawFramebuffer.Valid())
	assert.Equal(t, [4]int{0, 0, 640, 480}, ctx.ViewportRect)

	assert.ErrorIs(t, fs.Pop(), ErrStackEmpty)
	assert.ErrorIs(t, fs.Push(nil), ErrEmptyData)
}

func TestFramebufferStackDeleted(t *testing.T) {
	dev, ctx, lr := newTestDevice(t)
	a := newTarget(t, dev, "a", 64)
	b := newTarget(t, dev, "b", 32)
	c := newTarget(t, dev, "c", 16)
	fs := NewFramebufferStack(dev)

	c.Delete()
	assert.ErrorIs(t, fs.Push(c), ErrEmptyData)
	assert.Equal(t, 0, fs.Len())
	assert.False(t, ctx.DrawFramebuffer.Valid())

	require.NoError(t, fs.Push(a))
	require.NoError(t, fs.Push(b))
	a.Delete()
	require.NoError(t, fs.Pop())
	assert.True(t, lr.has("deleted while on the stack"))
	assert.False(t, ctx.DrawFramebuffer.Valid())
	assert.Equal(t, [4]int{0, 0, 640, 480}, ctx.ViewportRect)
	require.NoError(t, fs.Pop())
	assert.Equal(t, 0, fs.Len())
}

func TestFramebufferStackIncomplete(t *testing.T) {
	dev, ctx, _ := newTestDevice(t)
	a := newTarget(t, dev, "a", 64)
	b := newTarget(t, dev, "b", 32)
	fs := NewFramebufferStack(dev)
	require.NoError(t, fs.Push(a))

	ctx.Status = gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
	err := fs.Push(b)
	assert.ErrorIs(t, err, ErrFramebufferIncomplete)
	assert.Equal(t, 1, fs.Len())
	assert.Equal(t, a.Framebuffer, ctx.DrawFramebuffer)
	assert.Equal(t, [4]int{0, 0, 64, 64}, ctx.ViewportRect)
}

func TestFramebufferStackWith(t *testing.T) {
	dev, ctx, lr := newTestDevice(t)
	a := newTarget(t, dev, "a", 64)
	b := newTarget(t, dev, "b", 16)
	fs := NewFramebufferStack(dev)

	err := fs.With(a, func() error {
		assert.Equal(t, a.Framebuffer, ctx.DrawFramebuffer)
		return fs.With(b, func() error {
			assert.Equal(t, [4]int{0, 0, 16, 16}, ctx.ViewportRect)
			return nil
		})
	})
	require.NoError(t, err)
	assert.Zero(t, fs.Len())
	assert.False(t, ctx.DrawFramebuffer.Valid())

	require.NoError(t, fs.Push(a))
	require.NoError(t, fs.With(a, func() error { return nil }))
	assert.Equal(t, 1, fs.Len(), "a is left on top")

	require.NoError(t, fs.With(b, func() error { return fs.Push(a) }))
	assert.True(t, lr.has("unbalanced"))
}
