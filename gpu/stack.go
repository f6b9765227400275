// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/glkit/gpu/gl"
)

// FramebufferStack tracks nested render targets. Pushing binds a
// framebuffer with a viewport covering it; popping rebinds whatever
// was underneath, down to the default framebuffer.
type FramebufferStack struct {
	dev   *Device
	stack []*Framebuffer
}

// NewFramebufferStack returns an empty stack on dev.
func NewFramebufferStack(dev *Device) *FramebufferStack {
	return &FramebufferStack{dev: dev}
}

// Len returns the number of framebuffers on the stack.
func (fs *FramebufferStack) Len() int { return len(fs.stack) }

// Top returns the current framebuffer, or nil when rendering to the
// default framebuffer.
func (fs *FramebufferStack) Top() *Framebuffer {
	if len(fs.stack) == 0 {
		return nil
	}
	return fs.stack[len(fs.stack)-1]
}

// Push binds fb and sets the viewport to its size. It does nothing
// if fb is already on top. If fb cannot be bound, the previous
// target is restored and the error returned. A deleted framebuffer
// is rejected.
func (fs *FramebufferStack) Push(fb *Framebuffer) error {
	if fb == nil {
		return fmt.Errorf("gpu.FramebufferStack.Push: %w: nil framebuffer", ErrEmptyData)
	}
	if !fb.Framebuffer.Valid() {
		return fmt.Errorf("gpu.FramebufferStack.Push %s: %w: framebuffer has been deleted", fb.Name, ErrEmptyData)
	}
	if fs.Top() == fb {
		return nil
	}
	fs.stack = append(fs.stack, fb)
	ctx := fs.dev.GL
	drainErrors(ctx)
	fs.bind(fb)
	err := nativeError(ctx, ErrFramebufferIncomplete, "gpu.FramebufferStack.Push "+fb.Name)
	if err == nil {
		err = fb.checkStatus()
	}
	if err != nil {
		fs.stack = fs.stack[:len(fs.stack)-1]
		fs.bind(fs.Top())
		return err
	}
	return nil
}

// Pop removes the top framebuffer and rebinds the one below it, or
// the default framebuffer with a viewport covering the canvas.
func (fs *FramebufferStack) Pop() error {
	if len(fs.stack) == 0 {
		return fmt.Errorf("gpu.FramebufferStack.Pop: %w", ErrStackEmpty)
	}
	fs.stack[len(fs.stack)-1] = nil
	fs.stack = fs.stack[:len(fs.stack)-1]
	fs.bind(fs.Top())
	return nil
}

// With pushes fb, calls fn and pops, returning the first error. If
// fb is already on top it is left there.
func (fs *FramebufferStack) With(fb *Framebuffer, fn func() error) error {
	before := fs.Len()
	if err := fs.Push(fb); err != nil {
		return err
	}
	pushed := fs.Len()
	err := fn()
	if fs.Len() != pushed {
		fs.dev.warn("gpu.FramebufferStack.With: unbalanced push and pop inside", "framebuffer", fb.Name, "depth", fs.Len(), "expected", pushed)
	}
	if pushed == before {
		// fb was already on top
		return err
	}
	if perr := fs.Pop(); err == nil {
		err = perr
	}
	return err
}

// bind binds fb, or the default framebuffer if nil. A framebuffer
// deleted while on the stack binds the default framebuffer.
func (fs *FramebufferStack) bind(fb *Framebuffer) {
	dev := fs.dev
	if fb != nil && !fb.Framebuffer.Valid() {
		dev.warn("gpu.FramebufferStack: framebuffer deleted while on the stack, using the default framebuffer", "framebuffer", fb.Name)
		fb = nil
	}
	if fb == nil {
		dev.bindFramebuffer(gl.Framebuffer{})
		w, h := dev.GL.DrawingBufferSize()
		dev.setViewport(0, 0, w, h)
		return
	}
	dev.bindFramebuffer(fb.Framebuffer)
	dev.setViewport(0, 0, fb.Width, fb.Height)
}
