// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/glkit/gpu/gl"
)

// RenderbufferOptions configures [NewRenderbuffer].
type RenderbufferOptions struct {
	// Name of the renderbuffer, for messages.
	Name string

	// Format is the internal format.
	Format TextureFormat

	// Samples is the number of multisample samples; 0 is single sampled.
	Samples int
}

// Defaults sets the default values.
func (ro *RenderbufferOptions) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(ro))
}

// Renderbuffer is render target storage that cannot be sampled.
type Renderbuffer struct {
	// Name of the renderbuffer, for messages.
	Name string

	// Renderbuffer is the native renderbuffer.
	Renderbuffer gl.Renderbuffer

	Width, Height int

	// Format is the internal format.
	Format TextureFormat

	// Samples is the number of multisample samples.
	Samples int

	dev *Device
}

// Delete releases the native renderbuffer.
func (rb *Renderbuffer) Delete() {
	if rb.Renderbuffer.Valid() {
		rb.dev.GL.DeleteRenderbuffer(rb.Renderbuffer)
		rb.Renderbuffer = gl.Renderbuffer{}
	}
}

// NewRenderbuffer allocates a renderbuffer of the given size.
func NewRenderbuffer(dev *Device, width, height int, opts *RenderbufferOptions) (*Renderbuffer, error) {
	if opts == nil {
		opts = &RenderbufferOptions{}
		opts.Defaults()
	}
	rb := &Renderbuffer{Name: opts.Name, Width: width, Height: height, Format: opts.Format, Samples: opts.Samples, dev: dev}
	errPrefix := "gpu.NewRenderbuffer " + rb.Name
	limit := dev.Caps.MaxRenderbufferSize
	switch {
	case !rb.Format.Valid():
		return nil, fmt.Errorf("%s: %w: unknown format %d", errPrefix, ErrUnsupportedFormatCombination, rb.Format)
	case width < 1 || height < 1 || width > limit || height > limit:
		return nil, fmt.Errorf("%s: %w: %dx%d is not within 1-%d", errPrefix, ErrInvalidDimensions, width, height, limit)
	case rb.Samples < 0 || rb.Samples > dev.Caps.MaxSamples:
		return nil, fmt.Errorf("%s: %w: %d samples is not in 0-%d", errPrefix, ErrInvalidRange, rb.Samples, dev.Caps.MaxSamples)
	case rb.Samples > 0 && rb.Format.IsInteger():
		return nil, fmt.Errorf("%s: %w: integer format %s cannot be multisampled", errPrefix, ErrUnsupportedFormatCombination, rb.Format)
	}

	ctx := dev.GL
	drainErrors(ctx)
	rb.Renderbuffer = ctx.CreateRenderbuffer()
	if !rb.Renderbuffer.Valid() {
		return nil, fmt.Errorf("%s: %w: could not create renderbuffer", errPrefix, ErrAllocationFailure)
	}
	ctx.BindRenderbuffer(gl.RENDERBUFFER, rb.Renderbuffer)
	ctx.RenderbufferStorageMultisample(gl.RENDERBUFFER, rb.Samples, rb.Format.Internal(), width, height)
	ctx.BindRenderbuffer(gl.RENDERBUFFER, gl.Renderbuffer{})
	if err := nativeError(ctx, ErrAllocationFailure, errPrefix); err != nil {
		ctx.DeleteRenderbuffer(rb.Renderbuffer)
		return nil, err
	}
	return rb, nil
}
