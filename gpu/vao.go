// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"maps"
	"slices"

	"cogentcore.org/glkit/gpu/gl"
)

// AttributeRef names one attribute of an [AttributeBuffer].
type AttributeRef struct {
	Buffer *AttributeBuffer
	Name   string
}

// VAO is a vertex array object: attribute references bound to shader
// locations, plus the index buffer drawn with them.
type VAO struct {
	// Name of the VAO, for messages.
	Name string

	// Array is the native vertex array.
	Array gl.VertexArray

	// Indices is the element buffer.
	Indices *IndexBuffer

	// Locations maps the first location of each attribute to its
	// reference. A matrix attribute of width w also occupies the
	// following w-1 locations.
	Locations map[int]AttributeRef

	dev *Device
}

// Delete releases the native vertex array. The buffers are not
// deleted.
func (v *VAO) Delete() {
	if v.Array.Valid() {
		v.dev.GL.DeleteVertexArray(v.Array)
		v.Array = gl.VertexArray{}
	}
}

// Attribute returns the attribute bound at the given first location.
func (v *VAO) Attribute(loc int) (*Attribute, bool) {
	ref, ok := v.Locations[loc]
	if !ok {
		return nil, false
	}
	return ref.Buffer.Attribute(ref.Name)
}

type vaoBinding struct {
	loc    int
	ref    AttributeRef
	attr   *Attribute
	offset int
}

// NewVAO binds attributes to locations and records the index buffer
// in a new vertex array object.
func NewVAO(dev *Device, name string, indices *IndexBuffer, locations map[int]AttributeRef) (*VAO, error) {
	errPrefix := "gpu.NewVAO " + name
	if indices == nil {
		return nil, fmt.Errorf("%s: %w: no index buffer", errPrefix, ErrEmptyData)
	}
	if len(locations) == 0 {
		return nil, fmt.Errorf("%s: %w: no attributes", errPrefix, ErrEmptyData)
	}
	var binds []vaoBinding
	used := map[int]int{}
	for _, loc := range slices.Sorted(maps.Keys(locations)) {
		ref := locations[loc]
		if ref.Buffer == nil {
			return nil, fmt.Errorf("%s: %w: location %d has no buffer", errPrefix, ErrAttributeNotFound, loc)
		}
		at, ok := ref.Buffer.Attribute(ref.Name)
		if !ok {
			return nil, fmt.Errorf("%s: %w: %q in buffer %s", errPrefix, ErrAttributeNotFound, ref.Name, ref.Buffer.Name)
		}
		off, err := ref.Buffer.Offset(ref.Name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errPrefix, err)
		}
		if off+at.Bytes() > ref.Buffer.Stride {
			return nil, fmt.Errorf("%s: %w: %q ends past the stride", errPrefix, ErrLayoutMismatch, ref.Name)
		}
		w := at.Locations()
		if loc < 0 || loc+w > dev.Caps.MaxVertexAttribs {
			return nil, fmt.Errorf("%s: %w: locations %d-%d of %q are outside 0-%d", errPrefix, ErrInvalidRange, loc, loc+w-1, ref.Name, dev.Caps.MaxVertexAttribs-1)
		}
		for i := range w {
			if prev, ok := used[loc+i]; ok {
				return nil, fmt.Errorf("%s: %w: location %d of %q overlaps the attribute at %d", errPrefix, ErrLayoutMismatch, loc+i, ref.Name, prev)
			}
			used[loc+i] = loc
		}
		binds = append(binds, vaoBinding{loc: loc, ref: ref, attr: at, offset: off})
	}

	ctx := dev.GL
	drainErrors(ctx)
	va := &VAO{Name: name, Indices: indices, Locations: maps.Clone(locations), dev: dev}
	va.Array = ctx.CreateVertexArray()
	if !va.Array.Valid() {
		return nil, fmt.Errorf("%s: %w: could not create vertex array", errPrefix, ErrAllocationFailure)
	}
	ctx.BindVertexArray(va.Array)
	for _, b := range binds {
		at := b.attr
		ctx.BindBuffer(gl.ARRAY_BUFFER, b.ref.Buffer.Buffer)
		for row := range at.Locations() {
			a := gl.Attrib(b.loc + row)
			off := b.offset + row*at.RowBytes()
			ctx.EnableVertexAttribArray(a)
			if at.Integer {
				ctx.VertexAttribIPointer(a, at.Size, at.DataType().GL(), b.ref.Buffer.Stride, off)
			} else {
				ctx.VertexAttribPointer(a, at.Size, at.DataType().GL(), at.Normalize, b.ref.Buffer.Stride, off)
			}
			ctx.VertexAttribDivisor(a, at.Divisor)
		}
	}
	ctx.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, indices.Buffer)
	ctx.BindVertexArray(gl.VertexArray{})
	ctx.BindBuffer(gl.ARRAY_BUFFER, gl.Buffer{})
	if err := nativeError(ctx, ErrAllocationFailure, errPrefix); err != nil {
		ctx.DeleteVertexArray(va.Array)
		return nil, err
	}
	return va, nil
}
