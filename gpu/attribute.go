// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"unsafe"

	"cogentcore.org/core/base/keylist"
	"cogentcore.org/glkit/gpu/gl"
	"cogentcore.org/glkit/gpu/glsl"
)

// Attribute describes one vertex attribute within an interleaved
// [AttributeBuffer].
type Attribute struct {
	// Name is the key used by [AttributeRef].
	Name string

	// Type is the element type. The zero value means Float.
	Type DataType

	// Size is the number of components per location, 1-4.
	Size int

	// Width is the number of consecutive locations, for matrix
	// attributes: a mat4 has Size 4 and Width 4. Zero means 1.
	Width int

	// Normalize maps integer data to [0,1] or [-1,1] when read as float.
	Normalize bool

	// Integer passes integer data to integer shader inputs
	// (ivec, uvec) without conversion to float.
	Integer bool

	// Divisor is the instancing step rate: 0 advances per vertex,
	// N advances once every N instances.
	Divisor int
}

// DataType returns the element type, resolving the zero value to Float.
func (at *Attribute) DataType() DataType {
	if at.Type == UndefinedDataType {
		return Float
	}
	return at.Type
}

// Locations returns the number of locations the attribute occupies.
func (at *Attribute) Locations() int {
	return max(at.Width, 1)
}

// RowBytes returns the size of the attribute at one location.
func (at *Attribute) RowBytes() int {
	return at.Size * at.DataType().Bytes()
}

// Bytes returns the total size of the attribute in one vertex.
func (at *Attribute) Bytes() int {
	return at.RowBytes() * at.Locations()
}

func (at *Attribute) validate() error {
	switch {
	case at.Size < 1 || at.Size > 4:
		return fmt.Errorf("attribute %q: size %d is not in 1-4", at.Name, at.Size)
	case at.Width < 0 || at.Width > 4:
		return fmt.Errorf("attribute %q: width %d is not in 1-4", at.Name, at.Width)
	case at.DataType().Bytes() == 0 || at.DataType() == UnsignedInt248 || at.DataType() == Float32UnsignedInt248Rev:
		return fmt.Errorf("attribute %q: type %s is not a vertex type", at.Name, at.Type)
	case at.Integer && (at.DataType() == Float || at.DataType() == HalfFloat):
		return fmt.Errorf("attribute %q: integer attribute with type %s", at.Name, at.DataType())
	case at.Divisor < 0:
		return fmt.Errorf("attribute %q: negative divisor", at.Name)
	}
	return nil
}

// scalarKind returns the kind of shader input the attribute feeds:
// float unless the data is passed through as integers.
func (at *Attribute) scalarKind() glsl.Kinds {
	if !at.Integer {
		return glsl.FloatKind
	}
	switch at.DataType() {
	case UnsignedByte, UnsignedShort, UnsignedInt:
		return glsl.UintKind
	}
	return glsl.IntKind
}

// AttributeBuffer is a vertex buffer holding interleaved attributes.
type AttributeBuffer struct {
	// Name of the buffer, for messages.
	Name string

	// Buffer is the native buffer.
	Buffer gl.Buffer

	// Count is the number of vertices.
	Count int

	// Stride is the size of one vertex in bytes.
	Stride int

	// Usage is the update hint the buffer was created with.
	Usage Usage

	// Attributes in interleaved order, by name.
	Attributes *keylist.List[string, *Attribute]

	dev *Device
}

// Delete releases the native buffer.
func (ab *AttributeBuffer) Delete() {
	if ab.Buffer.Valid() {
		ab.dev.GL.DeleteBuffer(ab.Buffer)
		ab.Buffer = gl.Buffer{}
	}
}

// Attribute returns the named attribute.
func (ab *AttributeBuffer) Attribute(name string) (*Attribute, bool) {
	return ab.Attributes.AtTry(name)
}

// Offset returns the byte offset of the named attribute within
// a vertex: the size of all attributes before it.
func (ab *AttributeBuffer) Offset(name string) (int, error) {
	idx := ab.Attributes.IndexByKey(name)
	if idx < 0 {
		return 0, fmt.Errorf("gpu.AttributeBuffer %s: %w: %q", ab.Name, ErrAttributeNotFound, name)
	}
	off := 0
	for _, at := range ab.Attributes.Values[:idx] {
		off += at.Bytes()
	}
	return off, nil
}

// NewAttributeBuffer uploads interleaved vertex data laid out as
// described by layout. The length of data must be a whole number
// of vertices.
func NewAttributeBuffer[T ~float32 | ~int32 | ~uint32](dev *Device, name string, data []T, layout []Attribute, usage Usage) (*AttributeBuffer, error) {
	errPrefix := "gpu.NewAttributeBuffer " + name
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", errPrefix, ErrEmptyData)
	}
	if len(layout) == 0 {
		return nil, fmt.Errorf("%s: %w: no attributes", errPrefix, ErrLayoutMismatch)
	}
	ab := &AttributeBuffer{Name: name, Usage: usage, Attributes: keylist.New[string, *Attribute](), dev: dev}
	for i := range layout {
		at := layout[i]
		if err := at.validate(); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", errPrefix, ErrLayoutMismatch, err)
		}
		if err := ab.Attributes.Add(at.Name, &at); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", errPrefix, ErrLayoutMismatch, err)
		}
		ab.Stride += at.Bytes()
	}
	if ab.Stride%4 != 0 {
		return nil, fmt.Errorf("%s: %w: stride %d bytes is not a multiple of 4", errPrefix, ErrLayoutMismatch, ab.Stride)
	}
	words := ab.Stride / 4
	if len(data)%words != 0 {
		return nil, fmt.Errorf("%s: %w: %d values is not a multiple of the %d-value stride", errPrefix, ErrLayoutMismatch, len(data), words)
	}
	ab.Count = len(data) / words

	ctx := dev.GL
	drainErrors(ctx)
	ab.Buffer = ctx.CreateBuffer()
	if !ab.Buffer.Valid() {
		return nil, fmt.Errorf("%s: %w: could not create buffer", errPrefix, ErrAllocationFailure)
	}
	ctx.BindBuffer(gl.ARRAY_BUFFER, ab.Buffer)
	ctx.BufferData(gl.ARRAY_BUFFER, sliceBytes(data), usage.GL())
	ctx.BindBuffer(gl.ARRAY_BUFFER, gl.Buffer{})
	if err := nativeError(ctx, ErrAllocationFailure, errPrefix); err != nil {
		ctx.DeleteBuffer(ab.Buffer)
		return nil, err
	}
	return ab, nil
}

// sliceBytes returns the memory of a slice of 4-byte values.
func sliceBytes[T ~float32 | ~int32 | ~uint32](data []T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(data))), len(data)*4)
}
