// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"cogentcore.org/glkit/gpu/gl"
	"golang.org/x/exp/constraints"
)

// IndexType is the width of the values in an [IndexBuffer].
type IndexType int32 //enums:enum -trim-prefix Index

const (
	// IndexAuto selects the smallest type that holds the maximum index.
	IndexAuto IndexType = iota
	IndexUint8
	IndexUint16
	IndexUint32
)

// Bytes returns the size of one index.
func (it IndexType) Bytes() int {
	switch it {
	case IndexUint8:
		return 1
	case IndexUint16:
		return 2
	}
	return 4
}

// Max returns the largest representable index.
func (it IndexType) Max() uint64 {
	switch it {
	case IndexUint8:
		return math.MaxUint8
	case IndexUint16:
		return math.MaxUint16
	}
	return math.MaxUint32
}

// GL returns the native data type.
func (it IndexType) GL() gl.Enum {
	switch it {
	case IndexUint8:
		return gl.UNSIGNED_BYTE
	case IndexUint16:
		return gl.UNSIGNED_SHORT
	}
	return gl.UNSIGNED_INT
}

// IndexBuffer is an element buffer of triangle indices.
type IndexBuffer struct {
	// Buffer is the native buffer.
	Buffer gl.Buffer

	// Type is the resolved index width.
	Type IndexType

	// Count is the number of indices, a multiple of 3.
	Count int

	// MaxIndex is the largest index value.
	MaxIndex uint64

	dev *Device
}

// Delete releases the native buffer.
func (ib *IndexBuffer) Delete() {
	if ib.Buffer.Valid() {
		ib.dev.GL.DeleteBuffer(ib.Buffer)
		ib.Buffer = gl.Buffer{}
	}
}

// NewIndexBuffer uploads triangle indices. If typ is IndexAuto, the
// smallest type holding the maximum index is used.
func NewIndexBuffer[T constraints.Integer](dev *Device, indices []T, typ IndexType) (*IndexBuffer, error) {
	const errPrefix = "gpu.NewIndexBuffer"
	if len(indices) == 0 {
		return nil, fmt.Errorf("%s: %w", errPrefix, ErrEmptyData)
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%s: %w: %d indices is not a whole number of triangles", errPrefix, ErrInvalidRange, len(indices))
	}
	var mx uint64
	for i, v := range indices {
		if v < 0 {
			return nil, fmt.Errorf("%s: %w: index %d is negative (%d)", errPrefix, ErrInvalidIndexRange, i, v)
		}
		mx = max(mx, uint64(v))
	}
	if mx > math.MaxUint32 {
		return nil, fmt.Errorf("%s: %w: maximum index %d exceeds 32 bits", errPrefix, ErrInvalidIndexRange, mx)
	}
	if typ == IndexAuto {
		switch {
		case mx <= math.MaxUint8:
			typ = IndexUint8
		case mx <= math.MaxUint16:
			typ = IndexUint16
		default:
			typ = IndexUint32
		}
	} else if mx > typ.Max() {
		return nil, fmt.Errorf("%s: %w: maximum index %d does not fit in %s", errPrefix, ErrInvalidIndexRange, mx, typ)
	}
	buf := make([]byte, 0, len(indices)*typ.Bytes())
	for _, v := range indices {
		switch typ {
		case IndexUint8:
			buf = append(buf, byte(v))
		case IndexUint16:
			buf = binary.NativeEndian.AppendUint16(buf, uint16(v))
		default:
			buf = binary.NativeEndian.AppendUint32(buf, uint32(v))
		}
	}

	ib := &IndexBuffer{Type: typ, Count: len(indices), MaxIndex: mx, dev: dev}
	ctx := dev.GL
	drainErrors(ctx)
	ib.Buffer = ctx.CreateBuffer()
	if !ib.Buffer.Valid() {
		return nil, fmt.Errorf("%s: %w: could not create buffer", errPrefix, ErrAllocationFailure)
	}
	// the element binding belongs to the bound vertex array
	ctx.BindVertexArray(gl.VertexArray{})
	ctx.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.Buffer)
	ctx.BufferData(gl.ELEMENT_ARRAY_BUFFER, buf, gl.STATIC_DRAW)
	ctx.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gl.Buffer{})
	if err := nativeError(ctx, ErrAllocationFailure, errPrefix); err != nil {
		ctx.DeleteBuffer(ib.Buffer)
		return nil, err
	}
	return ib, nil
}
