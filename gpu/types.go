// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "cogentcore.org/glkit/gpu/gl"

// DataType is the scalar element type of vertex attributes and
// pixel data.
type DataType int32 //enums:enum

const (
	// UndefinedDataType is the zero value; attribute layouts treat it
	// as Float, and texture updates as the format's default type.
	UndefinedDataType DataType = iota
	Byte
	UnsignedByte
	Short
	UnsignedShort
	Int
	UnsignedInt
	Float
	HalfFloat

	// UnsignedInt248 packs 24 bits of depth and 8 of stencil.
	UnsignedInt248

	// Float32UnsignedInt248Rev is a float depth with 8 bits of stencil
	// in a second word.
	Float32UnsignedInt248Rev
)

// DataTypeGL maps types to native enums.
var DataTypeGL = map[DataType]gl.Enum{
	Byte:                     gl.BYTE,
	UnsignedByte:             gl.UNSIGNED_BYTE,
	Short:                    gl.SHORT,
	UnsignedShort:            gl.UNSIGNED_SHORT,
	Int:                      gl.INT,
	UnsignedInt:              gl.UNSIGNED_INT,
	Float:                    gl.FLOAT,
	HalfFloat:                gl.HALF_FLOAT,
	UnsignedInt248:           gl.UNSIGNED_INT_24_8,
	Float32UnsignedInt248Rev: gl.FLOAT_32_UNSIGNED_INT_24_8_REV,
}

// DataTypeSizes gives type sizes in bytes. The packed depth-stencil
// types are the size of one pixel.
var DataTypeSizes = map[DataType]int{
	Byte:                     1,
	UnsignedByte:             1,
	Short:                    2,
	UnsignedShort:            2,
	Int:                      4,
	UnsignedInt:              4,
	Float:                    4,
	HalfFloat:                2,
	UnsignedInt248:           4,
	Float32UnsignedInt248Rev: 8,
}

// GL returns the native enum for the type.
func (dt DataType) GL() gl.Enum { return DataTypeGL[dt] }

// Bytes returns the size of the type in bytes.
func (dt DataType) Bytes() int { return DataTypeSizes[dt] }

// Usage is a hint for how buffer contents will be updated.
type Usage int32 //enums:enum

const (
	// StaticDraw is for data set once and drawn many times.
	StaticDraw Usage = iota

	// DynamicDraw is for data updated repeatedly.
	DynamicDraw

	// StreamDraw is for data set once and drawn a few times.
	StreamDraw
)

// GL returns the native usage enum.
func (u Usage) GL() gl.Enum {
	switch u {
	case DynamicDraw:
		return gl.DYNAMIC_DRAW
	case StreamDraw:
		return gl.STREAM_DRAW
	}
	return gl.STATIC_DRAW
}
