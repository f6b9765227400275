// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"slices"

	"cogentcore.org/glkit/gpu/gl"
)

// TextureFormat is the internal storage format of a texture or
// renderbuffer.
type TextureFormat int32 //enums:enum

const (
	// RGBA8 is the zero value: 8 bit unsigned normalized RGBA.
	RGBA8 TextureFormat = iota
	RGB8
	RG8
	R8
	SRGB8Alpha8
	RGBA16F
	RGB16F
	RG16F
	R16F
	RGBA32F
	RGB32F
	RG32F
	R32F
	R11FG11FB10F
	RGBA8UI
	RGBA32UI
	R32I
	R32UI
	Depth16
	Depth24
	Depth32F
	Depth24Stencil8
	Depth32FStencil8
)

type formatInfo struct {
	internal gl.Enum

	// format is the pixel transfer format.
	format gl.Enum

	// types are the allowed transfer types; the first is the default.
	types []DataType

	depth   bool
	stencil bool
	float   bool
	integer bool

	// float32 formats need an extension for linear filtering.
	float32 bool
}

var formatInfos = [...]formatInfo{
	RGBA8:            {internal: gl.RGBA8, format: gl.RGBA, types: []DataType{UnsignedByte}},
	RGB8:             {internal: gl.RGB8, format: gl.RGB, types: []DataType{UnsignedByte}},
	RG8:              {internal: gl.RG8, format: gl.RG, types: []DataType{UnsignedByte}},
	R8:               {internal: gl.R8, format: gl.RED, types: []DataType{UnsignedByte}},
	SRGB8Alpha8:      {internal: gl.SRGB8_ALPHA8, format: gl.RGBA, types: []DataType{UnsignedByte}},
	RGBA16F:          {internal: gl.RGBA16F, format: gl.RGBA, types: []DataType{HalfFloat, Float}, float: true},
	RGB16F:           {internal: gl.RGB16F, format: gl.RGB, types: []DataType{HalfFloat, Float}, float: true},
	RG16F:            {internal: gl.RG16F, format: gl.RG, types: []DataType{HalfFloat, Float}, float: true},
	R16F:             {internal: gl.R16F, format: gl.RED, types: []DataType{HalfFloat, Float}, float: true},
	RGBA32F:          {internal: gl.RGBA32F, format: gl.RGBA, types: []DataType{Float}, float: true, float32: true},
	RGB32F:           {internal: gl.RGB32F, format: gl.RGB, types: []DataType{Float}, float: true, float32: true},
	RG32F:            {internal: gl.RG32F, format: gl.RG, types: []DataType{Float}, float: true, float32: true},
	R32F:             {internal: gl.R32F, format: gl.RED, types: []DataType{Float}, float: true, float32: true},
	R11FG11FB10F:     {internal: gl.R11F_G11F_B10F, format: gl.RGB, types: []DataType{HalfFloat, Float}, float: true},
	RGBA8UI:          {internal: gl.RGBA8UI, format: gl.RGBA_INTEGER, types: []DataType{UnsignedByte}, integer: true},
	RGBA32UI:         {internal: gl.RGBA32UI, format: gl.RGBA_INTEGER, types: []DataType{UnsignedInt}, integer: true},
	R32I:             {internal: gl.R32I, format: gl.RED_INTEGER, types: []DataType{Int}, integer: true},
	R32UI:            {internal: gl.R32UI, format: gl.RED_INTEGER, types: []DataType{UnsignedInt}, integer: true},
	Depth16:          {internal: gl.DEPTH_COMPONENT16, format: gl.DEPTH_COMPONENT, types: []DataType{UnsignedShort, UnsignedInt}, depth: true},
	Depth24:          {internal: gl.DEPTH_COMPONENT24, format: gl.DEPTH_COMPONENT, types: []DataType{UnsignedInt}, depth: true},
	Depth32F:         {internal: gl.DEPTH_COMPONENT32F, format: gl.DEPTH_COMPONENT, types: []DataType{Float}, depth: true, float: true},
	Depth24Stencil8:  {internal: gl.DEPTH24_STENCIL8, format: gl.DEPTH_STENCIL, types: []DataType{UnsignedInt248}, depth: true, stencil: true},
	Depth32FStencil8: {internal: gl.DEPTH32F_STENCIL8, format: gl.DEPTH_STENCIL, types: []DataType{Float32UnsignedInt248Rev}, depth: true, stencil: true, float: true},
}

func (f TextureFormat) info() *formatInfo {
	if f < 0 || int(f) >= len(formatInfos) {
		return &formatInfo{}
	}
	return &formatInfos[f]
}

// Valid reports whether f is a known format.
func (f TextureFormat) Valid() bool { return f >= 0 && int(f) < len(formatInfos) }

// Internal returns the native internal format.
func (f TextureFormat) Internal() gl.Enum { return f.info().internal }

// PixelFormat returns the native pixel transfer format.
func (f TextureFormat) PixelFormat() gl.Enum { return f.info().format }

// DefaultType returns the transfer type used when none is given.
func (f TextureFormat) DefaultType() DataType {
	ts := f.info().types
	if len(ts) == 0 {
		return UndefinedDataType
	}
	return ts[0]
}

// Supports reports whether pixel data of type dt can be uploaded
// to the format.
func (f TextureFormat) Supports(dt DataType) bool {
	return slices.Contains(f.info().types, dt)
}

func (f TextureFormat) IsDepth() bool   { return f.info().depth }
func (f TextureFormat) HasStencil() bool { return f.info().stencil }
func (f TextureFormat) IsFloat() bool   { return f.info().float }
func (f TextureFormat) IsInteger() bool  { return f.info().integer }

// Components returns the number of transfer components per pixel.
func (f TextureFormat) Components() int {
	switch f.PixelFormat() {
	case gl.RGBA, gl.RGBA_INTEGER:
		return 4
	case gl.RGB, gl.RGB_INTEGER:
		return 3
	case gl.RG, gl.RG_INTEGER:
		return 2
	}
	return 1
}

// PixelBytes returns the size of one pixel of transfer data of type dt.
func (f TextureFormat) PixelBytes(dt DataType) int {
	if dt == UnsignedInt248 || dt == Float32UnsignedInt248Rev {
		return dt.Bytes()
	}
	return f.Components() * dt.Bytes()
}

// Filter is a texture sampling filter.
type Filter int32 //enums:enum

const (
	// FilterDefault selects Linear for magnification, and
	// LinearMipmapLinear for minification of mipmapped textures.
	FilterDefault Filter = iota
	Nearest
	Linear
	NearestMipmapNearest
	LinearMipmapNearest
	NearestMipmapLinear
	LinearMipmapLinear
)

var filterGL = [...]gl.Enum{0, gl.NEAREST, gl.LINEAR, gl.NEAREST_MIPMAP_NEAREST, gl.LINEAR_MIPMAP_NEAREST, gl.NEAREST_MIPMAP_LINEAR, gl.LINEAR_MIPMAP_LINEAR}

// GL returns the native filter enum.
func (f Filter) GL() gl.Enum {
	if f < 0 || int(f) >= len(filterGL) {
		return gl.LINEAR
	}
	return filterGL[f]
}

// Mipmapped reports whether the filter samples between mip levels.
func (f Filter) Mipmapped() bool { return f >= NearestMipmapNearest }

// IsLinear reports whether the filter interpolates within a level.
func (f Filter) IsLinear() bool {
	return f == Linear || f == LinearMipmapNearest || f == LinearMipmapLinear
}

// singleLevel returns the equivalent filter without mipmapping.
func (f Filter) singleLevel() Filter {
	if !f.Mipmapped() {
		return f
	}
	if f.IsLinear() {
		return Linear
	}
	return Nearest
}

// nearest returns the equivalent filter without linear interpolation.
func (f Filter) nearest() Filter {
	switch f {
	case Linear:
		return Nearest
	case LinearMipmapNearest:
		return NearestMipmapNearest
	case LinearMipmapLinear:
		return NearestMipmapLinear
	}
	return f
}

// Wrap is a texture coordinate wrap mode.
type Wrap int32 //enums:enum

const (
	// WrapDefault is ClampToEdge.
	WrapDefault Wrap = iota
	ClampToEdge
	Repeat
	MirroredRepeat
)

// GL returns the native wrap enum.
func (w Wrap) GL() gl.Enum {
	switch w {
	case Repeat:
		return gl.REPEAT
	case MirroredRepeat:
		return gl.MIRRORED_REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

// CompareFunc is a depth comparison function.
type CompareFunc int32 //enums:enum

const (
	// CompareNone disables depth comparison. For DepthTest it
	// disables the depth test.
	CompareNone CompareFunc = iota
	Never
	Less
	Equal
	LessEqual
	Greater
	NotEqual
	GreaterEqual
	Always
)

var compareGL = [...]gl.Enum{0, gl.NEVER, gl.LESS, gl.EQUAL, gl.LEQUAL, gl.GREATER, gl.NOTEQUAL, gl.GEQUAL, gl.ALWAYS}

// GL returns the native function enum, 0 for CompareNone.
func (c CompareFunc) GL() gl.Enum {
	if c < 0 || int(c) >= len(compareGL) {
		return 0
	}
	return compareGL[c]
}
