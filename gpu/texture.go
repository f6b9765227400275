// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"math/bits"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/glkit/gpu/gl"
)

// TextureKind is the dimensionality of a texture.
type TextureKind int32 //enums:enum -trim-prefix Texture

const (
	Texture2D TextureKind = iota
	Texture3D
	TextureCube
	Texture2DArray
)

// GL returns the native bind target.
func (k TextureKind) GL() gl.Enum {
	switch k {
	case Texture3D:
		return gl.TEXTURE_3D
	case TextureCube:
		return gl.TEXTURE_CUBE_MAP
	case Texture2DArray:
		return gl.TEXTURE_2D_ARRAY
	}
	return gl.TEXTURE_2D
}

// Layered reports whether the kind has a depth or layer dimension.
func (k TextureKind) Layered() bool { return k == Texture3D || k == Texture2DArray }

// CubeFace is one face of a cube texture.
type CubeFace int32 //enums:enum

const (
	PositiveX CubeFace = iota
	NegativeX
	PositiveY
	NegativeY
	PositiveZ
	NegativeZ
)

// GL returns the native face target.
func (f CubeFace) GL() gl.Enum { return gl.TEXTURE_CUBE_MAP_POSITIVE_X + gl.Enum(f) }

// Valid reports whether f is one of the six faces.
func (f CubeFace) Valid() bool { return f >= PositiveX && f <= NegativeZ }

// TextureOptions configures [NewTexture].
type TextureOptions struct {
	// Name of the texture, for messages.
	Name string

	// Format is the internal format.
	Format TextureFormat

	// Levels is the number of mip levels. Zero computes the full chain
	// for power-of-two sizes and 1 otherwise. Larger values than the
	// full chain are clamped with a warning.
	Levels int

	// MinFilter defaults to LinearMipmapLinear for mipmapped textures
	// and Linear otherwise. Mipmapped filters fall back to single level
	// filters when there is one level.
	MinFilter Filter

	// MagFilter defaults to Linear.
	MagFilter Filter

	// WrapS, WrapT and WrapR default to ClampToEdge.
	WrapS Wrap
	WrapT Wrap
	WrapR Wrap

	// Compare enables hardware depth comparison for depth formats.
	Compare CompareFunc

	// Type is the transfer type of Data and of zero initialization.
	// Zero is the format's default type.
	Type DataType

	// Data is the optional initial contents of level 0: every slice of
	// a 3D or array texture, or the six faces of a cube texture in
	// [CubeFace] order. It is uploaded after storage is allocated, and
	// the rest of the mip chain is generated from it.
	Data []byte
}

// Defaults sets the default values.
func (to *TextureOptions) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(to))
}

// Texture is immutable image storage with a fixed size, format and
// number of mip levels.
type Texture struct {
	// Name of the texture, for messages.
	Name string

	// Texture is the native texture.
	Texture gl.Texture

	// Kind is the dimensionality.
	Kind TextureKind

	// Width, Height and Depth of level 0. Depth is 1 except for 3D
	// and array textures, where it is the number of slices.
	Width, Height, Depth int

	// Levels is the number of mip levels.
	Levels int

	// Format is the internal format.
	Format TextureFormat

	// Compare is the depth comparison function, CompareNone if none.
	Compare CompareFunc

	// MinFilter and MagFilter are the resolved filters.
	MinFilter, MagFilter Filter

	dev *Device
}

func isPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }

// fullLevels returns floor(log2(largest))+1.
func fullLevels(dims ...int) int {
	m := 0
	for _, d := range dims {
		m = max(m, d)
	}
	return bits.Len(uint(m))
}

// mipDims returns the dimensions that shrink with each mip level.
func (tx *Texture) mipDims() []int {
	if tx.Kind == Texture3D {
		return []int{tx.Width, tx.Height, tx.Depth}
	}
	return []int{tx.Width, tx.Height}
}

// PowerOfTwo reports whether all dimensions that shrink with mip
// levels are powers of two.
func (tx *Texture) PowerOfTwo() bool {
	for _, d := range tx.mipDims() {
		if !isPowerOfTwo(d) {
			return false
		}
	}
	return true
}

// LevelSize returns the dimensions of the given mip level.
func (tx *Texture) LevelSize(level int) (width, height, depth int) {
	width = max(1, tx.Width>>level)
	height = max(1, tx.Height>>level)
	depth = tx.Depth
	if tx.Kind == Texture3D {
		depth = max(1, tx.Depth>>level)
	}
	return
}

// NewTexture allocates immutable storage for a texture of the given
// kind and size and configures its sampling. depth is the number of
// slices of 3D and array textures, and must be 0 or 1 for 2D and
// cube textures.
func NewTexture(dev *Device, width, height int, kind TextureKind, depth int, opts *TextureOptions) (*Texture, error) {
	if opts == nil {
		opts = &TextureOptions{}
		opts.Defaults()
	}
	tx := &Texture{Name: opts.Name, Kind: kind, Width: width, Height: height, Depth: depth, Format: opts.Format, dev: dev}
	errPrefix := "gpu.NewTexture " + tx.Name
	if err := tx.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", errPrefix, err)
	}
	typ, err := tx.validateData(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errPrefix, err)
	}
	tx.configure(opts)

	ctx := dev.GL
	drainErrors(ctx)
	tx.Texture = ctx.CreateTexture()
	if !tx.Texture.Valid() {
		return nil, fmt.Errorf("%s: %w: could not create texture", errPrefix, ErrAllocationFailure)
	}
	target := kind.GL()
	tx.bind()
	if kind.Layered() {
		ctx.TexStorage3D(target, tx.Levels, tx.Format.Internal(), width, height, tx.Depth)
	} else {
		ctx.TexStorage2D(target, tx.Levels, tx.Format.Internal(), width, height)
	}
	if err := nativeError(ctx, ErrAllocationFailure, errPrefix); err != nil {
		tx.unbind()
		ctx.DeleteTexture(tx.Texture)
		return nil, err
	}
	ctx.TexParameteri(target, gl.TEXTURE_MIN_FILTER, int(tx.MinFilter.GL()))
	ctx.TexParameteri(target, gl.TEXTURE_MAG_FILTER, int(tx.MagFilter.GL()))
	ctx.TexParameteri(target, gl.TEXTURE_WRAP_S, int(opts.WrapS.GL()))
	ctx.TexParameteri(target, gl.TEXTURE_WRAP_T, int(opts.WrapT.GL()))
	if kind == Texture3D || kind == TextureCube {
		ctx.TexParameteri(target, gl.TEXTURE_WRAP_R, int(opts.WrapR.GL()))
	}
	ctx.TexParameteri(target, gl.TEXTURE_BASE_LEVEL, 0)
	ctx.TexParameteri(target, gl.TEXTURE_MAX_LEVEL, tx.Levels-1)
	if tx.Compare != CompareNone {
		ctx.TexParameteri(target, gl.TEXTURE_COMPARE_MODE, int(gl.COMPARE_REF_TO_TEXTURE))
		ctx.TexParameteri(target, gl.TEXTURE_COMPARE_FUNC, int(tx.Compare.GL()))
	}
	if dev.ZeroInitTextures {
		tx.zeroLevels(typ)
	}
	tx.unbind()
	if err := nativeError(ctx, ErrAllocationFailure, errPrefix); err != nil {
		ctx.DeleteTexture(tx.Texture)
		return nil, err
	}
	if err := tx.upload(opts.Data, typ); err != nil {
		tx.Delete()
		return nil, err
	}
	return tx, nil
}

// validateData checks the transfer type and initial data of opts
// against the validated texture, and returns the resolved type.
func (tx *Texture) validateData(opts *TextureOptions) (DataType, error) {
	typ := opts.Type
	if typ == UndefinedDataType {
		typ = tx.Format.DefaultType()
	}
	if !tx.Format.Supports(typ) {
		return typ, fmt.Errorf("%w: %s data for %s format", ErrUnsupportedFormatCombination, typ, tx.Format)
	}
	if opts.Data == nil {
		return typ, nil
	}
	need := tx.Width * tx.Height * tx.Depth * tx.Format.PixelBytes(typ) * len(tx.faces())
	if len(opts.Data) != need {
		return typ, fmt.Errorf("%w: %d bytes of initial data for a %dx%dx%d %s texture needing %d", ErrInvalidDimensions, len(opts.Data), tx.Width, tx.Height, tx.Depth, tx.Kind, need)
	}
	return typ, nil
}

// upload writes initial level 0 data, one face at a time for cube
// textures.
func (tx *Texture) upload(data []byte, typ DataType) error {
	if data == nil {
		return nil
	}
	faces := len(tx.faces())
	size := len(data) / faces
	for i := range faces {
		upd := TextureUpdate{Face: CubeFace(i), Type: typ, GenerateMipmaps: tx.Levels > 1 && i == faces-1}
		if err := tx.Update(data[i*size:(i+1)*size], upd); err != nil {
			return err
		}
	}
	return nil
}

func (tx *Texture) validate() error {
	caps := &tx.dev.Caps
	if !tx.Format.Valid() {
		return fmt.Errorf("%w: unknown format %d", ErrUnsupportedFormatCombination, tx.Format)
	}
	if tx.Width < 1 || tx.Height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, tx.Width, tx.Height)
	}
	limit := caps.MaxTextureSize
	switch tx.Kind {
	case Texture2D, TextureCube:
		if tx.Depth > 1 {
			return fmt.Errorf("%w: depth %d given for a %s texture", ErrInvalidDimensions, tx.Depth, tx.Kind)
		}
		tx.Depth = 1
		if tx.Kind == TextureCube {
			limit = caps.MaxCubeTextureSize
			if tx.Width != tx.Height {
				return fmt.Errorf("%w: cube faces must be square, not %dx%d", ErrInvalidDimensions, tx.Width, tx.Height)
			}
		}
	case Texture3D:
		limit = caps.Max3DTextureSize
		if tx.Depth < 1 || tx.Depth > limit {
			return fmt.Errorf("%w: depth %d is not in 1-%d", ErrInvalidDimensions, tx.Depth, limit)
		}
	case Texture2DArray:
		if tx.Depth < 1 || tx.Depth > caps.MaxArrayLayers {
			return fmt.Errorf("%w: %d layers is not in 1-%d", ErrInvalidDimensions, tx.Depth, caps.MaxArrayLayers)
		}
	default:
		return fmt.Errorf("%w: unknown texture kind %d", ErrInvalidDimensions, tx.Kind)
	}
	if tx.Width > limit || tx.Height > limit {
		return fmt.Errorf("%w: %dx%d exceeds the %d limit", ErrInvalidDimensions, tx.Width, tx.Height, limit)
	}
	if tx.Format.IsDepth() && tx.Kind == Texture3D {
		return fmt.Errorf("%w: depth format %s on a 3D texture", ErrUnsupportedFormatCombination, tx.Format)
	}
	return nil
}

// configure resolves levels, filters and comparison from opts.
func (tx *Texture) configure(opts *TextureOptions) {
	dev := tx.dev
	full := fullLevels(tx.mipDims()...)
	switch {
	case opts.Levels <= 0 && tx.PowerOfTwo():
		tx.Levels = full
	case opts.Levels <= 0:
		tx.Levels = 1
	case opts.Levels > full:
		dev.warn("gpu.NewTexture: mip levels exceed the full chain, clamping", "texture", tx.Name, "levels", opts.Levels, "max", full)
		tx.Levels = full
	default:
		tx.Levels = opts.Levels
	}

	tx.MagFilter = opts.MagFilter
	if tx.MagFilter == FilterDefault {
		tx.MagFilter = Linear
	}
	if tx.MagFilter.Mipmapped() {
		tx.MagFilter = tx.MagFilter.singleLevel()
	}
	tx.MinFilter = opts.MinFilter
	if tx.MinFilter == FilterDefault {
		tx.MinFilter = Linear
		if tx.Levels > 1 {
			tx.MinFilter = LinearMipmapLinear
		}
	}
	if tx.Levels == 1 && tx.MinFilter.Mipmapped() {
		tx.MinFilter = tx.MinFilter.singleLevel()
	}

	tx.Compare = opts.Compare
	if tx.Compare != CompareNone && !tx.Format.IsDepth() {
		dev.warn("gpu.NewTexture: depth comparison ignored for a color format", "texture", tx.Name, "format", tx.Format)
		tx.Compare = CompareNone
	}

	nearest := false
	switch {
	case tx.Format.IsInteger():
		nearest = true
	case tx.Format.IsDepth() && tx.Compare == CompareNone:
		nearest = true
	case tx.Format.info().float32 && !dev.Caps.FloatLinear:
		nearest = true
	}
	if nearest {
		if (opts.MinFilter != FilterDefault && opts.MinFilter.IsLinear()) || opts.MagFilter == Linear {
			dev.warn("gpu.NewTexture: linear filtering is not supported for the format, using nearest", "texture", tx.Name, "format", tx.Format)
		}
		tx.MinFilter = tx.MinFilter.nearest()
		tx.MagFilter = tx.MagFilter.nearest()
	}
}

// Delete releases the native texture.
func (tx *Texture) Delete() {
	if tx.Texture.Valid() {
		tx.dev.GL.DeleteTexture(tx.Texture)
		tx.Texture = gl.Texture{}
	}
}

// bind binds the texture on the scratch unit.
func (tx *Texture) bind() {
	ctx := tx.dev.GL
	ctx.ActiveTexture(gl.TEXTURE0 + gl.Enum(tx.dev.WIPUnit()))
	ctx.BindTexture(tx.Kind.GL(), tx.Texture)
}

// unbind clears the scratch unit and leaves unit 0 active.
func (tx *Texture) unbind() {
	ctx := tx.dev.GL
	ctx.BindTexture(tx.Kind.GL(), gl.Texture{})
	ctx.ActiveTexture(gl.TEXTURE0)
}

// faces returns the upload targets of the texture.
func (tx *Texture) faces() []gl.Enum {
	if tx.Kind != TextureCube {
		return []gl.Enum{tx.Kind.GL()}
	}
	fs := make([]gl.Enum, 6)
	for i := range fs {
		fs[i] = CubeFace(i).GL()
	}
	return fs
}

// zeroLevels uploads zeros to every level, face and slice.
// The texture must be bound.
func (tx *Texture) zeroLevels(typ DataType) {
	ctx := tx.dev.GL
	px := tx.Format.PixelBytes(typ)
	ctx.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	defer ctx.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	for level := range tx.Levels {
		w, h, d := tx.LevelSize(level)
		zeros := make([]byte, w*h*d*px)
		for _, face := range tx.faces() {
			if tx.Kind.Layered() {
				ctx.TexSubImage3D(face, level, 0, 0, 0, w, h, d, tx.Format.PixelFormat(), typ.GL(), zeros)
			} else {
				ctx.TexSubImage2D(face, level, 0, 0, w, h, tx.Format.PixelFormat(), typ.GL(), zeros)
			}
		}
	}
}
