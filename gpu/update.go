// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"

	"cogentcore.org/glkit/gpu/gl"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
)

// TextureUpdate configures [Texture.Update].
type TextureUpdate struct {
	// Level is the mip level to write.
	Level int

	// Face is the cube face to write, for cube textures.
	Face CubeFace

	// Layer is the first slice to write, for 3D and array textures.
	// The number of slices is given by the length of the data.
	Layer int

	// FlipY reverses the row order of each slice before upload, so
	// top-down image data lands with its first row at the top.
	FlipY bool

	// GenerateMipmaps regenerates levels 1 and up from level 0 after
	// the upload.
	GenerateMipmaps bool

	// Type is the transfer type of the data. Zero is the format's
	// default type.
	Type DataType
}

// Update writes pixel data into one level of the texture: a whole
// level of a 2D texture or cube face, or a range of slices of a 3D or
// array texture starting at upd.Layer.
func (tx *Texture) Update(data []byte, upd TextureUpdate) error {
	errPrefix := "gpu.Texture.Update " + tx.Name
	typ := upd.Type
	if typ == UndefinedDataType {
		typ = tx.Format.DefaultType()
	}
	if !tx.Format.Supports(typ) {
		return fmt.Errorf("%s: %w: %s data for %s format", errPrefix, ErrUnsupportedFormatCombination, typ, tx.Format)
	}
	if upd.Level < 0 || upd.Level >= tx.Levels {
		return fmt.Errorf("%s: %w: level %d is not in 0-%d", errPrefix, ErrInvalidRange, upd.Level, tx.Levels-1)
	}
	if tx.Kind == TextureCube && !upd.Face.Valid() {
		return fmt.Errorf("%s: %w: cube face %d", errPrefix, ErrInvalidRange, upd.Face)
	}
	if tx.Kind != TextureCube && upd.Face != PositiveX {
		tx.dev.warn("gpu.Texture.Update: cube face ignored", "texture", tx.Name, "kind", tx.Kind)
	}
	if !tx.Kind.Layered() && upd.Layer != 0 {
		tx.dev.warn("gpu.Texture.Update: layer ignored", "texture", tx.Name, "kind", tx.Kind)
		upd.Layer = 0
	}

	w, h, d := tx.LevelSize(upd.Level)
	rowBytes := w * tx.Format.PixelBytes(typ)
	layerBytes := rowBytes * h
	n := 1
	if tx.Kind.Layered() {
		if len(data) == 0 || len(data)%layerBytes != 0 {
			return fmt.Errorf("%s: %w: %d bytes is not a whole number of %dx%d slices", errPrefix, ErrInvalidDimensions, len(data), w, h)
		}
		n = len(data) / layerBytes
		if upd.Layer < 0 || upd.Layer+n > d {
			return fmt.Errorf("%s: %w: slices %d-%d are outside 0-%d", errPrefix, ErrInvalidRange, upd.Layer, upd.Layer+n-1, d-1)
		}
	} else if len(data) != layerBytes {
		return fmt.Errorf("%s: %w: %d bytes for a %dx%d level needing %d", errPrefix, ErrInvalidDimensions, len(data), w, h, layerBytes)
	}
	if upd.FlipY {
		data = flipRows(data, rowBytes, h)
	}

	ctx := tx.dev.GL
	drainErrors(ctx)
	tx.bind()
	ctx.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	if tx.Kind.Layered() {
		ctx.TexSubImage3D(tx.Kind.GL(), upd.Level, 0, 0, upd.Layer, w, h, n, tx.Format.PixelFormat(), typ.GL(), data)
	} else {
		target := tx.Kind.GL()
		if tx.Kind == TextureCube {
			target = upd.Face.GL()
		}
		ctx.TexSubImage2D(target, upd.Level, 0, 0, w, h, tx.Format.PixelFormat(), typ.GL(), data)
	}
	ctx.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	if upd.GenerateMipmaps {
		tx.generateMipmaps()
	}
	tx.unbind()
	return nativeError(ctx, ErrAllocationFailure, errPrefix)
}

// generateMipmaps regenerates the mip chain of the bound texture, if
// the format and size permit it.
func (tx *Texture) generateMipmaps() {
	switch {
	case !tx.PowerOfTwo():
		tx.dev.warn("gpu.Texture.Update: mipmaps not generated for a non power of two size", "texture", tx.Name, "width", tx.Width, "height", tx.Height)
	case tx.Format.IsInteger() || tx.Format.IsDepth():
		tx.dev.warn("gpu.Texture.Update: mipmaps not generated for the format", "texture", tx.Name, "format", tx.Format)
	case tx.Levels > 1:
		tx.dev.GL.GenerateMipmap(tx.Kind.GL())
	}
}

// flipRows returns a copy of data with the rows of each slice reversed.
func flipRows(data []byte, rowBytes, rows int) []byte {
	out := make([]byte, len(data))
	layerBytes := rowBytes * rows
	for s := 0; s < len(data); s += layerBytes {
		for r := range rows {
			src := data[s+r*rowBytes : s+(r+1)*rowBytes]
			copy(out[s+(rows-1-r)*rowBytes:], src)
		}
	}
	return out
}

// UpdateFromImage writes a decoded image into one level of a texture
// with an 8 bit RGBA format. The image is converted to RGBA as needed
// and must match the level size. For 3D and array textures it is
// written to the single slice upd.Layer.
func (tx *Texture) UpdateFromImage(img image.Image, upd TextureUpdate) error {
	errPrefix := "gpu.Texture.UpdateFromImage " + tx.Name
	if tx.Format != RGBA8 && tx.Format != SRGB8Alpha8 {
		return fmt.Errorf("%s: %w: images need an RGBA8 format, not %s", errPrefix, ErrUnsupportedFormatCombination, tx.Format)
	}
	w, h, _ := tx.LevelSize(upd.Level)
	sz := img.Bounds().Size()
	if sz.X != w || sz.Y != h {
		return fmt.Errorf("%s: %w: %dx%d image for a %dx%d level", errPrefix, ErrInvalidDimensions, sz.X, sz.Y, w, h)
	}
	rgba := ImageToRGBA(img)
	if upd.FlipY {
		rgba = transform.FlipV(rgba)
		upd.FlipY = false
	}
	upd.Type = UnsignedByte
	return tx.Update(rgba.Pix, upd)
}

// ImageToRGBA returns img as a tightly packed *image.RGBA with origin
// (0, 0), converting or copying as needed.
func ImageToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
