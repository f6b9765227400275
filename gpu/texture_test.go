// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"image/color"
	"slices"
	"testing"

	"cogentcore.org/glkit/gpu/gl"
	"cogentcore.org/glkit/gpu/gl/gltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextureLevels(t *testing.T) {
	dev, ctx, lr := newTestDevice(t)
	tx, err := NewTexture(dev, 256, 256, Texture2D, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 9, tx.Levels)
	assert.Equal(t, 1, tx.Depth)
	assert.Equal(t, LinearMipmapLinear, tx.MinFilter)
	assert.Equal(t, Linear, tx.MagFilter)
	nt := ctx.Textures[tx.Texture]
	require.NotNil(t, nt)
	assert.Equal(t, 9, nt.Levels)
	assert.Equal(t, gl.RGBA8, nt.Format)
	assert.Equal(t, int(gl.LINEAR_MIPMAP_LINEAR), nt.Params[gl.TEXTURE_MIN_FILTER])
	assert.Equal(t, 8, nt.Params[gl.TEXTURE_MAX_LEVEL])
	assert.Empty(t, lr.msgs)

	tx, err = NewTexture(dev, 256, 256, Texture2D, 0, &TextureOptions{Levels: 20})
	require.NoError(t, err)
	assert.Equal(t, 9, tx.Levels)
	assert.True(t, lr.has("mip levels exceed"))

	tx, err = NewTexture(dev, 256, 256, Texture2D, 0, &TextureOptions{Levels: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, tx.Levels)

	tx, err = NewTexture(dev, 100, 64, Texture2D, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, tx.Levels)
	assert.False(t, tx.PowerOfTwo())
	assert.Equal(t, Linear, tx.MinFilter)

	tx, err = NewTexture(dev, 64, 64, Texture2D, 0, &TextureOptions{Levels: 1, MinFilter: NearestMipmapLinear})
	require.NoError(t, err)
	assert.Equal(t, Nearest, tx.MinFilter)

	// the scratch unit is left empty and unit 0 active
	assert.False(t, ctx.Bound(dev.WIPUnit(), gl.TEXTURE_2D).Valid())
	assert.Equal(t, 0, ctx.ActiveUnit)
}

func TestTextureLevelSize(t *testing.T) {
	dev, _, _ := newTestDevice(t)
	tx, err := NewTexture(dev, 64, 16, Texture3D, 8, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, tx.Levels)
	w, h, d := tx.LevelSize(2)
	assert.Equal(t, [3]int{16, 4, 2}, [3]int{w, h, d})
	w, h, d = tx.LevelSize(6)
	assert.Equal(t, [3]int{1, 1, 1}, [3]int{w, h, d})

	arr, err := NewTexture(dev, 32, 32, Texture2DArray, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, arr.Levels)
	_, _, d = arr.LevelSize(3)
	assert.Equal(t, 5, d)
}

func TestTextureErrors(t *testing.T) {
	dev, ctx, _ := newTestDevice(t)
	tests := []struct {
		name          string
		width, height int
		kind          TextureKind
		depth         int
		format        TextureFormat
		err           error
	}{
		{"zero", 0, 16, Texture2D, 0, RGBA8, ErrInvalidDimensions},
		{"depth on 2D", 16, 16, Texture2D, 2, RGBA8, ErrInvalidDimensions},
		{"cube not square", 16, 32, TextureCube, 0, RGBA8, ErrInvalidDimensions},
		{"3D without depth", 16, 16, Texture3D, 0, RGBA8, ErrInvalidDimensions},
		{"too many layers", 16, 16, Texture2DArray, 300, RGBA8, ErrInvalidDimensions},
		{"too large", 8192, 16, Texture2D, 0, RGBA8, ErrInvalidDimensions},
		{"depth format on 3D", 16, 16, Texture3D, 4, Depth24, ErrUnsupportedFormatCombination},
		{"unknown format", 16, 16, Texture2D, 0, TextureFormat(99), ErrUnsupportedFormatCombination},
	}
	for _, tt := range tests {
		_, err := NewTexture(dev, tt.width, tt.height, tt.kind, tt.depth, &TextureOptions{Format: tt.format})
		assert.ErrorIs(t, err, tt.err, tt.name)
	}
	assert.Equal(t, 0, ctx.Objects())

	ctx.OutOfMemory = true
	_, err := NewTexture(dev, 16, 16, Texture2D, 0, nil)
	assert.ErrorIs(t, err, ErrAllocationFailure)
	assert.Equal(t, 0, ctx.Objects())
}

func TestTextureZeroInit(t *testing.T) {
	dev, ctx, _ := newTestDevice(t)
	tx, err := NewTexture(dev, 8, 8, Texture2D, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, ctx.Textures[tx.Texture].Uploads)

	dev.ZeroInitTextures = true
	tests := []struct {
		name          string
		width, height int
		kind          TextureKind
		depth         int
		format        TextureFormat
		uploads       int
	}{
		{"2D", 64, 64, Texture2D, 0, RGBA8, 7},
		{"2D depth", 32, 32, Texture2D, 0, Depth24, 6},
		{"cube", 16, 16, TextureCube, 0, RGBA8, 6 * 5},
		{"3D", 16, 16, Texture3D, 4, RGBA8, 5},
		{"array", 8, 8, Texture2DArray, 3, RG16F, 4},
	}
	for _, tt := range tests {
		sub2D, sub3D := ctx.Calls["TexSubImage2D"], ctx.Calls["TexSubImage3D"]
		tx, err := NewTexture(dev, tt.width, tt.height, tt.kind, tt.depth, &TextureOptions{Format: tt.format})
		require.NoError(t, err, tt.name)
		ups := ctx.Textures[tx.Texture].Uploads
		require.Len(t, ups, tt.uploads, tt.name)
		if tt.kind.Layered() {
			assert.Equal(t, sub3D+tt.uploads, ctx.Calls["TexSubImage3D"], tt.name)
		} else {
			assert.Equal(t, sub2D+tt.uploads, ctx.Calls["TexSubImage2D"], tt.name)
		}
		faces := 1
		if tt.kind == TextureCube {
			faces = 6
		}
		typ := tt.format.DefaultType()
		for i, up := range ups {
			level := i / faces
			w, h, d := tx.LevelSize(level)
			assert.Equal(t, level, up.Level, tt.name)
			assert.Equal(t, [3]int{w, h, d}, [3]int{up.W, up.H, up.D}, tt.name)
			assert.Equal(t, typ.GL(), up.Type, tt.name)
			assert.Equal(t, make([]byte, w*h*d*tt.format.PixelBytes(typ)), up.Data, tt.name)
			if tt.kind == TextureCube {
				assert.Equal(t, CubeFace(i%faces).GL(), up.Target, tt.name)
			}
		}
	}
	assert.Empty(t, ctx.Errors())
	assert.Equal(t, 4, ctx.Unpack[gl.UNPACK_ALIGNMENT])
}

func TestTextureInitialData(t *testing.T) {
	dev, ctx, _ := newTestDevice(t)
	creates := ctx.Calls["CreateTexture"]
	_, err := NewTexture(dev, 4, 4, Texture2D, 0, &TextureOptions{Type: Float, Data: make([]byte, 4*4*16)})
	assert.ErrorIs(t, err, ErrUnsupportedFormatCombination)
	_, err = NewTexture(dev, 4, 4, Texture2D, 0, &TextureOptions{Data: make([]byte, 10)})
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = NewTexture(dev, 4, 4, TextureCube, 0, &TextureOptions{Data: make([]byte, 4*4*4)})
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	assert.Equal(t, creates, ctx.Calls["CreateTexture"])
	assert.Equal(t, 0, ctx.Objects())

	data := make([]byte, 4*4*4)
	for i := range data {
		data[i] = byte(i)
	}
	tx, err := NewTexture(dev, 4, 4, Texture2D, 0, &TextureOptions{Data: data})
	require.NoError(t, err)
	nt := ctx.Textures[tx.Texture]
	require.Len(t, nt.Uploads, 1)
	assert.Equal(t, 0, nt.Uploads[0].Level)
	assert.Equal(t, data, nt.Uploads[0].Data)
	assert.Equal(t, 1, nt.GeneratedMipmaps)

	cube, err := NewTexture(dev, 2, 2, TextureCube, 0, &TextureOptions{Levels: 1, Data: make([]byte, 6*2*2*4)})
	require.NoError(t, err)
	nt = ctx.Textures[cube.Texture]
	require.Len(t, nt.Uploads, 6)
	for i, up := range nt.Uploads {
		assert.Equal(t, CubeFace(i).GL(), up.Target)
		assert.Len(t, up.Data, 16)
	}
	assert.Equal(t, 0, nt.GeneratedMipmaps)

	hf, err := NewTexture(dev, 2, 2, Texture2D, 0, &TextureOptions{Format: RGBA16F, Levels: 1, Type: Float, Data: make([]byte, 2*2*16)})
	require.NoError(t, err)
	assert.Equal(t, gl.FLOAT, ctx.Textures[hf.Texture].Uploads[0].Type)
	assert.Empty(t, ctx.Errors())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "2D", Texture2D.String())
	assert.Equal(t, "Cube", TextureCube.String())
	assert.Equal(t, "RGBA16F", RGBA16F.String())
	assert.Equal(t, "Dimensions", IncompleteDimensions.String())
	assert.Equal(t, "Uint16", IndexUint16.String())
	assert.Equal(t, "99", TextureFormat(99).String())
	assert.Len(t, TextureFormatValues(), int(TextureFormatN))

	var f Filter
	require.NoError(t, f.SetString("LinearMipmapNearest"))
	assert.Equal(t, LinearMipmapNearest, f)
	assert.Error(t, f.SetString("Bilinear"))

	var k TextureKind
	require.NoError(t, k.UnmarshalText([]byte("2DArray")))
	assert.Equal(t, Texture2DArray, k)
	b, err := Depth24Stencil8.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Depth24Stencil8", string(b))
}

func TestTextureFilters(t *testing.T) {
	dev, ctx, lr := newTestDevice(t)
	tx, err := NewTexture(dev, 16, 16, Texture2D, 0, &TextureOptions{Format: RGBA8UI, MagFilter: Linear})
	require.NoError(t, err)
	assert.Equal(t, Nearest, tx.MagFilter)
	assert.Equal(t, NearestMipmapLinear, tx.MinFilter)
	assert.True(t, lr.has("linear filtering is not supported"))

	sh, err := NewTexture(dev, 512, 512, Texture2D, 0, &TextureOptions{Format: Depth24, Levels: 1, Compare: LessEqual})
	require.NoError(t, err)
	assert.Equal(t, Linear, sh.MagFilter)
	params := ctx.Textures[sh.Texture].Params
	assert.Equal(t, int(gl.COMPARE_REF_TO_TEXTURE), params[gl.TEXTURE_COMPARE_MODE])
	assert.Equal(t, int(gl.LEQUAL), params[gl.TEXTURE_COMPARE_FUNC])

	depth, err := NewTexture(dev, 512, 512, Texture2D, 0, &TextureOptions{Format: Depth24, Levels: 1})
	require.NoError(t, err)
	assert.Equal(t, Nearest, depth.MagFilter)

	lr.msgs = nil
	col, err := NewTexture(dev, 16, 16, Texture2D, 0, &TextureOptions{Compare: Less})
	require.NoError(t, err)
	assert.Equal(t, CompareNone, col.Compare)
	assert.True(t, lr.has("depth comparison ignored"))

	nctx := gltest.New()
	nctx.ExtensionList = nil
	ndev, err := NewDevice(nctx)
	require.NoError(t, err)
	ndev.Log = dev.Log
	fl, err := NewTexture(ndev, 16, 16, Texture2D, 0, &TextureOptions{Format: R32F, Levels: 1})
	require.NoError(t, err)
	assert.Equal(t, Nearest, fl.MinFilter)
	assert.Equal(t, Nearest, fl.MagFilter)
	hf, err := NewTexture(ndev, 16, 16, Texture2D, 0, &TextureOptions{Format: RGBA16F, Levels: 1})
	require.NoError(t, err)
	assert.Equal(t, Linear, hf.MagFilter)
}

func TestTextureUpdate(t *testing.T) {
	dev, ctx, _ := newTestDevice(t)
	tx, err := NewTexture(dev, 2, 2, Texture2D, 0, &TextureOptions{Levels: 1})
	require.NoError(t, err)
	data := []byte{
		1, 1, 1, 1, 2, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 4,
	}
	require.NoError(t, tx.Update(data, TextureUpdate{FlipY: true}))
	nt := ctx.Textures[tx.Texture]
	up := nt.Uploads[len(nt.Uploads)-1]
	assert.Equal(t, gl.TEXTURE_2D, up.Target)
	assert.Equal(t, [2]int{2, 2}, [2]int{up.W, up.H})
	assert.Equal(t, gl.UNSIGNED_BYTE, up.Type)
	assert.Equal(t, []byte{3, 3, 3, 3, 4, 4, 4, 4, 1, 1, 1, 1, 2, 2, 2, 2}, up.Data)
	assert.Equal(t, byte(1), data[0], "source data is not modified")
	assert.Equal(t, 4, ctx.Unpack[gl.UNPACK_ALIGNMENT])
	assert.Equal(t, 0, ctx.ActiveUnit)

	assert.ErrorIs(t, tx.Update(data[:8], TextureUpdate{}), ErrInvalidDimensions)
	assert.ErrorIs(t, tx.Update(data, TextureUpdate{Type: Float}), ErrUnsupportedFormatCombination)
	assert.ErrorIs(t, tx.Update(data, TextureUpdate{Level: 1}), ErrInvalidRange)
}

func TestTextureUpdateMipmaps(t *testing.T) {
	dev, ctx, lr := newTestDevice(t)
	tx, err := NewTexture(dev, 4, 4, Texture2D, 0, nil)
	require.NoError(t, err)
	require.NoError(t, tx.Update(make([]byte, 64), TextureUpdate{GenerateMipmaps: true}))
	assert.Equal(t, 1, ctx.Textures[tx.Texture].GeneratedMipmaps)

	npot, err := NewTexture(dev, 6, 4, Texture2D, 0, nil)
	require.NoError(t, err)
	require.NoError(t, npot.Update(make([]byte, 96), TextureUpdate{GenerateMipmaps: true}))
	assert.Equal(t, 0, ctx.Textures[npot.Texture].GeneratedMipmaps)
	assert.True(t, lr.has("non power of two"))
}

func TestTextureUpdateLayers(t *testing.T) {
	dev, ctx, _ := newTestDevice(t)
	arr, err := NewTexture(dev, 4, 4, Texture2DArray, 4, &TextureOptions{Levels: 1})
	require.NoError(t, err)
	slice := 4 * 4 * 4
	require.NoError(t, arr.Update(make([]byte, 2*slice), TextureUpdate{Layer: 1}))
	up := ctx.Textures[arr.Texture].Uploads
	last := up[len(up)-1]
	assert.Equal(t, gl.TEXTURE_2D_ARRAY, last.Target)
	assert.Equal(t, 1, last.Z)
	assert.Equal(t, 2, last.D)

	assert.ErrorIs(t, arr.Update(make([]byte, 2*slice), TextureUpdate{Layer: 3}), ErrInvalidRange)
	assert.ErrorIs(t, arr.Update(make([]byte, slice+1), TextureUpdate{}), ErrInvalidDimensions)

	cube, err := NewTexture(dev, 4, 4, TextureCube, 0, &TextureOptions{Levels: 1})
	require.NoError(t, err)
	require.NoError(t, cube.Update(make([]byte, slice), TextureUpdate{Face: NegativeY}))
	up = ctx.Textures[cube.Texture].Uploads
	assert.Equal(t, gl.TEXTURE_CUBE_MAP_NEGATIVE_Y, up[len(up)-1].Target)
	assert.ErrorIs(t, cube.Update(make([]byte, slice), TextureUpdate{Face: CubeFace(6)}), ErrInvalidRange)
}

func TestTextureUpdateFromImage(t *testing.T) {
	dev, ctx, _ := newTestDevice(t)
	tx, err := NewTexture(dev, 2, 2, Texture2D, 0, &TextureOptions{Levels: 1})
	require.NoError(t, err)

	// a sub image has a non-zero origin and a wider stride
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.Set(1, 1, color.RGBA{255, 0, 0, 255})
	src.Set(1, 2, color.RGBA{0, 0, 255, 255})
	sub := src.SubImage(image.Rect(1, 1, 3, 3))
	require.NoError(t, tx.UpdateFromImage(sub, TextureUpdate{FlipY: true}))
	up := ctx.Textures[tx.Texture].Uploads
	data := up[len(up)-1].Data
	require.Len(t, data, 16)
	assert.Equal(t, []byte{0, 0, 255, 255}, data[0:4])
	assert.Equal(t, []byte{255, 0, 0, 255}, data[8:12])

	assert.ErrorIs(t, tx.UpdateFromImage(src, TextureUpdate{}), ErrInvalidDimensions)

	fl, err := NewTexture(dev, 2, 2, Texture2D, 0, &TextureOptions{Format: RGBA16F, Levels: 1})
	require.NoError(t, err)
	assert.ErrorIs(t, fl.UpdateFromImage(sub, TextureUpdate{}), ErrUnsupportedFormatCombination)
}

func TestImageToRGBA(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 2, 2))
	assert.Same(t, rgba, ImageToRGBA(rgba))

	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.SetGray(1, 0, color.Gray{Y: 200})
	out := ImageToRGBA(gray)
	assert.Equal(t, image.Rect(0, 0, 2, 1), out.Rect)
	assert.True(t, slices.Equal([]byte{200, 200, 200, 255}, out.Pix[4:8]))
}
