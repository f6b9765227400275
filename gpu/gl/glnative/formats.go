// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

package glnative

import "cogentcore.org/glkit/gpu/gl"

// transfers gives a client format and type accepted with each
// internal format, for allocating storage with no data.
var transfers = map[gl.Enum][2]gl.Enum{
	gl.RGBA8:              {gl.RGBA, gl.UNSIGNED_BYTE},
	gl.RGB8:               {gl.RGB, gl.UNSIGNED_BYTE},
	gl.RG8:                {gl.RG, gl.UNSIGNED_BYTE},
	gl.R8:                 {gl.RED, gl.UNSIGNED_BYTE},
	gl.SRGB8_ALPHA8:       {gl.RGBA, gl.UNSIGNED_BYTE},
	gl.RGBA16F:            {gl.RGBA, gl.HALF_FLOAT},
	gl.RGB16F:             {gl.RGB, gl.HALF_FLOAT},
	gl.RG16F:              {gl.RG, gl.HALF_FLOAT},
	gl.R16F:               {gl.RED, gl.HALF_FLOAT},
	gl.RGBA32F:            {gl.RGBA, gl.FLOAT},
	gl.RGB32F:             {gl.RGB, gl.FLOAT},
	gl.RG32F:              {gl.RG, gl.FLOAT},
	gl.R32F:               {gl.RED, gl.FLOAT},
	gl.R11F_G11F_B10F:     {gl.RGB, gl.HALF_FLOAT},
	gl.RGBA8UI:            {gl.RGBA_INTEGER, gl.UNSIGNED_BYTE},
	gl.RGBA32UI:           {gl.RGBA_INTEGER, gl.UNSIGNED_INT},
	gl.R32I:               {gl.RED_INTEGER, gl.INT},
	gl.R32UI:              {gl.RED_INTEGER, gl.UNSIGNED_INT},
	gl.DEPTH_COMPONENT16:  {gl.DEPTH_COMPONENT, gl.UNSIGNED_SHORT},
	gl.DEPTH_COMPONENT24:  {gl.DEPTH_COMPONENT, gl.UNSIGNED_INT},
	gl.DEPTH_COMPONENT32F: {gl.DEPTH_COMPONENT, gl.FLOAT},
	gl.DEPTH24_STENCIL8:   {gl.DEPTH_STENCIL, gl.UNSIGNED_INT_24_8},
	gl.DEPTH32F_STENCIL8:  {gl.DEPTH_STENCIL, gl.FLOAT_32_UNSIGNED_INT_24_8_REV},
}

func transferFormat(internal gl.Enum) (format, typ gl.Enum) {
	if t, ok := transfers[internal]; ok {
		return t[0], t[1]
	}
	return gl.RGBA, gl.UNSIGNED_BYTE
}
