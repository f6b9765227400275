// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import "fmt"

// Enum is a native enumerant value.
type Enum uint32

const (
	NONE  Enum = 0
	FALSE      = 0
	TRUE       = 1

	// errors
	NO_ERROR                      Enum = 0
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506

	// buffers
	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	STREAM_DRAW          Enum = 0x88E0
	STATIC_DRAW          Enum = 0x88E4
	DYNAMIC_DRAW         Enum = 0x88E8

	// data types
	BYTE                           Enum = 0x1400
	UNSIGNED_BYTE                  Enum = 0x1401
	SHORT                          Enum = 0x1402
	UNSIGNED_SHORT                 Enum = 0x1403
	INT                            Enum = 0x1404
	UNSIGNED_INT                   Enum = 0x1405
	FLOAT                          Enum = 0x1406
	HALF_FLOAT                     Enum = 0x140B
	UNSIGNED_INT_24_8              Enum = 0x84FA
	FLOAT_32_UNSIGNED_INT_24_8_REV Enum = 0x8DAD

	// texture targets
	TEXTURE_2D                  Enum = 0x0DE1
	TEXTURE_3D                  Enum = 0x806F
	TEXTURE_CUBE_MAP            Enum = 0x8513
	TEXTURE_CUBE_MAP_POSITIVE_X Enum = 0x8515
	TEXTURE_CUBE_MAP_NEGATIVE_X Enum = 0x8516
	TEXTURE_CUBE_MAP_POSITIVE_Y Enum = 0x8517
	TEXTURE_CUBE_MAP_NEGATIVE_Y Enum = 0x8518
	TEXTURE_CUBE_MAP_POSITIVE_Z Enum = 0x8519
	TEXTURE_CUBE_MAP_NEGATIVE_Z Enum = 0x851A
	TEXTURE_2D_ARRAY            Enum = 0x8C1A
	TEXTURE0                    Enum = 0x84C0

	// texture parameters
	TEXTURE_MAG_FILTER     Enum = 0x2800
	TEXTURE_MIN_FILTER     Enum = 0x2801
	TEXTURE_WRAP_S         Enum = 0x2802
	TEXTURE_WRAP_T         Enum = 0x2803
	TEXTURE_WRAP_R         Enum = 0x8072
	TEXTURE_BASE_LEVEL     Enum = 0x813C
	TEXTURE_MAX_LEVEL      Enum = 0x813D
	TEXTURE_COMPARE_MODE   Enum = 0x884C
	TEXTURE_COMPARE_FUNC   Enum = 0x884D
	COMPARE_REF_TO_TEXTURE Enum = 0x884E
	UNPACK_ALIGNMENT       Enum = 0x0CF5

	NEAREST                Enum = 0x2600
	LINEAR                 Enum = 0x2601
	NEAREST_MIPMAP_NEAREST Enum = 0x2700
	LINEAR_MIPMAP_NEAREST  Enum = 0x2701
	NEAREST_MIPMAP_LINEAR  Enum = 0x2702
	LINEAR_MIPMAP_LINEAR   Enum = 0x2703
	REPEAT                 Enum = 0x2901
	CLAMP_TO_EDGE          Enum = 0x812F
	MIRRORED_REPEAT        Enum = 0x8370

	// comparison functions
	NEVER    Enum = 0x0200
	LESS     Enum = 0x0201
	EQUAL    Enum = 0x0202
	LEQUAL   Enum = 0x0203
	GREATER  Enum = 0x0204
	NOTEQUAL Enum = 0x0205
	GEQUAL   Enum = 0x0206
	ALWAYS   Enum = 0x0207

	// pixel formats
	DEPTH_COMPONENT Enum = 0x1902
	RED             Enum = 0x1903
	RGB             Enum = 0x1907
	RGBA            Enum = 0x1908
	RG              Enum = 0x8227
	RG_INTEGER      Enum = 0x8228
	DEPTH_STENCIL   Enum = 0x84F9
	RED_INTEGER     Enum = 0x8D94
	RGB_INTEGER     Enum = 0x8D98
	RGBA_INTEGER    Enum = 0x8D99

	// internal formats
	RGB8               Enum = 0x8051
	RGBA8              Enum = 0x8058
	DEPTH_COMPONENT16  Enum = 0x81A5
	DEPTH_COMPONENT24  Enum = 0x81A6
	R8                 Enum = 0x8229
	RG8                Enum = 0x822B
	R16F               Enum = 0x822D
	R32F               Enum = 0x822E
	RG16F              Enum = 0x822F
	RG32F              Enum = 0x8230
	R32I               Enum = 0x8235
	R32UI              Enum = 0x8236
	RGBA32F            Enum = 0x8814
	RGB32F             Enum = 0x8815
	RGBA16F            Enum = 0x881A
	RGB16F             Enum = 0x881B
	DEPTH24_STENCIL8   Enum = 0x88F0
	R11F_G11F_B10F     Enum = 0x8C3A
	SRGB8_ALPHA8       Enum = 0x8C43
	DEPTH_COMPONENT32F Enum = 0x8CAC
	DEPTH32F_STENCIL8  Enum = 0x8CAD
	RGBA32UI           Enum = 0x8D70
	RGBA8UI            Enum = 0x8D7C

	// framebuffers
	FRAMEBUFFER                                Enum = 0x8D40
	READ_FRAMEBUFFER                           Enum = 0x8CA8
	DRAW_FRAMEBUFFER                           Enum = 0x8CA9
	RENDERBUFFER                               Enum = 0x8D41
	COLOR_ATTACHMENT0                          Enum = 0x8CE0
	DEPTH_ATTACHMENT                           Enum = 0x8D00
	STENCIL_ATTACHMENT                         Enum = 0x8D20
	DEPTH_STENCIL_ATTACHMENT                   Enum = 0x821A
	FRAMEBUFFER_COMPLETE                       Enum = 0x8CD5
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT          Enum = 0x8CD6
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT  Enum = 0x8CD7
	FRAMEBUFFER_INCOMPLETE_DIMENSIONS          Enum = 0x8CD9
	FRAMEBUFFER_UNSUPPORTED                    Enum = 0x8CDD
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE         Enum = 0x8D56
	FRAMEBUFFER_UNDEFINED                      Enum = 0x8219
	COLOR_BUFFER_BIT                           Enum = 0x4000
	DEPTH_BUFFER_BIT                           Enum = 0x0100

	// shaders
	FRAGMENT_SHADER Enum = 0x8B30
	VERTEX_SHADER   Enum = 0x8B31
	DELETE_STATUS   Enum = 0x8B80
	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82

	// capabilities and state
	CULL_FACE      Enum = 0x0B44
	DEPTH_TEST     Enum = 0x0B71
	BLEND          Enum = 0x0BE2
	FRONT          Enum = 0x0404
	BACK           Enum = 0x0405
	FRONT_AND_BACK Enum = 0x0408
	TRIANGLES      Enum = 0x0004

	// queries
	VENDOR                           Enum = 0x1F00
	RENDERER                         Enum = 0x1F01
	VERSION                          Enum = 0x1F02
	EXTENSIONS                       Enum = 0x1F03
	SHADING_LANGUAGE_VERSION         Enum = 0x8B8C
	NUM_EXTENSIONS                   Enum = 0x821D
	MAX_TEXTURE_SIZE                 Enum = 0x0D33
	MAX_3D_TEXTURE_SIZE              Enum = 0x8073
	MAX_CUBE_MAP_TEXTURE_SIZE        Enum = 0x851C
	MAX_RENDERBUFFER_SIZE            Enum = 0x84E8
	MAX_DRAW_BUFFERS                 Enum = 0x8824
	MAX_VERTEX_ATTRIBS               Enum = 0x8869
	MAX_ARRAY_TEXTURE_LAYERS         Enum = 0x88FF
	MAX_COMBINED_TEXTURE_IMAGE_UNITS Enum = 0x8B4D
	MAX_COLOR_ATTACHMENTS            Enum = 0x8CDF
	MAX_SAMPLES                      Enum = 0x8D57
)

var enumNames = map[Enum]string{
	INVALID_ENUM:                              "INVALID_ENUM",
	INVALID_VALUE:                             "INVALID_VALUE",
	INVALID_OPERATION:                         "INVALID_OPERATION",
	OUT_OF_MEMORY:                             "OUT_OF_MEMORY",
	INVALID_FRAMEBUFFER_OPERATION:             "INVALID_FRAMEBUFFER_OPERATION",
	FRAMEBUFFER_COMPLETE:                      "FRAMEBUFFER_COMPLETE",
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT:         "FRAMEBUFFER_INCOMPLETE_ATTACHMENT",
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT: "FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT",
	FRAMEBUFFER_INCOMPLETE_DIMENSIONS:         "FRAMEBUFFER_INCOMPLETE_DIMENSIONS",
	FRAMEBUFFER_UNSUPPORTED:                   "FRAMEBUFFER_UNSUPPORTED",
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:        "FRAMEBUFFER_INCOMPLETE_MULTISAMPLE",
	FRAMEBUFFER_UNDEFINED:                     "FRAMEBUFFER_UNDEFINED",
}

// String returns the symbolic name of error and framebuffer status
// values, and the hex value for everything else.
func (e Enum) String() string {
	if e == NO_ERROR {
		return "NO_ERROR"
	}
	if nm, ok := enumNames[e]; ok {
		return nm
	}
	return fmt.Sprintf("0x%04X", uint32(e))
}
