// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glsl

// See: https://www.khronos.org/opengl/wiki/Data_Type_(GLSL)

// Type is a GLSL type that can appear in an attribute or uniform
// declaration.
type Type int32

const (
	Unknown Type = iota

	Float
	Vec2
	Vec3
	Vec4

	Int
	IVec2
	IVec3
	IVec4

	Uint
	UVec2
	UVec3
	UVec4

	Bool
	BVec2
	BVec3
	BVec4

	Mat2
	Mat3
	Mat4
	Mat2x3
	Mat2x4
	Mat3x2
	Mat3x4
	Mat4x2
	Mat4x3

	Sampler2D
	Sampler3D
	SamplerCube
	Sampler2DArray
	Sampler2DShadow
	SamplerCubeShadow
	Sampler2DArrayShadow
	ISampler2D
	ISampler3D
	ISamplerCube
	ISampler2DArray
	USampler2D
	USampler3D
	USamplerCube
	USampler2DArray
)

// Kinds is the scalar kind of a [Type], which determines the native
// upload entry point.
type Kinds int32

const (
	UnknownKind Kinds = iota
	FloatKind
	IntKind
	UintKind
	BoolKind
	SamplerKind
)

// Dims is the texture dimensionality a sampler type reads from.
type Dims int32

const (
	NoDim Dims = iota
	Dim2D
	Dim3D
	DimCube
	Dim2DArray
)

type typeInfo struct {
	name   string
	kind   Kinds
	rows   int
	cols   int
	dim    Dims
	shadow bool
}

var typeInfos = map[Type]typeInfo{
	Float: {"float", FloatKind, 1, 1, NoDim, false},
	Vec2:  {"vec2", FloatKind, 2, 1, NoDim, false},
	Vec3:  {"vec3", FloatKind, 3, 1, NoDim, false},
	Vec4:  {"vec4", FloatKind, 4, 1, NoDim, false},

	Int:   {"int", IntKind, 1, 1, NoDim, false},
	IVec2: {"ivec2", IntKind, 2, 1, NoDim, false},
	IVec3: {"ivec3", IntKind, 3, 1, NoDim, false},
	IVec4: {"ivec4", IntKind, 4, 1, NoDim, false},

	Uint:  {"uint", UintKind, 1, 1, NoDim, false},
	UVec2: {"uvec2", UintKind, 2, 1, NoDim, false},
	UVec3: {"uvec3", UintKind, 3, 1, NoDim, false},
	UVec4: {"uvec4", UintKind, 4, 1, NoDim, false},

	Bool:  {"bool", BoolKind, 1, 1, NoDim, false},
	BVec2: {"bvec2", BoolKind, 2, 1, NoDim, false},
	BVec3: {"bvec3", BoolKind, 3, 1, NoDim, false},
	BVec4: {"bvec4", BoolKind, 4, 1, NoDim, false},

	// matCxR has C columns of R rows
	Mat2:   {"mat2", FloatKind, 2, 2, NoDim, false},
	Mat3:   {"mat3", FloatKind, 3, 3, NoDim, false},
	Mat4:   {"mat4", FloatKind, 4, 4, NoDim, false},
	Mat2x3: {"mat2x3", FloatKind, 3, 2, NoDim, false},
	Mat2x4: {"mat2x4", FloatKind, 4, 2, NoDim, false},
	Mat3x2: {"mat3x2", FloatKind, 2, 3, NoDim, false},
	Mat3x4: {"mat3x4", FloatKind, 4, 3, NoDim, false},
	Mat4x2: {"mat4x2", FloatKind, 2, 4, NoDim, false},
	Mat4x3: {"mat4x3", FloatKind, 3, 4, NoDim, false},

	Sampler2D:            {"sampler2D", SamplerKind, 1, 1, Dim2D, false},
	Sampler3D:            {"sampler3D", SamplerKind, 1, 1, Dim3D, false},
	SamplerCube:          {"samplerCube", SamplerKind, 1, 1, DimCube, false},
	Sampler2DArray:       {"sampler2DArray", SamplerKind, 1, 1, Dim2DArray, false},
	Sampler2DShadow:      {"sampler2DShadow", SamplerKind, 1, 1, Dim2D, true},
	SamplerCubeShadow:    {"samplerCubeShadow", SamplerKind, 1, 1, DimCube, true},
	Sampler2DArrayShadow: {"sampler2DArrayShadow", SamplerKind, 1, 1, Dim2DArray, true},
	ISampler2D:           {"isampler2D", SamplerKind, 1, 1, Dim2D, false},
	ISampler3D:           {"isampler3D", SamplerKind, 1, 1, Dim3D, false},
	ISamplerCube:         {"isamplerCube", SamplerKind, 1, 1, DimCube, false},
	ISampler2DArray:      {"isampler2DArray", SamplerKind, 1, 1, Dim2DArray, false},
	USampler2D:           {"usampler2D", SamplerKind, 1, 1, Dim2D, false},
	USampler3D:           {"usampler3D", SamplerKind, 1, 1, Dim3D, false},
	USamplerCube:         {"usamplerCube", SamplerKind, 1, 1, DimCube, false},
	USampler2DArray:      {"usampler2DArray", SamplerKind, 1, 1, Dim2DArray, false},
}

var typesByName = func() map[string]Type {
	m := make(map[string]Type, len(typeInfos))
	for tp, ti := range typeInfos {
		m[ti.name] = tp
	}
	return m
}()

// TypeByName returns the Type for a GLSL type name, or Unknown.
func TypeByName(name string) Type {
	return typesByName[name]
}

// String returns the GLSL spelling of the type.
func (tp Type) String() string {
	if ti, ok := typeInfos[tp]; ok {
		return ti.name
	}
	return "unknown"
}

// Kind returns the scalar kind.
func (tp Type) Kind() Kinds { return typeInfos[tp].kind }

// Components returns the number of components per column:
// 3 for vec3 and mat4x3, 1 for scalars and samplers.
func (tp Type) Components() int { return typeInfos[tp].rows }

// Columns returns the number of matrix columns, 1 for non-matrix types.
// A matrix attribute occupies this many consecutive locations.
func (tp Type) Columns() int { return typeInfos[tp].cols }

// Len returns the total number of scalar values of one element.
func (tp Type) Len() int {
	ti := typeInfos[tp]
	return ti.rows * ti.cols
}

// IsMatrix returns true for the matCxR types.
func (tp Type) IsMatrix() bool { return typeInfos[tp].cols > 1 }

// IsSampler returns true for all sampler types.
func (tp Type) IsSampler() bool { return typeInfos[tp].kind == SamplerKind }

// Dim returns the texture dimensionality of a sampler type.
func (tp Type) Dim() Dims { return typeInfos[tp].dim }

// IsShadow returns true for depth comparison samplers.
func (tp Type) IsShadow() bool { return typeInfos[tp].shadow }

// Shape returns the GLSL type name for a value with the given number of
// components per column and columns, assuming float data: 3,1 is "vec3",
// 4,4 is "mat4" and 3,2 is "mat2x3".
func Shape(components, columns int) string {
	for tp, ti := range typeInfos {
		if ti.kind == FloatKind && ti.rows == components && ti.cols == columns {
			return tp.String()
		}
	}
	return "unknown"
}
