// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"math"
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/glkit/gpu/gl"
	"cogentcore.org/glkit/gpu/glsl"
)

// UniformValue is a uniform value normalized to the scalar kind of
// its GLSL type. Exactly one slice is set: Floats for float vectors
// and matrices, Ints for int, bool and sampler types, Uints for
// unsigned types. Matrices are column major.
type UniformValue struct {
	Floats []float32
	Ints   []int32
	Uints  []uint32
}

// Len returns the number of scalars.
func (v UniformValue) Len() int { return len(v.Floats) + len(v.Ints) + len(v.Uints) }

// Equal reports whether v and o hold the same values.
func (v UniformValue) Equal(o UniformValue) bool {
	return slices.Equal(v.Floats, o.Floats) && slices.Equal(v.Ints, o.Ints) && slices.Equal(v.Uints, o.Uints)
}

// IsZero reports whether all values are zero.
func (v UniformValue) IsZero() bool {
	for _, f := range v.Floats {
		if f != 0 {
			return false
		}
	}
	for _, i := range v.Ints {
		if i != 0 {
			return false
		}
	}
	for _, u := range v.Uints {
		if u != 0 {
			return false
		}
	}
	return true
}

func (v UniformValue) clone() UniformValue {
	return UniformValue{Floats: slices.Clone(v.Floats), Ints: slices.Clone(v.Ints), Uints: slices.Clone(v.Uints)}
}

// flatten appends the scalars of a Go value.
func flatten(dst []float64, val any) ([]float64, error) {
	switch v := val.(type) {
	case float32:
		return append(dst, float64(v)), nil
	case float64:
		return append(dst, v), nil
	case int:
		return append(dst, float64(v)), nil
	case int32:
		return append(dst, float64(v)), nil
	case uint32:
		return append(dst, float64(v)), nil
	case bool:
		if v {
			return append(dst, 1), nil
		}
		return append(dst, 0), nil
	case math32.Vector2:
		return append(dst, float64(v.X), float64(v.Y)), nil
	case math32.Vector3:
		return append(dst, float64(v.X), float64(v.Y), float64(v.Z)), nil
	case math32.Vector4:
		return append(dst, float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)), nil
	case math32.Vector2i:
		return append(dst, float64(v.X), float64(v.Y)), nil
	case math32.Vector3i:
		return append(dst, float64(v.X), float64(v.Y), float64(v.Z)), nil
	case math32.Matrix3:
		for _, f := range v {
			dst = append(dst, float64(f))
		}
		return dst, nil
	case math32.Matrix4:
		for _, f := range v {
			dst = append(dst, float64(f))
		}
		return dst, nil
	case *math32.Matrix3:
		return flatten(dst, *v)
	case *math32.Matrix4:
		return flatten(dst, *v)
	case []float32:
		return flattenSlice(dst, v)
	case []float64:
		return append(dst, v...), nil
	case []int:
		return flattenSlice(dst, v)
	case []int32:
		return flattenSlice(dst, v)
	case []uint32:
		return flattenSlice(dst, v)
	case []bool:
		return flattenSlice(dst, v)
	case []math32.Vector2:
		return flattenSlice(dst, v)
	case []math32.Vector3:
		return flattenSlice(dst, v)
	case []math32.Vector4:
		return flattenSlice(dst, v)
	case []math32.Matrix3:
		return flattenSlice(dst, v)
	case []math32.Matrix4:
		return flattenSlice(dst, v)
	case UniformValue:
		for _, f := range v.Floats {
			dst = append(dst, float64(f))
		}
		for _, i := range v.Ints {
			dst = append(dst, float64(i))
		}
		for _, u := range v.Uints {
			dst = append(dst, float64(u))
		}
		return dst, nil
	}
	return dst, fmt.Errorf("unsupported uniform value type %T", val)
}

func flattenSlice[T any](dst []float64, vs []T) ([]float64, error) {
	var err error
	for _, v := range vs {
		if dst, err = flatten(dst, v); err != nil {
			return dst, err
		}
	}
	return dst, nil
}

// NormalizeUniform converts a Go value to the representation of a
// uniform of the given type and array size. Scalars, slices, math32
// vectors and matrices are accepted; the total number of scalars must
// match the type and size exactly.
func NormalizeUniform(typ glsl.Type, size int, val any) (UniformValue, error) {
	vals, err := flatten(nil, val)
	if err != nil {
		return UniformValue{}, err
	}
	need := typ.Len() * max(size, 1)
	if len(vals) != need {
		return UniformValue{}, fmt.Errorf("value has %d components, %s[%d] needs %d", len(vals), typ, max(size, 1), need)
	}
	var uv UniformValue
	switch typ.Kind() {
	case glsl.FloatKind:
		uv.Floats = make([]float32, need)
		for i, v := range vals {
			uv.Floats[i] = float32(v)
		}
	case glsl.UintKind:
		uv.Uints = make([]uint32, need)
		for i, v := range vals {
			if !integral(v, 0, math.MaxUint32) {
				return UniformValue{}, fmt.Errorf("value %g at component %d is not a valid %s", v, i, typ)
			}
			uv.Uints[i] = uint32(v)
		}
	case glsl.IntKind, glsl.SamplerKind:
		uv.Ints = make([]int32, need)
		for i, v := range vals {
			if !integral(v, math.MinInt32, math.MaxInt32) {
				return UniformValue{}, fmt.Errorf("value %g at component %d is not a valid %s", v, i, typ)
			}
			uv.Ints[i] = int32(v)
		}
	case glsl.BoolKind:
		uv.Ints = make([]int32, need)
		for i, v := range vals {
			if v != 0 {
				uv.Ints[i] = 1
			}
		}
	default:
		return UniformValue{}, fmt.Errorf("unsupported uniform type %s", typ)
	}
	return uv, nil
}

// integral reports whether v is a whole number in [lo, hi].
func integral(v, lo, hi float64) bool {
	return v == math.Trunc(v) && v >= lo && v <= hi
}

// DefaultUniform returns the default value of a uniform: zero, or the
// identity for square matrices.
func DefaultUniform(typ glsl.Type, size int) UniformValue {
	n := max(size, 1)
	var uv UniformValue
	switch typ.Kind() {
	case glsl.FloatKind:
		uv.Floats = make([]float32, typ.Len()*n)
		if cols := typ.Columns(); typ.IsMatrix() && cols == typ.Components() {
			for e := range n {
				m := uv.Floats[e*typ.Len():]
				for c := range cols {
					m[c*cols+c] = 1
				}
			}
		}
	case glsl.UintKind:
		uv.Uints = make([]uint32, typ.Len()*n)
	default:
		uv.Ints = make([]int32, typ.Len()*n)
	}
	return uv
}

// uploadUniform sends a value to the current program.
func uploadUniform(ctx gl.Context, loc gl.Uniform, typ glsl.Type, v UniformValue) {
	switch {
	case typ.IsMatrix():
		ctx.UniformMatrixfv(loc, typ.Columns(), typ.Components(), v.Floats)
	case typ.Kind() == glsl.FloatKind:
		ctx.Uniformfv(loc, typ.Components(), v.Floats)
	case typ.Kind() == glsl.UintKind:
		ctx.Uniformuiv(loc, typ.Components(), v.Uints)
	default:
		ctx.Uniformiv(loc, typ.Components(), v.Ints)
	}
}
