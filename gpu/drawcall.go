// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"maps"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/glkit/gpu/gl"
	"cogentcore.org/glkit/gpu/glsl"
)

// CullMode selects which triangle faces are discarded.
type CullMode int32 //enums:enum -trim-prefix Cull

const (
	CullNone CullMode = iota
	CullBack
	CullFront
	CullFrontAndBack
)

// GL returns the native face mode.
func (cm CullMode) GL() gl.Enum {
	switch cm {
	case CullFront:
		return gl.FRONT
	case CullFrontAndBack:
		return gl.FRONT_AND_BACK
	}
	return gl.BACK
}

// DrawCallOptions configures [NewDrawCall].
type DrawCallOptions struct {
	// Name of the draw call, for messages.
	Name string

	// Count is the number of indices to draw; 0 draws to the end of
	// the index buffer.
	Count int

	// Offset is the first index to draw.
	Offset int

	// Instances is the instance count; 0 means 1.
	Instances int `default:"1"`

	// InstancesFunc, if set, returns the instance count at draw time,
	// overriding Instances.
	InstancesFunc func(t float64) int

	// Uniforms are evaluated at each draw and uploaded when changed.
	Uniforms map[string]func(t float64) any

	// Textures are bound per texture unit. Each unit takes at most
	// one texture of each kind.
	Textures map[int][]*Texture

	// Cull selects face culling; CullNone disables it.
	Cull CullMode

	// DepthTest is the depth comparison; CompareNone disables the
	// depth test.
	DepthTest CompareFunc

	// NoDepthWrite disables writing to the depth buffer.
	NoDepthWrite bool

	// Enabled, if set, skips the draw when it returns false.
	Enabled func(t float64) bool
}

// Defaults sets the default values.
func (do *DrawCallOptions) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(do))
}

// unitBinding is the set of textures bound on one texture unit,
// at most one per kind.
type unitBinding struct {
	unit     int
	textures map[TextureKind]*Texture
}

// kinds returns the bound kinds in a stable order.
func (ub *unitBinding) kinds() []TextureKind {
	return slices.Sorted(maps.Keys(ub.textures))
}

type uniformUpdate struct {
	uniform *ProgramUniform
	fn      func(t float64) any
}

// DrawCall is a validated program, VAO and state combination that
// can be drawn repeatedly.
type DrawCall struct {
	// Name of the draw call, for messages.
	Name string

	Program *ShaderProgram
	VAO     *VAO

	// Count and Offset are the resolved index range.
	Count, Offset int

	// Instances is the instance count used without an InstancesFunc.
	Instances int

	InstancesFunc func(t float64) int
	Enabled       func(t float64) bool

	Cull         CullMode
	DepthTest    CompareFunc
	NoDepthWrite bool

	uniforms []uniformUpdate
	units    []unitBinding
	dev      *Device
}

// NewDrawCall checks that vao supplies every input of the program
// with a matching shape, resolves the index range and groups the
// textures by unit.
func NewDrawCall(sp *ShaderProgram, vao *VAO, opts *DrawCallOptions) (*DrawCall, error) {
	if opts == nil {
		opts = &DrawCallOptions{}
		opts.Defaults()
	}
	errPrefix := "gpu.NewDrawCall " + opts.Name
	if sp == nil || vao == nil || vao.Indices == nil {
		return nil, fmt.Errorf("%s: %w: missing program or VAO", errPrefix, ErrEmptyData)
	}
	dc := &DrawCall{Name: opts.Name, Program: sp, VAO: vao, Offset: opts.Offset, Count: opts.Count,
		Instances: max(opts.Instances, 1), InstancesFunc: opts.InstancesFunc, Enabled: opts.Enabled,
		Cull: opts.Cull, DepthTest: opts.DepthTest, NoDepthWrite: opts.NoDepthWrite, dev: sp.dev}
	if opts.Instances < 0 {
		return nil, fmt.Errorf("%s: %w: %d", errPrefix, ErrInvalidInstanceCount, opts.Instances)
	}
	total := vao.Indices.Count
	if dc.Count == 0 {
		dc.Count = total - dc.Offset
	}
	if dc.Offset < 0 || dc.Count <= 0 || dc.Offset+dc.Count > total {
		return nil, fmt.Errorf("%s: %w: offset %d count %d in %d indices", errPrefix, ErrInvalidRange, opts.Offset, opts.Count, total)
	}
	if err := dc.checkAttributes(); err != nil {
		return nil, fmt.Errorf("%s: %w", errPrefix, err)
	}
	for _, nm := range slices.Sorted(maps.Keys(opts.Uniforms)) {
		u, ok := sp.Uniforms[nm]
		if !ok {
			dc.dev.warn("gpu.NewDrawCall: update given for an unknown uniform", "draw", dc.Name, "uniform", nm)
			continue
		}
		if fn := opts.Uniforms[nm]; fn != nil {
			dc.uniforms = append(dc.uniforms, uniformUpdate{uniform: u, fn: fn})
		}
	}
	if err := dc.groupTextures(opts.Textures); err != nil {
		return nil, fmt.Errorf("%s: %w", errPrefix, err)
	}
	return dc, nil
}

// checkAttributes compares every program input with the VAO
// attribute at its location.
func (dc *DrawCall) checkAttributes() error {
	sp := dc.Program
	for _, nm := range slices.Sorted(maps.Keys(sp.Attributes)) {
		pa := sp.Attributes[nm]
		at, ok := dc.VAO.Attribute(pa.Location)
		if !ok {
			return fmt.Errorf("%w: VAO %s has nothing at location %d for %q", ErrAttributeNotFound, dc.VAO.Name, pa.Location, nm)
		}
		if at.Size != pa.Type.Components() || at.Locations() != pa.Type.Columns() {
			return &AttributeTypeMismatchError{Attribute: nm, Location: pa.Location,
				Actual: glsl.Shape(at.Size, at.Locations()), Expected: pa.Type.String()}
		}
		if kind := at.scalarKind(); kind != pa.Type.Kind() {
			dc.dev.warn("gpu.NewDrawCall: attribute scalar kind differs from the shader input", "draw", dc.Name, "attribute", nm,
				"location", pa.Location, "type", at.DataType(), "integer", at.Integer, "input", pa.Type)
		}
	}
	return nil
}

func (dc *DrawCall) groupTextures(units map[int][]*Texture) error {
	maxUnits := dc.dev.Caps.MaxTextureUnits
	for _, unit := range slices.Sorted(maps.Keys(units)) {
		if unit < 0 || unit >= maxUnits {
			return fmt.Errorf("%w: texture unit %d is not in 0-%d", ErrInvalidRange, unit, maxUnits-1)
		}
		ub := unitBinding{unit: unit, textures: map[TextureKind]*Texture{}}
		for _, tx := range units[unit] {
			if tx == nil {
				return fmt.Errorf("%w: nil texture on unit %d", ErrEmptyData, unit)
			}
			if prev, has := ub.textures[tx.Kind]; has {
				return fmt.Errorf("%w: unit %d has %s textures %s and %s", ErrTextureUnitConflict, unit, tx.Kind, prev.Name, tx.Name)
			}
			ub.textures[tx.Kind] = tx
		}
		if len(ub.textures) > 0 {
			dc.units = append(dc.units, ub)
		}
	}
	return nil
}

// Draw issues the draw call at time t. Uniform updates are evaluated
// at t. Culling, depth state, texture bindings, program and VAO are
// reset afterwards whether or not the draw succeeds.
func (dc *DrawCall) Draw(t float64) error {
	if dc.Enabled != nil && !dc.Enabled(t) {
		return nil
	}
	errPrefix := "gpu.DrawCall.Draw " + dc.Name
	instances := dc.Instances
	if dc.InstancesFunc != nil {
		instances = dc.InstancesFunc(t)
	}
	if instances < 1 {
		return fmt.Errorf("%s: %w: %d", errPrefix, ErrInvalidInstanceCount, instances)
	}
	ctx := dc.dev.GL
	drainErrors(ctx)
	ctx.UseProgram(dc.Program.Program)
	ctx.BindVertexArray(dc.VAO.Array)
	defer dc.reset()
	if dc.Cull != CullNone {
		ctx.Enable(gl.CULL_FACE)
		ctx.CullFace(dc.Cull.GL())
	}
	if dc.DepthTest != CompareNone {
		ctx.Enable(gl.DEPTH_TEST)
		ctx.DepthFunc(dc.DepthTest.GL())
	}
	ctx.DepthMask(!dc.NoDepthWrite)
	for _, uu := range dc.uniforms {
		if err := dc.Program.setUniform(uu.uniform, uu.fn(t)); err != nil {
			return fmt.Errorf("%s: %w", errPrefix, err)
		}
	}
	for _, ub := range dc.units {
		ctx.ActiveTexture(gl.TEXTURE0 + gl.Enum(ub.unit))
		for _, k := range ub.kinds() {
			ctx.BindTexture(k.GL(), ub.textures[k].Texture)
		}
	}
	ix := dc.VAO.Indices
	offset := dc.Offset * ix.Type.Bytes()
	if instances > 1 {
		ctx.DrawElementsInstanced(gl.TRIANGLES, dc.Count, ix.Type.GL(), offset, instances)
	} else {
		ctx.DrawElements(gl.TRIANGLES, dc.Count, ix.Type.GL(), offset)
	}
	return nativeError(ctx, ErrDrawFailure, errPrefix)
}

// reset restores the state Draw changes to its defaults.
func (dc *DrawCall) reset() {
	ctx := dc.dev.GL
	ctx.Disable(gl.CULL_FACE)
	ctx.Disable(gl.DEPTH_TEST)
	ctx.DepthMask(true)
	for _, ub := range slices.Backward(dc.units) {
		ctx.ActiveTexture(gl.TEXTURE0 + gl.Enum(ub.unit))
		for _, k := range ub.kinds() {
			ctx.BindTexture(k.GL(), gl.Texture{})
		}
	}
	ctx.ActiveTexture(gl.TEXTURE0)
	ctx.BindVertexArray(gl.VertexArray{})
	ctx.UseProgram(gl.Program{})
}
