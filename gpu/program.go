// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"cogentcore.org/glkit/gpu/gl"
	"cogentcore.org/glkit/gpu/glsl"
)

// ProgramOptions configures [NewShaderProgram].
type ProgramOptions struct {
	// Uniforms are initial uniform values by name. Samplers must be
	// given a texture unit here; other uniforms default to zero, or
	// the identity for matrices.
	Uniforms map[string]any

	// AttributeLocations are locations bound to vertex inputs before
	// linking. A layout(location) qualifier in the source takes
	// precedence.
	AttributeLocations map[string]int
}

// Defaults sets the default values.
func (po *ProgramOptions) Defaults() {
	po.Uniforms = map[string]any{}
	po.AttributeLocations = map[string]int{}
}

// ProgramAttribute is an active vertex input of a linked program.
type ProgramAttribute struct {
	Name string

	// Location is the first linked location. Matrix inputs occupy
	// one location per column.
	Location int

	// Type is the GLSL type.
	Type glsl.Type

	// Size is the array size, 1 for non-arrays.
	Size int

	// Precision is the declared precision qualifier, if any.
	Precision string
}

// ProgramUniform is an active uniform of a linked program.
type ProgramUniform struct {
	Name string

	// Type is the GLSL type of one element.
	Type glsl.Type

	// Size is the array size, 1 for non-arrays.
	Size int

	// Location is the native location.
	Location gl.Uniform

	// Precision is the declared precision qualifier, if any.
	Precision string

	value UniformValue
}

// Value returns a copy of the current value.
func (u *ProgramUniform) Value() UniformValue { return u.value.clone() }

// ShaderProgram is a linked vertex and fragment shader pair with its
// reflected attributes and uniforms.
type ShaderProgram struct {
	// Name of the program, for messages.
	Name string

	// Program is the native program.
	Program gl.Program

	// Vertex and Fragment are the shaders it was linked from.
	Vertex, Fragment *Shader

	// Version is the #version of the vertex shader.
	Version string

	// Attributes are the active vertex inputs, by name.
	Attributes map[string]*ProgramAttribute

	// Uniforms are the active uniforms of both stages, by name.
	Uniforms map[string]*ProgramUniform

	dev *Device
}

// Attribute returns the named active attribute.
func (sp *ShaderProgram) Attribute(name string) (*ProgramAttribute, bool) {
	a, ok := sp.Attributes[name]
	return a, ok
}

// Uniform returns the named active uniform.
func (sp *ShaderProgram) Uniform(name string) (*ProgramUniform, bool) {
	u, ok := sp.Uniforms[name]
	return u, ok
}

// NewShaderProgram links vs and fs into a program. Vertex inputs and
// uniforms are reflected from the sources and resolved against the
// linked program; declarations the linker removed are dropped with a
// warning. Initial uniform values are uploaded before returning.
func NewShaderProgram(dev *Device, name string, vs, fs *Shader, opts *ProgramOptions) (*ShaderProgram, error) {
	errPrefix := "gpu.NewShaderProgram " + name
	if opts == nil {
		opts = &ProgramOptions{}
		opts.Defaults()
	}
	switch {
	case vs == nil || fs == nil:
		return nil, fmt.Errorf("%s: %w: missing shader", errPrefix, ErrShaderDeleted)
	case vs.Deleted() || fs.Deleted():
		return nil, fmt.Errorf("%s: %w", errPrefix, ErrShaderDeleted)
	case vs.Stage != VertexStage:
		return nil, fmt.Errorf("%s: %w: %s shader given as vertex shader", errPrefix, ErrShaderStage, vs.Stage)
	case fs.Stage != FragmentStage:
		return nil, fmt.Errorf("%s: %w: %s shader given as fragment shader", errPrefix, ErrShaderStage, fs.Stage)
	}
	vr := glsl.Reflect(vs.Source)
	fr := glsl.Reflect(fs.Source)
	for _, un := range slices.Concat(vr.Unsupported, fr.Unsupported) {
		dev.warn("gpu.NewShaderProgram: declaration not reflected", "program", name, "declaration", un)
	}

	ctx := dev.GL
	drainErrors(ctx)
	sp := &ShaderProgram{Name: name, Vertex: vs, Fragment: fs, Version: vr.Version, dev: dev,
		Attributes: map[string]*ProgramAttribute{}, Uniforms: map[string]*ProgramUniform{}}
	sp.Program = ctx.CreateProgram()
	if !sp.Program.Valid() {
		return nil, fmt.Errorf("%s: %w: could not create program", errPrefix, ErrAllocationFailure)
	}
	ctx.AttachShader(sp.Program, vs.Shader)
	ctx.AttachShader(sp.Program, fs.Shader)
	sp.bindLocations(vr, opts.AttributeLocations)
	ctx.LinkProgram(sp.Program)
	if ctx.GetProgrami(sp.Program, gl.LINK_STATUS) == 0 {
		err := fmt.Errorf("%s: %w\nprogram log: %s\nvertex log: %s\nfragment log: %s", errPrefix, ErrLinkFailure,
			strings.TrimSpace(ctx.GetProgramInfoLog(sp.Program)), strings.TrimSpace(vs.Log), strings.TrimSpace(fs.Log))
		ctx.DeleteProgram(sp.Program)
		return nil, err
	}

	for _, in := range vr.Inputs {
		loc := ctx.GetAttribLocation(sp.Program, in.Name)
		if !loc.Valid() {
			dev.warn("gpu.NewShaderProgram: attribute is not active, dropped", "program", name, "attribute", in.Name)
			continue
		}
		sp.Attributes[in.Name] = &ProgramAttribute{Name: in.Name, Location: int(loc), Type: in.Type, Size: in.Size, Precision: in.Precision}
	}
	dropped := map[string]bool{}
	for _, un := range slices.Concat(vr.Uniforms, fr.Uniforms) {
		if prev, ok := sp.Uniforms[un.Name]; ok {
			if prev.Type != un.Type || prev.Size != un.Size {
				dev.warn("gpu.NewShaderProgram: uniform declared differently in each stage", "program", name, "uniform", un.Name)
			}
			continue
		}
		if dropped[un.Name] {
			continue
		}
		loc := ctx.GetUniformLocation(sp.Program, un.Name)
		if !loc.Valid() {
			dropped[un.Name] = true
			dev.warn("gpu.NewShaderProgram: uniform is not active, dropped", "program", name, "uniform", un.Name)
			continue
		}
		sp.Uniforms[un.Name] = &ProgramUniform{Name: un.Name, Type: un.Type, Size: un.Size, Location: loc, Precision: un.Precision}
	}

	if err := sp.initUniforms(opts.Uniforms); err != nil {
		ctx.DeleteProgram(sp.Program)
		return nil, fmt.Errorf("%s: %w", errPrefix, err)
	}
	if err := nativeError(ctx, ErrLinkFailure, errPrefix); err != nil {
		ctx.DeleteProgram(sp.Program)
		return nil, err
	}
	return sp, nil
}

// bindLocations binds explicit attribute locations before linking.
func (sp *ShaderProgram) bindLocations(vr *glsl.Reflection, locs map[string]int) {
	dev := sp.dev
	for _, nm := range slices.Sorted(maps.Keys(locs)) {
		loc := locs[nm]
		idx := slices.IndexFunc(vr.Inputs, func(v glsl.Variable) bool { return v.Name == nm })
		if idx < 0 {
			dev.warn("gpu.NewShaderProgram: location given for an unknown attribute", "program", sp.Name, "attribute", nm)
			continue
		}
		if in := vr.Inputs[idx]; in.Location >= 0 && in.Location != loc {
			dev.warn("gpu.NewShaderProgram: attribute location conflicts with the shader layout, using the layout", "program", sp.Name, "attribute", nm, "location", loc, "layout", in.Location)
			continue
		}
		if loc < 0 || loc >= dev.Caps.MaxVertexAttribs {
			dev.warn("gpu.NewShaderProgram: attribute location out of range, ignored", "program", sp.Name, "attribute", nm, "location", loc)
			continue
		}
		dev.GL.BindAttribLocation(sp.Program, gl.Attrib(loc), nm)
	}
}

// initUniforms resolves initial values and uploads the ones that are
// not all zero, which is the native initial state.
func (sp *ShaderProgram) initUniforms(vals map[string]any) error {
	for _, nm := range slices.Sorted(maps.Keys(vals)) {
		if _, ok := sp.Uniforms[nm]; !ok {
			sp.dev.warn("gpu.NewShaderProgram: value given for an unknown uniform", "program", sp.Name, "uniform", nm)
		}
	}
	names := slices.Sorted(maps.Keys(sp.Uniforms))
	var upload []*ProgramUniform
	for _, nm := range names {
		u := sp.Uniforms[nm]
		val, ok := vals[nm]
		if !ok {
			if u.Type.IsSampler() {
				return fmt.Errorf("%w: sampler %q needs a texture unit", ErrMissingUniformDefault, nm)
			}
			u.value = DefaultUniform(u.Type, u.Size)
			if !u.value.IsZero() {
				upload = append(upload, u)
			}
			continue
		}
		uv, err := NormalizeUniform(u.Type, u.Size, val)
		if err != nil {
			return fmt.Errorf("%w: uniform %q: %w", ErrUniformUpdateFailure, nm, err)
		}
		if u.Type.IsSampler() {
			for _, unit := range uv.Ints {
				if unit < 0 || int(unit) >= sp.dev.Caps.MaxTextureUnits {
					return fmt.Errorf("%w: sampler %q unit %d is not in 0-%d", ErrInvalidRange, nm, unit, sp.dev.Caps.MaxTextureUnits-1)
				}
			}
		}
		u.value = uv
		upload = append(upload, u)
	}
	if len(upload) == 0 {
		return nil
	}
	ctx := sp.dev.GL
	ctx.UseProgram(sp.Program)
	for _, u := range upload {
		uploadUniform(ctx, u.Location, u.Type, u.value)
	}
	ctx.UseProgram(gl.Program{})
	return nil
}

// setUniform uploads a value to the bound program if it differs from
// the current one.
func (sp *ShaderProgram) setUniform(u *ProgramUniform, val any) error {
	uv, err := NormalizeUniform(u.Type, u.Size, val)
	if err != nil {
		return fmt.Errorf("%w: uniform %q: %w", ErrUniformUpdateFailure, u.Name, err)
	}
	if uv.Equal(u.value) {
		return nil
	}
	ctx := sp.dev.GL
	drainErrors(ctx)
	uploadUniform(ctx, u.Location, u.Type, uv)
	if err := nativeError(ctx, ErrUniformUpdateFailure, "uniform "+u.Name); err != nil {
		return err
	}
	u.value = uv
	return nil
}

// SetUniform sets the value of the named uniform. Values are checked
// against the uniform type and uploaded only when changed.
func (sp *ShaderProgram) SetUniform(name string, val any) error {
	errPrefix := "gpu.ShaderProgram.SetUniform " + sp.Name
	u, ok := sp.Uniforms[name]
	if !ok {
		return fmt.Errorf("%s: %w: no active uniform %q", errPrefix, ErrUniformUpdateFailure, name)
	}
	ctx := sp.dev.GL
	ctx.UseProgram(sp.Program)
	defer ctx.UseProgram(gl.Program{})
	if err := sp.setUniform(u, val); err != nil {
		return fmt.Errorf("%s: %w", errPrefix, err)
	}
	return nil
}

// Delete releases the native program. The shaders are not deleted.
func (sp *ShaderProgram) Delete() {
	if !sp.Program.Valid() {
		return
	}
	sp.dev.GL.DeleteProgram(sp.Program)
	sp.Program = gl.Program{}
}
