// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltest

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/glkit/gpu/gl"
	"cogentcore.org/glkit/gpu/glsl"
)

// Shader is a shader object. Compilation fails for sources containing
// an #error directive, or for all sources when Context.FailCompile
// is set.
type Shader struct {
	Type     gl.Enum
	Source   string
	Compiled bool
	Log      string

	// Deleted is set when DeleteShader is called while the shader
	// is still attached to a program.
	Deleted bool
}

// Program is a program object. Linking uses shader reflection: a
// declared attribute or uniform is active when its name is referenced
// at least once beyond its declaration.
type Program struct {
	Shaders  []gl.Shader
	Bindings map[string]gl.Attrib
	Linked   bool
	Log      string

	// Attribs are the active attribute locations after link.
	Attribs map[string]gl.Attrib

	// Uniforms are the active uniforms after link.
	Uniforms map[string]*UniformInfo

	// Values holds the uploaded value at each uniform location.
	Values map[gl.Uniform]Value
}

// UniformInfo is an active uniform.
type UniformInfo struct {
	Location gl.Uniform
	Type     glsl.Type
	Size     int
}

// Value is an uploaded uniform value. Exactly one slice is set.
type Value struct {
	Floats []float32
	Ints   []int32
	Uints  []uint32
}

func (c *Context) CreateShader(typ gl.Enum) gl.Shader {
	c.call("CreateShader")
	if typ != gl.VERTEX_SHADER && typ != gl.FRAGMENT_SHADER {
		c.setError(gl.INVALID_ENUM)
		return gl.Shader{}
	}
	if c.FailCreate {
		return gl.Shader{}
	}
	s := gl.Shader{V: c.newID()}
	c.Shaders[s] = &Shader{Type: typ}
	return s
}

func (c *Context) DeleteShader(s gl.Shader) {
	c.call("DeleteShader")
	sh := c.Shaders[s]
	if sh == nil {
		return
	}
	for _, pr := range c.Programs {
		if slices.Contains(pr.Shaders, s) {
			sh.Deleted = true
			return
		}
	}
	delete(c.Shaders, s)
}

func (c *Context) ShaderSource(s gl.Shader, src string) {
	c.call("ShaderSource")
	sh := c.Shaders[s]
	if sh == nil {
		c.setError(gl.INVALID_VALUE)
		return
	}
	sh.Source = src
}

func (c *Context) CompileShader(s gl.Shader) {
	c.call("CompileShader")
	sh := c.Shaders[s]
	if sh == nil {
		c.setError(gl.INVALID_VALUE)
		return
	}
	sh.Compiled = false
	switch {
	case c.FailCompile:
		sh.Log = "ERROR: 0:1: compilation disabled"
	case strings.TrimSpace(sh.Source) == "":
		sh.Log = "ERROR: 0:0: empty source"
	default:
		for _, tok := range glsl.Tokens(sh.Source) {
			if tok.Type == glsl.DirectiveToken && strings.HasPrefix(strings.TrimSpace(strings.TrimPrefix(tok.Text, "#")), "error") {
				sh.Log = fmt.Sprintf("ERROR: 0:%d: '%s'", tok.Line, strings.TrimSpace(tok.Text))
				return
			}
		}
		sh.Log = ""
		sh.Compiled = true
	}
}

func (c *Context) GetShaderi(s gl.Shader, pname gl.Enum) int {
	sh := c.Shaders[s]
	if sh == nil {
		c.setError(gl.INVALID_VALUE)
		return 0
	}
	switch pname {
	case gl.COMPILE_STATUS:
		return boolInt(sh.Compiled)
	case gl.DELETE_STATUS:
		return boolInt(sh.Deleted)
	}
	c.setError(gl.INVALID_ENUM)
	return 0
}

func (c *Context) GetShaderInfoLog(s gl.Shader) string {
	if sh := c.Shaders[s]; sh != nil {
		return sh.Log
	}
	c.setError(gl.INVALID_VALUE)
	return ""
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (c *Context) CreateProgram() gl.Program {
	c.call("CreateProgram")
	if c.FailCreate {
		return gl.Program{}
	}
	p := gl.Program{V: c.newID()}
	c.Programs[p] = &Program{Bindings: map[string]gl.Attrib{}}
	return p
}

func (c *Context) DeleteProgram(p gl.Program) {
	c.call("DeleteProgram")
	pr := c.Programs[p]
	if pr == nil {
		return
	}
	delete(c.Programs, p)
	if c.Program == p {
		c.Program = gl.Program{}
	}
	for _, s := range pr.Shaders {
		if sh := c.Shaders[s]; sh != nil && sh.Deleted {
			delete(c.Shaders, s)
		}
	}
}

func (c *Context) AttachShader(p gl.Program, s gl.Shader) {
	c.call("AttachShader")
	pr := c.Programs[p]
	if pr == nil || c.Shaders[s] == nil {
		c.setError(gl.INVALID_VALUE)
		return
	}
	if slices.Contains(pr.Shaders, s) {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	pr.Shaders = append(pr.Shaders, s)
}

func (c *Context) BindAttribLocation(p gl.Program, a gl.Attrib, name string) {
	c.call("BindAttribLocation")
	pr := c.Programs[p]
	if pr == nil {
		c.setError(gl.INVALID_VALUE)
		return
	}
	if !a.Valid() || int(a) >= c.GetInteger(gl.MAX_VERTEX_ATTRIBS) {
		c.setError(gl.INVALID_VALUE)
		return
	}
	pr.Bindings[name] = a
}

func (c *Context) active(name string, ids map[string]int) bool {
	return !c.Inactive[name] && ids[name] >= 2
}

func (c *Context) LinkProgram(p gl.Program) {
	c.call("LinkProgram")
	pr := c.Programs[p]
	if pr == nil {
		c.setError(gl.INVALID_VALUE)
		return
	}
	pr.Linked = false
	pr.Attribs = map[string]gl.Attrib{}
	pr.Uniforms = map[string]*UniformInfo{}
	pr.Values = map[gl.Uniform]Value{}
	var vs, fs *Shader
	for _, s := range pr.Shaders {
		sh := c.Shaders[s]
		if sh == nil {
			continue
		}
		switch sh.Type {
		case gl.VERTEX_SHADER:
			vs = sh
		case gl.FRAGMENT_SHADER:
			fs = sh
		}
	}
	switch {
	case vs == nil || fs == nil:
		pr.Log = "error: program needs a vertex and a fragment shader"
		return
	case !vs.Compiled || !fs.Compiled:
		pr.Log = "error: attached shader is not compiled"
		return
	case c.LinkError != "":
		pr.Log = c.LinkError
		return
	}

	vids := glsl.Identifiers(vs.Source)
	vr := glsl.Reflect(vs.Source)
	used := map[int]bool{}
	reserve := func(loc, n int) {
		for i := range n {
			used[loc+i] = true
		}
	}
	var pending []glsl.Variable
	for _, in := range vr.Inputs {
		if !c.active(in.Name, vids) {
			continue
		}
		loc := in.Location
		if b, ok := pr.Bindings[in.Name]; ok && loc < 0 {
			loc = int(b)
		}
		if loc < 0 {
			pending = append(pending, in)
			continue
		}
		pr.Attribs[in.Name] = gl.Attrib(loc)
		reserve(loc, in.Type.Columns()*in.Size)
	}
	for _, in := range pending {
		n := in.Type.Columns() * in.Size
		loc := 0
		for !free(used, loc, n) {
			loc++
		}
		pr.Attribs[in.Name] = gl.Attrib(loc)
		reserve(loc, n)
	}

	next := 0
	for _, sh := range []*Shader{vs, fs} {
		ids := glsl.Identifiers(sh.Source)
		for _, u := range glsl.Reflect(sh.Source).Uniforms {
			if _, ok := pr.Uniforms[u.Name]; ok || !c.active(u.Name, ids) {
				continue
			}
			pr.Uniforms[u.Name] = &UniformInfo{Location: gl.Uniform{V: int32(next)}, Type: u.Type, Size: u.Size}
			next += u.Size
		}
	}
	pr.Log = ""
	pr.Linked = true
}

func free(used map[int]bool, loc, n int) bool {
	for i := range n {
		if used[loc+i] {
			return false
		}
	}
	return true
}

func (c *Context) GetProgrami(p gl.Program, pname gl.Enum) int {
	pr := c.Programs[p]
	if pr == nil {
		c.setError(gl.INVALID_VALUE)
		return 0
	}
	if pname == gl.LINK_STATUS {
		return boolInt(pr.Linked)
	}
	c.setError(gl.INVALID_ENUM)
	return 0
}

func (c *Context) GetProgramInfoLog(p gl.Program) string {
	if pr := c.Programs[p]; pr != nil {
		return pr.Log
	}
	c.setError(gl.INVALID_VALUE)
	return ""
}

func (c *Context) UseProgram(p gl.Program) {
	c.call("UseProgram")
	if p.Valid() {
		pr := c.Programs[p]
		if pr == nil || !pr.Linked {
			c.setError(gl.INVALID_OPERATION)
			return
		}
	}
	c.Program = p
}

func (c *Context) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	pr := c.Programs[p]
	if pr == nil || !pr.Linked {
		c.setError(gl.INVALID_OPERATION)
		return -1
	}
	if a, ok := pr.Attribs[name]; ok {
		return a
	}
	return -1
}

func (c *Context) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	pr := c.Programs[p]
	if pr == nil || !pr.Linked {
		c.setError(gl.INVALID_OPERATION)
		return gl.NoUniform
	}
	idx := 0
	if i := strings.IndexByte(name, '['); i > 0 && strings.HasSuffix(name, "]") {
		n, err := strconv.Atoi(name[i+1 : len(name)-1])
		if err != nil {
			return gl.NoUniform
		}
		name, idx = name[:i], n
	}
	u, ok := pr.Uniforms[name]
	if !ok || idx < 0 || idx >= u.Size {
		return gl.NoUniform
	}
	return gl.Uniform{V: u.Location.V + int32(idx)}
}

// UniformValue returns the value uploaded to the named uniform of p.
func (c *Context) UniformValue(p gl.Program, name string) (Value, bool) {
	loc := c.GetUniformLocation(p, name)
	if !loc.Valid() {
		return Value{}, false
	}
	v, ok := c.Programs[p].Values[loc]
	return v, ok
}

// uniformTarget finds the uniform that location u of the current program
// belongs to and checks that n values of width w fit.
func (c *Context) uniformTarget(u gl.Uniform, width, n int) (*Program, *UniformInfo) {
	pr := c.Programs[c.Program]
	if pr == nil {
		c.setError(gl.INVALID_OPERATION)
		return nil, nil
	}
	for _, ui := range pr.Uniforms {
		off := int(u.V - ui.Location.V)
		if off < 0 || off >= ui.Size {
			continue
		}
		if width == 0 || n%width != 0 || n/width > ui.Size-off {
			c.setError(gl.INVALID_VALUE)
			return nil, nil
		}
		return pr, ui
	}
	c.setError(gl.INVALID_OPERATION)
	return nil, nil
}

func (c *Context) Uniformfv(u gl.Uniform, components int, v []float32) {
	c.call("Uniformfv")
	if !u.Valid() {
		return
	}
	pr, ui := c.uniformTarget(u, components, len(v))
	if ui == nil {
		return
	}
	if ui.Type.Kind() != glsl.FloatKind || ui.Type.IsMatrix() || ui.Type.Components() != components {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	pr.Values[u] = Value{Floats: slices.Clone(v)}
}

func (c *Context) Uniformiv(u gl.Uniform, components int, v []int32) {
	c.call("Uniformiv")
	if !u.Valid() {
		return
	}
	pr, ui := c.uniformTarget(u, components, len(v))
	if ui == nil {
		return
	}
	switch ui.Type.Kind() {
	case glsl.IntKind, glsl.BoolKind, glsl.SamplerKind:
	default:
		c.setError(gl.INVALID_OPERATION)
		return
	}
	if ui.Type.Components() != components {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	if ui.Type.IsSampler() {
		for _, unit := range v {
			if unit < 0 || int(unit) >= c.GetInteger(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS) {
				c.setError(gl.INVALID_VALUE)
				return
			}
		}
	}
	pr.Values[u] = Value{Ints: slices.Clone(v)}
}

func (c *Context) Uniformuiv(u gl.Uniform, components int, v []uint32) {
	c.call("Uniformuiv")
	if !u.Valid() {
		return
	}
	pr, ui := c.uniformTarget(u, components, len(v))
	if ui == nil {
		return
	}
	if ui.Type.Kind() != glsl.UintKind && ui.Type.Kind() != glsl.BoolKind || ui.Type.Components() != components {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	pr.Values[u] = Value{Uints: slices.Clone(v)}
}

func (c *Context) UniformMatrixfv(u gl.Uniform, cols, rows int, v []float32) {
	c.call("UniformMatrixfv")
	if !u.Valid() {
		return
	}
	pr, ui := c.uniformTarget(u, cols*rows, len(v))
	if ui == nil {
		return
	}
	if !ui.Type.IsMatrix() || ui.Type.Columns() != cols || ui.Type.Components() != rows {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	pr.Values[u] = Value{Floats: slices.Clone(v)}
}
