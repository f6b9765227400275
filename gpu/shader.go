// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/glkit/gpu/gl"
)

// Stage is a shader pipeline stage.
type Stage int32 //enums:enum

const (
	VertexStage Stage = iota
	FragmentStage
)

// GL returns the native shader type.
func (st Stage) GL() gl.Enum {
	if st == FragmentStage {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

// Shader is a compiled shader stage. Compile errors do not fail
// construction; they are reported by [NewShaderProgram] along with
// the link log.
type Shader struct {
	// Stage of the shader.
	Stage Stage

	// Source is the shader text.
	Source string

	// Shader is the native shader; the zero value after Delete.
	Shader gl.Shader

	// Compiled is the compile status.
	Compiled bool

	// Log is the compile log.
	Log string

	dev *Device
}

// NewShader creates and compiles a shader.
func NewShader(dev *Device, stage Stage, src string) (*Shader, error) {
	ctx := dev.GL
	sh := &Shader{Stage: stage, Source: src, dev: dev}
	sh.Shader = ctx.CreateShader(stage.GL())
	if !sh.Shader.Valid() {
		return nil, fmt.Errorf("gpu.NewShader %s: %w: could not create shader", stage, ErrAllocationFailure)
	}
	ctx.ShaderSource(sh.Shader, src)
	ctx.CompileShader(sh.Shader)
	sh.Compiled = ctx.GetShaderi(sh.Shader, gl.COMPILE_STATUS) != 0
	sh.Log = ctx.GetShaderInfoLog(sh.Shader)
	return sh, nil
}

// Deleted reports whether Delete has been called.
func (sh *Shader) Deleted() bool { return !sh.Shader.Valid() }

// Delete releases the native shader. Programs already linked with it
// are not affected, but it cannot be used to build new ones.
func (sh *Shader) Delete() {
	if sh.Deleted() {
		return
	}
	sh.dev.GL.DeleteShader(sh.Shader)
	sh.Shader = gl.Shader{}
}
