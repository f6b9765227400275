// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

// Handles to native objects. The zero value of each is the "no object"
// handle, which is also what the API binds to unbind a target.
type (
	Buffer       struct{ V uint32 }
	VertexArray  struct{ V uint32 }
	Texture      struct{ V uint32 }
	Renderbuffer struct{ V uint32 }
	Framebuffer  struct{ V uint32 }
	Shader       struct{ V uint32 }
	Program      struct{ V uint32 }

	// Uniform is a uniform location. -1 means the uniform does not exist
	// in the linked program.
	Uniform struct{ V int32 }

	// Attrib is a vertex attribute location. -1 means not found.
	Attrib int32
)

// NoUniform is returned for uniforms that are not active in a program.
var NoUniform = Uniform{V: -1}

func (b Buffer) Valid() bool       { return b.V != 0 }
func (a VertexArray) Valid() bool  { return a.V != 0 }
func (t Texture) Valid() bool      { return t.V != 0 }
func (r Renderbuffer) Valid() bool { return r.V != 0 }
func (f Framebuffer) Valid() bool  { return f.V != 0 }
func (s Shader) Valid() bool       { return s.V != 0 }
func (p Program) Valid() bool      { return p.V != 0 }
func (u Uniform) Valid() bool      { return u.V != -1 }
func (a Attrib) Valid() bool       { return a >= 0 }
