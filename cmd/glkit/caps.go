// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"cogentcore.org/glkit/gpu"
	"github.com/muesli/termenv"
)

// report writes the device capabilities to w, coloured when w is a
// terminal.
func report(w io.Writer, dev *gpu.Device) {
	out := termenv.NewOutput(w)
	key := func(s string) string { return out.String(fmt.Sprintf("%-22s", s)).Foreground(out.Color("6")).String() }
	val := func(s string) string { return out.String(s).Bold().String() }
	flag := func(b bool) string {
		if b {
			return out.String("yes").Foreground(out.Color("2")).String()
		}
		return out.String("no").Foreground(out.Color("1")).String()
	}

	c := &dev.Caps
	api := "OpenGL"
	if c.ES {
		api = "OpenGL ES"
	}
	fmt.Fprintln(w, key("API"), val(api+" "+c.SemVer.String()))
	fmt.Fprintln(w, key("Version"), val(c.Version))
	fmt.Fprintln(w, key("GLSL"), val(c.GLSLVersion))
	fmt.Fprintln(w, key("Vendor"), val(c.Vendor))
	fmt.Fprintln(w, key("Renderer"), val(c.Renderer))

	limits := []struct {
		name string
		v    int
	}{
		{"Texture units", c.MaxTextureUnits},
		{"Texture size", c.MaxTextureSize},
		{"3D texture size", c.Max3DTextureSize},
		{"Cube texture size", c.MaxCubeTextureSize},
		{"Array layers", c.MaxArrayLayers},
		{"Renderbuffer size", c.MaxRenderbufferSize},
		{"Color attachments", c.MaxColorAttachments},
		{"Draw buffers", c.MaxDrawBuffers},
		{"Vertex attributes", c.MaxVertexAttribs},
		{"Samples", c.MaxSamples},
	}
	for _, l := range limits {
		fmt.Fprintln(w, key(l.name), val(strconv.Itoa(l.v)))
	}
	fmt.Fprintln(w, key("Float linear"), flag(c.FloatLinear))
	fmt.Fprintln(w, key("Zero init textures"), flag(dev.ZeroInitTextures))
	fmt.Fprintln(w, key("Extensions"), val(strconv.Itoa(len(c.Extensions))))
	for _, ext := range slices.Sorted(maps.Keys(c.Extensions)) {
		fmt.Fprintln(w, "  "+out.String(ext).Faint().String())
	}
}
