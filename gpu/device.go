// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu manages graphics resources over a WebGL 2 / OpenGL ES 3
// class API: attribute and index buffers, vertex arrays, textures,
// renderbuffers, framebuffers, shader programs and draw calls.
//
// Constructors validate their inputs before creating native objects,
// delete partial objects on failure, and restore the bindings they
// change, so the native state is either the documented result or the
// state before the call. All calls must be made on the thread that owns
// the [gl.Context].
package gpu

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"cogentcore.org/glkit/gpu/gl"
	"github.com/Masterminds/semver/v3"
)

// Device is a graphics context with its queried capabilities. All
// resources are created on a Device.
type Device struct {
	// GL is the native context.
	GL gl.Context

	// Caps are the capabilities queried at creation.
	Caps Caps

	// Log receives warnings about soft inconsistencies.
	// If nil, slog.Default() is used.
	Log *slog.Logger

	// ZeroInitTextures uploads zeros to every level of new textures,
	// so no level is left to lazy initialization. Defaults to [DebugBuild].
	ZeroInitTextures bool

	// shadow of the bound draw framebuffer and viewport
	framebuffer gl.Framebuffer
	viewport    [4]int
}

// Caps are the implementation limits and features of a context.
type Caps struct {
	// Version is the native version string.
	Version string

	// GLSLVersion is the shading language version string.
	GLSLVersion string

	Vendor   string
	Renderer string

	// ES is true for OpenGL ES and WebGL contexts.
	ES bool

	// SemVer is the parsed context version.
	SemVer *semver.Version

	MaxTextureUnits     int
	MaxTextureSize      int
	Max3DTextureSize    int
	MaxCubeTextureSize  int
	MaxArrayLayers      int
	MaxRenderbufferSize int
	MaxColorAttachments int
	MaxDrawBuffers      int
	MaxVertexAttribs    int
	MaxSamples          int

	// FloatLinear is true if float textures can be linearly filtered.
	FloatLinear bool

	// Extensions are the supported extension names.
	Extensions map[string]bool
}

// HasExtension reports whether the named extension is supported,
// with or without the GL_ prefix.
func (c *Caps) HasExtension(name string) bool {
	name = strings.TrimPrefix(name, "GL_")
	return c.Extensions[name] || c.Extensions["GL_"+name]
}

var versionRe = regexp.MustCompile(`(\d+)\.(\d+)(\.\d+)?`)

// minimum versions of desktop and ES contexts
var (
	desktopMin = semver.MustParse("3.3")
	esMin      = semver.MustParse("3.0")
)

// ParseVersion parses a native version string such as
// "OpenGL ES 3.0 (WebGL 2.0)" or "4.6.0 NVIDIA 535.54",
// returning the version and whether it is an ES context.
func ParseVersion(s string) (*semver.Version, bool, error) {
	es := strings.Contains(s, "OpenGL ES") || strings.Contains(s, "WebGL")
	m := versionRe.FindString(s)
	if m == "" {
		return nil, es, fmt.Errorf("gpu.ParseVersion: %w: no version number in %q", ErrUnsupportedContext, s)
	}
	v, err := semver.NewVersion(m)
	if err != nil {
		return nil, es, fmt.Errorf("gpu.ParseVersion: %w: %w", ErrUnsupportedContext, err)
	}
	return v, es, nil
}

// NewDevice queries the capabilities of ctx and returns a Device.
// It fails with [ErrUnsupportedContext] for contexts older than
// OpenGL 3.3 or OpenGL ES 3.0.
func NewDevice(ctx gl.Context) (*Device, error) {
	dev := &Device{GL: ctx, ZeroInitTextures: DebugBuild}
	c := &dev.Caps
	c.Version = ctx.GetString(gl.VERSION)
	c.GLSLVersion = ctx.GetString(gl.SHADING_LANGUAGE_VERSION)
	c.Vendor = ctx.GetString(gl.VENDOR)
	c.Renderer = ctx.GetString(gl.RENDERER)
	v, es, err := ParseVersion(c.Version)
	if err != nil {
		return nil, err
	}
	c.SemVer, c.ES = v, es
	need := desktopMin
	if es {
		need = esMin
	}
	if v.LessThan(need) {
		return nil, fmt.Errorf("gpu.NewDevice: %w: version %s is older than %s", ErrUnsupportedContext, v, need)
	}
	c.MaxTextureUnits = ctx.GetInteger(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS)
	c.MaxTextureSize = ctx.GetInteger(gl.MAX_TEXTURE_SIZE)
	c.Max3DTextureSize = ctx.GetInteger(gl.MAX_3D_TEXTURE_SIZE)
	c.MaxCubeTextureSize = ctx.GetInteger(gl.MAX_CUBE_MAP_TEXTURE_SIZE)
	c.MaxArrayLayers = ctx.GetInteger(gl.MAX_ARRAY_TEXTURE_LAYERS)
	c.MaxRenderbufferSize = ctx.GetInteger(gl.MAX_RENDERBUFFER_SIZE)
	c.MaxColorAttachments = ctx.GetInteger(gl.MAX_COLOR_ATTACHMENTS)
	c.MaxDrawBuffers = ctx.GetInteger(gl.MAX_DRAW_BUFFERS)
	c.MaxVertexAttribs = ctx.GetInteger(gl.MAX_VERTEX_ATTRIBS)
	c.MaxSamples = ctx.GetInteger(gl.MAX_SAMPLES)
	c.Extensions = make(map[string]bool)
	for _, ext := range ctx.Extensions() {
		c.Extensions[ext] = true
	}
	c.FloatLinear = !es || c.HasExtension("OES_texture_float_linear")
	if err := nativeError(ctx, ErrUnsupportedContext, "gpu.NewDevice"); err != nil {
		return nil, err
	}
	if c.MaxTextureUnits < 2 {
		return nil, fmt.Errorf("gpu.NewDevice: %w: only %d texture units", ErrUnsupportedContext, c.MaxTextureUnits)
	}
	w, h := ctx.DrawingBufferSize()
	dev.viewport = [4]int{0, 0, w, h}
	return dev, nil
}

func (dev *Device) logger() *slog.Logger {
	if dev.Log != nil {
		return dev.Log
	}
	return slog.Default()
}

// warn logs a soft inconsistency.
func (dev *Device) warn(msg string, args ...any) {
	dev.logger().Warn(msg, args...)
}

// WIPUnit is the texture unit used to configure textures without
// disturbing bindings on the units used for drawing.
func (dev *Device) WIPUnit() int { return dev.Caps.MaxTextureUnits - 1 }

// Framebuffer returns the framebuffer last bound through the Device;
// the zero value is the default framebuffer.
func (dev *Device) Framebuffer() gl.Framebuffer { return dev.framebuffer }

// Viewport returns the viewport last set through the Device.
func (dev *Device) Viewport() (x, y, width, height int) {
	v := dev.viewport
	return v[0], v[1], v[2], v[3]
}

func (dev *Device) bindFramebuffer(f gl.Framebuffer) {
	dev.GL.BindFramebuffer(gl.FRAMEBUFFER, f)
	dev.framebuffer = f
}

func (dev *Device) setViewport(x, y, width, height int) {
	dev.GL.Viewport(x, y, width, height)
	dev.viewport = [4]int{x, y, width, height}
}
