// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"embed"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"

	"cogentcore.org/core/math32"
	"cogentcore.org/glkit/gpu"
	"cogentcore.org/glkit/gpu/memo"
	"cogentcore.org/glkit/gpu/shaderfs"
)

//go:embed shaders
var embedded embed.FS

// targetSize is the size of the offscreen render target.
const targetSize = 256

var quadData = []float32{
	-1, -1, 0, 0, 0,
	1, -1, 0, 1, 0,
	1, 1, 0, 1, 1,
	-1, 1, 0, 0, 1,
}

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

var quadLayout = []gpu.Attribute{
	{Name: "position", Size: 3},
	{Name: "uv", Size: 2},
}

// scene renders a spinning checkerboard into an offscreen target and
// then presents the target to the default framebuffer.
type scene struct {
	dev   *gpu.Device
	fsys  fs.FS
	stack *gpu.FramebufferStack

	quad    *gpu.AttributeBuffer
	indices *gpu.IndexBuffer
	vao     *gpu.VAO
	checker *gpu.Texture
	color   *gpu.Texture
	depth   *gpu.Renderbuffer
	target  *gpu.Framebuffer

	programs  []*gpu.ShaderProgram
	offscreen *gpu.DrawCall
	present   *gpu.DrawCall

	model      *memo.TimeSensitive[math32.Matrix4]
	aspect     *memo.Cached[float32]
	projection *memo.Cached[math32.Matrix4]

	width, height int
	frames        int
}

// newScene creates the scene resources. Shaders are read from the
// first of dirs, or from the embedded copies if dirs is empty.
func newScene(dev *gpu.Device, dirs []string) (*scene, error) {
	sc := &scene{dev: dev, stack: gpu.NewFramebufferStack(dev)}
	if len(dirs) > 0 {
		sc.fsys = os.DirFS(dirs[0])
	} else {
		sub, err := fs.Sub(embedded, "shaders")
		if err != nil {
			return nil, err
		}
		sc.fsys = sub
	}
	sc.width, sc.height = dev.GL.DrawingBufferSize()
	sc.model = memo.NewTimeSensitive(spin)
	sc.aspect = memo.NewCached(func() float32 {
		return float32(sc.width) / float32(max(sc.height, 1))
	})
	sc.projection = memo.NewCached(func() math32.Matrix4 {
		return math32.Matrix4{1 / sc.aspect.Get(), 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	}, sc.aspect)
	if err := sc.build(); err != nil {
		sc.delete()
		return nil, err
	}
	return sc, nil
}

// spin is the model matrix at time t: a rotation about z, scaled down
// to fit the target.
func spin(t float64) math32.Matrix4 {
	s, c := math32.Sincos(float32(t))
	s, c = 0.7*s, 0.7*c
	return math32.Matrix4{c, s, 0, 0, -s, c, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
}

func checkerImage(size, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			if (x/cell+y/cell)%2 == 0 {
				img.Set(x, y, color.RGBA{230, 230, 230, 255})
			} else {
				img.Set(x, y, color.RGBA{40, 90, 160, 255})
			}
		}
	}
	return img
}

func (sc *scene) build() error {
	var err error
	dev := sc.dev
	if sc.quad, err = gpu.NewAttributeBuffer(dev, "quad", quadData, quadLayout, gpu.StaticDraw); err != nil {
		return err
	}
	if sc.indices, err = gpu.NewIndexBuffer(dev, quadIndices, gpu.IndexAuto); err != nil {
		return err
	}
	sc.vao, err = gpu.NewVAO(dev, "quad", sc.indices, map[int]gpu.AttributeRef{
		0: {Buffer: sc.quad, Name: "position"},
		1: {Buffer: sc.quad, Name: "uv"},
	})
	if err != nil {
		return err
	}

	sc.checker, err = gpu.NewTexture(dev, 64, 64, gpu.Texture2D, 0, &gpu.TextureOptions{Name: "checker", WrapS: gpu.Repeat, WrapT: gpu.Repeat})
	if err != nil {
		return err
	}
	if err := sc.checker.UpdateFromImage(checkerImage(64, 8), gpu.TextureUpdate{FlipY: true, GenerateMipmaps: true}); err != nil {
		return err
	}

	sc.color, err = gpu.NewTexture(dev, targetSize, targetSize, gpu.Texture2D, 0, &gpu.TextureOptions{Name: "target", Levels: 1})
	if err != nil {
		return err
	}
	if sc.depth, err = gpu.NewRenderbuffer(dev, targetSize, targetSize, &gpu.RenderbufferOptions{Name: "target depth", Format: gpu.Depth24Stencil8}); err != nil {
		return err
	}
	depth := gpu.RenderbufferAttachment(sc.depth)
	if sc.target, err = gpu.NewFramebuffer(dev, "target", []gpu.Attachment{gpu.TextureAttachment(sc.color)}, &depth, nil); err != nil {
		return err
	}
	return sc.reload()
}

// version is the #version line for the device.
func (sc *scene) version() string {
	if sc.dev.Caps.ES {
		return "#version 300 es\n"
	}
	return "#version 330 core\n"
}

func (sc *scene) program(name string, uniforms map[string]any) (*gpu.ShaderProgram, error) {
	var shaders [2]*gpu.Shader
	for i, stage := range []gpu.Stage{gpu.VertexStage, gpu.FragmentStage} {
		file := name + ".vert"
		if stage == gpu.FragmentStage {
			file = name + ".frag"
		}
		src, err := shaderfs.Load(sc.fsys, file)
		if err != nil {
			return nil, err
		}
		if shaders[i], err = gpu.NewShader(sc.dev, stage, sc.version()+src); err != nil {
			return nil, err
		}
		defer shaders[i].Delete()
	}
	return gpu.NewShaderProgram(sc.dev, name, shaders[0], shaders[1], &gpu.ProgramOptions{
		Uniforms:           uniforms,
		AttributeLocations: map[string]int{"pos": 0, "uv": 1},
	})
}

// reload rebuilds the programs and draw calls from the shader files.
// On failure the previous ones are kept.
func (sc *scene) reload() error {
	sp, err := sc.program("scene", map[string]any{"checker": 0, "tint": math32.Vec3(1, 1, 1)})
	if err != nil {
		return fmt.Errorf("scene program: %w", err)
	}
	pp, err := sc.program("present", map[string]any{"scene": 0, "fade": float32(1)})
	if err != nil {
		sp.Delete()
		return fmt.Errorf("present program: %w", err)
	}
	offscreen, err := gpu.NewDrawCall(sp, sc.vao, &gpu.DrawCallOptions{
		Name: "scene",
		Uniforms: map[string]func(t float64) any{
			"model":      func(t float64) any { return sc.model.GetAt(t) },
			"projection": func(float64) any { return sc.projection.Get() },
			"tint": func(t float64) any {
				return math32.Vec3(1, 0.8+0.2*math32.Sin(float32(t)), 1)
			},
		},
		Textures:  map[int][]*gpu.Texture{0: {sc.checker}},
		Cull:      gpu.CullBack,
		DepthTest: gpu.Always,
		Instances: 1,
	})
	if err == nil {
		var present *gpu.DrawCall
		present, err = gpu.NewDrawCall(pp, sc.vao, &gpu.DrawCallOptions{
			Name: "present",
			Uniforms: map[string]func(t float64) any{
				"fade": func(t float64) any { return float32(min(t, 1)) },
			},
			Textures:     map[int][]*gpu.Texture{0: {sc.color}},
			NoDepthWrite: true,
			Instances:    1,
		})
		if err == nil {
			sc.deletePrograms()
			sc.programs = []*gpu.ShaderProgram{sp, pp}
			sc.offscreen, sc.present = offscreen, present
			return nil
		}
	}
	sp.Delete()
	pp.Delete()
	return err
}

// resize marks the projection dirty when the canvas size changed.
func (sc *scene) resize() {
	w, h := sc.dev.GL.DrawingBufferSize()
	if w == sc.width && h == sc.height {
		return
	}
	sc.width, sc.height = w, h
	sc.aspect.SetDirty()
}

func (sc *scene) render(t float64) error {
	sc.resize()
	err := sc.stack.With(sc.target, func() error {
		return sc.offscreen.Draw(t)
	})
	if err != nil {
		return err
	}
	if err := sc.present.Draw(t); err != nil {
		return err
	}
	sc.frames++
	return nil
}

func (sc *scene) deletePrograms() {
	for _, p := range sc.programs {
		p.Delete()
	}
	sc.programs = nil
	sc.offscreen, sc.present = nil, nil
}

// delete releases every resource that was created.
func (sc *scene) delete() {
	sc.deletePrograms()
	if sc.target != nil {
		sc.target.Delete()
	}
	if sc.depth != nil {
		sc.depth.Delete()
	}
	if sc.color != nil {
		sc.color.Delete()
	}
	if sc.checker != nil {
		sc.checker.Delete()
	}
	if sc.vao != nil {
		sc.vao.Delete()
	}
	if sc.indices != nil {
		sc.indices.Delete()
	}
	if sc.quad != nil {
		sc.quad.Delete()
	}
}
