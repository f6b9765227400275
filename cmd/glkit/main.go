// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glkit opens an OpenGL context, reports its capabilities and
// renders a test scene through the gpu package.
package main

import (
	"image"
	"log/slog"
	"os"
	"runtime"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/glkit/gpu"
	"cogentcore.org/glkit/gpu/gl/glnative"
	"cogentcore.org/glkit/settings"
)

func init() {
	// glfw and the GL context must stay on the main thread
	runtime.LockOSThread()
}

// Config is the configuration for the glkit command.
type Config struct {

	// Settings is an optional TOML or YAML settings file.
	Settings string `flag:"s,settings"`

	// Width of the window and render target.
	Width int `default:"512"`

	// Height of the window and render target.
	Height int `default:"512"`

	// Frames is the number of frames to render. Zero renders until the
	// window is closed.
	Frames int `default:"120"`

	// Visible shows the window instead of rendering offscreen.
	Visible bool

	// Watch reloads shaders from the settings shader directories when
	// they change on disk.
	Watch bool
}

func main() {
	opts := cli.DefaultOptions("glkit", "Glkit reports OpenGL capabilities and runs a test render.")
	cli.Run(opts, &Config{},
		&cli.Cmd[*Config]{Func: Caps, Name: "caps", Doc: "reports the capabilities of the context", Root: true},
		&cli.Cmd[*Config]{Func: Render, Name: "render", Doc: "renders the test scene"},
	)
}

// session is an open window with its device and settings.
type session struct {
	settings *settings.Settings
	window   *glnative.Window
	dev      *gpu.Device
}

func open(c *Config) (*session, error) {
	st := settings.New()
	if c.Settings != "" {
		if err := st.Open(c.Settings); err != nil {
			return nil, err
		}
	}
	slog.SetDefault(st.Logger(os.Stderr))
	win, err := glnative.NewWindow(image.Point{c.Width, c.Height}, "glkit", c.Visible)
	if err != nil {
		return nil, err
	}
	dev, err := gpu.NewDevice(win.Context)
	if err != nil {
		win.Destroy()
		return nil, err
	}
	st.Apply(dev)
	return &session{settings: st, window: win, dev: dev}, nil
}

func (s *session) close() { s.window.Destroy() }

// Caps prints the context capabilities.
func Caps(c *Config) error {
	s, err := open(c)
	if err != nil {
		return errors.Log(err)
	}
	defer s.close()
	report(os.Stdout, s.dev)
	return nil
}

// Render draws the test scene for the configured number of frames.
func Render(c *Config) error {
	s, err := open(c)
	if err != nil {
		return errors.Log(err)
	}
	defer s.close()
	sc, err := newScene(s.dev, s.settings.ShaderDirs)
	if err != nil {
		return errors.Log(err)
	}
	defer sc.delete()

	var watcher *watch
	if c.Watch && len(s.settings.ShaderDirs) > 0 {
		if watcher, err = newWatch(s.settings.ShaderDirs); err != nil {
			return errors.Log(err)
		}
		defer watcher.close()
	}
	start := s.window.Time()
	for frame := 0; c.Frames == 0 || frame < c.Frames; frame++ {
		if !s.window.PollEvents() {
			break
		}
		if watcher != nil && watcher.changed() {
			errors.Log(sc.reload())
		}
		if err := sc.render(s.window.Time() - start); err != nil {
			return errors.Log(err)
		}
		s.window.SwapBuffers()
	}
	slog.Info("rendered", "frames", sc.frames)
	return nil
}
