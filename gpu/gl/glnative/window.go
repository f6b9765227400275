// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

package glnative

import (
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a GLFW window owning an OpenGL 3.3 core context, which is
// current on the thread that created it.
type Window struct {
	*glfw.Window

	// Context draws into the window's default framebuffer.
	Context *Context
}

// NewWindow initializes GLFW and opens a window of the given size,
// hidden unless visible is set. The calling goroutine must be locked to
// the main OS thread, and must call [Window.Destroy] when done.
func NewWindow(size image.Point, title string, visible bool) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Log(err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if visible {
		glfw.WindowHint(glfw.Visible, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}
	win, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	win.MakeContextCurrent()
	ctx, err := New(win.GetFramebufferSize)
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}
	return &Window{Window: win, Context: ctx}, nil
}

// PollEvents processes pending window events and returns false once
// the window has been asked to close.
func (w *Window) PollEvents() bool {
	if w.ShouldClose() {
		return false
	}
	glfw.PollEvents()
	return true
}

// Time returns the seconds since GLFW was initialized.
func (w *Window) Time() float64 { return glfw.GetTime() }

// Destroy closes the window and shuts GLFW down.
func (w *Window) Destroy() {
	w.Window.Destroy()
	glfw.Terminate()
}
