// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"path/filepath"
	"slices"

	"cogentcore.org/glkit/gpu/shaderfs"
)

// shaderExts are the file extensions that trigger a reload.
var shaderExts = []string{".vert", ".frag", ".glsl"}

// watch reports shader file changes to the render loop.
type watch struct {
	w *shaderfs.Watcher
}

func newWatch(dirs []string) (*watch, error) {
	w, err := shaderfs.NewWatcher(dirs...)
	if err != nil {
		return nil, err
	}
	return &watch{w: w}, nil
}

// changed reports whether any shader file changed since the last call.
func (w *watch) changed() bool {
	var names []string
	for _, name := range w.w.Poll() {
		if slices.Contains(shaderExts, filepath.Ext(name)) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return false
	}
	slog.Info("reloading shaders", "files", names)
	return true
}

func (w *watch) close() { w.w.Close() }
