// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaderfs

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shaders = fstest.MapFS{
	"common.glsl":    {Data: []byte("#define PI 3.14159\n")},
	"lib/light.glsl": {Data: []byte("#include \"common.glsl\"\nfloat light() { return PI; }\n")},
	"lib/shade.glsl": {Data: []byte("#include \"light.glsl\"\nfloat shade() { return light(); }\n")},
	"mesh.frag":      {Data: []byte("#version 300 es\n  #include \"lib/shade.glsl\"\nvoid main() {}\n")},
	"loop/a.glsl":    {Data: []byte("#include \"b.glsl\"\n")},
	"loop/b.glsl":    {Data: []byte("#include \"a.glsl\"\n")},
	"broken.frag":    {Data: []byte("#include <shade.glsl>\n")},
	"missing.frag":   {Data: []byte("#version 300 es\n#include \"nothere.glsl\"\n")},
	"twice.frag":     {Data: []byte("#include \"common.glsl\"\n#include \"common.glsl\"\n")},
}

func TestLoad(t *testing.T) {
	src, files, err := LoadFiles(shaders, "mesh.frag")
	require.NoError(t, err)
	expect := `#version 300 es
// #include "lib/shade.glsl"
// #include "light.glsl"
// #include "common.glsl"
#define PI 3.14159
float light() { return PI; }
float shade() { return light(); }
void main() {}`
	assert.Equal(t, expect, trimBlank(src))
	assert.Equal(t, []string{"mesh.frag", "lib/shade.glsl", "lib/light.glsl", "common.glsl"}, files)

	src, err = Load(shaders, "twice.frag")
	require.NoError(t, err)
	assert.Equal(t, 2, countLines(src, "#define PI 3.14159"))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(shaders, "loop/a.glsl")
	assert.ErrorIs(t, err, ErrIncludeCycle)
	assert.Contains(t, err.Error(), "loop/a.glsl -> loop/b.glsl -> loop/a.glsl")

	_, err = Load(shaders, "broken.frag")
	assert.ErrorContains(t, err, "malformed #include")

	_, err = Load(shaders, "missing.frag")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorContains(t, err, "missing.frag:2")

	_, err = Load(shaders, "none.frag")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()
	assert.Empty(t, w.Poll())

	fn := filepath.Join(dir, "mesh.frag")
	require.NoError(t, os.WriteFile(fn, []byte("void main() {}\n"), 0o644))
	var changed []string
	require.Eventually(t, func() bool {
		changed = append(changed, w.Poll()...)
		return slices.Contains(changed, fn)
	}, 5*time.Second, 10*time.Millisecond)
}

// trimBlank drops empty lines.
func trimBlank(s string) string {
	lines := slices.DeleteFunc(strings.Split(s, "\n"), func(ln string) bool { return ln == "" })
	return strings.Join(lines, "\n")
}

func countLines(s, line string) int {
	n := 0
	for _, ln := range strings.Split(s, "\n") {
		if ln == line {
			n++
		}
	}
	return n
}
