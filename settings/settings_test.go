// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/glkit/gpu"
	"cogentcore.org/glkit/gpu/gl/gltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := New()
	assert.Equal(t, "warn", s.LogLevel)
	assert.Zero(t, s.MaxTextureUnits)
	assert.NoError(t, s.Validate())
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	tf := filepath.Join(dir, "glkit.toml")
	require.NoError(t, os.WriteFile(tf, []byte(`
max_texture_units = 8
disable_float_linear = true
log_level = "debug"
shader_dirs = ["shaders"]
`), 0o644))
	s := New()
	require.NoError(t, s.Open(tf))
	assert.Equal(t, 8, s.MaxTextureUnits)
	assert.True(t, s.DisableFloatLinear)
	assert.Equal(t, []string{"shaders"}, s.ShaderDirs)
	lv, err := s.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lv)

	yf := filepath.Join(dir, "glkit.yaml")
	require.NoError(t, os.WriteFile(yf, []byte("zero_init_textures: true\nlog_level: error\n"), 0o644))
	s = New()
	require.NoError(t, s.Open(yf))
	assert.True(t, s.ZeroInitTextures)
	assert.Equal(t, "error", s.LogLevel)

	assert.ErrorIs(t, s.Open(filepath.Join(dir, "glkit.json")), ErrUnknownFormat)
	assert.Error(t, s.Open(filepath.Join(dir, "none.toml")))
}

func TestReadErrors(t *testing.T) {
	s := New()
	assert.Error(t, s.Read(strings.NewReader("bogus = 1\n"), TOML))
	assert.Error(t, s.Read(strings.NewReader("bogus: 1\n"), YAML))
	assert.Error(t, s.Read(strings.NewReader("max_texture_units = 1\n"), TOML))
	assert.Error(t, New().Read(strings.NewReader("log_level: loud\n"), YAML))
	assert.NoError(t, New().Read(strings.NewReader(""), YAML))
}

func TestRoundTrip(t *testing.T) {
	s := New()
	s.MaxTextureUnits = 4
	s.ShaderDirs = []string{"a", "b"}
	for _, f := range []Formats{TOML, YAML} {
		var b bytes.Buffer
		require.NoError(t, s.Write(&b, f))
		r := &Settings{}
		require.NoError(t, r.Read(&b, f))
		assert.Equal(t, s, r)
	}
}

func TestApply(t *testing.T) {
	dev, err := gpu.NewDevice(gltest.New())
	require.NoError(t, err)
	require.True(t, dev.Caps.FloatLinear)
	s := New()
	s.DisableFloatLinear = true
	s.MaxTextureUnits = 4
	s.ZeroInitTextures = true
	s.Apply(dev)
	assert.False(t, dev.Caps.FloatLinear)
	assert.Equal(t, 4, dev.Caps.MaxTextureUnits)
	assert.Equal(t, 3, dev.WIPUnit())
	assert.True(t, dev.ZeroInitTextures)

	s.MaxTextureUnits = 64
	s.Apply(dev)
	assert.Equal(t, 4, dev.Caps.MaxTextureUnits, "never raised above the device limit")
}

func TestLogger(t *testing.T) {
	var b bytes.Buffer
	s := New()
	lg := s.Logger(&b)
	lg.Info("hidden")
	lg.Warn("shown", "program", "mesh")
	assert.NotContains(t, b.String(), "hidden")
	assert.Contains(t, b.String(), "program=mesh")
}
