// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"cogentcore.org/glkit/gpu/gl/gltest"
	"github.com/stretchr/testify/require"
)

// logRecorder is a slog.Handler that keeps warning messages.
type logRecorder struct {
	msgs []string
}

func (lr *logRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (lr *logRecorder) Handle(_ context.Context, r slog.Record) error {
	lr.msgs = append(lr.msgs, r.Message)
	return nil
}

func (lr *logRecorder) WithAttrs([]slog.Attr) slog.Handler { return lr }
func (lr *logRecorder) WithGroup(string) slog.Handler      { return lr }

// has reports whether any message contains s.
func (lr *logRecorder) has(s string) bool {
	for _, m := range lr.msgs {
		if strings.Contains(m, s) {
			return true
		}
	}
	return false
}

func newTestDevice(t *testing.T) (*Device, *gltest.Context, *logRecorder) {
	t.Helper()
	ctx := gltest.New()
	dev, err := NewDevice(ctx)
	require.NoError(t, err)
	lr := &logRecorder{}
	dev.Log = slog.New(lr)
	return dev, ctx, lr
}

const quadVertex = `#version 300 es
in vec3 pos;
in vec2 uv;
out vec2 vUV;
void main() {
	vUV = uv;
	gl_Position = vec4(pos, 1.0);
}
`

const quadFragment = `#version 300 es
precision mediump float;
in vec2 vUV;
out vec4 color;
void main() {
	color = vec4(vUV, 0.0, 1.0);
}
`

// quadData is 4 vertices of position and uv.
var quadData = []float32{
	-1, -1, 0, 0, 0,
	1, -1, 0, 1, 0,
	1, 1, 0, 1, 1,
	-1, 1, 0, 0, 1,
}

var quadLayout = []Attribute{
	{Name: "position", Size: 3},
	{Name: "uv", Size: 2},
}

func newQuadVAO(t *testing.T, dev *Device) *VAO {
	t.Helper()
	ab, err := NewAttributeBuffer(dev, "quad", quadData, quadLayout, StaticDraw)
	require.NoError(t, err)
	ib, err := NewIndexBuffer(dev, []uint16{0, 1, 2, 0, 2, 3}, IndexAuto)
	require.NoError(t, err)
	va, err := NewVAO(dev, "quad", ib, map[int]AttributeRef{
		0: {Buffer: ab, Name: "position"},
		1: {Buffer: ab, Name: "uv"},
	})
	require.NoError(t, err)
	return va
}

func newProgram(t *testing.T, dev *Device, vsrc, fsrc string, opts *ProgramOptions) (*ShaderProgram, error) {
	t.Helper()
	vs, err := NewShader(dev, VertexStage, vsrc)
	require.NoError(t, err)
	fs, err := NewShader(dev, FragmentStage, fsrc)
	require.NoError(t, err)
	return NewShaderProgram(dev, "test", vs, fs, opts)
}
