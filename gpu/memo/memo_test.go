// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memo

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCached(t *testing.T) {
	calls := 0
	c := NewCached(func() int { calls++; return 42 })
	assert.True(t, c.IsDirty())
	assert.Equal(t, 42, c.Get())
	assert.Equal(t, 42, c.Get())
	assert.Equal(t, 1, calls)
	assert.False(t, c.IsDirty())

	c.SetDirty()
	assert.True(t, c.IsDirty())
	c.Get()
	assert.Equal(t, 2, calls)
}

func TestCachedDependents(t *testing.T) {
	scale := 2.0
	base := NewCached(func() float64 { return scale })
	baseCalls := 0
	area := NewCached(func() float64 { baseCalls++; s := base.Get(); return s * s }, base)
	label := NewCached(func() string {
		if area.Get() > 5 {
			return "big"
		}
		return "small"
	}, area)

	assert.Equal(t, "small", label.Get())
	assert.Equal(t, 1, baseCalls)

	scale = 3
	assert.Equal(t, "small", label.Get(), "not recomputed until invalidated")
	base.SetDirty()
	assert.True(t, area.IsDirty())
	assert.True(t, label.IsDirty(), "invalidation reaches indirect dependents")
	assert.Equal(t, "big", label.Get())
	assert.Equal(t, 2, baseCalls)
	assert.Equal(t, 1, base.Dependents())
}

func TestCachedDiamond(t *testing.T) {
	root := NewCached(func() int { return 1 })
	left := NewCached(func() int { return root.Get() + 1 }, root)
	right := NewCached(func() int { return root.Get() * 10 }, root)
	sumCalls := 0
	sum := NewCached(func() int { sumCalls++; return left.Get() + right.Get() }, left, right)
	assert.Equal(t, 12, sum.Get())
	root.SetDirty()
	assert.Equal(t, 12, sum.Get())
	assert.Equal(t, 2, sumCalls)
	assert.Equal(t, 2, root.Dependents())
}

func addDependent(c *Cached[int]) {
	d := NewCached(func() int { return c.Get() }, c)
	d.Get()
}

func TestCachedWeakDependents(t *testing.T) {
	c := NewCached(func() int { return 1 })
	addDependent(c)
	runtime.GC()
	c.SetDirty()
	assert.Equal(t, 0, c.Dependents())
}

type point struct{ X, Y int }

func TestCachedShallowCopy(t *testing.T) {
	s := NewCached(func() []int { return []int{1, 2, 3} })
	v := s.Get()
	v[0] = 99
	assert.Equal(t, []int{1, 2, 3}, s.Get())

	m := NewCached(func() map[string]int { return map[string]int{"a": 1} })
	mv := m.Get()
	mv["a"] = 2
	mv["b"] = 3
	assert.Equal(t, map[string]int{"a": 1}, m.Get())

	p := NewCached(func() *point { return &point{1, 2} })
	pv := p.Get()
	pv.X = 5
	assert.Equal(t, &point{1, 2}, p.Get())
	assert.NotSame(t, p.Get(), p.Get())

	a := NewCached(func() any { return []string{"x"} })
	av := a.Get().([]string)
	av[0] = "y"
	assert.Equal(t, []string{"x"}, a.Get())

	var nilSlice []int
	n := NewCached(func() []int { return nilSlice })
	assert.Nil(t, n.Get())

	// copies are one level deep
	verts := []float32{0, 1}
	g := NewCached(func() *geometry { return &geometry{Name: "quad", Verts: verts} })
	gv := g.Get()
	gv.Name = "tri"
	gv.Verts[0] = 5
	assert.Equal(t, "quad", g.Get().Name)
	assert.Equal(t, float32(5), g.Get().Verts[0])

	nested := NewCached(func() [][]int { return [][]int{{1}} })
	nv := nested.Get()
	nv[0][0] = 2
	nv[0] = nil
	assert.Equal(t, [][]int{{2}}, nested.Get())

	str := NewCached(func() point { return point{3, 4} })
	sv := str.Get()
	sv.X = 0
	assert.Equal(t, point{3, 4}, str.Get())
}

type geometry struct {
	Name  string
	Verts []float32
}

func TestTimeSensitive(t *testing.T) {
	calls := 0
	ts := NewTimeSensitive(func(t float64) []float64 { calls++; return []float64{t} })
	_, ok := ts.Time()
	assert.False(t, ok)

	assert.Equal(t, []float64{0}, ts.GetAt(0), "first use computes even at time zero")
	assert.Equal(t, []float64{0}, ts.GetAt(0))
	assert.Equal(t, 1, calls)

	assert.Equal(t, []float64{0.5}, ts.GetAt(0.5))
	assert.Equal(t, []float64{0.5}, ts.GetAt(0.25), "earlier times return the last value")
	assert.Equal(t, 2, calls)

	v := ts.GetAt(0.5)
	v[0] = -1
	assert.Equal(t, []float64{0.5}, ts.GetAt(0.5))
	last, ok := ts.Time()
	assert.True(t, ok)
	assert.Equal(t, 0.5, last)
}
