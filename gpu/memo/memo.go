// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memo provides lazily computed values that are recomputed
// when an upstream value changes ([Cached]) or when time advances
// ([TimeSensitive]).
package memo

import (
	"reflect"
	"slices"
	"weak"

	"cogentcore.org/core/base/errors"
	"github.com/jinzhu/copier"
)

// node is the invalidation state shared by all Cached types.
// Dependents are held weakly so that a derived value that is no
// longer referenced does not keep receiving invalidations.
type node struct {
	dirty      bool
	dependents []weak.Pointer[node]
}

func (n *node) setDirty() {
	n.dirty = true
	live := n.dependents[:0]
	for _, wp := range n.dependents {
		if d := wp.Value(); d != nil {
			live = append(live, wp)
			d.setDirty()
		}
	}
	clear(n.dependents[len(live):])
	n.dependents = live
}

// Dependency is an upstream value of a [Cached]. Every *Cached is a
// Dependency.
type Dependency interface {
	memoNode() *node
}

// Cached is a value computed on demand by a producer function and
// kept until it is marked dirty, directly or through any of the
// values it depends on.
//
// The dependency graph must be acyclic: SetDirty on a cycle does not
// terminate.
type Cached[T any] struct {
	produce func() T
	value   T
	node    *node
}

// NewCached returns a dirty Cached that calls produce to compute its
// value, and is marked dirty whenever any of deps is.
func NewCached[T any](produce func() T, deps ...Dependency) *Cached[T] {
	c := &Cached[T]{produce: produce, node: &node{dirty: true}}
	wp := weak.Make(c.node)
	for _, d := range deps {
		dn := d.memoNode()
		dn.dependents = append(dn.dependents, wp)
	}
	return c
}

func (c *Cached[T]) memoNode() *node { return c.node }

// Get returns a shallow copy of the value, calling the producer
// first if it is dirty.
func (c *Cached[T]) Get() T {
	if c.node.dirty {
		c.value = c.produce()
		c.node.dirty = false
	}
	return shallowCopy(c.value)
}

// SetDirty marks the value and all of its dependents dirty.
func (c *Cached[T]) SetDirty() { c.node.setDirty() }

// IsDirty reports whether the next Get calls the producer.
func (c *Cached[T]) IsDirty() bool { return c.node.dirty }

// Dependents returns the number of live dependents.
func (c *Cached[T]) Dependents() int {
	n := c.node
	n.dependents = slices.DeleteFunc(n.dependents, func(wp weak.Pointer[node]) bool { return wp.Value() == nil })
	return len(n.dependents)
}

// TimeSensitive is a value computed from a time, recomputed only
// when asked for at a later time than the last computation. Callers
// are expected to pass a non-decreasing frame time, so the value is
// computed at most once per frame.
type TimeSensitive[T any] struct {
	produce  func(t float64) T
	value    T
	last     float64
	computed bool
}

// NewTimeSensitive returns a TimeSensitive that calls produce.
func NewTimeSensitive[T any](produce func(t float64) T) *TimeSensitive[T] {
	return &TimeSensitive[T]{produce: produce}
}

// GetAt returns a shallow copy of the value at time t. The producer
// is called on the first use and whenever t is greater than the time
// of the last call; otherwise the previous value is returned.
func (ts *TimeSensitive[T]) GetAt(t float64) T {
	if !ts.computed || t > ts.last {
		ts.value = ts.produce(t)
		ts.last = t
		ts.computed = true
	}
	return shallowCopy(ts.value)
}

// Time returns the time of the last computation, and false if there
// has been none.
func (ts *TimeSensitive[T]) Time() (float64, bool) { return ts.last, ts.computed }

// shallowCopy returns a copy of v one level deep, so that callers
// cannot modify the cached value. The elements of slices and maps and
// the exported fields of the struct that a pointer refers to are
// copied; anything they in turn refer to is shared. Other values are
// returned as they are.
func shallowCopy[T any](v T) T {
	rv := reflect.ValueOf(v)
	var cp reflect.Value
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		if rv.IsNil() {
			return v
		}
		cp = reflect.New(rv.Type())
	case reflect.Pointer:
		if rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return v
		}
		cp = reflect.New(rv.Elem().Type())
	default:
		return v
	}
	if errors.Log(copier.CopyWithOption(cp.Interface(), v, copier.Option{DeepCopy: false})) != nil {
		return v
	}
	if rv.Kind() != reflect.Pointer {
		cp = cp.Elem()
	}
	return cp.Interface().(T)
}
