// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaderfs loads GLSL shader sources from a file system,
// expanding #include directives, and watches shader directories for
// changes so that programs can be rebuilt on the render thread.
package shaderfs

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/stringsx"
)

// ErrIncludeCycle is returned when a file includes itself, directly
// or indirectly.
var ErrIncludeCycle = errors.New("include cycle")

// Load reads the named shader source from fsys and expands
// #include "file" lines. See [LoadFiles].
func Load(fsys fs.FS, name string) (string, error) {
	src, _, err := LoadFiles(fsys, name)
	return src, err
}

// LoadFiles reads the named shader source from fsys and expands
// #include "file" lines, recursively. An included name is looked up
// relative to the including file first, then from the root of fsys.
// Each include line is kept as a comment ahead of the included text.
// It also returns every file that was read, starting with name.
func LoadFiles(fsys fs.FS, name string) (string, []string, error) {
	ld := &loader{fsys: fsys}
	lines, err := ld.load(name)
	if err != nil {
		return "", ld.files, err
	}
	return strings.Join(lines, "\n"), ld.files, nil
}

type loader struct {
	fsys  fs.FS
	files []string
	stack []string
}

func (ld *loader) load(name string) ([]string, error) {
	if slices.Contains(ld.stack, name) {
		return nil, fmt.Errorf("shaderfs.Load %s: %w: %s", name, ErrIncludeCycle, strings.Join(slices.Concat(ld.stack, []string{name}), " -> "))
	}
	b, err := fs.ReadFile(ld.fsys, name)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(ld.files, name) {
		ld.files = append(ld.files, name)
	}
	ld.stack = append(ld.stack, name)
	defer func() { ld.stack = ld.stack[:len(ld.stack)-1] }()

	fl := stringsx.SplitLines(string(b))
	for li := len(fl) - 1; li >= 0; li-- {
		ln := strings.TrimSpace(fl[li])
		if !strings.HasPrefix(ln, "#include") {
			continue
		}
		fname, ok := includeName(ln)
		if !ok {
			return nil, fmt.Errorf("shaderfs.Load %s:%d: malformed #include: %s", name, li+1, ln)
		}
		full := ld.resolve(name, fname)
		ol, err := ld.load(full)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("shaderfs.Load %s:%d: could not find include %q: %w", name, li+1, fname, err)
			}
			return nil, err
		}
		fl[li] = "// " + ln
		fl = slices.Insert(fl, li+1, ol...)
	}
	return fl, nil
}

// resolve returns the path of an include relative to the including
// file, or from the root if it does not exist there.
func (ld *loader) resolve(from, fname string) string {
	rel := path.Join(path.Dir(from), fname)
	if _, err := fs.Stat(ld.fsys, rel); err == nil {
		return rel
	}
	return path.Clean(fname)
}

// includeName returns the quoted file name of an #include line.
func includeName(ln string) (string, bool) {
	rest := strings.TrimSpace(strings.TrimPrefix(ln, "#include"))
	if len(rest) < 2 || rest[0] != '"' {
		return "", false
	}
	qi := strings.IndexByte(rest[1:], '"')
	if qi <= 0 {
		return "", false
	}
	return rest[1 : qi+1], true
}
