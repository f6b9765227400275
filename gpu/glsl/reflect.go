// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glsl

import (
	"fmt"
	"strconv"
	"strings"
)

// Variable is an attribute or uniform declaration found in shader source.
type Variable struct {
	// Name is the declared identifier.
	Name string

	// Type is the GLSL type of one element.
	Type Type

	// Size is the number of array elements, 1 for a non-array.
	Size int

	// IsArray is true if declared with [], even if the size is 1.
	IsArray bool

	// Location is the value from layout(location = N), or -1.
	Location int

	// Precision is the precision qualifier, if any.
	Precision string
}

func (vr *Variable) String() string {
	typ := vr.Type.String()
	if vr.IsArray {
		typ = fmt.Sprintf("%s[%d]", typ, vr.Size)
	}
	if vr.Location >= 0 {
		return fmt.Sprintf("%d:\t%s\t%s", vr.Location, vr.Name, typ)
	}
	return fmt.Sprintf("-:\t%s\t%s", vr.Name, typ)
}

// Reflection is the set of top-level declarations found in one shader
// source.
//
// Reflection is a token-level pattern match, not a compiler front end:
// comments are skipped, but preprocessor conditionals are not
// evaluated, so declarations inside disabled #if blocks are reported.
type Reflection struct {
	// Version is the #version directive argument, e.g. "300 es".
	Version string

	// Inputs are the in / attribute declarations, in source order.
	// For a vertex shader these are the vertex attributes.
	Inputs []Variable

	// Uniforms are the uniform declarations, in source order.
	Uniforms []Variable

	// Unsupported lists uniform and input declarations that were
	// skipped: interface blocks, struct types, and unresolvable array
	// sizes.
	Unsupported []string
}

// Reflect scans shader source for top-level in, attribute and uniform
// declarations.
func Reflect(src string) *Reflection {
	rf := &Reflection{}
	sc := scanner{rf: rf, consts: make(map[string]int)}
	sc.scan(Tokens(src))
	return rf
}

type scanner struct {
	rf     *Reflection
	consts map[string]int
}

func (sc *scanner) scan(toks []Token) {
	var stmt []Token
	depth := 0
	block := false
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		if tok.Type == DirectiveToken {
			sc.directive(tok.Text)
			continue
		}
		if depth > 0 {
			switch tok.Text {
			case "{":
				depth++
			case "}":
				depth--
				if depth == 0 && len(stmt) > 0 && stmt[len(stmt)-1].Text == ")" {
					// function body
					stmt = stmt[:0]
					block = false
				}
			}
			continue
		}
		switch tok.Text {
		case "{":
			depth++
			block = true
		case ";":
			sc.statement(stmt, block)
			stmt = stmt[:0]
			block = false
		default:
			stmt = append(stmt, tok)
		}
	}
}

func (sc *scanner) directive(text string) {
	fs := strings.Fields(strings.TrimSpace(strings.TrimPrefix(text, "#")))
	if len(fs) == 0 {
		return
	}
	switch fs[0] {
	case "version":
		sc.rf.Version = strings.Join(fs[1:], " ")
	case "define":
		if len(fs) == 3 {
			if n, err := parseInt(fs[2]); err == nil {
				sc.consts[fs[1]] = n
			}
		}
	}
}

var qualifiers = map[string]bool{
	"flat": true, "smooth": true, "noperspective": true, "centroid": true,
	"sample": true, "invariant": true, "precise": true,
}

var precisions = map[string]bool{"highp": true, "mediump": true, "lowp": true}

// statement processes one top-level statement, excluding the final ;
func (sc *scanner) statement(stmt []Token, block bool) {
	location := -1
	storage := ""
	precision := ""
	i := 0
quals:
	for ; i < len(stmt); i++ {
		t := stmt[i].Text
		switch {
		case t == "layout":
			n, loc := layoutQualifier(stmt[i+1:])
			if loc >= 0 {
				location = loc
			}
			i += n
		case t == "in" || t == "attribute":
			storage = "in"
		case t == "uniform" || t == "out" || t == "varying" || t == "const" || t == "buffer" || t == "shared":
			storage = t
		case t == "precision":
			return
		case qualifiers[t]:
		case precisions[t]:
			precision = t
		default:
			break quals
		}
	}
	if i >= len(stmt) {
		return
	}
	if storage != "in" && storage != "uniform" && storage != "const" {
		return
	}
	if block {
		if storage != "const" {
			sc.unsupported(fmt.Sprintf("%s block %s", storage, stmtName(stmt[i:])))
		}
		return
	}
	typName := stmt[i].Text
	typ := TypeByName(typName)
	i++
	arraySize := 0
	hasTypeArray := false
	if i < len(stmt) && stmt[i].Text == "[" {
		n, consumed, ok := sc.arraySize(stmt[i:])
		if !ok {
			sc.unsupported(fmt.Sprintf("%s %s: unresolved array size", storage, stmtName(stmt[i:])))
			return
		}
		arraySize, hasTypeArray = n, true
		i += consumed
	}
	for i < len(stmt) {
		if stmt[i].Type != IdentToken {
			return
		}
		vr := Variable{Name: stmt[i].Text, Type: typ, Size: 1, Location: location, Precision: precision}
		if hasTypeArray {
			vr.Size, vr.IsArray = arraySize, true
		}
		i++
		if i < len(stmt) && stmt[i].Text == "[" {
			n, consumed, ok := sc.arraySize(stmt[i:])
			if !ok {
				sc.unsupported(fmt.Sprintf("%s %s: unresolved array size", storage, vr.Name))
				i += skipDeclarator(stmt[i:])
				continue
			}
			vr.Size, vr.IsArray = n, true
			i += consumed
		}
		var init []Token
		if i < len(stmt) && stmt[i].Text == "=" {
			n := skipDeclarator(stmt[i:])
			init = stmt[i+1 : i+n]
			i += n
		}
		if i < len(stmt) && stmt[i].Text == "," {
			i++
		}
		sc.add(storage, typName, vr, init)
	}
}

func (sc *scanner) add(storage, typName string, vr Variable, init []Token) {
	if storage == "const" {
		if vr.Type == Int || vr.Type == Uint {
			if len(init) == 1 {
				if n, err := parseInt(init[0].Text); err == nil {
					sc.consts[vr.Name] = n
				}
			}
		}
		return
	}
	if vr.Type == Unknown {
		sc.unsupported(fmt.Sprintf("%s %s: type %s", storage, vr.Name, typName))
		return
	}
	switch storage {
	case "in":
		sc.rf.Inputs = append(sc.rf.Inputs, vr)
	case "uniform":
		sc.rf.Uniforms = append(sc.rf.Uniforms, vr)
	}
}

func (sc *scanner) unsupported(msg string) {
	sc.rf.Unsupported = append(sc.rf.Unsupported, msg)
}

// arraySize parses [N] at the start of toks, returning the size and the
// number of tokens consumed.
func (sc *scanner) arraySize(toks []Token) (size, consumed int, ok bool) {
	if len(toks) < 3 || toks[2].Text != "]" {
		return 0, 0, false
	}
	t := toks[1]
	switch t.Type {
	case NumberToken:
		n, err := parseInt(t.Text)
		if err != nil || n <= 0 {
			return 0, 0, false
		}
		return n, 3, true
	case IdentToken:
		n, has := sc.consts[t.Text]
		if !has || n <= 0 {
			return 0, 0, false
		}
		return n, 3, true
	}
	return 0, 0, false
}

// layoutQualifier parses (...) following the layout keyword, returning
// the number of tokens consumed and the location, or -1.
func layoutQualifier(toks []Token) (consumed, location int) {
	location = -1
	if len(toks) == 0 || toks[0].Text != "(" {
		return 0, location
	}
	for i := 1; i < len(toks); i++ {
		switch toks[i].Text {
		case ")":
			return i + 1, location
		case "location":
			if i+2 < len(toks) && toks[i+1].Text == "=" {
				if n, err := parseInt(toks[i+2].Text); err == nil {
					location = n
				}
			}
		}
	}
	return len(toks), location
}

// skipDeclarator returns the number of tokens up to the next
// top-level comma, or the end.
func skipDeclarator(toks []Token) int {
	depth := 0
	for i, t := range toks {
		switch t.Text {
		case "(", "[":
			depth++
		case ")", "]":
			depth--
		case ",":
			if depth == 0 {
				return i
			}
		}
	}
	return len(toks)
}

func stmtName(toks []Token) string {
	if len(toks) == 0 {
		return ""
	}
	return toks[0].Text
}

func parseInt(s string) (int, error) {
	s = strings.TrimRight(s, "uU")
	n, err := strconv.ParseInt(s, 0, 32)
	return int(n), err
}
