// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glsl

import (
	"github.com/tdewolff/parse/v2/buffer"
)

// TokenTypes are the kinds of [Token] produced by the [Lexer].
type TokenTypes int32

const (
	EOFToken TokenTypes = iota
	IdentToken
	NumberToken
	PunctToken

	// DirectiveToken is a whole preprocessor line, including the #,
	// with line continuations joined.
	DirectiveToken
)

// Token is one lexeme of GLSL source.
type Token struct {
	Type TokenTypes
	Text string

	// Line is the 1-based source line the token starts on.
	Line int
}

// Lexer splits GLSL source into identifiers, numbers, punctuation and
// preprocessor lines. Whitespace and comments are dropped. It does not
// evaluate the preprocessor, so code in disabled #if blocks is still
// tokenized.
type Lexer struct {
	r    *buffer.Lexer
	line int
}

// NewLexer returns a Lexer over the given source.
func NewLexer(src []byte) *Lexer {
	return &Lexer{r: buffer.NewLexerBytes(src), line: 1}
}

// Next returns the next token, with Type == EOFToken at the end.
func (lx *Lexer) Next() Token {
	r := lx.r
	for {
		c := r.Peek(0)
		switch {
		case c == 0:
			if r.Err() != nil {
				return Token{Type: EOFToken, Line: lx.line}
			}
			r.Move(1)
			r.Skip()
		case c == '\n':
			lx.line++
			r.Move(1)
			r.Skip()
		case c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v':
			r.Move(1)
			r.Skip()
		case c == '/' && r.Peek(1) == '/':
			for c := r.Peek(0); c != '\n' && !(c == 0 && r.Err() != nil); c = r.Peek(0) {
				r.Move(1)
			}
			r.Skip()
		case c == '/' && r.Peek(1) == '*':
			r.Move(2)
			for {
				c := r.Peek(0)
				if c == 0 && r.Err() != nil {
					break
				}
				if c == '*' && r.Peek(1) == '/' {
					r.Move(2)
					break
				}
				if c == '\n' {
					lx.line++
				}
				r.Move(1)
			}
			r.Skip()
		case c == '#':
			return lx.directive()
		case isIdentStart(c):
			line := lx.line
			for isIdent(r.Peek(0)) {
				r.Move(1)
			}
			return Token{Type: IdentToken, Text: string(r.Shift()), Line: line}
		case isDigit(c) || (c == '.' && isDigit(r.Peek(1))):
			line := lx.line
			for {
				c := r.Peek(0)
				if (c == 'e' || c == 'E') && (r.Peek(1) == '+' || r.Peek(1) == '-') {
					r.Move(2)
					continue
				}
				if !isIdent(c) && c != '.' {
					break
				}
				r.Move(1)
			}
			return Token{Type: NumberToken, Text: string(r.Shift()), Line: line}
		default:
			line := lx.line
			r.Move(1)
			return Token{Type: PunctToken, Text: string(r.Shift()), Line: line}
		}
	}
}

func (lx *Lexer) directive() Token {
	r := lx.r
	line := lx.line
	for {
		c := r.Peek(0)
		if c == 0 && r.Err() != nil {
			break
		}
		if c == '\\' && r.Peek(1) == '\n' {
			lx.line++
			r.Move(2)
			continue
		}
		if c == '\n' {
			break
		}
		if c == '/' && r.Peek(1) == '/' {
			break
		}
		r.Move(1)
	}
	return Token{Type: DirectiveToken, Text: string(r.Shift()), Line: line}
}

// Tokens returns all tokens of the source, excluding the final EOF.
func Tokens(src string) []Token {
	lx := NewLexer([]byte(src))
	var toks []Token
	for {
		tok := lx.Next()
		if tok.Type == EOFToken {
			return toks
		}
		toks = append(toks, tok)
	}
}

// Identifiers returns the number of times each identifier occurs
// in the source, outside of comments and preprocessor lines.
func Identifiers(src string) map[string]int {
	ids := make(map[string]int)
	for _, tok := range Tokens(src) {
		if tok.Type == IdentToken {
			ids[tok.Text]++
		}
	}
	return ids
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdent(c byte) bool { return isIdentStart(c) || isDigit(c) }
