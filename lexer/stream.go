// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Kirill Semyonkin

// Package lexer adapts a character source into the peek-committed readers
// the LSD grammar needs: one-rune lookahead, inline/structural whitespace,
// unquoted words with a caller-chosen terminator set, and quoted strings
// with the full escape alphabet. It has no knowledge of the LSD tree or
// grammar; the grammar package drives these readers.
package lexer

import (
	"fmt"
	"io"
	"strings"
	"text/scanner"
)

// Position mirrors scanner.Position, the same re-export kdlc/lexer uses so
// callers get line/column/offset without pulling in text/scanner directly.
type Position = scanner.Position

// EOF is returned by Peek when the underlying source is exhausted.
const EOF = scanner.EOF

// Stream is a one-rune-lookahead peekable character stream. Peek never
// advances the source; Advance consumes exactly the rune last returned by
// Peek. Calling Advance without a prior Peek is a programmer error.
type Stream struct {
	sc       scanner.Scanner
	readErr  error
	lastPeek rune
	peeked   bool
}

// New adapts r into a Stream. Decoding is UTF-8, as text/scanner assumes.
func New(r io.Reader) *Stream {
	s := &Stream{}
	s.sc.Init(r)
	s.sc.Mode = 0 // raw mode: no tokenization, just rune-at-a-time + positions
	s.sc.Error = func(_ *scanner.Scanner, msg string) {
		if s.readErr == nil {
			s.readErr = fmt.Errorf("%s", msg)
		}
	}
	return s
}

// NewFromString adapts a string into a Stream.
func NewFromString(src string) *Stream {
	return New(strings.NewReader(src))
}

// Peek returns the next rune without consuming it. Repeated calls without
// an intervening Advance return the same rune. Returns EOF at end of input.
func (s *Stream) Peek() rune {
	if !s.peeked {
		s.lastPeek = s.sc.Peek()
		s.peeked = true
	}
	return s.lastPeek
}

// Advance consumes the rune last returned by Peek.
func (s *Stream) Advance() {
	s.sc.Next()
	s.peeked = false
}

// Position returns the position of the rune that would be returned by Peek.
func (s *Stream) Position() Position {
	return s.sc.Pos()
}

// ReadErr returns any I/O error surfaced while scanning, or nil.
func (s *Stream) ReadErr() error {
	return s.readErr
}
