// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Kirill Semyonkin
package lsd

import (
	"io"
	"os"

	"github.com/kirillsemyonkin/lsd/lexer"
)

// Parse reads and parses a complete LSD document from r (spec.md §4.3 "Top-
// level entry"). Trailing text after a root List or braced Level fails with
// UnexpectedCharAtFileEnd. An unbraced top-level body ends at the first
// point where no key can be read; text from there on is not read.
func Parse(r io.Reader) (Node, error) {
	p := newParser(lexer.New(r))
	node, err := p.parseRoot()
	if err != nil {
		return Node{}, err
	}
	return node, nil
}

// ParseString parses src as a complete LSD document.
func ParseString(src string) (Node, error) {
	p := newParser(lexer.NewFromString(src))
	node, err := p.parseRoot()
	if err != nil {
		return Node{}, err
	}
	return node, nil
}

// ParseFile reads path and parses its contents as a complete LSD document.
// I/O failures are reported as a ParseError with Kind ReadFailure, the same
// as an error encountered mid-stream, so callers only need to check one
// error shape.
func ParseFile(path string) (Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return Node{}, &ParseError{Kind: ReadFailure, Cause: err}
	}
	defer f.Close()
	return Parse(f)
}
