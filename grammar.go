// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Kirill Semyonkin
package lsd

import (
	"github.com/kirillsemyonkin/lsd/lexer"
)

// parser drives the recursive-descent grammar (spec.md §4.3) directly over
// a character stream: there is no separate token stream, since the LSD
// grammar is small enough that primitives are consumed straight from the
// lexer package as the grammar needs them (peek-committed, one rune of
// lookahead, no backtracking -- spec.md §4.3, §9).
type parser struct {
	s *lexer.Stream
}

func newParser(s *lexer.Stream) *parser {
	return &parser{s: s}
}

// ioErr reports a ReadFailure if the underlying stream surfaced an I/O
// error, so a hardware/file-level failure is never misreported as a
// structural syntax error.
func (p *parser) ioErr() *ParseError {
	if err := p.s.ReadErr(); err != nil {
		return &ParseError{Kind: ReadFailure, Pos: p.s.Position(), Cause: err}
	}
	return nil
}

// parseRoot implements spec.md §4.3 "Top-level entry".
func (p *parser) parseRoot() (Node, *ParseError) {
	lexer.ReadNWS(p.s)
	if err := p.ioErr(); err != nil {
		return Node{}, err
	}

	switch p.s.Peek() {
	case '[':
		list, err := p.parseList()
		if err != nil {
			return Node{}, err
		}
		if err := p.requireOnlyTrailingNWS(); err != nil {
			return Node{}, err
		}
		return list, nil
	case '{':
		level, err := p.parseBracedLevel()
		if err != nil {
			return Node{}, err
		}
		if err := p.requireOnlyTrailingNWS(); err != nil {
			return Node{}, err
		}
		return NewLevel(level), nil
	default:
		level, err := p.parseLevelBody(false)
		if err != nil {
			return Node{}, err
		}
		return NewLevel(level), nil
	}
}

// requireOnlyTrailingNWS consumes trailing NWS after a root list/level and
// fails if anything but EOF remains (spec.md §4.3 step 2/3).
func (p *parser) requireOnlyTrailingNWS() *ParseError {
	lexer.ReadNWS(p.s)
	if err := p.ioErr(); err != nil {
		return err
	}
	if p.s.Peek() != lexer.EOF {
		return newErr(p.s.Position(), UnexpectedCharAtFileEnd)
	}
	return nil
}

// parseLevelBody implements spec.md §4.3 "Level" body rule. braced selects
// whether a '}' must close the body (true) or the body ends at the first
// point where no key path can be read (false, the top-level unbraced form);
// that point is normally EOF, and any text left after it is not read.
func (p *parser) parseLevelBody(braced bool) (*Level, *ParseError) {
	accum := NewEmptyLevel()
	for {
		lexer.ReadNWS(p.s)
		if err := p.ioErr(); err != nil {
			return nil, err
		}

		if braced && p.s.Peek() == '}' {
			p.s.Advance()
			return accum, nil
		}

		keyPos := p.s.Position()
		path, ok, err := p.parseKeyPath()
		if err != nil {
			return nil, err
		}
		if !ok {
			if err := p.ioErr(); err != nil {
				return nil, err
			}
			if braced {
				return nil, newErr(p.s.Position(), ExpectedKeyOrEnd)
			}
			return accum, nil
		}

		lexer.ReadNWS(p.s)
		if err := p.ioErr(); err != nil {
			return nil, err
		}

		stop := rune(0)
		if braced {
			stop = '}'
		}
		value, found, err := p.parseLSD(lexer.ValueContext, stop)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, newErr(p.s.Position(), ExpectedLSDAfterKey)
		}

		lexer.ReadNWS(p.s)
		if err := p.ioErr(); err != nil {
			return nil, err
		}

		subtree := buildSubtree(path, value)
		if mergeErr := mergeLevelInto(accum, subtree, keyPos); mergeErr != nil {
			return nil, mergeErr
		}
	}
}

// parseBracedLevel reads '{' NWS LevelBody '}'.
func (p *parser) parseBracedLevel() (*Level, *ParseError) {
	p.s.Advance() // '{'
	return p.parseLevelBody(true)
}

// parseKeyPath implements spec.md §4.3 "Key path": one or more KeyParts
// separated by '.'. ok is false if no KeyPart could be read at all.
func (p *parser) parseKeyPath() ([]string, bool, *ParseError) {
	first, ok, err := p.parseKeyPart()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	path := []string{first}
	for p.s.Peek() == '.' {
		p.s.Advance()
		part, ok, err := p.parseKeyPart()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			if err := p.ioErr(); err != nil {
				return nil, false, err
			}
			return nil, false, newErr(p.s.Position(), ExpectedKeyPartAfterKeySeparator)
		}
		path = append(path, part)
	}
	return path, true, nil
}

// parseKeyPart reads one or more adjacent (no IWS between them) key-words
// and quoted strings, per spec.md §4.2's "Key Part" and §4.3's KeyPath
// rule. Because IWS is itself a KeyContext terminator, parsePart naturally
// stops a KeyPart the moment whitespace (or '.', or EOF) is reached --
// no separate lookahead for "is there whitespace next" is needed.
func (p *parser) parseKeyPart() (string, bool, *ParseError) {
	first, ok, err := p.parsePart(lexer.KeyContext, 0)
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	text := first
	for {
		part, ok, err := p.parsePart(lexer.KeyContext, 0)
		if err != nil {
			return "", false, err
		}
		if !ok {
			if err := p.ioErr(); err != nil {
				return "", false, err
			}
			break
		}
		text += part
	}
	return text, true, nil
}

// parsePart reads a single value/key/list part: a quoted string if the
// stream is sitting on a quote, otherwise an unquoted word in ctx.
func (p *parser) parsePart(ctx lexer.Context, stop rune) (string, bool, *ParseError) {
	ch := p.s.Peek()
	if ch == '\'' || ch == '"' {
		text, err := lexer.ReadQuotedString(p.s)
		if err != nil {
			return "", false, toParseError(err, p.s)
		}
		return text, true, nil
	}
	word, ok := lexer.ReadWord(p.s, ctx, stop)
	return word, ok, nil
}

// parseLSD implements spec.md §4.3 "Value disambiguation": try List, then
// Level, then a context-appropriate Value. found is false only when none
// of the three could even start (used to distinguish "nothing here" from
// a structural error, which the caller turns into the right ErrorKind).
func (p *parser) parseLSD(valueCtx lexer.Context, stop rune) (node Node, found bool, perr *ParseError) {
	switch p.s.Peek() {
	case '[':
		list, err := p.parseList()
		if err != nil {
			return Node{}, false, err
		}
		return list, true, nil
	case '{':
		level, err := p.parseBracedLevel()
		if err != nil {
			return Node{}, false, err
		}
		return NewLevel(level), true, nil
	default:
		text, ok, err := p.readValueLike(valueCtx, stop)
		if err != nil {
			return Node{}, false, err
		}
		if !ok {
			return Node{}, false, nil
		}
		return NewValue(text), true, nil
	}
}

// readValueLike reads one or more parts in ctx, concatenating across IWS
// runs per spec.md §4.2's "Value Part" rule and §8 property 5: internal
// IWS between parts is preserved literally; trailing IWS (consumed while
// probing for a part that never comes) is dropped.
func (p *parser) readValueLike(ctx lexer.Context, stop rune) (string, bool, *ParseError) {
	first, ok, err := p.parsePart(ctx, stop)
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	result := first
	for {
		iws := lexer.ReadIWS(p.s)
		part, ok, err := p.parsePart(ctx, stop)
		if err != nil {
			return "", false, err
		}
		if !ok {
			if err := p.ioErr(); err != nil {
				return "", false, err
			}
			break
		}
		result += iws + part
	}
	return result, true, nil
}

// parseList implements spec.md §4.3 "List": '[' NWS (ListItem NWS)* ']'.
func (p *parser) parseList() (Node, *ParseError) {
	p.s.Advance() // '['
	var items []Node
	for {
		lexer.ReadNWS(p.s)
		if err := p.ioErr(); err != nil {
			return Node{}, err
		}
		if p.s.Peek() == ']' {
			p.s.Advance()
			return NewList(items), nil
		}

		item, found, err := p.parseLSD(lexer.ListContext, 0)
		if err != nil {
			return Node{}, err
		}
		if !found {
			if err := p.ioErr(); err != nil {
				return Node{}, err
			}
			return Node{}, newErr(p.s.Position(), ExpectedListLSDOrEnd)
		}
		items = append(items, item)
	}
}

// toParseError converts a lexical-layer error (lexer.LexError) into the
// public ErrorKind taxonomy.
func toParseError(err error, s *lexer.Stream) *ParseError {
	if lexErr, ok := err.(*lexer.LexError); ok {
		return fromLexErr(lexErr)
	}
	return &ParseError{Kind: ReadFailure, Pos: s.Position(), Cause: err}
}

// buildSubtree materialises the fresh single-entry sub-tree spec.md §4.3's
// merge algorithm describes: an empty Level for each path element but the
// last, with the innermost mapping the last element to leaf.
func buildSubtree(path []string, leaf Node) *Level {
	cur := leaf
	for i := len(path) - 1; i >= 0; i-- {
		lvl := NewEmptyLevel()
		lvl.set(path[i], cur)
		cur = NewLevel(lvl)
	}
	lvl, _ := cur.AsLevel()
	return lvl
}

// mergeLevelInto recursively merges src into dest per spec.md §4.3's merge
// algorithm, failing the first time a collision can't be reconciled.
func mergeLevelInto(dest, src *Level, pos lexer.Position) *ParseError {
	var result *ParseError
	src.Range(func(k string, w Node) bool {
		existing, exists := dest.Get(k)
		if !exists {
			dest.set(k, w)
			return true
		}
		if wLevel, isLevelW := w.AsLevel(); isLevelW {
			if destLevel, isLevelDest := existing.AsLevel(); isLevelDest {
				if err := mergeLevelInto(destLevel, wLevel, pos); err != nil {
					result = err
					return false
				}
				return true
			}
			result = newErr(pos, KeyCollisionShouldBeLevelButIsNot)
			return false
		}
		result = &ParseError{Kind: KeyCollisionKeyAlreadyExists, Pos: pos, Key: k}
		return false
	})
	return result
}
