// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Kirill Semyonkin
package lsd

import "strconv"

// segment classifies a path element the way spec.md §3/§4.4 requires:
// if its textual form parses as a signed decimal integer, it addresses a
// List by index; otherwise it addresses a Level by key. Notably "-1"
// classifies as an Index (and then fails any List's bounds check), and an
// integer-looking key like "10" still matches a Level key "10" because
// Level lookup always happens against the segment's original string form.
type segment struct {
	text    string
	isIndex bool
	index   int
}

func classify(text string) segment {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return segment{text: text, isIndex: true, index: int(i)}
	}
	return segment{text: text}
}

// Inner descends n through path, one segment at a time, dispatching each
// segment as either a list index or a level key per spec.md §4.4's table.
// An empty path returns n itself. Inner reports false the moment any
// segment fails to resolve; it never partially applies a path.
func (n Node) Inner(path ...string) (Node, bool) {
	cur := n
	for _, raw := range path {
		seg := classify(raw)
		next, ok := descend(cur, seg)
		if !ok {
			return Node{}, false
		}
		cur = next
	}
	return cur, true
}

func descend(n Node, seg segment) (Node, bool) {
	switch n.kind {
	case KindValue:
		return Node{}, false
	case KindList:
		if !seg.isIndex || seg.index < 0 || seg.index >= len(n.list) {
			return Node{}, false
		}
		return n.list[seg.index], true
	case KindLevel:
		return n.level.Get(seg.text)
	default:
		return Node{}, false
	}
}

// Value resolves path and returns its text. If the path doesn't resolve at
// all, Value returns (nil, nil). If it resolves to a non-Value node,
// Value returns (nil, onTypeError).
func (n Node) Value(onTypeError error, path ...string) (*string, error) {
	found, ok := n.Inner(path...)
	if !ok {
		return nil, nil
	}
	text, ok := found.AsValue()
	if !ok {
		return nil, onTypeError
	}
	return &text, nil
}

// List resolves path and returns its items. See Value for the tri-state
// (not found / wrong type / found) contract.
func (n Node) List(onTypeError error, path ...string) (*[]Node, error) {
	found, ok := n.Inner(path...)
	if !ok {
		return nil, nil
	}
	items, ok := found.AsList()
	if !ok {
		return nil, onTypeError
	}
	return &items, nil
}

// LevelAt resolves path and returns its Level. See Value for the tri-state
// (not found / wrong type / found) contract.
func (n Node) LevelAt(onTypeError error, path ...string) (*Level, error) {
	found, ok := n.Inner(path...)
	if !ok {
		return nil, nil
	}
	level, ok := found.AsLevel()
	if !ok {
		return nil, onTypeError
	}
	return level, nil
}
