// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Kirill Semyonkin
package lsd

// ToInterface converts n into plain Go values (string for Value,
// []interface{} for List, and []LevelEntry for Level) suitable for handing
// to a generic marshaler. Level converts to a slice rather than a map so
// callers that care about order (the document's original key order, not an
// encoder's own ordering) can render it faithfully.
func (n Node) ToInterface() interface{} {
	switch n.kind {
	case KindValue:
		return n.value
	case KindList:
		out := make([]interface{}, len(n.list))
		for i, item := range n.list {
			out[i] = item.ToInterface()
		}
		return out
	case KindLevel:
		out := make([]LevelEntry, 0, n.level.Len())
		n.level.Range(func(key string, value Node) bool {
			out = append(out, LevelEntry{Key: key, Value: value.ToInterface()})
			return true
		})
		return out
	default:
		return nil
	}
}

// LevelEntry is one key/value pair of a Level, in the order ToInterface
// encountered it.
type LevelEntry struct {
	Key   string
	Value interface{}
}
