// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Kirill Semyonkin
package lsd

import (
	"fmt"

	"github.com/kirillsemyonkin/lsd/lexer"
)

// ErrorKind is the closed taxonomy of ways a parse can fail (spec.md §7).
// Implementations may enrich errors with positions but must never add a
// new kind outside this set or otherwise grow the taxonomy.
type ErrorKind int

const (
	ReadFailure ErrorKind = iota
	UnexpectedCharAtFileEnd
	UnexpectedStringEnd
	UnexpectedCharEscapeEnd
	UnexpectedCharInByteEscape
	UnexpectedCharInUnicodeEscape
	ExpectedKeyOrEnd
	ExpectedKeyPartAfterKeySeparator
	ExpectedLSDAfterKey
	ExpectedListLSDOrEnd
	KeyCollisionShouldBeLevelButIsNot
	KeyCollisionKeyAlreadyExists
)

func (k ErrorKind) String() string {
	switch k {
	case ReadFailure:
		return "ReadFailure"
	case UnexpectedCharAtFileEnd:
		return "UnexpectedCharAtFileEnd"
	case UnexpectedStringEnd:
		return "UnexpectedStringEnd"
	case UnexpectedCharEscapeEnd:
		return "UnexpectedCharEscapeEnd"
	case UnexpectedCharInByteEscape:
		return "UnexpectedCharInByteEscape"
	case UnexpectedCharInUnicodeEscape:
		return "UnexpectedCharInUnicodeEscape"
	case ExpectedKeyOrEnd:
		return "ExpectedKeyOrEnd"
	case ExpectedKeyPartAfterKeySeparator:
		return "ExpectedKeyPartAfterKeySeparator"
	case ExpectedLSDAfterKey:
		return "ExpectedLSDAfterKey"
	case ExpectedListLSDOrEnd:
		return "ExpectedListLSDOrEnd"
	case KeyCollisionShouldBeLevelButIsNot:
		return "KeyCollisionShouldBeLevelButIsNot"
	case KeyCollisionKeyAlreadyExists:
		return "KeyCollisionKeyAlreadyExists"
	default:
		return "UnknownErrorKind"
	}
}

// ParseError is the single error type a parse can fail with. Kind is
// always set; Key is only meaningful for KeyCollisionKeyAlreadyExists, and
// Cause only for ReadFailure.
type ParseError struct {
	Kind  ErrorKind
	Pos   lexer.Position
	Key   string
	Cause error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KeyCollisionKeyAlreadyExists:
		return fmt.Sprintf("%s at %s: key %q", e.Kind, e.Pos, e.Key)
	case ReadFailure:
		return fmt.Sprintf("%s at %s: %s", e.Kind, e.Pos, e.Cause)
	default:
		return fmt.Sprintf("%s at %s", e.Kind, e.Pos)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

func newErr(pos lexer.Position, kind ErrorKind) *ParseError {
	return &ParseError{Kind: kind, Pos: pos}
}

// fromLexErr maps a lexer.LexError (the subset of the taxonomy that can
// originate below the grammar layer) onto the full ErrorKind enum.
func fromLexErr(e *lexer.LexError) *ParseError {
	var kind ErrorKind
	switch e.Kind {
	case lexer.ErrReadFailure:
		kind = ReadFailure
	case lexer.ErrUnexpectedStringEnd:
		kind = UnexpectedStringEnd
	case lexer.ErrUnexpectedCharEscapeEnd:
		kind = UnexpectedCharEscapeEnd
	case lexer.ErrUnexpectedCharInByteEscape:
		kind = UnexpectedCharInByteEscape
	case lexer.ErrUnexpectedCharInUnicodeEscape:
		kind = UnexpectedCharInUnicodeEscape
	default:
		kind = ReadFailure
	}
	return &ParseError{Kind: kind, Pos: e.Pos}
}
