package lexer_test

import (
	"testing"

	"github.com/kirillsemyonkin/lsd/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadIWSConsumesSpacesAndTabs(t *testing.T) {
	s := lexer.NewFromString("  \t\tabc")
	got := lexer.ReadIWS(s)
	assert.Equal(t, "  \t\t", got)
	assert.Equal(t, 'a', s.Peek())
}

func TestReadNWSReportsNewlineCrossing(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantHasNL   bool
		wantRemains rune
	}{
		{"no newline", "   abc", false, 'a'},
		{"newline only", "\n\nabc", true, 'a'},
		{"comment without newline", "#hi", false, lexer.EOF},
		{"comment then newline", "#hi\nabc", true, 'a'},
		{"mixed", "  \r\n  # trailing\nabc", true, 'a'},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := lexer.NewFromString(tc.input)
			hasNL := lexer.ReadNWS(s)
			assert.Equal(t, tc.wantHasNL, hasNL)
			assert.Equal(t, tc.wantRemains, s.Peek())
		})
	}
}

func TestReadWordContextTerminators(t *testing.T) {
	tests := []struct {
		name  string
		ctx   lexer.Context
		stop  rune
		input string
		want  string
	}{
		{"value stops at space", lexer.ValueContext, 0, "abc def", "abc"},
		{"value stops at caller stop rune", lexer.ValueContext, '}', "abc}def", "abc"},
		{"key stops at dot", lexer.KeyContext, 0, "abc.def", "abc"},
		{"key stops at brace", lexer.KeyContext, 0, "abc{def", "abc"},
		{"key stops at bracket", lexer.KeyContext, 0, "abc[def", "abc"},
		{"list stops at brace", lexer.ListContext, 0, "abc{def", "abc"},
		{"list allows dot", lexer.ListContext, 0, "abc.def ", "abc.def"},
		{"value allows brace when no stop", lexer.ValueContext, 0, "abc{def", "abc{def"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := lexer.NewFromString(tc.input)
			word, ok := lexer.ReadWord(s, tc.ctx, tc.stop)
			require.True(t, ok)
			assert.Equal(t, tc.want, word)
		})
	}
}

func TestReadWordNothingMatchedLeavesStreamUntouched(t *testing.T) {
	s := lexer.NewFromString(" abc")
	word, ok := lexer.ReadWord(s, lexer.ValueContext, 0)
	assert.False(t, ok)
	assert.Empty(t, word)
	assert.Equal(t, ' ', s.Peek())
}

func TestReadQuotedStringEscapeTable(t *testing.T) {
	ok := []struct {
		name  string
		input string
		want  string
	}{
		{"simple chars", `"\"\'\\"`, `"'\`},
		{"nul", `"\0"`, "\x00"},
		{"bel lower", `"\a"`, "\a"},
		{"bel upper", `"\A"`, "\a"},
		{"bs", `"\b"`, "\b"},
		{"tab", `"\t"`, "\t"},
		{"lf", `"\n"`, "\n"},
		{"vt", `"\v"`, "\v"},
		{"ff", `"\f"`, "\f"},
		{"cr", `"\r"`, "\r"},
		{"byte escape ascii", `"\x41"`, "A"},
		{"unicode escape bmp", "\"\\u0041\"", "A"},
		{"literal multi-byte rune needs no escape", `"😀"`, "😀"},
	}
	for _, tc := range ok {
		t.Run("round-trip/"+tc.name, func(t *testing.T) {
			s := lexer.NewFromString(tc.input)
			got, err := lexer.ReadQuotedString(s)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadQuotedStringUTF8ByteEscapeMultiByte(t *testing.T) {
	// U+00E9 (é) is c3 a9 in UTF-8.
	s := lexer.NewFromString(`"\xc3\xa9"`)
	got, err := lexer.ReadQuotedString(s)
	require.NoError(t, err)
	assert.Equal(t, "é", got)
}

func TestReadQuotedStringUTF16SurrogatePairEscape(t *testing.T) {
	// U+1F600 (😀) is the surrogate pair D83D DE00.
	s := lexer.NewFromString("\"\\ud83d\\ude00\"")
	got, err := lexer.ReadQuotedString(s)
	require.NoError(t, err)
	assert.Equal(t, "😀", got)
}

func TestReadQuotedStringErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr lexer.ErrKind
	}{
		{"unterminated string", `"abc`, lexer.ErrUnexpectedStringEnd},
		{"unknown escape letter", `"\q"`, lexer.ErrUnexpectedCharEscapeEnd},
		{"escape at EOF", `"\`, lexer.ErrUnexpectedCharEscapeEnd},
		{"byte escape bad continuation", `"\xf0\x00\x00\x00\x00"`, lexer.ErrUnexpectedCharInByteEscape},
		{"byte escape non-hex", `"\xzz"`, lexer.ErrUnexpectedCharInByteEscape},
		{"unicode escape lone low surrogate", `"\udfff"`, lexer.ErrUnexpectedCharInUnicodeEscape},
		{"unicode escape missing partner prefix", `"\ud800x"`, lexer.ErrUnexpectedCharInUnicodeEscape},
		{"unicode escape non-hex", `"\uzzzz"`, lexer.ErrUnexpectedCharInUnicodeEscape},
		{"EOF mid hex digits", `"\x4`, lexer.ErrUnexpectedStringEnd},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := lexer.NewFromString(tc.input)
			_, err := lexer.ReadQuotedString(s)
			require.Error(t, err)
			lexErr, ok := err.(*lexer.LexError)
			require.True(t, ok, "expected *lexer.LexError, got %T", err)
			assert.Equal(t, tc.wantErr, lexErr.Kind)
		})
	}
}
