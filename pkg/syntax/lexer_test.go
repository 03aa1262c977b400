package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenKinds(t *testing.T, src string) []Kind {
	t.Helper()
	tokens, _ := lex([]byte(src))
	kinds := make([]Kind, 0, len(tokens))
	for _, tok := range tokens {
		if tok.kind != TokenWhitespace {
			kinds = append(kinds, tok.kind)
		}
	}
	return kinds
}

func TestLexBasicTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []Kind
	}{
		{
			name: "identifiers and keywords",
			src:  "let x in rec inherit",
			want: []Kind{TokenLet, TokenIdent, TokenIn, TokenRec, TokenInherit},
		},
		{
			name: "numbers",
			src:  "1 3.14 42",
			want: []Kind{TokenInt, TokenFloat, TokenInt},
		},
		{
			name: "operators longest match",
			src:  "== != <= >= -> // ++ && ||",
			want: []Kind{
				TokenEqual, TokenNotEqual, TokenLessOrEq, TokenMoreOrEq,
				TokenImplication, TokenUpdate, TokenConcat, TokenAnd, TokenOr,
			},
		},
		{
			name: "binding",
			src:  "x = y;",
			want: []Kind{TokenIdent, TokenAssign, TokenIdent, TokenSemicolon},
		},
		{
			name: "ellipsis vs dots",
			src:  "{ ... }",
			want: []Kind{TokenCurlyOpen, TokenEllipsis, TokenCurlyClose},
		},
		{
			name: "string with interpolation stays one token",
			src:  `"a${x}b"`,
			want: []Kind{TokenString},
		},
		{
			name: "indented string",
			src:  "''\n  body\n''",
			want: []Kind{TokenString},
		},
		{
			name: "path",
			src:  "./foo/bar.nix",
			want: []Kind{TokenPath},
		},
		{
			name: "search path",
			src:  "<nixpkgs>",
			want: []Kind{TokenPath},
		},
		{
			name: "uri",
			src:  "https://example.com/x",
			want: []Kind{TokenURI},
		},
		{
			name: "comments",
			src:  "# line\n/* block */ x",
			want: []Kind{TokenComment, TokenComment, TokenIdent},
		},
		{
			name: "dollar curly",
			src:  "${x}",
			want: []Kind{TokenDollarCurly, TokenIdent, TokenCurlyClose},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tokenKinds(t, tt.src))
		})
	}
}

func TestLexCoversEveryByte(t *testing.T) {
	t.Parallel()

	srcs := []string{
		"{ a = 1; b = ./p; }",
		"let x = \"s${y}\"; in x",
		"f: f { inherit (lib) mkIf; }",
		"# only a comment",
	}
	for _, src := range srcs {
		tokens, _ := lex([]byte(src))
		offset := 0
		for _, tok := range tokens {
			require.Equal(t, offset, tok.start, "gap before token in %q", src)
			offset = tok.end
		}
		require.Equal(t, len(src), offset, "tokens do not cover %q", src)
	}
}

func TestLexUnterminatedString(t *testing.T) {
	t.Parallel()

	_, errs := lex([]byte(`"never closed`))
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnterminatedString, errs[0].Kind)
}

func TestLexTrailingBackslashStaysInBounds(t *testing.T) {
	t.Parallel()

	// A backslash as the last byte of an unterminated string must not
	// advance past the buffer.
	src := []byte(`"abc\`)
	tokens, errs := lex(src)
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenString, tokens[0].kind)
	assert.Equal(t, len(src), tokens[0].end)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnterminatedString, errs[0].Kind)
	assert.Equal(t, len(src), errs[0].At.End)

	tree := Parse(src)
	assert.LessOrEqual(t, tree.Root.Range.End, len(src))
	for _, err := range tree.Errors {
		assert.LessOrEqual(t, err.At.End, len(src))
	}
}

func TestLexKeywordPrefixIsIdent(t *testing.T) {
	t.Parallel()

	// "letter" starts with "let" but is one identifier.
	assert.Equal(t, []Kind{TokenIdent}, tokenKinds(t, "letter"))
	assert.Equal(t, []Kind{TokenIdent}, tokenKinds(t, "rec-ish"))
}
