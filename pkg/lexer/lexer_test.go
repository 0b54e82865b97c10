package lexer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pseudomuto/sqlstyle/pkg/diag"
	"github.com/pseudomuto/sqlstyle/pkg/dialect"
	. "github.com/pseudomuto/sqlstyle/pkg/lexer"
	"github.com/stretchr/testify/require"
)

type kindText struct {
	Kind Kind
	Text string
}

func kinds(tokens Tokens) []kindText {
	out := make([]kindText, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, kindText{t.Kind, t.Text})
	}

	return out
}

func TestTokenizeKinds(t *testing.T) {
	tokens, diags := Tokenize("SELECT a.b, 'x''y' -- c\nFROM t /* d */ WHERE n >= 1.5e3;", dialect.ANSI)
	require.Empty(t, diags)

	want := []kindText{
		{Keyword, "SELECT"},
		{Whitespace, " "},
		{Identifier, "a"},
		{Punctuation, "."},
		{Identifier, "b"},
		{Punctuation, ","},
		{Whitespace, " "},
		{String, "'x''y'"},
		{Whitespace, " "},
		{LineComment, "-- c"},
		{Whitespace, "\n"},
		{Keyword, "FROM"},
		{Whitespace, " "},
		{Identifier, "t"},
		{Whitespace, " "},
		{BlockComment, "/* d */"},
		{Whitespace, " "},
		{Keyword, "WHERE"},
		{Whitespace, " "},
		{Identifier, "n"},
		{Whitespace, " "},
		{Operator, ">="},
		{Whitespace, " "},
		{Number, "1.5e3"},
		{Punctuation, ";"},
	}

	if diff := cmp.Diff(want, kinds(tokens)); diff != "" {
		t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeLossless(t *testing.T) {
	inputs := []string{
		"",
		"select * from dual",
		"  \t\r\n SELECT a　FROM t  ",
		"SELECT 'unterminated",
		"SELECT \"open ident",
		"SELECT /* open comment",
		"SELECT `weird` FROM `t` WHERE x <> y || z :: int",
		"SELECT é, 名前 FROM 表 -- ünïcode",
		"SELECT $1, ?, @v, #x, {y} [z]",
		"\ufeffSELECT 1",
	}

	for _, in := range inputs {
		tokens, _ := Tokenize(in, dialect.Oracle)
		require.Equal(t, in, tokens.String(), "round trip of %q", in)

		for i := 1; i < len(tokens); i++ {
			prev := tokens[i-1]
			require.Equal(t, prev.Pos.Offset+len(prev.Text), tokens[i].Pos.Offset)
		}
	}
}

func TestTokenizeOperatorsLongestFirst(t *testing.T) {
	tokens, _ := Tokenize("a<=b<>c!=d||e::f:=g=>h", nil)

	var ops []string
	for _, tok := range tokens {
		if tok.Kind == Operator {
			ops = append(ops, tok.Text)
		}
	}

	require.Equal(t, []string{"<=", "<>", "!=", "||", "::", ":=", "=>"}, ops)
}

func TestTokenizeKeywords(t *testing.T) {
	t.Run("dialect decides", func(t *testing.T) {
		tokens, _ := Tokenize("NVL", dialect.ANSI)
		require.Equal(t, Identifier, tokens[0].Kind)

		tokens, _ = Tokenize("nvl", dialect.Oracle)
		require.Equal(t, Keyword, tokens[0].Kind)
	})

	t.Run("not after a dot", func(t *testing.T) {
		tokens, _ := Tokenize("t.select", dialect.ANSI)
		require.Equal(t, Identifier, tokens[2].Kind)
	})

	t.Run("quoted words are identifiers", func(t *testing.T) {
		tokens, _ := Tokenize(`"SELECT"`, dialect.ANSI)
		require.Len(t, tokens, 1)
		require.Equal(t, Identifier, tokens[0].Kind)
		require.True(t, tokens[0].IsQuoted())
	})

	t.Run("words with digits and underscores", func(t *testing.T) {
		tokens, _ := Tokenize("select_1", dialect.ANSI)
		require.Len(t, tokens, 1)
		require.Equal(t, Identifier, tokens[0].Kind)
	})
}

func TestTokenizeDiagnostics(t *testing.T) {
	tests := []struct {
		name   string
		sql    string
		kind   diag.Kind
		column int
	}{
		{name: "string", sql: "SELECT 'abc", kind: diag.UnterminatedString, column: 8},
		{name: "quoted identifier", sql: `SELECT "abc`, kind: diag.UnterminatedQuotedIdentifier, column: 8},
		{name: "backtick identifier", sql: "SELECT `abc", kind: diag.UnterminatedQuotedIdentifier, column: 8},
		{name: "block comment", sql: "SELECT 1 /* abc", kind: diag.UnterminatedComment, column: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, diags := Tokenize(tt.sql, dialect.ANSI)
			require.Len(t, diags, 1)
			require.Equal(t, tt.kind, diags[0].Kind)
			require.Equal(t, 1, diags[0].Line)
			require.Equal(t, tt.column, diags[0].Column)

			// the unterminated construct runs to the end of input
			last := tokens[len(tokens)-1]
			require.Equal(t, tt.sql[tt.column-1:], last.Text)
		})
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens, _ := Tokenize("SELECT\n  é,\r\n  b", dialect.ANSI)

	byText := map[string]Position{}
	for _, tok := range tokens {
		if tok.IsSignificant() {
			byText[tok.Text] = tok.Pos
		}
	}

	require.Equal(t, Position{Offset: 0, Line: 1, Column: 1}, byText["SELECT"])
	require.Equal(t, Position{Offset: 9, Line: 2, Column: 3}, byText["é"])
	require.Equal(t, Position{Offset: 11, Line: 2, Column: 4}, byText[","])
	require.Equal(t, Position{Offset: 16, Line: 3, Column: 3}, byText["b"])
}

func TestTokenHelpers(t *testing.T) {
	tok := Token{Kind: Keyword, Text: "select"}
	require.True(t, tok.IsKeyword())
	require.True(t, tok.IsKeyword("FROM", "SELECT"))
	require.False(t, tok.IsKeyword("FROM"))
	require.Equal(t, "SELECT", tok.Upper())
	require.True(t, tok.IsSignificant())

	comment := Token{Kind: LineComment, Text: "-- x"}
	require.True(t, comment.IsComment())
	require.False(t, comment.IsSignificant())

	op := Token{Kind: Operator, Text: "<>"}
	require.True(t, op.IsOperator())
	require.True(t, op.IsOperator("=", "<>"))
	require.False(t, op.IsPunct("<>"))

	require.Equal(t, "KEYWORD", Keyword.String())
	require.Equal(t, "2:5", Position{Line: 2, Column: 5}.String())
}

func TestTokensSignificant(t *testing.T) {
	tokens, _ := Tokenize("SELECT /* x */ 1 -- y", dialect.ANSI)
	require.Equal(t, "SELECT1", tokens.Significant().String())
}
