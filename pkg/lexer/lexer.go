package lexer

import (
	"strings"
	"unicode/utf8"

	plexer "github.com/alecthomas/participle/v2/lexer"
	"github.com/pseudomuto/sqlstyle/pkg/diag"
	"github.com/pseudomuto/sqlstyle/pkg/dialect"
)

type rule struct {
	kind Kind
	// open marks recovery rules that match an unterminated construct
	open diag.Kind
}

var (
	// sqlLexer matches rules in order, first match wins. Each terminated
	// construct is followed by a recovery rule that runs to end of input.
	sqlLexer = plexer.MustSimple([]plexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[\s\p{Z}\x{FEFF}]+`},
		{Name: "LineComment", Pattern: `--[^\r\n]*`},
		{Name: "BlockComment", Pattern: `/\*(?s:.*?)\*/`},
		{Name: "OpenBlockComment", Pattern: `/\*(?s:.*)`},
		{Name: "String", Pattern: `'(?:[^']|'')*'`},
		{Name: "OpenString", Pattern: `'(?:[^']|'')*`},
		{Name: "QuotedIdent", Pattern: `"(?:[^"]|"")*"`},
		{Name: "OpenQuotedIdent", Pattern: `"(?:[^"]|"")*`},
		{Name: "BacktickIdent", Pattern: "`[^`]*`"},
		{Name: "OpenBacktickIdent", Pattern: "`[^`]*"},
		{Name: "Number", Pattern: `(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`},
		{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_]*`},
		{Name: "Operator", Pattern: `\|\||<=|>=|<>|!=|::|:=|=>|[=<>+\-*/%|&^~!]`},
		{Name: "Punct", Pattern: `[(),;.\[\]{}:?@$#]`},
		{Name: "Other", Pattern: `.`},
	})

	rules = map[plexer.TokenType]rule{}
)

func init() {
	byName := map[string]rule{
		"Whitespace":        {kind: Whitespace},
		"LineComment":       {kind: LineComment},
		"BlockComment":      {kind: BlockComment},
		"OpenBlockComment":  {kind: BlockComment, open: diag.UnterminatedComment},
		"String":            {kind: String},
		"OpenString":        {kind: String, open: diag.UnterminatedString},
		"QuotedIdent":       {kind: Identifier},
		"OpenQuotedIdent":   {kind: Identifier, open: diag.UnterminatedQuotedIdentifier},
		"BacktickIdent":     {kind: Identifier},
		"OpenBacktickIdent": {kind: Identifier, open: diag.UnterminatedQuotedIdentifier},
		"Number":            {kind: Number},
		"Ident":             {kind: Identifier},
		"Operator":          {kind: Operator},
		"Punct":             {kind: Punctuation},
		"Other":             {kind: Punctuation},
	}

	for name, typ := range sqlLexer.Symbols() {
		if r, ok := byName[name]; ok {
			rules[typ] = r
		}
	}
}

var openMessages = map[diag.Kind]string{
	diag.UnterminatedComment:          "unterminated block comment",
	diag.UnterminatedString:           "unterminated string literal",
	diag.UnterminatedQuotedIdentifier: "unterminated quoted identifier",
}

// Tokenize splits source into tokens. Words are classified as keywords using
// d; a nil dialect means dialect.ANSI. Tokenize never fails: malformed input is
// reported through the returned diagnostics.
func Tokenize(source string, d *dialect.Dialect) (Tokens, diag.List) {
	if d == nil {
		d = dialect.ANSI
	}

	var (
		tokens Tokens
		diags  diag.List
	)

	lex, err := sqlLexer.LexString("", source)
	if err != nil {
		return fallback(tokens, source, Position{Line: 1, Column: 1}), diags
	}

	next := Position{Line: 1, Column: 1}
	for {
		tok, err := lex.Next()
		if err != nil {
			// The Other rule matches any character, so this only guards against
			// a lexer bug. Keep the remaining text so output stays lossless.
			return fallback(tokens, source, next), diags
		}

		if tok.EOF() {
			break
		}

		r := rules[tok.Type]
		t := Token{
			Kind: r.kind,
			Text: tok.Value,
			Pos: Position{
				Offset: tok.Pos.Offset,
				Line:   tok.Pos.Line,
				Column: tok.Pos.Column,
			},
		}

		if t.Kind == Identifier && !t.IsQuoted() && d.IsKeyword(t.Text) && !followsDot(tokens) {
			t.Kind = Keyword
		}

		if r.open != 0 {
			diags = append(diags, diag.Diagnostic{
				Kind:    r.open,
				Message: openMessages[r.open],
				Line:    t.Pos.Line,
				Column:  t.Pos.Column,
				Offset:  t.Pos.Offset,
			})
		}

		tokens = append(tokens, t)
		next = advance(t.Pos, t.Text)
	}

	return tokens, diags
}

// followsDot reports whether the last token is a "." directly adjacent to the
// word being classified.
func followsDot(tokens Tokens) bool {
	return len(tokens) > 0 && tokens[len(tokens)-1].IsPunct(".")
}

func fallback(tokens Tokens, source string, at Position) Tokens {
	if at.Offset >= len(source) {
		return tokens
	}

	return append(tokens, Token{Kind: Punctuation, Text: source[at.Offset:], Pos: at})
}

// advance returns the position just past text when it starts at p.
func advance(p Position, text string) Position {
	p.Offset += len(text)
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		p.Line += strings.Count(text, "\n")
		p.Column = utf8.RuneCountInString(text[i+1:]) + 1
		return p
	}

	p.Column += utf8.RuneCountInString(text)
	return p
}
