package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pseudomuto/sqlstyle/pkg/dialect"
	"github.com/pseudomuto/sqlstyle/pkg/lexer"
	"github.com/pseudomuto/sqlstyle/pkg/parser"
	"github.com/pseudomuto/sqlstyle/pkg/style"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type (
	// column is fixed by the first significant token placed in its region.
	column struct {
		at int
	}

	// scope is the layout context of a region.
	scope struct {
		// base is where clause anchors of the enclosing statement start.
		base int
		// cont is where broken lines of the region continue. Until it is fixed
		// indent is used instead.
		cont   *column
		indent int
		// cond is the content column of the innermost condition, or nil when
		// AND/OR are not logical connectives of a condition here.
		cond      *column
		caseAndOr bool
		// clause is set for content that belongs directly to a clause, where
		// join phrases break and lists are clause-level.
		clause bool
		// top is set for the clauses of a statement that is not a subquery.
		top bool
	}

	renderer struct {
		cfg     style.Config
		dialect *dialect.Dialect
		keyword func(string) string
		ident   func(string) string
		seps    map[string]bool

		buf   []byte
		col   int
		start int
		// tail counts the trailing bytes of buf that are padding
		tail  int
		fresh bool

		prev     lexer.Token
		prevText string
		sig      lexer.Token
		sig2     lexer.Token
		unary    bool
		comment  bool
		between  bool
		newlines int

		pending    bool
		pendingCol int
		alignTo    int
	}
)

func newColumn() *column {
	return &column{at: -1}
}

func (s scope) contAt() int {
	if s.cont != nil && s.cont.at >= 0 {
		return s.cont.at
	}

	return s.indent
}

// Render lays out a parsed script. Every token of the tree is visited once;
// whitespace tokens only contribute the line breaks that comments keep.
func Render(root *parser.Node, cfg style.Config) string {
	r := newRenderer(cfg)
	r.script(root)
	r.trim()

	return string(r.buf)
}

func newRenderer(cfg style.Config) *renderer {
	return &renderer{
		cfg:        cfg,
		dialect:    cfg.Keywords(),
		keyword:    caser(cfg.Case),
		ident:      caser(cfg.IdentifierCase),
		seps:       make(map[string]bool),
		fresh:      true,
		pendingCol: -1,
		alignTo:    -1,
	}
}

// scratch returns a renderer sharing r's style, used to measure a layout
// without emitting it.
func (r *renderer) scratch() *renderer {
	return &renderer{
		cfg:        r.cfg,
		dialect:    r.dialect,
		keyword:    r.keyword,
		ident:      r.ident,
		seps:       r.seps,
		fresh:      true,
		pendingCol: -1,
		alignTo:    -1,
	}
}

func caser(c style.Case) func(string) string {
	switch c {
	case style.Upper:
		return cases.Upper(language.Und).String
	case style.Lower:
		return cases.Lower(language.Und).String
	case style.Capitalize:
		return cases.Title(language.Und).String
	default:
		return func(s string) string { return s }
	}
}

// text returns the token as it is printed.
func (r *renderer) text(tok lexer.Token) string {
	switch {
	case tok.Kind == lexer.Keyword:
		return r.keyword(tok.Text)
	case tok.Kind == lexer.Identifier && !tok.IsQuoted():
		return r.ident(tok.Text)
	default:
		return tok.Text
	}
}

// put places a token. With brk set it starts a new line at col; a break left
// pending by a comment starts one at the pending column or the scope's
// continuation column.
func (r *renderer) put(tok lexer.Token, s scope, brk bool, col int) {
	text := r.text(tok)
	significant := tok.IsSignificant()

	switch {
	case brk:
		r.newline(col)
	case r.pending:
		at := r.pendingCol
		if at < 0 {
			at = s.contAt()
		}
		r.newline(at)
	case r.fresh:
	default:
		gap := r.gap(tok, text)
		if significant && r.alignTo >= 0 && r.col+len(gap) < r.alignTo {
			gap = strings.Repeat(" ", r.alignTo-r.col)
		}
		r.pad(gap)
	}

	r.start = r.col
	r.write(text)
	r.newlines = 0
	r.prev, r.prevText = tok, text

	if !significant {
		r.comment = true
		return
	}

	if s.cont != nil && s.cont.at < 0 {
		s.cont.at = r.start
	}
	if s.cond != nil && s.cond.at < 0 {
		s.cond.at = r.start
	}

	r.unary = tok.IsOperator("+", "-") && r.unaryAfter(r.sig)
	r.sig2, r.sig = r.sig, tok
	r.comment = false
	r.alignTo = -1
	if tok.IsKeyword("BETWEEN") {
		r.between = true
	}
}

// breakNext makes the next placed token start a new line. A negative col means
// the continuation column of the token's scope.
func (r *renderer) breakNext(col int) {
	if !r.pending || col >= 0 {
		r.pendingCol = col
	}
	r.pending = true
}

func (r *renderer) write(text string) {
	r.buf = append(r.buf, text...)
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		r.col = runewidth.StringWidth(text[i+1:])
	} else {
		r.col += runewidth.StringWidth(text)
	}
	r.tail = 0
	r.fresh = false
}

func (r *renderer) pad(spaces string) {
	r.buf = append(r.buf, spaces...)
	r.col += len(spaces)
	r.tail += len(spaces)
}

// trim drops trailing padding.
func (r *renderer) trim() {
	r.buf = r.buf[:len(r.buf)-r.tail]
	r.col -= r.tail
	r.tail = 0
}

// newline ends the current line and indents the next one to col. On a line
// that holds nothing yet it only re-indents.
func (r *renderer) newline(col int) {
	r.trim()
	r.pending, r.pendingCol = false, -1
	if len(r.buf) == 0 {
		return
	}

	if r.buf[len(r.buf)-1] != '\n' {
		r.buf = append(r.buf, '\n')
	}
	r.col = 0
	r.pad(strings.Repeat(" ", max(col, 0)))
	r.fresh = true
}

// blank ends the current line and leaves one empty line before the next.
func (r *renderer) blank(col int) {
	if len(r.buf) == 0 {
		return
	}

	r.newline(0)
	r.trim()
	if n := len(r.buf); n < 2 || r.buf[n-2] != '\n' {
		r.buf = append(r.buf, '\n')
	}
	r.pad(strings.Repeat(" ", max(col, 0)))
	r.fresh = true
}

// gap is the spacing between the previously placed token and tok.
func (r *renderer) gap(tok lexer.Token, text string) string {
	g := r.spacing(tok)
	if g == "" && !r.separable(r.prevText, text) {
		return " "
	}

	return g
}

func (r *renderer) spacing(cur lexer.Token) string {
	prev := r.prev

	switch {
	case cur.IsComment(), prev.IsComment():
		return " "
	case r.unary:
		return ""
	case cur.IsPunct(";"):
		return ""
	case cur.IsPunct(","):
		return space(r.cfg.CommaSpacing == style.Around)
	case prev.IsPunct(","):
		return space(r.cfg.CommaSpacing != style.None)
	case cur.IsPunct("."), prev.IsPunct("."), cur.IsOperator("::"), prev.IsOperator("::"):
		return ""
	case prev.IsPunct("("):
		return space(!cur.IsPunct(")") && r.cfg.BracketSpacing != style.None)
	case cur.IsPunct(")"):
		return space(r.cfg.BracketSpacing != style.None)
	case cur.IsPunct("("):
		if r.isCall() {
			return space(r.cfg.BracketSpacing == style.Around)
		}
		return " "
	case cur.IsPunct("["), cur.IsPunct("]"), prev.IsPunct("["):
		return ""
	case prev.IsPunct(":"), prev.IsPunct("@"), prev.IsPunct("$"), prev.IsPunct("#"):
		return ""
	case isComparison(cur):
		return space(r.cfg.EqualSpacing == style.Around)
	case isComparison(prev):
		return space(r.cfg.EqualSpacing != style.None)
	default:
		return " "
	}
}

// isCall reports whether a "(" placed now opens an argument list.
func (r *renderer) isCall() bool {
	p := r.sig
	if p.Kind != lexer.Identifier && (p.Kind != lexer.Keyword || !r.dialect.IsFunction(p.Text)) {
		return false
	}

	// column lists: INSERT INTO t (a), CREATE TABLE t (a INT), WITH x (a) AS
	return !r.sig2.IsKeyword("INTO", "TABLE", "VIEW", "EXISTS", "WITH", "RECURSIVE")
}

// unaryAfter reports whether a sign following p is a unary operator.
func (r *renderer) unaryAfter(p lexer.Token) bool {
	switch {
	case p.Kind == 0, p.Kind == lexer.Operator:
		return true
	case p.IsPunct("("), p.IsPunct(","), p.IsPunct("["):
		return true
	case p.Kind == lexer.Keyword:
		return !p.IsKeyword("END", "NULL", "TRUE", "FALSE") && !r.dialect.IsFunction(p.Text)
	default:
		return false
	}
}

// separable reports whether a and b printed without a space still lex as the
// same two tokens, so that "- -1" never becomes a comment.
func (r *renderer) separable(a, b string) bool {
	if a == "" || isBoundary(a) || isBoundary(b) {
		return true
	}

	key := a + "\x00" + b
	if ok, seen := r.seps[key]; seen {
		return ok
	}

	tokens, _ := lexer.Tokenize(a+b, r.dialect)
	ok := len(tokens) == 2 && tokens[0].Text == a && tokens[1].Text == b
	r.seps[key] = ok

	return ok
}

func isBoundary(s string) bool {
	switch s {
	case "(", ")", ",", ";":
		return true
	default:
		return false
	}
}

func isComparison(tok lexer.Token) bool {
	return tok.IsOperator("=", "<", ">", "<=", ">=", "<>", "!=", ":=")
}

func space(on bool) string {
	if on {
		return " "
	}

	return ""
}

func width(s string) int {
	return runewidth.StringWidth(s)
}
