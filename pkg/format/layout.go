package format

import (
	"bytes"
	"strings"

	"github.com/pseudomuto/sqlstyle/pkg/lexer"
	"github.com/pseudomuto/sqlstyle/pkg/parser"
	"github.com/pseudomuto/sqlstyle/pkg/style"
)

var joinWords = []string{"NATURAL", "LEFT", "RIGHT", "FULL", "INNER", "CROSS", "OUTER"}

func (r *renderer) script(root *parser.Node) {
	var s scope
	for _, el := range root.Children {
		switch e := el.(type) {
		case parser.Leaf:
			if e.Token.IsComment() && r.newlines >= 2 {
				r.blank(0)
			}
			r.leaf(e.Token, s)
		case *parser.Node:
			r.startStatement()
			r.clauses(e.Children, scope{indent: r.cfg.IndentSize, top: true})
		}
	}
}

// startStatement puts every statement on its own line, keeping one blank line
// where the source had any.
func (r *renderer) startStatement() {
	switch {
	case len(r.buf) == 0:
	case r.newlines >= 2:
		r.blank(0)
	default:
		r.newline(0)
	}

	r.sig, r.sig2 = lexer.Token{}, lexer.Token{}
	r.unary, r.between = false, false
}

// clauses lays out the body of a statement or subquery.
func (r *renderer) clauses(children []parser.Element, s scope) {
	n := 0
	for _, el := range children {
		switch e := el.(type) {
		case parser.Leaf:
			r.leaf(e.Token, s)
		case *parser.Node:
			if !e.Region.IsClause() {
				g := s
				g.cont = newColumn()
				r.node(e, g)
				continue
			}

			if e.Region == parser.SetOperator && n > 0 && r.cfg.DoubleBreakBeforeUnion {
				r.blank(s.base)
			}
			r.clause(e, s, n > 0 && r.cfg.BreakBeforeKeyword)
			n++
		}
	}
}

func (r *renderer) clause(n *parser.Node, s scope, brk bool) {
	for i, el := range n.Children[:n.Head] {
		tok := el.(parser.Leaf).Token
		if i == 0 {
			r.put(tok, s, brk || r.pending, s.base)
			continue
		}
		r.leaf(tok, s)
	}

	body := n.Children[n.Head:]
	content := newColumn()
	inner := s
	inner.cont = content
	inner.indent = s.base + r.cfg.IndentSize
	inner.clause = true
	inner.cond = nil
	if isCondition(n) {
		inner.cond = content
		inner.caseAndOr = false
	}

	if s.top && r.cfg.AlignPosition.Enabled && hasContent(body) {
		r.alignTo = r.cfg.AlignPosition.Column
	}
	if n.Region == parser.SetOperator && (r.cfg.DoubleBreakBeforeUnion || r.cfg.BreakBeforeKeyword) {
		r.breakNext(s.base)
	}

	r.seq(body, inner)
}

func (r *renderer) node(n *parser.Node, s scope) {
	switch n.Region {
	case parser.CaseBlock:
		r.caseBlock(n, s)
	case parser.BracketedExpr:
		r.bracket(n, s)
	case parser.CommaList:
		r.list(n, s, s.clause)
	default:
		r.seq(n.Children, s)
	}
}

// seq lays out a run of leaves and nodes, breaking before join phrases and
// logical connectives where the style asks for it.
func (r *renderer) seq(children []parser.Element, s scope) {
	for i, el := range children {
		switch e := el.(type) {
		case *parser.Node:
			r.node(e, s)
		case parser.Leaf:
			tok := e.Token
			switch {
			case !tok.IsSignificant():
				r.trivia(tok, s)
			case s.clause && r.joinStart(children, i):
				s.cond = nil
				r.put(tok, s, r.cfg.BreakBeforeKeyword, s.base)
			case s.clause && tok.IsKeyword("ON"):
				r.put(tok, s, false, 0)
				s.cond = newColumn()
				s.caseAndOr = false
			default:
				r.inline(tok, s)
			}
		}
	}
}

func (r *renderer) leaf(tok lexer.Token, s scope) {
	if !tok.IsSignificant() {
		r.trivia(tok, s)
		return
	}

	r.inline(tok, s)
}

// inline places a significant token that has no break of its own, except for
// logical AND/OR and concatenation.
func (r *renderer) inline(tok lexer.Token, s scope) {
	logical := tok.IsKeyword("AND", "OR")
	if logical && tok.IsKeyword("AND") && r.between {
		r.between = false
		logical = false
	}

	breakAndOr := r.cfg.BreakBeforeAndOr
	if s.caseAndOr {
		breakAndOr = r.cfg.BreakBeforeCaseAndOr
	}

	switch {
	case logical && breakAndOr && s.cond != nil && s.cond.at >= 0:
		// right-align the connective so the condition text lines up
		r.put(tok, s, true, max(s.cond.at-width(r.text(tok))-1, 0))
	case tok.IsOperator("||") && r.cfg.BreakBeforeConcat:
		r.put(tok, s, true, s.contAt())
	default:
		r.put(tok, s, false, 0)
	}
}

// trivia handles whitespace and comments. Whitespace is only counted.
func (r *renderer) trivia(tok lexer.Token, s scope) {
	if tok.Kind == lexer.Whitespace {
		n := strings.Count(tok.Text, "\n")
		r.newlines += n
		if n > 0 && r.comment {
			r.breakNext(-1)
		}
		return
	}

	// a comment on its own line lands where a pending break would put it
	col := s.contAt()
	if r.pending && r.pendingCol >= 0 {
		col = r.pendingCol
	}

	own := r.newlines > 0 || (tok.Kind == lexer.BlockComment && r.cfg.BreakBeforeBlockComment)
	r.put(tok, s, own && len(r.buf) > 0, col)
	if tok.Kind == lexer.LineComment {
		r.breakNext(-1)
	}
}

// list lays out a COMMA_LIST. Clause-level lists honour the comma break and
// alias alignment options; lists inside brackets stay on one line.
func (r *renderer) list(n *parser.Node, s scope, level bool) {
	before := level && r.cfg.BreakBeforeComma
	after := level && r.cfg.BreakAfterComma && !before

	first := newColumn()
	item := s
	item.cont = first

	var aliases map[*parser.Node]int
	aliasWidth := -1
	if level && r.cfg.AlignComma && (before || after) {
		aliases, aliasWidth = r.measureAliases(n, item)
	}

	afterComma := false
	for _, el := range n.Children {
		switch e := el.(type) {
		case *parser.Node:
			if afterComma && after && first.at >= 0 {
				r.breakNext(first.at)
			}
			afterComma = false

			split, ok := aliases[e]
			if !ok {
				r.node(e, item)
				continue
			}

			r.seq(e.Children[:split], item)
			r.alignTo = first.at + aliasWidth + 1
			r.seq(e.Children[split:], item)
		case parser.Leaf:
			tok := e.Token
			if !tok.IsPunct(",") {
				r.leaf(tok, item)
				continue
			}

			if before && first.at >= 0 {
				r.put(tok, item, true, r.hang(first.at))
			} else {
				r.put(tok, item, false, 0)
			}
			afterComma = true
		}
	}
}

// hang is the column of a leading comma whose item starts at col.
func (r *renderer) hang(col int) int {
	col--
	if r.cfg.CommaSpacing != style.None {
		col--
	}

	return max(col, 0)
}

// measureAliases finds the items of a broken list whose alias should be padded
// and the widest expression among them. Items whose expression spans lines
// are left alone.
func (r *renderer) measureAliases(n *parser.Node, s scope) (map[*parser.Node]int, int) {
	aliases := make(map[*parser.Node]int)
	widest := 0

	for _, item := range n.Nodes() {
		split := aliasIndex(item)
		if split < 0 {
			continue
		}

		m := r.scratch()
		ms := s
		ms.cont, ms.cond = newColumn(), nil
		m.seq(item.Children[:split], ms)
		m.trim()
		if bytes.IndexByte(m.buf, '\n') >= 0 {
			continue
		}

		aliases[item] = split
		widest = max(widest, width(string(m.buf)))
	}

	return aliases, widest
}

// aliasIndex returns the index of the child where an item's alias starts
// ("AS x" or a bare trailing identifier), or -1.
func aliasIndex(item *parser.Node) int {
	var sig []int
	for i, el := range item.Children {
		switch e := el.(type) {
		case *parser.Node:
			sig = append(sig, i)
		case parser.Leaf:
			if e.Token.IsSignificant() {
				sig = append(sig, i)
			}
		}
	}

	if len(sig) < 2 {
		return -1
	}

	last, ok := item.Children[sig[len(sig)-1]].(parser.Leaf)
	if !ok || last.Token.Kind != lexer.Identifier {
		return -1
	}

	before := item.Children[sig[len(sig)-2]]
	l, ok := before.(parser.Leaf)
	if !ok {
		return sig[len(sig)-1]
	}

	switch {
	case l.Token.IsKeyword("AS"):
		if len(sig) < 3 {
			return -1
		}
		return sig[len(sig)-2]
	case l.Token.Kind == lexer.Identifier, l.Token.Kind == lexer.Number, l.Token.Kind == lexer.String:
		return sig[len(sig)-1]
	default:
		return -1
	}
}

func (r *renderer) caseBlock(n *parser.Node, s scope) {
	caseCol, whenCol := -1, -1
	inner := s
	inner.clause = false
	inner.cond = nil
	inner.cont = newColumn()

	for _, el := range n.Children {
		switch e := el.(type) {
		case *parser.Node:
			r.node(e, inner)
		case parser.Leaf:
			tok := e.Token
			switch {
			case !tok.IsSignificant():
				r.trivia(tok, inner)
			case caseCol < 0:
				r.put(tok, s, false, 0)
				caseCol = r.start
				inner.indent = caseCol + r.cfg.IndentSize
			case tok.IsKeyword("WHEN"):
				r.put(tok, inner, r.cfg.BreakBeforeCase, caseCol+r.cfg.IndentSize)
				whenCol = r.start
				inner.cond = newColumn()
				inner.cont = inner.cond
				inner.caseAndOr = true
			case tok.IsKeyword("THEN"):
				at := whenCol
				if at < 0 {
					at = caseCol
				}
				r.put(tok, inner, r.cfg.CaseThenIndent, at+r.cfg.IndentSize)
				inner.cond, inner.cont = nil, newColumn()
			case tok.IsKeyword("ELSE"):
				r.put(tok, inner, r.cfg.BreakBeforeCase, caseCol+r.cfg.IndentSize)
				inner.cond, inner.cont = nil, newColumn()
			case tok.IsKeyword("END"):
				r.put(tok, inner, r.cfg.BreakBeforeCase, caseCol)
			default:
				r.inline(tok, inner)
			}
		}
	}
}

func (r *renderer) bracket(n *parser.Node, s scope) {
	open := n.Children[0].(parser.Leaf).Token
	body := n.Children[1:]

	var closing *lexer.Token
	if k := len(body); k > 0 {
		if l, ok := body[k-1].(parser.Leaf); ok && l.Token.IsPunct(")") {
			closing = &l.Token
			body = body[:k-1]
		}
	}

	switch {
	case n.Subquery:
		r.put(open, s, r.cfg.BreakBeforeSelectBracket, s.contAt())
		base := r.col
		if r.cfg.BracketSpacing != style.None {
			base++
		}
		r.clauses(body, scope{base: base, indent: base + r.cfg.IndentSize})
		if closing != nil {
			r.put(*closing, s, false, 0)
		}
	case r.conditionBracket(s):
		r.put(open, s, r.cfg.BreakBeforeConditionBracket, s.contAt())
		openCol := r.start
		inner := s
		inner.clause = false
		inner.cond = newColumn()
		inner.cont = inner.cond
		inner.indent = openCol + r.cfg.IndentSize
		if r.cfg.BreakAfterConditionBracket {
			r.breakNext(openCol + r.cfg.IndentSize)
		}
		r.seq(body, inner)
		if closing != nil {
			r.put(*closing, inner, r.cfg.BreakBeforeCloseConditionBracket, openCol)
		}
	default:
		r.put(open, s, false, 0)
		inner := s
		inner.clause = false
		inner.cond = nil
		inner.cont = newColumn()
		inner.indent = r.col
		r.seq(body, inner)
		if closing != nil {
			r.put(*closing, inner, false, 0)
		}
	}
}

// conditionBracket reports whether a "(" placed now groups part of a
// condition, as opposed to a call, an IN list or a subquery.
func (r *renderer) conditionBracket(s scope) bool {
	if s.cond == nil {
		return false
	}

	return r.sig.IsKeyword("AND", "OR", "NOT", "WHERE", "HAVING", "ON", "WHEN") || r.sig.IsPunct("(")
}

// joinStart reports whether children[i] starts a join phrase such as
// LEFT OUTER JOIN.
func (r *renderer) joinStart(children []parser.Element, i int) bool {
	tok := children[i].(parser.Leaf).Token
	if !tok.IsKeyword("JOIN") && !tok.IsKeyword(joinWords...) {
		return false
	}
	if r.sig.IsKeyword(joinWords...) {
		return false
	}

	for _, el := range children[i:] {
		l, ok := el.(parser.Leaf)
		if !ok {
			return false
		}

		switch t := l.Token; {
		case !t.IsSignificant():
		case t.IsKeyword("JOIN"):
			return true
		case t.IsKeyword(joinWords...):
		default:
			return false
		}
	}

	return false
}

func isCondition(n *parser.Node) bool {
	switch n.Region {
	case parser.WhereClause, parser.HavingClause:
		return true
	case parser.Clause:
		l, ok := n.Children[0].(parser.Leaf)
		return ok && l.Token.IsKeyword("CONNECT", "START", "QUALIFY")
	default:
		return false
	}
}

func hasContent(children []parser.Element) bool {
	for _, el := range children {
		switch e := el.(type) {
		case *parser.Node:
			if _, ok := e.First(); ok {
				return true
			}
		case parser.Leaf:
			if e.Token.IsSignificant() {
				return true
			}
		}
	}

	return false
}
