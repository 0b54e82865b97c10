package parser

import (
	"slices"

	"github.com/pseudomuto/sqlstyle/pkg/diag"
	"github.com/pseudomuto/sqlstyle/pkg/lexer"
)

type (
	// clauseRule describes a keyword that opens a clause.
	clauseRule struct {
		region Region
		// list clauses hold a comma separated list after their head
		list bool
		// lead words may follow the anchor as part of the clause head
		lead []string
		// next, when set, must be the following significant word for the
		// anchor to open a clause (GROUP BY, START WITH)
		next []string
	}

	frame struct {
		node   *Node
		opener lexer.Token
		rule   *clauseRule
		inHead bool
	}

	state struct {
		tokens lexer.Tokens
		pos    int
		stack  []*frame
		diags  diag.List
		depth  int
		max    int
		prev   lexer.Token
	}
)

var anchors = map[string]*clauseRule{
	"SELECT":    {region: SelectList, list: true, lead: []string{"DISTINCT", "ALL", "UNIQUE"}},
	"FROM":      {region: FromClause, list: true},
	"WHERE":     {region: WhereClause},
	"PREWHERE":  {region: WhereClause},
	"GROUP":     {region: GroupByClause, list: true, lead: []string{"BY"}, next: []string{"BY"}},
	"HAVING":    {region: HavingClause},
	"ORDER":     {region: OrderByClause, list: true, lead: []string{"SIBLINGS", "BY"}, next: []string{"BY", "SIBLINGS"}},
	"UNION":     {region: SetOperator, lead: []string{"ALL", "DISTINCT"}},
	"INTERSECT": {region: SetOperator, lead: []string{"ALL", "DISTINCT"}},
	"EXCEPT":    {region: SetOperator, lead: []string{"ALL", "DISTINCT"}},
	"MINUS":     {region: SetOperator, lead: []string{"ALL"}},
	"WITH":      {region: WithClause, list: true, lead: []string{"RECURSIVE"}},
	"LIMIT":     {region: Clause},
	"OFFSET":    {region: Clause},
	"FETCH":     {region: Clause},
	"VALUES":    {region: Clause, list: true},
	"SET":       {region: Clause, list: true},
	"RETURNING": {region: Clause, list: true},
	"WINDOW":    {region: Clause, list: true},
	"CONNECT":   {region: Clause, lead: []string{"BY"}, next: []string{"BY"}},
	"START":     {region: Clause, lead: []string{"WITH"}, next: []string{"WITH"}},
	"QUALIFY":   {region: Clause},
	"INSERT":    {region: Clause},
	"UPDATE":    {region: Clause},
	"DELETE":    {region: Clause},
	"MERGE":     {region: Clause},
}

// Parse groups tokens into a tree rooted at a Script node. It never fails;
// irregular structure is closed at the end of its statement and reported in the
// returned diagnostics.
func Parse(tokens lexer.Tokens) (*Tree, diag.List) {
	root := &Node{Region: Script}
	s := &state{
		tokens: tokens,
		stack:  []*frame{{node: root}},
	}

	for ; s.pos < len(tokens); s.pos++ {
		tok := tokens[s.pos]
		if !tok.IsSignificant() {
			s.leaf()
			continue
		}

		if tok.IsPunct(";") {
			s.endStatement()
			continue
		}

		if len(s.stack) == 1 {
			s.push(Statement, nil, tok)
		}

		s.significant(tok)
		s.prev = tok
	}

	if len(s.stack) > 1 {
		s.unwind(1)
		s.pop()
	}

	return &Tree{Root: root, Depth: s.max}, s.diags
}

func (s *state) significant(tok lexer.Token) {
	if f := s.top(); f.inHead && f.rule != nil && slices.Contains(f.rule.lead, tok.Upper()) {
		s.leaf()
		f.node.Head = len(f.node.Children)
		return
	}

	switch {
	case tok.IsPunct("("):
		s.openBracket(tok)
	case tok.IsPunct(")"):
		s.closeBracket(tok)
	case tok.IsPunct(","):
		s.comma()
	case tok.IsKeyword("CASE"):
		s.ensureItem()
		s.push(CaseBlock, nil, tok)
		s.leaf()
	case tok.IsKeyword("END"):
		s.closeCase()
	default:
		if rule := s.anchor(tok); rule != nil {
			s.unwind(s.container())
			n := s.push(rule.region, rule, tok)
			s.leaf()
			n.Head = 1
			return
		}

		s.ensureItem()
		s.leaf()
	}
}

// anchor returns the clause tok opens at this point, if any.
func (s *state) anchor(tok lexer.Token) *clauseRule {
	if !tok.IsKeyword() {
		return nil
	}

	rule, ok := anchors[tok.Upper()]
	if !ok {
		return nil
	}

	c := s.stack[s.container()].node
	if c.Region == BracketedExpr && !c.Subquery {
		return nil
	}

	if len(rule.next) > 0 {
		next, ok := s.peek()
		if !ok || !slices.Contains(rule.next, next.Upper()) {
			return nil
		}
	}

	switch tok.Upper() {
	case "FROM":
		// IS [NOT] DISTINCT FROM
		if s.prev.IsKeyword("DISTINCT") {
			return nil
		}
	case "WITH":
		if hasClause(c) && !s.prev.IsKeyword("AS") {
			return nil
		}
	case "INSERT", "UPDATE", "DELETE", "MERGE":
		if hasClause(c) {
			return nil
		}
	case "SET":
		if s.prev.IsKeyword("CHARACTER", "CHARSET") {
			return nil
		}
	}

	return rule
}

func (s *state) openBracket(tok lexer.Token) {
	s.ensureItem()
	n := s.push(BracketedExpr, nil, tok)
	if next, ok := s.peek(); ok {
		n.Subquery = next.IsKeyword("SELECT", "WITH")
	}
	s.leaf()
}

func (s *state) closeBracket(tok lexer.Token) {
	i := s.innermost(BracketedExpr)
	if i < 0 {
		s.report(diag.UnmatchedCloseBracket, "unmatched closing bracket", tok)
		s.ensureItem()
		s.leaf()
		return
	}

	s.unwind(i)
	s.leaf()
	s.pop()
}

func (s *state) closeCase() {
	i := s.innermost(CaseBlock)
	if i < 0 {
		s.ensureItem()
		s.leaf()
		return
	}

	s.unwind(i)
	s.leaf()
	s.pop()
}

func (s *state) comma() {
	if s.top().node.Region != CommaList {
		s.ensureItem()
		if s.top().node.Region == ListItem {
			s.pop()
		}
	}

	s.leaf()
}

func (s *state) endStatement() {
	if len(s.stack) == 1 {
		s.push(Statement, nil, s.tokens[s.pos])
	}

	s.unwind(1)
	s.leaf()
	s.pop()
	s.prev = lexer.Token{}
}

// ensureItem opens the region the next significant token belongs to.
func (s *state) ensureItem() {
	f := s.top()
	f.inHead = false

	switch {
	case f.node.Region == Statement, f.node.Region == BracketedExpr && f.node.Subquery:
		s.push(Generic, nil, s.tokens[s.pos])
	case f.node.Region == BracketedExpr, f.rule != nil && f.rule.list:
		s.push(CommaList, nil, s.tokens[s.pos])
		s.push(ListItem, nil, s.tokens[s.pos])
	case f.node.Region == CommaList:
		s.push(ListItem, nil, s.tokens[s.pos])
	}
}

func (s *state) push(region Region, rule *clauseRule, opener lexer.Token) *Node {
	n := &Node{Region: region}
	parent := s.top().node
	parent.Children = append(parent.Children, n)
	s.stack = append(s.stack, &frame{node: n, opener: opener, rule: rule, inHead: rule != nil})

	if region == BracketedExpr || region == CaseBlock {
		s.depth++
		s.max = max(s.max, s.depth)
	}

	return n
}

func (s *state) pop() {
	f := s.top()
	s.stack = s.stack[:len(s.stack)-1]

	if f.node.Region == BracketedExpr || f.node.Region == CaseBlock {
		s.depth--
	}
}

// unwind pops every frame above index to, reporting the ones left unclosed.
func (s *state) unwind(to int) {
	for len(s.stack)-1 > to {
		f := s.top()
		switch f.node.Region {
		case BracketedExpr:
			s.report(diag.UnmatchedOpenBracket, "unclosed bracket", f.opener)
		case CaseBlock:
			s.report(diag.MissingEnd, "CASE without matching END", f.opener)
		}
		s.pop()
	}
}

func (s *state) leaf() {
	n := s.top().node
	n.Children = append(n.Children, Leaf{Index: s.pos, Token: s.tokens[s.pos]})
}

func (s *state) top() *frame {
	return s.stack[len(s.stack)-1]
}

// container returns the index of the innermost statement or bracket frame.
func (s *state) container() int {
	for i := len(s.stack) - 1; i > 0; i-- {
		switch s.stack[i].node.Region {
		case Statement, BracketedExpr:
			return i
		}
	}

	return 0
}

// innermost returns the index of the closest open frame of the given region
// within the current statement, or -1.
func (s *state) innermost(region Region) int {
	for i := len(s.stack) - 1; i > 0; i-- {
		r := s.stack[i].node.Region
		if r == region {
			return i
		}
		if r == Statement {
			break
		}
	}

	return -1
}

// peek returns the next significant token after the current one.
func (s *state) peek() (lexer.Token, bool) {
	for _, t := range s.tokens[s.pos+1:] {
		if t.IsSignificant() {
			return t, true
		}
	}

	return lexer.Token{}, false
}

func (s *state) report(kind diag.Kind, msg string, at lexer.Token) {
	s.diags = append(s.diags, diag.Diagnostic{
		Kind:    kind,
		Message: msg,
		Line:    at.Pos.Line,
		Column:  at.Pos.Column,
		Offset:  at.Pos.Offset,
	})
}

func hasClause(n *Node) bool {
	for _, c := range n.Nodes() {
		if c.Region.IsClause() {
			return true
		}
	}

	return false
}
