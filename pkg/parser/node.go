package parser

import (
	"fmt"

	"github.com/pseudomuto/sqlstyle/pkg/lexer"
)

// Region is the syntactic role of a Node.
type Region int

const (
	Script Region = iota + 1
	Statement
	SelectList
	FromClause
	WhereClause
	GroupByClause
	HavingClause
	OrderByClause
	SetOperator
	WithClause
	Clause
	CaseBlock
	BracketedExpr
	CommaList
	ListItem
	Generic
)

var regionNames = map[Region]string{
	Script:        "SCRIPT",
	Statement:     "STATEMENT",
	SelectList:    "SELECT_LIST",
	FromClause:    "FROM_CLAUSE",
	WhereClause:   "WHERE_CLAUSE",
	GroupByClause: "GROUP_BY_CLAUSE",
	HavingClause:  "HAVING_CLAUSE",
	OrderByClause: "ORDER_BY_CLAUSE",
	SetOperator:   "SET_OPERATOR",
	WithClause:    "WITH_CLAUSE",
	Clause:        "CLAUSE",
	CaseBlock:     "CASE_BLOCK",
	BracketedExpr: "BRACKETED_EXPR",
	CommaList:     "COMMA_LIST",
	ListItem:      "LIST_ITEM",
	Generic:       "GENERIC",
}

func (r Region) String() string {
	if name, ok := regionNames[r]; ok {
		return name
	}

	return fmt.Sprintf("Region(%d)", int(r))
}

// IsClause reports whether the region is an anchored clause of a statement.
func (r Region) IsClause() bool {
	switch r {
	case SelectList, FromClause, WhereClause, GroupByClause, HavingClause,
		OrderByClause, SetOperator, WithClause, Clause:
		return true
	default:
		return false
	}
}

type (
	// Element is a child of a Node: either a nested *Node or a Leaf.
	Element interface {
		element()
	}

	// Node is a syntactic region. Subquery is only meaningful for
	// BracketedExpr and is set when the bracket holds a SELECT or WITH query.
	// Head is the number of leading children that form a clause head (the
	// anchor and its modifiers, e.g. GROUP BY or SELECT DISTINCT).
	Node struct {
		Region   Region
		Children []Element
		Subquery bool
		Head     int
	}

	// Leaf is a token together with its index in the token sequence.
	Leaf struct {
		Index int
		Token lexer.Token
	}

	// Tree is the result of Parse. Depth is the deepest nesting of brackets
	// and CASE blocks seen while parsing.
	Tree struct {
		Root  *Node
		Depth int
	}
)

func (*Node) element() {}
func (Leaf) element()  {}

// Leaves returns every leaf under n in source order.
func (n *Node) Leaves() []Leaf {
	var out []Leaf
	n.collect(&out)
	return out
}

func (n *Node) collect(out *[]Leaf) {
	for _, child := range n.Children {
		switch c := child.(type) {
		case *Node:
			c.collect(out)
		case Leaf:
			*out = append(*out, c)
		}
	}
}

// Tokens returns the tokens of every leaf under n in source order.
func (n *Node) Tokens() lexer.Tokens {
	leaves := n.Leaves()
	out := make(lexer.Tokens, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, l.Token)
	}

	return out
}

// First returns the first significant leaf under n.
func (n *Node) First() (Leaf, bool) {
	for _, child := range n.Children {
		switch c := child.(type) {
		case *Node:
			if l, ok := c.First(); ok {
				return l, true
			}
		case Leaf:
			if c.Token.IsSignificant() {
				return c, true
			}
		}
	}

	return Leaf{}, false
}

// Last returns the last significant leaf under n.
func (n *Node) Last() (Leaf, bool) {
	for i := len(n.Children) - 1; i >= 0; i-- {
		switch c := n.Children[i].(type) {
		case *Node:
			if l, ok := c.Last(); ok {
				return l, true
			}
		case Leaf:
			if c.Token.IsSignificant() {
				return c, true
			}
		}
	}

	return Leaf{}, false
}

// Nodes returns the direct children of n that are nodes.
func (n *Node) Nodes() []*Node {
	var out []*Node
	for _, child := range n.Children {
		if c, ok := child.(*Node); ok {
			out = append(out, c)
		}
	}

	return out
}
