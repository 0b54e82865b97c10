package parser_test

import (
	"strings"
	"testing"

	"github.com/pseudomuto/sqlstyle/pkg/diag"
	"github.com/pseudomuto/sqlstyle/pkg/dialect"
	"github.com/pseudomuto/sqlstyle/pkg/lexer"
	. "github.com/pseudomuto/sqlstyle/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestParseShape(t *testing.T) {
	tests := []struct {
		name  string
		sql   string
		shape string
	}{
		{
			name:  "select list and from",
			sql:   "SELECT a, b FROM t;",
			shape: "SCRIPT(STATEMENT(SELECT_LIST(SELECT COMMA_LIST(LIST_ITEM(a) , LIST_ITEM(b))) FROM_CLAUSE(FROM COMMA_LIST(LIST_ITEM(t))) ;))",
		},
		{
			name:  "where and order by",
			sql:   "SELECT a FROM t WHERE a = 1 ORDER BY a DESC",
			shape: "SCRIPT(STATEMENT(SELECT_LIST(SELECT COMMA_LIST(LIST_ITEM(a))) FROM_CLAUSE(FROM COMMA_LIST(LIST_ITEM(t))) WHERE_CLAUSE(WHERE a = 1) ORDER_BY_CLAUSE(ORDER BY COMMA_LIST(LIST_ITEM(a DESC)))))",
		},
		{
			name:  "group by and having",
			sql:   "SELECT a FROM t GROUP BY a, b HAVING COUNT(*) > 1",
			shape: "SCRIPT(STATEMENT(SELECT_LIST(SELECT COMMA_LIST(LIST_ITEM(a))) FROM_CLAUSE(FROM COMMA_LIST(LIST_ITEM(t))) GROUP_BY_CLAUSE(GROUP BY COMMA_LIST(LIST_ITEM(a) , LIST_ITEM(b))) HAVING_CLAUSE(HAVING COUNT BRACKETED_EXPR(( COMMA_LIST(LIST_ITEM(*)) )) > 1)))",
		},
		{
			name:  "distinct stays in the head",
			sql:   "SELECT DISTINCT a FROM t",
			shape: "SCRIPT(STATEMENT(SELECT_LIST(SELECT DISTINCT COMMA_LIST(LIST_ITEM(a))) FROM_CLAUSE(FROM COMMA_LIST(LIST_ITEM(t)))))",
		},
		{
			name:  "set operator",
			sql:   "SELECT 1 UNION ALL SELECT 2",
			shape: "SCRIPT(STATEMENT(SELECT_LIST(SELECT COMMA_LIST(LIST_ITEM(1))) SET_OPERATOR(UNION ALL) SELECT_LIST(SELECT COMMA_LIST(LIST_ITEM(2)))))",
		},
		{
			name:  "case block",
			sql:   "SELECT CASE WHEN a THEN 1 ELSE 0 END x",
			shape: "SCRIPT(STATEMENT(SELECT_LIST(SELECT COMMA_LIST(LIST_ITEM(CASE_BLOCK(CASE WHEN a THEN 1 ELSE 0 END) x)))))",
		},
		{
			name:  "is distinct from is not a clause",
			sql:   "SELECT a FROM t WHERE a IS DISTINCT FROM b",
			shape: "SCRIPT(STATEMENT(SELECT_LIST(SELECT COMMA_LIST(LIST_ITEM(a))) FROM_CLAUSE(FROM COMMA_LIST(LIST_ITEM(t))) WHERE_CLAUSE(WHERE a IS DISTINCT FROM b)))",
		},
		{
			name:  "order without by is a word",
			sql:   "SELECT order FROM t",
			shape: "SCRIPT(STATEMENT(SELECT_LIST(SELECT COMMA_LIST(LIST_ITEM(order))) FROM_CLAUSE(FROM COMMA_LIST(LIST_ITEM(t)))))",
		},
		{
			name:  "from inside a function call",
			sql:   "SELECT EXTRACT(YEAR FROM d)",
			shape: "SCRIPT(STATEMENT(SELECT_LIST(SELECT COMMA_LIST(LIST_ITEM(EXTRACT BRACKETED_EXPR(( COMMA_LIST(LIST_ITEM(YEAR FROM d)) )))))))",
		},
		{
			name:  "with clause",
			sql:   "WITH x AS (SELECT 1) SELECT * FROM x",
			shape: "SCRIPT(STATEMENT(WITH_CLAUSE(WITH COMMA_LIST(LIST_ITEM(x AS BRACKETED_EXPR*(( SELECT_LIST(SELECT COMMA_LIST(LIST_ITEM(1))) ))))) SELECT_LIST(SELECT COMMA_LIST(LIST_ITEM(*))) FROM_CLAUSE(FROM COMMA_LIST(LIST_ITEM(x)))))",
		},
		{
			name:  "statement prefix",
			sql:   "CREATE VIEW v AS SELECT a FROM t",
			shape: "SCRIPT(STATEMENT(GENERIC(CREATE VIEW v AS) SELECT_LIST(SELECT COMMA_LIST(LIST_ITEM(a))) FROM_CLAUSE(FROM COMMA_LIST(LIST_ITEM(t)))))",
		},
		{
			name:  "comments between statements",
			sql:   "-- one\nSELECT 1; SELECT 2;",
			shape: "SCRIPT(-- one STATEMENT(SELECT_LIST(SELECT COMMA_LIST(LIST_ITEM(1))) ;) STATEMENT(SELECT_LIST(SELECT COMMA_LIST(LIST_ITEM(2))) ;))",
		},
		{
			name:  "bare semicolon",
			sql:   ";",
			shape: "SCRIPT(STATEMENT(;))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, diags := parse(t, tt.sql)
			require.Empty(t, diags)
			require.Equal(t, tt.shape, shape(tree.Root))
		})
	}
}

func TestParseSubquery(t *testing.T) {
	tree, _ := parse(t, "SELECT * FROM (SELECT 1) x WHERE a IN (1, 2)")

	var brackets []*Node
	walk(tree.Root, func(n *Node) {
		if n.Region == BracketedExpr {
			brackets = append(brackets, n)
		}
	})

	require.Len(t, brackets, 2)
	require.True(t, brackets[0].Subquery)
	require.False(t, brackets[1].Subquery)
}

func TestParseRecovery(t *testing.T) {
	tests := []struct {
		name   string
		sql    string
		kind   diag.Kind
		line   int
		column int
	}{
		{name: "unclosed bracket", sql: "SELECT a FROM (b", kind: diag.UnmatchedOpenBracket, line: 1, column: 15},
		{name: "unmatched close", sql: "SELECT a)", kind: diag.UnmatchedCloseBracket, line: 1, column: 9},
		{name: "case without end", sql: "SELECT\n  CASE WHEN a THEN 1 FROM t", kind: diag.MissingEnd, line: 2, column: 3},
		{name: "statement end closes bracket", sql: "SELECT (a; SELECT 1", kind: diag.UnmatchedOpenBracket, line: 1, column: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, diags := parse(t, tt.sql)
			require.Len(t, diags, 1)
			require.Equal(t, tt.kind, diags[0].Kind)
			require.Equal(t, tt.line, diags[0].Line)
			require.Equal(t, tt.column, diags[0].Column)

			// recovery never drops tokens
			require.Equal(t, tt.sql, tree.Root.Tokens().String())
		})
	}
}

func TestParseCaseRecoveryKeepsClauses(t *testing.T) {
	tree, _ := parse(t, "SELECT CASE WHEN a THEN 1 FROM t")
	stmt := tree.Root.Nodes()[0]

	regions := make([]Region, 0)
	for _, n := range stmt.Nodes() {
		regions = append(regions, n.Region)
	}

	require.Equal(t, []Region{SelectList, FromClause}, regions)
}

func TestParseLeavesAreTokens(t *testing.T) {
	inputs := []string{
		"",
		"   \n\t",
		"SELECT a, b FROM t",
		"select /* c */ a -- trailing\nfrom t where x = 'it''s';",
		"SELECT ((a) FROM t)) WHERE CASE WHEN",
		"INSERT INTO t (a, b) VALUES (1, 2); UPDATE t SET a = 1 WHERE b = 2",
	}

	for _, in := range inputs {
		tokens, _ := lexer.Tokenize(in, dialect.ANSI)
		tree, _ := Parse(tokens)

		leaves := tree.Root.Leaves()
		require.Len(t, leaves, len(tokens), in)
		for i, l := range leaves {
			require.Equal(t, i, l.Index)
			require.Equal(t, tokens[i], l.Token)
		}
	}
}

func TestParseDepth(t *testing.T) {
	tests := []struct {
		sql   string
		depth int
	}{
		{sql: "SELECT a", depth: 0},
		{sql: "SELECT ((((1))))", depth: 4},
		{sql: "SELECT (CASE WHEN (a) THEN 1 END)", depth: 3},
		{sql: "SELECT (a), (b), (c)", depth: 1},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			tree, _ := parse(t, tt.sql)
			require.Equal(t, tt.depth, tree.Depth)
		})
	}
}

func TestNodeFirstLast(t *testing.T) {
	tree, _ := parse(t, "  SELECT a FROM t -- done\n")
	stmt := tree.Root.Nodes()[0]

	first, ok := stmt.First()
	require.True(t, ok)
	require.Equal(t, "SELECT", first.Token.Text)

	last, ok := stmt.Last()
	require.True(t, ok)
	require.Equal(t, "t", last.Token.Text)

	_, ok = (&Node{Region: Generic}).First()
	require.False(t, ok)
}

func TestClauseHead(t *testing.T) {
	tests := map[string]int{
		"SELECT a":            1,
		"SELECT DISTINCT a":   3,
		"GROUP BY a":          3,
		"UNION ALL":           3,
		"ORDER SIBLINGS BY a": 5,
	}

	for sql, head := range tests {
		t.Run(sql, func(t *testing.T) {
			tree, _ := parse(t, sql)
			clause := tree.Root.Nodes()[0].Nodes()[0]
			require.True(t, clause.Region.IsClause())
			require.Equal(t, head, clause.Head)
		})
	}
}

func TestRegionString(t *testing.T) {
	require.Equal(t, "SELECT_LIST", SelectList.String())
	require.Equal(t, "Region(99)", Region(99).String())
	require.True(t, WhereClause.IsClause())
	require.False(t, CommaList.IsClause())
}

func parse(t *testing.T, sql string) (*Tree, diag.List) {
	t.Helper()

	tokens, lexDiags := lexer.Tokenize(sql, dialect.ANSI)
	require.Empty(t, lexDiags)

	return Parse(tokens)
}

// shape renders regions and significant leaves. Subquery brackets are marked
// with an asterisk.
func shape(n *Node) string {
	parts := make([]string, 0, len(n.Children))
	for _, child := range n.Children {
		switch c := child.(type) {
		case *Node:
			parts = append(parts, shape(c))
		case Leaf:
			if c.Token.Kind != lexer.Whitespace {
				parts = append(parts, strings.TrimSpace(c.Token.Text))
			}
		}
	}

	name := n.Region.String()
	if n.Subquery {
		name += "*"
	}

	return name + "(" + strings.Join(parts, " ") + ")"
}

func walk(n *Node, fn func(*Node)) {
	fn(n)
	for _, c := range n.Nodes() {
		walk(c, fn)
	}
}
