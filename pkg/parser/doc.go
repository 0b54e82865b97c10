// Package parser groups a SQL token stream into a shallow tree of syntactic
// regions.
//
// The tree is just deep enough for layout decisions: statements, anchored
// clauses (SELECT, FROM, WHERE, GROUP BY, ...), bracketed expressions, CASE
// blocks and comma-separated lists. It is not an AST and the parser never
// rejects input. Dangling brackets and CASE blocks without END are closed at
// the end of the statement and reported as diagnostics.
//
// Every token, whitespace and comments included, ends up as a leaf of the tree
// and reading the leaves in order yields the original token sequence:
//
//	tokens, _ := lexer.Tokenize("SELECT a, b FROM (SELECT 1) x;", dialect.ANSI)
//	tree, diags := parser.Parse(tokens)
//
//	stmt := tree.Root.Children[0].(*parser.Node)
//	fmt.Println(stmt.Region)                    // STATEMENT
//	fmt.Println(tree.Root.Tokens().String())    // SELECT a, b FROM (SELECT 1) x;
//	fmt.Println(len(diags))                     // 0
//
// The structure for the statement above is:
//
//	STATEMENT
//	├── SELECT_LIST: SELECT, COMMA_LIST[LIST_ITEM(a), ",", LIST_ITEM(b)]
//	├── FROM_CLAUSE: FROM, COMMA_LIST[LIST_ITEM(BRACKETED_EXPR(subquery), x)]
//	└── ";"
package parser
