package dialect

func init() {
	Register(ANSI)
}

// ANSI is the generic dialect every other dialect extends. It covers the
// reserved words of standard SQL that matter for layout.
var ANSI = New("ansi").
	Keywords(
		// query structure
		"SELECT", "FROM", "WHERE", "GROUP", "BY", "HAVING", "ORDER", "ASC", "DESC",
		"LIMIT", "OFFSET", "FETCH", "FIRST", "NEXT", "ROWS", "ROW", "ONLY", "TIES",
		"UNION", "INTERSECT", "EXCEPT", "ALL", "DISTINCT", "AS", "WITH", "RECURSIVE",
		"WINDOW", "OVER", "PARTITION", "RANGE", "UNBOUNDED", "PRECEDING", "FOLLOWING",
		"CURRENT", "FILTER", "WITHIN", "NULLS", "LAST", "LATERAL",

		// joins
		"JOIN", "INNER", "LEFT", "RIGHT", "FULL", "OUTER", "CROSS", "NATURAL", "ON",
		"USING",

		// predicates and expressions
		"AND", "OR", "NOT", "IN", "EXISTS", "BETWEEN", "LIKE", "IS", "NULL", "TRUE",
		"FALSE", "UNKNOWN", "ANY", "SOME", "ESCAPE", "COLLATE", "INTERVAL", "CASE",
		"WHEN", "THEN", "ELSE", "END",

		// DML
		"INSERT", "INTO", "VALUES", "UPDATE", "SET", "DELETE", "MERGE", "MATCHED",
		"RETURNING", "DEFAULT",

		// DDL
		"CREATE", "ALTER", "DROP", "TRUNCATE", "TABLE", "VIEW", "INDEX", "SEQUENCE",
		"SCHEMA", "DATABASE", "PRIMARY", "FOREIGN", "KEY", "REFERENCES", "UNIQUE",
		"CHECK", "CONSTRAINT", "COLUMN", "ADD", "RENAME", "TEMPORARY", "IF", "REPLACE",
		"CASCADE", "RESTRICT",

		// control
		"GRANT", "REVOKE", "TO", "COMMIT", "ROLLBACK", "SAVEPOINT", "BEGIN",
		"TRANSACTION", "FOR",

		// data types
		"CHARACTER", "VARYING", "INTEGER", "INT", "SMALLINT", "BIGINT", "FLOAT", "REAL",
		"DOUBLE", "PRECISION", "DATE", "TIME", "TIMESTAMP", "ZONE", "BOOLEAN", "BLOB",
		"CLOB",
	).
	Functions(
		"COUNT", "SUM", "AVG", "MIN", "MAX", "CAST", "COALESCE", "NULLIF", "EXTRACT",
		"SUBSTRING", "TRIM", "UPPER", "LOWER", "POSITION", "ROW_NUMBER", "RANK",
		"DENSE_RANK", "LEAD", "LAG", "FIRST_VALUE", "LAST_VALUE", "NTILE", "CHAR",
		"VARCHAR", "NCHAR", "DECIMAL", "NUMERIC",
	).
	Build()
