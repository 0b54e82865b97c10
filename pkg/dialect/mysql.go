package dialect

func init() {
	Register(MySQL)
}

// MySQL is the MySQL/MariaDB dialect.
var MySQL = New("mysql").
	Extends(ANSI).
	Keywords(
		"AUTO_INCREMENT", "ENGINE", "SHOW", "DESCRIBE", "EXPLAIN", "STRAIGHT_JOIN",
		"REGEXP", "RLIKE", "DUPLICATE", "IGNORE", "DIV", "MOD", "XOR", "TINYINT",
		"MEDIUMINT", "TEXT", "DATETIME", "ENUM", "UNSIGNED",
	).
	Functions(
		"IFNULL", "IF", "CONCAT", "GROUP_CONCAT", "DATE_FORMAT", "NOW", "LEFT", "RIGHT",
		"REPLACE",
	).
	Build()
