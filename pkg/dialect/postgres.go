package dialect

func init() {
	Register(Postgres)
}

// Postgres is the PostgreSQL dialect.
var Postgres = New("postgres").
	Extends(ANSI).
	Keywords(
		"ILIKE", "SIMILAR", "ANALYZE", "VERBOSE", "CONFLICT", "DO", "NOTHING",
		"SERIAL", "BIGSERIAL", "TEXT", "JSON", "JSONB", "UUID", "BYTEA", "ARRAY",
		"MATERIALIZED", "CONCURRENTLY", "ISNULL", "NOTNULL",
	).
	Functions(
		"NOW", "STRING_AGG", "ARRAY_AGG", "DATE_TRUNC", "TO_CHAR", "TO_DATE",
		"GENERATE_SERIES", "JSONB_BUILD_OBJECT", "JSON_BUILD_OBJECT", "REPLACE",
	).
	Build()
