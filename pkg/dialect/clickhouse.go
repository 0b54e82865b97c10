package dialect

func init() {
	Register(ClickHouse)
}

// ClickHouse is the ClickHouse dialect. Its many camel-cased functions are left
// as identifiers so their casing is never touched.
var ClickHouse = New("clickhouse").
	Extends(ANSI).
	Keywords(
		"ENGINE", "FINAL", "SAMPLE", "PREWHERE", "SETTINGS", "FORMAT", "ARRAY", "GLOBAL",
		"ASOF", "ILIKE", "TTL", "CLUSTER", "MATERIALIZED", "POPULATE", "DICTIONARY",
		"ATTACH", "DETACH", "OPTIMIZE",
	).
	Build()
