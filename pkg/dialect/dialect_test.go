package dialect_test

import (
	"slices"
	"testing"

	. "github.com/pseudomuto/sqlstyle/pkg/dialect"
	"github.com/stretchr/testify/require"
)

func TestBuiltins(t *testing.T) {
	require.Equal(t, []string{"ansi", "clickhouse", "mysql", "oracle", "postgres"}, builtinNames())

	for _, name := range []string{"oracle", "ORACLE", " Oracle "} {
		d, ok := Get(name)
		require.True(t, ok, name)
		require.Same(t, Oracle, d)
	}

	_, ok := Get("sqlite")
	require.False(t, ok)
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		dialect  *Dialect
		word     string
		keyword  bool
		function bool
	}{
		{dialect: ANSI, word: "select", keyword: true},
		{dialect: ANSI, word: "count", keyword: true, function: true},
		{dialect: ANSI, word: "nvl"},
		{dialect: Oracle, word: "NVL", keyword: true, function: true},
		{dialect: Oracle, word: "minus", keyword: true},
		{dialect: Oracle, word: "select", keyword: true},
		{dialect: Postgres, word: "ilike", keyword: true},
		{dialect: MySQL, word: "ifnull", keyword: true, function: true},
		{dialect: ClickHouse, word: "prewhere", keyword: true},
		{dialect: ClickHouse, word: "minus"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect.Name()+"/"+tt.word, func(t *testing.T) {
			require.Equal(t, tt.keyword, tt.dialect.IsKeyword(tt.word))
			require.Equal(t, tt.function, tt.dialect.IsFunction(tt.word))
		})
	}
}

func TestCustomDialect(t *testing.T) {
	d := New("Snowflake").
		Extends(ANSI).
		Keywords("qualify").
		Functions("iff").
		Build()

	require.True(t, d.IsKeyword("QUALIFY"))
	require.True(t, d.IsKeyword("IFF"))
	require.True(t, d.IsFunction("Iff"))
	require.True(t, d.IsKeyword("SELECT"))
	require.False(t, ANSI.IsKeyword("QUALIFY"))

	Register(d)
	got, ok := Get("snowflake")
	require.True(t, ok)
	require.Same(t, d, got)
	require.Contains(t, Names(), "Snowflake")
}

// builtinNames filters out dialects registered by other tests.
func builtinNames() []string {
	builtin := []string{"ansi", "clickhouse", "mysql", "oracle", "postgres"}

	var names []string
	for _, n := range Names() {
		if slices.Contains(builtin, n) {
			names = append(names, n)
		}
	}

	return names
}
