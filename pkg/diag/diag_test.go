package diag_test

import (
	"encoding/json"
	"testing"

	. "github.com/pseudomuto/sqlstyle/pkg/diag"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	lexed := List{
		{Kind: UnterminatedString, Message: "b", Offset: 20},
	}
	parsed := List{
		{Kind: UnmatchedOpenBracket, Message: "a", Offset: 3},
		{Kind: MissingEnd, Message: "c", Offset: 20},
	}

	merged := Merge(lexed, parsed)
	require.Equal(t, []string{"a", "b", "c"}, []string{merged[0].Message, merged[1].Message, merged[2].Message})

	require.Nil(t, Merge(nil, List{}))
}

func TestListStrings(t *testing.T) {
	l := List{
		{Kind: UnmatchedOpenBracket, Message: "unclosed bracket", Line: 1, Column: 15},
		{Kind: MissingEnd, Message: "CASE without matching END", Line: 3, Column: 2},
	}

	require.Equal(t, []string{"1:15: unclosed bracket", "3:2: CASE without matching END"}, l.Strings())
	require.Empty(t, List(nil).Strings())
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Kind: MissingEnd, Message: "CASE without matching END", Line: 2, Column: 7}
	require.Equal(t, "2:7: CASE without matching END", d.String())
	require.Equal(t, "missing-end", MissingEnd.String())
	require.Equal(t, "kind(42)", Kind(42).String())
}

func TestDiagnosticJSON(t *testing.T) {
	data, err := json.Marshal(Diagnostic{Kind: UnterminatedComment, Message: "m", Line: 1, Column: 2, Offset: 1})
	require.NoError(t, err)
	require.JSONEq(t, `{"kind": "unterminated-comment", "message": "m", "line": 1, "column": 2, "offset": 1}`, string(data))
}

func TestListJSONRoundTrip(t *testing.T) {
	l := List{
		{Kind: UnmatchedOpenBracket, Message: "unclosed bracket", Line: 1, Column: 15, Offset: 14},
		{Kind: MissingEnd, Message: "CASE without matching END", Line: 3, Column: 2, Offset: 40},
	}

	data, err := json.Marshal(l)
	require.NoError(t, err)

	var got List
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, l, got)

	var k Kind
	require.Error(t, json.Unmarshal([]byte(`"sideways"`), &k))
}
