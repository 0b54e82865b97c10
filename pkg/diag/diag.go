// Package diag defines the non-fatal diagnostics reported while tokenizing and
// parsing SQL.
//
// A diagnostic never stops formatting. The lexer and the parser record one
// whenever they recover from malformed input (an unterminated string, a
// dangling bracket, a CASE without END) and the pipeline returns them next to
// the best-effort output.
package diag

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
)

// Kind identifies the irregularity a Diagnostic describes.
type Kind int

const (
	UnterminatedString Kind = iota + 1
	UnterminatedQuotedIdentifier
	UnterminatedComment
	UnmatchedOpenBracket
	UnmatchedCloseBracket
	MissingEnd
)

var kindNames = map[Kind]string{
	UnterminatedString:           "unterminated-string",
	UnterminatedQuotedIdentifier: "unterminated-quoted-identifier",
	UnterminatedComment:          "unterminated-comment",
	UnmatchedOpenBracket:         "unmatched-open-bracket",
	UnmatchedCloseBracket:        "unmatched-close-bracket",
	MissingEnd:                   "missing-end",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText renders the kind by name so JSON consumers see "missing-end"
// rather than a number.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText is the inverse of MarshalText. Unknown names are rejected.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}

	return errors.Errorf("unknown diagnostic kind %q", text)
}

// Diagnostic is a note about a structural irregularity and where it starts.
// Line and Column are 1-based, Offset is a byte offset into the source.
type Diagnostic struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Offset  int    `json:"offset"`
}

// String renders the diagnostic as "line:col: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s", d.Line, d.Column, d.Message)
}

// List is an ordered collection of diagnostics.
type List []Diagnostic

// Merge concatenates the given lists and orders the result by source offset.
// Diagnostics at the same offset keep their relative order.
func Merge(lists ...List) List {
	var out List
	for _, l := range lists {
		out = append(out, l...)
	}

	slices.SortStableFunc(out, func(a, b Diagnostic) int {
		return a.Offset - b.Offset
	})

	return out
}

// Strings renders every diagnostic with String.
func (l List) Strings() []string {
	out := make([]string, 0, len(l))
	for _, d := range l {
		out = append(out, d.String())
	}

	return out
}
