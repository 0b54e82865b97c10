package lexer

import (
	"fmt"
	"strings"
)

// Kind classifies a Token.
type Kind int

const (
	Keyword Kind = iota + 1
	Identifier
	Operator
	Punctuation
	String
	Number
	LineComment
	BlockComment
	Whitespace
)

var kindNames = map[Kind]string{
	Keyword:      "KEYWORD",
	Identifier:   "IDENTIFIER",
	Operator:     "OPERATOR",
	Punctuation:  "PUNCTUATION",
	String:       "STRING_LITERAL",
	Number:       "NUMBER_LITERAL",
	LineComment:  "LINE_COMMENT",
	BlockComment: "BLOCK_COMMENT",
	Whitespace:   "WHITESPACE",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Position locates a token in the source. Line and Column are 1-based and
// Offset is a byte offset.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit. Text is the exact source substring.
type Token struct {
	Kind Kind
	Text string
	Pos  Position
}

// Upper returns the token text in upper case, used for keyword comparisons.
func (t Token) Upper() string {
	return strings.ToUpper(t.Text)
}

// IsSignificant reports whether the token is neither whitespace nor a comment.
func (t Token) IsSignificant() bool {
	return t.Kind != Whitespace && !t.IsComment()
}

// IsComment reports whether the token is a line or block comment.
func (t Token) IsComment() bool {
	return t.Kind == LineComment || t.Kind == BlockComment
}

// IsKeyword reports whether the token is a keyword matching any of words,
// ignoring case. With no words it only checks the kind.
func (t Token) IsKeyword(words ...string) bool {
	if t.Kind != Keyword {
		return false
	}

	if len(words) == 0 {
		return true
	}

	for _, w := range words {
		if strings.EqualFold(t.Text, w) {
			return true
		}
	}

	return false
}

// IsPunct reports whether the token is the given punctuation mark.
func (t Token) IsPunct(text string) bool {
	return t.Kind == Punctuation && t.Text == text
}

// IsOperator reports whether the token is an operator matching any of ops. With
// no ops it only checks the kind.
func (t Token) IsOperator(ops ...string) bool {
	if t.Kind != Operator {
		return false
	}

	if len(ops) == 0 {
		return true
	}

	for _, op := range ops {
		if t.Text == op {
			return true
		}
	}

	return false
}

// IsQuoted reports whether the token is a double-quoted or backtick-quoted
// identifier.
func (t Token) IsQuoted() bool {
	return t.Kind == Identifier && t.Text != "" && (t.Text[0] == '"' || t.Text[0] == '`')
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Text, t.Pos)
}

// Tokens is an ordered token sequence.
type Tokens []Token

// String concatenates every token's text. For the output of Tokenize this is
// the original source.
func (ts Tokens) String() string {
	var sb strings.Builder
	for _, t := range ts {
		sb.WriteString(t.Text)
	}

	return sb.String()
}

// Significant returns the tokens that are neither whitespace nor comments.
func (ts Tokens) Significant() Tokens {
	out := make(Tokens, 0, len(ts))
	for _, t := range ts {
		if t.IsSignificant() {
			out = append(out, t)
		}
	}

	return out
}
