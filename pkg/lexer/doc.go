// Package lexer turns SQL source text into an ordered, lossless sequence of
// typed tokens.
//
// The lexer never rejects input. Unterminated strings, quoted identifiers and
// block comments run to the end of the input and are reported as diagnostics,
// and any character no rule recognizes becomes a one-character punctuation
// token. Concatenating the text of every token, whitespace included, always
// reproduces the source byte for byte:
//
//	tokens, diags := lexer.Tokenize("select a -- note\nfrom t", dialect.ANSI)
//	fmt.Println(tokens.String() == "select a -- note\nfrom t") // true
//	fmt.Println(len(diags))                                    // 0
//
// Whether a word is a keyword depends on the dialect's keyword table. A word
// that directly follows a "." is always an identifier, so t.date keeps date as
// a column name even in dialects where DATE is reserved.
package lexer
