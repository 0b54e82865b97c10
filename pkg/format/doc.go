// Package format lays out SQL text according to a style.Config.
//
// Formatting runs in three stages: the lexer splits the source into lossless
// tokens, the parser groups them into clause-level regions and the renderer
// re-derives all whitespace from the style. Only comments carry layout from the
// source: a comment that started its own line keeps doing so, a comment
// followed by a line break keeps it, and blank lines between statements are
// preserved (collapsed to one).
//
// Usage:
//
//	// Object-oriented API, validated once and safe for concurrent use
//	f, err := format.New(style.Defaults())
//	if err != nil {
//		return err
//	}
//
//	out, err := f.Format("select a,b from t")
//	// out.Text:
//	//
//	//	SELECT a
//	//	     , b FROM t
//
//	// Functional API
//	cfg := style.Defaults()
//	cfg.BreakBeforeKeyword = true
//	out, err = format.Format("select a from t where x=1", cfg)
//	// out.Text:
//	//
//	//	SELECT a
//	//	FROM t
//	//	WHERE x = 1
//
// Malformed SQL never fails: out.Diagnostics lists what was recovered from. The
// only error is ErrResourceExceeded, returned for input larger than
// MaxInputBytes or nested deeper than MaxNestingDepth.
package format
