package format

import (
	"io"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlstyle/pkg/diag"
	"github.com/pseudomuto/sqlstyle/pkg/dialect"
	"github.com/pseudomuto/sqlstyle/pkg/lexer"
	"github.com/pseudomuto/sqlstyle/pkg/parser"
	"github.com/pseudomuto/sqlstyle/pkg/style"
)

// ErrResourceExceeded is returned when the input is larger than the configured
// byte ceiling or nests deeper than the depth ceiling. No output is produced.
var ErrResourceExceeded = errors.New("resource limit exceeded")

type (
	// Formatter formats SQL with a validated style. It holds no mutable state
	// and may be shared between goroutines.
	Formatter struct {
		cfg     style.Config
		dialect *dialect.Dialect
	}

	// Output is the formatted text with the diagnostics collected on the way.
	Output struct {
		Text        string    `json:"formattedSql"`
		Diagnostics diag.List `json:"diagnostics"`
	}
)

// New validates cfg and returns a Formatter for it. Validation errors are
// *style.ValidationError values.
func New(cfg style.Config) (*Formatter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid style")
	}

	return &Formatter{cfg: cfg, dialect: cfg.Keywords()}, nil
}

// Config returns the style the formatter was built with.
func (f *Formatter) Config() style.Config {
	return f.cfg
}

// Format lays out source. It fails only with ErrResourceExceeded.
func (f *Formatter) Format(source string) (*Output, error) {
	if len(source) > f.cfg.MaxInputBytes {
		return nil, errors.Wrapf(ErrResourceExceeded, "input is %d bytes, limit is %d", len(source), f.cfg.MaxInputBytes)
	}

	tokens, lexDiags := lexer.Tokenize(source, f.dialect)
	tree, parseDiags := parser.Parse(tokens)
	if tree.Depth > f.cfg.MaxNestingDepth {
		return nil, errors.Wrapf(ErrResourceExceeded, "nesting depth %d exceeds limit %d", tree.Depth, f.cfg.MaxNestingDepth)
	}

	return &Output{
		Text:        Render(tree.Root, f.cfg),
		Diagnostics: diag.Merge(lexDiags, parseDiags),
	}, nil
}

// FormatReader reads r to the end and formats the result. Reading stops as soon
// as the byte ceiling is crossed.
func (f *Formatter) FormatReader(r io.Reader) (*Output, error) {
	limit := int64(f.cfg.MaxInputBytes)
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read SQL")
	}

	if int64(len(data)) > limit {
		return nil, errors.Wrapf(ErrResourceExceeded, "input exceeds %d bytes", limit)
	}

	return f.Format(string(data))
}

// Format is a convenience wrapper that builds a Formatter for a single call.
func Format(source string, cfg style.Config) (*Output, error) {
	f, err := New(cfg)
	if err != nil {
		return nil, err
	}

	return f.Format(source)
}
