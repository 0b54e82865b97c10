package style

import (
	"fmt"

	"github.com/pseudomuto/sqlstyle/pkg/consts"
	"github.com/pseudomuto/sqlstyle/pkg/dialect"
)

type (
	// AlignPosition makes the content after each clause head of a top-level
	// statement start at Column when it would otherwise start before it.
	AlignPosition struct {
		Enabled bool `yaml:"enabled" json:"enabled"`
		Column  int  `yaml:"column" json:"column"`
	}

	// Config holds every formatting option. The zero value is not valid; use
	// Defaults.
	Config struct {
		// Dialect names a registered dialect. It only decides the keyword set.
		Dialect string `yaml:"dialect" json:"dialect"`

		// Case applies to keywords, IdentifierCase to unquoted identifiers.
		Case           Case `yaml:"case" json:"case"`
		IdentifierCase Case `yaml:"identifierCase" json:"identifierCase"`

		IndentSize int `yaml:"indentSize" json:"indentSize"`

		BreakBeforeKeyword               bool `yaml:"breakBeforeKeyword" json:"breakBeforeKeyword"`
		BreakBeforeCase                  bool `yaml:"breakBeforeCase" json:"breakBeforeCase"`
		BreakBeforeComma                 bool `yaml:"breakBeforeComma" json:"breakBeforeComma"`
		BreakBeforeConcat                bool `yaml:"breakBeforeConcat" json:"breakBeforeConcat"`
		BreakBeforeBlockComment          bool `yaml:"breakBeforeBlockComment" json:"breakBeforeBlockComment"`
		BreakBeforeSelectBracket         bool `yaml:"breakBeforeSelectBracket" json:"breakBeforeSelectBracket"`
		BreakBeforeConditionBracket      bool `yaml:"breakBeforeConditionBracket" json:"breakBeforeConditionBracket"`
		BreakBeforeCloseConditionBracket bool `yaml:"breakBeforeCloseConditionBracket" json:"breakBeforeCloseConditionBracket"`
		BreakAfterComma                  bool `yaml:"breakAfterComma" json:"breakAfterComma"`
		BreakAfterConditionBracket       bool `yaml:"breakAfterConditionBracket" json:"breakAfterConditionBracket"`
		DoubleBreakBeforeUnion           bool `yaml:"doubleBreakBeforeUnion" json:"doubleBreakBeforeUnion"`
		BreakBeforeCaseAndOr             bool `yaml:"breakBeforeCaseAndOr" json:"breakBeforeCaseAndOr"`
		BreakBeforeAndOr                 bool `yaml:"breakBeforeAndOr" json:"breakBeforeAndOr"`

		EqualSpacing   Spacing `yaml:"equalSpacing" json:"equalSpacing"`
		BracketSpacing Spacing `yaml:"bracketSpacing" json:"bracketSpacing"`
		CommaSpacing   Spacing `yaml:"commaSpacing" json:"commaSpacing"`

		CaseThenIndent bool          `yaml:"caseThenIndent" json:"caseThenIndent"`
		AlignComma     bool          `yaml:"alignComma" json:"alignComma"`
		AlignPosition  AlignPosition `yaml:"alignPosition" json:"alignPosition"`

		// MaxInputBytes and MaxNestingDepth bound the work done per call.
		MaxInputBytes   int `yaml:"maxInputBytes" json:"maxInputBytes"`
		MaxNestingDepth int `yaml:"maxNestingDepth" json:"maxNestingDepth"`
	}

	// ValidationError reports an option that is out of range.
	ValidationError struct {
		Field  string
		Reason string
	}
)

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid style option %s: %s", e.Field, e.Reason)
}

// Defaults returns the house style: Oracle keywords in upper case, commas
// leading each broken list line, CASE branches on their own lines.
func Defaults() Config {
	return Config{
		Dialect:          consts.DefaultDialect,
		Case:             Upper,
		IdentifierCase:   Unchanged,
		IndentSize:       consts.DefaultIndentSize,
		BreakBeforeCase:  true,
		BreakBeforeComma: true,
		EqualSpacing:     Around,
		BracketSpacing:   None,
		CommaSpacing:     After,
		CaseThenIndent:   true,
		AlignPosition: AlignPosition{
			Enabled: false,
			Column:  consts.DefaultAlignColumn,
		},
		MaxInputBytes:   consts.DefaultMaxInputBytes,
		MaxNestingDepth: consts.DefaultMaxNestingDepth,
	}
}

// Validate returns a *ValidationError for the first invalid option.
func (c Config) Validate() error {
	if _, ok := dialect.Get(c.Dialect); !ok {
		return &ValidationError{Field: "dialect", Reason: fmt.Sprintf("unknown dialect %q", c.Dialect)}
	}

	cases := []struct {
		field string
		value Case
	}{
		{"case", c.Case},
		{"identifierCase", c.IdentifierCase},
	}
	for _, v := range cases {
		if !v.value.valid() {
			return &ValidationError{Field: v.field, Reason: fmt.Sprintf("%d is out of range", int(v.value))}
		}
	}

	spacings := []struct {
		field string
		value Spacing
	}{
		{"equalSpacing", c.EqualSpacing},
		{"bracketSpacing", c.BracketSpacing},
		{"commaSpacing", c.CommaSpacing},
	}
	for _, v := range spacings {
		if !v.value.valid() {
			return &ValidationError{Field: v.field, Reason: fmt.Sprintf("%d is out of range", int(v.value))}
		}
	}

	positive := []struct {
		field string
		value int
	}{
		{"indentSize", c.IndentSize},
		{"alignPosition.column", c.AlignPosition.Column},
		{"maxInputBytes", c.MaxInputBytes},
		{"maxNestingDepth", c.MaxNestingDepth},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return &ValidationError{Field: p.field, Reason: "must be greater than zero"}
		}
	}

	return nil
}

// Keywords returns the dialect table named by c.Dialect, falling back to ANSI
// for names that are not registered.
func (c Config) Keywords() *dialect.Dialect {
	if d, ok := dialect.Get(c.Dialect); ok {
		return d
	}

	return dialect.ANSI
}
