// Package style defines the closed set of options that drive every layout
// decision of the formatter.
//
// A Config is a plain value. Start from Defaults, change what you need and let
// format.New validate it:
//
//	cfg := style.Defaults()
//	cfg.Case = style.Lower
//	cfg.CommaSpacing = style.Around
//	cfg.AlignPosition = style.AlignPosition{Enabled: true, Column: 20}
//
//	f, err := format.New(cfg)
//
// The same options can be read from YAML (see the config package). Field names
// are camel-cased and enumerations accept either their names or the legacy
// spellings used by older formatter front-ends:
//
//	dialect: postgres
//	case: lower                 # or 1
//	equalSpacing: oneSpaceAroundEqual
//	commaSpacing: after
//	alignPosition:
//	  enabled: true
//	  column: 20
package style
