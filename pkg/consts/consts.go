package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the style file picked up from the working directory
	// when no --config flag is given
	DefaultConfigFile = "sqlstyle.yaml"

	// DefaultDialect is the dialect used when a style does not name one
	DefaultDialect = "oracle"

	// DefaultIndentSize is the number of spaces per indent level
	DefaultIndentSize = 4

	// DefaultAlignColumn is the alignment column used when position alignment
	// is enabled without an explicit column
	DefaultAlignColumn = 60

	// DefaultMaxInputBytes is the largest input the pipeline accepts (4 MiB)
	DefaultMaxInputBytes = 4 << 20

	// DefaultMaxNestingDepth is the deepest bracket/CASE nesting the pipeline
	// accepts
	DefaultMaxNestingDepth = 256

	// DefaultListenAddr is the address the HTTP service binds to
	DefaultListenAddr = ":8080"
)
