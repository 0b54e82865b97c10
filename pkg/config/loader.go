package config

import (
	"os"

	"github.com/pseudomuto/sqlstyle/pkg/consts"
)

// Loader finds the configuration for a command invocation.
type Loader struct {
	// DefaultPath is read when no path is given. Unlike an explicit path it may
	// be missing.
	DefaultPath string
}

// NewLoader returns a Loader looking for sqlstyle.yaml in the working
// directory.
func NewLoader() *Loader {
	return &Loader{DefaultPath: consts.DefaultConfigFile}
}

// Load reads the file at path. With an empty path it reads DefaultPath when it
// exists and returns Defaults otherwise.
func (l *Loader) Load(path string) (*Config, error) {
	if path != "" {
		return LoadConfigFile(path)
	}

	if _, err := os.Stat(l.DefaultPath); os.IsNotExist(err) {
		return Defaults(), nil
	}

	return LoadConfigFile(l.DefaultPath)
}
