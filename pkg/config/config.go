package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlstyle/pkg/consts"
	"github.com/pseudomuto/sqlstyle/pkg/style"
	"gopkg.in/yaml.v3"
)

type (
	// Server holds the settings of the HTTP formatting service.
	Server struct {
		// Addr is the listen address, ":8080" by default
		Addr string `yaml:"addr,omitempty"`

		// CORSOrigins lists the origins browsers may call the service from.
		// An empty list allows any origin.
		CORSOrigins []string `yaml:"corsOrigins,omitempty"`
	}

	// Config is the content of a sqlstyle.yaml file. Style options sit at the top
	// level of the document, service settings under "server".
	Config struct {
		Style  style.Config `yaml:",inline"`
		Server Server       `yaml:"server"`
	}
)

// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	return &Config{
		Style:  style.Defaults(),
		Server: Server{Addr: consts.DefaultListenAddr},
	}
}

// LoadConfig parses a style configuration from the provided io.Reader.
//
// Options missing from the document keep their default values, so a file only
// needs to name what it changes. An empty document yields the defaults. The
// resulting style is validated.
//
// Example:
//
//	import (
//		"strings"
//		"github.com/pseudomuto/sqlstyle/pkg/config"
//	)
//
//	yamlData := `
//	dialect: postgres
//	case: lower
//	breakBeforeKeyword: true
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Dialect: %s\n", cfg.Style.Dialect)
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := Defaults()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal style config")
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = consts.DefaultListenAddr
	}

	if err := cfg.Style.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid style config")
	}

	return cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}
