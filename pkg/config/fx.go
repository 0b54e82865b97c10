package config

import "go.uber.org/fx"

// Module provides the *Loader commands use to read sqlstyle.yaml. The file is
// read per invocation because its path is a command line flag.
var Module = fx.Module("config", fx.Provide(NewLoader))
