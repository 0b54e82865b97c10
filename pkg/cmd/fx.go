package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		func() *Settings { return &Settings{} },
		fx.Annotate(dialectsCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(fmtCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(serveCmd, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
