package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		NewSession,
		fx.Annotate(editCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(fmtCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(serveCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(versionCmd, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
