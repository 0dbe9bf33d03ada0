package config

import "go.uber.org/fx"

// Module provides the Loader. The configuration itself is loaded once the command line has been
// parsed, since --dir and --config decide which file applies.
var Module = fx.Module("config", fx.Provide(NewLoader))
