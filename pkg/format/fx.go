package format

import (
	"github.com/pseudomuto/sqlfmt/pkg/bridge"
	"go.uber.org/fx"
)

// Module provides the formatting capability consumed by the bridge.
var Module = fx.Module("format", fx.Provide(
	func() bridge.Formatter { return bridge.FormatterFunc(Source) },
))
