package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/bridge"
	"github.com/pseudomuto/sqlfmt/pkg/diag"
	"github.com/pseudomuto/sqlfmt/pkg/port"
	"github.com/urfave/cli/v3"
)

// serveCmd creates a CLI command that runs the format bridge over standard input and output.
//
// Each request frame read from stdin ({"source": "..."}) produces at most one result frame
// ({"formatted": "..."}) on stdout. Requests that fail to format produce no frame at all and are
// recorded on the diagnostic sink (stderr unless log.file is configured). The command returns
// once stdin is closed.
//
// Examples:
//
//	# newline-delimited JSON (default)
//	echo '{"source":"select * from t"}' | sqlfmt serve
//
//	# msgpack frames
//	sqlfmt serve --codec msgpack
func serveCmd(s *Session, formatter bridge.Formatter) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Format requests read from stdin and write results to stdout",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "codec",
				Usage: "frame encoding: json or msgpack (defaults to serve.codec from the config)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := s.config()

			name := cfg.Serve.Codec
			if cmd.IsSet("codec") {
				name = cmd.String("codec")
			}

			codec, err := port.NewCodec(name)
			if err != nil {
				return err
			}

			logger, closer, err := diag.New(cfg.Log, cmd.Root().ErrWriter)
			if err != nil {
				return errors.Wrap(err, "failed to create logger")
			}
			defer func() { _ = closer.Close() }()

			stream := port.NewStream(cmd.Root().Reader, cmd.Root().Writer, codec, logger)
			bridge.New(bridge.Params{
				Inbound:   stream,
				Outbound:  stream,
				Formatter: formatter,
				Logger:    logger,
			})

			logger.Debug("serving format requests", "codec", codec.Name())
			return stream.Run(ctx)
		},
	}
}
