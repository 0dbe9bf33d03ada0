package port

import (
	"context"
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/bridge"
)

// Stream is an inbound and outbound port over a pair of byte streams.
type Stream struct {
	Requests

	dec    Decoder
	enc    Encoder
	codec  string
	logger *slog.Logger
}

// NewStream creates a Stream that reads requests from r and writes results to w.
func NewStream(r io.Reader, w io.Writer, codec Codec, logger *slog.Logger) *Stream {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Stream{
		dec:    codec.NewDecoder(r),
		enc:    codec.NewEncoder(w),
		codec:  codec.Name(),
		logger: logger,
	}
}

// Send writes res as a single frame. Write failures are logged and otherwise ignored.
func (s *Stream) Send(res bridge.Result) {
	if err := s.enc.Encode(res); err != nil {
		s.logger.Error("failed to write result", "err", err, "codec", s.codec)
	}
}

// Run reads requests until the input ends or ctx is cancelled, publishing each one before
// reading the next. It returns nil when the input ends cleanly.
func (s *Stream) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var req bridge.Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return errors.Wrapf(err, "failed to decode %s request", s.codec)
		}

		s.Publish(req)
	}
}
