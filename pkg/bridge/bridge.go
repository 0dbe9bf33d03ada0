package bridge

import (
	"log/slog"

	"github.com/pkg/errors"
)

type (
	// Request asks for the source text to be formatted.
	Request struct {
		Source string `json:"source" msgpack:"source"`
	}

	// Result carries the formatted text back to the front end.
	Result struct {
		Formatted string `json:"formatted" msgpack:"formatted"`
	}

	// Formatter is the formatting capability. It returns either the formatted text or an error,
	// never both.
	Formatter interface {
		Format(source string) (string, error)
	}

	// FormatterFunc adapts a plain function to the Formatter interface.
	FormatterFunc func(source string) (string, error)

	// Inbound delivers requests to a single handler.
	Inbound interface {
		Subscribe(handler func(Request))
	}

	// Outbound accepts results for the front end.
	Outbound interface {
		Send(result Result)
	}

	// Params are the collaborators of a Bridge.
	Params struct {
		Inbound   Inbound
		Outbound  Outbound
		Formatter Formatter
		// Logger is the diagnostic sink. Defaults to a logger that discards everything.
		Logger *slog.Logger
	}

	// Bridge turns format requests into results.
	Bridge struct {
		out       Outbound
		formatter Formatter
		logger    *slog.Logger
	}
)

// Format calls fn.
func (fn FormatterFunc) Format(source string) (string, error) {
	return fn(source)
}

// New creates a Bridge and subscribes it to p.Inbound, when set.
func New(p Params) *Bridge {
	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	b := &Bridge{
		out:       p.Outbound,
		formatter: p.Formatter,
		logger:    logger,
	}

	if p.Inbound != nil {
		p.Inbound.Subscribe(func(req Request) { b.OnFormatRequested(req.Source) })
	}

	return b
}

// OnFormatRequested formats source and sends the result.
//
// When formatting fails the failure is logged as a warning and nothing is sent.
func (b *Bridge) OnFormatRequested(source string) {
	formatted, err := b.format(source)
	if err != nil {
		b.logger.Warn("failed to format SQL", "err", err, "bytes", len(source))
		return
	}

	b.out.Send(Result{Formatted: formatted})
}

func (b *Bridge) format(source string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = "", errors.Errorf("formatter panicked: %v", r)
		}
	}()

	return b.formatter.Format(source)
}
