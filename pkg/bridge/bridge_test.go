package bridge_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/pkg/errors"
	. "github.com/pseudomuto/sqlfmt/pkg/bridge"
	"github.com/pseudomuto/sqlfmt/pkg/format"
	"github.com/stretchr/testify/require"
)

type (
	outbox struct{ results []Result }

	inbox struct{ handlers []func(Request) }

	diagnostics struct{ buf bytes.Buffer }
)

func (o *outbox) Send(r Result) { o.results = append(o.results, r) }

func (i *inbox) Subscribe(fn func(Request)) { i.handlers = append(i.handlers, fn) }

func (i *inbox) publish(source string) {
	for _, fn := range i.handlers {
		fn(Request{Source: source})
	}
}

func (d *diagnostics) logger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(&d.buf, nil))
}

func (d *diagnostics) records(t *testing.T) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(d.buf.String()), "\n") {
		if line == "" {
			continue
		}

		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}

	return out
}

func newBridge(formatter Formatter) (*inbox, *outbox, *diagnostics) {
	in, out, diag := &inbox{}, &outbox{}, &diagnostics{}
	New(Params{Inbound: in, Outbound: out, Formatter: formatter, Logger: diag.logger()})
	return in, out, diag
}

func TestBridge_WithSourceFormatter(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		results []Result
		records int
	}{
		{
			name:    "formats a simple query",
			source:  "select * from t",
			results: []Result{{Formatted: "SELECT\n  *\nFROM\n  t"}},
		},
		{
			name:    "empty input yields an empty result",
			source:  "",
			results: []Result{{Formatted: ""}},
		},
		{
			name:    "invalid input is dropped",
			source:  "select * from",
			records: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out, diag := newBridge(FormatterFunc(format.Source))

			in.publish(tt.source)

			require.Equal(t, tt.results, out.results)
			require.Len(t, diag.records(t), tt.records)
		})
	}
}

func TestBridge_SuccessSendsFormatterOutput(t *testing.T) {
	var calls []string
	in, out, diag := newBridge(FormatterFunc(func(source string) (string, error) {
		calls = append(calls, source)
		return strings.ToUpper(source), nil
	}))

	in.publish("abc")

	require.Equal(t, []string{"abc"}, calls)
	require.Equal(t, []Result{{Formatted: "ABC"}}, out.results)
	require.Empty(t, diag.records(t))
}

func TestBridge_FailureLogsOnceAndSendsNothing(t *testing.T) {
	in, out, diag := newBridge(FormatterFunc(func(string) (string, error) {
		return "", errors.New("unexpected token")
	}))

	in.publish("select * from")

	require.Empty(t, out.results)

	records := diag.records(t)
	require.Len(t, records, 1)
	require.Equal(t, "WARN", records[0]["level"])
	require.Equal(t, "failed to format SQL", records[0]["msg"])
	require.Equal(t, "unexpected token", records[0]["err"])
	require.EqualValues(t, len("select * from"), records[0]["bytes"])
}

func TestBridge_FormatErrorCarriesPosition(t *testing.T) {
	in, out, diag := newBridge(FormatterFunc(format.Source))

	in.publish("select * from")

	require.Empty(t, out.results)

	records := diag.records(t)
	require.Len(t, records, 1)

	errAttr, ok := records[0]["err"].(map[string]any)
	require.True(t, ok, "expected the error to be logged as a group: %v", records[0]["err"])
	require.Contains(t, errAttr, "msg")
	require.Contains(t, errAttr, "line")
	require.Contains(t, errAttr, "column")
}

func TestBridge_PanickingFormatterIsTreatedAsFailure(t *testing.T) {
	in, out, diag := newBridge(FormatterFunc(func(string) (string, error) {
		panic("boom")
	}))

	require.NotPanics(t, func() { in.publish("select 1") })
	require.Empty(t, out.results)
	require.Len(t, diag.records(t), 1)
}

func TestBridge_PreservesOrder(t *testing.T) {
	in, out, diag := newBridge(FormatterFunc(func(source string) (string, error) {
		if strings.HasPrefix(source, "bad") {
			return "", errors.New("bad input")
		}
		return "<" + source + ">", nil
	}))

	for _, source := range []string{"a", "bad1", "b", "c", "bad2", "d"} {
		in.publish(source)
	}

	require.Equal(t, []Result{
		{Formatted: "<a>"},
		{Formatted: "<b>"},
		{Formatted: "<c>"},
		{Formatted: "<d>"},
	}, out.results)
	require.Len(t, diag.records(t), 2)
}

func TestBridge_IsStateless(t *testing.T) {
	in, out, _ := newBridge(FormatterFunc(format.Source))

	in.publish("select a from t")
	in.publish("select * from")
	in.publish("select a from t")

	require.Len(t, out.results, 2)
	require.Equal(t, out.results[0], out.results[1])
}

func TestBridge_OnFormatRequestedWithoutInbound(t *testing.T) {
	out := &outbox{}
	b := New(Params{Outbound: out, Formatter: FormatterFunc(format.Source)})

	b.OnFormatRequested("select 1")
	b.OnFormatRequested("select")

	require.Equal(t, []Result{{Formatted: "SELECT\n  1"}}, out.results)
}
