// Package bridge connects a UI front end to the SQL formatting capability.
//
// A front end publishes a Request carrying the current editor text. The bridge formats it and, on
// success, sends exactly one Result back. On failure it records a single diagnostic and sends
// nothing, so the editor content stays untouched and no error is shown to the user.
//
// The bridge holds no state between requests and does its work synchronously on the goroutine that
// delivers the request; results therefore come out in the order the requests went in.
//
// Example:
//
//	requests := port.NewRequests()
//	results := port.NewMailbox()
//
//	bridge.New(bridge.Params{
//		Inbound:   requests,
//		Outbound:  results,
//		Formatter: bridge.FormatterFunc(format.Source),
//		Logger:    slog.Default(),
//	})
//
//	requests.Publish(bridge.Request{Source: "select * from t"})
//	results.Drain() // [{Formatted: "SELECT\n  *\nFROM\n  t"}]
package bridge
