package port

import "github.com/pseudomuto/sqlfmt/pkg/bridge"

// Requests is an in-process inbound port.
type Requests struct {
	handlers []func(bridge.Request)
}

// NewRequests creates an empty Requests port.
func NewRequests() *Requests {
	return &Requests{}
}

// Subscribe registers fn to receive every request published from now on.
func (r *Requests) Subscribe(fn func(bridge.Request)) {
	r.handlers = append(r.handlers, fn)
}

// Publish delivers req to every subscriber before returning.
func (r *Requests) Publish(req bridge.Request) {
	for _, fn := range r.handlers {
		fn(req)
	}
}

// Mailbox is an in-process outbound port. Results queue up until drained.
type Mailbox struct {
	results []bridge.Result
}

// NewMailbox creates an empty Mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// Send queues a result.
func (m *Mailbox) Send(res bridge.Result) {
	m.results = append(m.results, res)
}

// Len returns the number of queued results.
func (m *Mailbox) Len() int {
	return len(m.results)
}

// Drain returns the queued results in delivery order and empties the mailbox.
func (m *Mailbox) Drain() []bridge.Result {
	out := m.results
	m.results = nil
	return out
}
