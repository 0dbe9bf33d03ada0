// Package port provides the channels that carry bridge requests and results.
//
// Requests and Mailbox are in-process: Requests delivers each published request to its
// subscribers synchronously and in subscription order, and Mailbox queues results until the UI
// loop drains them. Stream carries the same messages across a process boundary, one frame per
// message, using a Codec (msgpack or newline-delimited JSON).
package port
