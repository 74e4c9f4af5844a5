/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/netio/connection.go
*/
package netio

import "github.com/rs/xid"

// ConnState tracks where a connection sits in its lifecycle: a
// connection accepts reads and queues writes while Open and is marked
// Closed when the loop closes it. The loop drops a Closing connection
// once its output is flushed, but no code path in this package moves a
// connection into Closing: peer close and I/O errors drop it directly,
// and a parse error leaves it Open.
type ConnState int

const (
	StateOpen ConnState = iota
	StateClosing
	StateClosed
)

// Connection holds one client socket's readiness-loop-owned state: its
// raw fd, an xid correlation ID used in log fields, the
// accumulated-but-not-yet-parsed input bytes, and the
// queued-but-not-yet-written output bytes. None of this is
// mutex-guarded: the single event-loop goroutine is the only reader or
// writer.
type Connection struct {
	ID         xid.ID
	Fd         int
	RemoteAddr string
	State      ConnState

	inbuf  []byte
	outbuf []byte

	// writeInterest records whether this fd is currently registered for
	// EPOLLOUT, so the loop only pays for the extra wakeups while there's
	// actually buffered output to drain.
	writeInterest bool
}

// NewConnection wraps an accepted fd in Open state with a fresh
// correlation ID.
func NewConnection(fd int, remoteAddr string) *Connection {
	return &Connection{
		ID:         xid.New(),
		Fd:         fd,
		RemoteAddr: remoteAddr,
		State:      StateOpen,
	}
}

// Accumulate appends freshly read bytes to the input buffer.
func (c *Connection) Accumulate(b []byte) {
	c.inbuf = append(c.inbuf, b...)
}

// InputBuffer exposes the accumulated, not-yet-consumed input bytes for
// frame decoding.
func (c *Connection) InputBuffer() []byte { return c.inbuf }

// Consume discards the first n bytes of the input buffer — called after
// a complete RESP frame has been decoded from it, so the next decode
// attempt starts at the following frame's boundary.
func (c *Connection) Consume(n int) {
	if n <= 0 {
		return
	}
	if n >= len(c.inbuf) {
		c.inbuf = c.inbuf[:0]
		return
	}
	c.inbuf = append(c.inbuf[:0], c.inbuf[n:]...)
}

// QueueWrite appends bytes to the pending output buffer.
func (c *Connection) QueueWrite(b []byte) {
	c.outbuf = append(c.outbuf, b...)
}

// HasPendingOutput reports whether there is buffered output still to
// write.
func (c *Connection) HasPendingOutput() bool { return len(c.outbuf) > 0 }

// PendingOutput returns the not-yet-written output bytes.
func (c *Connection) PendingOutput() []byte { return c.outbuf }

// Wrote discards the first n bytes of the output buffer after a partial
// or full write(2).
func (c *Connection) Wrote(n int) {
	if n <= 0 {
		return
	}
	if n >= len(c.outbuf) {
		c.outbuf = c.outbuf[:0]
		return
	}
	c.outbuf = append(c.outbuf[:0], c.outbuf[n:]...)
}
