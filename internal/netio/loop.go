/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/netio/loop.go
*/
package netio

import (
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"goredis-server/internal/resp"
)

// Dispatcher executes one fully-framed command against the keyspace and
// returns the RESP bytes to write back. It is implemented by the command
// package; netio only knows how to get bytes in and out.
type Dispatcher interface {
	Dispatch(connID string, tokens [][]byte) []byte
}

// connTracker is an optional extension a Dispatcher may implement to
// keep INFO's Clients/Stats sections (command.Server.ClientConnected/
// ClientDisconnected) accurate. Kept separate from Dispatcher so tests
// can supply a bare Dispatch-only stub.
type connTracker interface {
	ClientConnected()
	ClientDisconnected()
}

const maxEvents = 128

// Loop is the single-threaded, readiness-driven server: one epoll
// instance, one listening socket, and a map of live connections, all
// touched exclusively from the goroutine that calls Run. Connections are
// keyed by their bare file descriptor, the same value epoll hands back
// on each readiness event.
type Loop struct {
	epoll      *Epoll
	listenFd   int
	conns      map[int]*Connection
	pending    map[int]*Connection
	dispatcher Dispatcher
	log        *logrus.Entry

	// scratch is the single read buffer shared by every connection.
	// Safe to reuse because Accumulate copies out of it before the next
	// read lands.
	scratch [4096]byte
}

// NewLoop builds a loop around an already-listening socket fd.
func NewLoop(listenFd int, dispatcher Dispatcher, log *logrus.Entry) (*Loop, error) {
	ep, err := NewEpoll()
	if err != nil {
		return nil, err
	}
	if err := ep.Add(listenFd, unix.EPOLLIN); err != nil {
		ep.Close()
		return nil, err
	}
	return &Loop{
		epoll:      ep,
		listenFd:   listenFd,
		conns:      make(map[int]*Connection),
		pending:    make(map[int]*Connection),
		dispatcher: dispatcher,
		log:        log,
	}, nil
}

// Run blocks forever, servicing readiness events until stop is closed.
func (l *Loop) Run(stop <-chan struct{}) error {
	events := make([]unix.EpollEvent, maxEvents)
	for {
		select {
		case <-stop:
			return l.shutdown()
		default:
		}

		timeout := 1000
		if len(l.pending) > 0 {
			timeout = 0
		}
		n, err := l.epoll.Wait(events, timeout)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return err
		}
		for i := 0; i < n; i++ {
			fd := int(events[i].Fd)
			if fd == l.listenFd {
				l.acceptAll()
				continue
			}
			l.service(fd, events[i].Events)
		}
		l.servicePending()
	}
}

// servicePending gives every connection left with unprocessed pipelined
// input one additional frame per loop iteration, the same one-frame
// ration a freshly readable connection gets in service, so a pipelined
// backlog drains in round-robin turns rather than starving the other
// fds registered on this epoll instance.
func (l *Loop) servicePending() {
	for fd, conn := range l.pending {
		delete(l.pending, fd)
		if _, ok := l.conns[fd]; !ok {
			continue
		}
		l.drainFrames(conn)
		if conn.HasPendingOutput() {
			l.flushWrite(conn)
		}
	}
}

func (l *Loop) shutdown() error {
	for fd, c := range l.conns {
		l.closeConn(c)
		delete(l.conns, fd)
	}
	return l.epoll.Close()
}

// acceptAll drains the accept queue in a loop until AcceptOne reports
// EAGAIN, so every connection pending at this readiness pass is accepted
// in one go.
func (l *Loop) acceptAll() {
	for {
		fd, remote, err := AcceptOne(l.listenFd)
		if err != nil {
			if errors.Is(err, unix.EAGAIN) {
				return
			}
			l.log.WithError(err).Warn("accept failed")
			return
		}
		conn := NewConnection(fd, remote)
		if err := l.epoll.Add(fd, unix.EPOLLIN); err != nil {
			l.log.WithError(err).Warn("epoll add failed, dropping connection")
			unix.Close(fd)
			continue
		}
		l.conns[fd] = conn
		if t, ok := l.dispatcher.(connTracker); ok {
			t.ClientConnected()
		}
		l.log.WithFields(logrus.Fields{
			"conn": conn.ID.String(),
			"addr": remote,
		}).Info("client connected")
	}
}

// service handles one readiness notification for an established
// connection: draining the read side into a per-connection accumulator,
// decoding and dispatching at most one buffered frame to the command
// layer, and flushing whatever output is queued.
func (l *Loop) service(fd int, mask uint32) {
	conn, ok := l.conns[fd]
	if !ok {
		return
	}

	if mask&(unix.EPOLLHUP|unix.EPOLLERR) != 0 {
		l.dropConn(conn)
		return
	}

	if mask&unix.EPOLLIN != 0 {
		if !l.readAvailable(conn) {
			l.dropConn(conn)
			return
		}
		l.drainFrames(conn)
	}

	if mask&unix.EPOLLOUT != 0 || conn.HasPendingOutput() {
		l.flushWrite(conn)
	}

	if conn.State == StateClosing && !conn.HasPendingOutput() {
		l.dropConn(conn)
	}
}

// readAvailable reads until EAGAIN, EOF, or a read shorter than the
// scratch buffer, staging bytes through the loop's shared scratch buffer. Returns false if the peer closed the
// connection or a fatal read error occurred.
func (l *Loop) readAvailable(conn *Connection) bool {
	buf := l.scratch[:]
	for {
		n, err := unix.Read(conn.Fd, buf)
		if n > 0 {
			conn.Accumulate(buf[:n])
		}
		if err != nil {
			if errors.Is(err, unix.EAGAIN) {
				return true
			}
			return false
		}
		if n == 0 {
			return false
		}
		if n < len(buf) {
			return true
		}
	}
}

// drainFrames decodes and dispatches at most one complete frame from the
// connection's input accumulator per call: incomplete input stops and
// waits for more bytes; malformed input reports an error and clears the
// accumulator, discarding any unparsed trailing bytes. A connection that
// pipelined several commands in one read keeps the rest of its backlog
// buffered and is re-queued onto l.pending so the remaining frames are
// picked up one at a time on later loop iterations, rather than drained
// in a single call and starving every other fd on this epoll instance.
func (l *Loop) drainFrames(conn *Connection) {
	buf := conn.InputBuffer()
	if len(buf) == 0 {
		return
	}
	tokens, consumed, err := resp.DecodeFrame(buf)
	if err != nil {
		if errors.Is(err, resp.ErrIncomplete) {
			return
		}
		var malformed *resp.ErrMalformed
		if errors.As(err, &malformed) {
			conn.QueueWrite(resp.Encode(nil, resp.ErrUnknownCommand(malformed.Detail)))
			conn.inbuf = conn.inbuf[:0]
		}
		return
	}
	if len(tokens) > 0 {
		out := l.dispatcher.Dispatch(conn.ID.String(), tokens)
		conn.QueueWrite(out)
	}
	conn.Consume(consumed)
	if len(conn.InputBuffer()) > 0 {
		l.pending[conn.Fd] = conn
	}
}

func (l *Loop) flushWrite(conn *Connection) {
	for conn.HasPendingOutput() {
		n, err := unix.Write(conn.Fd, conn.PendingOutput())
		if n > 0 {
			conn.Wrote(n)
		}
		if err != nil {
			if errors.Is(err, unix.EAGAIN) {
				l.wantWrite(conn, true)
				return
			}
			l.dropConn(conn)
			return
		}
		if n == 0 {
			break
		}
	}
	l.wantWrite(conn, false)
}

func (l *Loop) wantWrite(conn *Connection, want bool) {
	if conn.writeInterest == want {
		return
	}
	conn.writeInterest = want
	events := uint32(unix.EPOLLIN)
	if want {
		events |= unix.EPOLLOUT
	}
	l.epoll.Modify(conn.Fd, events)
}

func (l *Loop) dropConn(conn *Connection) {
	l.closeConn(conn)
	delete(l.conns, conn.Fd)
	delete(l.pending, conn.Fd)
}

func (l *Loop) closeConn(conn *Connection) {
	l.epoll.Remove(conn.Fd)
	unix.Close(conn.Fd)
	conn.State = StateClosed
	if t, ok := l.dispatcher.(connTracker); ok {
		t.ClientDisconnected()
	}
	l.log.WithField("conn", conn.ID.String()).Info("client disconnected")
}
