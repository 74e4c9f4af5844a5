/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/netio/epoll.go
*/

// Package netio implements the single-threaded, readiness-driven
// connection loop: one OS thread, one epoll instance, no per-connection
// goroutine and no locking. golang.org/x/sys/unix's raw epoll syscalls
// are used directly rather than Go's net package, since net.Listener and
// net.Conn already run their own internal netpoller that would fight a
// second, hand-rolled epoll loop over the same file descriptors.
package netio

import "golang.org/x/sys/unix"

// Epoll wraps one epoll file descriptor. It is not safe for concurrent
// use from multiple goroutines; only the single event loop goroutine
// ever touches it.
type Epoll struct {
	fd int
}

// NewEpoll creates a fresh epoll instance.
func NewEpoll() (*Epoll, error) {
	fd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, err
	}
	return &Epoll{fd: fd}, nil
}

// Add registers fd for the given event mask (e.g. unix.EPOLLIN).
func (e *Epoll) Add(fd int, events uint32) error {
	return unix.EpollCtl(e.fd, unix.EPOLL_CTL_ADD, fd, &unix.EpollEvent{
		Fd:     int32(fd),
		Events: events,
	})
}

// Modify updates fd's registered event mask, used when a connection goes
// from wanting only EPOLLIN to also wanting EPOLLOUT because its output
// queue couldn't be flushed in one write.
func (e *Epoll) Modify(fd int, events uint32) error {
	return unix.EpollCtl(e.fd, unix.EPOLL_CTL_MOD, fd, &unix.EpollEvent{
		Fd:     int32(fd),
		Events: events,
	})
}

// Remove deregisters fd. Safe to call on an fd that's already closed, in
// which case the caller should ignore the error (the kernel auto-removes
// a closed fd from every epoll set it belonged to).
func (e *Epoll) Remove(fd int) error {
	return unix.EpollCtl(e.fd, unix.EPOLL_CTL_DEL, fd, nil)
}

// Wait blocks until at least one registered fd is ready, the timeout
// elapses (timeoutMs<0 blocks forever), or a signal interrupts the call.
func (e *Epoll) Wait(events []unix.EpollEvent, timeoutMs int) (int, error) {
	return unix.EpollWait(e.fd, events, timeoutMs)
}

// Close releases the epoll fd.
func (e *Epoll) Close() error { return unix.Close(e.fd) }
