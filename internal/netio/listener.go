/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/netio/listener.go
*/
package netio

import (
	"fmt"
	"net"

	"golang.org/x/sys/unix"
)

const listenBacklog = 1024

// Listen opens a non-blocking IPv4 TCP listening socket bound to
// bindAddr:port, returning the raw file descriptor the event loop
// registers with epoll directly, rather than Go's blocking net.Listener.
func Listen(bindAddr string, port int) (int, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM|unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return -1, fmt.Errorf("netio: socket: %w", err)
	}
	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		unix.Close(fd)
		return -1, fmt.Errorf("netio: setsockopt SO_REUSEADDR: %w", err)
	}

	ip := net.ParseIP(bindAddr)
	if ip == nil {
		ip = net.IPv4zero
	}
	var addr unix.SockaddrInet4
	copy(addr.Addr[:], ip.To4())
	addr.Port = port

	if err := unix.Bind(fd, &addr); err != nil {
		unix.Close(fd)
		return -1, fmt.Errorf("netio: bind %s:%d: %w", bindAddr, port, err)
	}
	if err := unix.Listen(fd, listenBacklog); err != nil {
		unix.Close(fd)
		return -1, fmt.Errorf("netio: listen: %w", err)
	}
	return fd, nil
}

// AcceptOne accepts a single pending connection in non-blocking mode. It
// returns (0, "", unix.EAGAIN) once the accept queue is drained, which
// the event loop's accept-until-empty loop uses as its stop condition.
func AcceptOne(listenFd int) (connFd int, remoteAddr string, err error) {
	nfd, sa, err := unix.Accept4(listenFd, unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC)
	if err != nil {
		return 0, "", err
	}
	remoteAddr = formatSockaddr(sa)
	return nfd, remoteAddr, nil
}

func formatSockaddr(sa unix.Sockaddr) string {
	switch a := sa.(type) {
	case *unix.SockaddrInet4:
		ip := net.IPv4(a.Addr[0], a.Addr[1], a.Addr[2], a.Addr[3])
		return fmt.Sprintf("%s:%d", ip.String(), a.Port)
	default:
		return "unknown"
	}
}
