//go:build unix

package server

import (
	"net"
	"syscall"
)

// connAlive reports whether the client side of conn is still open. It
// peeks at the socket without consuming or sending anything, so it is
// safe to call at any point in the request lifetime.
//
// fasthttp's request context is only closed on server shutdown, never on
// a per-request client disconnect, so liveness has to come from the
// connection itself.
func connAlive(conn net.Conn) bool {
	if conn == nil {
		return true
	}
	sc, ok := conn.(syscall.Conn)
	if !ok {
		// In-memory test connections and the like; assume alive.
		return true
	}
	raw, err := sc.SyscallConn()
	if err != nil {
		return true
	}

	alive := true
	ctrlErr := raw.Control(func(fd uintptr) {
		var buf [1]byte
		n, _, err := syscall.Recvfrom(int(fd), buf[:], syscall.MSG_PEEK|syscall.MSG_DONTWAIT)
		switch {
		case n == 0 && err == nil:
			// Zero-byte read: the peer sent FIN.
			alive = false
		case err == syscall.EAGAIN || err == syscall.EWOULDBLOCK:
			// No data pending; connection still up.
		case err != nil:
			alive = false
		}
	})
	if ctrlErr != nil {
		return true
	}
	return alive
}
