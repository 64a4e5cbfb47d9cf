//go:build unix

package netprobe

import (
	"fmt"
	"net/netip"

	"golang.org/x/sys/unix"
)

type udpSocket struct {
	fd int
}

// openUDP creates an IPv4 datagram socket and binds it to 0.0.0.0:0.
func openUDP() (Socket, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, 0)
	if err != nil {
		return nil, fmt.Errorf("socket: %w", err)
	}
	unix.CloseOnExec(fd)

	if err := unix.Bind(fd, &unix.SockaddrInet4{}); err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("bind 0.0.0.0:0: %w", err)
	}
	return &udpSocket{fd: fd}, nil
}

func (s *udpSocket) Connect(remote netip.AddrPort) error {
	if !remote.Addr().Is4() {
		return fmt.Errorf("connect %s: not an IPv4 address", remote)
	}
	sa := &unix.SockaddrInet4{Port: int(remote.Port()), Addr: remote.Addr().As4()}
	if err := unix.Connect(s.fd, sa); err != nil {
		return fmt.Errorf("connect %s: %w", remote, err)
	}
	return nil
}

func (s *udpSocket) LocalAddr() (netip.Addr, error) {
	sa, err := unix.Getsockname(s.fd)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("getsockname: %w", err)
	}
	switch v := sa.(type) {
	case *unix.SockaddrInet4:
		return netip.AddrFrom4(v.Addr), nil
	case *unix.SockaddrInet6:
		return netip.AddrFrom16(v.Addr), nil
	default:
		return netip.Addr{}, fmt.Errorf("getsockname: unexpected address family %T", sa)
	}
}

func (s *udpSocket) Close() error {
	return unix.Close(s.fd)
}
