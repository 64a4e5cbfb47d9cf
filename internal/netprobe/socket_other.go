//go:build !unix

package netprobe

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
)

// dialSocket defers binding to Connect: net.DialUDP binds and connects in
// one call on these platforms.
type dialSocket struct {
	conn *net.UDPConn
}

func openUDP() (Socket, error) {
	return &dialSocket{}, nil
}

func (s *dialSocket) Connect(remote netip.AddrPort) error {
	conn, err := net.DialUDP("udp4", &net.UDPAddr{IP: net.IPv4zero}, net.UDPAddrFromAddrPort(remote))
	if err != nil {
		return fmt.Errorf("connect %s: %w", remote, err)
	}
	s.conn = conn
	return nil
}

func (s *dialSocket) LocalAddr() (netip.Addr, error) {
	if s.conn == nil {
		return netip.Addr{}, errors.New("socket not connected")
	}
	addr, ok := s.conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return netip.Addr{}, fmt.Errorf("unexpected local address %T", s.conn.LocalAddr())
	}
	return addr.AddrPort().Addr(), nil
}

func (s *dialSocket) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
