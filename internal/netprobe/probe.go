// Package netprobe finds the local address the host would use to reach the
// public internet. It relies on connecting a UDP socket, which only consults
// the routing table and sends nothing.
package netprobe

import (
	"net/netip"

	"sysfetch/internal/logger"
)

// Diagnostics returned in place of an address.
const (
	MsgBindFailed  = "Failed to bind to a socket."
	MsgUnreachable = "Network unreachable."
	MsgNoLocalAddr = "Failed to get local address."
)

// Target is the destination used for route selection.
var Target = netip.MustParseAddrPort("8.8.8.8:80")

// Socket is a bound datagram socket.
type Socket interface {
	Connect(remote netip.AddrPort) error
	LocalAddr() (netip.Addr, error)
	Close() error
}

// Opener creates a socket bound to the wildcard address on an ephemeral port.
type Opener func() (Socket, error)

type Prober struct {
	open   Opener
	target netip.AddrPort
}

// New returns a Prober backed by the platform UDP socket.
func New() *Prober {
	return NewWithOpener(openUDP)
}

func NewWithOpener(open Opener) *Prober {
	return &Prober{open: open, target: Target}
}

// LocalIP returns the local IP literal, or one of the Msg* diagnostics.
func (p *Prober) LocalIP() string {
	sock, err := p.open()
	if err != nil {
		logger.NetProbe.Debug().Err(err).Msg("Failed to open UDP socket")
		return MsgBindFailed
	}
	defer func() {
		if cerr := sock.Close(); cerr != nil {
			logger.NetProbe.Debug().Err(cerr).Msg("Failed to close UDP socket")
		}
	}()

	if err := sock.Connect(p.target); err != nil {
		logger.NetProbe.Debug().
			Err(err).
			Str("target", p.target.String()).
			Msg("Route selection failed")
		return MsgUnreachable
	}

	addr, err := sock.LocalAddr()
	if err != nil || !addr.IsValid() {
		logger.NetProbe.Debug().Err(err).Msg("Failed to read local address")
		return MsgNoLocalAddr
	}

	ip := addr.Unmap().String()
	logger.NetProbe.Debug().Str("local_ip", ip).Msg("Resolved local address")
	return ip
}

// LocalIP probes with the platform socket.
func LocalIP() string {
	return New().LocalIP()
}
