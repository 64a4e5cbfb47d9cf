package netprobe

import (
	"errors"
	"net/netip"
	"testing"
)

type fakeSocket struct {
	connectErr error
	addr       netip.Addr
	addrErr    error

	connectedTo netip.AddrPort
	closed      int
}

func (f *fakeSocket) Connect(remote netip.AddrPort) error {
	f.connectedTo = remote
	return f.connectErr
}

func (f *fakeSocket) LocalAddr() (netip.Addr, error) {
	return f.addr, f.addrErr
}

func (f *fakeSocket) Close() error {
	f.closed++
	return nil
}

func TestLocalIPSuccess(t *testing.T) {
	sock := &fakeSocket{addr: netip.MustParseAddr("192.168.1.23")}
	got := NewWithOpener(func() (Socket, error) { return sock, nil }).LocalIP()

	if got != "192.168.1.23" {
		t.Fatalf("LocalIP() = %q", got)
	}
	if sock.connectedTo != Target {
		t.Fatalf("connected to %v, want %v", sock.connectedTo, Target)
	}
	if sock.closed != 1 {
		t.Fatalf("socket closed %d times, want 1", sock.closed)
	}
}

func TestLocalIPUnmapsIPv4(t *testing.T) {
	sock := &fakeSocket{addr: netip.MustParseAddr("::ffff:10.0.0.7")}
	got := NewWithOpener(func() (Socket, error) { return sock, nil }).LocalIP()
	if got != "10.0.0.7" {
		t.Fatalf("LocalIP() = %q", got)
	}
}

func TestLocalIPFailures(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name   string
		sock   *fakeSocket
		openEr error
		want   string
	}{
		{name: "bind", openEr: boom, want: MsgBindFailed},
		{name: "connect", sock: &fakeSocket{connectErr: boom}, want: MsgUnreachable},
		{name: "local addr", sock: &fakeSocket{addrErr: boom}, want: MsgNoLocalAddr},
		{name: "invalid addr", sock: &fakeSocket{}, want: MsgNoLocalAddr},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewWithOpener(func() (Socket, error) {
				if tc.openEr != nil {
					return nil, tc.openEr
				}
				return tc.sock, nil
			})

			if got := p.LocalIP(); got != tc.want {
				t.Fatalf("LocalIP() = %q; want %q", got, tc.want)
			}
			if tc.sock != nil && tc.sock.closed != 1 {
				t.Fatalf("socket closed %d times, want 1", tc.sock.closed)
			}
		})
	}
}

func TestPlatformProbeIsNonEmpty(t *testing.T) {
	got := LocalIP()
	if got == "" {
		t.Fatal("LocalIP() returned an empty string")
	}
	switch got {
	case MsgBindFailed, MsgUnreachable, MsgNoLocalAddr:
		return
	}
	if _, err := netip.ParseAddr(got); err != nil {
		t.Fatalf("LocalIP() = %q is neither a diagnostic nor an IP: %v", got, err)
	}
}
