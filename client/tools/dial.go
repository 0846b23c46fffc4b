package tools

import (
	"fmt"
	"net"

	"github.com/sockbench/sockbench/sockbench"
)

// DialTCP opens the benchmark connection. Connect failures are fatal to
// the protocol run, so they surface immediately with the cause intact.
func (t *Tools) DialTCP(port uint16) (net.Conn, error) {
	network := sockbench.TCPVersion(t.IPVersion)
	dialer := &net.Dialer{Timeout: sockbench.ConnectTimeout}
	conn, err := dialer.Dial(network, t.RemoteAddr(port))
	if err != nil {
		return nil, fmt.Errorf("error dialing %s: %w", t.RemoteAddr(port), err)
	}
	return conn, nil
}

// DialUDP binds an unconnected datagram socket for the echo exchange. The
// socket is unconnected so the reply can arrive from any sender.
func (t *Tools) DialUDP() (*net.UDPConn, error) {
	network := sockbench.UDPVersion(t.IPVersion)
	conn, err := net.ListenUDP(network, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating UDP socket: %w", err)
	}
	return conn, nil
}

// UDPRemoteAddr resolves the destination for datagram sends.
func (t *Tools) UDPRemoteAddr(port uint16) (*net.UDPAddr, error) {
	network := sockbench.UDPVersion(t.IPVersion)
	addr, err := net.ResolveUDPAddr(network, t.RemoteAddr(port))
	if err != nil {
		return nil, fmt.Errorf("unable to resolve UDP address: %w", err)
	}
	return addr, nil
}
