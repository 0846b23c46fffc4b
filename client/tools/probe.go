package tools

import (
	"fmt"
	"net"
	"time"

	"github.com/sockbench/sockbench/sockbench"
)

const probeTimeout = 5 * time.Second

// ProbeTCP checks that the server's TCP port accepts connections before a
// remote benchmark touches it.
func (t *Tools) ProbeTCP(port uint16) error {
	network := sockbench.TCPVersion(t.IPVersion)
	conn, err := net.DialTimeout(network, t.RemoteAddr(port), probeTimeout)
	if err != nil {
		return fmt.Errorf("TCP port %d is not reachable: %w", port, err)
	}
	_ = conn.Close()
	return nil
}

// ProbeUDP sends a short probe datagram at the server's UDP port. The
// server drops it (wrong length) so no reply is expected; only a local
// send failure is reported.
func (t *Tools) ProbeUDP(port uint16) error {
	addr, err := t.UDPRemoteAddr(port)
	if err != nil {
		return err
	}
	conn, err := t.DialUDP()
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.WriteToUDP([]byte("probe"), addr); err != nil {
		return fmt.Errorf("UDP port %d probe failed: %w", port, err)
	}
	return nil
}
