package icmp

import (
	"fmt"
	"net"
	"time"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"

	"github.com/sockbench/sockbench/client/tools"
	"github.com/sockbench/sockbench/sockbench"
	"github.com/sockbench/sockbench/ui"
)

// Tests carries the ICMP reachability check run before a remote benchmark.
// Raw ICMP sockets need elevated privileges on most systems; callers treat
// a setup failure as "could not check" rather than "unreachable".
type Tests struct {
	NetTools *tools.Tools
	Logger   sockbench.Logger
}

func (t Tests) Ping(timeout time.Duration) (time.Duration, error) {
	dest := &net.IPAddr{IP: t.NetTools.RemoteIP}

	c, err := icmp.ListenPacket(sockbench.ICMPVersion(t.NetTools.IPVersion), "")
	if err != nil {
		return 0, fmt.Errorf("failed to create icmp connection: %w", err)
	}
	defer c.Close()

	msg := icmp.Message{
		Type: ipv4.ICMPTypeEcho,
		Code: 0,
		Body: &icmp.Echo{
			ID:   9999,
			Seq:  1,
			Data: []byte("sockbench connectivity check"),
		},
	}
	if t.NetTools.IPVersion == sockbench.IPv6 {
		msg.Type = ipv6.ICMPTypeEchoRequest
	}

	wb, err := msg.Marshal(nil)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal icmp message: %w", err)
	}

	if err := c.SetDeadline(time.Now().Add(timeout)); err != nil {
		return 0, fmt.Errorf("failed to set deadline: %w", err)
	}
	start := time.Now()
	if _, err := c.WriteTo(wb, dest); err != nil {
		return 0, fmt.Errorf("failed to send icmp echo: %w", err)
	}

	rb := make([]byte, 1500)
	for {
		n, peer, err := c.ReadFrom(rb)
		if err != nil {
			return 0, fmt.Errorf("failed to receive icmp reply: %w", err)
		}
		if peer.String() != dest.String() {
			continue
		}
		resp, err := icmp.ParseMessage(sockbench.ICMPProtocolNumber(t.NetTools.IPVersion), rb[:n])
		if err != nil {
			continue
		}
		if resp.Type != ipv4.ICMPTypeEchoReply && resp.Type != ipv6.ICMPTypeEchoReply {
			continue
		}
		latency := time.Since(start)
		t.Logger.Info("[icmp] ping to %s: %s", dest, ui.DurationToString(latency))
		return latency, nil
	}
}
