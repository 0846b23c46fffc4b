package client

import (
	"fmt"
	"time"

	"github.com/sockbench/sockbench/client/icmp"
	"github.com/sockbench/sockbench/client/tcp"
	"github.com/sockbench/sockbench/client/tools"
	"github.com/sockbench/sockbench/client/udp"
	"github.com/sockbench/sockbench/sockbench"
)

// alias to avoid naming collision on 'Tests'
type TCPTests = tcp.Tests
type UDPTests = udp.Tests
type ICMPTests = icmp.Tests

type Client struct {
	TCPTests
	UDPTests
	ICMPTests

	NetTools *tools.Tools

	Params sockbench.Params
	Logger sockbench.Logger
}

func NewClient(logger sockbench.Logger, params sockbench.Params) (*Client, error) {
	nt, err := tools.NewTools(params.IPVersion, params.Host)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize network tools: %w", err)
	}

	return &Client{
		NetTools:  nt,
		TCPTests:  tcp.Tests{NetTools: nt, Logger: logger},
		UDPTests:  udp.Tests{NetTools: nt, Logger: logger},
		ICMPTests: icmp.Tests{NetTools: nt, Logger: logger},
		Params:    params,
		Logger:    logger,
	}, nil
}

// Run executes one protocol's echo benchmark and returns the ordered
// round-trip samples.
func (c *Client) Run(protocol sockbench.Protocol, progress func(completed int)) ([]time.Duration, error) {
	switch protocol {
	case sockbench.TCP:
		return c.TCPTests.RunEcho(c.Params, progress)
	case sockbench.UDP:
		return c.UDPTests.RunEcho(c.Params, progress)
	default:
		return nil, fmt.Errorf("no echo benchmark for protocol %s", protocol)
	}
}

// CheckConnectivity runs the remote-mode pre-checks. The TCP port probe is
// the authoritative one and fails the check; ICMP needs raw socket
// privileges and the UDP probe cannot observe delivery, so both only log.
func (c *Client) CheckConnectivity(probeTCP bool) error {
	c.Logger.Info("checking network connectivity to %s", c.NetTools.RemoteHostname)

	if _, err := c.ICMPTests.Ping(5 * time.Second); err != nil {
		c.Logger.Info("ping check skipped: %v", err)
	}

	if probeTCP {
		if err := c.NetTools.ProbeTCP(c.Params.TCPPort); err != nil {
			return err
		}
		c.Logger.Info("TCP port %d is reachable", c.Params.TCPPort)
	}

	if err := c.NetTools.ProbeUDP(c.Params.UDPPort); err != nil {
		c.Logger.Info("UDP probe failed: %v", err)
	}
	return nil
}
