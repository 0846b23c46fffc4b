package server

import (
	"net"

	"github.com/sockbench/sockbench/sockbench"
)

// Config describes one listening echo endpoint. DataSize is the exact
// on-the-wire message length; Iterations bounds how many echo rounds a
// single TCP connection is served.
type Config struct {
	IPVersion  sockbench.IPVersion
	LocalIP    net.IP
	LocalPort  uint16
	DataSize   int
	Iterations int
}

func ConfigFromParams(p sockbench.Params, protocol sockbench.Protocol) *Config {
	port := p.TCPPort
	if protocol == sockbench.UDP {
		port = p.UDPPort
	}
	return &Config{
		IPVersion:  p.IPVersion,
		LocalIP:    nil,
		LocalPort:  port,
		DataSize:   p.DataSize,
		Iterations: p.Iterations,
	}
}
