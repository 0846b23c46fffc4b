package tools

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/sockbench/sockbench/sockbench"
)

// Tools resolves the destination once and hands out connections for it.
type Tools struct {
	IPVersion sockbench.IPVersion

	RemoteIP       net.IP
	RemoteHostname string
}

func NewTools(ipVersion sockbench.IPVersion, remote string) (*Tools, error) {
	ip, err := lookupIP(remote, ipVersion)
	if err != nil {
		return nil, fmt.Errorf("error resolving server address (%s): %w", remote, err)
	}

	version := ipVersion
	if version == sockbench.IPAny {
		if ip.To4() != nil {
			version = sockbench.IPv4
		} else {
			version = sockbench.IPv6
		}
	}

	return &Tools{
		IPVersion:      version,
		RemoteIP:       ip,
		RemoteHostname: remote,
	}, nil
}

func lookupIP(remote string, version sockbench.IPVersion) (net.IP, error) {
	if ip := net.ParseIP(remote); ip != nil {
		return ip, nil
	}

	ips, err := net.LookupIP(remote)
	if err != nil {
		return nil, fmt.Errorf("failed to lookup IP address for the server: %v. Error: %w", remote, err)
	}
	for _, ip := range ips {
		if version == sockbench.IPAny || (version == sockbench.IPv4 && ip.To4() != nil) || (version == sockbench.IPv6 && ip.To16() != nil) {
			return ip, nil
		}
	}
	return nil, fmt.Errorf("unable to resolve the given server: %v to an IP address: %w", remote, os.ErrNotExist)
}

// RemoteAddr renders host:port for the resolved destination, bracketing
// IPv6 addresses.
func (t *Tools) RemoteAddr(port uint16) string {
	return net.JoinHostPort(t.RemoteIP.String(), strconv.Itoa(int(port)))
}
