//go:build !linux && !windows

package stats

import "github.com/pkg/errors"

type osStats struct{}

func (s osStats) GetNetDevStats() ([]NetDevStat, error) {
	return nil, errors.New("network device statistics are not supported on this platform")
}

func (s osStats) GetTCPStats() (TCPStat, error) {
	return TCPStat{}, errors.New("TCP statistics are not supported on this platform")
}
