package server

import "sync/atomic"

// Counters aggregates live activity across both echo servers for the
// server display. Handlers only ever add; the display samples and diffs.
type Counters struct {
	tcpConnections uint64
	tcpRounds      uint64
	tcpBytes       uint64
	udpEchoes      uint64
	udpDropped     uint64
	udpBytes       uint64
}

type Snapshot struct {
	TCPConnections uint64
	TCPRounds      uint64
	TCPBytes       uint64
	UDPEchoes      uint64
	UDPDropped     uint64
	UDPBytes       uint64
}

func (c *Counters) AddTCPConnection() { atomic.AddUint64(&c.tcpConnections, 1) }

func (c *Counters) AddTCPRound(n int) {
	atomic.AddUint64(&c.tcpRounds, 1)
	atomic.AddUint64(&c.tcpBytes, uint64(n))
}

func (c *Counters) AddUDPEcho(n int) {
	atomic.AddUint64(&c.udpEchoes, 1)
	atomic.AddUint64(&c.udpBytes, uint64(n))
}

func (c *Counters) AddUDPDropped() { atomic.AddUint64(&c.udpDropped, 1) }

func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		TCPConnections: atomic.LoadUint64(&c.tcpConnections),
		TCPRounds:      atomic.LoadUint64(&c.tcpRounds),
		TCPBytes:       atomic.LoadUint64(&c.tcpBytes),
		UDPEchoes:      atomic.LoadUint64(&c.udpEchoes),
		UDPDropped:     atomic.LoadUint64(&c.udpDropped),
		UDPBytes:       atomic.LoadUint64(&c.udpBytes),
	}
}

// Diff returns the per-interval delta between two snapshots.
func (s Snapshot) Diff(prev Snapshot) Snapshot {
	return Snapshot{
		TCPConnections: s.TCPConnections - prev.TCPConnections,
		TCPRounds:      s.TCPRounds - prev.TCPRounds,
		TCPBytes:       s.TCPBytes - prev.TCPBytes,
		UDPEchoes:      s.UDPEchoes - prev.UDPEchoes,
		UDPDropped:     s.UDPDropped - prev.UDPDropped,
		UDPBytes:       s.UDPBytes - prev.UDPBytes,
	}
}

func (s Snapshot) Active() bool {
	return s.TCPConnections > 0 || s.TCPRounds > 0 || s.UDPEchoes > 0 || s.UDPDropped > 0
}
