//go:build linux

package stats

import (
	"bufio"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type linuxNetDevInfo struct {
	bytes      uint64
	packets    uint64
	errs       uint64
	drop       uint64
	fifo       uint64
	frame      uint64
	compressed uint64
	multicast  uint64
}

type osStats struct {
}

func (s osStats) GetNetDevStats() ([]NetDevStat, error) {
	ifs, err := net.Interfaces()
	if err != nil {
		return nil, errors.Wrap(err, "GetNetDevStats: error getting network interfaces")
	}

	netStatsFile, err := os.Open("/proc/net/dev")
	if err != nil {
		return nil, errors.Wrap(err, "GetNetDevStats: error opening /proc/net/dev")
	}
	defer netStatsFile.Close()

	// Skip the two header lines:
	// Inter-|   Receive                                             |  Transmit
	//  face |bytes packets errs drop fifo frame compressed multicast|bytes packets errs drop fifo colls carrier compressed
	scanner := bufio.NewScanner(netStatsFile)
	scanner.Scan()
	scanner.Scan()

	var res []NetDevStat
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		devStats, err := buildNetDevStat(line)
		if err != nil {
			return nil, errors.Wrap(err, "GetNetDevStats: could not build interface stats")
		}
		if isIfUp(devStats.InterfaceName, ifs) {
			res = append(res, devStats)
		}
	}
	return res, nil
}

func buildNetDevStat(line string) (NetDevStat, error) {
	fields := strings.Fields(line)
	if len(fields) < 17 {
		return NetDevStat{}, errors.Errorf(
			"buildNetDevStat: unexpected net stats file format, erroneous line %s", line)
	}
	interfaceName := strings.TrimSuffix(fields[0], ":")

	rxInfo, err := toNetDevInfo(fields[1:9])
	if err != nil {
		return NetDevStat{}, errors.Wrap(err, "buildNetDevStat: error parsing rxInfo")
	}

	txInfo, err := toNetDevInfo(fields[9:17])
	if err != nil {
		return NetDevStat{}, errors.Wrap(err, "buildNetDevStat: error parsing txInfo")
	}

	return NetDevStat{
		InterfaceName: interfaceName,
		RxBytes:       rxInfo.bytes,
		TxBytes:       txInfo.bytes,
		RxPkts:        rxInfo.packets,
		TxPkts:        txInfo.packets,
	}, nil
}

func toNetDevInfo(fields []string) (linuxNetDevInfo, error) {
	var err error

	intFields := [8]uint64{}
	for i := 0; i < 8; i++ {
		intFields[i], err = strconv.ParseUint(fields[i], 10, 64)
		if err != nil {
			return linuxNetDevInfo{}, errors.Wrap(err, "toNetDevInfo: error in string conversion")
		}
	}

	return linuxNetDevInfo{
		bytes:      intFields[0],
		packets:    intFields[1],
		errs:       intFields[2],
		drop:       intFields[3],
		fifo:       intFields[4],
		frame:      intFields[5],
		compressed: intFields[6],
		multicast:  intFields[7],
	}, nil
}

func isIfUp(ifName string, ifs []net.Interface) bool {
	for _, ifi := range ifs {
		if ifi.Name == ifName {
			return (ifi.Flags & net.FlagUp) != 0
		}
	}
	return false
}

func (s osStats) GetTCPStats() (TCPStat, error) {
	snmpStatsFile, err := os.Open("/proc/net/snmp")
	if err != nil {
		return TCPStat{}, errors.Wrap(err, "GetTCPStats: error opening /proc/net/snmp")
	}
	defer snmpStatsFile.Close()

	retransSeg, err := parseSNMPProcFile(snmpStatsFile)
	if err != nil {
		return TCPStat{}, errors.Wrap(err, "GetTCPStats: could not parse /proc/net/snmp")
	}
	return TCPStat{retransSeg}, nil
}

// parseSNMPProcFile scans /proc/net/snmp for the TCP retransmitted segments
// counter.
func parseSNMPProcFile(snmpStatsFile *os.File) (uint64, error) {
	// Value line we are looking for follows the header:
	// Tcp: RtoAlgorithm RtoMin RtoMax MaxConn ActiveOpens PassiveOpens AttemptFails EstabResets
	//      CurrEstab InSegs OutSegs RetransSegs InErrs OutRsts InCsumErrors
	scanner := bufio.NewScanner(snmpStatsFile)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || !strings.HasPrefix(line, "Tcp") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 13 {
			continue
		}
		intField, err := strconv.ParseUint(fields[12], 10, 64)
		if err != nil {
			continue
		}
		return intField, nil
	}
	return 0, errors.New("parseSNMPProcFile: could not find a valid number")
}
