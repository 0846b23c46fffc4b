//go:build windows

package stats

import (
	"net"
	"strings"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var iphlpapi = windows.NewLazySystemDLL("iphlpapi.dll")

var (
	procGetTCPStatisticsEx = iphlpapi.NewProc("GetTcpStatisticsEx")
	procGetIfEntry2        = iphlpapi.NewProc("GetIfEntry2")
)

type osStats struct{}

func (s osStats) GetNetDevStats() ([]NetDevStat, error) {
	ifs, err := net.Interfaces()
	if err != nil {
		return nil, errors.Wrap(err, "GetNetDevStats: error getting network interfaces")
	}

	var res []NetDevStat
	for _, ifi := range ifs {
		if (ifi.Flags&net.FlagUp) == 0 || strings.Contains(ifi.Name, "Pseudo") {
			continue
		}
		row, err := getIfEntry2(uint32(ifi.Index))
		if err != nil {
			return nil, errors.Wrapf(err, "GetNetDevStats: interface %s", ifi.Name)
		}
		res = append(res, NetDevStat{
			InterfaceName: ifi.Name,
			RxBytes:       row.InOctets,
			TxBytes:       row.OutOctets,
			RxPkts:        row.InUcastPkts,
			TxPkts:        row.OutUcastPkts,
		})
	}
	return res, nil
}

type mibTCPStats struct {
	DwRtoAlgorithm uint32
	DwRtoMin       uint32
	DwRtoMax       uint32
	DwMaxConn      uint32
	DwActiveOpens  uint32
	DwPassiveOpens uint32
	DwAttemptFails uint32
	DwEstabResets  uint32
	DwCurrEstab    uint32
	DwInSegs       uint32
	DwOutSegs      uint32
	DwRetransSegs  uint32
	DwInErrs       uint32
	DwOutRsts      uint32
	DwNumConns     uint32
}

const (
	afInet  = 2
	afInet6 = 23
)

func (s osStats) GetTCPStats() (TCPStat, error) {
	tcpStats := &mibTCPStats{}
	r0, _, _ := procGetTCPStatisticsEx.Call(
		uintptr(unsafe.Pointer(tcpStats)), uintptr(afInet))
	if r0 != 0 {
		return TCPStat{}, windows.Errno(r0)
	}
	return TCPStat{uint64(tcpStats.DwRetransSegs)}, nil
}

type guid struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

const (
	maxStringSize        = 256
	maxPhysAddressLength = 32
	pad0for64_4for32     = 0
)

type mibIfRow2 struct {
	InterfaceLuid               uint64
	InterfaceIndex              uint32
	InterfaceGuid               guid
	Alias                       [maxStringSize + 1]uint16
	Description                 [maxStringSize + 1]uint16
	PhysicalAddressLength       uint32
	PhysicalAddress             [maxPhysAddressLength]uint8
	PermanentPhysicalAddress    [maxPhysAddressLength]uint8
	Mtu                         uint32
	Type                        uint32
	TunnelType                  uint32
	MediaType                   uint32
	PhysicalMediumType          uint32
	AccessType                  uint32
	DirectionType               uint32
	InterfaceAndOperStatusFlags uint32
	OperStatus                  uint32
	AdminStatus                 uint32
	MediaConnectState           uint32
	NetworkGuid                 guid
	ConnectionType              uint32
	padding1                    [pad0for64_4for32]byte
	TransmitLinkSpeed           uint64
	ReceiveLinkSpeed            uint64
	InOctets                    uint64
	InUcastPkts                 uint64
	InNUcastPkts                uint64
	InDiscards                  uint64
	InErrors                    uint64
	InUnknownProtos             uint64
	InUcastOctets               uint64
	InMulticastOctets           uint64
	InBroadcastOctets           uint64
	OutOctets                   uint64
	OutUcastPkts                uint64
	OutNUcastPkts               uint64
	OutDiscards                 uint64
	OutErrors                   uint64
	OutUcastOctets              uint64
	OutMulticastOctets          uint64
	OutBroadcastOctets          uint64
	OutQLen                     uint64
}

func getIfEntry2(ifIndex uint32) (mibIfRow2, error) {
	res := &mibIfRow2{InterfaceIndex: ifIndex}
	r0, _, _ := procGetIfEntry2.Call(uintptr(unsafe.Pointer(res)))
	if r0 != 0 {
		return mibIfRow2{}, windows.Errno(r0)
	}
	return *res, nil
}
