package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"

	"github.com/sockbench/sockbench/sockbench"
	"github.com/sockbench/sockbench/ui"
)

var Version = "UNKNOWN"

var (
	NoOutput   bool
	OutputFile string
	Debug      bool
	UseIPv4    bool
	UseIPv6    bool
	IPVersion  sockbench.IPVersion
	IsServer   bool

	// Server only
	ShowUI  bool
	LocalIP net.IP

	// Client only
	Host    string
	RunTCP  bool
	RunUDP  bool
	Mode    sockbench.Mode
	NoCheck bool

	TCPPort    uint16
	UDPPort    uint16
	DataSize   int
	Iterations int
)

const defaultDataSizeStr = "1KB"

func Init() error {
	flag.Usage = func() { Usage() }
	flag.BoolVar(&NoOutput, "no", false, "")
	flag.StringVar(&OutputFile, "o", "", "")
	flag.BoolVar(&Debug, "debug", false, "")
	flag.BoolVar(&UseIPv4, "4", false, "")
	flag.BoolVar(&UseIPv6, "6", false, "")
	flag.BoolVar(&IsServer, "s", false, "")
	flag.BoolVar(&ShowUI, "ui", false, "")
	rawIP := flag.String("ip", "", "")

	flag.StringVar(&Host, "c", "localhost", "")
	rawProtocol := flag.String("p", "both", "")
	flag.BoolVar(&NoCheck, "nc", false, "")

	tcpPort := flag.Int("tport", sockbench.DefaultTCPPort, "")
	udpPort := flag.Int("uport", sockbench.DefaultUDPPort, "")
	dataSize := flag.String("l", defaultDataSizeStr, "")
	flag.IntVar(&Iterations, "i", sockbench.DefaultIterations, "")

	flag.Parse()

	if *rawIP == "" {
		LocalIP = nil
	} else {
		LocalIP = net.ParseIP(*rawIP)
		if LocalIP == nil || (UseIPv4 && LocalIP.To4() == nil) || (UseIPv6 && LocalIP.To16() == nil) {
			return fmt.Errorf("invalid ip address: %s", *rawIP)
		}
	}

	TCPPort = uint16(*tcpPort)
	UDPPort = uint16(*udpPort)

	if (!UseIPv4 && !UseIPv6) || (UseIPv4 && UseIPv6) {
		IPVersion = sockbench.IPAny
	} else if UseIPv6 {
		IPVersion = sockbench.IPv6
	} else {
		IPVersion = sockbench.IPv4
	}

	size := ui.UnitToNumber(*dataSize)
	if size == 0 {
		return fmt.Errorf("invalid data size: %s", *dataSize)
	}
	DataSize = int(size)

	if Iterations <= 0 {
		return fmt.Errorf("invalid iteration count: %d", Iterations)
	}

	switch *rawProtocol {
	case "tcp":
		RunTCP = true
	case "udp":
		RunUDP = true
	case "both", "compare":
		RunTCP = true
		RunUDP = true
	default:
		return fmt.Errorf("invalid protocol: %s", *rawProtocol)
	}

	if IsLoopback(Host) {
		Mode = sockbench.ModeLocal
	} else {
		Mode = sockbench.ModeRemote
	}

	if OutputFile == "" {
		if IsServer {
			OutputFile = "sockbenchs.log"
		} else {
			OutputFile = "sockbenchc.log"
		}
	}

	if IsServer {
		return validateServerArgs()
	}
	return validateClientArgs()
}

func validateServerArgs() error {
	if Host != "localhost" {
		return fmt.Errorf("invalid command, -c can only be used in client mode")
	}
	return nil
}

func validateClientArgs() error {
	if ShowUI {
		return fmt.Errorf("invalid argument, -ui can only be used in server (\"-s\") mode")
	}
	if Host == "" {
		return fmt.Errorf("invalid argument, destination host cannot be empty")
	}
	return nil
}

// IsLoopback decides the execution mode: a loopback destination means the
// benchmark embeds its own server.
func IsLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback()
	}
	return false
}

func Params() sockbench.Params {
	return sockbench.Params{
		Host:       Host,
		TCPPort:    TCPPort,
		UDPPort:    UDPPort,
		DataSize:   DataSize,
		Iterations: Iterations,
		IPVersion:  IPVersion,
	}
}

// GetAddrString renders a listen address, bracketing IPv6 addresses. A nil
// IP means all local addresses.
func GetAddrString(ip net.IP, port uint16) string {
	if ip == nil {
		return fmt.Sprintf(":%d", port)
	}
	return net.JoinHostPort(ip.String(), strconv.Itoa(int(port)))
}
