package sockbench

import "time"

// Mode selects the benchmark topology: Local runs the echo server and the
// client in this process, Remote assumes an independently started server.
type Mode int

const (
	ModeLocal Mode = iota
	ModeRemote
)

func (m Mode) String() string {
	if m == ModeRemote {
		return "REMOTE"
	}
	return "LOCAL"
}

const (
	DefaultTCPPort    = 8888
	DefaultUDPPort    = 8889
	DefaultDataSize   = 1024
	DefaultIterations = 1000
)

// Per-operation timeouts. They apply to a single read, write or receive
// attempt, never to the benchmark run as a whole.
const (
	ConnectTimeout   = 10 * time.Second
	ReadWriteTimeout = 5 * time.Second
	ReceiveTimeout   = 5 * time.Second

	// ServerPollInterval bounds how long the UDP server blocks in a single
	// receive so its loop stays responsive to the shutdown flag.
	ServerPollInterval = time.Second

	// ServerJoinTimeout bounds the wait for the UDP server goroutine to
	// drain after its run flag is flipped off.
	ServerJoinTimeout = 2 * time.Second
)

// Params carries the benchmark knobs shared by client and server.
type Params struct {
	Host       string
	TCPPort    uint16
	UDPPort    uint16
	DataSize   int
	Iterations int
	IPVersion  IPVersion

	// ReceiveTimeout overrides the default per-iteration UDP receive (and
	// TCP read) deadline when non-zero. Tests shorten it.
	RecvTimeout time.Duration
}

func (p Params) ReadTimeout() time.Duration {
	if p.RecvTimeout > 0 {
		return p.RecvTimeout
	}
	return ReceiveTimeout
}

// Payload returns the fixed probe buffer: DataSize bytes of a repeating
// filler byte, used identically as the outgoing probe and the echoed reply.
func (p Params) Payload() []byte {
	buff := make([]byte, p.DataSize)
	for i := range buff {
		buff[i] = 'x'
	}
	return buff
}
