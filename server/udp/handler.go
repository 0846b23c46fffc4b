package udp

import (
	"net"

	"github.com/sockbench/sockbench/sockbench"
	"github.com/sockbench/sockbench/server"
)

type Handler struct {
	logger   sockbench.Logger
	cfg      *server.Config
	counters *server.Counters
	payload  []byte
}

func NewHandler(logger sockbench.Logger, cfg *server.Config, counters *server.Counters) Handler {
	payload := make([]byte, cfg.DataSize)
	for i := range payload {
		payload[i] = 'x'
	}
	return Handler{
		logger:   logger,
		cfg:      cfg,
		counters: counters,
		payload:  payload,
	}
}

// HandleDatagram echoes the fixed payload back to the sender when the
// received length matches DataSize exactly; anything else is dropped
// without a reply.
func (h Handler) HandleDatagram(conn *net.UDPConn, raddr *net.UDPAddr, n int) {
	if n != h.cfg.DataSize {
		h.counters.AddUDPDropped()
		h.logger.Debug("dropping %d byte datagram from %s, expected %d", n, raddr, h.cfg.DataSize)
		return
	}
	if _, err := conn.WriteToUDP(h.payload, raddr); err != nil {
		h.logger.Error("error echoing to %s: %v", raddr, err)
		return
	}
	h.counters.AddUDPEcho(n + len(h.payload))
}
