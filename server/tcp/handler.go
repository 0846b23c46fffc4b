package tcp

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"time"

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

// HandleConn runs the echo loop for one accepted connection: read one
// message of up to DataSize bytes, write the fixed payload back, at most
// Iterations times. Stream framing is by convention only — a partial read
// is logged and still answered with a full payload, never reassembled.
// Every error path terminates only this connection.
func (h Handler) HandleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	addr := conn.RemoteAddr()
	h.logger.Info("TCP client connected: %s", addr)
	h.counters.AddTCPConnection()

	buff := make([]byte, h.cfg.DataSize)
	for i := 0; i < h.cfg.Iterations; i++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		_ = conn.SetReadDeadline(time.Now().Add(sockbench.ReadWriteTimeout))
		n, err := conn.Read(buff)
		if err != nil {
			if errors.Is(err, io.EOF) {
				h.logger.Info("TCP client disconnected: %s", addr)
			} else if os.IsTimeout(err) {
				h.logger.Error("timeout receiving data from %s at iteration %d", addr, i)
			} else {
				h.logger.Error("error receiving data from %s: %v", addr, err)
			}
			return
		}
		if n == 0 {
			h.logger.Info("TCP client disconnected early: %s", addr)
			return
		}
		if n != h.cfg.DataSize {
			h.logger.Error("received %d bytes, expected %d", n, h.cfg.DataSize)
		}

		_ = conn.SetWriteDeadline(time.Now().Add(sockbench.ReadWriteTimeout))
		if _, err := conn.Write(h.payload); err != nil {
			if os.IsTimeout(err) {
				h.logger.Error("timeout sending data to %s at iteration %d", addr, i)
			} else {
				h.logger.Error("error sending data to %s: %v", addr, err)
			}
			return
		}
		h.counters.AddTCPRound(n + len(h.payload))
	}
}
