package udp

import (
	"context"
	"fmt"
	"net"
	"os"
	"sync/atomic"
	"time"

	"github.com/sockbench/sockbench/config"
	"github.com/sockbench/sockbench/sockbench"
	"github.com/sockbench/sockbench/server"
)

// Server runs the datagram echo loop on its own goroutine. The loop is
// gated by an atomic run flag rather than connection state: receives use a
// short deadline so the loop observes Stop within one poll interval.
type Server struct {
	cfg     *server.Config
	h       Handler
	logger  sockbench.Logger
	ready   chan struct{}
	done    chan struct{}
	addr    net.Addr
	running atomic.Bool
}

func NewServer(cfg *server.Config, h Handler) *Server {
	return &Server{
		cfg:    cfg,
		h:      h,
		logger: h.logger,
		ready:  make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Ready is closed when the socket is bound and Addr is valid.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound socket address. Valid only after Ready.
func (s *Server) Addr() net.Addr {
	return s.addr
}

func (s *Server) Serve(ctx context.Context) error {
	network := sockbench.UDPVersion(s.cfg.IPVersion)
	addr := config.GetAddrString(s.cfg.LocalIP, s.cfg.LocalPort)
	udpAddr, err := net.ResolveUDPAddr(network, addr)
	if err != nil {
		return fmt.Errorf("unable to resolve UDP address: %w", err)
	}
	conn, err := net.ListenUDP(network, udpAddr)
	if err != nil {
		return fmt.Errorf("error listening on %s for UDP echo: %w", addr, err)
	}
	defer conn.Close()
	defer close(s.done)

	s.addr = conn.LocalAddr()
	s.logger.Info("UDP server listening on %s", s.addr)
	s.running.Store(true)
	close(s.ready)

	go func() {
		<-ctx.Done()
		s.running.Store(false)
	}()

	buff := make([]byte, s.cfg.DataSize)
	for s.running.Load() {
		_ = conn.SetReadDeadline(time.Now().Add(sockbench.ServerPollInterval))
		n, raddr, err := conn.ReadFromUDP(buff)
		if err != nil {
			// Deadline expiry just re-checks the run flag.
			if os.IsTimeout(err) {
				continue
			}
			if s.running.Load() {
				s.logger.Error("UDP server error: %v", err)
			}
			break
		}
		s.h.HandleDatagram(conn, raddr, n)
	}
	s.logger.Info("UDP server stopped")
	return nil
}

// Stop requests shutdown and joins the serve loop with a bounded wait.
func (s *Server) Stop() {
	s.running.Store(false)
	select {
	case <-s.done:
	case <-time.After(sockbench.ServerJoinTimeout):
		s.logger.Error("UDP server did not stop within %v", sockbench.ServerJoinTimeout)
	}
}
