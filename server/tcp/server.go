package tcp

import (
	"context"
	"net"
	"time"

	"github.com/sockbench/sockbench/config"
	"github.com/sockbench/sockbench/sockbench"
	"github.com/sockbench/sockbench/server"
)

// Server accepts echo clients until its context is cancelled. Ready is
// closed once the listening socket is bound, so callers never have to
// guess when the server is up.
type Server struct {
	cfg    *server.Config
	h      Handler
	ready  chan struct{}
	addr   net.Addr
	logger sockbench.Logger
}

func NewServer(cfg *server.Config, h Handler) *Server {
	return &Server{
		cfg:    cfg,
		h:      h,
		ready:  make(chan struct{}),
		logger: h.logger,
	}
}

// Ready is closed when the listener is bound and Addr is valid.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound listener address. Valid only after Ready.
func (s *Server) Addr() net.Addr {
	return s.addr
}

func (s *Server) Serve(ctx context.Context) error {
	addr := config.GetAddrString(s.cfg.LocalIP, s.cfg.LocalPort)
	l, err := net.Listen(sockbench.TCPVersion(s.cfg.IPVersion), addr)
	if err != nil {
		return err
	}
	defer l.Close()

	s.addr = l.Addr()
	s.logger.Info("TCP server listening on %s", s.addr)
	close(s.ready)

	go func() {
		<-ctx.Done()
		l.Close()
	}()

	// https://golang.org/src/net/http/server.go?s=99574:99629#L3152
	var tempDelay time.Duration // how long to sleep on accept failure
	for {
		conn, err := l.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			if ne, ok := err.(net.Error); ok && ne.Temporary() {
				if tempDelay == 0 {
					tempDelay = 5 * time.Millisecond
				} else {
					tempDelay *= 2
				}
				if max := 1 * time.Second; tempDelay > max {
					tempDelay = max
				}
				time.Sleep(tempDelay)
				continue
			}
			return err
		}
		tempDelay = 0
		go s.h.HandleConn(ctx, conn)
	}
}
