package bench

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/sockbench/sockbench/client"
	"github.com/sockbench/sockbench/server"
	"github.com/sockbench/sockbench/server/tcp"
	"github.com/sockbench/sockbench/server/udp"
	"github.com/sockbench/sockbench/sockbench"
	"github.com/sockbench/sockbench/stats"
)

// Orchestrator runs one benchmark leg per protocol. In local mode it owns
// the embedded echo server for the duration of the leg, in remote mode it
// only drives the client side and expects a standalone server on the far
// end.
type Orchestrator struct {
	Params   sockbench.Params
	Mode     sockbench.Mode
	Logger   sockbench.Logger
	Counters *server.Counters

	// Progress is invoked with the running completion count of the active
	// leg. Optional.
	Progress func(protocol sockbench.Protocol, completed int)

	// NoCheck skips the remote connectivity pre-flight.
	NoCheck bool
}

func NewOrchestrator(logger sockbench.Logger, params sockbench.Params, mode sockbench.Mode) *Orchestrator {
	return &Orchestrator{
		Params:   params,
		Mode:     mode,
		Logger:   logger,
		Counters: &server.Counters{},
	}
}

// RunProtocol executes a single benchmark leg and returns its Run record.
// The returned Summary is nil when no round trip completed, whether or not
// err is set.
func (o *Orchestrator) RunProtocol(ctx context.Context, protocol sockbench.Protocol) (Run, error) {
	run := Run{Protocol: protocol}
	if err := ctx.Err(); err != nil {
		return run, err
	}

	samples, err := o.runLeg(ctx, protocol)
	if err != nil {
		return run, err
	}
	run.Summary = stats.NewSummary(samples, o.Params.DataSize)
	return run, nil
}

// RunComparison runs the given protocols back to back. A failed leg is
// logged and reported with a nil Summary, it never aborts the remaining
// legs.
func (o *Orchestrator) RunComparison(ctx context.Context, protocols []sockbench.Protocol) []Run {
	runs := make([]Run, 0, len(protocols))
	for _, protocol := range protocols {
		run, err := o.RunProtocol(ctx, protocol)
		if err != nil {
			o.Logger.Error("%s benchmark failed: %v", protocol, err)
		}
		runs = append(runs, run)
		if ctx.Err() != nil {
			break
		}
	}
	return runs
}

func (o *Orchestrator) runLeg(ctx context.Context, protocol sockbench.Protocol) ([]time.Duration, error) {
	if o.Mode == sockbench.ModeLocal {
		return o.runLocal(ctx, protocol)
	}
	return o.runRemote(ctx, protocol)
}

// runLocal hosts the echo server in-process. The client leg only starts
// once the server signals readiness, and the bound port is read back from
// the listener so an ephemeral port request still works.
func (o *Orchestrator) runLocal(ctx context.Context, protocol sockbench.Protocol) ([]time.Duration, error) {
	cfg := server.ConfigFromParams(o.Params, protocol)
	cfg.LocalIP = o.serverBindIP()

	switch protocol {
	case sockbench.TCP:
		srv := tcp.NewServer(cfg, tcp.NewHandler(o.Logger, cfg, o.Counters))
		serverCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Serve(serverCtx)
		}()
		if err := waitReady(ctx, srv.Ready(), errCh); err != nil {
			return nil, fmt.Errorf("unable to start TCP server: %w", err)
		}

		params := o.Params
		if addr, ok := srv.Addr().(*net.TCPAddr); ok {
			params.Host = addr.IP.String()
			params.TCPPort = uint16(addr.Port)
		}
		return o.runClient(protocol, params)

	case sockbench.UDP:
		srv := udp.NewServer(cfg, udp.NewHandler(o.Logger, cfg, o.Counters))
		serverCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Serve(serverCtx)
		}()
		if err := waitReady(ctx, srv.Ready(), errCh); err != nil {
			return nil, fmt.Errorf("unable to start UDP server: %w", err)
		}
		defer srv.Stop()

		params := o.Params
		if addr, ok := srv.Addr().(*net.UDPAddr); ok {
			params.Host = addr.IP.String()
			params.UDPPort = uint16(addr.Port)
		}
		return o.runClient(protocol, params)

	default:
		return nil, fmt.Errorf("protocol %s is not supported for benchmarking", protocol)
	}
}

func (o *Orchestrator) runRemote(_ context.Context, protocol sockbench.Protocol) ([]time.Duration, error) {
	if !o.NoCheck {
		c, err := client.NewClient(o.Logger, o.Params)
		if err != nil {
			return nil, err
		}
		if err := c.CheckConnectivity(protocol == sockbench.TCP); err != nil {
			return nil, fmt.Errorf("connectivity check to %s failed: %w", o.Params.Host, err)
		}
	}
	return o.runClient(protocol, o.Params)
}

func (o *Orchestrator) runClient(protocol sockbench.Protocol, params sockbench.Params) ([]time.Duration, error) {
	c, err := client.NewClient(o.Logger, params)
	if err != nil {
		return nil, err
	}
	progress := func(completed int) {}
	if o.Progress != nil {
		progress = func(completed int) {
			o.Progress(protocol, completed)
		}
	}
	return c.Run(protocol, progress)
}

// serverBindIP keeps the embedded server off the wildcard address so a
// local run never accepts traffic from other hosts.
func (o *Orchestrator) serverBindIP() net.IP {
	switch o.Params.IPVersion {
	case sockbench.IPv6:
		return net.IPv6loopback
	default:
		return net.IPv4(127, 0, 0, 1)
	}
}

func waitReady(ctx context.Context, ready <-chan struct{}, errCh <-chan error) error {
	select {
	case <-ready:
		return nil
	case err := <-errCh:
		if err == nil {
			err = fmt.Errorf("server exited before signalling readiness")
		}
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
