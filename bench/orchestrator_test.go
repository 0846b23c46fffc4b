package bench

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/sockbench/sockbench/server"
	servertcp "github.com/sockbench/sockbench/server/tcp"
	"github.com/sockbench/sockbench/sockbench"
)

type testLogger struct {
	t *testing.T
}

func (l testLogger) Error(format string, args ...interface{}) {
	l.t.Logf("[ERROR] "+format, args...)
}

func (l testLogger) Info(format string, args ...interface{}) {
	l.t.Logf("[INFO] "+format, args...)
}

func (l testLogger) Debug(format string, args ...interface{}) {
	l.t.Logf("[DEBUG] "+format, args...)
}

func testParams() sockbench.Params {
	return sockbench.Params{
		Host:        "localhost",
		TCPPort:     0,
		UDPPort:     0,
		DataSize:    64,
		Iterations:  50,
		IPVersion:   sockbench.IPv4,
		RecvTimeout: 2 * time.Second,
	}
}

func TestRunProtocolLocalTCP(t *testing.T) {
	o := NewOrchestrator(testLogger{t}, testParams(), sockbench.ModeLocal)

	run, err := o.RunProtocol(context.Background(), sockbench.TCP)
	if err != nil {
		t.Fatalf("RunProtocol(TCP): %v", err)
	}
	if run.Protocol != sockbench.TCP {
		t.Errorf("run.Protocol = %s, want TCP", run.Protocol)
	}
	if run.Summary == nil {
		t.Fatal("run.Summary is nil, want completed summary")
	}
	if run.Summary.Samples != 50 {
		t.Errorf("Samples = %d, want 50", run.Summary.Samples)
	}
	if want := uint64(50 * 64 * 2); run.Summary.TotalBytes != want {
		t.Errorf("TotalBytes = %d, want %d", run.Summary.TotalBytes, want)
	}
	if !o.Counters.Snapshot().Active() {
		t.Error("server counters recorded no activity")
	}
}

func TestRunProtocolLocalUDP(t *testing.T) {
	o := NewOrchestrator(testLogger{t}, testParams(), sockbench.ModeLocal)

	run, err := o.RunProtocol(context.Background(), sockbench.UDP)
	if err != nil {
		t.Fatalf("RunProtocol(UDP): %v", err)
	}
	if run.Summary == nil {
		t.Fatal("run.Summary is nil, want completed summary")
	}
	// Loopback UDP should not drop, but a lost datagram only shrinks the
	// sample count, it never fails the leg.
	if run.Summary.Samples == 0 || run.Summary.Samples > 50 {
		t.Errorf("Samples = %d, want 1..50", run.Summary.Samples)
	}
}

func TestRunProtocolRejectsICMP(t *testing.T) {
	o := NewOrchestrator(testLogger{t}, testParams(), sockbench.ModeLocal)

	run, err := o.RunProtocol(context.Background(), sockbench.ICMP)
	if err == nil {
		t.Fatal("RunProtocol(ICMP) succeeded, want error")
	}
	if run.Summary != nil {
		t.Error("failed run carries a non-nil Summary")
	}
}

func TestRunComparisonKeepsFailedLegs(t *testing.T) {
	params := testParams()
	o := NewOrchestrator(testLogger{t}, params, sockbench.ModeLocal)

	runs := o.RunComparison(context.Background(), []sockbench.Protocol{sockbench.TCP, sockbench.ICMP, sockbench.UDP})
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	if runs[0].Summary == nil {
		t.Error("TCP leg has nil Summary")
	}
	if runs[1].Summary != nil {
		t.Error("ICMP leg has a Summary, want nil")
	}
	if runs[2].Summary == nil {
		t.Error("UDP leg has nil Summary")
	}
}

func TestProgressReachesIterationCount(t *testing.T) {
	var mu sync.Mutex
	var last int
	calls := 0

	o := NewOrchestrator(testLogger{t}, testParams(), sockbench.ModeLocal)
	o.Progress = func(protocol sockbench.Protocol, completed int) {
		mu.Lock()
		defer mu.Unlock()
		if protocol != sockbench.TCP {
			t.Errorf("progress for %s, want TCP", protocol)
		}
		if completed < last {
			t.Errorf("progress went backwards: %d after %d", completed, last)
		}
		last = completed
		calls++
	}

	if _, err := o.RunProtocol(context.Background(), sockbench.TCP); err != nil {
		t.Fatalf("RunProtocol(TCP): %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if last != 50 {
		t.Errorf("final progress = %d, want 50", last)
	}
	if calls == 0 {
		t.Error("progress callback never invoked")
	}
}

func TestRunProtocolLocalIPv6(t *testing.T) {
	params := testParams()
	params.Host = "::1"
	params.IPVersion = sockbench.IPv6
	o := NewOrchestrator(testLogger{t}, params, sockbench.ModeLocal)

	run, err := o.RunProtocol(context.Background(), sockbench.TCP)
	if err != nil {
		t.Fatalf("RunProtocol(TCP) over IPv6: %v", err)
	}
	if run.Summary == nil {
		t.Fatal("run.Summary is nil, want completed summary")
	}
	if run.Summary.Samples != 50 {
		t.Errorf("Samples = %d, want 50", run.Summary.Samples)
	}
}

func TestRunProtocolRemotePrecheckFailure(t *testing.T) {
	// A port that was just released: nothing listens there, so the
	// pre-check must fail before a single iteration runs.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := uint16(l.Addr().(*net.TCPAddr).Port)
	l.Close()

	params := testParams()
	params.TCPPort = port
	o := NewOrchestrator(testLogger{t}, params, sockbench.ModeRemote)

	run, err := o.RunProtocol(context.Background(), sockbench.TCP)
	if err == nil {
		t.Fatal("RunProtocol(TCP) against a dead server succeeded, want pre-check error")
	}
	if run.Summary != nil {
		t.Errorf("failed pre-check produced a Summary: %+v", run.Summary)
	}
}

func TestRunProtocolRemoteNoCheckSkipsPrecheck(t *testing.T) {
	cfg := &server.Config{
		IPVersion:  sockbench.IPv4,
		LocalIP:    net.IPv4(127, 0, 0, 1),
		LocalPort:  0,
		DataSize:   64,
		Iterations: 50,
	}
	srv := servertcp.NewServer(cfg, servertcp.NewHandler(testLogger{t}, cfg, &server.Counters{}))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = srv.Serve(ctx)
	}()
	select {
	case <-srv.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("server never became ready")
	}

	params := testParams()
	params.Host = "127.0.0.1"
	params.TCPPort = uint16(srv.Addr().(*net.TCPAddr).Port)
	o := NewOrchestrator(testLogger{t}, params, sockbench.ModeRemote)
	o.NoCheck = true

	run, err := o.RunProtocol(context.Background(), sockbench.TCP)
	if err != nil {
		t.Fatalf("RunProtocol(TCP): %v", err)
	}
	if run.Summary == nil || run.Summary.Samples != 50 {
		t.Fatalf("run.Summary = %+v, want 50 samples", run.Summary)
	}
}

func TestRunProtocolCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o := NewOrchestrator(testLogger{t}, testParams(), sockbench.ModeLocal)
	if _, err := o.RunProtocol(ctx, sockbench.TCP); err == nil {
		t.Fatal("RunProtocol on a cancelled context succeeded, want error")
	}
}
