package udp

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/sockbench/sockbench/client/tools"
	"github.com/sockbench/sockbench/server"
	serverudp "github.com/sockbench/sockbench/server/udp"
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

func startEchoServer(t *testing.T, dataSize int) (uint16, context.CancelFunc) {
	t.Helper()

	cfg := &server.Config{
		IPVersion: sockbench.IPv4,
		LocalIP:   net.IPv4(127, 0, 0, 1),
		LocalPort: 0,
		DataSize:  dataSize,
	}
	srv := serverudp.NewServer(cfg, serverudp.NewHandler(testLogger{t}, cfg, &server.Counters{}))
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		_ = srv.Serve(ctx)
	}()

	select {
	case <-srv.Ready():
	case <-time.After(2 * time.Second):
		cancel()
		t.Fatal("server never became ready")
	}
	port := uint16(srv.Addr().(*net.UDPAddr).Port)
	return port, func() {
		cancel()
		srv.Stop()
	}
}

func testTools(t *testing.T) *tools.Tools {
	t.Helper()
	nt, err := tools.NewTools(sockbench.IPv4, "127.0.0.1")
	if err != nil {
		t.Fatalf("NewTools: %v", err)
	}
	return nt
}

func TestRunEchoCollectsAllSamples(t *testing.T) {
	port, stop := startEchoServer(t, 64)
	defer stop()

	tests := Tests{NetTools: testTools(t), Logger: testLogger{t}}
	params := sockbench.Params{
		Host:        "127.0.0.1",
		UDPPort:     port,
		DataSize:    64,
		Iterations:  10,
		IPVersion:   sockbench.IPv4,
		RecvTimeout: 2 * time.Second,
	}

	var last int
	samples, err := tests.RunEcho(params, func(completed int) { last = completed })
	if err != nil {
		t.Fatalf("RunEcho: %v", err)
	}
	if len(samples) != 10 {
		t.Fatalf("got %d samples, want 10", len(samples))
	}
	if last != 10 {
		t.Errorf("final progress = %d, want 10", last)
	}
}

func TestRunEchoSurvivesMissingReplies(t *testing.T) {
	// No server at all: every iteration times out, no samples, no error.
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := uint16(conn.LocalAddr().(*net.UDPAddr).Port)
	conn.Close()

	tests := Tests{NetTools: testTools(t), Logger: testLogger{t}}
	params := sockbench.Params{
		Host:        "127.0.0.1",
		UDPPort:     port,
		DataSize:    64,
		Iterations:  3,
		IPVersion:   sockbench.IPv4,
		RecvTimeout: 50 * time.Millisecond,
	}

	samples, err := tests.RunEcho(params, func(int) {})
	if err != nil {
		t.Fatalf("RunEcho: %v", err)
	}
	if len(samples) != 0 {
		t.Fatalf("got %d samples without a server, want 0", len(samples))
	}
}
