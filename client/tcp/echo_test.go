package tcp

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/sockbench/sockbench/client/tools"
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

func startEchoServer(t *testing.T, dataSize, iterations int) (uint16, context.CancelFunc) {
	t.Helper()

	cfg := &server.Config{
		IPVersion:  sockbench.IPv4,
		LocalIP:    net.IPv4(127, 0, 0, 1),
		LocalPort:  0,
		DataSize:   dataSize,
		Iterations: iterations,
	}
	srv := servertcp.NewServer(cfg, servertcp.NewHandler(testLogger{t}, cfg, &server.Counters{}))
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
	return uint16(srv.Addr().(*net.TCPAddr).Port), cancel
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
	port, cancel := startEchoServer(t, 64, 20)
	defer cancel()

	tests := Tests{NetTools: testTools(t), Logger: testLogger{t}}
	params := sockbench.Params{
		Host:        "127.0.0.1",
		TCPPort:     port,
		DataSize:    64,
		Iterations:  20,
		IPVersion:   sockbench.IPv4,
		RecvTimeout: 2 * time.Second,
	}

	var last int
	samples, err := tests.RunEcho(params, func(completed int) { last = completed })
	if err != nil {
		t.Fatalf("RunEcho: %v", err)
	}
	if len(samples) != 20 {
		t.Fatalf("got %d samples, want 20", len(samples))
	}
	for i, s := range samples {
		if s <= 0 {
			t.Errorf("sample %d = %v, want positive duration", i, s)
		}
	}
	if last != 20 {
		t.Errorf("final progress = %d, want 20", last)
	}
}

func TestRunEchoKeepsSamplesOnEarlyClose(t *testing.T) {
	// Server hangs up after 5 rounds; the client keeps what it measured.
	port, cancel := startEchoServer(t, 64, 5)
	defer cancel()

	tests := Tests{NetTools: testTools(t), Logger: testLogger{t}}
	params := sockbench.Params{
		Host:        "127.0.0.1",
		TCPPort:     port,
		DataSize:    64,
		Iterations:  20,
		IPVersion:   sockbench.IPv4,
		RecvTimeout: 2 * time.Second,
	}

	samples, err := tests.RunEcho(params, func(int) {})
	if err != nil {
		t.Fatalf("RunEcho: %v", err)
	}
	if len(samples) != 5 {
		t.Fatalf("got %d samples, want 5", len(samples))
	}
}

func TestRunEchoConnectFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := uint16(l.Addr().(*net.TCPAddr).Port)
	l.Close()

	tests := Tests{NetTools: testTools(t), Logger: testLogger{t}}
	params := sockbench.Params{
		Host:       "127.0.0.1",
		TCPPort:    port,
		DataSize:   64,
		Iterations: 5,
		IPVersion:  sockbench.IPv4,
	}

	if _, err := tests.RunEcho(params, func(int) {}); err == nil {
		t.Fatal("RunEcho against a closed port succeeded, want error")
	}
}
