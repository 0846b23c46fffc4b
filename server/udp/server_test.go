package udp

import (
	"bytes"
	"context"
	"net"
	"os"
	"testing"
	"time"

	"github.com/sockbench/sockbench/server"
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

func startTestServer(t *testing.T, dataSize int) (*Server, *server.Counters, context.CancelFunc) {
	t.Helper()

	cfg := &server.Config{
		IPVersion: sockbench.IPv4,
		LocalIP:   net.IPv4(127, 0, 0, 1),
		LocalPort: 0,
		DataSize:  dataSize,
	}
	counters := &server.Counters{}
	srv := NewServer(cfg, NewHandler(testLogger{t}, cfg, counters))
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ctx)
	}()

	select {
	case <-srv.Ready():
	case err := <-errCh:
		cancel()
		t.Fatalf("server failed to start: %v", err)
	case <-time.After(2 * time.Second):
		cancel()
		t.Fatal("server never became ready")
	}
	return srv, counters, cancel
}

func dialTestServer(t *testing.T, srv *Server) *net.UDPConn {
	t.Helper()
	conn, err := net.DialUDP("udp4", nil, srv.Addr().(*net.UDPAddr))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func TestDatagramEcho(t *testing.T) {
	srv, counters, cancel := startTestServer(t, 32)
	defer cancel()

	conn := dialTestServer(t, srv)
	defer conn.Close()

	msg := bytes.Repeat([]byte{'x'}, 32)
	if _, err := conn.Write(msg); err != nil {
		t.Fatalf("write: %v", err)
	}

	reply := make([]byte, 64)
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, err := conn.Read(reply)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if n != 32 || !bytes.Equal(reply[:n], msg) {
		t.Fatalf("echoed %d bytes %q, want %q", n, reply[:n], msg)
	}

	snap := counters.Snapshot()
	if snap.UDPEchoes != 1 {
		t.Errorf("UDPEchoes = %d, want 1", snap.UDPEchoes)
	}
}

func TestWrongSizeDatagramDropped(t *testing.T) {
	srv, counters, cancel := startTestServer(t, 32)
	defer cancel()

	conn := dialTestServer(t, srv)
	defer conn.Close()

	if _, err := conn.Write([]byte("short")); err != nil {
		t.Fatalf("write: %v", err)
	}

	reply := make([]byte, 64)
	_ = conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	if _, err := conn.Read(reply); !os.IsTimeout(err) {
		t.Fatalf("read = %v, want timeout (datagram silently dropped)", err)
	}

	deadline := time.Now().Add(time.Second)
	for counters.Snapshot().UDPDropped == 0 {
		if time.Now().After(deadline) {
			t.Fatal("UDPDropped never incremented")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestStopJoinsServeLoop(t *testing.T) {
	srv, _, cancel := startTestServer(t, 32)
	defer cancel()

	start := time.Now()
	srv.Stop()
	if elapsed := time.Since(start); elapsed > sockbench.ServerJoinTimeout+time.Second {
		t.Errorf("Stop took %v, want under the join bound", elapsed)
	}

	select {
	case <-srv.done:
	default:
		t.Error("serve loop still running after Stop")
	}
}
