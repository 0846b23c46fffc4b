package tcp

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/sockbench/sockbench/client/tools"
	"github.com/sockbench/sockbench/sockbench"
)

type Tests struct {
	NetTools *tools.Tools
	Logger   sockbench.Logger
}

// RunEcho drives the connection-oriented benchmark loop: write the fixed
// payload, read the echo, record the round trip. The connect failure is
// the only fatal error; everything after that terminates the loop early
// and keeps the samples collected so far.
func (t Tests) RunEcho(params sockbench.Params, progress func(completed int)) ([]time.Duration, error) {
	conn, err := t.NetTools.DialTCP(params.TCPPort)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	t.Logger.Info("TCP client connected to %s", t.NetTools.RemoteAddr(params.TCPPort))

	payload := params.Payload()
	recv := make([]byte, params.DataSize)
	samples := make([]time.Duration, 0, params.Iterations)

	for i := 0; i < params.Iterations; i++ {
		start := time.Now()

		_ = conn.SetWriteDeadline(time.Now().Add(sockbench.ReadWriteTimeout))
		if _, err := conn.Write(payload); err != nil {
			if os.IsTimeout(err) {
				t.Logger.Error("timeout sending data at iteration %d", i)
			} else {
				t.Logger.Error("error sending data at iteration %d: %v", i, err)
			}
			break
		}

		_ = conn.SetReadDeadline(time.Now().Add(params.ReadTimeout()))
		n, err := conn.Read(recv)
		if err != nil {
			// A failed read ends the leg without a sample. Even on EOF
			// the round trip never completed, so it is not measured.
			if errors.Is(err, io.EOF) {
				t.Logger.Info("server closed the connection at iteration %d", i)
			} else if os.IsTimeout(err) {
				t.Logger.Error("timeout receiving data at iteration %d", i)
			} else {
				t.Logger.Error("error receiving data at iteration %d: %v", i, err)
			}
			break
		}

		samples = append(samples, time.Since(start))

		if n != params.DataSize {
			t.Logger.Error("received %d bytes, expected %d", n, params.DataSize)
		}

		if (i+1)%10 == 0 || i+1 == params.Iterations {
			progress(i + 1)
		}

		// Brief pause so the loop does not just measure kernel buffer
		// turnaround.
		time.Sleep(time.Millisecond)
	}

	return samples, nil
}
