package udp

import (
	"os"
	"time"

	"github.com/sockbench/sockbench/client/tools"
	"github.com/sockbench/sockbench/sockbench"
)

type Tests struct {
	NetTools *tools.Tools
	Logger   sockbench.Logger
}

// RunEcho drives the datagram benchmark loop. Unlike TCP, a receive
// timeout only costs that iteration its sample: the datagram may simply
// be lost, so the loop warns and moves on to the next round trip.
func (t Tests) RunEcho(params sockbench.Params, progress func(completed int)) ([]time.Duration, error) {
	conn, err := t.NetTools.DialUDP()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	raddr, err := t.NetTools.UDPRemoteAddr(params.UDPPort)
	if err != nil {
		return nil, err
	}

	t.Logger.Info("UDP client sending to %s", raddr)

	payload := params.Payload()
	recv := make([]byte, params.DataSize)
	samples := make([]time.Duration, 0, params.Iterations)

	for i := 0; i < params.Iterations; i++ {
		start := time.Now()

		if _, err := conn.WriteToUDP(payload, raddr); err != nil {
			t.Logger.Error("error sending datagram at iteration %d: %v", i, err)
			break
		}

		_ = conn.SetReadDeadline(time.Now().Add(params.ReadTimeout()))
		n, _, err := conn.ReadFromUDP(recv)
		if err != nil {
			if os.IsTimeout(err) {
				t.Logger.Error("no reply within %v at iteration %d", params.ReadTimeout(), i)
			} else {
				t.Logger.Error("error receiving datagram at iteration %d: %v", i, err)
				break
			}
		} else {
			samples = append(samples, time.Since(start))
			if n != params.DataSize {
				t.Logger.Error("received %d bytes, expected %d", n, params.DataSize)
			}
		}

		if (i+1)%10 == 0 || i+1 == params.Iterations {
			progress(i + 1)
		}

		time.Sleep(time.Millisecond)
	}

	return samples, nil
}
