package server

import (
	echoserver "github.com/sockbench/sockbench/server"

	"github.com/sockbench/sockbench/ui"
)

const noValue = "--  "

// activityRows converts a per-interval counter delta into display rows,
// one per protocol with any traffic.
func activityRows(diff echoserver.Snapshot, seconds uint64) [][]string {
	if seconds == 0 {
		seconds = 1
	}

	var rows [][]string
	if diff.TCPConnections > 0 || diff.TCPRounds > 0 {
		rows = append(rows, []string{
			"TCP",
			ui.NumberToUnit(diff.TCPConnections / seconds),
			ui.NumberToUnit(diff.TCPRounds / seconds),
			ui.BytesToRate(diff.TCPBytes / seconds),
			noValue,
		})
	}
	if diff.UDPEchoes > 0 || diff.UDPDropped > 0 {
		rows = append(rows, []string{
			"UDP",
			noValue,
			ui.NumberToUnit(diff.UDPEchoes / seconds),
			ui.BytesToRate(diff.UDPBytes / seconds),
			ui.NumberToUnit(diff.UDPDropped / seconds),
		})
	}
	return rows
}

var activityHeader = []string{"Proto", "Conn/s", "Echo/s", "Bits/s", "Drop/s"}
