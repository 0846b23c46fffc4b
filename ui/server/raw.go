package server

import (
	"fmt"

	echoserver "github.com/sockbench/sockbench/server"
)

// RawUI is the line-oriented fallback display. It prints one block per
// paint interval and stays silent while the server is idle.
type RawUI struct {
	counters *echoserver.Counters
	prev     echoserver.Snapshot
}

func InitRawUI(counters *echoserver.Counters) *RawUI {
	return &RawUI{
		counters: counters,
		prev:     counters.Snapshot(),
	}
}

func (u *RawUI) Paint(seconds uint64) {
	cur := u.counters.Snapshot()
	diff := cur.Diff(u.prev)
	u.prev = cur

	if !diff.Active() {
		return
	}

	fmt.Println("-----------------------------------------------------------")
	fmt.Printf("%5s  %7s  %7s  %9s  %7s\n",
		activityHeader[0], activityHeader[1], activityHeader[2], activityHeader[3], activityHeader[4])
	for _, row := range activityRows(diff, seconds) {
		fmt.Printf("%5s  %7s  %7s  %9s  %7s\n", row[0], row[1], row[2], row[3], row[4])
	}
}

// Messages already reach stdout through the logger, so the fallback UI
// drops them instead of printing twice.
func (u *RawUI) AddInfoMsg(msg string) {
}

func (u *RawUI) AddErrorMsg(msg string) {
}
