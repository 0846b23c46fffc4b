package server

import (
	"fmt"
	"os"
	"sync"

	tm "github.com/nsf/termbox-go"

	"github.com/sockbench/sockbench/config"
	"github.com/sockbench/sockbench/internal/plot"
	"github.com/sockbench/sockbench/internal/stats"
	echoserver "github.com/sockbench/sockbench/server"
	"github.com/sockbench/sockbench/ui"
)

const maxResultRows = 16

type Tui struct {
	h, w                               int
	resX, resY, resW                   int
	topVSplitX, topVSplitY, topVSplitH int
	statX, statY, statW                int
	msgX, msgY, msgW                   int
	botVSplitX, botVSplitY, botVSplitH int
	errX, errY, errW                   int
	res                                table
	results                            [][]string
	msg                                table
	msgRing                            []string
	err                                table
	errRing                            []string
	ringLock                           sync.RWMutex

	counters *echoserver.Counters
	prev     echoserver.Snapshot
	watcher  *stats.Watcher
}

func InitTui(counters *echoserver.Counters, watcher *stats.Watcher) (*Tui, error) {
	err := tm.Init()
	if err != nil {
		return nil, err
	}

	w, h := tm.Size()
	if h < 40 || w < 80 {
		tm.Close()
		return nil, fmt.Errorf("terminal too small (%dw x %dh), must be at least 80w x 40h", w, h)
	}

	tm.SetInputMode(tm.InputEsc | tm.InputMouse)
	tm.Clear(tm.ColorDefault, tm.ColorDefault)
	tm.Sync()
	tm.Flush()

	plotter := plot.GetPlotter()
	plotter.HideCursor()
	plotter.BlockWindowResize()

	tui := Tui{
		counters: counters,
		watcher:  watcher,
	}
	if counters != nil {
		tui.prev = counters.Snapshot()
	}
	botScnH := 8
	statScnW := 26
	tui.h = h
	tui.w = w
	tui.resX = 0
	tui.resY = 2
	tui.resW = w - statScnW
	tui.topVSplitX = tui.resW
	tui.topVSplitY = 1
	tui.topVSplitH = h - botScnH
	tui.statX = tui.topVSplitX + 1
	tui.statY = 2
	tui.statW = statScnW
	tui.msgX = 0
	tui.msgY = h - botScnH + 1
	tui.msgW = (w+1)/2 + 1
	tui.botVSplitX = tui.msgW
	tui.botVSplitY = h - botScnH
	tui.botVSplitH = botScnH
	tui.errX = tui.botVSplitX + 1
	tui.errY = h - botScnH + 1
	tui.errW = w - tui.msgW - 1
	tui.res = table{5, []int{7, 8, 8, 10, 8}, 0, 2, 0, tableJustifyRight, tableNoBorder}
	tui.results = make([][]string, 0)
	tui.msg = table{1, []int{tui.msgW}, tui.msgX, tui.msgY, 0, tableJustifyLeft, tableNoBorder}
	tui.msgRing = make([]string, botScnH-1)
	tui.err = table{1, []int{tui.errW}, tui.errX, tui.errY, 0, tableJustifyLeft, tableNoBorder}
	tui.errRing = make([]string, botScnH-1)

	go func() {
		for {
			switch ev := tm.PollEvent(); ev.Type {
			case tm.EventKey:
				if ev.Key == tm.KeyEsc || ev.Key == tm.KeyCtrlC {
					tm.Close()
					os.Exit(0)
				}
			case tm.EventResize:
			}
		}
	}()

	return &tui, nil
}

func (t *Tui) Paint(seconds uint64) {
	tm.Clear(tm.ColorDefault, tm.ColorDefault)
	defer tm.Flush()
	printCenterText(0, 0, t.w, "sockbench (Version: "+config.Version+")", tm.ColorBlack, tm.ColorWhite)
	printHLineText(t.resX, t.resY-1, t.resW, "Echo Activity")
	printHLineText(t.statX, t.statY-1, t.statW, "Statistics")
	printVLine(t.topVSplitX, t.topVSplitY, t.topVSplitH)

	printHLineText(t.msgX, t.msgY-1, t.msgW, "Messages")
	printHLineText(t.errX, t.errY-1, t.errW, "Errors")

	t.ringLock.Lock()
	t.msg.cr = 0
	for _, s := range t.msgRing {
		t.msg.addTblRow([]string{s})
	}

	t.err.cr = 0
	for _, s := range t.errRing {
		t.err.addTblRow([]string{s})
	}
	t.ringLock.Unlock()

	printVLine(t.botVSplitX, t.botVSplitY, t.botVSplitH)

	t.appendActivity(seconds)

	t.res.cr = 0
	t.res.addTblHdr()
	t.res.addTblRow(activityHeader)
	t.res.addTblSpr()
	for _, s := range t.results {
		t.res.addTblRow(s)
		t.res.addTblSpr()
	}

	t.paintNetStats(seconds)
}

// appendActivity rolls the latest counter delta into the results pane,
// keeping only the most recent rows.
func (t *Tui) appendActivity(seconds uint64) {
	if t.counters == nil {
		return
	}
	cur := t.counters.Snapshot()
	diff := cur.Diff(t.prev)
	t.prev = cur

	if !diff.Active() {
		return
	}
	t.results = append(t.results, activityRows(diff, seconds)...)
	if len(t.results) > maxResultRows {
		t.results = t.results[len(t.results)-maxResultRows:]
	}
}

func (t *Tui) paintNetStats(seconds uint64) {
	if t.watcher == nil {
		return
	}
	prevStats, curStats := t.watcher.Last()
	if len(curStats.NetDevStats) == 0 {
		return
	}

	x := t.statX
	w := t.statW
	y := t.statY
	for _, ns := range curStats.NetDevStats {
		nsDiff := stats.GetNetDevStatDiff(ns, prevStats)
		printText(x, y, w, fmt.Sprintf("if: %s", ns.InterfaceName), tm.ColorWhite, tm.ColorBlack)
		y++
		printText(x, y, w, fmt.Sprintf("Tx %sbps", ui.BytesToRate(nsDiff.TxBytes/seconds)), tm.ColorWhite, tm.ColorBlack)
		bw := nsDiff.TxBytes / seconds * 8
		printUsageBar(x+14, y, 10, bw, ui.KILO, tm.ColorYellow)
		y++
		printText(x, y, w, fmt.Sprintf("Rx %sbps", ui.BytesToRate(nsDiff.RxBytes/seconds)), tm.ColorWhite, tm.ColorBlack)
		bw = nsDiff.RxBytes / seconds * 8
		printUsageBar(x+14, y, 10, bw, ui.KILO, tm.ColorGreen)
		y++
		printText(x, y, w, fmt.Sprintf("Tx %spps", ui.NumberToUnit(nsDiff.TxPkts/seconds)), tm.ColorWhite, tm.ColorBlack)
		printUsageBar(x+14, y, 10, nsDiff.TxPkts/seconds, 10, tm.ColorWhite)
		y++
		printText(x, y, w, fmt.Sprintf("Rx %spps", ui.NumberToUnit(nsDiff.RxPkts/seconds)), tm.ColorWhite, tm.ColorBlack)
		printUsageBar(x+14, y, 10, nsDiff.RxPkts/seconds, 10, tm.ColorCyan)
		y++
		printText(x, y, w, "-------------------------", tm.ColorDefault, tm.ColorDefault)
		y++
	}
	printText(x, y, w,
		fmt.Sprintf("Tcp Retrans: %s",
			ui.NumberToUnit((curStats.TCPStats.SegRetrans-prevStats.TCPStats.SegRetrans)/seconds)),
		tm.ColorDefault, tm.ColorDefault)
}

func (t *Tui) AddInfoMsg(msg string) {
	t.ringLock.Lock()
	t.msgRing = addToRing(t.msgRing, ui.TruncateStringFromEnd(msg, t.msgW-1))
	t.ringLock.Unlock()
}

func (t *Tui) AddErrorMsg(msg string) {
	t.ringLock.Lock()
	t.errRing = addToRing(t.errRing, ui.TruncateStringFromEnd(msg, t.errW-1))
	t.ringLock.Unlock()
}

func addToRing(ring []string, msg string) []string {
	copy(ring, ring[1:])
	ring[len(ring)-1] = msg
	return ring
}
