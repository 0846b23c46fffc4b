package bench

import (
	"github.com/sockbench/sockbench/sockbench"
	"github.com/sockbench/sockbench/stats"
)

// Run binds a protocol tag to its result summary. A nil Summary means the
// client never completed a single round trip. Created once per protocol
// leg and never mutated afterwards.
type Run struct {
	Protocol sockbench.Protocol
	Summary  *stats.Summary
}
