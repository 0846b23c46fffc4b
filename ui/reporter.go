package ui

import (
	"fmt"

	"github.com/sockbench/sockbench/sockbench"
	"github.com/sockbench/sockbench/stats"
)

// Row pairs a protocol tag with its summary for the comparison table. A nil
// summary means the benchmark collected no samples; its row is skipped.
type Row struct {
	Protocol sockbench.Protocol
	Summary  *stats.Summary
}

// Reporter renders benchmark output for the client modes. All text
// rendering and comparative percentage math lives here, outside the
// measurement engine.
type Reporter struct {
	Iterations int
	DataSize   int
}

func NewReporter(iterations, dataSize int) *Reporter {
	return &Reporter{
		Iterations: iterations,
		DataSize:   dataSize,
	}
}

func (r *Reporter) PrintRunHeader(mode sockbench.Mode, host string) {
	fmt.Printf("\n%s SOCKET PERFORMANCE BENCHMARK\n", mode)
	fmt.Println("============================================================")
	fmt.Printf("Host: %s\n", host)
	fmt.Printf("Data size: %d bytes (%.1f KiB)\n", r.DataSize, float64(r.DataSize)/1024)
	fmt.Printf("Iterations: %d\n", r.Iterations)
	fmt.Println("============================================================")
}

// Progress is the observation point the client loops hit every ten
// iterations. It rewrites a single status line in place.
func (r *Reporter) Progress(protocol sockbench.Protocol, completed int) {
	percent := float64(completed) / float64(r.Iterations) * 100
	fmt.Printf("\r%s Progress: %5.1f%% (%d/%d)", protocol, percent, completed, r.Iterations)
	if completed == r.Iterations {
		fmt.Println()
	}
}

func (r *Reporter) PrintResult(row Row) {
	fmt.Println()
	if row.Summary == nil {
		fmt.Printf("No results to display for %s\n", row.Protocol)
		return
	}
	s := row.Summary
	fmt.Println("==================================================")
	fmt.Printf("%s SOCKET BENCHMARK RESULTS\n", row.Protocol)
	fmt.Println("==================================================")
	fmt.Printf("Data size per transfer: %d bytes\n", r.DataSize)
	fmt.Printf("Round trips completed: %d/%d\n", s.Samples, r.Iterations)
	fmt.Printf("Total data transferred: %.2f MB\n", s.TotalMB)
	fmt.Printf("Total time: %s ms\n", MillisToString(s.Total))
	fmt.Printf("Average time per transfer: %s ms\n", MillisToString(s.Avg))
	fmt.Printf("Min time: %s ms\n", MillisToString(s.Min))
	fmt.Printf("Max time: %s ms\n", MillisToString(s.Max))
	fmt.Printf("Standard deviation: %s ms\n", MillisToString(s.StdDev))
	fmt.Printf("Throughput: %.2f MB/s\n", s.Throughput)
	fmt.Println("==================================================")
}

// PrintComparison renders the side by side table plus the derived
// percentage analysis when both protocols produced a result.
func (r *Reporter) PrintComparison(rows []Row) {
	fmt.Println()
	fmt.Println("================================================================================")
	fmt.Println("BENCHMARK COMPARISON SUMMARY")
	fmt.Println("================================================================================")
	fmt.Printf("%-9s %15s %18s %15s %15s %15s\n",
		"Protocol", "Total Time (ms)", "Throughput (MB/s)", "Avg Time (ms)", "Min Time (ms)", "Max Time (ms)")
	fmt.Println("--------------------------------------------------------------------------------")

	valid := make([]Row, 0, len(rows))
	for _, row := range rows {
		if row.Summary == nil {
			continue
		}
		valid = append(valid, row)
		s := row.Summary
		fmt.Printf("%-9s %15s %18.2f %15s %15s %15s\n",
			row.Protocol.String(),
			MillisToString(s.Total),
			s.Throughput,
			MillisToString(s.Avg),
			MillisToString(s.Min),
			MillisToString(s.Max))
	}
	fmt.Println("================================================================================")

	if len(valid) != 2 {
		return
	}
	r.printAnalysis(valid[0], valid[1])
}

func (r *Reporter) printAnalysis(a, b Row) {
	fmt.Println("\nPERFORMANCE ANALYSIS:")
	fmt.Println("----------------------------------------")

	sa, sb := a.Summary, b.Summary
	if sb.Total < sa.Total {
		diff := float64(sa.Total-sb.Total) / float64(sa.Total) * 100
		fmt.Printf("%s is %.1f%% faster than %s\n", b.Protocol, diff, a.Protocol)
	} else {
		diff := float64(sb.Total-sa.Total) / float64(sb.Total) * 100
		fmt.Printf("%s is %.1f%% faster than %s\n", a.Protocol, diff, b.Protocol)
	}

	if sb.Throughput > sa.Throughput {
		diff := (sb.Throughput - sa.Throughput) / sa.Throughput * 100
		fmt.Printf("%s has %.1f%% higher throughput than %s\n", b.Protocol, diff, a.Protocol)
	} else {
		diff := (sa.Throughput - sb.Throughput) / sb.Throughput * 100
		fmt.Printf("%s has %.1f%% higher throughput than %s\n", a.Protocol, diff, b.Protocol)
	}

	// Spread of the observed round trips relative to the mean; the smaller
	// spread is the more consistent transport.
	spreadA := float64(sa.Max-sa.Min) / float64(sa.Avg) * 100
	spreadB := float64(sb.Max-sb.Min) / float64(sb.Avg) * 100
	if spreadA < spreadB {
		fmt.Printf("%s has %.1f%% more consistent performance\n", a.Protocol, spreadB-spreadA)
	} else {
		fmt.Printf("%s has %.1f%% more consistent performance\n", b.Protocol, spreadA-spreadB)
	}
}
