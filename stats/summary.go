// Package stats derives aggregate benchmark metrics from the ordered
// sequence of per-iteration round-trip durations collected by a client.
package stats

import (
	"fmt"
	"math"
	"time"
)

const MiB = 1024 * 1024

// Summary is the read-only aggregate for one protocol run. All duration
// fields are wall-clock; TotalBytes counts both directions of every
// completed round trip.
type Summary struct {
	Samples    int
	Total      time.Duration
	Avg        time.Duration
	Min        time.Duration
	Max        time.Duration
	StdDev     time.Duration
	TotalBytes uint64
	TotalMB    float64
	Throughput float64 // MB/s, 1 MB = 1048576 bytes
}

// NewSummary computes the aggregate over samples. It returns nil when no
// round trip completed; callers treat that as "no result" rather than a
// failure. The standard deviation uses the sample (n-1) formula and is
// zero for fewer than two samples.
func NewSummary(samples []time.Duration, dataSize int) *Summary {
	n := len(samples)
	if n == 0 {
		return nil
	}

	sum := int64(0)
	min := samples[0]
	max := samples[0]
	for _, d := range samples {
		sum += d.Nanoseconds()
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	total := time.Duration(sum)
	avg := time.Duration(sum / int64(n))

	stdDev := time.Duration(0)
	if n > 1 {
		mean := float64(sum) / float64(n)
		sq := float64(0)
		for _, d := range samples {
			diff := float64(d.Nanoseconds()) - mean
			sq += diff * diff
		}
		stdDev = time.Duration(math.Sqrt(sq / float64(n-1)))
	}

	// Each completed iteration moves dataSize bytes out and dataSize back.
	totalBytes := uint64(n) * uint64(dataSize) * 2
	totalMB := float64(totalBytes) / MiB
	throughput := float64(0)
	if total > 0 {
		throughput = totalMB / total.Seconds()
	}

	return &Summary{
		Samples:    n,
		Total:      total,
		Avg:        avg,
		Min:        min,
		Max:        max,
		StdDev:     stdDev,
		TotalBytes: totalBytes,
		TotalMB:    totalMB,
		Throughput: throughput,
	}
}

func (s *Summary) String() string {
	if s == nil {
		return "no result"
	}
	return fmt.Sprintf("samples: %d, total: %.2fms, avg: %.3fms, min: %.3fms, max: %.3fms, stddev: %.3fms, throughput: %.2fMB/s",
		s.Samples,
		float64(s.Total)/float64(time.Millisecond),
		float64(s.Avg)/float64(time.Millisecond),
		float64(s.Min)/float64(time.Millisecond),
		float64(s.Max)/float64(time.Millisecond),
		float64(s.StdDev)/float64(time.Millisecond),
		s.Throughput)
}
