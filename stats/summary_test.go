package stats

import (
	"math"
	"testing"
	"time"
)

func TestEmptySamples(t *testing.T) {
	if s := NewSummary(nil, 1024); s != nil {
		t.Fatalf("expected nil summary for empty samples, got %+v", s)
	}
	if s := NewSummary([]time.Duration{}, 1024); s != nil {
		t.Fatalf("expected nil summary for empty slice, got %+v", s)
	}
}

func TestSingleSample(t *testing.T) {
	s := NewSummary([]time.Duration{2 * time.Millisecond}, 1024)
	if s == nil {
		t.Fatal("expected a summary for one sample")
	}
	if s.Samples != 1 {
		t.Errorf("sample count: got %d, want 1", s.Samples)
	}
	if s.StdDev != 0 {
		t.Errorf("stddev for one sample must be 0, got %v", s.StdDev)
	}
	if s.Min != 2*time.Millisecond || s.Max != 2*time.Millisecond || s.Avg != 2*time.Millisecond {
		t.Errorf("min/max/avg mismatch: %v %v %v", s.Min, s.Max, s.Avg)
	}
}

func TestAggregates(t *testing.T) {
	samples := []time.Duration{
		1 * time.Millisecond,
		2 * time.Millisecond,
		3 * time.Millisecond,
		4 * time.Millisecond,
	}
	s := NewSummary(samples, 1024)
	if s == nil {
		t.Fatal("expected a summary")
	}
	if s.Total != 10*time.Millisecond {
		t.Errorf("total: got %v, want 10ms", s.Total)
	}
	if s.Avg != 2500*time.Microsecond {
		t.Errorf("avg: got %v, want 2.5ms", s.Avg)
	}
	if s.Min != time.Millisecond {
		t.Errorf("min: got %v, want 1ms", s.Min)
	}
	if s.Max != 4*time.Millisecond {
		t.Errorf("max: got %v, want 4ms", s.Max)
	}
	// sample stddev of 1,2,3,4 ms is sqrt(5/3) ms
	want := math.Sqrt(5.0/3.0) * float64(time.Millisecond)
	got := float64(s.StdDev)
	if math.Abs(got-want) > float64(time.Microsecond) {
		t.Errorf("stddev: got %v, want ~%v", s.StdDev, time.Duration(want))
	}
}

func TestTotalBytesAndThroughput(t *testing.T) {
	// 50 completed round trips of 1KiB each way.
	samples := make([]time.Duration, 50)
	for i := range samples {
		samples[i] = time.Millisecond
	}
	s := NewSummary(samples, 1024)
	if s == nil {
		t.Fatal("expected a summary")
	}
	if s.TotalBytes != 50*1024*2 {
		t.Errorf("total bytes: got %d, want %d", s.TotalBytes, 50*1024*2)
	}
	wantMB := float64(50*1024*2) / MiB
	if math.Abs(s.TotalMB-wantMB) > 1e-9 {
		t.Errorf("total MB: got %f, want %f", s.TotalMB, wantMB)
	}
	// 50ms total for ~0.0977MB
	wantThroughput := wantMB / s.Total.Seconds()
	if math.Abs(s.Throughput-wantThroughput) > 1e-9 {
		t.Errorf("throughput: got %f, want %f", s.Throughput, wantThroughput)
	}
}

func TestTotalIsSampleSum(t *testing.T) {
	samples := []time.Duration{
		731 * time.Microsecond,
		1204 * time.Microsecond,
		987 * time.Microsecond,
	}
	sum := time.Duration(0)
	for _, d := range samples {
		sum += d
	}
	s := NewSummary(samples, 512)
	if s.Total != sum {
		t.Errorf("total: got %v, want %v", s.Total, sum)
	}
}
