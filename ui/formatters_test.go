package ui

import (
	"testing"
	"time"
)

func TestDurationToString(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{500 * time.Nanosecond, "500.000ns"},
		{42 * time.Microsecond, "42.000us"},
		{1500 * time.Microsecond, "1.500ms"},
		{2 * time.Second, "2.000s"},
		{90 * time.Second, "1m30s"},
	}
	for _, tt := range tests {
		if got := DurationToString(tt.in); got != tt.want {
			t.Errorf("DurationToString(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMillisToString(t *testing.T) {
	if got := MillisToString(1500 * time.Microsecond); got != "1.500" {
		t.Errorf("MillisToString = %q, want \"1.500\"", got)
	}
}

func TestUnitToNumber(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"1KB", 1024},
		{"1K", 1024},
		{"4kb", 4096},
		{"2MB", 2 * 1024 * 1024},
		{"1GB", 1024 * 1024 * 1024},
		{"512", 512},
		{"512B", 512},
		{"0", 0},
		{"-1KB", 0},
		{"1XB", 0},
		{"junk", 0},
	}
	for _, tt := range tests {
		if got := UnitToNumber(tt.in); got != tt.want {
			t.Errorf("UnitToNumber(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNumberToUnit(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{999, "999"},
		{1000, "1K"},
		{1500, "1.50K"},
		{2 * MEGA, "2M"},
		{3 * GIGA, "3G"},
	}
	for _, tt := range tests {
		if got := NumberToUnit(tt.in); got != tt.want {
			t.Errorf("NumberToUnit(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateStringFromEnd("benchmark-host-name", 9); got != "benchmark..." {
		t.Errorf("TruncateStringFromEnd = %q", got)
	}
	if got := TruncateStringFromStart("benchmark-host-name", 9); got != "...t-name" {
		t.Errorf("TruncateStringFromStart = %q", got)
	}
	if got := TruncateStringFromEnd("short", 9); got != "short" {
		t.Errorf("TruncateStringFromEnd kept = %q, want unchanged", got)
	}
}

func TestBytesToRate(t *testing.T) {
	if got := BytesToRate(125); got != "1K" {
		t.Errorf("BytesToRate(125) = %q, want \"1K\"", got)
	}
}
