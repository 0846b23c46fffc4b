package tools

import (
	"testing"

	"github.com/sockbench/sockbench/sockbench"
)

func TestRemoteAddr(t *testing.T) {
	nt, err := NewTools(sockbench.IPv4, "127.0.0.1")
	if err != nil {
		t.Fatalf("NewTools: %v", err)
	}
	if got := nt.RemoteAddr(8888); got != "127.0.0.1:8888" {
		t.Errorf("RemoteAddr = %q, want \"127.0.0.1:8888\"", got)
	}
}

func TestRemoteAddrIPv6Brackets(t *testing.T) {
	// An unbracketed v6 address ("::1:8888") is rejected by net.Dial.
	nt, err := NewTools(sockbench.IPv6, "::1")
	if err != nil {
		t.Fatalf("NewTools: %v", err)
	}
	if got := nt.RemoteAddr(8888); got != "[::1]:8888" {
		t.Errorf("RemoteAddr = %q, want \"[::1]:8888\"", got)
	}
}

func TestNewToolsVersionDetection(t *testing.T) {
	nt, err := NewTools(sockbench.IPAny, "127.0.0.1")
	if err != nil {
		t.Fatalf("NewTools: %v", err)
	}
	if nt.IPVersion != sockbench.IPv4 {
		t.Errorf("IPVersion = %v, want IPv4", nt.IPVersion)
	}

	nt, err = NewTools(sockbench.IPAny, "::1")
	if err != nil {
		t.Fatalf("NewTools: %v", err)
	}
	if nt.IPVersion != sockbench.IPv6 {
		t.Errorf("IPVersion = %v, want IPv6", nt.IPVersion)
	}
}
