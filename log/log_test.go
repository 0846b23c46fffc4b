package log

import (
	"encoding/json"
	"testing"

	"github.com/sockbench/sockbench/sockbench"
)

func TestLogLevelJSON(t *testing.T) {
	out, err := json.Marshal(NewMessage(LevelError, "boom"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["Level"] != "ERROR" {
		t.Errorf("Level = %v, want \"ERROR\"", decoded["Level"])
	}
	if decoded["Message"] != "boom" {
		t.Errorf("Message = %v, want \"boom\"", decoded["Message"])
	}
}

func TestResultLogRoundTrip(t *testing.T) {
	record := NewResultLog(sockbench.TCP, "10.0.0.1", true, map[string]int{"Samples": 7})
	out, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded ResultLog
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Protocol != "TCP" || decoded.Remote != "10.0.0.1" || !decoded.Success {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.Timestamp == "" {
		t.Error("Timestamp is empty")
	}
}
