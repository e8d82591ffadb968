package wireless

import (
	"context"
	"testing"

	"github.com/edgeflow/irflow/internal/node"
)

func TestIRExecutorEncode(t *testing.T) {
	e := NewIRExecutor().(*IRExecutor)
	if err := e.Init(map[string]interface{}{"protocol": "nec"}); err != nil {
		t.Fatalf("init: %v", err)
	}

	msg := node.Message{
		Type: node.MessageTypeData,
		Payload: map[string]interface{}{
			"addr": float64(0x04),
			"cmd":  float64(0x08),
		},
	}

	out, err := e.Execute(context.Background(), msg)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	pulses, ok := out.Payload["pulses"].([]interface{})
	if !ok {
		t.Fatalf("expected pulses in payload, got %+v", out.Payload)
	}
	if len(pulses) != 67 {
		t.Errorf("pulse count = %d, want 67", len(pulses))
	}
}

func TestIRExecutorEncodeUnknownProtocol(t *testing.T) {
	e := NewIRExecutor().(*IRExecutor)
	if err := e.Init(map[string]interface{}{"protocol": "bogus"}); err != nil {
		t.Fatalf("init: %v", err)
	}

	msg := node.Message{Payload: map[string]interface{}{"addr": float64(1), "cmd": float64(1)}}
	if _, err := e.Execute(context.Background(), msg); err == nil {
		t.Fatal("expected error for unknown protocol")
	}
}

func TestIRExecutorDecode(t *testing.T) {
	encoder := NewIRExecutor().(*IRExecutor)
	encoder.Init(map[string]interface{}{"protocol": "nec"})
	encoded, err := encoder.Execute(context.Background(), node.Message{
		Payload: map[string]interface{}{"operation": "encode", "addr": float64(0x04), "cmd": float64(0x08)},
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoder := NewIRExecutor().(*IRExecutor)
	decoder.Init(map[string]interface{}{"operation": "decode"})
	decoded, err := decoder.Execute(context.Background(), node.Message{
		Payload: map[string]interface{}{"pulses": encoded.Payload["pulses"]},
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if decoded.Payload["protocol"] != "nec" {
		t.Fatalf("protocol = %v, want nec", decoded.Payload["protocol"])
	}
	fields, ok := decoded.Payload["fields"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected fields map, got %+v", decoded.Payload)
	}
	if fields["addr"] != uint64(0x04) || fields["cmd"] != uint64(0x08) {
		t.Errorf("fields = %+v", fields)
	}
}

func TestIRExecutorDecodeRawFallback(t *testing.T) {
	e := NewIRExecutor().(*IRExecutor)
	e.Init(map[string]interface{}{"operation": "decode"})

	msg := node.Message{
		Payload: map[string]interface{}{
			"pulses": []interface{}{float64(100), float64(200), float64(300), float64(400)},
		},
	}
	out, err := e.Execute(context.Background(), msg)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out.Payload["protocol"] != "raw" {
		t.Fatalf("protocol = %v, want raw", out.Payload["protocol"])
	}
	raw, ok := out.Payload["raw_timings"].([]interface{})
	if !ok || len(raw) != 3 {
		t.Fatalf("raw_timings = %+v, want 3 entries", out.Payload["raw_timings"])
	}
}

func TestIRExecutorEncodeRawRequiresTimings(t *testing.T) {
	e := NewIRExecutor().(*IRExecutor)
	e.Init(map[string]interface{}{"protocol": "raw"})

	msg := node.Message{Payload: map[string]interface{}{}}
	if _, err := e.Execute(context.Background(), msg); err == nil {
		t.Fatal("expected error for missing raw_timings")
	}
}

func TestIRExecutorCleanup(t *testing.T) {
	e := NewIRExecutor().(*IRExecutor)
	if err := e.Cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
}
