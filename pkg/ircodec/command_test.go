package ircodec

import "testing"

func TestEncodeCommandRaw(t *testing.T) {
	cmd := Command{Protocol: ProtocolRaw, Raw: []int{9000, 4500, 560}}
	pulses, err := EncodeCommand(cmd)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(pulses) != 3 {
		t.Fatalf("length = %d, want 3", len(pulses))
	}
}

func TestEncodeCommandRejectsEmptyRaw(t *testing.T) {
	cmd := Command{Protocol: ProtocolRaw}
	if _, err := EncodeCommand(cmd); err == nil {
		t.Fatal("expected error for empty raw command")
	}
}

func TestEncodeCommandRejectsUnknownProtocol(t *testing.T) {
	cmd := Command{Protocol: ProtocolID("bogus")}
	if _, err := EncodeCommand(cmd); err == nil {
		t.Fatal("expected error for unknown protocol")
	}
}

func TestDecodeCommandRawFallback(t *testing.T) {
	cmd := DecodeCommand([]int{100, 200, 300, 400, 500})
	if cmd.Protocol != ProtocolRaw {
		t.Fatalf("protocol = %s, want raw", cmd.Protocol)
	}
	if len(cmd.Raw) != 5 {
		t.Fatalf("raw length = %d, want 5", len(cmd.Raw))
	}
}
