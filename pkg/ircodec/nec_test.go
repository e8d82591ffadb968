package ircodec

import "testing"

func TestNECEncodeExactSequence(t *testing.T) {
	pulses, err := Encode("nec:addr=0x04,cmd=0x08")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []int{9000, 4500, 560, 560, 560, 560, 560, 1690}
	if len(pulses) != 67 {
		t.Fatalf("length = %d, want 67", len(pulses))
	}
	for i, w := range want {
		if pulses[i] != w {
			t.Errorf("pulse %d = %d, want %d", i, pulses[i], w)
		}
	}
}

func TestNECRoundTrip(t *testing.T) {
	pulses, err := Encode("nec:addr=0x04,cmd=0x08")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got := Decode(pulses)
	if got != "nec:addr=0x04,cmd=0x08" {
		t.Errorf("decode = %q, want nec:addr=0x04,cmd=0x08", got)
	}
}

func TestNECDecodeRejectsBadIntegrity(t *testing.T) {
	data := []byte{0x04, 0x04, 0x08, 0x08}
	pulses, err := DistanceEncode(data, necLeadingPulse, necLeadingGap, necPulse, necGap0, necGap1, -1, false)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := necDecode(pulses); err == nil {
		t.Fatal("expected integrity check failure")
	}
}

func TestNEC42RoundTrip(t *testing.T) {
	pulses, err := Encode("nec42:addr=0x1234,cmd=0xAB")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got := Decode(pulses)
	if got != "nec42:addr=0x1234,cmd=0xAB" {
		t.Errorf("decode = %q, want nec42:addr=0x1234,cmd=0xAB", got)
	}
}

func TestNECExtRoundTrip(t *testing.T) {
	fields := Fields{"addr": 0x1234, "cmd": 0x5678}
	pulses, err := EncodeCommand(Command{Protocol: ProtocolNECExt, Fields: fields})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	cmd := DecodeCommand(pulses)
	if cmd.Protocol != ProtocolNECExt {
		t.Fatalf("protocol = %s, want nec-ext", cmd.Protocol)
	}
	if cmd.Fields["addr"] != 0x1234 || cmd.Fields["cmd"] != 0x5678 {
		t.Errorf("fields = %+v", cmd.Fields)
	}
}

func TestNEC42ExtRoundTrip(t *testing.T) {
	fields := Fields{"addr": 0x3FFFFFF, "cmd": 0xFFFF}
	pulses, err := EncodeCommand(Command{Protocol: ProtocolNEC42Ext, Fields: fields})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	cmd := DecodeCommand(pulses)
	if cmd.Protocol != ProtocolNEC42Ext {
		t.Fatalf("protocol = %s, want nec42-ext", cmd.Protocol)
	}
	if cmd.Fields["addr"] != 0x3FFFFFF || cmd.Fields["cmd"] != 0xFFFF {
		t.Errorf("fields = %+v", cmd.Fields)
	}
}

func TestNECEncodeMissingField(t *testing.T) {
	if _, err := Encode("nec:addr=0x04"); err == nil {
		t.Fatal("expected error for missing cmd field")
	}
}

func TestNECEncodeUnknownField(t *testing.T) {
	if _, err := Encode("nec:addr=0x04,cmd=0x08,bogus=1"); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestNECEncodeOutOfRange(t *testing.T) {
	if _, err := Encode("nec:addr=0x104,cmd=0x08"); err == nil {
		t.Fatal("expected error for out-of-range addr")
	}
}
