package ircodec

import "testing"

// Pioneer's decode mirrors the original implementation's field mapping,
// which reports the inverse of the address as cmd rather than re-reading
// the transmitted command byte (see pioneerDecode). This test pins that
// observed behavior.
func TestPioneerDecodeReportsAddressInverseAsCmd(t *testing.T) {
	fields, err := EncodeCommand(Command{Protocol: ProtocolPioneer, Fields: Fields{"addr": 0xA5, "cmd": 0x3C}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := pioneerDecode(fields)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["addr"] != 0xA5 {
		t.Errorf("addr = %#x, want 0xA5", got["addr"])
	}
	if got["cmd"] != 0xA5^0xFF {
		t.Errorf("cmd = %#x, want %#x", got["cmd"], 0xA5^0xFF)
	}
}

func TestPioneerDecodeRejectsBadXor(t *testing.T) {
	data := []byte{0xA5, 0xA5, 0x3C, 0x3C}
	pulses, err := DistanceEncode(data, pioneerLeadingPulse, pioneerLeadingGap, pioneerPulse, pioneerGap0, pioneerGap1, -1, false)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := pioneerDecode(pulses); err == nil {
		t.Fatal("expected xor check failure")
	}
}
