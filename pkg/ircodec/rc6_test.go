package ircodec

import "testing"

func TestRC6RoundTrip(t *testing.T) {
	pulses, err := Encode("rc6:addr=0x10,cmd=0x20,toggle=1")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	cmd := DecodeCommand(pulses)
	if cmd.Protocol != ProtocolRC6 {
		t.Fatalf("protocol = %s, want rc6", cmd.Protocol)
	}
	if cmd.Fields["addr"] != 0x10 || cmd.Fields["cmd"] != 0x20 {
		t.Errorf("fields = %+v", cmd.Fields)
	}
}

func TestRC6DecodeRejectsNonZeroMode(t *testing.T) {
	values := []byte{
		byte(1<<7 | (1&0b111)<<4 | 0<<3 | 0),
		0,
		0,
	}
	pulses, err := ManchesterEncode(values, rc6T, 21, rc6Start, true, []int{4}, true)
	if err != nil {
		t.Fatalf("manchester encode: %v", err)
	}
	if _, err := rc6Decode(pulses); err == nil {
		t.Fatal("expected error for non-zero RC6 mode")
	}
}
