package ircodec

const rc6T = 444

var rc6Start = []bool{true, true, true, true, true, true, false, false}

// rc6Encode encodes the RC6 mode-0 frame: 1-bit start, 3-bit mode
// (always 0), 1-bit toggle, 8-bit address, 8-bit command.
func rc6Encode(f Fields) ([]int, error) {
	addr, cmd, err := fieldsU8U8(f, "addr", "cmd")
	if err != nil {
		return nil, err
	}
	toggle, ok := f["toggle"]
	if !ok {
		toggle = nextToggle()
	}

	const mode = 0
	values := []byte{
		byte(1<<7 | (mode&0b111)<<4 | uint64(toggle&1)<<3 | (uint64(addr) >> 5)),
		byte((uint64(addr)&0x1F)<<3 | (uint64(cmd) >> 5)),
		byte((uint64(cmd) & 0x1F) << 3),
	}
	return ManchesterEncode(values, rc6T, 21, rc6Start, true, []int{4}, true)
}

func rc6Decode(pulses []int) (Fields, error) {
	data, err := ManchesterDecode(pulses, rc6T, 21, rc6Start, true, []int{4}, true)
	if err != nil {
		return nil, err
	}
	start := data[0] >> 7
	if start != 1 {
		return nil, domainf("invalid start bit")
	}
	mode := (data[0] >> 4) & 0b111
	if mode != 0 {
		return nil, domainf("invalid mode for RC6")
	}
	addr := (uint64(data[0]&0b111) << 5) | uint64(data[1]>>3)
	cmd := (uint64(data[1]&0b111) << 5) | uint64(data[2]>>3)
	return Fields{"addr": addr, "cmd": cmd}, nil
}
