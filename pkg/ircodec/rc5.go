package ircodec

const (
	rc5T = 888
)

var rc5Start = []bool{true}

// rc5Encode encodes the RC5 frame: field bit (inverted 6th cmd bit for
// RC5X) + toggle bit + 5-bit address + 6-bit command.
func rc5Encode(f Fields) ([]int, error) {
	addr, err := fieldU(f, "addr", 0, 0x1F)
	if err != nil {
		return nil, err
	}
	cmd, err := fieldU(f, "cmd", 0, 0x7F)
	if err != nil {
		return nil, err
	}
	toggle, ok := f["toggle"]
	if !ok {
		toggle = nextToggle()
	}

	values := []byte{
		byte((((cmd << 1) & 0x80) ^ 0x80) | (toggle << 6) | ((addr & 0x1F) << 1) | ((cmd >> 5) & 1)),
		byte((cmd & 0x1F) << 3),
	}
	return ManchesterEncode(values, rc5T, 13, rc5Start, false, nil, true)
}

func rc5Decode(pulses []int) (Fields, error) {
	data, err := ManchesterDecode(pulses, rc5T, 13, rc5Start, false, nil, true)
	if err != nil {
		return nil, err
	}
	addr := uint64(data[0]>>1) & 0x1F
	cmd := (uint64(data[1]>>3) & 0x1F) | (uint64(data[0]&1) << 5)
	if data[0]&0x80 == 0 {
		// RC5X: field bit clear means the caller's 6th command bit was set.
		cmd |= 0x40
	}
	return Fields{"addr": addr, "cmd": cmd}, nil
}
