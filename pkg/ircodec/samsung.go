package ircodec

const (
	samsungLeadingPulse = 4500
	samsungLeadingGap   = 4500
	samsungPulse        = 550
	samsungGap0         = 550
	samsungGap1         = 1650
)

// samsung32Encode encodes the Samsung32 frame: addr, addr, cmd, ~cmd.
func samsung32Encode(f Fields) ([]int, error) {
	addr, cmd, err := fieldsU8U8(f, "addr", "cmd")
	if err != nil {
		return nil, err
	}
	data := []byte{addr, addr, cmd, cmd ^ 0xFF}
	return DistanceEncode(data, samsungLeadingPulse, samsungLeadingGap, samsungPulse, samsungGap0, samsungGap1, -1, false)
}

func samsung32Decode(pulses []int) (Fields, error) {
	data, err := DistanceDecode(pulses, samsungLeadingPulse, samsungLeadingGap, samsungPulse, samsungGap0, samsungGap1, 32, false)
	if err != nil {
		return nil, err
	}
	if data[0] != data[1] {
		return nil, domainf("invalid address")
	}
	if data[2] != data[3]^0xFF {
		return nil, domainf("invalid data")
	}
	return Fields{"addr": uint64(data[0]), "cmd": uint64(data[2])}, nil
}
