package ircodec

// ProtocolID names one of the protocols this package knows, or "raw" for
// a literal pulse-train command.
type ProtocolID string

const (
	ProtocolNEC42    ProtocolID = "nec42"
	ProtocolNEC      ProtocolID = "nec"
	ProtocolNEC42Ext ProtocolID = "nec42-ext"
	ProtocolNECExt   ProtocolID = "nec-ext"
	ProtocolRC5      ProtocolID = "rc5"
	ProtocolRC6      ProtocolID = "rc6"
	ProtocolSamsung  ProtocolID = "samsung32"
	ProtocolSIRC20   ProtocolID = "sirc20"
	ProtocolSIRC15   ProtocolID = "sirc15"
	ProtocolSIRC     ProtocolID = "sirc"
	ProtocolKaseikyo ProtocolID = "kaseikyo"
	ProtocolRCA      ProtocolID = "rca"
	ProtocolPioneer  ProtocolID = "pioneer"
	ProtocolAC       ProtocolID = "ac"
	ProtocolRaw      ProtocolID = "raw"
)

// Fields is a named-field record for one protocol command, e.g.
// {"addr": 0x04, "cmd": 0x08}.
type Fields map[string]uint64

// Command is a tagged variant: either a named protocol with its fields,
// or a raw pulse train. This is the typed alternative to the textual
// format described in the design notes — build one directly to skip
// string formatting/parsing.
type Command struct {
	Protocol ProtocolID
	Fields   Fields
	Raw      []int
}

// EncodeCommand is the typed counterpart to Encode: it skips the
// "k=v,..." text format entirely.
func EncodeCommand(cmd Command) ([]int, error) {
	if cmd.Protocol == ProtocolRaw {
		if len(cmd.Raw) == 0 {
			return nil, domainf("raw command has no pulses")
		}
		return append([]int(nil), cmd.Raw...), nil
	}
	spec, ok := protocols[cmd.Protocol]
	if !ok {
		return nil, domainf("unknown format: %s", cmd.Protocol)
	}
	return spec.encode(cmd.Fields)
}

// DecodeCommand is the typed counterpart to Decode: same dispatch order
// and raw: fallback, but returns a Command instead of formatted text.
func DecodeCommand(pulses []int) Command {
	for _, id := range protocolOrder {
		spec := protocols[id]
		fields, err := spec.decode(pulses)
		if err != nil {
			continue
		}
		return Command{Protocol: id, Fields: fields}
	}
	raw := append([]int(nil), pulses...)
	if len(raw) > 0 && len(raw)%2 == 0 {
		raw = raw[:len(raw)-1]
	}
	return Command{Protocol: ProtocolRaw, Raw: raw}
}
