package ircodec

// fieldSpec describes one field of a protocol's canonical textual form:
// its name, and how decode renders it (hexWidth nibbles of zero-padded
// hex, or decimal if hexWidth is 0).
type fieldSpec struct {
	name     string
	hexWidth int
}

// protocolSpec ties one protocol id to its encoder/decoder and its
// textual field layout, replacing the keyword-argument dispatch of the
// original implementation, which decouples the textual format from
// function parameter names.
type protocolSpec struct {
	id ProtocolID

	// encodeFields lists the required field names Encode accepts for
	// this protocol; optional ones are listed in optionalFields.
	encodeFields []string
	// optionalFields are accepted but may be omitted on encode (the
	// codec fills in a default, e.g. RC5/RC6's toggle).
	optionalFields map[string]bool

	// decodeFields lists, in emission order, the fields Decode renders
	// into canonical text.
	decodeFields []fieldSpec

	encode func(Fields) ([]int, error)
	decode func([]int) (Fields, error)
}

// protocolOrder is the dispatcher's fixed preference order (§4.6).
var protocolOrder = []ProtocolID{
	ProtocolNEC42, ProtocolNEC, ProtocolNEC42Ext, ProtocolNECExt,
	ProtocolRC5, ProtocolRC6, ProtocolSamsung,
	ProtocolSIRC20, ProtocolSIRC15, ProtocolSIRC,
	ProtocolKaseikyo, ProtocolRCA, ProtocolPioneer, ProtocolAC,
}

var protocols = map[ProtocolID]*protocolSpec{
	ProtocolNEC42: {
		id:           ProtocolNEC42,
		encodeFields: []string{"addr", "cmd"},
		decodeFields: []fieldSpec{{"addr", 4}, {"cmd", 2}},
		encode:       nec42Encode,
		decode:       nec42Decode,
	},
	ProtocolNEC: {
		id:           ProtocolNEC,
		encodeFields: []string{"addr", "cmd"},
		decodeFields: []fieldSpec{{"addr", 2}, {"cmd", 2}},
		encode:       necEncode,
		decode:       necDecode,
	},
	ProtocolNEC42Ext: {
		id:           ProtocolNEC42Ext,
		encodeFields: []string{"addr", "cmd"},
		decodeFields: []fieldSpec{{"addr", 4}, {"cmd", 4}},
		encode:       nec42ExtEncode,
		decode:       nec42ExtDecode,
	},
	ProtocolNECExt: {
		id:           ProtocolNECExt,
		encodeFields: []string{"addr", "cmd"},
		decodeFields: []fieldSpec{{"addr", 4}, {"cmd", 4}},
		encode:       necExtEncode,
		decode:       necExtDecode,
	},
	ProtocolRC5: {
		id:             ProtocolRC5,
		encodeFields:   []string{"addr", "cmd"},
		optionalFields: map[string]bool{"toggle": true},
		decodeFields:   []fieldSpec{{"addr", 2}, {"cmd", 2}},
		encode:         rc5Encode,
		decode:         rc5Decode,
	},
	ProtocolRC6: {
		id:             ProtocolRC6,
		encodeFields:   []string{"addr", "cmd"},
		optionalFields: map[string]bool{"toggle": true},
		decodeFields:   []fieldSpec{{"addr", 2}, {"cmd", 2}},
		encode:         rc6Encode,
		decode:         rc6Decode,
	},
	ProtocolSamsung: {
		id:           ProtocolSamsung,
		encodeFields: []string{"addr", "cmd"},
		decodeFields: []fieldSpec{{"addr", 2}, {"cmd", 2}},
		encode:       samsung32Encode,
		decode:       samsung32Decode,
	},
	ProtocolSIRC20: {
		id:           ProtocolSIRC20,
		encodeFields: []string{"addr", "cmd"},
		decodeFields: []fieldSpec{{"addr", 4}, {"cmd", 2}},
		encode:       sirc20Encode,
		decode:       sirc20Decode,
	},
	ProtocolSIRC15: {
		id:           ProtocolSIRC15,
		encodeFields: []string{"addr", "cmd"},
		decodeFields: []fieldSpec{{"addr", 2}, {"cmd", 2}},
		encode:       sirc15Encode,
		decode:       sirc15Decode,
	},
	ProtocolSIRC: {
		id:           ProtocolSIRC,
		encodeFields: []string{"addr", "cmd"},
		decodeFields: []fieldSpec{{"addr", 2}, {"cmd", 2}},
		encode:       sircEncode,
		decode:       sircDecode,
	},
	ProtocolKaseikyo: {
		id:           ProtocolKaseikyo,
		encodeFields: []string{"vendor_id", "genre1", "genre2", "data", "id"},
		decodeFields: []fieldSpec{{"vendor_id", 4}, {"genre1", 1}, {"genre2", 1}, {"data", 3}, {"id", 1}},
		encode:       kaseikyoEncode,
		decode:       kaseikyoDecode,
	},
	ProtocolRCA: {
		id:           ProtocolRCA,
		encodeFields: []string{"addr", "cmd"},
		decodeFields: []fieldSpec{{"addr", 2}, {"cmd", 2}},
		encode:       rcaEncode,
		decode:       rcaDecode,
	},
	ProtocolPioneer: {
		id:           ProtocolPioneer,
		encodeFields: []string{"addr", "cmd"},
		decodeFields: []fieldSpec{{"addr", 2}, {"cmd", 2}},
		encode:       pioneerEncode,
		decode:       pioneerDecode,
	},
	ProtocolAC: {
		id:             ProtocolAC,
		encodeFields:   []string{"addr", "cmd"},
		optionalFields: map[string]bool{"double": true},
		// hexWidth 0 marks a decimal field: AC's "double" is emitted as
		// a plain 0/1, not hex.
		decodeFields: []fieldSpec{{"addr", 2}, {"cmd", 4}, {"double", 0}},
		encode:       acEncode,
		decode:       acDecode,
	},
}
