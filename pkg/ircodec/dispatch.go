package ircodec

import (
	"fmt"
	"strconv"
	"strings"
)

// Attempt is one protocol's result when probed by TryDecode: either
// Fields is populated and Err is nil, or vice versa.
type Attempt struct {
	Protocol ProtocolID
	Fields   Fields
	Err      error
}

// Decode tries every protocol in the fixed preference order of §4.6,
// returning "protocol:k=v,..." for the first that accepts the pulse
// train. If none accept it, it falls back to a raw: literal (dropping
// the last entry first if the train has even length, to keep it odd).
// Decode never fails.
func Decode(pulses []int) string {
	for _, id := range protocolOrder {
		spec := protocols[id]
		fields, err := spec.decode(pulses)
		if err != nil {
			continue
		}
		return string(id) + ":" + formatFields(spec.decodeFields, fields)
	}
	return rawText(pulses)
}

// TryDecode runs every protocol decoder against pulses and returns every
// attempt, successes and failures alike, for diagnostics. Unlike Decode
// it does not stop at the first match and never produces a raw:
// fallback entry.
func TryDecode(pulses []int) []Attempt {
	attempts := make([]Attempt, 0, len(protocolOrder))
	for _, id := range protocolOrder {
		spec := protocols[id]
		fields, err := spec.decode(pulses)
		attempts = append(attempts, Attempt{Protocol: id, Fields: fields, Err: err})
	}
	return attempts
}

func rawText(pulses []int) string {
	if len(pulses) > 0 && len(pulses)%2 == 0 {
		pulses = pulses[:len(pulses)-1]
	}
	parts := make([]string, len(pulses))
	for i, v := range pulses {
		parts[i] = strconv.Itoa(v)
	}
	return "raw:" + strings.Join(parts, ",")
}

func formatFields(specs []fieldSpec, fields Fields) string {
	parts := make([]string, len(specs))
	for i, fs := range specs {
		v := fields[fs.name]
		if fs.hexWidth > 0 {
			parts[i] = fmt.Sprintf("%s=0x%0*X", fs.name, fs.hexWidth, v)
		} else {
			parts[i] = fmt.Sprintf("%s=%d", fs.name, v)
		}
	}
	return strings.Join(parts, ",")
}

// Encode parses a textual command ("nec:addr=0x04,cmd=0x08" or
// "raw:9000,4500,..."), validates it, and dispatches to the named
// encoder. Encode either returns the complete pulse train or a domain
// error; it never returns a partial train.
func Encode(text string) ([]int, error) {
	idx := strings.IndexByte(text, ':')
	if idx < 0 {
		return nil, domainf("invalid command format: %s", text)
	}
	prefix, rest := text[:idx], text[idx+1:]

	if prefix == "raw" {
		return parseRaw(rest)
	}

	spec, ok := protocols[ProtocolID(prefix)]
	if !ok {
		return nil, domainf("unknown format: %s", prefix)
	}

	fields, err := parseFields(rest, spec)
	if err != nil {
		return nil, err
	}
	return spec.encode(fields)
}

func parseRaw(rest string) ([]int, error) {
	if rest == "" {
		return nil, domainf("invalid command format: raw: with no values")
	}
	parts := strings.Split(rest, ",")
	values := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 0, 64)
		if err != nil {
			return nil, domainf("invalid command format: %q is not an integer", p)
		}
		values[i] = int(v)
	}
	return values, nil
}

func parseFields(rest string, spec *protocolSpec) (Fields, error) {
	fields := make(Fields)
	if rest == "" {
		return nil, domainf("invalid command format: %s: empty field list", spec.id)
	}
	for _, kv := range strings.Split(rest, ",") {
		eq := strings.IndexByte(kv, '=')
		if eq < 0 {
			return nil, domainf("invalid command format: %q", kv)
		}
		key, valStr := kv[:eq], kv[eq+1:]
		if !isKnownField(spec, key) {
			return nil, domainf("unknown field %q for protocol %s", key, spec.id)
		}
		v, err := strconv.ParseUint(strings.TrimSpace(valStr), 0, 64)
		if err != nil {
			return nil, domainf("invalid command format: %q is not an integer", valStr)
		}
		fields[key] = v
	}
	return fields, nil
}

func isKnownField(spec *protocolSpec, key string) bool {
	for _, k := range spec.encodeFields {
		if k == key {
			return true
		}
	}
	return spec.optionalFields[key]
}
