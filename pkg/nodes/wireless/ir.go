package wireless

import (
	"context"
	"fmt"

	"github.com/edgeflow/irflow/internal/logger"
	"github.com/edgeflow/irflow/internal/node"
	"github.com/edgeflow/irflow/pkg/ircodec"
	"go.uber.org/zap"
)

// IRExecutor exposes ircodec.EncodeCommand/ircodec.DecodeCommand as a flow node: encode
// takes a protocol plus its fields and returns a pulse train, decode takes
// a pulse train and returns the matched protocol and fields (or a raw:
// fallback). It never drives a GPIO pin; see SPEC_FULL.md §4/§5.
type IRExecutor struct {
	txPin       int
	rxPin       int
	protocol    string // nec, nec42, rc5, rc6, samsung32, sirc*, kaseikyo, rca, pioneer, ac, raw
	operation   string // encode, decode
	frequency   int    // carrier frequency Hz (reported only, default 38000)
	repeatCount int
}

// NewIRExecutor creates a new IR executor.
func NewIRExecutor() node.Executor {
	return &IRExecutor{
		protocol:    "nec",
		operation:   "encode",
		frequency:   38000,
		repeatCount: 1,
	}
}

func (e *IRExecutor) Init(config map[string]interface{}) error {
	if tp, ok := config["txPin"].(float64); ok {
		e.txPin = int(tp)
	}
	if rp, ok := config["rxPin"].(float64); ok {
		e.rxPin = int(rp)
	}
	if p, ok := config["protocol"].(string); ok {
		e.protocol = p
	}
	if op, ok := config["operation"].(string); ok {
		e.operation = op
	}
	if f, ok := config["frequency"].(float64); ok {
		e.frequency = int(f)
	}
	if rc, ok := config["repeatCount"].(float64); ok {
		e.repeatCount = int(rc)
	}
	return nil
}

func (e *IRExecutor) Execute(ctx context.Context, msg node.Message) (node.Message, error) {
	operation := e.operation
	if op, ok := msg.Payload["operation"].(string); ok {
		operation = op
	}

	protocol := e.protocol
	if p, ok := msg.Payload["protocol"].(string); ok {
		protocol = p
	}

	switch operation {
	case "encode":
		return e.encode(msg, protocol)
	case "decode":
		return e.decode(msg)
	default:
		return node.Message{}, fmt.Errorf("unknown IR operation: %s", operation)
	}
}

// encode builds an ircodec.Command from the message payload and runs it
// through ircodec.EncodeCommand.
func (e *IRExecutor) encode(msg node.Message, protocol string) (node.Message, error) {
	cmd := ircodec.Command{Protocol: ircodec.ProtocolID(protocol)}

	if cmd.Protocol == ircodec.ProtocolRaw {
		raw, ok := msg.Payload["raw_timings"].([]interface{})
		if !ok {
			return node.Message{}, fmt.Errorf("raw protocol requires raw_timings")
		}
		cmd.Raw = make([]int, len(raw))
		for i, v := range raw {
			f, ok := v.(float64)
			if !ok {
				return node.Message{}, fmt.Errorf("raw_timings[%d] is not a number", i)
			}
			cmd.Raw[i] = int(f)
		}
	} else {
		cmd.Fields = make(ircodec.Fields)
		for k, v := range msg.Payload {
			if k == "operation" || k == "protocol" {
				continue
			}
			f, ok := v.(float64)
			if !ok {
				continue
			}
			cmd.Fields[k] = uint64(f)
		}
	}

	pulses, err := ircodec.EncodeCommand(cmd)
	if err != nil {
		logger.WithNode("ir", "ir").Warn("ir encode failed", zap.String("protocol", protocol), zap.Error(err))
		return node.Message{}, fmt.Errorf("ir encode: %w", err)
	}

	logger.WithNode("ir", "ir").Info("ir encode", zap.String("protocol", protocol), zap.Int("pulse_count", len(pulses)))

	return node.Message{
		Type: node.MessageTypeData,
		Payload: map[string]interface{}{
			"protocol":     protocol,
			"frequency_hz": e.frequency,
			"repeat_count": e.repeatCount,
			"tx_pin":       e.txPin,
			"pulses":       toInterfaceSlice(pulses),
			"pulse_count":  len(pulses),
		},
	}, nil
}

// decode pulls a pulses array out of the payload and runs it through
// ircodec.DecodeCommand.
func (e *IRExecutor) decode(msg node.Message) (node.Message, error) {
	raw, ok := msg.Payload["pulses"].([]interface{})
	if !ok {
		return node.Message{}, fmt.Errorf("decode requires a pulses array")
	}
	pulses := make([]int, len(raw))
	for i, v := range raw {
		f, ok := v.(float64)
		if !ok {
			return node.Message{}, fmt.Errorf("pulses[%d] is not a number", i)
		}
		pulses[i] = int(f)
	}

	cmd := ircodec.DecodeCommand(pulses)

	logger.WithNode("ir", "ir").Info("ir decode",
		zap.String("protocol", string(cmd.Protocol)),
		zap.Int("rx_pin", e.rxPin),
		zap.Bool("raw_fallback", cmd.Protocol == ircodec.ProtocolRaw))

	payload := map[string]interface{}{
		"protocol": string(cmd.Protocol),
		"rx_pin":   e.rxPin,
	}
	if cmd.Protocol == ircodec.ProtocolRaw {
		payload["raw_timings"] = toInterfaceSlice(cmd.Raw)
	} else {
		fields := make(map[string]interface{}, len(cmd.Fields))
		for k, v := range cmd.Fields {
			fields[k] = v
		}
		payload["fields"] = fields
	}

	return node.Message{Type: node.MessageTypeData, Payload: payload}, nil
}

func toInterfaceSlice(v []int) []interface{} {
	out := make([]interface{}, len(v))
	for i, x := range v {
		out[i] = x
	}
	return out
}

// Cleanup releases resources; the IR node holds none.
func (e *IRExecutor) Cleanup() error {
	return nil
}
