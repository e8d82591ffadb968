package wireless

import (
	"github.com/edgeflow/irflow/internal/node"
)

// RegisterNodes registers the IR codec node with the registry.
func RegisterNodes(registry *node.Registry) error {
	// IR (Infrared) Node
	if err := registry.Register(&node.NodeInfo{
		Type:        "ir",
		Name:        "IR Transceiver",
		Category:    node.NodeTypeInput,
		Description: "Infrared codec: encode/decode NEC, RC5, RC6, Samsung, Sony, Kaseikyo, RCA, Pioneer, AC and raw pulse trains",
		Icon:        "radio",
		Color:       "#B71C1C",
		Properties: []node.PropertySchema{
			{Name: "txPin", Label: "TX Pin", Type: "number", Default: 0, Description: "GPIO pin for IR transmitter (reported only; not driven)"},
			{Name: "rxPin", Label: "RX Pin", Type: "number", Default: 0, Description: "GPIO pin for IR receiver (reported only; not driven)"},
			{
				Name:        "protocol",
				Label:       "Protocol",
				Type:        "select",
				Default:     "nec",
				Description: "IR protocol",
				Options: []string{
					"nec42", "nec", "nec42-ext", "nec-ext", "rc5", "rc6",
					"samsung32", "sirc20", "sirc15", "sirc", "kaseikyo",
					"rca", "pioneer", "ac", "raw",
				},
			},
			{Name: "operation", Label: "Operation", Type: "select", Default: "encode", Description: "encode a command into pulses, or decode pulses into a command", Options: []string{"encode", "decode"}},
		},
		Inputs: []node.PortSchema{
			{Name: "input", Label: "Input", Type: "any", Description: "For encode: addr/cmd fields (and protocol-specific extras). For decode: a pulses array."},
		},
		Outputs: []node.PortSchema{
			{Name: "output", Label: "Output", Type: "object", Description: "For encode: the pulse train. For decode: the matched protocol and fields, or a raw: fallback."},
		},
		Factory: NewIRExecutor,
	}); err != nil {
		return err
	}

	return nil
}

// init registers wireless nodes with the global registry
func init() {
	registry := node.GetGlobalRegistry()
	RegisterNodes(registry)
}
