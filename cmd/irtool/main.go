package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/edgeflow/irflow/pkg/ircodec"
)

func main() {
	encode := flag.String("encode", "", `encode a command, e.g. -encode "nec:addr=0x04,cmd=0x08"`)
	decode := flag.String("decode", "", "decode a comma-separated pulse train, e.g. -decode \"9000,4500,560,...\"")
	flag.Parse()

	switch {
	case *encode != "":
		runEncode(*encode)
	case *decode != "":
		runDecode(*decode)
	default:
		runStdin()
	}
}

func runEncode(command string) {
	pulses, err := ircodec.Encode(command)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(joinInts(pulses))
}

func runDecode(train string) {
	pulses, err := parsePulses(train)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad pulse train: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(ircodec.Decode(pulses))
}

// runStdin reads one command or pulse train per line; a line starting with a
// digit or '-' is treated as a pulse train to decode, everything else is
// treated as a command to encode.
func runStdin() {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if c := line[0]; c == '-' || (c >= '0' && c <= '9') {
			runDecode(line)
		} else {
			runEncode(line)
		}
	}
}

func parsePulses(train string) ([]int, error) {
	parts := strings.Split(train, ",")
	pulses := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("pulse %d (%q): %w", i, p, err)
		}
		pulses[i] = v
	}
	return pulses, nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
