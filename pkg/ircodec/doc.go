// Package ircodec encodes and decodes consumer infrared remote-control
// signals: pulse trains (alternating mark/space microsecond durations) on
// one side, short textual commands ("nec:addr=0x04,cmd=0x08") on the
// other.
//
// The package is pure: no I/O, no global state besides the RC5/RC6 toggle
// counter described on globalToggle. Encode is total-on-failure (a domain error
// never returns a partial pulse train); Decode never fails, falling back
// to a raw: literal when no protocol recognizes the input.
package ircodec
