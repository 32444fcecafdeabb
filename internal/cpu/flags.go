package cpu

import "fmt"

// Flag names one bit of the F register.
type Flag byte

const (
	FlagZ Flag = 1 << 7 // zero
	FlagN Flag = 1 << 6 // subtract
	FlagH Flag = 1 << 5 // half carry
	FlagC Flag = 1 << 4 // carry
)

const flagMask = byte(FlagZ | FlagN | FlagH | FlagC)

// Flags is the F register. Only the upper nibble is ever set.
type Flags struct {
	bits byte
}

func mustFlag(f Flag) {
	switch f {
	case FlagZ, FlagN, FlagH, FlagC:
		return
	}
	panic(fmt.Sprintf("cpu: invalid flag bit %#08b", byte(f)))
}

// Get reports whether f is set. It panics if f is not exactly one of the
// four named flags.
func (fl *Flags) Get(f Flag) bool {
	mustFlag(f)
	return fl.bits&byte(f) != 0
}

// Set sets or clears f, leaving the other flags untouched.
func (fl *Flags) Set(f Flag, v bool) {
	mustFlag(f)
	if v {
		fl.bits |= byte(f)
	} else {
		fl.bits &^= byte(f)
	}
}

// SetAll replaces all four flags in one update.
func (fl *Flags) SetAll(carry, subtract, halfCarry, zero bool) {
	var b byte
	if carry {
		b |= byte(FlagC)
	}
	if subtract {
		b |= byte(FlagN)
	}
	if halfCarry {
		b |= byte(FlagH)
	}
	if zero {
		b |= byte(FlagZ)
	}
	fl.bits = b
}

// Byte returns the raw F value. Only PUSH AF needs it.
func (fl *Flags) Byte() byte { return fl.bits }

// Load replaces F from a raw byte; the low nibble is discarded.
func (fl *Flags) Load(v byte) { fl.bits = v & flagMask }

func (fl Flags) String() string {
	out := []byte("----")
	for i, f := range []Flag{FlagZ, FlagN, FlagH, FlagC} {
		if fl.bits&byte(f) != 0 {
			out[i] = "ZNHC"[i]
		}
	}
	return string(out)
}
