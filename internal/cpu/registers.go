package cpu

import "fmt"

// Reg8 is the 3-bit operand encoding used by the opcode table.
// Index 6 is the (HL) memory operand, not a register.
type Reg8 byte

const (
	RegB Reg8 = iota
	RegC
	RegD
	RegE
	RegH
	RegL
	RegHLInd
	RegA
)

var reg8Names = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

func (r Reg8) String() string { return reg8Names[r&7] }

// joinWord and splitWord are the only places register pairs and little
// endian operands are composed or decomposed.
func joinWord(hi, lo byte) uint16 { return uint16(hi)<<8 | uint16(lo) }

func splitWord(v uint16) (hi, lo byte) { return byte(v >> 8), byte(v) }

// Registers holds the seven 8-bit registers and F. Pairs are views over two
// registers, high byte first.
type Registers struct {
	a, b, c, d, e, h, l byte
	f                   Flags
}

func (r *Registers) A() byte { return r.a }
func (r *Registers) B() byte { return r.b }
func (r *Registers) C() byte { return r.c }
func (r *Registers) D() byte { return r.d }
func (r *Registers) E() byte { return r.e }
func (r *Registers) H() byte { return r.h }
func (r *Registers) L() byte { return r.l }

func (r *Registers) SetA(v byte) { r.a = v }
func (r *Registers) SetB(v byte) { r.b = v }
func (r *Registers) SetC(v byte) { r.c = v }
func (r *Registers) SetD(v byte) { r.d = v }
func (r *Registers) SetE(v byte) { r.e = v }
func (r *Registers) SetH(v byte) { r.h = v }
func (r *Registers) SetL(v byte) { r.l = v }

func (r *Registers) AF() uint16 { return joinWord(r.a, r.f.Byte()) }
func (r *Registers) BC() uint16 { return joinWord(r.b, r.c) }
func (r *Registers) DE() uint16 { return joinWord(r.d, r.e) }
func (r *Registers) HL() uint16 { return joinWord(r.h, r.l) }

func (r *Registers) SetAF(v uint16) {
	hi, lo := splitWord(v)
	r.a = hi
	r.f.Load(lo)
}

func (r *Registers) SetBC(v uint16) { r.b, r.c = splitWord(v) }
func (r *Registers) SetDE(v uint16) { r.d, r.e = splitWord(v) }
func (r *Registers) SetHL(v uint16) { r.h, r.l = splitWord(v) }

// Flags returns the F register for reading and writing.
func (r *Registers) Flags() *Flags { return &r.f }

func (r *Registers) get(i Reg8) byte {
	switch i {
	case RegB:
		return r.b
	case RegC:
		return r.c
	case RegD:
		return r.d
	case RegE:
		return r.e
	case RegH:
		return r.h
	case RegL:
		return r.l
	case RegA:
		return r.a
	}
	panic(fmt.Sprintf("cpu: %v is not a register", i))
}

func (r *Registers) set(i Reg8, v byte) {
	switch i {
	case RegB:
		r.b = v
	case RegC:
		r.c = v
	case RegD:
		r.d = v
	case RegE:
		r.e = v
	case RegH:
		r.h = v
	case RegL:
		r.l = v
	case RegA:
		r.a = v
	default:
		panic(fmt.Sprintf("cpu: %v is not a register", i))
	}
}

func (r *Registers) String() string {
	return fmt.Sprintf("A=%02X F=%s B=%02X C=%02X D=%02X E=%02X H=%02X L=%02X",
		r.a, r.f, r.b, r.c, r.d, r.e, r.h, r.l)
}
