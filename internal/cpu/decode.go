package cpu

import "fmt"

// IllegalOpcodeError is the panic value raised when the core executes one of
// the eleven opcodes the SM83 leaves undefined. Continuing would leave the
// emulated state out of step with the hardware.
type IllegalOpcodeError struct {
	Opcode byte
	PC     uint16
}

func (e *IllegalOpcodeError) Error() string {
	return fmt.Sprintf("cpu: illegal opcode %02X at %04X", e.Opcode, e.PC)
}

// Opcodes split into x (2 bits), y (3 bits) and z (3 bits): x selects the
// block, y the row and z the column. For y, p=y>>1 and q=y&1 select the pair
// and the variant in the 16-bit columns.
type opTable [4][8][8]Instruction

var (
	baseTable = buildBase()
	cbTable   = buildCB()
)

func init() {
	for _, t := range []struct {
		name string
		tab  *opTable
	}{{"base", &baseTable}, {"CB", &cbTable}} {
		for x := range t.tab {
			for y := range t.tab[x] {
				for z, h := range t.tab[x][y] {
					if h == nil {
						panic(fmt.Sprintf("cpu: %s opcode %02X has no handler", t.name, x<<6|y<<3|z))
					}
				}
			}
		}
	}
}

func fields(op byte) (x, y, z byte) {
	return op >> 6, (op >> 3) & 7, op & 7
}

func decode(op byte) Instruction {
	x, y, z := fields(op)
	return baseTable[x][y][z]
}

func decodeCB(op byte) Instruction {
	x, y, z := fields(op)
	return cbTable[x][y][z]
}

// Lookup returns the handler for a base opcode.
func Lookup(op byte) Instruction { return decode(op) }

// IsIllegal reports whether op is one of the undefined base opcodes.
func IsIllegal(op byte) bool {
	switch op {
	case 0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD:
		return true
	}
	return false
}

var rpTable = [4]pair{pairBC, pairDE, pairHL, pairSP}
var rp2Table = [4]pair{pairBC, pairDE, pairHL, pairAF}

func buildBase() opTable {
	var t opTable
	for op := 0; op < 256; op++ {
		x, y, z := fields(byte(op))
		p, q := y>>1, y&1
		var h Instruction
		switch x {
		case 0:
			h = block0(y, z, p, q)
		case 1:
			h = block1(y, z)
		case 2:
			h = block2(y, z)
		case 3:
			h = block3(byte(op), y, z, p, q)
		}
		t[x][y][z] = h
	}
	return t
}

func block0(y, z, p, q byte) Instruction {
	switch z {
	case 0:
		switch y {
		case 0:
			return nop
		case 1:
			return ldA16SP
		case 2:
			return stop
		case 3:
			return jr
		default:
			return jrCond(cond(y - 4))
		}
	case 1:
		if q == 0 {
			return ldPairImm(rpTable[p])
		}
		return addHL(rpTable[p])
	case 2:
		// (BC), (DE), (HL+), (HL-)
		ind := [4]pair{pairBC, pairDE, pairHL, pairHL}
		delta := [4]int{0, 0, 1, -1}
		if q == 0 {
			return ldIndA(ind[p], delta[p])
		}
		return ldAInd(ind[p], delta[p])
	case 3:
		if q == 0 {
			return incPair(rpTable[p])
		}
		return decPair(rpTable[p])
	case 4:
		return incR8(Reg8(y))
	case 5:
		return decR8(Reg8(y))
	case 6:
		return ldR8Imm(Reg8(y))
	default:
		return [8]Instruction{rlca, rrca, rla, rra, daaOp, cpl, scf, ccf}[y]
	}
}

// block1 is the load block. Row 6 stores to (HL), column 6 loads from (HL),
// and the slot where both would be 6 is HALT.
func block1(y, z byte) Instruction {
	dst, src := Reg8(y), Reg8(z)
	switch {
	case dst == RegHLInd && src == RegHLInd:
		return halt
	case dst == RegHLInd:
		return ldHLR8(src)
	case src == RegHLInd:
		return ldR8HL(dst)
	default:
		return ldR8R8(dst, src)
	}
}

func block2(y, z byte) Instruction {
	if Reg8(z) == RegHLInd {
		return aluHL(aluKind(y))
	}
	return aluR8(aluKind(y), Reg8(z))
}

func block3(op, y, z, p, q byte) Instruction {
	switch z {
	case 0:
		switch y {
		case 4:
			return ldhA8A
		case 5:
			return addSPe8
		case 6:
			return ldhAA8
		case 7:
			return ldHLSPe8
		default:
			return retCond(cond(y))
		}
	case 1:
		if q == 0 {
			return pop(rp2Table[p])
		}
		return [4]Instruction{ret, reti, jpHL, ldSPHL}[p]
	case 2:
		switch y {
		case 4:
			return ldhCA
		case 5:
			return ldA16A
		case 6:
			return ldhAC
		case 7:
			return ldAA16
		default:
			return jpCond(cond(y))
		}
	case 3:
		switch y {
		case 0:
			return jp
		case 1:
			return prefixCB
		case 6:
			return di
		case 7:
			return ei
		}
	case 4:
		if y < 4 {
			return callCond(cond(y))
		}
	case 5:
		if q == 0 {
			return push(rp2Table[p])
		}
		if p == 0 {
			return call
		}
	case 6:
		return aluImm(aluKind(y))
	case 7:
		return rst(uint16(y) * 8)
	}
	return illegal(op)
}

func buildCB() opTable {
	var t opTable
	for op := 0; op < 256; op++ {
		x, y, z := fields(byte(op))
		r := Reg8(z)
		switch x {
		case 0:
			t[x][y][z] = cbShift(shiftKind(y), r)
		case 1:
			t[x][y][z] = cbBit(y, r)
		case 2:
			t[x][y][z] = cbRes(y, r)
		case 3:
			t[x][y][z] = cbSet(y, r)
		}
	}
	return t
}
