package cpu

// shiftKind is the y field of the first 0xCB block.
type shiftKind byte

const (
	shiftRLC shiftKind = iota
	shiftRRC
	shiftRL
	shiftRR
	shiftSLA
	shiftSRA
	shiftSWAP
	shiftSRL
)

var shiftNames = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

func (k shiftKind) String() string { return shiftNames[k&7] }

func (k shiftKind) apply(v byte, carry bool) (byte, bool) {
	switch k {
	case shiftRLC:
		return rlc(v)
	case shiftRRC:
		return rrc(v)
	case shiftRL:
		return rl(v, carry)
	case shiftRR:
		return rr(v, carry)
	case shiftSLA:
		return sla(v)
	case shiftSRA:
		return sra(v)
	case shiftSWAP:
		return swap(v)
	default:
		return srl(v)
	}
}

// cbCycles is the cost of a read-modify-write 0xCB op on operand r.
func cbCycles(r Reg8) int {
	if r == RegHLInd {
		return 16
	}
	return 8
}

// RLC..SRL r
func cbShift(k shiftKind, r Reg8) Instruction {
	cycles := cbCycles(r)
	return func(c *CPU, b Bus) {
		res, out := k.apply(c.load8(b, r), c.regs.Flags().Get(FlagC))
		c.store8(b, r, res)
		c.regs.Flags().SetAll(out, false, false, res == 0)
		c.UpdatePCAndCycles(c.pc+2, cycles)
	}
}

// BIT n,r sets Z from the tested bit, N=0, H=1 and keeps C. (HL) only reads,
// so it costs 12 rather than 16.
func cbBit(n byte, r Reg8) Instruction {
	cycles := 8
	if r == RegHLInd {
		cycles = 12
	}
	mask := byte(1) << n
	return func(c *CPU, b Bus) {
		f := c.regs.Flags()
		f.SetAll(f.Get(FlagC), false, true, c.load8(b, r)&mask == 0)
		c.UpdatePCAndCycles(c.pc+2, cycles)
	}
}

// RES n,r
func cbRes(n byte, r Reg8) Instruction {
	cycles := cbCycles(r)
	mask := byte(1) << n
	return func(c *CPU, b Bus) {
		c.store8(b, r, c.load8(b, r)&^mask)
		c.UpdatePCAndCycles(c.pc+2, cycles)
	}
}

// SET n,r
func cbSet(n byte, r Reg8) Instruction {
	cycles := cbCycles(r)
	mask := byte(1) << n
	return func(c *CPU, b Bus) {
		c.store8(b, r, c.load8(b, r)|mask)
		c.UpdatePCAndCycles(c.pc+2, cycles)
	}
}
