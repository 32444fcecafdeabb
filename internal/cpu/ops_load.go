package cpu

// Instruction executes one decoded opcode. It reads operands relative to the
// current PC and finishes with exactly one UpdatePCAndCycles call.
type Instruction func(c *CPU, b Bus)

func nop(c *CPU, b Bus) {
	c.UpdatePCAndCycles(c.pc+1, 4)
}

// LD r,r'
func ldR8R8(dst, src Reg8) Instruction {
	return func(c *CPU, b Bus) {
		c.regs.set(dst, c.regs.get(src))
		c.UpdatePCAndCycles(c.pc+1, 4)
	}
}

// LD r,(HL)
func ldR8HL(dst Reg8) Instruction {
	return func(c *CPU, b Bus) {
		c.regs.set(dst, b.Read(c.regs.HL()))
		c.UpdatePCAndCycles(c.pc+1, 8)
	}
}

// LD (HL),r
func ldHLR8(src Reg8) Instruction {
	return func(c *CPU, b Bus) {
		b.Write(c.regs.HL(), c.regs.get(src))
		c.UpdatePCAndCycles(c.pc+1, 8)
	}
}

// LD r,d8 and LD (HL),d8
func ldR8Imm(dst Reg8) Instruction {
	if dst == RegHLInd {
		return func(c *CPU, b Bus) {
			b.Write(c.regs.HL(), c.imm8(b))
			c.UpdatePCAndCycles(c.pc+2, 12)
		}
	}
	return func(c *CPU, b Bus) {
		c.regs.set(dst, c.imm8(b))
		c.UpdatePCAndCycles(c.pc+2, 8)
	}
}

// LD rr,d16
func ldPairImm(p pair) Instruction {
	return func(c *CPU, b Bus) {
		c.setPair(p, c.imm16(b))
		c.UpdatePCAndCycles(c.pc+3, 12)
	}
}

// LD (rr),A for BC and DE; for HL the pair then moves by delta (HL+ / HL-).
func ldIndA(p pair, delta int) Instruction {
	return func(c *CPU, b Bus) {
		addr := c.getPair(p)
		b.Write(addr, c.regs.A())
		if delta != 0 {
			c.setPair(p, addr+uint16(delta))
		}
		c.UpdatePCAndCycles(c.pc+1, 8)
	}
}

// LD A,(rr), with the same HL+ / HL- handling as ldIndA.
func ldAInd(p pair, delta int) Instruction {
	return func(c *CPU, b Bus) {
		addr := c.getPair(p)
		c.regs.SetA(b.Read(addr))
		if delta != 0 {
			c.setPair(p, addr+uint16(delta))
		}
		c.UpdatePCAndCycles(c.pc+1, 8)
	}
}

// LD (a16),SP
func ldA16SP(c *CPU, b Bus) {
	c.write16(b, c.imm16(b), c.sp)
	c.UpdatePCAndCycles(c.pc+3, 20)
}

// LD (a16),A
func ldA16A(c *CPU, b Bus) {
	b.Write(c.imm16(b), c.regs.A())
	c.UpdatePCAndCycles(c.pc+3, 16)
}

// LD A,(a16)
func ldAA16(c *CPU, b Bus) {
	c.regs.SetA(b.Read(c.imm16(b)))
	c.UpdatePCAndCycles(c.pc+3, 16)
}

// LDH (a8),A
func ldhA8A(c *CPU, b Bus) {
	b.Write(0xFF00|uint16(c.imm8(b)), c.regs.A())
	c.UpdatePCAndCycles(c.pc+2, 12)
}

// LDH A,(a8)
func ldhAA8(c *CPU, b Bus) {
	c.regs.SetA(b.Read(0xFF00 | uint16(c.imm8(b))))
	c.UpdatePCAndCycles(c.pc+2, 12)
}

// LD (C),A
func ldhCA(c *CPU, b Bus) {
	b.Write(0xFF00|uint16(c.regs.C()), c.regs.A())
	c.UpdatePCAndCycles(c.pc+1, 8)
}

// LD A,(C)
func ldhAC(c *CPU, b Bus) {
	c.regs.SetA(b.Read(0xFF00 | uint16(c.regs.C())))
	c.UpdatePCAndCycles(c.pc+1, 8)
}

// LD SP,HL
func ldSPHL(c *CPU, b Bus) {
	c.sp = c.regs.HL()
	c.UpdatePCAndCycles(c.pc+1, 8)
}

// LD HL,SP+e8
func ldHLSPe8(c *CPU, b Bus) {
	res, h, cy := addSPOffset(c.sp, c.imm8(b))
	c.regs.SetHL(res)
	c.regs.Flags().SetAll(cy, false, h, false)
	c.UpdatePCAndCycles(c.pc+2, 12)
}

// PUSH rr
func push(p pair) Instruction {
	return func(c *CPU, b Bus) {
		c.push16(b, c.getPair(p))
		c.UpdatePCAndCycles(c.pc+1, 16)
	}
}

// POP rr. POP AF drops the low nibble of F.
func pop(p pair) Instruction {
	return func(c *CPU, b Bus) {
		c.setPair(p, c.pop16(b))
		c.UpdatePCAndCycles(c.pc+1, 12)
	}
}
