package cpu

// jrTarget is PC after the 2-byte JR plus the signed displacement.
func (c *CPU) jrTarget(b Bus) uint16 {
	return c.pc + 2 + uint16(int8(c.imm8(b)))
}

// JR e8
func jr(c *CPU, b Bus) {
	c.UpdatePCAndCycles(c.jrTarget(b), 12)
}

// JR cc,e8
func jrCond(cc cond) Instruction {
	return func(c *CPU, b Bus) {
		if c.check(cc) {
			c.UpdatePCAndCycles(c.jrTarget(b), 12)
			return
		}
		c.UpdatePCAndCycles(c.pc+2, 8)
	}
}

// JP a16
func jp(c *CPU, b Bus) {
	c.UpdatePCAndCycles(c.imm16(b), 16)
}

// JP cc,a16
func jpCond(cc cond) Instruction {
	return func(c *CPU, b Bus) {
		if c.check(cc) {
			c.UpdatePCAndCycles(c.imm16(b), 16)
			return
		}
		c.UpdatePCAndCycles(c.pc+3, 12)
	}
}

// JP HL
func jpHL(c *CPU, b Bus) {
	c.UpdatePCAndCycles(c.regs.HL(), 4)
}

// CALL a16
func call(c *CPU, b Bus) {
	target := c.imm16(b)
	c.push16(b, c.pc+3)
	c.UpdatePCAndCycles(target, 24)
}

// CALL cc,a16
func callCond(cc cond) Instruction {
	return func(c *CPU, b Bus) {
		if c.check(cc) {
			call(c, b)
			return
		}
		c.UpdatePCAndCycles(c.pc+3, 12)
	}
}

// RET
func ret(c *CPU, b Bus) {
	c.UpdatePCAndCycles(c.pop16(b), 16)
}

// RET cc
func retCond(cc cond) Instruction {
	return func(c *CPU, b Bus) {
		if c.check(cc) {
			c.UpdatePCAndCycles(c.pop16(b), 20)
			return
		}
		c.UpdatePCAndCycles(c.pc+1, 8)
	}
}

// RETI returns and enables interrupts immediately.
func reti(c *CPU, b Bus) {
	c.ime = true
	c.eiPending = false
	c.UpdatePCAndCycles(c.pop16(b), 16)
}

// RST vec
func rst(vec uint16) Instruction {
	return func(c *CPU, b Bus) {
		c.push16(b, c.pc+1)
		c.UpdatePCAndCycles(vec, 16)
	}
}

// HALT stops the core; without interrupt dispatch nothing wakes it again.
func halt(c *CPU, b Bus) {
	c.running = false
	c.UpdatePCAndCycles(c.pc+1, 4)
}

// STOP is followed by a padding byte.
func stop(c *CPU, b Bus) {
	c.running = false
	c.UpdatePCAndCycles(c.pc+2, 4)
}

func di(c *CPU, b Bus) {
	c.ime = false
	c.eiPending = false
	c.UpdatePCAndCycles(c.pc+1, 4)
}

// EI takes effect after the following instruction.
func ei(c *CPU, b Bus) {
	c.eiPending = true
	c.UpdatePCAndCycles(c.pc+1, 4)
}

// prefixCB decodes the second opcode byte through the 0xCB table. The CB
// handlers account for both bytes.
func prefixCB(c *CPU, b Bus) {
	decodeCB(c.imm8(b))(c, b)
}

// illegal returns the handler for an opcode the SM83 does not define.
func illegal(op byte) Instruction {
	return func(c *CPU, b Bus) {
		panic(&IllegalOpcodeError{Opcode: op, PC: c.pc})
	}
}
