package cpu

// aluKind is the 3-bit selector of the accumulator arithmetic group.
type aluKind byte

const (
	aluADD aluKind = iota
	aluADC
	aluSUB
	aluSBC
	aluAND
	aluXOR
	aluOR
	aluCP
)

var aluNames = [8]string{"ADD A,", "ADC A,", "SUB ", "SBC A,", "AND ", "XOR ", "OR ", "CP "}

func (k aluKind) String() string { return aluNames[k&7] }

// apply runs k against A and commits the flags. CP only sets flags.
func (k aluKind) apply(c *CPU, v byte) {
	a := c.regs.A()
	carry := c.regs.Flags().Get(FlagC)
	var r aluResult
	switch k {
	case aluADD:
		r = add8(a, v)
	case aluADC:
		r = adc8(a, v, carry)
	case aluSUB, aluCP:
		r = sub8(a, v)
	case aluSBC:
		r = sbc8(a, v, carry)
	case aluAND:
		r = and8(a, v)
	case aluXOR:
		r = xor8(a, v)
	case aluOR:
		r = or8(a, v)
	}
	if k != aluCP {
		c.regs.SetA(r.res)
	}
	c.regs.Flags().SetAll(r.cy, r.n, r.h, r.z)
}

// ALU A,r
func aluR8(k aluKind, src Reg8) Instruction {
	return func(c *CPU, b Bus) {
		k.apply(c, c.regs.get(src))
		c.UpdatePCAndCycles(c.pc+1, 4)
	}
}

// ALU A,(HL)
func aluHL(k aluKind) Instruction {
	return func(c *CPU, b Bus) {
		k.apply(c, b.Read(c.regs.HL()))
		c.UpdatePCAndCycles(c.pc+1, 8)
	}
}

// ALU A,d8
func aluImm(k aluKind) Instruction {
	return func(c *CPU, b Bus) {
		k.apply(c, c.imm8(b))
		c.UpdatePCAndCycles(c.pc+2, 8)
	}
}

// INC r / INC (HL)
func incR8(r Reg8) Instruction {
	if r == RegHLInd {
		return func(c *CPU, b Bus) {
			addr := c.regs.HL()
			res := inc8(b.Read(addr), c.regs.Flags().Get(FlagC))
			b.Write(addr, res.res)
			c.regs.Flags().SetAll(res.cy, res.n, res.h, res.z)
			c.UpdatePCAndCycles(c.pc+1, 12)
		}
	}
	return func(c *CPU, b Bus) {
		res := inc8(c.regs.get(r), c.regs.Flags().Get(FlagC))
		c.regs.set(r, res.res)
		c.regs.Flags().SetAll(res.cy, res.n, res.h, res.z)
		c.UpdatePCAndCycles(c.pc+1, 4)
	}
}

// DEC r / DEC (HL)
func decR8(r Reg8) Instruction {
	if r == RegHLInd {
		return func(c *CPU, b Bus) {
			addr := c.regs.HL()
			res := dec8(b.Read(addr), c.regs.Flags().Get(FlagC))
			b.Write(addr, res.res)
			c.regs.Flags().SetAll(res.cy, res.n, res.h, res.z)
			c.UpdatePCAndCycles(c.pc+1, 12)
		}
	}
	return func(c *CPU, b Bus) {
		res := dec8(c.regs.get(r), c.regs.Flags().Get(FlagC))
		c.regs.set(r, res.res)
		c.regs.Flags().SetAll(res.cy, res.n, res.h, res.z)
		c.UpdatePCAndCycles(c.pc+1, 4)
	}
}

// INC rr; flags untouched.
func incPair(p pair) Instruction {
	return func(c *CPU, b Bus) {
		c.setPair(p, c.getPair(p)+1)
		c.UpdatePCAndCycles(c.pc+1, 8)
	}
}

// DEC rr; flags untouched.
func decPair(p pair) Instruction {
	return func(c *CPU, b Bus) {
		c.setPair(p, c.getPair(p)-1)
		c.UpdatePCAndCycles(c.pc+1, 8)
	}
}

// ADD HL,rr. Z keeps its previous value.
func addHL(p pair) Instruction {
	return func(c *CPU, b Bus) {
		res, h, cy := add16(c.regs.HL(), c.getPair(p))
		c.regs.SetHL(res)
		f := c.regs.Flags()
		f.SetAll(cy, false, h, f.Get(FlagZ))
		c.UpdatePCAndCycles(c.pc+1, 8)
	}
}

// ADD SP,e8
func addSPe8(c *CPU, b Bus) {
	res, h, cy := addSPOffset(c.sp, c.imm8(b))
	c.sp = res
	c.regs.Flags().SetAll(cy, false, h, false)
	c.UpdatePCAndCycles(c.pc+2, 16)
}

// Accumulator rotates always clear Z, unlike their 0xCB counterparts.

func rlca(c *CPU, b Bus) {
	res, out := rlc(c.regs.A())
	c.regs.SetA(res)
	c.regs.Flags().SetAll(out, false, false, false)
	c.UpdatePCAndCycles(c.pc+1, 4)
}

func rrca(c *CPU, b Bus) {
	res, out := rrc(c.regs.A())
	c.regs.SetA(res)
	c.regs.Flags().SetAll(out, false, false, false)
	c.UpdatePCAndCycles(c.pc+1, 4)
}

func rla(c *CPU, b Bus) {
	res, out := rl(c.regs.A(), c.regs.Flags().Get(FlagC))
	c.regs.SetA(res)
	c.regs.Flags().SetAll(out, false, false, false)
	c.UpdatePCAndCycles(c.pc+1, 4)
}

func rra(c *CPU, b Bus) {
	res, out := rr(c.regs.A(), c.regs.Flags().Get(FlagC))
	c.regs.SetA(res)
	c.regs.Flags().SetAll(out, false, false, false)
	c.UpdatePCAndCycles(c.pc+1, 4)
}

// DAA; N is preserved so a second DAA knows the direction.
func daaOp(c *CPU, b Bus) {
	f := c.regs.Flags()
	n := f.Get(FlagN)
	res, cy := daa(c.regs.A(), n, f.Get(FlagH), f.Get(FlagC))
	c.regs.SetA(res)
	f.SetAll(cy, n, false, res == 0)
	c.UpdatePCAndCycles(c.pc+1, 4)
}

// CPL sets N and H; Z and C are kept.
func cpl(c *CPU, b Bus) {
	c.regs.SetA(^c.regs.A())
	f := c.regs.Flags()
	f.SetAll(f.Get(FlagC), true, true, f.Get(FlagZ))
	c.UpdatePCAndCycles(c.pc+1, 4)
}

func scf(c *CPU, b Bus) {
	f := c.regs.Flags()
	f.SetAll(true, false, false, f.Get(FlagZ))
	c.UpdatePCAndCycles(c.pc+1, 4)
}

func ccf(c *CPU, b Bus) {
	f := c.regs.Flags()
	f.SetAll(!f.Get(FlagC), false, false, f.Get(FlagZ))
	c.UpdatePCAndCycles(c.pc+1, 4)
}
