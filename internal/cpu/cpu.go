package cpu

// Bus is the memory surface instructions execute against. Invalid addresses
// are the bus's problem: it never returns an error.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
}

// CPU is the SM83 processor state. Instruction handlers read their operands
// relative to PC and commit the new PC and cycle cost with UpdatePCAndCycles.
type CPU struct {
	regs Registers

	pc uint16
	sp uint16

	cycles  uint64
	running bool

	ime bool
	// EI enables IME after the following instruction
	eiPending bool
}

// New returns a CPU with PC=0, SP=0 and all registers cleared, ready to run.
func New() *CPU {
	return &CPU{running: true}
}

// ResetNoBoot loads the DMG post-boot register values and starts at the
// cartridge entry point. Useful when running without a boot ROM.
func (c *CPU) ResetNoBoot() {
	c.regs.SetAF(0x01B0)
	c.regs.SetBC(0x0013)
	c.regs.SetDE(0x00D8)
	c.regs.SetHL(0x014D)
	c.sp = 0xFFFE
	c.pc = 0x0100
	c.ime = false
	c.eiPending = false
	c.running = true
}

func (c *CPU) PC() uint16              { return c.pc }
func (c *CPU) SP() uint16              { return c.sp }
func (c *CPU) SetSP(sp uint16)         { c.sp = sp }
func (c *CPU) SetPC(pc uint16)         { c.pc = pc }
func (c *CPU) Registers() *Registers   { return &c.regs }
func (c *CPU) Cycles() uint64          { return c.cycles }
func (c *CPU) Running() bool           { return c.running }
func (c *CPU) SetRunning(running bool) { c.running = running }
func (c *CPU) IME() bool               { return c.ime }

// UpdatePCAndCycles commits one instruction: PC moves to pc and the cycle
// counter grows by cycles.
func (c *CPU) UpdatePCAndCycles(pc uint16, cycles int) {
	c.pc = pc
	c.cycles += uint64(cycles)
}

// Step fetches, decodes and executes one instruction. It does nothing once a
// HALT or STOP has cleared the running flag.
func (c *CPU) Step(b Bus) {
	if !c.running {
		return
	}
	enable := c.eiPending
	op := b.Read(c.pc)
	decode(op)(c, b)
	if enable && c.eiPending {
		c.ime = true
		c.eiPending = false
	}
}

// operand helpers; PC still points at the opcode while a handler runs

func (c *CPU) imm8(b Bus) byte { return b.Read(c.pc + 1) }

func (c *CPU) imm16(b Bus) uint16 {
	return joinWord(b.Read(c.pc+2), b.Read(c.pc+1))
}

func (c *CPU) read16(b Bus, addr uint16) uint16 {
	return joinWord(b.Read(addr+1), b.Read(addr))
}

func (c *CPU) write16(b Bus, addr uint16, v uint16) {
	hi, lo := splitWord(v)
	b.Write(addr, lo)
	b.Write(addr+1, hi)
}

func (c *CPU) push16(b Bus, v uint16) {
	hi, lo := splitWord(v)
	c.sp--
	b.Write(c.sp, hi)
	c.sp--
	b.Write(c.sp, lo)
}

func (c *CPU) pop16(b Bus) uint16 {
	lo := b.Read(c.sp)
	c.sp++
	hi := b.Read(c.sp)
	c.sp++
	return joinWord(hi, lo)
}

// load8 and store8 resolve the octal operand encoding, with index 6 going
// through the bus at HL.
func (c *CPU) load8(b Bus, r Reg8) byte {
	if r == RegHLInd {
		return b.Read(c.regs.HL())
	}
	return c.regs.get(r)
}

func (c *CPU) store8(b Bus, r Reg8, v byte) {
	if r == RegHLInd {
		b.Write(c.regs.HL(), v)
		return
	}
	c.regs.set(r, v)
}

// pair is the 2-bit register pair encoding. The same bits mean SP in most
// 16-bit instructions and AF in PUSH/POP.
type pair byte

const (
	pairBC pair = iota
	pairDE
	pairHL
	pairSP
	pairAF
)

var pairNames = [...]string{"BC", "DE", "HL", "SP", "AF"}

func (p pair) String() string { return pairNames[p] }

func (c *CPU) getPair(p pair) uint16 {
	switch p {
	case pairBC:
		return c.regs.BC()
	case pairDE:
		return c.regs.DE()
	case pairHL:
		return c.regs.HL()
	case pairSP:
		return c.sp
	default:
		return c.regs.AF()
	}
}

func (c *CPU) setPair(p pair, v uint16) {
	switch p {
	case pairBC:
		c.regs.SetBC(v)
	case pairDE:
		c.regs.SetDE(v)
	case pairHL:
		c.regs.SetHL(v)
	case pairSP:
		c.sp = v
	default:
		c.regs.SetAF(v)
	}
}

// cond is the 2-bit branch condition encoding.
type cond byte

const (
	condNZ cond = iota
	condZ
	condNC
	condC
)

var condNames = [4]string{"NZ", "Z", "NC", "C"}

func (cc cond) String() string { return condNames[cc&3] }

func (c *CPU) check(cc cond) bool {
	f := c.regs.Flags()
	switch cc {
	case condNZ:
		return !f.Get(FlagZ)
	case condZ:
		return f.Get(FlagZ)
	case condNC:
		return !f.Get(FlagC)
	default:
		return f.Get(FlagC)
	}
}
