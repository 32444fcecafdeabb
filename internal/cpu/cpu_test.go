package cpu

import (
	"testing"
	"testing/quick"
)

// flatBus is 64 KiB of plain RAM, so tests can place code and data anywhere.
type flatBus [0x10000]byte

func (m *flatBus) Read(addr uint16) byte     { return m[addr] }
func (m *flatBus) Write(addr uint16, v byte) { m[addr] = v }

func newCPUWithCode(code ...byte) (*CPU, *flatBus) {
	m := new(flatBus)
	copy(m[:], code)
	return New(), m
}

func TestCPU_NewState(t *testing.T) {
	c := New()
	if c.PC() != 0 || c.SP() != 0 || c.Cycles() != 0 || !c.Running() {
		t.Fatalf("new CPU got PC=%04x SP=%04x cycles=%d running=%v", c.PC(), c.SP(), c.Cycles(), c.Running())
	}
}

func TestCPU_NopAndPC(t *testing.T) {
	c, m := newCPUWithCode(0x00)
	c.Step(m)
	if c.PC() != 1 || c.Cycles() != 4 {
		t.Fatalf("NOP got PC=%04x cycles=%d want 0001/4", c.PC(), c.Cycles())
	}
}

func TestCPU_LD_A_d8_And_XOR_A(t *testing.T) {
	c, m := newCPUWithCode(0x3E, 0x12, 0xAF) // LD A,0x12; XOR A
	c.Step(m)
	if c.Registers().A() != 0x12 {
		t.Fatalf("A after LD got %02x want 12", c.Registers().A())
	}
	c.Step(m)
	if c.Registers().A() != 0x00 || !c.Registers().Flags().Get(FlagZ) {
		t.Fatalf("XOR A got A=%02x F=%v", c.Registers().A(), c.Registers().Flags())
	}
}

func TestCPU_LD_a16_A_and_LD_A_a16(t *testing.T) {
	c, m := newCPUWithCode(0x3E, 0x77, 0xEA, 0x00, 0xC0, 0x3E, 0x00, 0xFA, 0x00, 0xC0)
	c.Step(m) // LD A,77
	c.Step(m) // LD (C000),A
	if m[0xC000] != 0x77 {
		t.Fatalf("C000 got %02x want 77", m[0xC000])
	}
	c.Step(m) // LD A,00
	c.Step(m) // LD A,(C000)
	if c.Registers().A() != 0x77 {
		t.Fatalf("A got %02x want 77", c.Registers().A())
	}
	if c.Cycles() != 8+16+8+16 {
		t.Fatalf("cycles got %d want 48", c.Cycles())
	}
}

func TestCPU_LD_RegisterBlock(t *testing.T) {
	// LD B,A; LD (HL),B; LD C,(HL); LD H,H
	c, m := newCPUWithCode(0x47, 0x70, 0x4E, 0x64)
	c.Registers().SetA(0x5C)
	c.Registers().SetHL(0xC123)
	c.Step(m)
	c.Step(m)
	c.Step(m)
	c.Step(m)
	if c.Registers().B() != 0x5C || m[0xC123] != 0x5C || c.Registers().C() != 0x5C {
		t.Fatalf("load block got B=%02x (HL)=%02x C=%02x", c.Registers().B(), m[0xC123], c.Registers().C())
	}
	if c.Cycles() != 4+8+8+4 {
		t.Fatalf("cycles got %d want 24", c.Cycles())
	}
}

func TestCPU_LD_HLIncDec(t *testing.T) {
	// LD (HL+),A; LD (HL-),A; LD A,(HL+)
	c, m := newCPUWithCode(0x22, 0x32, 0x2A)
	c.Registers().SetA(0x99)
	c.Registers().SetHL(0xFFFF)
	c.Step(m)
	if m[0xFFFF] != 0x99 || c.Registers().HL() != 0x0000 {
		t.Fatalf("LD (HL+),A got mem=%02x HL=%04x", m[0xFFFF], c.Registers().HL())
	}
	c.Step(m)
	if c.Registers().HL() != 0xFFFF {
		t.Fatalf("LD (HL-),A HL got %04x want ffff", c.Registers().HL())
	}
	c.Step(m)
	if c.Registers().A() != 0x99 || c.Registers().HL() != 0x0000 {
		t.Fatalf("LD A,(HL+) got A=%02x HL=%04x", c.Registers().A(), c.Registers().HL())
	}
}

func TestCPU_JP_and_JR(t *testing.T) {
	c, m := newCPUWithCode(0xC3, 0x10, 0x00) // JP 0x0010
	m[0x0010] = 0x18                          // JR -2
	m[0x0011] = 0xFE
	c.Step(m)
	if c.PC() != 0x0010 || c.Cycles() != 16 {
		t.Fatalf("JP got PC=%04x cycles=%d", c.PC(), c.Cycles())
	}
	c.Step(m)
	if c.PC() != 0x0010 || c.Cycles() != 28 {
		t.Fatalf("JR -2 got PC=%04x cycles=%d", c.PC(), c.Cycles())
	}
}

func TestCPU_JR_TakenAndNotTaken(t *testing.T) {
	for _, tc := range []struct {
		name   string
		zero   bool
		pc     uint16
		cycles uint64
	}{
		{"taken", false, 0x0100, 12},
		{"not taken", true, 0x0102, 8},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, m := newCPUWithCode()
			m[0x0100] = 0x20 // JR NZ,-2
			m[0x0101] = 0xFE
			c.SetPC(0x0100)
			c.Registers().Flags().Set(FlagZ, tc.zero)
			c.Step(m)
			if c.PC() != tc.pc || c.Cycles() != tc.cycles {
				t.Fatalf("JR NZ got PC=%04x cycles=%d want %04x/%d", c.PC(), c.Cycles(), tc.pc, tc.cycles)
			}
		})
	}
}

func TestCPU_JR_WrapsAddressSpace(t *testing.T) {
	c, m := newCPUWithCode()
	m[0xFFFE] = 0x18 // JR +4 from the top of memory
	m[0xFFFF] = 0x04
	c.SetPC(0xFFFE)
	c.Step(m)
	if c.PC() != 0x0004 {
		t.Fatalf("JR wrap got PC=%04x want 0004", c.PC())
	}
}

func TestCPU_INC_B_Flags(t *testing.T) {
	c, m := newCPUWithCode(0x04, 0x04) // INC B twice
	c.Registers().SetB(0x0F)
	c.Registers().Flags().Set(FlagC, true)
	c.Step(m)
	f := c.Registers().Flags()
	if c.Registers().B() != 0x10 || !f.Get(FlagH) || !f.Get(FlagC) || f.Get(FlagN) {
		t.Fatalf("INC B got B=%02x F=%v", c.Registers().B(), f)
	}
	c.Registers().SetB(0xFF)
	c.Step(m)
	if c.Registers().B() != 0x00 || !f.Get(FlagZ) {
		t.Fatalf("INC B to 0 got B=%02x F=%v", c.Registers().B(), f)
	}
}

func TestCPU_INC_DEC_RoundTrip(t *testing.T) {
	// INC r followed by DEC r restores every register, for every value.
	for _, r := range []Reg8{RegB, RegC, RegD, RegE, RegH, RegL, RegA} {
		inc := byte(0x04 | byte(r)<<3)
		dec := byte(0x05 | byte(r)<<3)
		f := func(v byte) bool {
			c, m := newCPUWithCode(inc, dec, dec, inc)
			c.Registers().set(r, v)
			c.Step(m)
			if c.Registers().Flags().Get(FlagN) {
				return false
			}
			c.Step(m)
			if c.Registers().get(r) != v || !c.Registers().Flags().Get(FlagN) {
				return false
			}
			c.Step(m)
			c.Step(m)
			return c.Registers().get(r) == v && !c.Registers().Flags().Get(FlagN)
		}
		if err := quick.Check(f, nil); err != nil {
			t.Fatalf("INC/DEC %v: %v", r, err)
		}
	}
}

func TestCPU_DEC_HalfBorrow(t *testing.T) {
	c, m := newCPUWithCode(0x3D) // DEC A
	c.Registers().SetA(0x10)
	c.Step(m)
	f := c.Registers().Flags()
	if c.Registers().A() != 0x0F || !f.Get(FlagH) || !f.Get(FlagN) || f.Get(FlagZ) {
		t.Fatalf("DEC A got A=%02x F=%v", c.Registers().A(), f)
	}
}

func TestCPU_INC_DEC_HLIndirect(t *testing.T) {
	c, m := newCPUWithCode(0x34, 0x35, 0x35) // INC (HL); DEC (HL); DEC (HL)
	c.Registers().SetHL(0xC000)
	m[0xC000] = 0xFF
	c.Step(m)
	if m[0xC000] != 0x00 || !c.Registers().Flags().Get(FlagZ) || c.Cycles() != 12 {
		t.Fatalf("INC (HL) got mem=%02x F=%v cycles=%d", m[0xC000], c.Registers().Flags(), c.Cycles())
	}
	c.Step(m)
	c.Step(m)
	if m[0xC000] != 0xFE {
		t.Fatalf("DEC (HL) got %02x want fe", m[0xC000])
	}
}

func TestCPU_ADD_HalfCarry(t *testing.T) {
	c, m := newCPUWithCode(0xC6, 0x01) // ADD A,1
	c.Registers().SetA(0x0F)
	c.Step(m)
	f := c.Registers().Flags()
	if c.Registers().A() != 0x10 || !f.Get(FlagH) || f.Get(FlagZ) || f.Get(FlagC) || f.Get(FlagN) {
		t.Fatalf("0F+01 got A=%02x F=%v", c.Registers().A(), f)
	}
}

func TestCPU_ADC_NoCarryMatchesADD(t *testing.T) {
	f := func(a, b byte) bool {
		add := add8(a, b)
		adc := adc8(a, b, false)
		return add == adc && adc.cy == (uint16(a)+uint16(b) > 0xFF) && adc.res == a+b
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestCPU_ADC_SBC_CarryIn(t *testing.T) {
	c, m := newCPUWithCode(0xCE, 0x0F, 0xDE, 0x0F) // ADC A,0F; SBC A,0F
	c.Registers().SetA(0xF0)
	c.Registers().Flags().Set(FlagC, true)
	c.Step(m)
	f := c.Registers().Flags()
	if c.Registers().A() != 0x00 || !f.Get(FlagZ) || !f.Get(FlagC) || !f.Get(FlagH) {
		t.Fatalf("ADC got A=%02x F=%v", c.Registers().A(), f)
	}
	c.Step(m) // 0x00 - 0x0F - 1
	if c.Registers().A() != 0xF0 || !f.Get(FlagC) || !f.Get(FlagH) || !f.Get(FlagN) {
		t.Fatalf("SBC got A=%02x F=%v", c.Registers().A(), f)
	}
}

func TestCPU_SUB_CP(t *testing.T) {
	c, m := newCPUWithCode(0xFE, 0x42, 0x90) // CP 42; SUB B
	c.Registers().SetA(0x42)
	c.Registers().SetB(0x43)
	c.Step(m)
	f := c.Registers().Flags()
	if c.Registers().A() != 0x42 || !f.Get(FlagZ) || !f.Get(FlagN) {
		t.Fatalf("CP got A=%02x F=%v", c.Registers().A(), f)
	}
	c.Step(m)
	if c.Registers().A() != 0xFF || !f.Get(FlagC) || !f.Get(FlagH) || f.Get(FlagZ) {
		t.Fatalf("SUB got A=%02x F=%v", c.Registers().A(), f)
	}
}

func TestCPU_LogicFlags(t *testing.T) {
	c, m := newCPUWithCode(0xE6, 0x0F, 0xF6, 0x00, 0xEE, 0xFF) // AND 0F; OR 00; XOR FF
	c.Registers().SetA(0xF0)
	c.Registers().Flags().SetAll(true, true, false, false)
	c.Step(m)
	f := c.Registers().Flags()
	if c.Registers().A() != 0x00 || f.Byte() != byte(FlagZ|FlagH) {
		t.Fatalf("AND got A=%02x F=%v", c.Registers().A(), f)
	}
	c.Step(m)
	if f.Byte() != byte(FlagZ) {
		t.Fatalf("OR got F=%v", f)
	}
	c.Step(m)
	if c.Registers().A() != 0xFF || f.Byte() != 0 {
		t.Fatalf("XOR got A=%02x F=%v", c.Registers().A(), f)
	}
}

func TestCPU_DAA_AddAndSub(t *testing.T) {
	// LD A,45; ADD A,38; DAA -> 83
	c, m := newCPUWithCode(0x3E, 0x45, 0xC6, 0x38, 0x27)
	c.Step(m)
	c.Step(m)
	c.Step(m)
	if c.Registers().A() != 0x83 || c.Registers().Flags().Byte() != 0 {
		t.Fatalf("DAA after add got A=%02x F=%v", c.Registers().A(), c.Registers().Flags())
	}

	// LD A,45; SUB 06; DAA -> 39 with N kept
	m[0x0010], m[0x0011], m[0x0012], m[0x0013], m[0x0014] = 0x3E, 0x45, 0xD6, 0x06, 0x27
	c.SetPC(0x0010)
	c.Step(m)
	c.Step(m)
	c.Step(m)
	if c.Registers().A() != 0x39 || !c.Registers().Flags().Get(FlagN) {
		t.Fatalf("DAA after sub got A=%02x F=%v", c.Registers().A(), c.Registers().Flags())
	}
}

func TestCPU_DAA_OverflowSetsCarry(t *testing.T) {
	c, m := newCPUWithCode(0x27)
	c.Registers().SetA(0x9A)
	c.Registers().Flags().SetAll(false, false, false, false)
	c.Step(m)
	f := c.Registers().Flags()
	if c.Registers().A() != 0x00 || !f.Get(FlagC) || !f.Get(FlagZ) || f.Get(FlagH) {
		t.Fatalf("DAA 9A got A=%02x F=%v", c.Registers().A(), f)
	}
}

func TestCPU_DAA_NeverClearsCarryWhenAdding(t *testing.T) {
	c, m := newCPUWithCode(0x27)
	c.Registers().SetA(0x12)
	c.Registers().Flags().SetAll(true, false, false, false)
	c.Step(m)
	if c.Registers().A() != 0x72 || !c.Registers().Flags().Get(FlagC) {
		t.Fatalf("DAA with carry got A=%02x F=%v", c.Registers().A(), c.Registers().Flags())
	}
}

func TestCPU_ADD_HL_FlagsAndCarry(t *testing.T) {
	for _, tc := range []struct {
		hl, bc uint16
		want   uint16
		h, cy  bool
	}{
		{0x0FFF, 0x0001, 0x1000, true, false},
		{0xFFFF, 0x0001, 0x0000, true, true},
		{0x1234, 0x1111, 0x2345, false, false},
		{0x8000, 0x8000, 0x0000, false, true},
	} {
		for _, zero := range []bool{false, true} {
			c, m := newCPUWithCode(0x09) // ADD HL,BC
			c.Registers().SetHL(tc.hl)
			c.Registers().SetBC(tc.bc)
			c.Registers().Flags().SetAll(false, true, false, zero)
			c.Step(m)
			f := c.Registers().Flags()
			if c.Registers().HL() != tc.want || f.Get(FlagH) != tc.h || f.Get(FlagC) != tc.cy || f.Get(FlagN) {
				t.Fatalf("ADD HL %04x+%04x got HL=%04x F=%v", tc.hl, tc.bc, c.Registers().HL(), f)
			}
			if f.Get(FlagZ) != zero {
				t.Fatalf("ADD HL %04x+%04x changed Z (was %v)", tc.hl, tc.bc, zero)
			}
		}
	}
}

func TestCPU_ADD_HL_PreservesZero(t *testing.T) {
	f := func(hl, rr uint16, zero bool) bool {
		c, m := newCPUWithCode(0x19) // ADD HL,DE
		c.Registers().SetHL(hl)
		c.Registers().SetDE(rr)
		c.Registers().Flags().Set(FlagZ, zero)
		c.Step(m)
		return c.Registers().Flags().Get(FlagZ) == zero && c.Registers().HL() == hl+rr
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestCPU_PairIncDecKeepFlags(t *testing.T) {
	c, m := newCPUWithCode(0x03, 0x1B, 0x33, 0x3B, 0x3B) // INC BC; DEC DE; INC SP; DEC SP; DEC SP
	c.Registers().SetBC(0xFFFF)
	c.Registers().Flags().Load(0xA0)
	c.Step(m)
	c.Step(m)
	c.Step(m)
	c.Step(m)
	c.Step(m)
	if c.Registers().BC() != 0 || c.Registers().DE() != 0xFFFF || c.SP() != 0xFFFF {
		t.Fatalf("pair inc/dec got BC=%04x DE=%04x SP=%04x", c.Registers().BC(), c.Registers().DE(), c.SP())
	}
	if c.Registers().Flags().Byte() != 0xA0 {
		t.Fatalf("pair inc/dec touched flags: %v", c.Registers().Flags())
	}
}

func TestCPU_CPL_SCF_CCF(t *testing.T) {
	c, m := newCPUWithCode(0x2F, 0x37, 0x3F) // CPL; SCF; CCF
	c.Registers().SetA(0x35)
	c.Registers().Flags().SetAll(true, false, false, true)
	c.Step(m)
	f := c.Registers().Flags()
	if c.Registers().A() != 0xCA || f.Byte() != 0xF0 {
		t.Fatalf("CPL got A=%02x F=%v", c.Registers().A(), f)
	}
	c.Step(m)
	if f.Byte() != byte(FlagZ|FlagC) {
		t.Fatalf("SCF got F=%v", f)
	}
	c.Step(m)
	if f.Byte() != byte(FlagZ) {
		t.Fatalf("CCF got F=%v", f)
	}
}

func TestCPU_AccumulatorRotates(t *testing.T) {
	for _, tc := range []struct {
		name    string
		op      byte
		a       byte
		carryIn bool
		want    byte
		carry   bool
	}{
		{"RLCA", 0x07, 0x85, false, 0x0B, true},
		{"RRCA", 0x0F, 0x01, false, 0x80, true},
		{"RLA", 0x17, 0x80, false, 0x00, true},
		{"RLA carry in", 0x17, 0x00, true, 0x01, false},
		{"RRA", 0x1F, 0x01, true, 0x80, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, m := newCPUWithCode(tc.op)
			c.Registers().SetA(tc.a)
			c.Registers().Flags().SetAll(tc.carryIn, true, true, true)
			c.Step(m)
			f := c.Registers().Flags()
			if c.Registers().A() != tc.want || f.Get(FlagC) != tc.carry {
				t.Fatalf("got A=%02x F=%v want %02x carry=%v", c.Registers().A(), f, tc.want, tc.carry)
			}
			if f.Get(FlagZ) || f.Get(FlagN) || f.Get(FlagH) {
				t.Fatalf("rotate left Z/N/H set: %v", f)
			}
		})
	}
}

func TestCPU_CALL_RET(t *testing.T) {
	c, m := newCPUWithCode(0xCD, 0x05, 0x00) // CALL 0005
	m[0x0005] = 0xC9                          // RET
	c.SetSP(0xFFFE)
	c.Step(m)
	if c.PC() != 0x0005 || c.SP() != 0xFFFC || m[0xFFFD] != 0x00 || m[0xFFFC] != 0x03 {
		t.Fatalf("CALL got PC=%04x SP=%04x stack=%02x%02x", c.PC(), c.SP(), m[0xFFFD], m[0xFFFC])
	}
	c.Step(m)
	if c.PC() != 0x0003 || c.SP() != 0xFFFE || c.Cycles() != 24+16 {
		t.Fatalf("RET got PC=%04x SP=%04x cycles=%d", c.PC(), c.SP(), c.Cycles())
	}
}

func TestCPU_RST(t *testing.T) {
	c, m := newCPUWithCode()
	m[0x0200] = 0xEF // RST 28
	c.SetPC(0x0200)
	c.SetSP(0xD000)
	c.Step(m)
	if c.PC() != 0x0028 || c.SP() != 0xCFFE || m[0xCFFF] != 0x02 || m[0xCFFE] != 0x01 {
		t.Fatalf("RST got PC=%04x SP=%04x stack=%02x%02x", c.PC(), c.SP(), m[0xCFFF], m[0xCFFE])
	}
}

func TestCPU_PUSH_POP_AF(t *testing.T) {
	c, m := newCPUWithCode(0xC5, 0xF1, 0xF5, 0xD1) // PUSH BC; POP AF; PUSH AF; POP DE
	c.SetSP(0xD000)
	c.Registers().SetBC(0x12FF)
	c.Step(m)
	c.Step(m)
	if c.Registers().AF() != 0x12F0 {
		t.Fatalf("POP AF got %04x want 12f0", c.Registers().AF())
	}
	c.Step(m)
	c.Step(m)
	if c.Registers().DE() != 0x12F0 || c.SP() != 0xD000 {
		t.Fatalf("PUSH AF/POP DE got DE=%04x SP=%04x", c.Registers().DE(), c.SP())
	}
}

func TestCPU_ADD_SP_and_LD_HL_SP(t *testing.T) {
	c, m := newCPUWithCode(0xE8, 0xFF, 0xF8, 0x01) // ADD SP,-1; LD HL,SP+1
	c.SetSP(0x00FF)
	c.Registers().Flags().Set(FlagZ, true)
	c.Step(m)
	f := c.Registers().Flags()
	if c.SP() != 0x00FE || !f.Get(FlagC) || !f.Get(FlagH) || f.Get(FlagZ) {
		t.Fatalf("ADD SP,-1 got SP=%04x F=%v", c.SP(), f)
	}
	c.Step(m)
	if c.Registers().HL() != 0x00FF || f.Get(FlagC) || f.Get(FlagH) {
		t.Fatalf("LD HL,SP+1 got HL=%04x F=%v", c.Registers().HL(), f)
	}
	if c.Cycles() != 16+12 {
		t.Fatalf("cycles got %d want 28", c.Cycles())
	}
}

func TestCPU_LDH(t *testing.T) {
	c, m := newCPUWithCode(0xE0, 0x80, 0xF2, 0xE2) // LDH (80),A; LD A,(C); LD (C),A
	c.Registers().SetA(0xAB)
	c.Registers().SetC(0x81)
	m[0xFF81] = 0xCD
	c.Step(m)
	if m[0xFF80] != 0xAB {
		t.Fatalf("LDH got %02x want ab", m[0xFF80])
	}
	c.Step(m)
	if c.Registers().A() != 0xCD {
		t.Fatalf("LD A,(C) got %02x want cd", c.Registers().A())
	}
	c.Registers().SetC(0x82)
	c.Step(m)
	if m[0xFF82] != 0xCD {
		t.Fatalf("LD (C),A got %02x want cd", m[0xFF82])
	}
}

func TestCPU_LD_a16_SP(t *testing.T) {
	c, m := newCPUWithCode(0x08, 0x00, 0xC1) // LD (C100),SP
	c.SetSP(0xBEEF)
	c.Step(m)
	if m[0xC100] != 0xEF || m[0xC101] != 0xBE || c.Cycles() != 20 {
		t.Fatalf("LD (a16),SP got %02x %02x cycles=%d", m[0xC100], m[0xC101], c.Cycles())
	}
}

func TestCPU_EI_DelayedEnable(t *testing.T) {
	c, m := newCPUWithCode(0xFB, 0x00, 0xF3) // EI; NOP; DI
	c.Step(m)
	if c.IME() {
		t.Fatal("IME enabled immediately after EI")
	}
	c.Step(m)
	if !c.IME() {
		t.Fatal("IME not enabled after the instruction following EI")
	}
	c.Step(m)
	if c.IME() {
		t.Fatal("DI did not clear IME")
	}
}

func TestCPU_EI_CancelledByDI(t *testing.T) {
	c, m := newCPUWithCode(0xFB, 0xF3, 0x00) // EI; DI; NOP
	c.Step(m)
	c.Step(m)
	c.Step(m)
	if c.IME() {
		t.Fatal("DI right after EI should leave IME clear")
	}
}

func TestCPU_RETI(t *testing.T) {
	c, m := newCPUWithCode(0xD9)
	c.SetSP(0xD000)
	m[0xD000], m[0xD001] = 0x34, 0x12
	c.Step(m)
	if c.PC() != 0x1234 || !c.IME() || c.Cycles() != 16 {
		t.Fatalf("RETI got PC=%04x IME=%v cycles=%d", c.PC(), c.IME(), c.Cycles())
	}
}

func TestCPU_HALT_StopsRunning(t *testing.T) {
	c, m := newCPUWithCode(0x76, 0x00)
	c.Step(m)
	if c.Running() || c.PC() != 0x0001 || c.Cycles() != 4 {
		t.Fatalf("HALT got running=%v PC=%04x cycles=%d", c.Running(), c.PC(), c.Cycles())
	}
	c.Step(m)
	if c.PC() != 0x0001 {
		t.Fatalf("step after HALT executed code: PC=%04x", c.PC())
	}
}

func TestCPU_STOP_ConsumesPadding(t *testing.T) {
	c, m := newCPUWithCode(0x10, 0x00, 0x00)
	c.Step(m)
	if c.PC() != 0x0002 || c.Cycles() != 4 || c.Running() {
		t.Fatalf("STOP got PC=%04x cycles=%d running=%v", c.PC(), c.Cycles(), c.Running())
	}
	c.SetRunning(true)
	c.Step(m)
	if c.PC() != 0x0003 {
		t.Fatalf("NOP after STOP got PC=%04x want 0003", c.PC())
	}
}

func TestCPU_CB_Prefix_CyclesAndBehavior(t *testing.T) {
	c, m := newCPUWithCode(
		0x21, 0x00, 0xC0, // LD HL,C000
		0x36, 0x80, // LD (HL),80
		0xCB, 0x7E, // BIT 7,(HL)
		0xCB, 0xBE, // RES 7,(HL)
		0xCB, 0xC6, // SET 0,(HL)
		0xCB, 0x00, // RLC B
		0xCB, 0x37, // SWAP A
	)
	c.Step(m)
	c.Step(m)
	before := c.Cycles()
	c.Step(m)
	if c.Cycles()-before != 12 || c.Registers().Flags().Get(FlagZ) || !c.Registers().Flags().Get(FlagH) {
		t.Fatalf("BIT 7,(HL) got cycles=%d F=%v", c.Cycles()-before, c.Registers().Flags())
	}
	before = c.Cycles()
	c.Step(m)
	if c.Cycles()-before != 16 || m[0xC000] != 0x00 {
		t.Fatalf("RES 7,(HL) got cycles=%d mem=%02x", c.Cycles()-before, m[0xC000])
	}
	c.Step(m)
	if m[0xC000] != 0x01 {
		t.Fatalf("SET 0,(HL) got mem=%02x", m[0xC000])
	}
	c.Registers().SetB(0x80)
	before = c.Cycles()
	c.Step(m)
	if c.Cycles()-before != 8 || c.Registers().B() != 0x01 || !c.Registers().Flags().Get(FlagC) {
		t.Fatalf("RLC B got cycles=%d B=%02x F=%v", c.Cycles()-before, c.Registers().B(), c.Registers().Flags())
	}
	c.Registers().SetA(0xF1)
	c.Step(m)
	if c.Registers().A() != 0x1F || c.Registers().Flags().Byte() != 0 || c.PC() != 15 {
		t.Fatalf("SWAP A got A=%02x F=%v PC=%d", c.Registers().A(), c.Registers().Flags(), c.PC())
	}
}

func TestCPU_CB_ShiftZeroFlag(t *testing.T) {
	c, m := newCPUWithCode(0xCB, 0x38, 0xCB, 0x28) // SRL B; SRA B
	c.Registers().SetB(0x01)
	c.Step(m)
	f := c.Registers().Flags()
	if c.Registers().B() != 0 || !f.Get(FlagZ) || !f.Get(FlagC) {
		t.Fatalf("SRL B got B=%02x F=%v", c.Registers().B(), f)
	}
	c.Registers().SetB(0x81)
	c.Step(m)
	if c.Registers().B() != 0xC0 || !f.Get(FlagC) || f.Get(FlagZ) {
		t.Fatalf("SRA B got B=%02x F=%v", c.Registers().B(), f)
	}
}

func TestCPU_IllegalOpcodePanics(t *testing.T) {
	c, m := newCPUWithCode(0xD3)
	defer func() {
		r := recover()
		err, ok := r.(*IllegalOpcodeError)
		if !ok {
			t.Fatalf("recover got %v want *IllegalOpcodeError", r)
		}
		if err.Opcode != 0xD3 || err.PC != 0 {
			t.Fatalf("error got %v", err)
		}
	}()
	c.Step(m)
}

func TestCPU_ResetNoBoot(t *testing.T) {
	c := New()
	c.ResetNoBoot()
	r := c.Registers()
	if r.AF() != 0x01B0 || r.BC() != 0x0013 || r.DE() != 0x00D8 || r.HL() != 0x014D {
		t.Fatalf("post-boot registers got %v", r)
	}
	if c.PC() != 0x0100 || c.SP() != 0xFFFE {
		t.Fatalf("post-boot PC/SP got %04x/%04x", c.PC(), c.SP())
	}
}
