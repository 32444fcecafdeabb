package emu

import (
	"fmt"
	"log"

	"github.com/FabianRolfMatthiasNoll/gbcore/internal/bus"
	"github.com/FabianRolfMatthiasNoll/gbcore/internal/cart"
	"github.com/FabianRolfMatthiasNoll/gbcore/internal/cpu"
)

// Machine owns one CPU and the bus it executes against.
type Machine struct {
	cfg    Config
	bus    *bus.Bus
	cpu    *cpu.CPU
	rom    *cart.ROM
	header *cart.Header

	romPath string
	steps   uint64
	trace   *log.Logger
}

func New(cfg Config) *Machine {
	cfg.Defaults()
	return &Machine{
		cfg:   cfg,
		trace: log.New(cfg.TraceOut, "", 0),
	}
}

// LoadCartridge wires a fresh bus and CPU around rom.
func (m *Machine) LoadCartridge(rom *cart.ROM) {
	m.rom = rom
	m.header, _ = cart.ParseHeader(rom.Bytes())
	m.bus = bus.New(rom)
	m.cpu = cpu.New()
	m.steps = 0
	if m.cfg.PostBoot {
		m.cpu.ResetNoBoot()
	}
}

// LoadROMFromFile replaces the current cartridge with a ROM from disk.
func (m *Machine) LoadROMFromFile(path string) error {
	rom, err := cart.Load(path)
	if err != nil {
		return err
	}
	if rom.Truncated() {
		log.Printf("rom %s is %d bytes; only the first %d are mapped", path, rom.Size(), cart.ImageSize)
	}
	m.LoadCartridge(rom)
	m.romPath = path
	if h := m.header; h != nil {
		log.Printf("rom %q type=%s checksum_ok=%v", h.Title, h.TypeName(), h.ChecksumOK)
		if h.NeedsMapper() {
			log.Printf("rom %q expects %s with %d KiB; bank switching is not emulated", h.Title, h.TypeName(), h.ROMSize()/1024)
		}
	}
	return nil
}

// ResetPostBoot puts the CPU back in the DMG post-boot state, keeping memory.
func (m *Machine) ResetPostBoot() {
	if m.cpu == nil {
		return
	}
	m.cpu.ResetNoBoot()
}

// Step executes one instruction, tracing it first when enabled.
func (m *Machine) Step() {
	if m.cpu == nil || !m.cpu.Running() {
		return
	}
	if m.cfg.Trace {
		m.trace.Print(m.TraceLine())
	}
	m.cpu.Step(m.bus)
	m.steps++
}

// Run steps until the CPU stops or MaxSteps instructions have run. It
// returns the number executed. Routing and decoder panics propagate.
func (m *Machine) Run() uint64 {
	if m.cpu == nil {
		return 0
	}
	start := m.steps
	for m.cpu.Running() {
		if m.cfg.MaxSteps > 0 && m.steps-start >= m.cfg.MaxSteps {
			break
		}
		m.Step()
	}
	return m.steps - start
}

// TraceLine describes the instruction at PC and the state before it runs.
func (m *Machine) TraceLine() string {
	c := m.cpu
	r := c.Registers()
	text, _ := cpu.Disassemble(m.bus, c.PC())
	return fmt.Sprintf("%04X  %02X  %-18s AF=%04X BC=%04X DE=%04X HL=%04X SP=%04X %s cy=%d",
		c.PC(), m.bus.Read(c.PC()), text, r.AF(), r.BC(), r.DE(), r.HL(), c.SP(), r.Flags(), c.Cycles())
}

// Disassemble renders the instruction at pc without executing it.
func (m *Machine) Disassemble(pc uint16) (string, int) {
	return cpu.Disassemble(m.bus, pc)
}

func (m *Machine) CPU() *cpu.CPU        { return m.cpu }
func (m *Machine) Bus() *bus.Bus        { return m.bus }
func (m *Machine) Header() *cart.Header { return m.header }
func (m *Machine) ROMPath() string      { return m.romPath }
func (m *Machine) Steps() uint64        { return m.steps }
func (m *Machine) Loaded() bool         { return m.cpu != nil }
func (m *Machine) SetTrace(on bool)     { m.cfg.Trace = on }
func (m *Machine) Config() Config       { return m.cfg }
