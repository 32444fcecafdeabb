// Package view renders the monitor's text panels. It has no ebiten
// dependency so the layouts can be tested headless.
package view

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/FabianRolfMatthiasNoll/gbcore/internal/bus"
	"github.com/FabianRolfMatthiasNoll/gbcore/internal/cpu"
)

const BytesPerRow = 16

// Registers lists the register file, flags and processor status.
func Registers(c *cpu.CPU) []string {
	r := c.Registers()
	status := "RUN"
	if !c.Running() {
		status = "STOP"
	}
	ime := "DI"
	if c.IME() {
		ime = "EI"
	}
	return []string{
		fmt.Sprintf("AF %04X  BC %04X", r.AF(), r.BC()),
		fmt.Sprintf("DE %04X  HL %04X", r.DE(), r.HL()),
		fmt.Sprintf("SP %04X  PC %04X", c.SP(), c.PC()),
		fmt.Sprintf("F  %s    %s %s", r.Flags(), ime, status),
		fmt.Sprintf("cycles %d", c.Cycles()),
	}
}

// Disassembly lists n instructions starting at pc, marking the first.
func Disassembly(b cpu.Bus, pc uint16, n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		text, size := cpu.Disassemble(b, pc)
		mark := "  "
		if i == 0 {
			mark = "> "
		}
		out = append(out, fmt.Sprintf("%s%04X %s", mark, pc, text))
		pc += uint16(size)
	}
	return out
}

// Memory renders rows of BytesPerRow bytes from start, tagged with the area
// of each row's first address.
func Memory(b *bus.Bus, start uint16, rows int) []string {
	start &^= BytesPerRow - 1
	data := b.Dump(start, rows*BytesPerRow)
	out := make([]string, rows)
	var sb strings.Builder
	for row := range out {
		sb.Reset()
		addr := start + uint16(row*BytesPerRow)
		fmt.Fprintf(&sb, "%04X %-4s", addr, b.Area(addr))
		for _, v := range data[row*BytesPerRow : (row+1)*BytesPerRow] {
			fmt.Fprintf(&sb, " %02X", v)
		}
		out[row] = sb.String()
	}
	return out
}

// FindROMs lists .gb files directly under dir, sorted by name.
func FindROMs(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".gb") {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out
}

// Truncate cuts s to at most n characters, marking the cut with "~".
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	if n == 1 {
		return "~"
	}
	return s[:n-1] + "~"
}
