package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/FabianRolfMatthiasNoll/gbcore/internal/emu"
)

const (
	ansiReset = "\x1b[0m"
	ansiPC    = "\x1b[36m"
	ansiOp    = "\x1b[33m"
)

func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
}

// colorize highlights the address and opcode columns of a trace line.
func colorize(line string) string {
	if len(line) < 10 {
		return line
	}
	return ansiPC + line[:4] + ansiReset + line[4:6] + ansiOp + line[6:8] + ansiReset + line[8:]
}

func main() {
	romPath := flag.String("rom", "", "path to ROM (.gb)")
	steps := flag.Uint64("steps", 1_000_000, "max CPU steps to run")
	startPC := flag.Int("pc", 0x0100, "initial PC value")
	colorMode := flag.String("color", "auto", "colour trace output: auto, always or never")
	quiet := flag.Bool("quiet", false, "only print the summary")
	flag.Parse()

	if *romPath == "" {
		log.Fatal("-rom is required")
	}

	m := emu.New(emu.Config{PostBoot: true})
	if err := m.LoadROMFromFile(*romPath); err != nil {
		log.Fatalf("load rom: %v", err)
	}
	m.CPU().SetPC(uint16(*startPC))

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	color := useColor(*colorMode)

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			out.Flush()
			log.Fatalf("stopped after %d steps at PC=%04X: %v", m.Steps(), m.CPU().PC(), r)
		}
	}()

	for i := uint64(0); i < *steps && m.CPU().Running(); i++ {
		if !*quiet {
			line := m.TraceLine()
			if color {
				line = colorize(line)
			}
			fmt.Fprintln(out, line)
		}
		m.Step()
	}
	fmt.Fprintf(out, "\nDone: steps=%d cycles=%d halted=%v elapsed=%s\n",
		m.Steps(), m.CPU().Cycles(), !m.CPU().Running(), time.Since(start).Truncate(time.Millisecond))
}
