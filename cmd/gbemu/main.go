package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/FabianRolfMatthiasNoll/gbcore/internal/emu"
	"github.com/FabianRolfMatthiasNoll/gbcore/internal/statsview"
	"github.com/FabianRolfMatthiasNoll/gbcore/internal/ui"
)

type CLIFlags struct {
	ROMPath  string
	ROMsDir  string
	Steps    uint64
	Trace    bool
	PostBoot bool

	// monitor window
	Monitor bool
	Scale   int
	Title   string

	StatsView bool
}

func parseFlags() CLIFlags {
	var f CLIFlags
	flag.StringVar(&f.ROMPath, "rom", "", "path to ROM (.gb)")
	flag.StringVar(&f.ROMsDir, "romsdir", "roms", "directory the monitor browses for ROMs")
	flag.Uint64Var(&f.Steps, "steps", 0, "max instructions to run headless; 0 runs until HALT/STOP")
	flag.BoolVar(&f.Trace, "trace", false, "log every instruction to stderr")
	flag.BoolVar(&f.PostBoot, "postboot", true, "start at 0x0100 with DMG post-boot registers")
	flag.BoolVar(&f.Monitor, "monitor", false, "open the monitor window instead of running headless")
	flag.IntVar(&f.Scale, "scale", 2, "monitor window scale")
	flag.StringVar(&f.Title, "title", "gbemu", "monitor window title")
	flag.BoolVar(&f.StatsView, "statsview", false, fmt.Sprintf("serve runtime stats (available=%v)", statsview.Available()))
	flag.Parse()
	return f
}

func runHeadless(m *emu.Machine) {
	start := time.Now()
	n := m.Run()
	dur := time.Since(start)
	c := m.CPU()
	log.Printf("headless: steps=%d cycles=%d elapsed=%s halted=%v pc=%04X",
		n, c.Cycles(), dur.Truncate(time.Millisecond), !c.Running(), c.PC())
}

func main() {
	f := parseFlags()

	// Bus routing faults and illegal opcodes surface as panics.
	defer func() {
		if r := recover(); r != nil {
			log.Fatalf("emulation stopped: %v", r)
		}
	}()

	if f.StatsView {
		statsview.Launch(os.Stderr)
	}

	m := emu.New(emu.Config{
		Trace:    f.Trace,
		PostBoot: f.PostBoot,
		MaxSteps: f.Steps,
	})
	if f.ROMPath != "" {
		path := f.ROMPath
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		if err := m.LoadROMFromFile(path); err != nil {
			log.Fatalf("load rom: %v", err)
		}
	}

	if !f.Monitor {
		if !m.Loaded() {
			log.Fatal("-rom is required without -monitor")
		}
		runHeadless(m)
		return
	}

	app := ui.NewApp(ui.Config{Title: f.Title, Scale: f.Scale, ROMsDir: f.ROMsDir}, m)
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
