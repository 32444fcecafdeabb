package emu

import (
	"io"
	"os"
)

// Config contains settings that affect emulation behavior.
type Config struct {
	Trace    bool      // log one line per executed instruction
	TraceOut io.Writer // destination for trace lines
	PostBoot bool      // start at 0x0100 with DMG post-boot registers instead of 0x0000
	MaxSteps uint64    // Run stops after this many instructions; 0 runs until HALT/STOP
}

// Defaults fills missing fields with reasonable defaults.
func (c *Config) Defaults() {
	if c.TraceOut == nil {
		c.TraceOut = os.Stderr
	}
}
